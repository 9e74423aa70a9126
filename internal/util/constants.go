package util

const (
	StorageNone  = "none"
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	MinGrade = 6
	MaxGrade = 12

	MinProficiency     = 1
	MaxProficiency     = 4
	DefaultProficiency = 2
)

// PassRatio is the score ratio at which a unit counts as completed.
const PassRatio = 0.5
