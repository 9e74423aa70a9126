package repository

import (
	"adaptive_tutor_backend/internal/model"
	"adaptive_tutor_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) Create(profile *model.StudentProfile) error {
	return r.DB.Create(profile).Error
}

// FindByID returns util.ErrProfileNotFound when no row matches.
func (r *ProfileRepository) FindByID(id string) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	err := r.DB.Where("id = ?", id).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Update(profile *model.StudentProfile) error {
	return r.DB.Save(profile).Error
}

func (r *ProfileRepository) Delete(id string) error {
	return r.DB.Delete(&model.StudentProfile{}, "id = ?", id).Error
}
