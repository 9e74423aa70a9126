package model

type ActivityType string

const (
	ActivityGame      ActivityType = "game"
	ActivityPuzzle    ActivityType = "puzzle"
	ActivityChallenge ActivityType = "challenge"
)

// Activity is a short entertainment item answered in a free-text box.
type Activity struct {
	ID                 string       `json:"id"`
	Type               ActivityType `json:"type"`
	Title              string       `json:"title"`
	Description        string       `json:"description"`
	Difficulty         string       `json:"difficulty"`
	Duration           string       `json:"duration"`
	XPReward           float64      `json:"xpReward"`
	InteractiveContent string       `json:"interactiveContent"`
	Answer             string       `json:"answer"`
	Hint               *string      `json:"hint,omitempty"`
	FunFact            string       `json:"funFact"`
}
