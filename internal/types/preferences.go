package types

import "github.com/go-playground/validator/v10"

// DefaultMinMatchScore is the threshold used when preferences do not set one
const DefaultMinMatchScore = 40

// Preferences is the user's matching profile. A nil *Preferences means the
// profile has not been configured yet.
type Preferences struct {
	RoleKeywords       []string        `json:"roleKeywords"`
	PreferredLocations []string        `json:"preferredLocations"`
	PreferredModes     []WorkMode      `json:"preferredModes" validate:"dive,oneof=Remote Hybrid Onsite"`
	ExperienceLevel    ExperienceLevel `json:"experienceLevel,omitempty" validate:"omitempty,oneof=Fresher 0-1 1-3 3-5"`
	Skills             []string        `json:"skills"`
	MinMatchScore      *int            `json:"minMatchScore,omitempty" validate:"omitempty,min=0,max=100"`
}

// Threshold returns the effective minimum match score.
func (p *Preferences) Threshold() int {
	if p == nil || p.MinMatchScore == nil {
		return DefaultMinMatchScore
	}
	return *p.MinMatchScore
}

// Validate validates the Preferences using the validator.
func (p *Preferences) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
