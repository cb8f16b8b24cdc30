package request

import (
	"time"

	"staybooking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateLodgingRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
	Location    string `json:"location" binding:"required"`
}

type CreateRoomRequest struct {
	LodgingID   uuid.UUID `json:"lodging_id" binding:"required"`
	Name        string    `json:"name" binding:"required,max=255"`
	Capacity    int       `json:"capacity" binding:"required,min=1"`
	NightlyRate float64   `json:"nightly_rate" binding:"required,gte=0"`
}

type RuleRequest struct {
	Kind        string     `json:"kind" binding:"required,oneof=season weekday weekend event long_weekend"`
	Active      bool       `json:"active"`
	Percent     *float64   `json:"percent_increment,omitempty"`
	FixedAmount *float64   `json:"fixed_increment,omitempty"`
	DateFrom    *time.Time `json:"date_from,omitempty"`
	DateTo      *time.Time `json:"date_to,omitempty"`
}

type ReplaceRulesRequest struct {
	Rules []RuleRequest `json:"rules" binding:"required"`
}

func (r ReplaceRulesRequest) ToParams() []commands.RuleParams {
	params := make([]commands.RuleParams, len(r.Rules))
	for i, rule := range r.Rules {
		params[i] = commands.RuleParams{
			Kind:        rule.Kind,
			Active:      rule.Active,
			Percent:     rule.Percent,
			FixedAmount: rule.FixedAmount,
			DateFrom:    rule.DateFrom,
			DateTo:      rule.DateTo,
		}
	}
	return params
}
