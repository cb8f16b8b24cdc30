package response

import (
	"time"

	"staybooking/internal/usecase/queries"

	"github.com/google/uuid"
)

type LodgingResponse struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"ownerId"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	Status        string    `json:"status"`
	AverageRating *float64  `json:"averageRating,omitempty"`
	ReviewCount   int32     `json:"reviewCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type RoomResponse struct {
	ID          uuid.UUID `json:"id"`
	LodgingID   uuid.UUID `json:"lodgingId"`
	LodgingName string    `json:"lodgingName"`
	Name        string    `json:"name"`
	Capacity    int32     `json:"capacity"`
	NightlyRate float64   `json:"nightlyRate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type RuleResponse struct {
	ID               uuid.UUID  `json:"id"`
	RoomID           uuid.UUID  `json:"roomId"`
	Kind             string     `json:"kind"`
	Active           bool       `json:"active"`
	PercentIncrement *float64   `json:"percentIncrement,omitempty"`
	FixedIncrement   *float64   `json:"fixedIncrement,omitempty"`
	DateFrom         *time.Time `json:"dateFrom,omitempty"`
	DateTo           *time.Time `json:"dateTo,omitempty"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromLodgingView(view *queries.LodgingView) *LodgingResponse {
	var resp LodgingResponse
	copyView(&resp, view)
	return &resp
}

func FromLodgingViews(views []*queries.LodgingView) []*LodgingResponse {
	resp := make([]*LodgingResponse, len(views))
	for i, view := range views {
		resp[i] = FromLodgingView(view)
	}
	return resp
}

func FromRoomView(view *queries.RoomView) *RoomResponse {
	var resp RoomResponse
	copyView(&resp, view)
	return &resp
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	resp := make([]*RoomResponse, len(views))
	for i, view := range views {
		resp[i] = FromRoomView(view)
	}
	return resp
}

func FromRuleView(view *queries.RuleView) *RuleResponse {
	var resp RuleResponse
	copyView(&resp, view)
	return &resp
}

func FromRuleViews(views []*queries.RuleView) []*RuleResponse {
	resp := make([]*RuleResponse, len(views))
	for i, view := range views {
		resp[i] = FromRuleView(view)
	}
	return resp
}
