package response

import (
	"time"

	"staybooking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	LodgingID  uuid.UUID `json:"lodgingId"`
	BookingID  uuid.UUID `json:"bookingId"`
	GuestEmail string    `json:"guestEmail"`
	Rating     int32     `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromReviewView(view *queries.ReviewView) *ReviewResponse {
	var resp ReviewResponse
	copyView(&resp, view)
	return &resp
}

func FromReviewViews(views []*queries.ReviewView) []*ReviewResponse {
	resp := make([]*ReviewResponse, len(views))
	for i, view := range views {
		resp[i] = FromReviewView(view)
	}
	return resp
}
