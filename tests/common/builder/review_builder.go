//go:build unit || e2e

package builder

import (
	"time"

	reqdto "staybooking/internal/handler/dto/request"
	"staybooking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	LodgingID  uuid.UUID
	BookingID  uuid.UUID
	GuestEmail string
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		LodgingID:  uuid.New(),
		BookingID:  uuid.New(),
		GuestEmail: "guest@example.com",
		Rating:     5,
		Comment:    "Wonderful stay!",
		CreatedAt:  time.Now(),
	}
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:         uuid.New(),
		LodgingID:  r.LodgingID,
		BookingID:  r.BookingID,
		GuestEmail: r.GuestEmail,
		Rating:     int32(r.Rating),
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

func (r *ReviewBuilder) WithBookingID(bookingID uuid.UUID) *ReviewBuilder {
	r.BookingID = bookingID
	return r
}

func (r *ReviewBuilder) WithLodgingID(lodgingID uuid.UUID) *ReviewBuilder {
	r.LodgingID = lodgingID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}
