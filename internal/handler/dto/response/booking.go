package response

import (
	"time"

	"staybooking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	RoomID      uuid.UUID `json:"roomId"`
	RoomName    string    `json:"roomName"`
	LodgingID   uuid.UUID `json:"lodgingId"`
	LodgingName string    `json:"lodgingName"`
	GuestID     uuid.UUID `json:"guestId"`
	GuestEmail  string    `json:"guestEmail"`
	CheckIn     time.Time `json:"checkIn"`
	CheckOut    time.Time `json:"checkOut"`
	Guests      int32     `json:"guests"`
	Status      string    `json:"status"`
	Subtotal    int64     `json:"subtotal"`
	TaxPercent  float64   `json:"taxPercent"`
	TaxAmount   int64     `json:"taxAmount"`
	GrandTotal  int64     `json:"grandTotal"`
	Note        *string   `json:"note,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID          uuid.UUID `json:"id"`
	RoomName    string    `json:"roomName"`
	LodgingName string    `json:"lodgingName"`
	CheckIn     time.Time `json:"checkIn"`
	CheckOut    time.Time `json:"checkOut"`
	Status      string    `json:"status"`
	GrandTotal  int64     `json:"grandTotal"`
	CreatedAt   time.Time `json:"createdAt"`
}

type BookingPageResponse struct {
	Items      []*BookingListResponse `json:"items"`
	NextCursor *string                `json:"nextCursor,omitempty"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	copyView(&resp, view)
	return &resp
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	copyView(&resp, item)
	return &resp
}

func FromBookingPage(items []*queries.BookingListItem, nextCursor *string) *BookingPageResponse {
	page := &BookingPageResponse{
		Items:      make([]*BookingListResponse, len(items)),
		NextCursor: nextCursor,
	}
	for i, item := range items {
		page.Items[i] = FromBookingListItem(item)
	}
	return page
}
