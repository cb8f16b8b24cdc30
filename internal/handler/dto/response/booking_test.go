//go:build unit

package response

import (
	"testing"
	"time"

	"staybooking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// Guards the view-to-DTO mapping: if the two structs drift apart the
// response would silently carry zero values.
func TestFromBookingView_MapsEveryField(t *testing.T) {
	note := "late arrival"
	view := &queries.BookingView{
		ID:          uuid.New(),
		RoomID:      uuid.New(),
		RoomName:    "Cabin Pinar",
		LodgingID:   uuid.New(),
		LodgingName: "Hosteria Alpina",
		GuestID:     uuid.New(),
		GuestEmail:  "guest@example.com",
		CheckIn:     time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2026, 11, 13, 0, 0, 0, 0, time.UTC),
		Guests:      2,
		Status:      "confirmed",
		Subtotal:    36000,
		TaxPercent:  21,
		TaxAmount:   7560,
		GrandTotal:  43560,
		Note:        &note,
		CreatedAt:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}

	resp := FromBookingView(view)

	assert.Equal(t, view.ID, resp.ID)
	assert.Equal(t, view.RoomID, resp.RoomID)
	assert.Equal(t, view.RoomName, resp.RoomName)
	assert.Equal(t, view.LodgingID, resp.LodgingID)
	assert.Equal(t, view.LodgingName, resp.LodgingName)
	assert.Equal(t, view.GuestID, resp.GuestID)
	assert.Equal(t, view.GuestEmail, resp.GuestEmail)
	assert.Equal(t, view.CheckIn, resp.CheckIn)
	assert.Equal(t, view.CheckOut, resp.CheckOut)
	assert.Equal(t, view.Guests, resp.Guests)
	assert.Equal(t, view.Status, resp.Status)
	assert.Equal(t, view.Subtotal, resp.Subtotal)
	assert.Equal(t, view.TaxPercent, resp.TaxPercent)
	assert.Equal(t, view.TaxAmount, resp.TaxAmount)
	assert.Equal(t, view.GrandTotal, resp.GrandTotal)
	assert.Equal(t, view.Note, resp.Note)
	assert.Equal(t, view.CreatedAt, resp.CreatedAt)
	assert.Equal(t, view.UpdatedAt, resp.UpdatedAt)
}

func TestFromBookingListItem_MapsListFields(t *testing.T) {
	item := &queries.BookingListItem{
		ID:          uuid.New(),
		RoomName:    "Cabin Pinar",
		LodgingName: "Hosteria Alpina",
		CheckIn:     time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2026, 11, 13, 0, 0, 0, 0, time.UTC),
		Status:      "confirmed",
		GrandTotal:  43560,
		CreatedAt:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}

	resp := FromBookingListItem(item)

	assert.Equal(t, item.ID, resp.ID)
	assert.Equal(t, item.RoomName, resp.RoomName)
	assert.Equal(t, item.LodgingName, resp.LodgingName)
	assert.Equal(t, item.CheckIn, resp.CheckIn)
	assert.Equal(t, item.CheckOut, resp.CheckOut)
	assert.Equal(t, item.Status, resp.Status)
	assert.Equal(t, item.GrandTotal, resp.GrandTotal)
	assert.Equal(t, item.CreatedAt, resp.CreatedAt)
}
