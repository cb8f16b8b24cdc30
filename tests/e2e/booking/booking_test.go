//go:build e2e

package booking

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"testing"
	"time"

	"staybooking/internal/handler/dto/request"
	"staybooking/tests/common/authtest"
	"staybooking/tests/common/httptest"
	"staybooking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BookingFlowTestSuite struct {
	e2e.SharedSuite
}

func TestBookingFlowSuite(t *testing.T) {
	suite.Run(t, new(BookingFlowTestSuite))
}

type createdResponse struct {
	ID uuid.UUID `json:"id"`
}

type bookingResponse struct {
	ID          uuid.UUID `json:"id"`
	RoomID      uuid.UUID `json:"roomId"`
	LodgingName string    `json:"lodgingName"`
	Status      string    `json:"status"`
	Subtotal    int64     `json:"subtotal"`
	TaxPercent  float64   `json:"taxPercent"`
	TaxAmount   int64     `json:"taxAmount"`
	GrandTotal  int64     `json:"grandTotal"`
}

type bookingPageResponse struct {
	Items      []bookingResponse `json:"items"`
	NextCursor *string           `json:"nextCursor"`
}

type quoteResponse struct {
	Nights     int     `json:"nights"`
	Subtotal   int64   `json:"subtotal"`
	TaxPercent float64 `json:"taxPercent"`
	TaxAmount  int64   `json:"taxAmount"`
	GrandTotal int64   `json:"grandTotal"`
	Breakdown  []struct {
		Date               string   `json:"date"`
		Price              int64    `json:"price"`
		AppliedAdjustments []string `json:"appliedAdjustments"`
	} `json:"breakdown"`
}

// propertySetup is everything an owner needs before a guest can book.
type propertySetup struct {
	ownerToken string
	lodgingID  uuid.UUID
	roomID     uuid.UUID
	checkIn    time.Time
	checkOut   time.Time
}

func (s *BookingFlowTestSuite) setupProperty(t *testing.T) propertySetup {
	t.Helper()

	ownerToken := authtest.RegisterAndLogin(t, s.Router, "owner@example.com", "ownerpass123", "owner")

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/lodgings",
		request.CreateLodgingRequest{Name: "Hosteria Alpina", Location: "La Cumbrecita"}, ownerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	lodgingID := decodeCreated(t, w.Body.Bytes())

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/rooms",
		request.CreateRoomRequest{LodgingID: lodgingID, Name: "Cabin Pinar", Capacity: 2, NightlyRate: 10000}, ownerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	roomID := decodeCreated(t, w.Body.Bytes())

	checkIn := time.Now().UTC().AddDate(0, 2, 0).Truncate(24 * time.Hour)
	checkOut := checkIn.AddDate(0, 0, 3)

	// A season rule spanning the whole stay keeps the expected totals
	// independent of which weekdays the stay lands on.
	percent := 20.0
	from := checkIn.AddDate(0, 0, -1)
	to := checkOut.AddDate(0, 0, 1)
	w = httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/rooms/"+roomID.String()+"/rules",
		request.ReplaceRulesRequest{Rules: []request.RuleRequest{
			{Kind: "season", Active: true, Percent: &percent, DateFrom: &from, DateTo: &to},
		}}, ownerToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	return propertySetup{
		ownerToken: ownerToken,
		lodgingID:  lodgingID,
		roomID:     roomID,
		checkIn:    checkIn,
		checkOut:   checkOut,
	}
}

func (s *BookingFlowTestSuite) createBooking(t *testing.T, prop propertySetup, guestToken, idempotencyKey string) bookingResponse {
	t.Helper()

	w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, "/api/bookings",
		request.CreateBookingRequest{RoomID: prop.roomID, CheckIn: prop.checkIn, CheckOut: prop.checkOut, Guests: 2},
		guestToken, map[string]string{"Idempotency-Key": idempotencyKey})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created bookingResponse
	httptest.DecodeJSON(t, w.Body.Bytes(), &created)
	return created
}

func (s *BookingFlowTestSuite) TestBookingLifecycle() {
	s.Run("quote then book with idempotent replay", func() {
		prop := s.setupProperty(s.T())
		guestToken := authtest.RegisterAndLogin(s.T(), s.Router, "guest@example.com", "guestpass123", "tourist")

		quotePath := fmt.Sprintf("/api/rooms/%s/quote?check_in=%s&check_out=%s",
			prop.roomID, prop.checkIn.Format(time.DateOnly), prop.checkOut.Format(time.DateOnly))
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, quotePath, nil, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var quote quoteResponse
		httptest.DecodeJSON(s.T(), w.Body.Bytes(), &quote)
		require.Equal(s.T(), 3, quote.Nights)
		require.Equal(s.T(), int64(36000), quote.Subtotal)
		require.Equal(s.T(), float64(21), quote.TaxPercent)
		require.Equal(s.T(), int64(7560), quote.TaxAmount)
		require.Equal(s.T(), int64(43560), quote.GrandTotal)
		require.Len(s.T(), quote.Breakdown, 3)
		require.Equal(s.T(), int64(12000), quote.Breakdown[0].Price)
		require.NotEmpty(s.T(), quote.Breakdown[0].AppliedAdjustments)

		idempotencyKey := uuid.New().String()
		created := s.createBooking(s.T(), prop, guestToken, idempotencyKey)
		require.Equal(s.T(), "confirmed", created.Status)
		require.Equal(s.T(), quote.Subtotal, created.Subtotal)
		require.Equal(s.T(), quote.GrandTotal, created.GrandTotal)
		require.Equal(s.T(), "Hosteria Alpina", created.LodgingName)

		// Same key, same payload: replayed with 200 and the original booking.
		w = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/bookings",
			request.CreateBookingRequest{RoomID: prop.roomID, CheckIn: prop.checkIn, CheckOut: prop.checkOut, Guests: 2},
			guestToken, map[string]string{"Idempotency-Key": idempotencyKey})
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var replayed bookingResponse
		httptest.DecodeJSON(s.T(), w.Body.Bytes(), &replayed)
		require.Equal(s.T(), created.ID, replayed.ID)

		// Same key, different payload: rejected as a conflicting reuse.
		w = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/bookings",
			request.CreateBookingRequest{RoomID: prop.roomID, CheckIn: prop.checkIn, CheckOut: prop.checkOut, Guests: 1},
			guestToken, map[string]string{"Idempotency-Key": idempotencyKey})
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "different parameters")
	})

	s.Run("concurrent bookings for the same stay admit exactly one", func() {
		prop := s.setupProperty(s.T())
		firstToken := authtest.RegisterAndLogin(s.T(), s.Router, "first@example.com", "firstpass123", "tourist")
		secondToken := authtest.RegisterAndLogin(s.T(), s.Router, "second@example.com", "secondpass123", "tourist")

		// Both requests race past the availability check; the exclusion
		// constraint must reject whichever inserts second.
		codes := make(chan int, 2)
		var wg sync.WaitGroup
		for _, token := range []string{firstToken, secondToken} {
			wg.Add(1)
			go func(token string) {
				defer wg.Done()
				w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/bookings",
					request.CreateBookingRequest{RoomID: prop.roomID, CheckIn: prop.checkIn, CheckOut: prop.checkOut, Guests: 1},
					token, map[string]string{"Idempotency-Key": uuid.New().String()})
				codes <- w.Code
			}(token)
		}
		wg.Wait()
		close(codes)

		var got []int
		for code := range codes {
			got = append(got, code)
		}
		sort.Ints(got)
		require.Equal(s.T(), []int{http.StatusCreated, http.StatusConflict}, got)

		var confirmed int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM bookings WHERE room_id = $1 AND status = 'confirmed'", prop.roomID).Scan(&confirmed)
		require.NoError(s.T(), err)
		require.Equal(s.T(), 1, confirmed)
	})

	s.Run("overlapping stay is rejected", func() {
		prop := s.setupProperty(s.T())
		firstToken := authtest.RegisterAndLogin(s.T(), s.Router, "first@example.com", "firstpass123", "tourist")
		secondToken := authtest.RegisterAndLogin(s.T(), s.Router, "second@example.com", "secondpass123", "tourist")

		s.createBooking(s.T(), prop, firstToken, uuid.New().String())

		w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/bookings",
			request.CreateBookingRequest{RoomID: prop.roomID, CheckIn: prop.checkIn, CheckOut: prop.checkOut, Guests: 1},
			secondToken, map[string]string{"Idempotency-Key": uuid.New().String()})
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "unavailable")
	})

	s.Run("get and list own bookings", func() {
		prop := s.setupProperty(s.T())
		guestToken := authtest.RegisterAndLogin(s.T(), s.Router, "guest@example.com", "guestpass123", "tourist")
		otherToken := authtest.RegisterAndLogin(s.T(), s.Router, "other@example.com", "otherpass123", "tourist")

		created := s.createBooking(s.T(), prop, guestToken, uuid.New().String())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/"+created.ID.String(), nil, guestToken)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var fetched bookingResponse
		httptest.DecodeJSON(s.T(), w.Body.Bytes(), &fetched)
		require.Equal(s.T(), created.ID, fetched.ID)
		require.Equal(s.T(), prop.roomID, fetched.RoomID)

		// Another tourist cannot see it.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/"+created.ID.String(), nil, otherToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Access denied")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings", nil, guestToken)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var page bookingPageResponse
		httptest.DecodeJSON(s.T(), w.Body.Bytes(), &page)
		require.Len(s.T(), page.Items, 1)
		require.Equal(s.T(), created.ID, page.Items[0].ID)
		require.Nil(s.T(), page.NextCursor)
	})

	s.Run("cancel booking", func() {
		prop := s.setupProperty(s.T())
		guestToken := authtest.RegisterAndLogin(s.T(), s.Router, "guest@example.com", "guestpass123", "tourist")

		created := s.createBooking(s.T(), prop, guestToken, uuid.New().String())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/bookings/"+created.ID.String(), nil, guestToken)
		require.Equal(s.T(), http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/"+created.ID.String(), nil, guestToken)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var fetched bookingResponse
		httptest.DecodeJSON(s.T(), w.Body.Bytes(), &fetched)
		require.Equal(s.T(), "canceled", fetched.Status)

		// A canceled booking cannot be canceled again.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/bookings/"+created.ID.String(), nil, guestToken)
		require.Equal(s.T(), http.StatusUnprocessableEntity, w.Code, w.Body.String())

		// The freed dates are bookable again.
		w = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/bookings",
			request.CreateBookingRequest{RoomID: prop.roomID, CheckIn: prop.checkIn, CheckOut: prop.checkOut, Guests: 2},
			guestToken, map[string]string{"Idempotency-Key": uuid.New().String()})
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("review after completed stay updates rating stats", func() {
		prop := s.setupProperty(s.T())
		guestToken := authtest.RegisterAndLogin(s.T(), s.Router, "guest@example.com", "guestpass123", "tourist")

		created := s.createBooking(s.T(), prop, guestToken, uuid.New().String())

		// Reviewing is only allowed after checkout, so move the stay
		// into the past directly.
		_, err := s.DB.Exec(context.Background(),
			"UPDATE bookings SET check_in = now() - interval '5 days', check_out = now() - interval '2 days' WHERE id = $1",
			created.ID)
		require.NoError(s.T(), err)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reviews",
			request.CreateReviewRequest{BookingID: created.ID, Rating: 4, Comment: "Great location, quiet nights."}, guestToken)
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

		var review struct {
			ID         uuid.UUID `json:"id"`
			LodgingID  uuid.UUID `json:"lodgingId"`
			Rating     int32     `json:"rating"`
			GuestEmail string    `json:"guestEmail"`
		}
		httptest.DecodeJSON(s.T(), w.Body.Bytes(), &review)
		require.Equal(s.T(), prop.lodgingID, review.LodgingID)
		require.Equal(s.T(), int32(4), review.Rating)
		require.Equal(s.T(), "guest@example.com", review.GuestEmail)

		// A second review for the same booking is rejected.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reviews",
			request.CreateReviewRequest{BookingID: created.ID, Rating: 5, Comment: "Trying again."}, guestToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already been reviewed")

		// The lodging now exposes the aggregated rating.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/lodgings/"+prop.lodgingID.String(), nil, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var lodging struct {
			AverageRating *float64 `json:"averageRating"`
			ReviewCount   int32    `json:"reviewCount"`
		}
		httptest.DecodeJSON(s.T(), w.Body.Bytes(), &lodging)
		require.Equal(s.T(), int32(1), lodging.ReviewCount)
		require.NotNil(s.T(), lodging.AverageRating)
		require.InDelta(s.T(), 4.0, *lodging.AverageRating, 0.001)
	})
}

func decodeCreated(t *testing.T, body []byte) uuid.UUID {
	t.Helper()

	var created createdResponse
	httptest.DecodeJSON(t, body, &created)
	require.NotEqual(t, uuid.Nil, created.ID)
	return created.ID
}
