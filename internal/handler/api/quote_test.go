//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"staybooking/internal/handler/api"
	resdto "staybooking/internal/handler/dto/response"
	"staybooking/internal/usecase/queries"
	"staybooking/tests/common/httptest"
	queriesmock "staybooking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockQuoteQueries
	handler     *api.QuoteHandler
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.handler = api.NewQuoteHandler(s.mockQueries)

	s.router.GET("/rooms/:id/quote", s.handler.QuoteStay)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

func (s *QuoteHandlerTestSuite) TestQuoteStay() {
	roomID := uuid.New()
	checkIn := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 1, 13, 0, 0, 0, 0, time.UTC)
	url := "/rooms/" + roomID.String() + "/quote?check_in=2026-01-10&check_out=2026-01-13"

	returnView := &queries.QuoteView{
		RoomID:     roomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Nights:     3,
		Subtotal:   36000,
		TaxPercent: 21,
		TaxAmount:  7560,
		GrandTotal: 43560,
		Breakdown: []queries.QuoteNight{
			{Date: checkIn, Price: 12000, AppliedAdjustments: []string{"Season: +20%"}},
			{Date: checkIn.AddDate(0, 0, 1), Price: 12000, AppliedAdjustments: []string{"Season: +20%"}},
			{Date: checkIn.AddDate(0, 0, 2), Price: 12000, AppliedAdjustments: []string{"Season: +20%"}},
		},
	}

	s.Run("success: returns 200 OK with per-night breakdown", func() {
		s.mockQueries.EXPECT().QuoteStay(gomock.Any(), roomID, checkIn, checkOut).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(roomID, response.RoomID)
		s.Equal(3, response.Nights)
		s.Equal(int64(36000), response.Subtotal)
		s.Equal(int64(43560), response.GrandTotal)
		s.Len(response.Breakdown, 3)
		s.Equal("2026-01-10", response.Breakdown[0].Date)
		s.Equal([]string{"Season: +20%"}, response.Breakdown[0].AppliedAdjustments)
	})

	s.Run("error: 400 Bad Request for invalid room UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/invalid-uuid/quote?check_in=2026-01-10&check_out=2026-01-13", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room ID")
	})

	s.Run("error: 400 Bad Request for missing date parameters", func() {
		testCases := []struct {
			name  string
			query string
			msg   string
		}{
			{name: "missing check_in", query: "?check_out=2026-01-13", msg: "check_in"},
			{name: "missing check_out", query: "?check_in=2026-01-10", msg: "check_out"},
			{name: "malformed check_in", query: "?check_in=Jan-10&check_out=2026-01-13", msg: "YYYY-MM-DD"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+roomID.String()+"/quote"+tc.query, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})

	s.Run("error: 404 Not Found for missing room", func() {
		s.mockQueries.EXPECT().QuoteStay(gomock.Any(), roomID, checkIn, checkOut).
			Return(nil, queries.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().QuoteStay(gomock.Any(), roomID, checkIn, checkOut).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
