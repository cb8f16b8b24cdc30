package api

import (
	"errors"
	"net/http"
	"time"

	resdto "staybooking/internal/handler/dto/response"
	"staybooking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuoteHandler struct {
	quoteQueries queries.QuoteQueries
}

func NewQuoteHandler(quoteQueries queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{
		quoteQueries: quoteQueries,
	}
}

// @Summary Quote a stay
// @Description Price a prospective stay night by night without booking it
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/quote [get]
func (h *QuoteHandler) QuoteStay(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	checkIn, err := parseDateParam(c, "check_in")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	checkOut, err := parseDateParam(c, "check_out")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	view, err := h.quoteQueries.QuoteStay(c.Request.Context(), roomID, checkIn, checkOut)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

func parseDateParam(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, errors.New(name + " query parameter is required")
	}

	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, errors.New(name + " must be a YYYY-MM-DD date")
	}
	return t, nil
}
