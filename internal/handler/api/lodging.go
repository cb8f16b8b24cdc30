package api

import (
	"errors"
	"net/http"

	reqdto "staybooking/internal/handler/dto/request"
	resdto "staybooking/internal/handler/dto/response"
	"staybooking/internal/handler/middleware"
	"staybooking/internal/usecase/commands"
	"staybooking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LodgingHandler struct {
	lodgingCommands commands.LodgingCommands
	lodgingQueries  queries.LodgingQueries
	reviewQueries   queries.ReviewQueries
}

func NewLodgingHandler(lodgingCommands commands.LodgingCommands, lodgingQueries queries.LodgingQueries, reviewQueries queries.ReviewQueries) *LodgingHandler {
	return &LodgingHandler{
		lodgingCommands: lodgingCommands,
		lodgingQueries:  lodgingQueries,
		reviewQueries:   reviewQueries,
	}
}

// @Summary Create lodging
// @Description Register a new lodging owned by the current user
// @Tags lodgings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLodgingRequest true "Lodging request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /lodgings [post]
func (h *LodgingHandler) CreateLodging(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateLodgingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.lodgingCommands.CreateLodging(c.Request.Context(), commands.CreateLodgingParams{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
	}, ownerID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid lodging data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List lodgings
// @Description List lodgings with cursor pagination
// @Tags lodgings
// @Produce json
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.LodgingResponse
// @Failure 400 {object} map[string]string
// @Router /lodgings [get]
func (h *LodgingHandler) ListLodgings(c *gin.Context) {
	after, limit := getPageParams(c)

	views, next, err := h.lodgingQueries.List(c.Request.Context(), after, limit)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidCursor):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid pagination cursor",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp := gin.H{"items": resdto.FromLodgingViews(views)}
	if next != nil {
		resp["nextCursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get lodging
// @Description Get lodging by ID with rating stats
// @Tags lodgings
// @Produce json
// @Param id path string true "Lodging ID"
// @Success 200 {object} resdto.LodgingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lodgings/{id} [get]
func (h *LodgingHandler) GetLodging(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid lodging ID format",
		})
		return
	}

	view, err := h.lodgingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrLodgingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Lodging not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLodgingView(view))
}

// @Summary List lodging rooms
// @Description List the rooms of a lodging
// @Tags lodgings
// @Produce json
// @Param id path string true "Lodging ID"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Router /lodgings/{id}/rooms [get]
func (h *LodgingHandler) ListRooms(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid lodging ID format",
		})
		return
	}

	views, err := h.lodgingQueries.ListRooms(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary List lodging reviews
// @Description List the most recent reviews of a lodging
// @Tags lodgings
// @Produce json
// @Param id path string true "Lodging ID"
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Router /lodgings/{id}/reviews [get]
func (h *LodgingHandler) ListReviews(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid lodging ID format",
		})
		return
	}

	_, limit := getPageParams(c)

	views, err := h.reviewQueries.ListByLodging(c.Request.Context(), id, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}

// @Summary Create room
// @Description Add a room to a lodging owned by the current user
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rooms [post]
func (h *LodgingHandler) CreateRoom(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.lodgingCommands.CreateRoom(c.Request.Context(), commands.CreateRoomParams{
		LodgingID:   req.LodgingID,
		Name:        req.Name,
		Capacity:    req.Capacity,
		NightlyRate: req.NightlyRate,
	}, actor.ID, actor.Role)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrLodgingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Lodging not found",
			})
		case errors.Is(err, commands.ErrNotLodgingOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid room data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List room rules
// @Description List the pricing rules configured for a room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {array} resdto.RuleResponse
// @Failure 400 {object} map[string]string
// @Router /rooms/{id}/rules [get]
func (h *LodgingHandler) ListRoomRules(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	views, err := h.lodgingQueries.ListRoomRules(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRuleViews(views))
}

// @Summary Replace room rules
// @Description Replace the full pricing rule set of a room
// @Tags rooms
// @Accept json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.ReplaceRulesRequest true "Rule set"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rooms/{id}/rules [put]
func (h *LodgingHandler) ReplaceRoomRules(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	actor, ok := getActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ReplaceRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.lodgingCommands.ReplaceRoomRules(c.Request.Context(), id, req.ToParams(), actor.ID, actor.Role); err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, commands.ErrNotLodgingOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
		case errors.Is(err, commands.ErrInvalidRule):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid pricing rule configuration",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
