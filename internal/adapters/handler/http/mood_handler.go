package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/mindmate-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/mindmate-engine/internal/core/domain"
	"github.com/comitanigiacomo/mindmate-engine/internal/core/services"
)

type MoodHandler struct {
	svc *services.MoodService
}

func NewMoodHandler(svc *services.MoodService) *MoodHandler {
	return &MoodHandler{
		svc: svc,
	}
}

type checkInRequest struct {
	Mood string   `json:"mood" binding:"required,mood" example:"GOOD"`
	Note string   `json:"note" example:"Long walk by the river"`
	Tags []string `json:"tags" example:"outdoors"`
}

type todayResponse struct {
	Entry *domain.MoodEntry `json:"entry"`
}

func (h *MoodHandler) RegisterRoutes(router *gin.RouterGroup) {
	moods := router.Group("/moods")
	{
		moods.POST("", h.CheckIn)
		moods.GET("", h.History)
		moods.GET("/today", h.Today)
	}
}

// CheckIn godoc
// @Summary   Record a mood check-in
// @Tags      moods
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body body     checkInRequest true "Check-in"
// @Success   201  {object} domain.MoodEntry
// @Failure   400  {object} errorResponse
// @Failure   413  {object} errorResponse
// @Router    /moods [post]
func (h *MoodHandler) CheckIn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		handleError(c, domain.ErrUnauthenticated)
		return
	}

	var req checkInRequest
	if !bindJSON(c, &req) {
		return
	}

	mood, err := domain.ParseMood(req.Mood)
	if err != nil {
		handleError(c, err)
		return
	}

	entry, err := h.svc.CheckIn(c.Request.Context(), services.CheckInInput{
		UserID: userID,
		Mood:   mood,
		Note:   req.Note,
		Tags:   req.Tags,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	middleware.TrackCheckIn(string(entry.Mood))
	c.JSON(http.StatusCreated, entry)
}

// Today godoc
// @Summary   Today's check-in, if any
// @Tags      moods
// @Produce   json
// @Security  BearerAuth
// @Success   200 {object} todayResponse
// @Router    /moods/today [get]
func (h *MoodHandler) Today(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		handleError(c, domain.ErrUnauthenticated)
		return
	}

	entry, err := h.svc.GetTodayEntry(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, todayResponse{Entry: entry})
}

// History godoc
// @Summary      Full history, newest first
// @Description  With q set, only entries whose note or tags contain q (case-insensitive).
// @Tags         moods
// @Produce      json
// @Security     BearerAuth
// @Param        q   query    string false "Search text"
// @Success      200 {array}  domain.MoodEntry
// @Router       /moods [get]
func (h *MoodHandler) History(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		handleError(c, domain.ErrUnauthenticated)
		return
	}

	var (
		entries []*domain.MoodEntry
		err     error
	)
	if q, has := c.GetQuery("q"); has {
		entries, err = h.svc.Search(c.Request.Context(), userID, q)
	} else {
		entries, err = h.svc.GetHistory(c.Request.Context(), userID)
	}
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
