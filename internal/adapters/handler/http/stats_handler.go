package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/mindmate-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/mindmate-engine/internal/core/domain"
	"github.com/comitanigiacomo/mindmate-engine/internal/core/services"
)

type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	stats := r.Group("/stats")
	{
		stats.GET("/weekly", h.GetWeeklyStats)
		stats.GET("/recommendations", h.GetRecommendations)
		stats.GET("/distribution", h.GetDistribution)
		stats.GET("/trend", h.GetTrend)
		stats.GET("/recent", h.GetRecentSeries)
	}
}

// GetWeeklyStats godoc
// @Summary   Average, streak and dominant mood of the last seven entries
// @Tags      stats
// @Produce   json
// @Security  BearerAuth
// @Success   200 {object} domain.WeeklyStats
// @Router    /stats/weekly [get]
func (h *StatsHandler) GetWeeklyStats(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		handleError(c, domain.ErrUnauthenticated)
		return
	}

	stats, err := h.svc.GetWeeklyStats(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetRecommendations godoc
// @Summary   Suggestions based on the recent prevailing mood
// @Tags      stats
// @Produce   json
// @Security  BearerAuth
// @Success   200 {array} domain.Recommendation
// @Router    /stats/recommendations [get]
func (h *StatsHandler) GetRecommendations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		handleError(c, domain.ErrUnauthenticated)
		return
	}

	recs, err := h.svc.GetRecommendations(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, recs)
}

// GetDistribution godoc
// @Summary   Number of entries per mood over the whole history
// @Tags      stats
// @Produce   json
// @Security  BearerAuth
// @Success   200 {array} domain.MoodCount
// @Router    /stats/distribution [get]
func (h *StatsHandler) GetDistribution(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		handleError(c, domain.ErrUnauthenticated)
		return
	}

	dist, err := h.svc.GetDistribution(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dist)
}

// GetTrend godoc
// @Summary   Entries of the last N days, oldest first
// @Tags      stats
// @Produce   json
// @Security  BearerAuth
// @Param     days query    int false "Window in days (default 30, max 366)"
// @Success   200  {array}  domain.TrendPoint
// @Failure   400  {object} errorResponse
// @Router    /stats/trend [get]
func (h *StatsHandler) GetTrend(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		handleError(c, domain.ErrUnauthenticated)
		return
	}

	days, ok := positiveQuery(c, "days")
	if !ok {
		return
	}

	trend, err := h.svc.GetTrend(c.Request.Context(), userID, days)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, trend)
}

// GetRecentSeries godoc
// @Summary   Scores of the last N entries, oldest first
// @Tags      stats
// @Produce   json
// @Security  BearerAuth
// @Param     limit query    int false "Number of entries (default 7, max 366)"
// @Success   200   {array}  domain.TrendPoint
// @Failure   400   {object} errorResponse
// @Router    /stats/recent [get]
func (h *StatsHandler) GetRecentSeries(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		handleError(c, domain.ErrUnauthenticated)
		return
	}

	limit, ok := positiveQuery(c, "limit")
	if !ok {
		return
	}

	series, err := h.svc.GetRecentSeries(c.Request.Context(), userID, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, series)
}

// positiveQuery returns 0 when the parameter is absent and writes a 400 when
// it is not a positive integer.
func positiveQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: name + " must be a positive integer"})
		return 0, false
	}
	return n, true
}
