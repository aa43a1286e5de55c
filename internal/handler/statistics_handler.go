package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	statisticsService service.StatisticsService
}

func NewStatisticsHandler(statisticsService service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

// RegisterRoutes binds the statistics endpoint; callers must already be
// authenticated (middleware applied by the caller)
func (h *StatisticsHandler) RegisterRoutes(rg *gin.RouterGroup, middlewares ...gin.HandlerFunc) {
	rg.GET("/statistics", append(middlewares, h.GetStatistiques)...)
}

// GetStatistiques handles GET /statistics for the dashboard
// @Summary      Get dashboard statistics
// @Description  Per-collection counts, chantier status breakdown and budget totals
// @Tags         statistics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=model.StatistiquesResponse}
// @Failure      401  {object}  response.Response
// @Router       /statistics [get]
func (h *StatisticsHandler) GetStatistiques(c *gin.Context) {
	stats, err := h.statisticsService.GetStatistiques(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to compute statistics"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, stats))
}
