// Package httpapi exposes parse results read-only over HTTP.
package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/alexanderramin/prodsched/internal/repository"
	"github.com/alexanderramin/prodsched/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler serves the schedule endpoints.
type Handler struct {
	schedule service.ScheduleService
	ingests  service.IngestService
}

// NewHandler creates a Handler. ingests may be nil, in which case the
// history endpoints answer 404.
func NewHandler(schedule service.ScheduleService, ingests service.IngestService) *Handler {
	return &Handler{schedule: schedule, ingests: ingests}
}

// RegisterRoutes mounts the endpoints on router, normally the /api group.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", h.Health)

	router.GET("/schedule", h.GetSchedule)
	router.GET("/schedule/report", h.GetReport)
	router.GET("/schedule/weekly", h.GetWeekly)

	router.GET("/ingests", h.ListIngests)
	router.GET("/ingests/:id", h.GetIngest)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetSchedule always answers 200; a failed parse is an empty snapshot.
func (h *Handler) GetSchedule(c *gin.Context) {
	c.JSON(http.StatusOK, h.schedule.Parse(c.Request.Context()))
}

// GetReport answers 502 with the acquisition diagnostics when the parse fails.
func (h *Handler) GetReport(c *gin.Context) {
	res, err := h.schedule.ParseWithReport(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":       err.Error(),
			"acquisition": res.Report.Acquisition,
		})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) GetWeekly(c *gin.Context) {
	dept := domain.Department(c.Query("department"))
	if dept != "" && !domain.ValidDepartments[dept] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown department"})
		return
	}
	rows := service.FilterWeekly(h.schedule.Weekly(c.Request.Context()), service.WeeklyFilter{
		Line:       domain.ProductLine(c.Query("line")),
		Department: dept,
	})
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) ListIngests(c *gin.Context) {
	if h.ingests == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no history store configured"})
		return
	}
	limit := 20
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}
	recs, err := h.ingests.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if recs == nil {
		recs = []*domain.IngestRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"items": recs})
}

func (h *Handler) GetIngest(c *gin.Context) {
	if h.ingests == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no history store configured"})
		return
	}
	rec, err := h.ingests.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}
