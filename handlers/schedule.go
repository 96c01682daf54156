package handlers

import (
	"errors"
	"net/http"
	"time"

	"taskweave/middleware"
	"taskweave/models"
	"taskweave/services/availability"
	"taskweave/services/schedule"
	"taskweave/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler exposes the allocation engine and the calendar view.
type ScheduleHandler struct {
	Availability availability.AvailabilityService
	Allocator    schedule.AllocationClient
	Cache        schedule.ScheduleCache
	Projector    schedule.Projector
	Tasks        schedule.TaskGatherer
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(
	avail availability.AvailabilityService,
	alloc schedule.AllocationClient,
	cache schedule.ScheduleCache,
	projector schedule.Projector,
	tasks schedule.TaskGatherer,
) *ScheduleHandler {
	return &ScheduleHandler{
		Availability: avail,
		Allocator:    alloc,
		Cache:        cache,
		Projector:    projector,
		Tasks:        tasks,
	}
}

func (h *ScheduleHandler) GetTasksHandler(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	tasks, err := h.Tasks.GatherTasks(c.Request.Context(), sess)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to load tasks", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tasks":        tasks,
		"initialHours": schedule.InitialHours(tasks),
	})
}

func (h *ScheduleHandler) BuildScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body struct {
		TaskHours map[string]string `json:"task_hours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	requests := models.TaskHourRequest{}
	for taskID, raw := range body.TaskHours {
		hours, err := schedule.ParseHours(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hours value", "message": err.Error()})
			return
		}
		requests[taskID] = hours
	}

	week, err := h.Availability.Load(c.Request.Context(), sess)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to load availability", err.Error())
		return
	}

	result, err := h.Allocator.Allocate(c.Request.Context(), sess, requests, week)
	if err != nil {
		var vErr *schedule.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     vErr.Kind,
				"message":   vErr.Message,
				"available": vErr.Available,
			})
			return
		}
		var aErr *schedule.AllocationError
		if errors.As(err, &aErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": aErr.Message})
			return
		}
		logger.Error("allocation failed", zap.String("userID", sess.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate schedule"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// parseForDate reads the optional date query parameter, defaulting to today.
func parseForDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), true
	}
	forDate, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date; expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return forDate, true
}

func (h *ScheduleHandler) CurrentScheduleHandler(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	forDate, ok := parseForDate(c)
	if !ok {
		return
	}

	snapshot, err := h.Cache.Read(c.Request.Context(), sess)
	if err != nil {
		if errors.Is(err, schedule.ErrNoSnapshot) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No schedule found"})
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "Failed to load schedule", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"days":  h.Projector.Project(snapshot, forDate),
		"chart": h.Projector.Chart(snapshot),
	})
}

func (h *ScheduleHandler) RefreshScheduleHandler(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	forDate, ok := parseForDate(c)
	if !ok {
		return
	}

	snapshot, err := h.Cache.Refresh(c.Request.Context(), sess)
	if err != nil {
		if errors.Is(err, schedule.ErrNoSnapshot) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No schedule found"})
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "Failed to refresh schedule", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"days":  h.Projector.Project(snapshot, forDate),
		"chart": h.Projector.Chart(snapshot),
	})
}

func (h *ScheduleHandler) InvalidateScheduleHandler(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.Cache.Invalidate(c.Request.Context(), sess); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to invalidate cache", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule cache invalidated"})
}
