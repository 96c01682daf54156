package handlers

import (
	"net/http"

	"taskweave/middleware"
	"taskweave/models"
	"taskweave/services/availability"
	"taskweave/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the weekly free-time grid.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// fillWeek renders a grid with all seven days present, empty arrays included.
func fillWeek(week models.WeekAvailability) map[string][]string {
	out := make(map[string][]string, len(models.WeekDays))
	for _, day := range models.WeekDays {
		if slots := week[day]; slots != nil {
			out[day] = slots
		} else {
			out[day] = []string{}
		}
	}
	return out
}

func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	week, err := h.Service.Load(c.Request.Context(), sess)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to load availability", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"schedule":   fillWeek(week),
		"totalHours": week.TotalHours(),
		"declared":   week.Declared(),
	})
}

func (h *AvailabilityHandler) SaveAvailabilityHandler(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var payload map[string][]string
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	week := models.WeekAvailability{}
	for _, day := range models.WeekDays {
		week[day] = []string{}
		for _, slot := range payload[day] {
			week.Add(day, slot)
		}
	}

	if err := h.Service.Save(c.Request.Context(), sess, week); err != nil {
		utils.GetLogger().Error("availability save failed",
			zap.String("userID", sess.UserID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to save schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule saved successfully"})
}

func (h *AvailabilityHandler) ToggleAvailabilityHandler(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body struct {
		Day  string `json:"day" binding:"required"`
		Slot string `json:"slot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing day or slot in request body"})
		return
	}

	week, err := h.Service.Load(c.Request.Context(), sess)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to load availability", err.Error())
		return
	}
	if week == nil {
		week = models.WeekAvailability{}
	}

	if err := h.Service.Toggle(week, body.Day, body.Slot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Toggles stay in memory until the explicit save action.
	c.JSON(http.StatusOK, gin.H{"schedule": fillWeek(week), "totalHours": week.TotalHours()})
}
