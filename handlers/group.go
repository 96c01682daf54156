package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"taskweave/middleware"
	"taskweave/services/group"
	"taskweave/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GroupHandler exposes group task distribution.
type GroupHandler struct {
	Service group.GroupService
}

// NewGroupHandler constructs a GroupHandler.
func NewGroupHandler(svc group.GroupService) *GroupHandler {
	return &GroupHandler{Service: svc}
}

type commitResultView struct {
	TaskID  int    `json:"taskId"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (h *GroupHandler) DistributeGroupTasksHandler(c *gin.Context) {
	logger := utils.GetLogger()
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	groupID, err := strconv.Atoi(c.Param("groupId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group id"})
		return
	}

	tasks, err := h.Service.Distribute(c.Request.Context(), sess, groupID)
	if err != nil {
		if errors.Is(err, group.ErrNoTasks) || errors.Is(err, group.ErrNoMembers) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("distribution failed",
			zap.Int("groupID", groupID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to distribute tasks", err.Error())
		return
	}

	results := h.Service.Commit(c.Request.Context(), sess, tasks)

	views := make([]commitResultView, 0, len(results))
	failed := 0
	for _, r := range results {
		view := commitResultView{TaskID: r.TaskID, Success: r.Succeeded()}
		if r.Err != nil {
			view.Error = r.Err.Error()
			failed++
		}
		views = append(views, view)
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks":   tasks,
		"results": views,
		"failed":  failed,
	})
}
