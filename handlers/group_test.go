package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskweave/models"
	"taskweave/services/group"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubGroupService struct {
	tasks   []models.Task
	distErr error
	results []group.CommitResult
}

func (s *stubGroupService) Distribute(ctx context.Context, sess models.Session, groupID int) ([]models.Task, error) {
	return s.tasks, s.distErr
}

func (s *stubGroupService) Commit(ctx context.Context, sess models.Session, tasks []models.Task) []group.CommitResult {
	return s.results
}

func performDistribute(t *testing.T, svc group.GroupService, groupID string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewGroupHandler(svc)

	router := gin.New()
	router.POST("/groups/:groupId/distribute", withSession(h.DistributeGroupTasksHandler))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/groups/"+groupID+"/distribute", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestDistributeGroupTasksMixedOutcome(t *testing.T) {
	svc := &stubGroupService{
		tasks: []models.Task{{ID: 1, AssignedTo: 10}, {ID: 2, AssignedTo: 20}},
		results: []group.CommitResult{
			{TaskID: 1},
			{TaskID: 2, Err: errors.New("conflict")},
		},
	}

	w := performDistribute(t, svc, "7")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	require.Equal(t, float64(1), body["failed"])

	results := body["results"].([]interface{})
	require.Len(t, results, 2)

	first := results[0].(map[string]interface{})
	require.Equal(t, true, first["success"])

	second := results[1].(map[string]interface{})
	require.Equal(t, false, second["success"])
	require.Equal(t, "conflict", second["error"])
}

func TestDistributeGroupTasksPreconditionFailures(t *testing.T) {
	for _, precondition := range []error{group.ErrNoTasks, group.ErrNoMembers} {
		w := performDistribute(t, &stubGroupService{distErr: precondition}, "7")
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, precondition.Error(), decodeBody(t, w)["error"])
	}
}

func TestDistributeGroupTasksUpstreamFailure(t *testing.T) {
	w := performDistribute(t, &stubGroupService{distErr: errors.New("boom")}, "7")
	require.Equal(t, http.StatusBadGateway, w.Code)
}

func TestDistributeGroupTasksRejectsBadGroupID(t *testing.T) {
	w := performDistribute(t, &stubGroupService{}, "abc")
	require.Equal(t, http.StatusBadRequest, w.Code)
}
