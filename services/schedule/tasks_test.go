package schedule

import (
	"context"
	"fmt"
	"testing"

	"taskweave/models"

	"github.com/stretchr/testify/require"
)

func (f *fakeAPI) UserTasks(ctx context.Context, sess models.Session) ([]models.Task, error) {
	return f.personalTasks, nil
}

func (f *fakeAPI) UserGroupTasks(ctx context.Context, sess models.Session) ([]models.Task, error) {
	return f.groupTasks, nil
}

func (f *fakeAPI) GroupByID(ctx context.Context, sess models.Session, groupID int) (*models.Group, error) {
	f.groupLookups++
	group, ok := f.groups[groupID]
	if !ok {
		return nil, fmt.Errorf("group %d not found", groupID)
	}
	return group, nil
}

func TestGatherTasksFiltersAndBuckets(t *testing.T) {
	api := &fakeAPI{
		personalTasks: []models.Task{
			{ID: 1, Title: "P1", Status: models.TaskStatusInProgress},
			{ID: 2, Title: "P2", Status: "Completed"},
		},
		groupTasks: []models.Task{
			{ID: 3, Title: "G1", Status: models.TaskStatusInProgress, GroupID: 7},
			{ID: 4, Title: "G2", Status: models.TaskStatusInProgress, GroupID: 7},
			{ID: 5, Title: "G3", Status: "Done", GroupID: 7},
		},
		groups: map[int]*models.Group{7: {ID: 7, Name: "Backend"}},
	}
	g := &DefaultTaskGatherer{API: api}

	structured, err := g.GatherTasks(context.Background(), testSession)
	require.NoError(t, err)

	require.Len(t, structured.Personal, 1)
	require.Equal(t, "P1", structured.Personal[0].Title)
	require.Len(t, structured.Groups["Backend"], 2)
	require.Equal(t, 1, api.groupLookups, "each group resolves exactly once")
}

func TestGatherTasksUnknownGroupFallback(t *testing.T) {
	api := &fakeAPI{
		groupTasks: []models.Task{
			{ID: 3, Title: "G1", Status: models.TaskStatusInProgress, GroupID: 9},
		},
		groups: map[int]*models.Group{},
	}
	g := &DefaultTaskGatherer{API: api}

	structured, err := g.GatherTasks(context.Background(), testSession)
	require.NoError(t, err)
	require.Len(t, structured.Groups[UnknownGroupName], 1)
}

func TestInitialHours(t *testing.T) {
	hours := InitialHours(&models.StructuredTasks{
		Personal: []models.Task{{ID: 1}, {ID: 2}},
		Groups:   map[string][]models.Task{"Team": {{ID: 3}}},
	})
	require.Equal(t, models.TaskHourRequest{"1": 1, "2": 1, "3": 1}, hours)
}
