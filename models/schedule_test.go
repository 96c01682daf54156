package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDayScheduleUnmarshalWellFormed(t *testing.T) {
	data := []byte(`{"day":"Monday","tasks":[{"task":"Write report","time":2,"priority":1}]}`)

	var day DaySchedule
	require.NoError(t, json.Unmarshal(data, &day))
	require.True(t, day.Valid())
	require.Equal(t, "Monday", day.Day)
	require.Len(t, day.Tasks, 1)
	require.Equal(t, "Write report", day.Tasks[0].Name)
	require.Equal(t, 2, day.Tasks[0].Hours)
}

func TestDayScheduleUnmarshalToleratesMalformedTasks(t *testing.T) {
	// A non-list tasks field decodes into an invalid entry, not an error,
	// so one bad day never poisons the whole snapshot.
	cases := [][]byte{
		[]byte(`{"day":"Monday","tasks":"not a list"}`),
		[]byte(`{"day":"Monday","tasks":42}`),
		[]byte(`{"day":"Monday"}`),
		[]byte(`{"tasks":[]}`),
	}
	for _, data := range cases {
		var day DaySchedule
		require.NoError(t, json.Unmarshal(data, &day))
		require.False(t, day.Valid())
	}
}

func TestDayScheduleUnmarshalEmptyListIsValid(t *testing.T) {
	var day DaySchedule
	require.NoError(t, json.Unmarshal([]byte(`{"day":"Friday","tasks":[]}`), &day))
	require.True(t, day.Valid())
	require.NotNil(t, day.Tasks)
	require.Empty(t, day.Tasks)
}

func TestScheduleSnapshotRoundTrip(t *testing.T) {
	snapshot := ScheduleSnapshot{
		{Day: "Sunday", Tasks: []AssignedTask{{Name: "T1", Hours: 3}}},
		{Day: "Monday", Tasks: []AssignedTask{}},
	}
	data, err := json.Marshal(snapshot)
	require.NoError(t, err)

	var back ScheduleSnapshot
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, snapshot, back)
}

func TestStructuredTasksAll(t *testing.T) {
	s := StructuredTasks{
		Personal: []Task{{ID: 1, Title: "A"}},
		Groups: map[string][]Task{
			"Team": {{ID: 2, Title: "B"}, {ID: 3, Title: "C"}},
		},
	}
	require.Len(t, s.All(), 3)
	require.Empty(t, StructuredTasks{}.All())
}
