package schedule

import (
	"testing"
	"time"

	"taskweave/models"

	"github.com/stretchr/testify/require"
)

func TestCalculateTaskTimesSequentialLayout(t *testing.T) {
	blocks := CalculateTaskTimes([]models.AssignedTask{
		{Name: "A", Hours: 2},
		{Name: "B", Hours: 1},
		{Name: "C", Hours: 3},
	})
	require.Len(t, blocks, 3)

	// Input order is preserved; each block starts where the previous ended.
	require.Equal(t, "09:00", blocks[0].Start)
	require.Equal(t, "11:00", blocks[0].End)
	require.Equal(t, "11:00", blocks[1].Start)
	require.Equal(t, "12:00", blocks[1].End)
	require.Equal(t, "12:00", blocks[2].Start)
	require.Equal(t, "15:00", blocks[2].End)

	require.Equal(t, "09:00 AM - 11:00 AM", blocks[0].TimeRange)
	require.Equal(t, "11:00 AM - 12:00 PM", blocks[1].TimeRange)
	require.Equal(t, "12:00 PM - 03:00 PM", blocks[2].TimeRange)

	require.Equal(t, 100, blocks[0].Height)
	require.Equal(t, 50, blocks[1].Height)
	require.Equal(t, 150, blocks[2].Height)
}

func TestCalculateTaskTimesDefaults(t *testing.T) {
	blocks := CalculateTaskTimes([]models.AssignedTask{{Name: "bare"}})
	require.Len(t, blocks, 1)

	require.Equal(t, 1, blocks[0].Duration)
	require.Equal(t, 4, blocks[0].Priority)
	require.Equal(t, "00:00", blocks[0].StartTime)
	require.Equal(t, 50, blocks[0].Height)
	require.Equal(t, "09:00", blocks[0].Start)
	require.Equal(t, "10:00", blocks[0].End)
}

func TestCalculateTaskTimesKeepsStoredStartTime(t *testing.T) {
	blocks := CalculateTaskTimes([]models.AssignedTask{
		{Name: "A", Hours: 2, StartTime: "14:30", Priority: 1},
	})
	// The stored start time is carried through untouched while placement
	// still comes from the sequential layout.
	require.Equal(t, "14:30", blocks[0].StartTime)
	require.Equal(t, "09:00", blocks[0].Start)
	require.Equal(t, 1, blocks[0].Priority)
}

func TestFormatTimeRange(t *testing.T) {
	require.Equal(t, "09:00 AM - 11:00 AM", FormatTimeRange("9:00", 2))
	require.Equal(t, "11:00 AM - 01:00 PM", FormatTimeRange("11:00", 2))
	require.Equal(t, "12:00 AM - 01:00 AM", FormatTimeRange("0:00", 1))
	require.Equal(t, "11:00 PM - 12:00 AM", FormatTimeRange("23:00", 1))
	require.Equal(t, "02:30 PM - 04:30 PM", FormatTimeRange("14:30", 2))
	require.Equal(t, "Time not available", FormatTimeRange("later", 1))
}

func TestProjectAnchorsWeekToSunday(t *testing.T) {
	snapshot := models.ScheduleSnapshot{
		{Day: "Sunday", Tasks: []models.AssignedTask{{Name: "S", Hours: 1}}},
		{Day: "Wednesday", Tasks: []models.AssignedTask{{Name: "W", Hours: 2}}},
	}

	// 2026-08-27 is a Thursday; its week's Sunday is 2026-08-23.
	forDate := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	index := DefaultProjector{}.Project(snapshot, forDate)

	require.Len(t, index, 2)
	require.Contains(t, index, "2026-08-23")
	require.Contains(t, index, "2026-08-26")
	require.Equal(t, "S", index["2026-08-23"][0].Name)
	require.Equal(t, "W", index["2026-08-26"][0].Name)
}

func TestProjectSameSnapshotDifferentWeeks(t *testing.T) {
	snapshot := models.ScheduleSnapshot{
		{Day: "Monday", Tasks: []models.AssignedTask{{Name: "M", Hours: 1}}},
	}
	p := DefaultProjector{}

	first := p.Project(snapshot, time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC))
	second := p.Project(snapshot, time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC))

	require.Contains(t, first, "2026-08-24")
	require.Contains(t, second, "2026-08-31")
}

func TestProjectIsIdempotent(t *testing.T) {
	snapshot := models.ScheduleSnapshot{
		{Day: "Tuesday", Tasks: []models.AssignedTask{{Name: "A", Hours: 2}, {Name: "B", Hours: 1}}},
	}
	forDate := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	p := DefaultProjector{}

	require.Equal(t, p.Project(snapshot, forDate), p.Project(snapshot, forDate))
}

func TestProjectSkipsMalformedEntries(t *testing.T) {
	snapshot := models.ScheduleSnapshot{
		{Day: "Funday", Tasks: []models.AssignedTask{{Name: "X", Hours: 1}}},
		{Day: "Monday", Tasks: nil},
		{Day: "Monday", Tasks: []models.AssignedTask{{Name: "Keep", Hours: 1}}},
	}
	index := DefaultProjector{}.Project(snapshot, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC))

	require.Len(t, index, 1)
	require.Len(t, index["2026-08-24"], 1)
	require.Equal(t, "Keep", index["2026-08-24"][0].Name)
}

func TestChartOrdersDaysSundayFirst(t *testing.T) {
	snapshot := models.ScheduleSnapshot{
		{Day: "Friday", Tasks: []models.AssignedTask{{Name: "F", Hours: 2}}},
		{Day: "Sunday", Tasks: []models.AssignedTask{{Name: "S1", Hours: 1}, {Name: "S2", Hours: 3}}},
		{Day: "Monday", Tasks: []models.AssignedTask{}},
	}
	chart := DefaultProjector{}.Chart(snapshot)

	require.Equal(t, []string{"Sunday", "Monday", "Friday"}, chart.Labels)
	require.Equal(t, []int{4, 0, 2}, chart.Hours)
}

func TestChartIgnoresMalformedAndNonPositiveHours(t *testing.T) {
	snapshot := models.ScheduleSnapshot{
		{Day: "Nope", Tasks: []models.AssignedTask{{Name: "X", Hours: 5}}},
		{Day: "Tuesday", Tasks: []models.AssignedTask{{Name: "A", Hours: 2}, {Name: "B", Hours: -1}}},
	}
	chart := DefaultProjector{}.Chart(snapshot)

	require.Equal(t, []string{"Tuesday"}, chart.Labels)
	require.Equal(t, []int{2}, chart.Hours)
}
