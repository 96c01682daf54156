// File: services/schedule/projector.go
package schedule

import (
	"fmt"
	"sort"
	"time"

	"taskweave/models"
	"taskweave/utils"

	"go.uber.org/zap"
)

// DayStartHour is the fixed hour at which within-day layout begins.
const DayStartHour = 9

// HeightPerHour is the derived row height per scheduled hour.
const HeightPerHour = 50

// dayIndex maps display-form day names to their Sunday-based weekday index.
var dayIndex = map[string]int{
	"Sunday":    0,
	"Monday":    1,
	"Tuesday":   2,
	"Wednesday": 3,
	"Thursday":  4,
	"Friday":    5,
	"Saturday":  6,
}

// DefaultProjector is the production Projector. It is stateless: projection
// is a pure function of the snapshot and the reference date, so projecting
// the same snapshot twice for the same date yields identical output.
type DefaultProjector struct{}

// Project re-keys the snapshot by ISO calendar date for the week containing
// forDate. The week is anchored to that week's Sunday; dates are computed
// fresh on every call and never stored. Entries with an unrecognized day or a
// missing task list are skipped with a warning, not guessed at.
func (DefaultProjector) Project(snapshot models.ScheduleSnapshot, forDate time.Time) models.CalendarIndex {
	logger := utils.GetLogger()
	weekStart := forDate.AddDate(0, 0, -int(forDate.Weekday()))

	index := models.CalendarIndex{}
	for _, entry := range snapshot {
		offset, known := dayIndex[entry.Day]
		if !known || entry.Tasks == nil {
			logger.Warn("skipping malformed schedule entry",
				zap.String("day", entry.Day),
				zap.Bool("hasTasks", entry.Tasks != nil))
			continue
		}
		date := weekStart.AddDate(0, 0, offset).Format("2006-01-02")
		index[date] = append(index[date], CalculateTaskTimes(entry.Tasks)...)
	}
	return index
}

// CalculateTaskTimes lays a day's tasks out as non-overlapping sequential
// blocks in snapshot order (never re-sorted by priority), starting at the
// fixed day-start hour: each block ends where its hours run out and the next
// one starts there. No gaps, no conflict detection, and no re-validation
// against availability; a day's total can exceed its declared free hours.
func CalculateTaskTimes(tasks []models.AssignedTask) []models.TaskBlock {
	blocks := make([]models.TaskBlock, 0, len(tasks))
	cursor := DayStartHour
	for _, task := range tasks {
		duration := task.Hours
		if duration <= 0 {
			duration = 1
		}
		priority := task.Priority
		if priority == 0 {
			priority = 4
		}
		stored := task.StartTime
		if stored == "" {
			stored = "00:00"
		}

		start := fmt.Sprintf("%02d:00", cursor)
		end := fmt.Sprintf("%02d:00", cursor+duration)
		blocks = append(blocks, models.TaskBlock{
			Name:      task.Name,
			GroupName: task.GroupName,
			Height:    duration * HeightPerHour,
			Duration:  duration,
			Priority:  priority,
			StartTime: stored,
			Start:     start,
			End:       end,
			TimeRange: FormatTimeRange(start, duration),
		})
		cursor += duration
	}
	return blocks
}

// FormatTimeRange converts a 24-hour start time and a duration in hours into
// a 12-hour display string, e.g. "09:00 AM - 11:00 AM". The duration is
// converted to minutes for the end-time computation.
func FormatTimeRange(start string, hours int) string {
	var startHour, startMinute int
	if _, err := fmt.Sscanf(start, "%d:%d", &startHour, &startMinute); err != nil {
		return "Time not available"
	}
	startTotal := startHour*60 + startMinute
	endTotal := startTotal + hours*60
	return fmt.Sprintf("%s - %s", formatClock(startTotal), formatClock(endTotal))
}

func formatClock(totalMinutes int) string {
	hour := (totalMinutes / 60) % 24
	minute := totalMinutes % 60
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%02d:%02d %s", display, minute, meridiem)
}

// Chart produces per-day total hours for the weekly bar chart, fixed
// Sunday-through-Saturday order, for the days present in the snapshot.
func (DefaultProjector) Chart(snapshot models.ScheduleSnapshot) models.ChartData {
	valid := make([]models.DaySchedule, 0, len(snapshot))
	for _, entry := range snapshot {
		if _, known := dayIndex[entry.Day]; known && entry.Tasks != nil {
			valid = append(valid, entry)
		}
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return dayIndex[valid[i].Day] < dayIndex[valid[j].Day]
	})

	chart := models.ChartData{
		Labels: make([]string, 0, len(valid)),
		Hours:  make([]int, 0, len(valid)),
	}
	for _, entry := range valid {
		total := 0
		for _, task := range entry.Tasks {
			if task.Hours > 0 {
				total += task.Hours
			}
		}
		chart.Labels = append(chart.Labels, entry.Day)
		chart.Hours = append(chart.Hours, total)
	}
	return chart
}
