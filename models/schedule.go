package models

import "encoding/json"

// AssignedTask is one task placed on a day by the remote allocator. Field
// names follow the allocator's wire format.
type AssignedTask struct {
	TaskRef   string `json:"task_id,omitempty"`
	Name      string `json:"task"`
	GroupName string `json:"group_name,omitempty"`
	Hours     int    `json:"time"`
	StartTime string `json:"start_time,omitempty"` // "HH:MM", optional
	Priority  int    `json:"priority,omitempty"`   // 1 = highest .. 4 = lowest
}

// DaySchedule is one day's slice of an allocation: a display-form day name
// ("Sunday" .. "Saturday") and the allocator-ordered task list. Display order
// is preserved, never re-sorted.
type DaySchedule struct {
	Day   string         `json:"day"`
	Tasks []AssignedTask `json:"tasks"`
}

// UnmarshalJSON tolerates the malformed day entries the remote store has been
// known to return: a missing day or a non-list tasks field decodes into an
// entry with nil Tasks instead of failing the whole snapshot. Downstream
// consumers drop such entries rather than guess at them.
func (d *DaySchedule) UnmarshalJSON(data []byte) error {
	var raw struct {
		Day   string          `json:"day"`
		Tasks json.RawMessage `json:"tasks"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Day = raw.Day
	d.Tasks = nil
	if len(raw.Tasks) > 0 {
		var tasks []AssignedTask
		if err := json.Unmarshal(raw.Tasks, &tasks); err == nil {
			d.Tasks = tasks
		}
	}
	return nil
}

// Valid reports whether the entry carries both a day name and a task list.
func (d DaySchedule) Valid() bool {
	return d.Day != "" && d.Tasks != nil
}

// ScheduleSnapshot is one complete week's allocation result. It is the unit
// of caching and persistence: a snapshot is written and read whole, never
// partially.
type ScheduleSnapshot []DaySchedule

// TaskBlock is a display-ready task entry inside a CalendarIndex: the task
// annotated with its derived row height, its stored start time, and the
// computed non-overlapping placement within the day.
type TaskBlock struct {
	Name      string `json:"name"`
	GroupName string `json:"groupName,omitempty"`
	Height    int    `json:"height"`    // Hours * 50, for proportional row sizing
	Duration  int    `json:"duration"`  // hours
	Priority  int    `json:"priority"`  // defaulted to 4 when the allocator omits it
	StartTime string `json:"startTime"` // as stored in the snapshot, "00:00" when absent
	Start     string `json:"start"`     // computed within-day placement, "HH:MM"
	End       string `json:"end"`       // computed within-day placement, "HH:MM"
	TimeRange string `json:"timeRange"` // 12-hour display string
}

// CalendarIndex is a ScheduleSnapshot re-keyed by ISO calendar date
// ("2006-01-02") for the week containing a given reference date. It is always
// computed fresh from the snapshot and never stored: the same snapshot
// projects to different dates in a different calendar week.
type CalendarIndex map[string][]TaskBlock

// ChartData holds per-day total hours for the weekly bar chart, in
// Sunday-through-Saturday order for the days present in the snapshot.
type ChartData struct {
	Labels []string `json:"labels"`
	Hours  []int    `json:"hours"`
}
