package models

// TaskStatusInProgress marks the tasks eligible for scheduling.
const TaskStatusInProgress = "In Progress"

// Task mirrors the upstream task-manager task object.
type Task struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Status     string `json:"status,omitempty"`
	Priority   int    `json:"priority,omitempty"`
	DueDate    string `json:"due_date,omitempty"`
	GroupID    int    `json:"group_id,omitempty"`
	AssignedTo int    `json:"assigned_to,omitempty"`
}

// TaskHourRequest maps a task identifier to its requested effort in whole
// hours. Values are bounded 1-8 inclusive; anything else is rejected before
// an allocation request is issued.
type TaskHourRequest map[string]int

// Sum returns the total requested hours across all tasks.
func (r TaskHourRequest) Sum() int {
	total := 0
	for _, h := range r {
		total += h
	}
	return total
}

// StructuredTasks groups a user's schedulable tasks: personal ones plus group
// tasks bucketed by group name.
type StructuredTasks struct {
	Personal []Task            `json:"personal"`
	Groups   map[string][]Task `json:"groups"`
}

// All flattens personal and group tasks into one list.
func (s StructuredTasks) All() []Task {
	out := append([]Task{}, s.Personal...)
	for _, tasks := range s.Groups {
		out = append(out, tasks...)
	}
	return out
}
