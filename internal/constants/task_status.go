package constants

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// TaskStatuses lists every status in display order.
var TaskStatuses = []TaskStatus{StatusPending, StatusInProgress, StatusCompleted}

func ParseTaskStatus(s string) (TaskStatus, bool) {
	st := TaskStatus(s)
	return st, st.IsValid()
}

func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type StatusFilter string

const (
	FilterAll        StatusFilter = "all"
	FilterPending    StatusFilter = StatusFilter(StatusPending)
	FilterInProgress StatusFilter = StatusFilter(StatusInProgress)
	FilterCompleted  StatusFilter = StatusFilter(StatusCompleted)
)

// ParseStatusFilter treats an empty string as FilterAll.
func ParseStatusFilter(s string) (StatusFilter, bool) {
	if s == "" {
		return FilterAll, true
	}
	f := StatusFilter(s)
	if f == FilterAll {
		return f, true
	}
	return f, TaskStatus(f).IsValid()
}

// Status returns the status the filter selects; ok is false for FilterAll.
func (f StatusFilter) Status() (TaskStatus, bool) {
	if f == FilterAll {
		return "", false
	}
	return TaskStatus(f), true
}
