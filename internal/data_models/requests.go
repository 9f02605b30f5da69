package dto

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     string  `json:"due_date"`
	DueTime     string  `json:"due_time"`
	CategoryID  *string `json:"category_id"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CreateEventRequest carries RFC 3339 timestamps.
type CreateEventRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	StartAt     string  `json:"start_at"`
	EndAt       *string `json:"end_at"`
	TaskID      *string `json:"task_id"`
}

type UpdatePreferencesRequest struct {
	DeadlineNotification bool   `json:"deadline_notification"`
	EmailNotification    bool   `json:"email_notification"`
	PushNotification     bool   `json:"push_notification"`
	ReminderTime         int    `json:"reminder_time"`
	Sound                string `json:"sound"`
	Volume               int    `json:"volume"`
}
