package domain

// RequestOverview summarizes a month of request activity.
type RequestOverview struct {
	TotalRequests         int32   `json:"total_requests"`
	PendingRequests       int32   `json:"pending_requests"`
	ApprovalRate          float64 `json:"approval_rate"`
	AverageCompletionTime float64 `json:"average_completion_time"`
}

// DeclarationTypeCount is the per-template-type request volume.
type DeclarationTypeCount struct {
	DeclarationID   string `json:"declaration_id"`
	DeclarationType string `json:"declaration_type"`
	TotalRequests   int32  `json:"total_requests"`
}

// DayTotal is the raw per-day volume as it comes out of the store.
type DayTotal struct {
	Day   int32
	Total int32
}

// DailyCount is the request volume for one calendar day, with Date
// rendered as zero-padded "DD/MM".
type DailyCount struct {
	Date          string `json:"date"`
	TotalRequests int32  `json:"total_requests"`
}
