package dashboard

// OfficeDashboardResponse is the office home screen summary
type OfficeDashboardResponse struct {
	Month               string               `json:"month"` // Format: "YYYY-MM"
	ApprovedExtraShifts int64                `json:"approved_extra_shifts"`
	PendingRequests     int64                `json:"pending_requests"`
	EmployeeCount       int64                `json:"employee_count"`
	RecentRequests      []RecentRequestItem  `json:"recent_requests"`
	PendingByManager    []ManagerPendingItem `json:"pending_by_manager"`
	UpdatedAt           string               `json:"updated_at"`
}

// RecentRequestItem is one row of the latest requests list
type RecentRequestItem struct {
	ID           string  `json:"id"`
	EmployeeName string  `json:"employee_name"`
	Type         string  `json:"type"`
	Status       string  `json:"status"`
	StartDate    string  `json:"start_date"` // Format: "YYYY-MM-DD"
	EndDate      *string `json:"end_date,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// ManagerPendingItem counts requests waiting on one manager
type ManagerPendingItem struct {
	ManagerID   string `json:"manager_id"`
	ManagerName string `json:"manager_name"`
	Pending     int64  `json:"pending"`
}
