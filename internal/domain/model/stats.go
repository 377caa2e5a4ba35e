package model

// DashboardStats backs the admin dashboard counters.
type DashboardStats struct {
	TotalComplaints    int `json:"total_complaints"`
	PendingComplaints  int `json:"pending_complaints"`
	ResolvedComplaints int `json:"resolved_complaints"`
	TotalResidents     int `json:"total_residents"`
	TotalStaff         int `json:"total_staff"`
	ActiveNotices      int `json:"active_notices"`
}
