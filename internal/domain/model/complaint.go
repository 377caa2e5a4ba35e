package model

import "time"

const (
	ComplaintStatusPending    = "pending"
	ComplaintStatusInProgress = "in-progress"
	ComplaintStatusResolved   = "resolved"
	ComplaintStatusRejected   = "rejected"
)

const (
	ComplaintPriorityLow      = "low"
	ComplaintPriorityMedium   = "medium"
	ComplaintPriorityHigh     = "high"
	ComplaintPriorityCritical = "critical"
)

type Complaint struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	ResidentID  string    `json:"resident_id"`
	// Denormalized from the resident's account row for list views.
	ResidentName string    `json:"resident_name,omitempty"`
	FlatNumber   *string   `json:"flat_number,omitempty"`
	AssignedTo   *string   `json:"assigned_to,omitempty"`
	AdminRemark  *string   `json:"admin_remark,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ValidComplaintStatus(s string) bool {
	switch s {
	case ComplaintStatusPending, ComplaintStatusInProgress, ComplaintStatusResolved, ComplaintStatusRejected:
		return true
	}
	return false
}

func ValidComplaintPriority(p string) bool {
	switch p {
	case ComplaintPriorityLow, ComplaintPriorityMedium, ComplaintPriorityHigh, ComplaintPriorityCritical:
		return true
	}
	return false
}
