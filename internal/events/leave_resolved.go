package events

import "time"

const LeaveResolvedTopic = "hr.leave.resolved.v1"

type LeaveResolvedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	LeaveID    string    `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	Status     string    `json:"status"`
	ApproverID string    `json:"approver_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
