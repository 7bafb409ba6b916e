package leave

type CreateLeaveRequest struct {
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
}

type ResolveLeaveRequest struct {
	Status   string `json:"status" binding:"required,oneof=approved rejected cancelled"`
	Comments string `json:"comments"`
}

type CreateApprovalRequest struct {
	LeaveID  string `json:"leave_id" binding:"required,uuid"`
	Comments string `json:"comments"`
}

type LeaveResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	LeaveTypeID string `json:"leave_type_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Duration    int    `json:"duration"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type ApprovalResponse struct {
	ID         string `json:"id"`
	LeaveID    string `json:"leave_id"`
	ApproverID string `json:"approver_id"`
	Comments   string `json:"comments,omitempty"`
	ApprovedAt string `json:"approved_at"`
}
