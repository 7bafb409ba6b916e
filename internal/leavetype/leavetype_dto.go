package leavetype

type CreateLeaveTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	MaxDays     int    `json:"max_days" binding:"omitempty,min=0"`
}

type UpdateLeaveTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	MaxDays     int    `json:"max_days" binding:"omitempty,min=0"`
}

type LeaveTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MaxDays     int    `json:"max_days"`
}
