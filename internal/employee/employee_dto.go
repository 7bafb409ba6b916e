package employee

type UpdateEmployeeRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	JoinDate     string `json:"join_date" binding:"required"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	DepartmentID string `json:"department_id" binding:"omitempty,uuid"`
	PositionID   string `json:"position_id" binding:"omitempty,uuid"`
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	FullName       string  `json:"full_name"`
	EmployeeNumber string  `json:"employee_number"`
	JoinDate       string  `json:"join_date"`
	Phone          string  `json:"phone,omitempty"`
	Address        string  `json:"address,omitempty"`
	DepartmentID   *string `json:"department_id,omitempty"`
	PositionID     *string `json:"position_id,omitempty"`
}
