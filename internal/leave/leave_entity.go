package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Leave struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_employee"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null"`

	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	Reason    string    `gorm:"type:text;not null"`

	Status string `gorm:"type:varchar(20);not null;default:'pending';index:idx_leaves_status"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// LeaveApproval records the single resolution of a leave request.
// The unique index on LeaveID is what makes a second resolution
// impossible even under concurrent writers.
type LeaveApproval struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	LeaveID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_leave_approvals_leave_id"`
	ApproverID uuid.UUID `gorm:"type:uuid;not null"`
	Comments   string    `gorm:"type:text"`
	ApprovedAt time.Time `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Leave) TableName() string {
	return "leaves"
}

func (LeaveApproval) TableName() string {
	return "leave_approvals"
}
