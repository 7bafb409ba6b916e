package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DepartmentID   *uuid.UUID `gorm:"type:uuid"`
	PositionID     *uuid.UUID `gorm:"type:uuid"`
	FullName       string     `gorm:"type:varchar(255);not null"`
	EmployeeNumber string     `gorm:"type:varchar(30);uniqueIndex"`
	JoinDate       time.Time  `gorm:"type:date;not null"`
	Phone          string     `gorm:"type:varchar(15)"`
	Address        string     `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}
