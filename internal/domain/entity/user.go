package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/domain/enum"
	"gorm.io/gorm"
)

// User is a staff account. Role decides which route groups the user can
// reach; there is no separate permission table.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	EmployeeID   string         `gorm:"size:20;unique;not null" json:"employee_id"`
	Name         string         `gorm:"size:100;not null" json:"name"`
	Mobile       string         `gorm:"size:15" json:"mobile"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`
	Role         enum.Role      `gorm:"size:20;not null" json:"role"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
