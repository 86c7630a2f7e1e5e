package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a console account scoped to an enterprise.
type User struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	EnterpriseID uuid.UUID  `gorm:"column:enterprise_id;type:uuid;not null"`
	Email        string     `gorm:"column:email;not null;unique"`
	Name         string     `gorm:"column:name;not null"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	IsCreator    bool       `gorm:"column:is_creator;not null;default:false"`
	LastLoginAt  *time.Time `gorm:"column:last_login_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
