// file: internals/features/users/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — user role & status
============================== */

type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleTrainer UserRole = "trainer"
	UserRoleAdmin   UserRole = "admin"
)

const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

/* ==============================
   MODEL
============================== */

type User struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`

	UserUsername string `gorm:"column:user_username;type:varchar(80);not null" json:"user_username"`
	UserEmail    string `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex" json:"user_email"`
	UserMobile   string `gorm:"column:user_mobile;type:varchar(10);not null;uniqueIndex" json:"user_mobile"`
	UserWhatsapp *string `gorm:"column:user_whatsapp;type:varchar(10)" json:"user_whatsapp,omitempty"`

	UserAddress  *string `gorm:"column:user_address;type:text" json:"user_address,omitempty"`
	UserLandmark *string `gorm:"column:user_landmark;type:text" json:"user_landmark,omitempty"`
	UserPincode  *string `gorm:"column:user_pincode;type:varchar(6)" json:"user_pincode,omitempty"`

	// bcrypt hash, never serialized
	UserPassword string `gorm:"column:user_password;type:varchar(100);not null" json:"-"`

	UserRole   UserRole `gorm:"column:user_role;type:varchar(20);not null;index" json:"user_role"`
	UserStatus string   `gorm:"column:user_status;type:varchar(20);not null;default:'active'" json:"user_status"`

	UserJoiningDate time.Time `gorm:"column:user_joining_date;type:date;not null" json:"user_joining_date"`

	// Guardian contacts (students only)
	UserParentMobile   *string `gorm:"column:user_parent_mobile;type:varchar(10)" json:"user_parent_mobile,omitempty"`
	UserParentWhatsapp *string `gorm:"column:user_parent_whatsapp;type:varchar(10)" json:"user_parent_whatsapp,omitempty"`
	UserParentEmail    *string `gorm:"column:user_parent_email;type:varchar(255)" json:"user_parent_email,omitempty"`

	// Trainer payout profile (PAN, bank account, IFSC, ...) — free-form document
	UserTrainerProfile datatypes.JSONMap `gorm:"column:user_trainer_profile;type:jsonb" json:"user_trainer_profile,omitempty"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (User) TableName() string { return "users" }

func (m *User) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	if m.UserStatus == "" {
		m.UserStatus = UserStatusActive
	}
	return nil
}
