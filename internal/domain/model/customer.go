package model

import (
	"time"

	"github.com/google/uuid"
)

// 会員の状態
type AccountStatus string

const (
	AccountStatusActive           AccountStatus = "Active"
	AccountStatusRequiresApproval AccountStatus = "RequiresApproval"
	AccountStatusInactive         AccountStatus = "Inactive"
)

// スコープ内で username が一意な会員
type Customer struct {
	ID                 uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	ScopeID            string        `gorm:"type:varchar(100);not null;uniqueIndex:ux_customer_username;uniqueIndex:ux_customer_email" json:"scopeId"`
	Username           string        `gorm:"type:varchar(255);not null;uniqueIndex:ux_customer_username" json:"username"`
	Email              string        `gorm:"type:varchar(255);not null;uniqueIndex:ux_customer_email" json:"email"`
	FirstName          string        `gorm:"type:varchar(100)" json:"firstName"`
	LastName           string        `gorm:"type:varchar(100)" json:"lastName"`
	PhoneNumber        string        `gorm:"type:varchar(50)" json:"phoneNumber"`
	Language           string        `gorm:"type:varchar(20)" json:"language"`
	PasswordHash       string        `gorm:"column:password_hash;not null" json:"-"`
	PasswordQuestion   string        `gorm:"type:varchar(255)" json:"passwordQuestion"`
	PasswordAnswerHash string        `gorm:"column:password_answer_hash" json:"-"`
	Status             AccountStatus `gorm:"type:varchar(30);not null;default:'Active'" json:"accountStatus"`
	LastLoginAt        *time.Time    `json:"lastLoginAt"`
	CreatedAt          time.Time     `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time     `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

func (c *Customer) IsActive() bool {
	return c != nil && c.Status == AccountStatusActive
}
