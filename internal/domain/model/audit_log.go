package model

import (
	"time"

	"github.com/google/uuid"
)

// 会員・注文まわりの操作
type AuditAction string

const (
	AuditActionRegister       AuditAction = "REGISTER"
	AuditActionLogin          AuditAction = "LOGIN"
	AuditActionChangePassword AuditAction = "CHANGE_PASSWORD"
	AuditActionResetPassword  AuditAction = "RESET_PASSWORD"
	AuditActionForgotPassword AuditAction = "FORGOT_PASSWORD"
	AuditActionCheckout       AuditAction = "CHECKOUT"
	AuditActionReassignOrder  AuditAction = "REASSIGN_ORDER"
)

// 監査ログ
// 「誰の」「何を」「いつ」を残す（パスワードやチケットは残さない）
type AuditLog struct {
	ID         int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	ScopeID    string      `gorm:"type:varchar(100);not null;index" json:"scopeId"`
	CustomerID uuid.UUID   `gorm:"type:uuid;not null;index" json:"customerId"`
	Action     AuditAction `gorm:"type:varchar(50);not null;index" json:"action"`

	//JSON文字列で保存する。
	DetailJSON string `gorm:"type:text" json:"detailJson"`

	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
}
