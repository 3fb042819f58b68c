package model

import (
	"time"

	"github.com/google/uuid"
)

// パスワード再設定チケット
// 平文のチケットは保存せず、SHA-256 のハッシュのみ持つ
type PasswordResetTicket struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID uuid.UUID  `gorm:"type:uuid;not null;index" json:"customerId"`
	TicketHash string     `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt  time.Time  `gorm:"not null;index" json:"expiresAt"`
	UsedAt     *time.Time `gorm:"index" json:"usedAt"`
	CreatedAt  time.Time  `gorm:"not null;autoCreateTime" json:"createdAt"`
}

// 未使用かつ期限内か
func (t *PasswordResetTicket) IsUsable(now time.Time) bool {
	return t.UsedAt == nil && now.Before(t.ExpiresAt)
}
