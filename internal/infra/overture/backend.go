package overture

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"composer/internal/auth"
	"composer/internal/domain/model"
	"composer/internal/overture"
)

// Backend の動作設定
type Options struct {
	// スコープが無いときのカート通貨
	DefaultCurrency string
	// 新規会員の状態（Active / RequiresApproval）
	NewAccountStatus model.AccountStatus
	PasswordPolicy   auth.PasswordPolicy
	ResetTicketTTL   time.Duration
}

// パスワード再設定チケットを会員に届ける
type ResetTicketNotifier interface {
	NotifyPasswordReset(ctx context.Context, customer *model.Customer, ticket string) error
}

// postgres 上のコマースAPI実装
type Backend struct {
	db       *gorm.DB
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
	ids      auth.IDGenerator
	clock    auth.Clock
	notifier ResetTicketNotifier
	opts     Options
	logger   *zap.Logger
}

var _ overture.Client = (*Backend)(nil)

// DI
func NewBackend(
	db *gorm.DB,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	ids auth.IDGenerator,
	clock auth.Clock,
	notifier ResetTicketNotifier,
	opts Options,
	logger *zap.Logger,
) *Backend {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.DefaultCurrency == "" {
		opts.DefaultCurrency = "CAD"
	}
	if opts.NewAccountStatus == "" {
		opts.NewAccountStatus = model.AccountStatusActive
	}
	if opts.ResetTicketTTL <= 0 {
		opts.ResetTicketTTL = 24 * time.Hour
	}
	return &Backend{
		db:       db,
		hasher:   hasher,
		verifier: verifier,
		ids:      ids,
		clock:    clock,
		notifier: notifier,
		opts:     opts,
		logger:   logger,
	}
}

// 保存対象のテーブル
func Models() []interface{} {
	return []interface{}{
		&model.Scope{},
		&model.Product{},
		&model.Variant{},
		&model.ProductFee{},
		&model.ProductDefinition{},
		&model.InventoryItem{},
		&model.Promotion{},
		&model.Cart{},
		&model.LineItem{},
		&model.AdditionalFee{},
		&model.Coupon{},
		&model.Order{},
		&model.OrderItem{},
		&model.Customer{},
		&model.PasswordResetTicket{},
		&model.Lookup{},
		&model.LookupValue{},
		&model.Country{},
		&model.Region{},
		&model.AuditLog{},
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
