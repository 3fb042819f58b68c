package overture

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"composer/internal/auth"
	"composer/internal/domain/model"
	"composer/internal/overture"
)

const resetTicketBytes = 32

// ユーザー名かメールでログイン
func (b *Backend) Login(ctx context.Context, req overture.LoginRequest) (*model.Customer, error) {
	var c model.Customer
	err := b.db.WithContext(ctx).
		Where("scope_id = ? AND (lower(username) = lower(?) OR lower(email) = lower(?))", req.ScopeID, req.Username, req.Username).
		First(&c).Error
	if isNotFound(err) {
		return nil, overture.NewError(overture.CodeInvalidCredentials, "invalid username or password")
	}
	if err != nil {
		return nil, err
	}

	//パスワード照合
	if !b.verifier.Verify(req.Password, c.PasswordHash) {
		return nil, overture.NewError(overture.CodeInvalidCredentials, "invalid username or password")
	}

	switch c.Status {
	case model.AccountStatusRequiresApproval:
		return nil, overture.NewError(overture.CodeRequiresApproval, "account requires approval")
	case model.AccountStatusInactive:
		return nil, overture.NewError(overture.CodeInactiveAccount, "account is inactive")
	}

	//最終ログイン時刻更新
	now := b.clock.Now()
	err = b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&c).Update("last_login_at", &now).Error; err != nil {
			return err
		}
		return b.audit(tx, c.ScopeID, c.ID, model.AuditActionLogin, nil)
	})
	if err != nil {
		return nil, err
	}
	c.LastLoginAt = &now
	return &c, nil
}

// 会員登録
func (b *Backend) CreateCustomer(ctx context.Context, req overture.CreateCustomerRequest) (*model.Customer, error) {
	if err := auth.ValidateEmail(req.Email); err != nil {
		return nil, overture.NewError(overture.CodeInvalidEmail, err.Error())
	}
	if err := b.opts.PasswordPolicy.Check(req.Password); err != nil {
		return nil, overture.NewError(overture.CodeInvalidPassword, err.Error())
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		username = strings.TrimSpace(req.Email)
	}

	hashed, err := b.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	var answerHash string
	if req.PasswordAnswer != "" {
		if answerHash, err = b.hasher.Hash(strings.ToLower(strings.TrimSpace(req.PasswordAnswer))); err != nil {
			return nil, err
		}
	}

	c := model.Customer{
		ID:                 b.ids.NewID(),
		ScopeID:            req.ScopeID,
		Username:           username,
		Email:              strings.TrimSpace(req.Email),
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Language:           req.CultureName,
		PasswordHash:       hashed,
		PasswordQuestion:   req.PasswordQuestion,
		PasswordAnswerHash: answerHash,
		Status:             b.opts.NewAccountStatus,
	}

	err = b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Customer{}).
			Where("scope_id = ? AND lower(username) = lower(?)", req.ScopeID, c.Username).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return overture.NewError(overture.CodeDuplicateUsername, "username already exists")
		}

		if err := tx.Model(&model.Customer{}).
			Where("scope_id = ? AND lower(email) = lower(?)", req.ScopeID, c.Email).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return overture.NewError(overture.CodeDuplicateEmail, "email already exists")
		}

		if err := tx.Create(&c).Error; err != nil {
			return err
		}
		return b.audit(tx, c.ScopeID, c.ID, model.AuditActionRegister, map[string]string{"status": string(c.Status)})
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (b *Backend) ChangePassword(ctx context.Context, req overture.ChangePasswordRequest) (*model.Customer, error) {
	c, err := b.GetCustomerByID(ctx, req.ScopeID, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !b.verifier.Verify(req.OldPassword, c.PasswordHash) {
		return nil, overture.NewError(overture.CodeInvalidCredentials, "old password does not match")
	}
	err = b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := b.updatePassword(tx, c, req.NewPassword); err != nil {
			return err
		}
		return b.audit(tx, c.ScopeID, c.ID, model.AuditActionChangePassword, nil)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// チケットで新しいパスワードを設定（チケットは1回限り）
func (b *Backend) ResetPassword(ctx context.Context, req overture.ResetPasswordRequest) (*model.Customer, error) {
	var out *model.Customer

	err := b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var t model.PasswordResetTicket
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("ticket_hash = ?", auth.HashToken(req.Ticket)).
			First(&t).Error
		if isNotFound(err) {
			return overture.NewError(overture.CodeInvalidTicket, "invalid ticket")
		}
		if err != nil {
			return err
		}

		now := b.clock.Now()
		if !t.IsUsable(now) {
			return overture.NewError(overture.CodeInvalidTicket, "ticket expired or already used")
		}

		var c model.Customer
		if err := tx.Where("id = ? AND scope_id = ?", t.CustomerID, req.ScopeID).First(&c).Error; err != nil {
			if isNotFound(err) {
				return overture.NewError(overture.CodeInvalidTicket, "invalid ticket")
			}
			return err
		}

		if err := b.updatePassword(tx, &c, req.NewPassword); err != nil {
			return err
		}

		res := tx.Model(&model.PasswordResetTicket{}).
			Where("id = ? AND used_at IS NULL", t.ID).
			Update("used_at", &now)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return overture.NewError(overture.CodeInvalidTicket, "ticket already used")
		}
		if err := b.audit(tx, c.ScopeID, c.ID, model.AuditActionResetPassword, nil); err != nil {
			return err
		}

		out = &c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// 再設定チケットを発行して通知する
func (b *Backend) ForgotPassword(ctx context.Context, req overture.ForgotPasswordRequest) error {
	var c model.Customer
	err := b.db.WithContext(ctx).
		Where("scope_id = ? AND lower(email) = lower(?)", req.ScopeID, strings.TrimSpace(req.Email)).
		First(&c).Error
	if isNotFound(err) {
		return overture.NewError(overture.CodeCustomerNotFound, "no customer for email")
	}
	if err != nil {
		return err
	}

	plain, err := auth.GenerateSecureToken(resetTicketBytes)
	if err != nil {
		return err
	}

	t := model.PasswordResetTicket{
		ID:         b.ids.NewID(),
		CustomerID: c.ID,
		TicketHash: auth.HashToken(plain),
		ExpiresAt:  b.clock.Now().Add(b.opts.ResetTicketTTL),
	}
	err = b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&t).Error; err != nil {
			return err
		}
		return b.audit(tx, c.ScopeID, c.ID, model.AuditActionForgotPassword, map[string]string{"expiresAt": t.ExpiresAt.Format(time.RFC3339)})
	})
	if err != nil {
		return err
	}

	if b.notifier == nil {
		return errors.New("reset ticket notifier is not configured")
	}
	if err := b.notifier.NotifyPasswordReset(ctx, &c, plain); err != nil {
		b.logger.Warn("password reset notification failed", zap.String("customer_id", c.ID.String()), zap.Error(err))
		return err
	}
	return nil
}

func (b *Backend) updatePassword(tx *gorm.DB, c *model.Customer, password string) error {
	if err := b.opts.PasswordPolicy.Check(password); err != nil {
		return overture.NewError(overture.CodeInvalidPassword, err.Error())
	}
	hashed, err := b.hasher.Hash(password)
	if err != nil {
		return err
	}
	if err := tx.Model(&model.Customer{}).Where("id = ?", c.ID).Update("password_hash", hashed).Error; err != nil {
		return err
	}
	c.PasswordHash = hashed
	return nil
}
