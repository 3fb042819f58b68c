package overture

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"composer/internal/domain/model"
)

// 再設定URLをログに出すだけの通知（メール送信の代わり）
type LogResetNotifier struct {
	logger   *zap.Logger
	resetURL string
}

// DI
func NewLogResetNotifier(logger *zap.Logger, resetURL string) *LogResetNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogResetNotifier{logger: logger, resetURL: resetURL}
}

func (n *LogResetNotifier) NotifyPasswordReset(ctx context.Context, customer *model.Customer, ticket string) error {
	u, err := url.Parse(n.resetURL)
	if err != nil {
		return err
	}
	q := u.Query()
	q.Set("ticket", ticket)
	u.RawQuery = q.Encode()

	n.logger.Info("password reset ticket issued",
		zap.String("customer_id", customer.ID.String()),
		zap.String("email", customer.Email),
		zap.String("reset_url", u.String()),
	)
	return nil
}
