package repository

import (
	"context"

	"composer/internal/domain/model"
	"composer/internal/param"
)

// 会員の取得（見つからなければ nil, nil）
type CustomerRepository interface {
	GetCustomerByID(ctx context.Context, p *param.GetCustomerByIDParam) (*model.Customer, error)
	GetCustomerByUsername(ctx context.Context, p *param.GetCustomerByUsernameParam) (*model.Customer, error)
}

type CustomerLookupRepository interface {
	GetLookups(ctx context.Context) ([]model.Lookup, error)
	GetLookup(ctx context.Context, p *param.GetLookupParam) (*model.Lookup, error)
}

// ログイン・登録・パスワード
// 業務的な失敗は *overture.Error で返る
type MembershipRepository interface {
	Login(ctx context.Context, p *param.LoginParam) (*model.Customer, error)
	CreateUser(ctx context.Context, p *param.CreateUserParam) (*model.Customer, error)
	ChangePassword(ctx context.Context, p *param.ChangePasswordParam) (*model.Customer, error)
	ResetPassword(ctx context.Context, p *param.ResetPasswordParam) (*model.Customer, error)
	ForgotPassword(ctx context.Context, p *param.ForgotPasswordParam) error
}
