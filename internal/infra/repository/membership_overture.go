package repository

import (
	"context"

	"composer/internal/domain/model"
	"composer/internal/overture"
	"composer/internal/param"
	repo "composer/internal/repository"
)

type MembershipOvertureRepository struct {
	client overture.MembershipClient
}

var _ repo.MembershipRepository = (*MembershipOvertureRepository)(nil)

// DI
func NewMembershipOvertureRepository(client overture.MembershipClient) *MembershipOvertureRepository {
	return &MembershipOvertureRepository{client: client}
}

func (r *MembershipOvertureRepository) Login(ctx context.Context, p *param.LoginParam) (*model.Customer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return r.client.Login(ctx, overture.LoginRequest{ScopeID: p.Scope, Username: p.Username, Password: p.Password})
}

func (r *MembershipOvertureRepository) CreateUser(ctx context.Context, p *param.CreateUserParam) (*model.Customer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return r.client.CreateCustomer(ctx, overture.CreateCustomerRequest{
		ScopeID:          p.Scope,
		Username:         p.Username,
		Email:            p.Email,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Password:         p.Password,
		PasswordQuestion: p.PasswordQuestion,
		PasswordAnswer:   p.PasswordAnswer,
		CultureName:      p.CultureInfo.String(),
	})
}

func (r *MembershipOvertureRepository) ChangePassword(ctx context.Context, p *param.ChangePasswordParam) (*model.Customer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return r.client.ChangePassword(ctx, overture.ChangePasswordRequest{
		ScopeID:     p.Scope,
		CustomerID:  p.CustomerID,
		OldPassword: p.OldPassword,
		NewPassword: p.NewPassword,
	})
}

func (r *MembershipOvertureRepository) ResetPassword(ctx context.Context, p *param.ResetPasswordParam) (*model.Customer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return r.client.ResetPassword(ctx, overture.ResetPasswordRequest{
		ScopeID:     p.Scope,
		Ticket:      p.Ticket,
		NewPassword: p.NewPassword,
	})
}

func (r *MembershipOvertureRepository) ForgotPassword(ctx context.Context, p *param.ForgotPasswordParam) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return r.client.ForgotPassword(ctx, overture.ForgotPasswordRequest{
		ScopeID:     p.Scope,
		Email:       p.Email,
		CultureName: p.CultureInfo.String(),
	})
}
