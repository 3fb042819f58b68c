package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"composer/internal/domain/model"
	"composer/internal/overture"
	"composer/internal/param"
	"composer/internal/provider"
	repo "composer/internal/repository"
	"composer/internal/viewmodel"
)

// ログイン・登録・パスワード
// 業務的な失敗は IsSuccess=false の表示用で返す
type MembershipViewService struct {
	membershipRepo repo.MembershipRepository
	customerRepo   repo.CustomerRepository
	cartRepo       repo.CartRepository
	orderRepo      repo.OrderRepository
	urls           MyAccountURLProvider
	cartName       string
	minPasswordLen int
	logger         *zap.Logger
}

// DI
func NewMembershipViewService(
	membershipRepo repo.MembershipRepository,
	customerRepo repo.CustomerRepository,
	cartRepo repo.CartRepository,
	orderRepo repo.OrderRepository,
	urls MyAccountURLProvider,
	cartName string,
	minPasswordLen int,
	logger *zap.Logger,
) *MembershipViewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cartName == "" {
		cartName = model.DefaultCartName
	}
	return &MembershipViewService{
		membershipRepo: membershipRepo,
		customerRepo:   customerRepo,
		cartRepo:       cartRepo,
		orderRepo:      orderRepo,
		urls:           urls,
		cartName:       cartName,
		minPasswordLen: minPasswordLen,
		logger:         logger,
	}
}

// ログイン結果（成功時のみ Customer が入る）
type LoginResult struct {
	ViewModel *viewmodel.LoginViewModel
	Customer  *model.Customer
}

// Login は成功したらゲストのカートを統合する
func (s *MembershipViewService) Login(ctx context.Context, p *param.LoginParam, baseURL string) (*LoginResult, error) {
	if p == nil {
		return nil, param.Nil("param")
	}

	vm := &viewmodel.LoginViewModel{
		Username:          p.Username,
		ReturnURL:         s.ReturnURL(p.ReturnURL, baseURL, p.CultureInfo),
		CreateAccountURL:  s.urls.GetCreateAccountURL(p.CultureInfo),
		ForgotPasswordURL: s.urls.GetForgotPasswordURL(p.CultureInfo),
	}

	customer, err := s.membershipRepo.Login(ctx, p)
	if err != nil {
		status, ok := accountStatusOf(err)
		if !ok {
			return nil, err
		}
		vm.Status = status
		return &LoginResult{ViewModel: vm}, nil
	}

	s.mergeGuestCart(ctx, p.Scope, p.GuestCustomerID, customer.ID)

	vm.IsSuccess = true
	vm.Status = viewmodel.MyAccountStatusSuccess
	vm.FirstName = customer.FirstName
	vm.LastName = customer.LastName
	vm.Username = customer.Username
	return &LoginResult{ViewModel: vm, Customer: customer}, nil
}

type RegisterResult struct {
	ViewModel *viewmodel.CreateAccountViewModel
	Customer  *model.Customer
}

// Register は Active ならすぐにログインできる状態で返す
func (s *MembershipViewService) Register(ctx context.Context, p *param.CreateUserParam, baseURL string) (*RegisterResult, error) {
	if p == nil {
		return nil, param.Nil("param")
	}

	vm := &viewmodel.CreateAccountViewModel{
		Username:                  p.Username,
		Email:                     p.Email,
		FirstName:                 p.FirstName,
		LastName:                  p.LastName,
		ReturnURL:                 s.ReturnURL(p.ReturnURL, baseURL, p.CultureInfo),
		MinRequiredPasswordLength: s.minPasswordLen,
	}

	customer, err := s.membershipRepo.CreateUser(ctx, p)
	if err != nil {
		status, ok := accountStatusOf(err)
		if !ok {
			return nil, err
		}
		vm.Status = status
		return &RegisterResult{ViewModel: vm}, nil
	}

	vm.IsSuccess = true
	vm.Username = customer.Username
	vm.Status = viewmodel.MyAccountStatusSuccess
	if customer.Status == model.AccountStatusRequiresApproval {
		vm.Status = viewmodel.MyAccountStatusRequiresApproval
	}
	if customer.IsActive() {
		s.mergeGuestCart(ctx, p.Scope, p.GuestCustomerID, customer.ID)
	}
	return &RegisterResult{ViewModel: vm, Customer: customer}, nil
}

func (s *MembershipViewService) ChangePassword(ctx context.Context, p *param.ChangePasswordParam, baseURL string) (*viewmodel.ChangePasswordViewModel, error) {
	if p == nil {
		return nil, param.Nil("param")
	}
	vm := &viewmodel.ChangePasswordViewModel{ReturnURL: s.ReturnURL(p.ReturnURL, baseURL, p.CultureInfo)}

	if _, err := s.membershipRepo.ChangePassword(ctx, p); err != nil {
		status, ok := accountStatusOf(err)
		if !ok {
			return nil, err
		}
		vm.Status = status
		return vm, nil
	}
	vm.IsSuccess = true
	vm.Status = viewmodel.MyAccountStatusSuccess
	return vm, nil
}

func (s *MembershipViewService) ResetPassword(ctx context.Context, p *param.ResetPasswordParam, baseURL string) (*viewmodel.ResetPasswordViewModel, error) {
	if p == nil {
		return nil, param.Nil("param")
	}
	vm := &viewmodel.ResetPasswordViewModel{ReturnURL: s.ReturnURL(p.ReturnURL, baseURL, p.CultureInfo)}

	if _, err := s.membershipRepo.ResetPassword(ctx, p); err != nil {
		status, ok := accountStatusOf(err)
		if !ok {
			return nil, err
		}
		vm.Status = status
		return vm, nil
	}
	vm.IsSuccess = true
	vm.Status = viewmodel.MyAccountStatusSuccess
	return vm, nil
}

func (s *MembershipViewService) ForgotPassword(ctx context.Context, p *param.ForgotPasswordParam) (*viewmodel.ForgotPasswordViewModel, error) {
	if p == nil {
		return nil, param.Nil("param")
	}
	vm := &viewmodel.ForgotPasswordViewModel{EmailSentTo: p.Email}

	if err := s.membershipRepo.ForgotPassword(ctx, p); err != nil {
		status, ok := accountStatusOf(err)
		if !ok {
			return nil, err
		}
		vm.Status = status
		return vm, nil
	}
	vm.IsSuccess = true
	vm.Status = viewmodel.MyAccountStatusSuccess
	return vm, nil
}

// GetSignInHeader はヘッダーのログイン表示
func (s *MembershipViewService) GetSignInHeader(ctx context.Context, p *param.GetSignInHeaderParam) (*viewmodel.SignInHeaderViewModel, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	vm := &viewmodel.SignInHeaderViewModel{
		URL:                 s.urls.GetLoginURL(p.CultureInfo),
		EncryptedCustomerID: p.EncryptedCustomerID,
	}
	if !p.IsAuthenticated || p.CustomerID == uuid.Nil {
		return vm, nil
	}

	customer, err := s.customerRepo.GetCustomerByID(ctx, &param.GetCustomerByIDParam{
		Scope:       p.Scope,
		CultureInfo: p.CultureInfo,
		CustomerID:  p.CustomerID,
	})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return vm, nil
	}

	vm.IsLoggedIn = true
	vm.FirstName = customer.FirstName
	vm.LastName = customer.LastName
	vm.URL = s.urls.GetMyAccountURL(p.CultureInfo)
	return vm, nil
}

// ReturnURL は別ホストならマイアカウントへ
func (s *MembershipViewService) ReturnURL(returnURL, baseURL string, culture language.Tag) string {
	if provider.IsSameHost(returnURL, baseURL) {
		return returnURL
	}
	return s.urls.GetMyAccountURL(culture)
}

// LogoutReturnURL は未指定ならログイン画面
func (s *MembershipViewService) LogoutReturnURL(returnURL, baseURL string, culture language.Tag) string {
	if provider.IsSameHost(returnURL, baseURL) {
		return returnURL
	}
	return s.urls.GetLoginURL(culture)
}

// 統合の失敗でログインは止めない
func (s *MembershipViewService) mergeGuestCart(ctx context.Context, scope string, guestID, customerID uuid.UUID) {
	if guestID == uuid.Nil || guestID == customerID {
		return
	}
	if _, err := s.cartRepo.MergeCart(ctx, &param.MergeCartParam{
		Scope:           scope,
		CartName:        s.cartName,
		GuestCustomerID: guestID,
		CustomerID:      customerID,
	}); err != nil {
		s.logger.Warn("merge guest cart failed",
			zap.String("guestCustomerId", guestID.String()),
			zap.String("customerId", customerID.String()),
			zap.Error(err),
		)
	}
	s.reassignGuestOrders(ctx, scope, guestID, customerID)
}

// ゲストで確定した注文を会員に付け替える
func (s *MembershipViewService) reassignGuestOrders(ctx context.Context, scope string, guestID, customerID uuid.UUID) {
	if s.orderRepo == nil {
		return
	}
	res, err := s.orderRepo.GetCustomerOrders(ctx, &param.GetCustomerOrdersParam{
		Scope:      scope,
		CustomerID: guestID,
		Page:       1,
		PageSize:   overture.MaxOrderPageSize,
	})
	if err != nil {
		s.logger.Warn("list guest orders failed", zap.String("guestCustomerId", guestID.String()), zap.Error(err))
		return
	}
	if res == nil {
		return
	}
	for _, o := range res.Orders {
		if _, err := s.orderRepo.UpdateOrderCustomer(ctx, &param.UpdateOrderCustomerParam{
			Scope:       scope,
			OrderNumber: o.OrderNumber,
			CustomerID:  customerID,
		}); err != nil {
			s.logger.Warn("reassign guest order failed",
				zap.String("orderNumber", o.OrderNumber),
				zap.String("customerId", customerID.String()),
				zap.Error(err),
			)
		}
	}
}

// コマース側の業務エラーを画面の状態へ
func accountStatusOf(err error) (viewmodel.MyAccountStatus, bool) {
	oe, ok := overture.AsError(err)
	if !ok {
		return "", false
	}
	switch oe.Code {
	case overture.CodeInvalidCredentials, overture.CodeCustomerNotFound:
		return viewmodel.MyAccountStatusFailed, true
	case overture.CodeRequiresApproval:
		return viewmodel.MyAccountStatusRequiresApproval, true
	case overture.CodeInactiveAccount:
		return viewmodel.MyAccountStatusInactiveAccount, true
	case overture.CodeUserRejected:
		return viewmodel.MyAccountStatusUserRejected, true
	case overture.CodeDuplicateEmail:
		return viewmodel.MyAccountStatusDuplicateEmail, true
	case overture.CodeDuplicateUsername:
		return viewmodel.MyAccountStatusDuplicateUserName, true
	case overture.CodeInvalidPassword:
		return viewmodel.MyAccountStatusInvalidPassword, true
	case overture.CodeInvalidEmail:
		return viewmodel.MyAccountStatusInvalidEmail, true
	case overture.CodeInvalidTicket:
		return viewmodel.MyAccountStatusInvalidTicket, true
	}
	return "", false
}
