package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"composer/internal/auth"
	"composer/internal/middleware"
	"composer/internal/param"
	"composer/internal/requestctx"
	"composer/internal/usecase"
	"composer/internal/viewmodel"
)

type MembershipService interface {
	Login(ctx context.Context, p *param.LoginParam, baseURL string) (*usecase.LoginResult, error)
	Register(ctx context.Context, p *param.CreateUserParam, baseURL string) (*usecase.RegisterResult, error)
	ChangePassword(ctx context.Context, p *param.ChangePasswordParam, baseURL string) (*viewmodel.ChangePasswordViewModel, error)
	ResetPassword(ctx context.Context, p *param.ResetPasswordParam, baseURL string) (*viewmodel.ResetPasswordViewModel, error)
	ForgotPassword(ctx context.Context, p *param.ForgotPasswordParam) (*viewmodel.ForgotPasswordViewModel, error)
	GetSignInHeader(ctx context.Context, p *param.GetSignInHeaderParam) (*viewmodel.SignInHeaderViewModel, error)
	LogoutReturnURL(returnURL, baseURL string, culture language.Tag) string
}

// 認証チケットの発行と破棄
type TicketWriter interface {
	Issue(c echo.Context, username string, customerID uuid.UUID, persistent bool) error
	Clear(c echo.Context)
}

type CustomerIDEncrypter interface {
	EncryptCustomerID(id uuid.UUID) string
}

var (
	_ TicketWriter        = (*middleware.AuthTicket)(nil)
	_ CustomerIDEncrypter = (*middleware.ComposerCookieStore)(nil)
)

// /api/membership のHTTP
type MembershipHandler struct {
	membership MembershipService
	tickets    TicketWriter
	encrypter  CustomerIDEncrypter
	ids        auth.IDGenerator
	logger     *zap.Logger
}

// DI
func NewMembershipHandler(membership MembershipService, tickets TicketWriter, encrypter CustomerIDEncrypter, ids auth.IDGenerator, logger *zap.Logger) *MembershipHandler {
	if ids == nil {
		ids = auth.UUIDGenerator{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MembershipHandler{
		membership: membership,
		tickets:    tickets,
		encrypter:  encrypter,
		ids:        ids,
		logger:     logger,
	}
}

type LoginRequest struct {
	Username     string `json:"username" validate:"notblank"`
	Password     string `json:"password" validate:"notblank"`
	ReturnURL    string `json:"returnUrl"`
	IsRememberMe bool   `json:"isRememberMe"`
}

type LogoutRequest struct {
	PreserveCustomerInfo bool   `json:"preserveCustomerInfo"`
	ReturnURL            string `json:"returnUrl"`
}

type RegisterRequest struct {
	Username         string `json:"username"`
	Email            string `json:"email" validate:"required,email"`
	FirstName        string `json:"firstName" validate:"notblank"`
	LastName         string `json:"lastName" validate:"notblank"`
	Password         string `json:"password" validate:"notblank"`
	PasswordQuestion string `json:"passwordQuestion"`
	PasswordAnswer   string `json:"passwordAnswer"`
	ReturnURL        string `json:"returnUrl"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"notblank"`
	NewPassword string `json:"newPassword" validate:"notblank"`
	ReturnURL   string `json:"returnUrl"`
}

type ResetPasswordRequest struct {
	Ticket      string `json:"ticket" validate:"notblank"`
	NewPassword string `json:"newPassword" validate:"notblank"`
	ReturnURL   string `json:"returnUrl"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// /api/membership 以下を登録
func (h *MembershipHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/membership")

	g.POST("/login", h.login)
	g.POST("/logout", h.logout)
	g.POST("/register", h.register)
	g.POST("/changepassword", h.changePassword, middleware.RequireAuthenticated())
	g.POST("/resetpassword", h.resetPassword)
	g.POST("/forgotpassword", h.forgotPassword)
	g.GET("/signin", h.signInHeader)
	g.GET("/isAuthenticated", h.isAuthenticated)
}

func (h *MembershipHandler) login(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	p := &param.LoginParam{
		Scope:       cc.Scope,
		CultureInfo: cc.CultureInfo,
		Username:    req.Username,
		Password:    req.Password,
		ReturnURL:   req.ReturnURL,
	}
	if cc.IsGuest {
		p.GuestCustomerID = cc.CustomerID
	}

	out, err := h.membership.Login(c.Request().Context(), p, cc.BaseURL)
	if err != nil {
		return writeError(c, err)
	}
	if !out.ViewModel.IsSuccess || out.Customer == nil {
		return c.JSON(http.StatusOK, out.ViewModel)
	}

	if err := h.authenticate(c, cc, out.Customer.Username, out.Customer.ID, req.IsRememberMe); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out.ViewModel)
}

// 認証を外す（preserveCustomerInfo=false なら新しいゲストにする）
func (h *MembershipHandler) logout(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}

	var req LogoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	h.tickets.Clear(c)
	cc.SignOut()
	if !req.PreserveCustomerInfo {
		cc.SetCustomer(h.ids.NewID(), true)
	}

	return c.JSON(http.StatusOK, viewmodel.LogoutViewModel{
		ReturnURL: h.membership.LogoutReturnURL(req.ReturnURL, cc.BaseURL, cc.CultureInfo),
	})
}

func (h *MembershipHandler) register(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	p := &param.CreateUserParam{
		Scope:            cc.Scope,
		CultureInfo:      cc.CultureInfo,
		Username:         req.Username,
		Email:            req.Email,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Password:         req.Password,
		PasswordQuestion: req.PasswordQuestion,
		PasswordAnswer:   req.PasswordAnswer,
		ReturnURL:        req.ReturnURL,
	}
	if cc.IsGuest {
		p.GuestCustomerID = cc.CustomerID
	}

	out, err := h.membership.Register(c.Request().Context(), p, cc.BaseURL)
	if err != nil {
		return writeError(c, err)
	}
	// 承認待ちはログインしない
	if !out.ViewModel.IsSuccess || out.Customer == nil || !out.Customer.IsActive() {
		return c.JSON(http.StatusOK, out.ViewModel)
	}

	if err := h.authenticate(c, cc, out.Customer.Username, out.Customer.ID, false); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out.ViewModel)
}

func (h *MembershipHandler) changePassword(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	out, err := h.membership.ChangePassword(c.Request().Context(), &param.ChangePasswordParam{
		Scope:       cc.Scope,
		CultureInfo: cc.CultureInfo,
		CustomerID:  cc.CustomerID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
		ReturnURL:   req.ReturnURL,
	}, cc.BaseURL)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// メールのリンクのチケットは URL エンコードされている
func (h *MembershipHandler) resetPassword(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}

	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}
	ticket, err := url.QueryUnescape(req.Ticket)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid ticket"})
	}

	out, err := h.membership.ResetPassword(c.Request().Context(), &param.ResetPasswordParam{
		Scope:       cc.Scope,
		CultureInfo: cc.CultureInfo,
		Ticket:      ticket,
		NewPassword: req.NewPassword,
		ReturnURL:   req.ReturnURL,
	}, cc.BaseURL)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *MembershipHandler) forgotPassword(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}

	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	out, err := h.membership.ForgotPassword(c.Request().Context(), &param.ForgotPasswordParam{
		Scope:       cc.Scope,
		CultureInfo: cc.CultureInfo,
		Email:       req.Email,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// ヘッダーのログイン表示
func (h *MembershipHandler) signInHeader(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}

	out, err := h.membership.GetSignInHeader(c.Request().Context(), &param.GetSignInHeaderParam{
		Scope:               cc.Scope,
		CultureInfo:         cc.CultureInfo,
		CustomerID:          cc.CustomerID,
		IsAuthenticated:     cc.IsAuthenticated,
		EncryptedCustomerID: h.encrypter.EncryptCustomerID(cc.CustomerID),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *MembershipHandler) isAuthenticated(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}
	return c.JSON(http.StatusOK, viewmodel.IsAuthenticatedViewModel{IsAuthenticated: cc.IsAuthenticated})
}

// チケットを発行して会員として扱う
func (h *MembershipHandler) authenticate(c echo.Context, cc *requestctx.ComposerContext, username string, customerID uuid.UUID, persistent bool) error {
	if err := h.tickets.Issue(c, username, customerID, persistent); err != nil {
		return err
	}
	cc.SetCustomer(customerID, false)
	cc.IsAuthenticated = true
	cc.Username = username
	cc.TicketCustomerID = customerID

	h.logger.Info("customer signed in",
		zap.String("customerId", customerID.String()),
		zap.Bool("persistent", persistent),
	)
	return nil
}
