package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"composer/internal/domain/model"
	"composer/internal/middleware"
	"composer/internal/param"
	"composer/internal/requestctx"
	"composer/internal/usecase"
	"composer/internal/viewmodel"
)

type membershipFixture struct {
	e       *echo.Echo
	svc     *MockMembershipService
	tickets *middleware.AuthTicket
	cc      *requestctx.ComposerContext
	newID   uuid.UUID
}

func newMembershipFixture(cc *requestctx.ComposerContext) membershipFixture {
	f := membershipFixture{
		e:       newTestEcho(cc),
		svc:     &MockMembershipService{},
		tickets: middleware.NewAuthTicket(middleware.AuthTicketOptions{Secret: "test-secret", Timeout: time.Hour}, nil),
		cc:      cc,
		newID:   uuid.New(),
	}
	cookies := middleware.NewComposerCookieStore(
		[]byte("0123456789abcdef0123456789abcdef"),
		[]byte("abcdef0123456789"),
		false,
		time.Hour,
	)
	NewMembershipHandler(f.svc, f.tickets, cookies, fixedIDs{id: f.newID}, nil).RegisterRoutes(f.e)
	return f
}

func ticketCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "composer_auth" {
			return ck
		}
	}
	return nil
}

// =====================
// ログイン
// =====================

func TestMembershipHandler_Login_Success(t *testing.T) {
	f := newMembershipFixture(guestContext())
	memberID := uuid.New()
	f.svc.On("Login", mock.Anything, mock.MatchedBy(func(p *param.LoginParam) bool {
		return p.Username == "jdoe" && p.GuestCustomerID == testCustomerID
	}), testBaseURL).Return(&usecase.LoginResult{
		ViewModel: &viewmodel.LoginViewModel{IsSuccess: true, Status: viewmodel.MyAccountStatusSuccess, Username: "jdoe"},
		Customer:  &model.Customer{ID: memberID, Username: "jdoe", Status: model.AccountStatusActive},
	}, nil)

	rec := doJSON(f.e, http.MethodPost, "/api/membership/login", `{"username":"jdoe","password":"secret","isRememberMe":true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	ck := ticketCookie(rec)
	require.NotNil(t, ck)
	// remember-me は永続cookie
	assert.False(t, ck.Expires.IsZero())

	assert.Equal(t, memberID, f.cc.CustomerID)
	assert.False(t, f.cc.IsGuest)
	assert.True(t, f.cc.IsAuthenticated)
	assert.True(t, f.cc.Dirty())
}

func TestMembershipHandler_Login_SessionCookieWithoutRememberMe(t *testing.T) {
	f := newMembershipFixture(guestContext())
	f.svc.On("Login", mock.Anything, mock.Anything, testBaseURL).Return(&usecase.LoginResult{
		ViewModel: &viewmodel.LoginViewModel{IsSuccess: true},
		Customer:  &model.Customer{ID: uuid.New(), Username: "jdoe"},
	}, nil)

	rec := doJSON(f.e, http.MethodPost, "/api/membership/login", `{"username":"jdoe","password":"secret"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	ck := ticketCookie(rec)
	require.NotNil(t, ck)
	assert.True(t, ck.Expires.IsZero())
}

func TestMembershipHandler_Login_BusinessFailure(t *testing.T) {
	f := newMembershipFixture(guestContext())
	f.svc.On("Login", mock.Anything, mock.Anything, testBaseURL).Return(&usecase.LoginResult{
		ViewModel: &viewmodel.LoginViewModel{IsSuccess: false, Status: viewmodel.MyAccountStatusFailed},
	}, nil)

	rec := doJSON(f.e, http.MethodPost, "/api/membership/login", `{"username":"jdoe","password":"wrong"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var vm viewmodel.LoginViewModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vm))
	assert.False(t, vm.IsSuccess)
	assert.Equal(t, viewmodel.MyAccountStatusFailed, vm.Status)
	assert.Nil(t, ticketCookie(rec))
	assert.True(t, f.cc.IsGuest)
}

func TestMembershipHandler_Login_RequiresCredentials(t *testing.T) {
	f := newMembershipFixture(guestContext())

	rec := doJSON(f.e, http.MethodPost, "/api/membership/login", `{"username":"  "}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	f.svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestMembershipHandler_Login_TechnicalError(t *testing.T) {
	f := newMembershipFixture(guestContext())
	f.svc.On("Login", mock.Anything, mock.Anything, testBaseURL).Return(nil, errors.New("db down"))

	rec := doJSON(f.e, http.MethodPost, "/api/membership/login", `{"username":"jdoe","password":"secret"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// =====================
// ログアウト
// =====================

func memberContext() *requestctx.ComposerContext {
	cc := guestContext()
	cc.IsGuest = false
	cc.IsAuthenticated = true
	cc.Username = "jdoe"
	return cc
}

func TestMembershipHandler_Logout_ResetsToGuest(t *testing.T) {
	f := newMembershipFixture(memberContext())
	f.svc.On("LogoutReturnURL", "", testBaseURL, f.cc.CultureInfo).Return("/en/my-account/sign-in")

	rec := doJSON(f.e, http.MethodPost, "/api/membership/logout", `{"preserveCustomerInfo":false}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var vm viewmodel.LogoutViewModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vm))
	assert.Equal(t, "/en/my-account/sign-in", vm.ReturnURL)

	ck := ticketCookie(rec)
	require.NotNil(t, ck)
	assert.Equal(t, -1, ck.MaxAge)
	assert.False(t, f.cc.IsAuthenticated)
	assert.True(t, f.cc.IsGuest)
	assert.Equal(t, f.newID, f.cc.CustomerID)
}

func TestMembershipHandler_Logout_PreservesCustomer(t *testing.T) {
	f := newMembershipFixture(memberContext())
	f.svc.On("LogoutReturnURL", mock.Anything, mock.Anything, mock.Anything).Return("/en/my-account/sign-in")

	rec := doJSON(f.e, http.MethodPost, "/api/membership/logout", `{"preserveCustomerInfo":true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, f.cc.IsAuthenticated)
	assert.False(t, f.cc.IsGuest)
	assert.Equal(t, testCustomerID, f.cc.CustomerID)
}

// =====================
// 登録
// =====================

func TestMembershipHandler_Register_ActiveSignsIn(t *testing.T) {
	f := newMembershipFixture(guestContext())
	memberID := uuid.New()
	f.svc.On("Register", mock.Anything, mock.MatchedBy(func(p *param.CreateUserParam) bool {
		return p.Email == "jdoe@example.com" && p.GuestCustomerID == testCustomerID
	}), testBaseURL).Return(&usecase.RegisterResult{
		ViewModel: &viewmodel.CreateAccountViewModel{IsSuccess: true, Status: viewmodel.MyAccountStatusSuccess},
		Customer:  &model.Customer{ID: memberID, Username: "jdoe@example.com", Status: model.AccountStatusActive},
	}, nil)

	rec := doJSON(f.e, http.MethodPost, "/api/membership/register",
		`{"email":"jdoe@example.com","firstName":"John","lastName":"Doe","password":"secret1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, ticketCookie(rec))
	assert.Equal(t, memberID, f.cc.CustomerID)
	assert.True(t, f.cc.IsAuthenticated)
}

func TestMembershipHandler_Register_RequiresApprovalStaysGuest(t *testing.T) {
	f := newMembershipFixture(guestContext())
	f.svc.On("Register", mock.Anything, mock.Anything, testBaseURL).Return(&usecase.RegisterResult{
		ViewModel: &viewmodel.CreateAccountViewModel{IsSuccess: true, Status: viewmodel.MyAccountStatusRequiresApproval},
		Customer:  &model.Customer{ID: uuid.New(), Status: model.AccountStatusRequiresApproval},
	}, nil)

	rec := doJSON(f.e, http.MethodPost, "/api/membership/register",
		`{"email":"jdoe@example.com","firstName":"John","lastName":"Doe","password":"secret1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, ticketCookie(rec))
	assert.Equal(t, testCustomerID, f.cc.CustomerID)
	assert.False(t, f.cc.IsAuthenticated)
}

func TestMembershipHandler_Register_InvalidEmail(t *testing.T) {
	f := newMembershipFixture(guestContext())

	rec := doJSON(f.e, http.MethodPost, "/api/membership/register",
		`{"email":"nope","firstName":"John","lastName":"Doe","password":"secret1"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error, "email must be a valid email")
}

// =====================
// パスワード
// =====================

func TestMembershipHandler_ChangePassword_RequiresAuthentication(t *testing.T) {
	f := newMembershipFixture(guestContext())

	rec := doJSON(f.e, http.MethodPost, "/api/membership/changepassword", `{"oldPassword":"a","newPassword":"b"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", decodeError(t, rec).Error)
	f.svc.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestMembershipHandler_ChangePassword(t *testing.T) {
	f := newMembershipFixture(memberContext())
	f.svc.On("ChangePassword", mock.Anything, mock.MatchedBy(func(p *param.ChangePasswordParam) bool {
		return p.CustomerID == testCustomerID && p.OldPassword == "old" && p.NewPassword == "newer"
	}), testBaseURL).Return(&viewmodel.ChangePasswordViewModel{IsSuccess: true}, nil)

	rec := doJSON(f.e, http.MethodPost, "/api/membership/changepassword", `{"oldPassword":"old","newPassword":"newer"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	f.svc.AssertExpectations(t)
}

func TestMembershipHandler_ResetPassword_DecodesTicket(t *testing.T) {
	f := newMembershipFixture(guestContext())
	f.svc.On("ResetPassword", mock.Anything, mock.MatchedBy(func(p *param.ResetPasswordParam) bool {
		return p.Ticket == "abc+/=="
	}), testBaseURL).Return(&viewmodel.ResetPasswordViewModel{IsSuccess: true}, nil)

	rec := doJSON(f.e, http.MethodPost, "/api/membership/resetpassword", `{"ticket":"abc%2B%2F%3D%3D","newPassword":"secret1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	f.svc.AssertExpectations(t)
}

func TestMembershipHandler_ResetPassword_BadEncoding(t *testing.T) {
	f := newMembershipFixture(guestContext())

	rec := doJSON(f.e, http.MethodPost, "/api/membership/resetpassword", `{"ticket":"%zz","newPassword":"secret1"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid ticket", decodeError(t, rec).Error)
}

func TestMembershipHandler_ForgotPassword(t *testing.T) {
	f := newMembershipFixture(guestContext())
	f.svc.On("ForgotPassword", mock.Anything, mock.MatchedBy(func(p *param.ForgotPasswordParam) bool {
		return p.Email == "jdoe@example.com"
	})).Return(&viewmodel.ForgotPasswordViewModel{IsSuccess: true, EmailSentTo: "jdoe@example.com"}, nil)

	rec := doJSON(f.e, http.MethodPost, "/api/membership/forgotpassword", `{"email":"jdoe@example.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var vm viewmodel.ForgotPasswordViewModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vm))
	assert.Equal(t, "jdoe@example.com", vm.EmailSentTo)
}

// =====================
// ヘッダー
// =====================

func TestMembershipHandler_SignInHeader(t *testing.T) {
	f := newMembershipFixture(memberContext())
	f.svc.On("GetSignInHeader", mock.Anything, mock.MatchedBy(func(p *param.GetSignInHeaderParam) bool {
		return p.IsAuthenticated && p.CustomerID == testCustomerID && p.EncryptedCustomerID != ""
	})).Return(&viewmodel.SignInHeaderViewModel{IsLoggedIn: true, FirstName: "John"}, nil)

	rec := doJSON(f.e, http.MethodGet, "/api/membership/signin", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var vm viewmodel.SignInHeaderViewModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vm))
	assert.True(t, vm.IsLoggedIn)
	assert.Equal(t, "John", vm.FirstName)
}

func TestMembershipHandler_IsAuthenticated(t *testing.T) {
	f := newMembershipFixture(memberContext())

	rec := doJSON(f.e, http.MethodGet, "/api/membership/isAuthenticated", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"isAuthenticated":true}`, rec.Body.String())
}
