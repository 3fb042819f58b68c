package viewmodel

// アカウント操作の結果
type MyAccountStatus string

const (
	MyAccountStatusSuccess           MyAccountStatus = "Success"
	MyAccountStatusFailed            MyAccountStatus = "Failed"
	MyAccountStatusInvalidTicket     MyAccountStatus = "InvalidTicket"
	MyAccountStatusDuplicateEmail    MyAccountStatus = "DuplicateEmail"
	MyAccountStatusDuplicateUserName MyAccountStatus = "DuplicateUserName"
	MyAccountStatusInvalidPassword   MyAccountStatus = "InvalidPassword"
	MyAccountStatusInvalidEmail      MyAccountStatus = "InvalidEmail"
	MyAccountStatusRequiresApproval  MyAccountStatus = "RequiresApproval"
	MyAccountStatusUserRejected      MyAccountStatus = "UserRejected"
	MyAccountStatusInactiveAccount   MyAccountStatus = "InactiveAccount"
)

type LoginViewModel struct {
	IsSuccess         bool            `json:"isSuccess"`
	Status            MyAccountStatus `json:"status"`
	Username          string          `json:"username"`
	FirstName         string          `json:"firstName"`
	LastName          string          `json:"lastName"`
	ReturnURL         string          `json:"returnUrl"`
	CreateAccountURL  string          `json:"createAccountUrl"`
	ForgotPasswordURL string          `json:"forgotPasswordUrl"`
	Message           string          `json:"message,omitempty"`
}

type CreateAccountViewModel struct {
	IsSuccess                 bool            `json:"isSuccess"`
	Status                    MyAccountStatus `json:"status"`
	Username                  string          `json:"username"`
	Email                     string          `json:"email"`
	FirstName                 string          `json:"firstName"`
	LastName                  string          `json:"lastName"`
	ReturnURL                 string          `json:"returnUrl"`
	MinRequiredPasswordLength int             `json:"minRequiredPasswordLength"`
}

type ChangePasswordViewModel struct {
	IsSuccess bool            `json:"isSuccess"`
	Status    MyAccountStatus `json:"status"`
	ReturnURL string          `json:"returnUrl"`
}

type ResetPasswordViewModel struct {
	IsSuccess bool            `json:"isSuccess"`
	Status    MyAccountStatus `json:"status"`
	ReturnURL string          `json:"returnUrl"`
}

type ForgotPasswordViewModel struct {
	IsSuccess   bool            `json:"isSuccess"`
	Status      MyAccountStatus `json:"status"`
	EmailSentTo string          `json:"emailSentTo"`
}

type LogoutViewModel struct {
	ReturnURL string `json:"returnUrl"`
}

type SignInHeaderViewModel struct {
	IsLoggedIn          bool   `json:"isLoggedIn"`
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	URL                 string `json:"url"`
	EncryptedCustomerID string `json:"encryptedCustomerId"`
}

type IsAuthenticatedViewModel struct {
	IsAuthenticated bool `json:"isAuthenticated"`
}
