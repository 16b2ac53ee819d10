package api

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/models"
)

// TokenSource supplies the bearer token attached to authenticated requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenSourceFunc adapts a plain function to a TokenSource.
type TokenSourceFunc func(ctx context.Context) (string, error)

func (f TokenSourceFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// UserPayload is the user object as the backend serializes it. The session
// layer normalizes it (profile_picture becomes profilePicture) before
// caching.
type UserPayload struct {
	ID               int64       `json:"id"`
	Name             string      `json:"name"`
	Email            string      `json:"email"`
	Phone            string      `json:"phone"`
	Role             models.Role `json:"role"`
	IsVerified       bool        `json:"is_verified"`
	ProfilePicture   string      `json:"profile_picture"`
	TwoFactorEnabled bool        `json:"two_factor_enabled"`
}

type RegisterRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Phone           string `json:"phone"`
}

type RegisterResponse struct {
	UserID  int64        `json:"user_id"`
	User    *UserPayload `json:"user"`
	Message string       `json:"message"`
	// ErrorText covers backends that answer 200 with an error body.
	ErrorText string `json:"error"`
}

type LoginResponse struct {
	TwoFactorRequired bool         `json:"two_factor_required"`
	UserID            int64        `json:"user_id"`
	AccessToken       string       `json:"access_token"`
	User              *UserPayload `json:"user"`
	Message           string       `json:"message"`
}

// MessageResponse is the generic acknowledgement shape most auth endpoints
// answer with.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// FlexFloat unmarshals from a JSON number or a numeric string; anything
// unparsable reads as zero. The wallet balance endpoint has returned both
// shapes over time.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexFloat(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*f = 0
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(n)
	return nil
}

type BalanceResponse struct {
	Balance  FlexFloat `json:"balance"`
	Currency string    `json:"currency"`
}

// CardPayload is a stored card as the backend serializes it; the wallet
// service maps it onto models.Card.
type CardPayload struct {
	ID         int64  `json:"id"`
	CardNumber string `json:"card_number"`
	CardHolder string `json:"cardholder"`
	Expiry     string `json:"expiry"`
	CardType   string `json:"card_type"`
	IsPrimary  bool   `json:"is_primary"`
}

type CardRequest struct {
	CardHolder string `json:"cardholder"`
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	Primary    bool   `json:"primary"`
}

type UpdateProfileRequest struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	DateOfBirth      string `json:"date_of_birth"`
	Gender           string `json:"gender"`
	EmploymentStatus string `json:"employment_status"`
}

type TransferRequest struct {
	Amount                 float64 `json:"amount"`
	RecipientAccountNumber string  `json:"recipient_account_number"`
	Note                   string  `json:"note,omitempty"`
}

type GroupRequest struct {
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	ContributionAmount float64 `json:"contribution_amount"`
	Frequency          string  `json:"frequency"`
	MaxMembers         int     `json:"max_members"`
	Tier               string  `json:"tier"`
}

// JoinRequestPayload is a join request as the backend serializes it
// (created_at in snake case); the group service normalizes it.
type JoinRequestPayload struct {
	ID        int64   `json:"id"`
	User      string  `json:"user"`
	Category  string  `json:"category"`
	Tier      string  `json:"tier"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	Reason    string  `json:"reason"`
	CreatedAt string  `json:"created_at"`
}

type ContributionRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
	CardID int64   `json:"card_id,omitempty"`
}

// AuthAPI covers registration, login/logout and the verification-code
// endpoints consumed by the session manager.
type AuthAPI interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*UserPayload, error)
	VerifyEmail(ctx context.Context, email, code string) (*MessageResponse, error)
	ResendVerificationCode(ctx context.Context, email string) (*MessageResponse, error)
	VerifyPhone(ctx context.Context, phone, code string) (*MessageResponse, error)
	ResendSMSVerificationCode(ctx context.Context, phone string) (*MessageResponse, error)
	SendOTP(ctx context.Context, phone string) (*MessageResponse, error)
}

// UserAPI covers the profile and account-security endpoints.
type UserAPI interface {
	Profile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) error
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
	UserJoinRequests(ctx context.Context) ([]JoinRequestPayload, error)
}

// WalletAPI covers the digital wallet endpoints.
type WalletAPI interface {
	WalletBalance(ctx context.Context) (*BalanceResponse, error)
	Transactions(ctx context.Context, page, perPage int) (*models.TransactionPage, error)
	Cards(ctx context.Context) ([]CardPayload, error)
	AddCard(ctx context.Context, req CardRequest) error
	UpdateCard(ctx context.Context, id int64, req CardRequest) error
	DeleteCard(ctx context.Context, id int64) error
	Deposit(ctx context.Context, amount float64, cardID int64) (*MessageResponse, error)
	Transfer(ctx context.Context, req TransferRequest) error
	Withdraw(ctx context.Context, amount float64, bankAccountNumber, note string) error
}

// AdminAPI covers the administration endpoints (groups, join requests,
// user management).
type AdminAPI interface {
	AdminGroups(ctx context.Context) ([]models.Group, error)
	AdminGroup(ctx context.Context, id int64) (*models.Group, error)
	AdminGroupMembers(ctx context.Context, id int64) ([]models.GroupMember, error)
	CreateGroup(ctx context.Context, req GroupRequest) (*models.Group, error)
	UpdateGroup(ctx context.Context, id int64, req GroupRequest) error
	DeleteGroup(ctx context.Context, id int64) error
	AdminJoinRequests(ctx context.Context, status string) ([]JoinRequestPayload, error)
	ApproveJoinRequest(ctx context.Context, id int64) error
	RejectJoinRequest(ctx context.Context, id int64, reason string) error
	AdminUsers(ctx context.Context) ([]models.AdminUser, error)
}

// StokvelAPI covers member-facing group endpoints.
type StokvelAPI interface {
	JoinGroup(ctx context.Context, category, tier string, amount float64) error
	Contribute(ctx context.Context, groupID int64, req ContributionRequest) error
}

// KYCAPI covers Know-Your-Customer data submission.
type KYCAPI interface {
	SubmitKYC(ctx context.Context, sub models.KYCSubmission) error
}

// Client is the full backend contract.
type Client interface {
	AuthAPI
	UserAPI
	WalletAPI
	AdminAPI
	StokvelAPI
	KYCAPI
}
