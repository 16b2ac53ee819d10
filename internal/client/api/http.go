package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/models"
	"github.com/Sdizo-sdizo/i-Stokvel/internal/common"
	"github.com/google/uuid"
)

// HTTPClient implements Client against the REST backend.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewHTTPClient returns a Client for the backend at baseURL. tokens may be
// nil, in which case requests are sent unauthenticated.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// do performs one JSON round trip. Transport failures map to ErrUnavailable;
// 4xx/5xx responses map to *Error carrying the decoded body.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err == nil && token != "" {
			req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(data, apiErr)
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	resp := &RegisterResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	resp := &LoginResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*UserPayload, error) {
	resp := &UserPayload{}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) VerifyEmail(ctx context.Context, email, code string) (*MessageResponse, error) {
	body := map[string]string{"email": email, "code": code}
	resp := &MessageResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/verify-email", body, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) ResendVerificationCode(ctx context.Context, email string) (*MessageResponse, error) {
	body := map[string]string{"email": email}
	resp := &MessageResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/resend-verification", body, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) VerifyPhone(ctx context.Context, phone, code string) (*MessageResponse, error) {
	body := map[string]string{"phone": phone, "code": code}
	resp := &MessageResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/verify-phone", body, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) ResendSMSVerificationCode(ctx context.Context, phone string) (*MessageResponse, error) {
	body := map[string]string{"phone": phone}
	resp := &MessageResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/resend-sms", body, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) SendOTP(ctx context.Context, phone string) (*MessageResponse, error) {
	body := map[string]string{"phone": phone}
	resp := &MessageResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/send-otp", body, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.Profile, error) {
	resp := &models.Profile{}
	if err := c.do(ctx, http.MethodGet, "/api/user/profile", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, req UpdateProfileRequest) error {
	return c.do(ctx, http.MethodPut, "/api/user/profile", req, nil)
}

func (c *HTTPClient) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := map[string]string{
		"current_password": currentPassword,
		"new_password":     newPassword,
	}
	return c.do(ctx, http.MethodPost, "/api/user/change-password", body, nil)
}

func (c *HTTPClient) UserJoinRequests(ctx context.Context) ([]JoinRequestPayload, error) {
	var resp []JoinRequestPayload
	if err := c.do(ctx, http.MethodGet, "/api/user/join-requests", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) WalletBalance(ctx context.Context) (*BalanceResponse, error) {
	resp := &BalanceResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/wallet/balance", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) Transactions(ctx context.Context, page, perPage int) (*models.TransactionPage, error) {
	q := url.Values{}
	q.Set("page", fmt.Sprint(page))
	q.Set("per_page", fmt.Sprint(perPage))

	resp := &models.TransactionPage{}
	if err := c.do(ctx, http.MethodGet, "/api/wallet/transactions?"+q.Encode(), nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) Cards(ctx context.Context) ([]CardPayload, error) {
	var resp []CardPayload
	if err := c.do(ctx, http.MethodGet, "/api/wallet/cards", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) AddCard(ctx context.Context, req CardRequest) error {
	return c.do(ctx, http.MethodPost, "/api/wallet/cards", req, nil)
}

func (c *HTTPClient) UpdateCard(ctx context.Context, id int64, req CardRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/wallet/cards/%d", id), req, nil)
}

func (c *HTTPClient) DeleteCard(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/wallet/cards/%d", id), nil, nil)
}

func (c *HTTPClient) Deposit(ctx context.Context, amount float64, cardID int64) (*MessageResponse, error) {
	body := map[string]any{"amount": amount, "card_id": cardID}
	resp := &MessageResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/wallet/deposit", body, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) Transfer(ctx context.Context, req TransferRequest) error {
	return c.do(ctx, http.MethodPost, "/api/wallet/transfer", req, nil)
}

func (c *HTTPClient) Withdraw(ctx context.Context, amount float64, bankAccountNumber, note string) error {
	body := map[string]any{
		"amount":              amount,
		"bank_account_number": bankAccountNumber,
		"note":                note,
	}
	return c.do(ctx, http.MethodPost, "/api/wallet/withdraw", body, nil)
}

func (c *HTTPClient) AdminGroups(ctx context.Context) ([]models.Group, error) {
	var resp []models.Group
	if err := c.do(ctx, http.MethodGet, "/api/admin/groups", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) AdminGroup(ctx context.Context, id int64) (*models.Group, error) {
	resp := &models.Group{}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/admin/groups/%d", id), nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) AdminGroupMembers(ctx context.Context, id int64) ([]models.GroupMember, error) {
	var resp []models.GroupMember
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/admin/groups/%d/members", id), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) CreateGroup(ctx context.Context, req GroupRequest) (*models.Group, error) {
	resp := &models.Group{}
	if err := c.do(ctx, http.MethodPost, "/api/admin/groups", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) UpdateGroup(ctx context.Context, id int64, req GroupRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/groups/%d", id), req, nil)
}

func (c *HTTPClient) DeleteGroup(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/groups/%d", id), nil, nil)
}

func (c *HTTPClient) AdminJoinRequests(ctx context.Context, status string) ([]JoinRequestPayload, error) {
	path := "/api/admin/join-requests"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var resp []JoinRequestPayload
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) ApproveJoinRequest(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/admin/join-requests/%d/approve", id), nil, nil)
}

func (c *HTTPClient) RejectJoinRequest(ctx context.Context, id int64, reason string) error {
	body := map[string]string{"reason": reason}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/admin/join-requests/%d/reject", id), body, nil)
}

func (c *HTTPClient) AdminUsers(ctx context.Context) ([]models.AdminUser, error) {
	var resp []models.AdminUser
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) JoinGroup(ctx context.Context, category, tier string, amount float64) error {
	body := map[string]any{"category": category, "tier": tier, "amount": amount}
	return c.do(ctx, http.MethodPost, "/api/stokvel/join-group", body, nil)
}

func (c *HTTPClient) Contribute(ctx context.Context, groupID int64, req ContributionRequest) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/groups/%d/contribute", groupID), req, nil)
}

func (c *HTTPClient) SubmitKYC(ctx context.Context, sub models.KYCSubmission) error {
	return c.do(ctx, http.MethodPost, "/api/kyc/submit", sub, nil)
}
