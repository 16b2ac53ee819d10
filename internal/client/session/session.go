package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/api"
	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/models"
	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/store"
	"github.com/Sdizo-sdizo/i-Stokvel/internal/logging"
)

// Fixed store keys for the persisted session unit.
const (
	tokenKey = "token"
	userKey  = "user"
)

// Redirect targets computed by the session layer.
const (
	LoginPath          = "/login"
	DashboardPath      = "/dashboard"
	AdminDashboardPath = "/admin/dashboard"
)

// Navigator performs a full-page navigation to the given path. The CLI and
// tests supply their own implementations.
type Navigator interface {
	Redirect(path string)
}

// NavigatorFunc adapts a plain function to a Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Redirect(path string) { f(path) }

// Result is the normalized outcome of a session operation. Failed network
// calls never surface as errors; they become a Result with Success false
// and a human-readable Message.
type Result struct {
	Success bool
	Message string
}

// SignupResult carries the new user identity on success.
type SignupResult struct {
	Result
	UserID int64
	User   *api.UserPayload
}

// LoginResult is one of three outcomes: two-factor pending (no session
// persisted), success (session persisted, RedirectTo set), or failure.
type LoginResult struct {
	Result
	TwoFactorRequired bool
	UserID            int64
	RedirectTo        string
	User              *models.User
}

// Manager mediates all session-lifecycle operations and is the single
// source of truth for "is this client authenticated, and as whom".
type Manager struct {
	api   api.AuthAPI
	store store.Store
	nav   Navigator
	log   logging.Logger
	now   func() time.Time
}

// NewManager constructs a Manager bound to the given API client, store and
// navigator.
func NewManager(authAPI api.AuthAPI, st store.Store, nav Navigator, log logging.Logger) *Manager {
	return &Manager{api: authAPI, store: st, nav: nav, log: log, now: time.Now}
}

// TokenSource adapts the session store into the API client's token source,
// so authenticated requests pick up whatever token is currently persisted.
func TokenSource(st store.Store) api.TokenSource {
	return api.TokenSourceFunc(func(ctx context.Context) (string, error) {
		v, err := st.Get(ctx, tokenKey)
		if err != nil {
			return "", err
		}
		return string(v), nil
	})
}

// Signup registers a new account. Inputs are passed through verbatim; the
// confirmation value sent to the backend equals password. No session is
// persisted — the user still has to log in.
func (m *Manager) Signup(ctx context.Context, fullName, email, password, phoneNumber string) SignupResult {
	resp, err := m.api.Register(ctx, api.RegisterRequest{
		FullName:        fullName,
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
		Phone:           phoneNumber,
	})
	if err != nil {
		return SignupResult{Result: Result{Message: errMessage(err, "Signup failed. Please try again.")}}
	}

	if strings.Contains(resp.Message, "successfully") || resp.UserID != 0 {
		return SignupResult{
			Result: Result{Success: true, Message: "Account created successfully"},
			UserID: resp.UserID,
			User:   resp.User,
		}
	}

	msg := resp.ErrorText
	if msg == "" {
		msg = "Signup failed"
	}
	return SignupResult{Result: Result{Message: msg}}
}

// Login authenticates against the backend. When the backend demands a
// second factor, the result is flagged accordingly and nothing is
// persisted. On success the token and the normalized user record are
// stored together and the role-dependent redirect target is returned. A
// response missing either the token or the user record counts as a
// failure and persists nothing.
func (m *Manager) Login(ctx context.Context, email, password string) LoginResult {
	resp, err := m.api.Login(ctx, email, password)
	if err != nil {
		return LoginResult{Result: Result{Message: errMessage(err, "Login failed. Please check your credentials.")}}
	}

	if resp.TwoFactorRequired {
		msg := resp.Message
		if msg == "" {
			msg = "2FA required"
		}
		return LoginResult{
			Result:            Result{Message: msg},
			TwoFactorRequired: true,
			UserID:            resp.UserID,
		}
	}

	if resp.AccessToken == "" || resp.User == nil {
		return LoginResult{Result: Result{Message: "Login failed. Please check your credentials."}}
	}

	user := normalizeUser(resp.User)
	if err := m.persist(ctx, resp.AccessToken, user); err != nil {
		m.log.Error(ctx, "failed to persist session", "err", err)
		return LoginResult{Result: Result{Message: "Login failed. Please check your credentials."}}
	}

	redirectTo := DashboardPath
	if user.Role == models.RoleAdmin {
		redirectTo = AdminDashboardPath
	}
	return LoginResult{
		Result:     Result{Success: true, Message: "Login successful"},
		RedirectTo: redirectTo,
		User:       user,
	}
}

// Logout clears the persisted session, notifies the backend best-effort,
// and redirects to the login screen. It cannot fail from the caller's
// perspective: the redirect happens even when the clear or the notify
// errors (or panics) internally.
func (m *Manager) Logout(ctx context.Context) {
	defer m.nav.Redirect(LoginPath)

	m.clear(ctx)

	if err := m.api.Logout(ctx); err != nil {
		m.log.Warn(ctx, "logout notify failed", "err", err)
	}
}

// IsAuthenticated reports whether a usable session exists: a well-formed,
// unexpired token paired with a verified user record. Every negative
// branch past the initial "no token" case removes both store keys, so no
// partial session is ever left behind.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	token, err := m.store.Get(ctx, tokenKey)
	if err != nil {
		m.clear(ctx)
		return false
	}
	if len(token) == 0 {
		return false
	}

	claims, err := ParseClaims(string(token))
	if err != nil {
		m.clear(ctx)
		return false
	}
	if err := claims.Validate(m.now()); err != nil {
		m.clear(ctx)
		return false
	}

	user := m.CurrentUser(ctx)
	if user == nil || !user.IsVerified {
		m.clear(ctx)
		return false
	}
	return true
}

// CurrentUser returns the cached user record, or nil when the record is
// absent, unparsable, or not verified. It never fails.
func (m *Manager) CurrentUser(ctx context.Context) *models.User {
	data, err := m.store.Get(ctx, userKey)
	if err != nil || len(data) == 0 {
		return nil
	}

	user := &models.User{}
	if err := json.Unmarshal(data, user); err != nil {
		return nil
	}
	if !user.IsVerified {
		return nil
	}
	return user
}

// HasRole reports whether a usable user record with the given role is
// cached. It does not validate the token.
func (m *Manager) HasRole(ctx context.Context, role models.Role) bool {
	user := m.CurrentUser(ctx)
	return user != nil && user.Role == role
}

// RequireRole runs the full session validity check before the role check.
// An invalid session is cleared as a side effect, same as IsAuthenticated.
func (m *Manager) RequireRole(ctx context.Context, role models.Role) bool {
	if !m.IsAuthenticated(ctx) {
		return false
	}
	return m.HasRole(ctx, role)
}

// UserRole returns the cached user's role, defaulting to member when no
// usable record exists.
func (m *Manager) UserRole(ctx context.Context) models.Role {
	if user := m.CurrentUser(ctx); user != nil {
		return user.Role
	}
	return models.RoleMember
}

// VerifyEmailCode submits an email verification code, with all whitespace
// stripped from the code first.
func (m *Manager) VerifyEmailCode(ctx context.Context, email, code string) Result {
	resp, err := m.api.VerifyEmail(ctx, email, stripSpace(code))
	if err != nil {
		return Result{Message: errMessage(err, "Verification failed")}
	}

	msg := resp.Message
	if msg == "" {
		msg = "Account verified successfully"
	}
	return Result{Success: true, Message: msg}
}

// ResendEmailVerificationCode asks the backend to send a fresh email code.
func (m *Manager) ResendEmailVerificationCode(ctx context.Context, email string) Result {
	resp, err := m.api.ResendVerificationCode(ctx, email)
	if err != nil {
		return Result{Message: errMessage(err, "Failed to resend code")}
	}

	msg := resp.Message
	if msg == "" {
		msg = "New verification code sent"
	}
	return Result{Success: true, Message: msg}
}

// VerifyPhoneCode submits a phone verification code. The endpoint payload
// is passed through unchanged on success; failures are normalized.
func (m *Manager) VerifyPhoneCode(ctx context.Context, phone, code string) api.MessageResponse {
	resp, err := m.api.VerifyPhone(ctx, phone, code)
	if err != nil {
		return api.MessageResponse{Message: errMessage(err, "Verification failed")}
	}
	return *resp
}

// ResendSmsVerificationCode asks the backend to send a fresh SMS code.
func (m *Manager) ResendSmsVerificationCode(ctx context.Context, phone string) Result {
	resp, err := m.api.ResendSMSVerificationCode(ctx, phone)
	if err != nil {
		return Result{Message: errMessage(err, "Failed to resend code")}
	}

	msg := resp.Message
	if msg == "" {
		msg = "New verification code sent"
	}
	return Result{Success: true, Message: msg}
}

// SendSmsVerificationCode triggers the generic send-otp endpoint. The
// payload is passed through on success; failures are normalized.
func (m *Manager) SendSmsVerificationCode(ctx context.Context, phone string) api.MessageResponse {
	resp, err := m.api.SendOTP(ctx, phone)
	if err != nil {
		return api.MessageResponse{Message: errMessage(err, "Failed to send code")}
	}
	return *resp
}

// persist writes the token and the user record as one unit.
func (m *Manager) persist(ctx context.Context, token string, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return m.store.SetAll(ctx, map[string][]byte{
		tokenKey: []byte(token),
		userKey:  data,
	})
}

// clear removes both persisted keys, best-effort.
func (m *Manager) clear(ctx context.Context) {
	if err := m.store.Delete(ctx, tokenKey); err != nil {
		m.log.Warn(ctx, "failed to clear token", "err", err)
	}
	if err := m.store.Delete(ctx, userKey); err != nil {
		m.log.Warn(ctx, "failed to clear user", "err", err)
	}
}

// normalizeUser maps the backend user payload onto the cached record shape,
// carrying profile_picture over to profilePicture.
func normalizeUser(p *api.UserPayload) *models.User {
	return &models.User{
		ID:               p.ID,
		Name:             p.Name,
		Email:            p.Email,
		Phone:            p.Phone,
		Role:             p.Role,
		IsVerified:       p.IsVerified,
		ProfilePicture:   p.ProfilePicture,
		TwoFactorEnabled: p.TwoFactorEnabled,
	}
}

// errMessage extracts the server-reported message from err, falling back to
// the given default when none is available (transport failures and the like).
func errMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Detail() != "" {
		return apiErr.Detail()
	}
	return fallback
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
