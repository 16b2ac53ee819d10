package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sdizo-sdizo/i-Stokvel/internal/common"
	"github.com/stretchr/testify/require"
)

func staticToken(token string) TokenSource {
	return TokenSourceFunc(func(ctx context.Context) (string, error) {
		return token, nil
	})
}

func TestHTTPClient_Login_DecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "u@example.com", body["email"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "a.b.c",
			"user": map[string]any{
				"id": 7, "role": "member", "is_verified": true,
				"profile_picture": "x.png",
			},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, nil)
	resp, err := c.Login(context.Background(), "u@example.com", "pass")
	require.NoError(t, err)
	require.Equal(t, "a.b.c", resp.AccessToken)
	require.NotNil(t, resp.User)
	require.Equal(t, "x.png", resp.User.ProfilePicture)
	require.True(t, resp.User.IsVerified)
}

func TestHTTPClient_AttachesBearerTokenAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get(common.AuthorizationHeaderName)
		gotReqID = r.Header.Get(common.RequestIDHeaderName)
		_ = json.NewEncoder(w).Encode(map[string]any{"balance": 10})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, staticToken("tok123"))
	_, err := c.WalletBalance(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok123", gotAuth)
	require.NotEmpty(t, gotReqID)
}

func TestHTTPClient_ErrorBodyBecomesTypedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Email already in use"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, nil)
	_, err := c.Register(context.Background(), RegisterRequest{Email: "u@example.com"})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "Email already in use", apiErr.Detail())
}

func TestHTTPClient_401MatchesErrUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "token expired"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, nil)
	_, err := c.Profile(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPClient_TransportFailureIsErrUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	c := NewHTTPClient(srv.URL, time.Second, nil)
	err := c.Logout(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_Transactions_SendsPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/wallet/transactions", r.URL.Path)
		require.Equal(t, "3", r.URL.Query().Get("page"))
		require.Equal(t, "10", r.URL.Query().Get("per_page"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"transactions": []map[string]any{{"id": 1, "transaction_type": "deposit", "amount": 100, "status": "completed"}},
			"page":         3,
			"pages":        5,
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, nil)
	page, err := c.Transactions(context.Background(), 3, 10)
	require.NoError(t, err)
	require.Len(t, page.Transactions, 1)
	require.Equal(t, 5, page.Pages)
}

func TestFlexFloat_AcceptsNumberStringAndGarbage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want float64
	}{
		{"number", `{"balance": 150.5}`, 150.5},
		{"numeric string", `{"balance": "99.9"}`, 99.9},
		{"garbage string", `{"balance": "oops"}`, 0},
		{"null", `{"balance": null}`, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var resp BalanceResponse
			require.NoError(t, json.Unmarshal([]byte(tc.body), &resp))
			require.Equal(t, tc.want, float64(resp.Balance))
		})
	}
}

func TestErrorIs_OnlyMatches401(t *testing.T) {
	e := &Error{StatusCode: 400, ErrorText: "bad"}
	require.False(t, errors.Is(e, ErrUnauthorized))
	e.StatusCode = 401
	require.True(t, errors.Is(e, ErrUnauthorized))
}
