package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/api"
	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/models"
)

// AdminUserService lists platform users for administrators, with
// client-side search and status filtering.
type AdminUserService interface {
	Users(ctx context.Context, query, status string) ([]models.AdminUser, error)
}

type adminUserService struct {
	client api.AdminAPI
}

// NewAdminUserService constructs an AdminUserService bound to the given
// API client.
func NewAdminUserService(client api.AdminAPI) AdminUserService {
	return &adminUserService{client: client}
}

// Users fetches the full user listing and filters it locally. The query
// matches name, email or numeric id (case-insensitive substring); status
// "all" or "" disables the status filter.
func (a *adminUserService) Users(ctx context.Context, query, status string) ([]models.AdminUser, error) {
	users, err := a.client.AdminUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	status = strings.ToLower(strings.TrimSpace(status))

	filtered := make([]models.AdminUser, 0, len(users))
	for _, u := range users {
		if status != "" && status != "all" && strings.ToLower(u.Status) != status {
			continue
		}
		if query != "" && !matchesQuery(u, query) {
			continue
		}
		filtered = append(filtered, u)
	}
	return filtered, nil
}

func matchesQuery(u models.AdminUser, query string) bool {
	return strings.Contains(strings.ToLower(u.FullName), query) ||
		strings.Contains(strings.ToLower(u.Email), query) ||
		strings.Contains(strconv.FormatInt(u.ID, 10), query)
}
