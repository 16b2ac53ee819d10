package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/api"
	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/models"
)

// GroupService defines the stokvel group operations: the admin-side group
// and join-request management plus the member-side join and contribute
// flows.
type GroupService interface {
	Groups(ctx context.Context) ([]models.Group, error)
	Group(ctx context.Context, id int64) (*models.Group, error)
	Members(ctx context.Context, groupID int64) ([]models.GroupMember, error)
	Create(ctx context.Context, g models.Group) (*models.Group, error)
	Update(ctx context.Context, g models.Group) error
	Delete(ctx context.Context, id int64) error

	JoinRequests(ctx context.Context, status string) ([]models.JoinRequest, error)
	Approve(ctx context.Context, requestID int64) error
	Reject(ctx context.Context, requestID int64, reason string) error

	Join(ctx context.Context, category, tier string, amount float64) error
	MyJoinRequests(ctx context.Context) ([]models.JoinRequest, error)
	HasPendingRequest(ctx context.Context, category, tier string, amount float64) (bool, error)
	Contribute(ctx context.Context, groupID int64, amount float64, method string, cardID int64) error
}

type groupService struct {
	admin   api.AdminAPI
	stokvel api.StokvelAPI
	user    api.UserAPI
}

// NewGroupService constructs a GroupService over the admin, stokvel and
// user API surfaces.
func NewGroupService(admin api.AdminAPI, stokvel api.StokvelAPI, user api.UserAPI) GroupService {
	return &groupService{admin: admin, stokvel: stokvel, user: user}
}

func (g *groupService) Groups(ctx context.Context) ([]models.Group, error) {
	groups, err := g.admin.AdminGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}
	return groups, nil
}

func (g *groupService) Group(ctx context.Context, id int64) (*models.Group, error) {
	group, err := g.admin.AdminGroup(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching group %d: %w", id, err)
	}
	return group, nil
}

func (g *groupService) Members(ctx context.Context, groupID int64) ([]models.GroupMember, error) {
	members, err := g.admin.AdminGroupMembers(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("listing group members: %w", err)
	}
	return members, nil
}

func (g *groupService) Create(ctx context.Context, group models.Group) (*models.Group, error) {
	created, err := g.admin.CreateGroup(ctx, groupRequest(group))
	if err != nil {
		return nil, fmt.Errorf("creating group: %w", err)
	}
	return created, nil
}

func (g *groupService) Update(ctx context.Context, group models.Group) error {
	if err := g.admin.UpdateGroup(ctx, group.ID, groupRequest(group)); err != nil {
		return fmt.Errorf("updating group %d: %w", group.ID, err)
	}
	return nil
}

func (g *groupService) Delete(ctx context.Context, id int64) error {
	if err := g.admin.DeleteGroup(ctx, id); err != nil {
		return fmt.Errorf("deleting group %d: %w", id, err)
	}
	return nil
}

// JoinRequests lists join requests visible to an admin, optionally
// filtered by status on the backend.
func (g *groupService) JoinRequests(ctx context.Context, status string) ([]models.JoinRequest, error) {
	payloads, err := g.admin.AdminJoinRequests(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("listing join requests: %w", err)
	}
	return normalizeJoinRequests(payloads), nil
}

func (g *groupService) Approve(ctx context.Context, requestID int64) error {
	if err := g.admin.ApproveJoinRequest(ctx, requestID); err != nil {
		return fmt.Errorf("approving join request %d: %w", requestID, err)
	}
	return nil
}

func (g *groupService) Reject(ctx context.Context, requestID int64, reason string) error {
	if err := g.admin.RejectJoinRequest(ctx, requestID, reason); err != nil {
		return fmt.Errorf("rejecting join request %d: %w", requestID, err)
	}
	return nil
}

// Join submits a member's request to join a stokvel tier. The request only
// records intent; membership starts once an admin approves it.
func (g *groupService) Join(ctx context.Context, category, tier string, amount float64) error {
	if err := g.stokvel.JoinGroup(ctx, category, tier, amount); err != nil {
		return fmt.Errorf("joining group: %w", err)
	}
	return nil
}

func (g *groupService) MyJoinRequests(ctx context.Context) ([]models.JoinRequest, error) {
	payloads, err := g.user.UserJoinRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing own join requests: %w", err)
	}
	return normalizeJoinRequests(payloads), nil
}

// HasPendingRequest reports whether the member already has a pending join
// request for the given category, tier and contribution amount, so
// duplicate submissions can be blocked up front. The amount is taken from
// the caller rather than any cached selection. Name matching is
// case-insensitive.
func (g *groupService) HasPendingRequest(ctx context.Context, category, tier string, amount float64) (bool, error) {
	requests, err := g.MyJoinRequests(ctx)
	if err != nil {
		return false, err
	}
	for _, r := range requests {
		if r.Status == models.RequestPending &&
			strings.EqualFold(r.Category, category) &&
			strings.EqualFold(r.Tier, tier) &&
			r.Amount == amount {
			return true, nil
		}
	}
	return false, nil
}

func (g *groupService) Contribute(ctx context.Context, groupID int64, amount float64, method string, cardID int64) error {
	if amount <= 0 {
		return fmt.Errorf("contribution amount must be positive")
	}
	err := g.stokvel.Contribute(ctx, groupID, api.ContributionRequest{
		Amount: amount,
		Method: method,
		CardID: cardID,
	})
	if err != nil {
		return fmt.Errorf("contributing to group %d: %w", groupID, err)
	}
	return nil
}

func groupRequest(g models.Group) api.GroupRequest {
	return api.GroupRequest{
		Name:               g.Name,
		Description:        g.Description,
		ContributionAmount: g.ContributionAmount,
		Frequency:          g.Frequency,
		MaxMembers:         g.MaxMembers,
		Tier:               g.Tier,
	}
}

func normalizeJoinRequests(payloads []api.JoinRequestPayload) []models.JoinRequest {
	requests := make([]models.JoinRequest, 0, len(payloads))
	for _, p := range payloads {
		status := strings.ToLower(p.Status)
		if status == "" {
			status = models.RequestPending
		}
		requests = append(requests, models.JoinRequest{
			ID:        p.ID,
			User:      p.User,
			Category:  p.Category,
			Tier:      p.Tier,
			Amount:    p.Amount,
			Status:    status,
			Reason:    p.Reason,
			CreatedAt: p.CreatedAt,
		})
	}
	return requests
}
