package services

import (
	"context"
	"testing"

	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/api"
	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/models"
	"github.com/stretchr/testify/require"
)

// fakeAdminAPI implements api.AdminAPI for GroupService unit tests.
type fakeAdminAPI struct {
	GroupsResp  []models.Group
	GroupsErr   error
	GroupResp   *models.Group
	GroupErr    error
	MembersResp []models.GroupMember
	MembersErr  error

	CreateResp *models.Group
	CreateErr  error
	UpdateErr  error
	DeleteErr  error

	JoinReqsResp []api.JoinRequestPayload
	JoinReqsErr  error
	ApproveErr   error
	RejectErr    error

	UsersResp []models.AdminUser
	UsersErr  error

	LastGroupReq     api.GroupRequest
	LastGroupID      int64
	LastStatusFilter string
	LastRequestID    int64
	LastRejectReason string
}

func (f *fakeAdminAPI) AdminGroups(ctx context.Context) ([]models.Group, error) {
	return f.GroupsResp, f.GroupsErr
}

func (f *fakeAdminAPI) AdminGroup(ctx context.Context, id int64) (*models.Group, error) {
	f.LastGroupID = id
	return f.GroupResp, f.GroupErr
}

func (f *fakeAdminAPI) AdminGroupMembers(ctx context.Context, id int64) ([]models.GroupMember, error) {
	f.LastGroupID = id
	return f.MembersResp, f.MembersErr
}

func (f *fakeAdminAPI) CreateGroup(ctx context.Context, req api.GroupRequest) (*models.Group, error) {
	f.LastGroupReq = req
	return f.CreateResp, f.CreateErr
}

func (f *fakeAdminAPI) UpdateGroup(ctx context.Context, id int64, req api.GroupRequest) error {
	f.LastGroupID = id
	f.LastGroupReq = req
	return f.UpdateErr
}

func (f *fakeAdminAPI) DeleteGroup(ctx context.Context, id int64) error {
	f.LastGroupID = id
	return f.DeleteErr
}

func (f *fakeAdminAPI) AdminJoinRequests(ctx context.Context, status string) ([]api.JoinRequestPayload, error) {
	f.LastStatusFilter = status
	return f.JoinReqsResp, f.JoinReqsErr
}

func (f *fakeAdminAPI) ApproveJoinRequest(ctx context.Context, id int64) error {
	f.LastRequestID = id
	return f.ApproveErr
}

func (f *fakeAdminAPI) RejectJoinRequest(ctx context.Context, id int64, reason string) error {
	f.LastRequestID = id
	f.LastRejectReason = reason
	return f.RejectErr
}

func (f *fakeAdminAPI) AdminUsers(ctx context.Context) ([]models.AdminUser, error) {
	return f.UsersResp, f.UsersErr
}

// fakeStokvelAPI implements api.StokvelAPI.
type fakeStokvelAPI struct {
	JoinErr       error
	ContributeErr error

	LastCategory   string
	LastTier       string
	LastAmount     float64
	LastGroupID    int64
	LastContribute api.ContributionRequest
}

func (f *fakeStokvelAPI) JoinGroup(ctx context.Context, category, tier string, amount float64) error {
	f.LastCategory = category
	f.LastTier = tier
	f.LastAmount = amount
	return f.JoinErr
}

func (f *fakeStokvelAPI) Contribute(ctx context.Context, groupID int64, req api.ContributionRequest) error {
	f.LastGroupID = groupID
	f.LastContribute = req
	return f.ContributeErr
}

// fakeUserAPI implements api.UserAPI.
type fakeUserAPI struct {
	ProfileResp *models.Profile
	ProfileErr  error

	UpdateErr      error
	ChangePassErr  error
	JoinReqsResp   []api.JoinRequestPayload
	JoinReqsErr    error
	LastUpdate     api.UpdateProfileRequest
	LastCurrent    string
	LastNewPass    string
	ProfileCalls   int
	JoinReqsCalls  int
	UpdateCalls    int
	ChangePwdCalls int
}

func (f *fakeUserAPI) Profile(ctx context.Context) (*models.Profile, error) {
	f.ProfileCalls++
	return f.ProfileResp, f.ProfileErr
}

func (f *fakeUserAPI) UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) error {
	f.UpdateCalls++
	f.LastUpdate = req
	return f.UpdateErr
}

func (f *fakeUserAPI) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	f.ChangePwdCalls++
	f.LastCurrent = currentPassword
	f.LastNewPass = newPassword
	return f.ChangePassErr
}

func (f *fakeUserAPI) UserJoinRequests(ctx context.Context) ([]api.JoinRequestPayload, error) {
	f.JoinReqsCalls++
	return f.JoinReqsResp, f.JoinReqsErr
}

func newGroupService(admin *fakeAdminAPI, stokvel *fakeStokvelAPI, user *fakeUserAPI) GroupService {
	if admin == nil {
		admin = &fakeAdminAPI{}
	}
	if stokvel == nil {
		stokvel = &fakeStokvelAPI{}
	}
	if user == nil {
		user = &fakeUserAPI{}
	}
	return NewGroupService(admin, stokvel, user)
}

func TestGroupCreate_BuildsRequest(t *testing.T) {
	admin := &fakeAdminAPI{CreateResp: &models.Group{ID: 9, Name: "Umoja"}}
	svc := newGroupService(admin, nil, nil)

	created, err := svc.Create(context.Background(), models.Group{
		Name:               "Umoja",
		Description:        "Monthly savings circle",
		ContributionAmount: 500,
		Frequency:          "monthly",
		MaxMembers:         12,
		Tier:               "silver",
	})
	require.NoError(t, err)
	require.Equal(t, int64(9), created.ID)
	require.Equal(t, "Umoja", admin.LastGroupReq.Name)
	require.Equal(t, 500.0, admin.LastGroupReq.ContributionAmount)
	require.Equal(t, 12, admin.LastGroupReq.MaxMembers)
}

func TestGroupUpdateDelete_TargetCorrectID(t *testing.T) {
	admin := &fakeAdminAPI{}
	svc := newGroupService(admin, nil, nil)
	ctx := context.Background()

	require.NoError(t, svc.Update(ctx, models.Group{ID: 3, Name: "Umoja"}))
	require.Equal(t, int64(3), admin.LastGroupID)

	require.NoError(t, svc.Delete(ctx, 8))
	require.Equal(t, int64(8), admin.LastGroupID)
}

func TestJoinRequests_NormalizesStatus(t *testing.T) {
	admin := &fakeAdminAPI{JoinReqsResp: []api.JoinRequestPayload{
		{ID: 1, Status: "Pending", CreatedAt: "2025-03-01T10:00:00Z"},
		{ID: 2, Status: ""},
	}}
	svc := newGroupService(admin, nil, nil)

	reqs, err := svc.JoinRequests(context.Background(), models.RequestPending)
	require.NoError(t, err)
	require.Equal(t, models.RequestPending, admin.LastStatusFilter)
	require.Len(t, reqs, 2)
	require.Equal(t, models.RequestPending, reqs[0].Status)
	require.Equal(t, "2025-03-01T10:00:00Z", reqs[0].CreatedAt)
	require.Equal(t, models.RequestPending, reqs[1].Status)
}

func TestRejectJoinRequest_PassesReason(t *testing.T) {
	admin := &fakeAdminAPI{}
	svc := newGroupService(admin, nil, nil)

	require.NoError(t, svc.Reject(context.Background(), 5, "incomplete details"))
	require.Equal(t, int64(5), admin.LastRequestID)
	require.Equal(t, "incomplete details", admin.LastRejectReason)
}

func TestJoin_ForwardsSelection(t *testing.T) {
	stokvel := &fakeStokvelAPI{}
	svc := newGroupService(nil, stokvel, nil)

	require.NoError(t, svc.Join(context.Background(), "grocery", "gold", 1000))
	require.Equal(t, "grocery", stokvel.LastCategory)
	require.Equal(t, "gold", stokvel.LastTier)
	require.Equal(t, 1000.0, stokvel.LastAmount)
}

func TestHasPendingRequest(t *testing.T) {
	user := &fakeUserAPI{JoinReqsResp: []api.JoinRequestPayload{
		{Category: "Grocery", Tier: "Gold", Amount: 1000, Status: "pending"},
		{Category: "burial", Tier: "silver", Amount: 500, Status: "approved"},
	}}
	svc := newGroupService(nil, nil, user)
	ctx := context.Background()

	ok, err := svc.HasPendingRequest(ctx, "grocery", "gold", 1000)
	require.NoError(t, err)
	require.True(t, ok, "case-insensitive match on category and tier")

	ok, err = svc.HasPendingRequest(ctx, "grocery", "gold", 500)
	require.NoError(t, err)
	require.False(t, ok, "different amount is a different request")

	ok, err = svc.HasPendingRequest(ctx, "burial", "silver", 500)
	require.NoError(t, err)
	require.False(t, ok, "settled requests do not block")
}

func TestContribute_RejectsNonPositiveAmount(t *testing.T) {
	svc := newGroupService(nil, &fakeStokvelAPI{}, nil)
	require.Error(t, svc.Contribute(context.Background(), 1, 0, "wallet", 0))
}

func TestContribute_BuildsRequest(t *testing.T) {
	stokvel := &fakeStokvelAPI{}
	svc := newGroupService(nil, stokvel, nil)

	require.NoError(t, svc.Contribute(context.Background(), 7, 500, "card", 3))
	require.Equal(t, int64(7), stokvel.LastGroupID)
	require.Equal(t, 500.0, stokvel.LastContribute.Amount)
	require.Equal(t, "card", stokvel.LastContribute.Method)
	require.Equal(t, int64(3), stokvel.LastContribute.CardID)
}
