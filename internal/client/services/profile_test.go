package services

import (
	"context"
	"testing"

	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/api"
	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/models"
	"github.com/stretchr/testify/require"
)

func TestProfileGet(t *testing.T) {
	user := &fakeUserAPI{ProfileResp: &models.Profile{Name: "Thandi", AccountNumber: "ACC-1"}}
	svc := NewProfileService(user)

	p, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Thandi", p.Name)
	require.Equal(t, "ACC-1", p.AccountNumber)
}

func TestProfileUpdate_SendsEditableFieldsOnly(t *testing.T) {
	user := &fakeUserAPI{}
	svc := NewProfileService(user)

	err := svc.Update(context.Background(), models.Profile{
		Name:             "Thandi M",
		Email:            "new@example.com",
		Phone:            "+27111234567",
		DateOfBirth:      "1990-05-01",
		Gender:           "female",
		EmploymentStatus: "employed",
		AccountNumber:    "ACC-1",
	})
	require.NoError(t, err)
	require.Equal(t, api.UpdateProfileRequest{
		Name:             "Thandi M",
		Phone:            "+27111234567",
		DateOfBirth:      "1990-05-01",
		Gender:           "female",
		EmploymentStatus: "employed",
	}, user.LastUpdate)
}

func TestChangePassword(t *testing.T) {
	user := &fakeUserAPI{}
	svc := NewProfileService(user)
	ctx := context.Background()

	require.Error(t, svc.ChangePassword(ctx, "old", ""), "empty new password rejected locally")
	require.Zero(t, user.ChangePwdCalls)

	require.NoError(t, svc.ChangePassword(ctx, "old", "newpass"))
	require.Equal(t, "old", user.LastCurrent)
	require.Equal(t, "newpass", user.LastNewPass)
}

func TestChangePassword_BackendError(t *testing.T) {
	user := &fakeUserAPI{ChangePassErr: &api.Error{StatusCode: 400, ErrorText: "Current password is incorrect"}}
	svc := NewProfileService(user)

	err := svc.ChangePassword(context.Background(), "wrong", "newpass")
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Current password is incorrect", apiErr.Detail())
}
