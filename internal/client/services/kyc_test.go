package services

import (
	"context"
	"testing"

	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/models"
	"github.com/stretchr/testify/require"
)

// fakeKYCAPI implements api.KYCAPI.
type fakeKYCAPI struct {
	SubmitErr  error
	LastSubmit models.KYCSubmission
	Calls      int
}

func (f *fakeKYCAPI) SubmitKYC(ctx context.Context, sub models.KYCSubmission) error {
	f.Calls++
	f.LastSubmit = sub
	return f.SubmitErr
}

func TestKYCPrefill_FromProfile(t *testing.T) {
	user := &fakeUserAPI{ProfileResp: &models.Profile{
		Name:             "Thandi M",
		Email:            "t@example.com",
		Phone:            "+27111234567",
		DateOfBirth:      "1990-05-01T00:00:00Z",
		EmploymentStatus: "employed",
	}}
	svc := NewKYCService(&fakeKYCAPI{}, user)

	sub, err := svc.Prefill(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Thandi M", sub.Personal.FullName)
	require.Equal(t, "1990-05-01", sub.Personal.DateOfBirth)
	require.Equal(t, "South Africa", sub.Address.Country)
}

func TestKYCPrefill_UnparseableDateKeptVerbatim(t *testing.T) {
	user := &fakeUserAPI{ProfileResp: &models.Profile{Name: "T", DateOfBirth: "01 May 1990"}}
	svc := NewKYCService(&fakeKYCAPI{}, user)

	sub, err := svc.Prefill(context.Background())
	require.NoError(t, err)
	require.Equal(t, "01 May 1990", sub.Personal.DateOfBirth)
}

func TestKYCSubmit_ValidatesRequiredFields(t *testing.T) {
	kyc := &fakeKYCAPI{}
	svc := NewKYCService(kyc, &fakeUserAPI{})
	ctx := context.Background()

	require.Error(t, svc.Submit(ctx, models.KYCSubmission{}))
	require.Error(t, svc.Submit(ctx, models.KYCSubmission{
		Personal: models.KYCPersonal{FullName: "T"},
	}))
	require.Zero(t, kyc.Calls)

	sub := models.KYCSubmission{
		Personal: models.KYCPersonal{FullName: "T", IDNumber: "9005010000000"},
		Bank:     models.KYCBank{AccountNumber: "123456"},
	}
	require.NoError(t, svc.Submit(ctx, sub))
	require.Equal(t, 1, kyc.Calls)
	require.Equal(t, "9005010000000", kyc.LastSubmit.Personal.IDNumber)
}

func TestDateOnly(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1990-05-01T00:00:00Z", "1990-05-01"},
		{"1990-05-01 12:30:00", "1990-05-01"},
		{"1990-05-01", "1990-05-01"},
		{"not a date", "not a date"},
		{"", ""},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, dateOnly(tc.in))
	}
}
