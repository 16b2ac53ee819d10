package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/api"
	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/models"
)

// KYCService prepares and submits the Know-Your-Customer form.
type KYCService interface {
	Prefill(ctx context.Context) (*models.KYCSubmission, error)
	Submit(ctx context.Context, sub models.KYCSubmission) error
}

type kycService struct {
	client  api.KYCAPI
	profile api.UserAPI
}

// NewKYCService constructs a KYCService. The user API is used to prefill
// the personal section from the stored profile.
func NewKYCService(client api.KYCAPI, profile api.UserAPI) KYCService {
	return &kycService{client: client, profile: profile}
}

// Prefill returns a submission with the personal section populated from
// the account profile. The profile's date of birth, when parseable, is
// rendered as YYYY-MM-DD; otherwise it is carried over verbatim.
func (k *kycService) Prefill(ctx context.Context) (*models.KYCSubmission, error) {
	profile, err := k.profile.Profile(ctx)
	if err != nil {
		return nil, fmt.Errorf("prefilling kyc form: %w", err)
	}

	sub := &models.KYCSubmission{
		Personal: models.KYCPersonal{
			FullName:         profile.Name,
			DateOfBirth:      dateOnly(profile.DateOfBirth),
			Phone:            profile.Phone,
			Email:            profile.Email,
			EmploymentStatus: profile.EmploymentStatus,
		},
		Address: models.KYCAddress{Country: "South Africa"},
	}
	return sub, nil
}

// Submit validates the required fields and posts the form.
func (k *kycService) Submit(ctx context.Context, sub models.KYCSubmission) error {
	switch {
	case sub.Personal.FullName == "":
		return fmt.Errorf("full name is required")
	case sub.Personal.IDNumber == "":
		return fmt.Errorf("id number is required")
	case sub.Bank.AccountNumber == "":
		return fmt.Errorf("bank account number is required")
	}
	if err := k.client.SubmitKYC(ctx, sub); err != nil {
		return fmt.Errorf("submitting kyc: %w", err)
	}
	return nil
}

// dateOnly reduces a timestamp in any of the formats the backend has used
// to a YYYY-MM-DD string.
func dateOnly(s string) string {
	if s == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(time.DateOnly)
		}
	}
	return s
}
