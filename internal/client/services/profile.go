package services

import (
	"context"
	"fmt"

	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/api"
	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/models"
)

// ProfileService defines account-detail operations.
type ProfileService interface {
	Get(ctx context.Context) (*models.Profile, error)
	Update(ctx context.Context, p models.Profile) error
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
}

type profileService struct {
	client api.UserAPI
}

// NewProfileService constructs a ProfileService bound to the given API
// client.
func NewProfileService(client api.UserAPI) ProfileService {
	return &profileService{client: client}
}

func (p *profileService) Get(ctx context.Context) (*models.Profile, error) {
	profile, err := p.client.Profile(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	return profile, nil
}

// Update pushes the editable profile fields. Email and account number are
// read-only on the backend and are not part of the request.
func (p *profileService) Update(ctx context.Context, profile models.Profile) error {
	err := p.client.UpdateProfile(ctx, api.UpdateProfileRequest{
		Name:             profile.Name,
		Phone:            profile.Phone,
		DateOfBirth:      profile.DateOfBirth,
		Gender:           profile.Gender,
		EmploymentStatus: profile.EmploymentStatus,
	})
	if err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}
	return nil
}

func (p *profileService) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("new password must not be empty")
	}
	if err := p.client.ChangePassword(ctx, currentPassword, newPassword); err != nil {
		return fmt.Errorf("changing password: %w", err)
	}
	return nil
}
