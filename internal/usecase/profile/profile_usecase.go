package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/velvetdk/marketplace-backend/internal/domain"
	"github.com/velvetdk/marketplace-backend/internal/infrastructure/gemini"
	"github.com/velvetdk/marketplace-backend/internal/repository"
	"go.uber.org/zap"
)

type ProfileUseCase struct {
	profileRepo  repository.ProfileRepository
	geminiClient *gemini.GeminiClient
	logger       *zap.Logger
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	geminiClient *gemini.GeminiClient,
	logger *zap.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo:  profileRepo,
		geminiClient: geminiClient,
		logger:       logger,
	}
}

// CreateProfileRequest represents profile creation on first sign-in.
type CreateProfileRequest struct {
	Name        string   `json:"name" binding:"required,min=2,max=100"`
	Role        string   `json:"role" binding:"required,oneof=lady client club"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	Location    *string  `json:"location" binding:"omitempty,max=100"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Age         *int     `json:"age" binding:"omitempty,min=18,max=99"`
	ProfileType *string  `json:"profile_type" binding:"omitempty,max=50"`
	Languages   []string `json:"languages" binding:"omitempty,max=10"`
}

// UpdateProfileRequest represents a partial profile update.
type UpdateProfileRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string   `json:"description" binding:"omitempty,max=2000"`
	Location    *string   `json:"location" binding:"omitempty,max=100"`
	Price       *float64  `json:"price" binding:"omitempty,gt=0"`
	Age         *int      `json:"age" binding:"omitempty,min=18,max=99"`
	ProfileType *string   `json:"profile_type" binding:"omitempty,max=50"`
	Languages   *[]string `json:"languages" binding:"omitempty,max=10"`
}

// GetMyProfile returns the caller's profile.
func (uc *ProfileUseCase) GetMyProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return uc.profileRepo.GetByUserID(ctx, userID)
}

// CreateProfile creates the caller's profile on first authentication.
func (uc *ProfileUseCase) CreateProfile(ctx context.Context, userID uuid.UUID, req *CreateProfileRequest) (*domain.Profile, error) {
	existing, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err == nil && existing != nil {
		return nil, domain.ErrProfileAlreadyExists
	}

	profile := &domain.Profile{
		UserID:             userID,
		Role:               domain.Role(req.Role),
		MembershipTier:     domain.TierFree,
		Name:               req.Name,
		Description:        req.Description,
		Location:           req.Location,
		Price:              req.Price,
		Age:                req.Age,
		ProfileType:        req.ProfileType,
		Languages:          req.Languages,
		VerificationStatus: domain.VerificationNotSubmitted,
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile applies the provided fields. Unlike the dashboard reads this
// logs and propagates the failure so the caller can surface it.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.ClosedAt != nil {
		return nil, domain.ErrProfileClosed
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Description != nil {
		profile.Description = req.Description
	}
	if req.Location != nil {
		profile.Location = req.Location
	}
	if req.Price != nil {
		profile.Price = req.Price
	}
	if req.Age != nil {
		profile.Age = req.Age
	}
	if req.ProfileType != nil {
		profile.ProfileType = req.ProfileType
	}
	if req.Languages != nil {
		profile.Languages = *req.Languages
	}

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		uc.logger.Error("failed to update profile",
			zap.String("profile_id", profile.ID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// CloseAccount soft-closes the caller's profile. Profiles are never hard
// deleted; the failure propagates so the caller can show it.
func (uc *ProfileUseCase) CloseAccount(ctx context.Context, userID uuid.UUID) error {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if err := uc.profileRepo.SoftClose(ctx, profile.ID); err != nil {
		uc.logger.Error("failed to close account",
			zap.String("profile_id", profile.ID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to close account: %w", err)
	}
	return nil
}

// SuggestDescriptions produces listing copy drafts from the profile's fields.
func (uc *ProfileUseCase) SuggestDescriptions(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if uc.geminiClient == nil {
		return nil, fmt.Errorf("suggestion service is not available")
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	location := ""
	if profile.Location != nil {
		location = *profile.Location
	}
	profileType := ""
	if profile.ProfileType != nil {
		profileType = *profile.ProfileType
	}

	return uc.geminiClient.SuggestListingDescriptions(ctx, profile.Name, profileType, location, profile.Languages)
}
