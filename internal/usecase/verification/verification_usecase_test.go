package verification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velvetdk/marketplace-backend/internal/domain"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	user *domain.User
	err  error
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error { return nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return f.user, f.err
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.user, f.err
}
func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID) error { return nil }

type fakeProfileRepo struct {
	profile      *domain.Profile
	err          error
	submittedID  uuid.UUID
	submitCalled bool
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *domain.Profile) error { return nil }
func (f *fakeProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return f.profile, f.err
}
func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return f.profile, f.err
}
func (f *fakeProfileRepo) Update(ctx context.Context, p *domain.Profile) error { return nil }
func (f *fakeProfileRepo) GetCounts(ctx context.Context, id uuid.UUID) (*domain.ProfileCounts, error) {
	return &domain.ProfileCounts{}, nil
}
func (f *fakeProfileRepo) SubmitVerification(ctx context.Context, id uuid.UUID) error {
	f.submitCalled = true
	f.submittedID = id
	return nil
}
func (f *fakeProfileRepo) SoftClose(ctx context.Context, id uuid.UUID) error { return nil }

type fakePrefRepo struct {
	prefs     *domain.VerificationPrefs
	getErr    error
	setCalled bool
	setUserID uuid.UUID
}

func (f *fakePrefRepo) GetVerificationPrefs(ctx context.Context, userID uuid.UUID) (*domain.VerificationPrefs, error) {
	return f.prefs, f.getErr
}

func (f *fakePrefRepo) SetVerificationSkipped(ctx context.Context, userID uuid.UUID, dismissedAt time.Time) error {
	f.setCalled = true
	f.setUserID = userID
	return nil
}

func TestAccessDegradesPrefsOnReadFailure(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Role: domain.RoleLady}
	profile := ladyProfile(domain.VerificationNotSubmitted)

	uc := NewVerificationUseCase(
		&fakeUserRepo{user: user},
		&fakeProfileRepo{profile: profile},
		&fakePrefRepo{getErr: errors.New("redis down")},
		zap.NewNop(),
	)

	opts := DefaultOptions()
	opts.AllowSkipped = true

	decision, err := uc.Access(context.Background(), user.ID, opts)
	require.NoError(t, err)
	// With the preference unreadable the skip path must not open.
	assert.Equal(t, DecisionPromptNotSubmitted, decision.Kind)
}

func TestAccessUsesStoredSkipPreference(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Role: domain.RoleLady}
	profile := ladyProfile(domain.VerificationNotSubmitted)
	prefs := &domain.VerificationPrefs{Skipped: true}

	uc := NewVerificationUseCase(
		&fakeUserRepo{user: user},
		&fakeProfileRepo{profile: profile},
		&fakePrefRepo{prefs: prefs},
		zap.NewNop(),
	)

	opts := DefaultOptions()
	opts.AllowSkipped = true

	decision, err := uc.Access(context.Background(), user.ID, opts)
	require.NoError(t, err)
	assert.Equal(t, DecisionAllow, decision.Kind)
}

func TestAccessUnknownUserDefers(t *testing.T) {
	uc := NewVerificationUseCase(
		&fakeUserRepo{err: domain.ErrUserNotFound},
		&fakeProfileRepo{},
		&fakePrefRepo{prefs: &domain.VerificationPrefs{}},
		zap.NewNop(),
	)

	decision, err := uc.Access(context.Background(), uuid.New(), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, DecisionDefer, decision.Kind)
}

func TestSubmitTargetsCallerProfile(t *testing.T) {
	profile := ladyProfile(domain.VerificationNotSubmitted)
	profile.ID = uuid.New()
	profileRepo := &fakeProfileRepo{profile: profile}

	uc := NewVerificationUseCase(
		&fakeUserRepo{},
		profileRepo,
		&fakePrefRepo{prefs: &domain.VerificationPrefs{}},
		zap.NewNop(),
	)

	require.NoError(t, uc.Submit(context.Background(), uuid.New()))
	assert.True(t, profileRepo.submitCalled)
	assert.Equal(t, profile.ID, profileRepo.submittedID)
}

func TestSkipRecordsPreference(t *testing.T) {
	prefRepo := &fakePrefRepo{}
	uc := NewVerificationUseCase(&fakeUserRepo{}, &fakeProfileRepo{}, prefRepo, zap.NewNop())

	userID := uuid.New()
	require.NoError(t, uc.Skip(context.Background(), userID))
	assert.True(t, prefRepo.setCalled)
	assert.Equal(t, userID, prefRepo.setUserID)
}
