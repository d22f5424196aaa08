package service

import (
	"context"
	"testing"
	"time"

	"speakyz-backend/internal/common/access"
	apperrors "speakyz-backend/internal/common/errors"
	"speakyz-backend/internal/features/subscription/models"
	usermodels "speakyz-backend/internal/features/user/models"
	"speakyz-backend/internal/features/user/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var admin = access.Identity{TelegramID: 1, Username: "prosto_993"}

func newFixture(t *testing.T) (*memory.Repository, *subscriptionService, *usermodels.User) {
	t.Helper()

	repo := memory.NewRepository()
	user, err := repo.Upsert(context.Background(), &usermodels.User{
		TelegramID: 42,
		Username:   "anna_k",
		FirstName:  "Anna",
	})
	require.NoError(t, err)

	svc := NewSubscriptionService(repo, access.NewGate("prosto_993")).(*subscriptionService)
	return repo, svc, user
}

func TestGrantSetsTierAndExpiry(t *testing.T) {
	repo, svc, user := newFixture(t)

	granted := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return granted }

	updated, err := svc.Grant(context.Background(), admin, user, models.TierProPlus, 30)
	require.NoError(t, err)

	require.NotNil(t, updated.SubscriptionType)
	assert.Equal(t, "pro_plus", *updated.SubscriptionType)
	require.NotNil(t, updated.SubscriptionEnd)
	assert.Equal(t, granted.AddDate(0, 0, 30), *updated.SubscriptionEnd)

	stored, err := repo.GetByTelegramID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "pro_plus", *stored.SubscriptionType)
}

func TestGrantRejectsUnknownTier(t *testing.T) {
	repo, svc, user := newFixture(t)

	_, err := svc.Grant(context.Background(), admin, user, models.Tier("gold"), 30)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.True(t, appErr.IsValidation())

	// Состояние пользователя не изменилось.
	stored, err := repo.GetByTelegramID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, stored.SubscriptionType)
}

func TestGrantAcceptsNonPositiveDuration(t *testing.T) {
	_, svc, user := newFixture(t)

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	updated, err := svc.Grant(context.Background(), admin, user, models.TierSmart, -1)
	require.NoError(t, err)

	// Уже истекшая подписка принимается без отказа.
	require.NotNil(t, updated.SubscriptionEnd)
	assert.True(t, updated.SubscriptionEnd.Before(now))
	assert.True(t, updated.Subscribed())
	assert.False(t, svc.IsCurrentlyEntitled(updated, now))
}

func TestGrantRevokeRoundTrip(t *testing.T) {
	repo, svc, user := newFixture(t)
	ctx := context.Background()

	granted, err := svc.Grant(ctx, admin, user, models.TierSmart, 30)
	require.NoError(t, err)
	require.True(t, granted.Subscribed())

	revoked, err := svc.Revoke(ctx, admin, granted)
	require.NoError(t, err)

	assert.Nil(t, revoked.SubscriptionType)
	assert.Nil(t, revoked.SubscriptionEnd)
	assert.Equal(t, 0, revoked.SpeakingClubsCount)

	stored, err := repo.GetByTelegramID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, stored.SubscriptionType)
	assert.Nil(t, stored.SubscriptionEnd)
	assert.Equal(t, 0, stored.SpeakingClubsCount)
}

func TestRevokeIsIdempotent(t *testing.T) {
	repo, svc, user := newFixture(t)
	ctx := context.Background()

	first, err := svc.Revoke(ctx, admin, user)
	require.NoError(t, err)

	second, err := svc.Revoke(ctx, admin, first)
	require.NoError(t, err)

	assert.Nil(t, second.SubscriptionType)
	assert.Nil(t, second.SubscriptionEnd)

	stored, err := repo.GetByTelegramID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, stored.SubscriptionType)
}

func TestGrantRequiresAdmin(t *testing.T) {
	repo, svc, user := newFixture(t)

	stranger := access.Identity{TelegramID: 7, Username: "anna_k"}
	_, err := svc.Grant(context.Background(), stranger, user, models.TierSmart, 30)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.True(t, appErr.IsNotAuthorized())

	// Отказ без побочных эффектов.
	stored, err := repo.GetByTelegramID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, stored.SubscriptionType)
}

func TestDescribe(t *testing.T) {
	_, svc, user := newFixture(t)

	summary := svc.Describe(user)
	assert.False(t, summary.Subscribed)
	assert.Empty(t, summary.TierLabel)

	granted, err := svc.Grant(context.Background(), admin, user, models.TierProPlus, 30)
	require.NoError(t, err)

	summary = svc.Describe(granted)
	assert.True(t, summary.Subscribed)
	assert.Equal(t, "Премиум (Pro+)", summary.TierLabel)
	require.NotNil(t, summary.Expiry)
}

func TestIsCurrentlyEntitled(t *testing.T) {
	_, svc, _ := newFixture(t)

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	smart := "smart"
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)

	tests := []struct {
		name string
		user usermodels.User
		want bool
	}{
		{"no subscription", usermodels.User{}, false},
		{"no expiry set", usermodels.User{SubscriptionType: &smart}, true},
		{"future expiry", usermodels.User{SubscriptionType: &smart, SubscriptionEnd: &future}, true},
		{"past expiry", usermodels.User{SubscriptionType: &smart, SubscriptionEnd: &past}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.IsCurrentlyEntitled(&tt.user, now))
		})
	}
}

func TestPricingTable(t *testing.T) {
	assert.Equal(t, 0, models.PricesUZS[models.TierStart])
	assert.Equal(t, 870000, models.PricesUZS[models.TierSmart])
	assert.Equal(t, 1650000, models.PricesUZS[models.TierProPlus])
	assert.Equal(t, 190000, models.PricesUZS[models.TierSpeakingClub])
}
