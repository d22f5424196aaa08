package service

import (
	"context"
	"testing"

	apperrors "speakyz-backend/internal/common/errors"
	"speakyz-backend/internal/features/user/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterOrTouchCreatesUserWithDefaults(t *testing.T) {
	svc := NewUserService(memory.NewRepository())

	user, err := svc.RegisterOrTouch(context.Background(), 42, "anna_k", "Anna", "K")
	require.NoError(t, err)

	assert.Equal(t, int64(42), user.TelegramID)
	assert.Equal(t, "anna_k", user.Username)
	assert.Nil(t, user.SubscriptionType)
	assert.Nil(t, user.SubscriptionEnd)
	assert.Equal(t, 0, user.SpeakingClubsCount)
	assert.True(t, user.IsActive)
}

func TestRegisterOrTouchIsIdempotent(t *testing.T) {
	repo := memory.NewRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	first, err := svc.RegisterOrTouch(ctx, 42, "anna_k", "Anna", "K")
	require.NoError(t, err)

	second, err := svc.RegisterOrTouch(ctx, 42, "anna_k", "Anya", "K")
	require.NoError(t, err)

	// Одна строка, last-write-wins на имени.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Anya", second.FirstName)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFindByUsernameStripsAtPrefix(t *testing.T) {
	svc := NewUserService(memory.NewRepository())
	ctx := context.Background()

	_, err := svc.RegisterOrTouch(ctx, 42, "anna_k", "Anna", "K")
	require.NoError(t, err)

	user, err := svc.FindByUsername(ctx, "@anna_k")
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.TelegramID)
}

func TestFindByUsernameNotFound(t *testing.T) {
	svc := NewUserService(memory.NewRepository())

	_, err := svc.FindByUsername(context.Background(), "nobody")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.True(t, appErr.IsNotFound())
}

func TestFindByTelegramIDNotFound(t *testing.T) {
	svc := NewUserService(memory.NewRepository())

	_, err := svc.FindByTelegramID(context.Background(), 999)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.True(t, appErr.IsNotFound())
}

func TestStoreUnavailableWhenRepoMissing(t *testing.T) {
	svc := NewUserService(nil)
	ctx := context.Background()

	_, err := svc.RegisterOrTouch(ctx, 1, "u", "f", "l")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.True(t, appErr.IsStoreUnavailable())

	_, err = svc.Count(ctx)
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.True(t, appErr.IsStoreUnavailable())
}
