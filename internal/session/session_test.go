package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/bizzauto/gateway/internal/entity"
	"github.com/bizzauto/gateway/internal/session"
)

func signedToken(t *testing.T, sub uuid.UUID, expiresAt time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sub.String(),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

type fakeUsers struct {
	user  entity.User
	calls int
}

func (f *fakeUsers) User(_ context.Context, id uuid.UUID) (entity.User, error) {
	f.calls++
	f.user.ID = id

	return f.user, nil
}

func TestStore_Token(t *testing.T) {
	t.Parallel()

	sub := uuid.Must(uuid.NewV4())

	valid := signedToken(t, sub, time.Now().Add(time.Hour))
	stale := signedToken(t, sub, time.Now().Add(-time.Hour))

	ctx := context.Background()

	got, err := session.New(valid).Token(ctx)
	require.NoError(t, err)
	require.Equal(t, valid, got)

	got, err = session.New(stale).Token(ctx)
	require.NoError(t, err)
	require.Empty(t, got)

	// Opaque tokens have no readable expiry and pass through.
	got, err = session.New("opaque-api-key").Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "opaque-api-key", got)

	got, err = session.New("").Token(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestStore_TokenPrefersContextCredential(t *testing.T) {
	t.Parallel()

	sub := uuid.Must(uuid.NewV4())

	stored := signedToken(t, sub, time.Now().Add(time.Hour))
	relayed := signedToken(t, sub, time.Now().Add(time.Minute))

	store := session.New(stored)

	got, err := store.Token(entity.CtxWithToken(context.Background(), relayed))
	require.NoError(t, err)
	require.Equal(t, relayed, got)

	// An expired context token falls back to the stored credential.
	expiredCtx := entity.CtxWithToken(context.Background(), signedToken(t, sub, time.Now().Add(-time.Minute)))

	got, err = store.Token(expiredCtx)
	require.NoError(t, err)
	require.Equal(t, stored, got)
}

func TestStore_ProfileCachedUntilLogout(t *testing.T) {
	t.Parallel()

	sub := uuid.Must(uuid.NewV4())
	users := &fakeUsers{user: entity.User{FullName: "Asha Patel", Role: entity.RoleOwner}}

	store := session.New(signedToken(t, sub, time.Now().Add(time.Hour)))
	store.SetUserSource(users)
	ctx := context.Background()

	first, err := store.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, "Asha Patel", first.FullName)
	require.Equal(t, sub, first.ID)

	_, err = store.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, users.calls)

	store.Logout()

	_, err = store.Profile(ctx)
	require.ErrorIs(t, err, entity.ErrUnauthenticated)
}
