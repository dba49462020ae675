package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/cache"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/models"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/services"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	t.Parallel()

	hash, err := services.HashPassword("correct horse")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse", hash)
	require.True(t, services.CheckPassword(hash, "correct horse"))
	require.False(t, services.CheckPassword(hash, "battery staple"))
}

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Parallel()

	manager := services.NewAccountManager(nil, "test-secret", time.Hour, nil)

	session := models.AuthSession{
		ExpiredAt: time.Now().Add(time.Hour),
		AccountID: "account-1",
		Account:   models.Account{Email: "ada@example.com"},
	}
	session.ID = "session-1"

	token, err := manager.IssueToken(session)
	require.NoError(t, err)

	claims, err := manager.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "session-1", claims.ID)
	require.Equal(t, "account-1", claims.Subject)
	require.Equal(t, "ada@example.com", claims.Email)

	other := services.NewAccountManager(nil, "another-secret", time.Hour, nil)
	_, err = other.ParseToken(token)
	require.ErrorIs(t, err, services.ErrSessionInvalid)

	_, err = manager.ParseToken("not-a-token")
	require.ErrorIs(t, err, services.ErrSessionInvalid)
}

func TestExpiredSessionToken(t *testing.T) {
	t.Parallel()

	manager := services.NewAccountManager(nil, "test-secret", time.Hour, nil)
	session := models.AuthSession{ExpiredAt: time.Now().Add(-time.Minute), AccountID: "account-1"}
	session.ID = "session-1"

	token, err := manager.IssueToken(session)
	require.NoError(t, err)

	_, err = manager.ParseToken(token)
	require.ErrorIs(t, err, services.ErrSessionInvalid)
}

type authRecorder struct {
	mu     sync.Mutex
	events []string
}

func (v *authRecorder) record(change services.AuthStateChange) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.events = append(v.events, change.Event+":"+change.Account.Email)
}

func (v *authRecorder) list() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string{}, v.events...)
}

func TestRegisterAccount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	manager := services.NewAccountManager(newTestDatabase(t), "test-secret", time.Hour, nil)

	account, err := manager.Register(ctx, "  Ada@Example.com ", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, account.ID)
	require.Equal(t, "ada@example.com", account.Email)
	require.NotEqual(t, "correct horse", account.Password)

	_, err = manager.Register(ctx, "ada@example.com", "another one")
	var validationErr services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "email", validationErr.Field)
}

func TestSignInAndOut(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	recorder := &authRecorder{}
	manager := services.NewAccountManager(newTestDatabase(t), "test-secret", time.Hour, nil)
	unsubscribe := manager.Subscribe(recorder.record)

	account, err := manager.Register(ctx, "ada@example.com", "correct horse")
	require.NoError(t, err)

	_, _, err = manager.SignIn(ctx, "ada@example.com", "wrong horse")
	require.ErrorIs(t, err, services.ErrInvalidCredentials)
	_, _, err = manager.SignIn(ctx, "nobody@example.com", "correct horse")
	require.ErrorIs(t, err, services.ErrInvalidCredentials)
	require.Empty(t, recorder.list())

	token, session, err := manager.SignIn(ctx, "ADA@example.com", "correct horse")
	require.NoError(t, err)
	require.Equal(t, account.ID, session.AccountID)
	require.True(t, session.ExpiredAt.After(time.Now()))

	resolved, err := manager.Authenticate(ctx, token)
	require.NoError(t, err)
	require.Equal(t, account.ID, resolved.ID)
	require.Equal(t, "ada@example.com", resolved.Email)

	// The second lookup is served from the session cache.
	_, err = cache.S.Get(ctx, "auth-session#"+session.ID)
	require.NoError(t, err)
	resolved, err = manager.Authenticate(ctx, token)
	require.NoError(t, err)
	require.Equal(t, account.ID, resolved.ID)

	require.NoError(t, manager.SignOut(ctx, token))

	// Sign out evicts the cached session, so the token stops working at once.
	_, err = cache.S.Get(ctx, "auth-session#"+session.ID)
	require.Error(t, err)
	_, err = manager.Authenticate(ctx, token)
	require.ErrorIs(t, err, services.ErrSessionInvalid)
	require.ErrorIs(t, manager.SignOut(ctx, token), services.ErrSessionInvalid)

	require.Equal(t, []string{
		services.AuthEventSignedIn + ":ada@example.com",
		services.AuthEventSignedOut + ":ada@example.com",
	}, recorder.list())

	unsubscribe()
	_, _, err = manager.SignIn(ctx, "ada@example.com", "correct horse")
	require.NoError(t, err)
	require.Len(t, recorder.list(), 2)
}

func TestExpiredSessionIsRejected(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDatabase(t)
	manager := services.NewAccountManager(db, "test-secret", time.Hour, nil)

	_, err := manager.Register(ctx, "bob@example.com", "correct horse")
	require.NoError(t, err)
	token, session, err := manager.SignIn(ctx, "bob@example.com", "correct horse")
	require.NoError(t, err)

	// Token is still signed as valid, but the stored session has run out.
	require.NoError(t, db.Model(&models.AuthSession{}).
		Where("id = ?", session.ID).
		Update("expired_at", time.Now().Add(-time.Minute)).Error)

	_, err = manager.Authenticate(ctx, token)
	require.ErrorIs(t, err, services.ErrSessionInvalid)
}
