package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	localCache "git.solsynth.dev/hypernet/hobbyhub/pkg/internal/cache"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/metrics"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/models"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	AuthEventSignedIn  = "SIGNED_IN"
	AuthEventSignedOut = "SIGNED_OUT"
)

type AuthStateChange struct {
	Event   string          `json:"event"`
	Account *models.Account `json:"account"`
}

type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AccountManager owns accounts, their sessions and the auth-state subscriptions.
type AccountManager struct {
	db     *gorm.DB
	secret []byte
	ttl    time.Duration
	events EventPublisher

	mu          sync.RWMutex
	nextListen  int
	subscribers map[int]func(AuthStateChange)
}

func NewAccountManager(db *gorm.DB, secret string, ttl time.Duration, events EventPublisher) *AccountManager {
	return &AccountManager{
		db:          db,
		secret:      []byte(secret),
		ttl:         ttl,
		events:      events,
		subscribers: make(map[int]func(AuthStateChange)),
	}
}

// Subscribe registers a listener for sign-in and sign-out, the returned func removes it.
func (v *AccountManager) Subscribe(fn func(AuthStateChange)) func() {
	v.mu.Lock()
	defer v.mu.Unlock()
	id := v.nextListen
	v.nextListen++
	v.subscribers[id] = fn
	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.subscribers, id)
	}
}

func (v *AccountManager) notify(change AuthStateChange) {
	v.mu.RLock()
	listeners := make([]func(AuthStateChange), 0, len(v.subscribers))
	for _, fn := range v.subscribers {
		listeners = append(listeners, fn)
	}
	v.mu.RUnlock()

	for _, fn := range listeners {
		fn(change)
	}

	target := ""
	if change.Account != nil {
		target = change.Account.ID
	}
	AddEvent(v.events, "auth."+strings.ToLower(change.Event), target, target)
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (v *AccountManager) Register(ctx context.Context, email, password string) (models.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	if err := v.db.WithContext(ctx).Model(&models.Account{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return models.Account{}, fmt.Errorf("unable to count existing account: %w", err)
	} else if count > 0 {
		return models.Account{}, ValidationError{Field: "email", Reason: "is already registered"}
	}

	hash, err := HashPassword(password)
	if err != nil {
		return models.Account{}, err
	}

	account := models.Account{Email: email, Password: hash}
	if err := v.db.WithContext(ctx).Create(&account).Error; err != nil {
		return account, err
	}
	log.Info().Str("account", account.ID).Msg("A new account has been registered.")
	return account, nil
}

// SignIn checks the credentials and opens a session, returning its signed token.
func (v *AccountManager) SignIn(ctx context.Context, email, password string) (string, models.AuthSession, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var account models.Account
	if err := v.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", models.AuthSession{}, ErrInvalidCredentials
		}
		return "", models.AuthSession{}, err
	}
	if !CheckPassword(account.Password, password) {
		return "", models.AuthSession{}, ErrInvalidCredentials
	}

	session := models.AuthSession{
		ExpiredAt: time.Now().Add(v.ttl),
		AccountID: account.ID,
	}
	if err := v.db.WithContext(ctx).Create(&session).Error; err != nil {
		return "", session, err
	}
	session.Account = account

	token, err := v.IssueToken(session)
	if err != nil {
		return "", session, err
	}

	metrics.SignIns.Inc()
	v.notify(AuthStateChange{Event: AuthEventSignedIn, Account: &account})
	return token, session, nil
}

func (v *AccountManager) IssueToken(session models.AuthSession) (string, error) {
	claims := SessionClaims{
		Email: session.Account.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Subject:   session.AccountID,
			Issuer:    "hobbyhub",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(session.ExpiredAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

func (v *AccountManager) ParseToken(raw string) (SessionClaims, error) {
	var claims SessionClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer("hobbyhub"))
	if err != nil {
		return claims, ErrSessionInvalid
	}
	return claims, nil
}

func getSessionCacheKey(sessionId string) string {
	return fmt.Sprintf("auth-session#%s", sessionId)
}

// Authenticate resolves a session token into its account.
func (v *AccountManager) Authenticate(ctx context.Context, raw string) (models.Account, error) {
	claims, err := v.ParseToken(raw)
	if err != nil {
		return models.Account{}, err
	}

	var marshal *marshaler.Marshaler
	if localCache.S != nil {
		marshal = marshaler.New(cache.New[any](localCache.S))
		if val, err := marshal.Get(ctx, getSessionCacheKey(claims.ID), new(models.Account)); err == nil {
			return *val.(*models.Account), nil
		}
	}

	var session models.AuthSession
	if err := v.db.WithContext(ctx).
		Where("id = ? AND expired_at > ?", claims.ID, time.Now()).
		Preload("Account").
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Account{}, ErrSessionInvalid
		}
		return models.Account{}, err
	}

	if marshal != nil {
		_ = marshal.Set(
			ctx,
			getSessionCacheKey(claims.ID),
			session.Account,
			store.WithExpiration(time.Minute),
			store.WithSynchronousSet(),
		)
	}
	return session.Account, nil
}

// SignOut revokes the session behind the token.
func (v *AccountManager) SignOut(ctx context.Context, raw string) error {
	claims, err := v.ParseToken(raw)
	if err != nil {
		return err
	}

	var session models.AuthSession
	if err := v.db.WithContext(ctx).
		Where("id = ?", claims.ID).
		Preload("Account").
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionInvalid
		}
		return err
	}
	if err := v.db.WithContext(ctx).Delete(&session).Error; err != nil {
		return err
	}

	if localCache.S != nil {
		_ = marshaler.New(cache.New[any](localCache.S)).Delete(ctx, getSessionCacheKey(claims.ID))
	}

	v.notify(AuthStateChange{Event: AuthEventSignedOut, Account: &session.Account})
	return nil
}
