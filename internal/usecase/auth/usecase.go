package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"esep-backend/internal/domain/admin"
	"esep-backend/internal/domain/errs"
	"esep-backend/internal/infrastructure/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const module = "usecase.auth"

// Revocations remembers logged-out token ids.
type Revocations interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// PermissionResolver computes the capabilities of a loaded admin.
type PermissionResolver interface {
	PermissionsForUser(ctx context.Context, user *admin.AdminUser) (admin.CapabilitySet, error)
}

type Claims struct {
	Username     string `json:"username"`
	IsSuperAdmin bool   `json:"super"`
	jwt.RegisteredClaims
}

type LoginResult struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	User      *admin.AdminUser `json:"user"`
}

type CreateUserInput struct {
	Username     string `json:"username"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	IsSuperAdmin bool   `json:"is_super_admin"`
}

type Usecase struct {
	users   admin.UserRepository
	gate    PermissionResolver
	revoked Revocations
	secret  []byte
	ttl     time.Duration
	log     logrus.FieldLogger
	now     func() time.Time
}

type Option func(*Usecase)

func WithClock(now func() time.Time) Option { return func(u *Usecase) { u.now = now } }

func WithLogger(l logrus.FieldLogger) Option { return func(u *Usecase) { u.log = l } }

func NewUsecase(users admin.UserRepository, gate PermissionResolver, revoked Revocations, secret string, ttl time.Duration, opts ...Option) *Usecase {
	u := &Usecase{
		users:   users,
		gate:    gate,
		revoked: revoked,
		secret:  []byte(secret),
		ttl:     ttl,
		log:     logrus.StandardLogger(),
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Login checks the credential of an active admin and issues a session token.
func (u *Usecase) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := u.users.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, admin.ErrUserNotFound) {
		return nil, admin.ErrInvalidCredentials
	}
	if err != nil {
		u.logStore("Login", username, err)
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, admin.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, admin.ErrInactive
	}

	now := u.now()
	exp := now.Add(u.ttl)
	claims := Claims{
		Username:     user.Username,
		IsSuperAdmin: user.IsSuperAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &LoginResult{Token: token, ExpiresAt: exp, User: user}, nil
}

// Authenticate turns a bearer token into a session, reloading the admin
// so deactivation and permission changes apply immediately.
func (u *Usecase) Authenticate(ctx context.Context, token string) (*admin.Session, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return u.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(u.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, errs.New(errs.ErrUnauthorized, "invalid or expired token")
	}

	revoked, err := u.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		logger.LogError(u.log, module, "Authenticate", "revocation lookup", claims.ID, err)
		return nil, errs.Store(err)
	}
	if revoked {
		return nil, errs.New(errs.ErrUnauthorized, "session has been logged out")
	}

	user, err := u.users.GetByID(ctx, claims.Subject)
	if errors.Is(err, admin.ErrUserNotFound) {
		return nil, errs.New(errs.ErrUnauthorized, "unknown admin")
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, admin.ErrInactive
	}
	perms, err := u.gate.PermissionsForUser(ctx, user)
	if err != nil {
		return nil, err
	}
	return &admin.Session{
		AdminID:      user.ID,
		Username:     user.Username,
		IsSuperAdmin: user.IsSuperAdmin,
		TokenID:      claims.ID,
		ExpiresAt:    claims.ExpiresAt.Time,
		Permissions:  perms,
	}, nil
}

// Logout revokes the session token for the rest of its lifetime.
func (u *Usecase) Logout(ctx context.Context, s *admin.Session) error {
	if s == nil {
		return nil
	}
	ttl := s.ExpiresAt.Sub(u.now())
	if err := u.revoked.Revoke(ctx, s.TokenID, ttl); err != nil {
		logger.LogError(u.log, module, "Logout", "revoke", s.TokenID, err)
		return errs.Store(err)
	}
	return nil
}

func (u *Usecase) CreateUser(ctx context.Context, in CreateUserInput) (*admin.AdminUser, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.FullName = strings.TrimSpace(in.FullName)
	if in.Username == "" || in.FullName == "" {
		return nil, errs.Validation("username and full_name are required")
	}
	if len(in.Password) < 8 {
		return nil, errs.Validation("password must be at least 8 characters")
	}
	if _, err := u.users.GetByUsername(ctx, in.Username); err == nil {
		return nil, admin.ErrUsernameTaken
	} else if !errors.Is(err, admin.ErrUserNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}
	user := &admin.AdminUser{
		Username:     in.Username,
		FullName:     in.FullName,
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: string(hash),
		IsActive:     true,
		IsSuperAdmin: in.IsSuperAdmin,
	}
	if err := u.users.Create(ctx, user); err != nil {
		u.logStore("CreateUser", in.Username, err)
		return nil, err
	}
	return user, nil
}

func (u *Usecase) ListUsers(ctx context.Context) ([]admin.AdminUser, error) {
	return u.users.List(ctx)
}

func (u *Usecase) GetUser(ctx context.Context, id string) (*admin.AdminUser, error) {
	return u.users.GetByID(ctx, id)
}

// SetUserActive toggles an account. Admins cannot deactivate themselves.
func (u *Usecase) SetUserActive(ctx context.Context, actor *admin.Session, id string, active bool) (*admin.AdminUser, error) {
	if actor != nil && actor.AdminID == id && !active {
		return nil, errs.Validation("you cannot deactivate your own account")
	}
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.IsActive = active
	if err := u.users.Save(ctx, user); err != nil {
		u.logStore("SetUserActive", id, err)
		return nil, err
	}
	return user, nil
}

// EnsureBootstrapAdmin creates the first super-admin when no admin exists.
func (u *Usecase) EnsureBootstrapAdmin(ctx context.Context, username, password string) (bool, error) {
	if username == "" {
		return false, nil
	}
	n, err := u.users.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if _, err := u.CreateUser(ctx, CreateUserInput{
		Username:     username,
		FullName:     username,
		Password:     password,
		IsSuperAdmin: true,
	}); err != nil {
		return false, err
	}
	u.log.WithField("username", username).Info("bootstrap super-admin created")
	return true, nil
}

func (u *Usecase) logStore(funcName string, data any, err error) {
	if errors.Is(err, errs.ErrStore) {
		logger.LogError(u.log, module, funcName, "store", data, err)
	}
}
