package auth

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nghuy/gameledger/internal/dependencies/clock"
	"github.com/nghuy/gameledger/internal/model"
	"github.com/nghuy/gameledger/internal/storage"
)

// Errors
var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// RoleFallback is the role claim used when an identity has no assigned role
const RoleFallback = "User"

// Claims is the token claim set issued on login
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Session is the result of a successful credential check
type Session struct {
	Token     string
	Identity  model.Identity
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Service verifies submitted credentials and issues signed session tokens.
//
// Secrets are compared by exact equality against the stored value. The
// identity store holds them in the clear; see the project notes before
// pointing this at anything beyond demo data.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	cfg     Config
	logger  *slog.Logger
}

// New creates a new auth service. The signing configuration is validated
// here so a misconfigured process fails at startup rather than per request.
func New(storage storage.Storage, clk clock.Clock, cfg Config, logger *slog.Logger) (*Service, error) {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = DefaultTokenTTL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service{
		storage: storage,
		clock:   clk,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

// VerifyAndIssue checks a username/secret pair and mints a session token.
// Credential failures all map to ErrInvalidCredentials so the response never
// reveals whether the username or the secret was wrong.
func (s *Service) VerifyAndIssue(ctx context.Context, username, secret string) (*Session, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(secret) == "" {
		return nil, ErrMissingCredentials
	}

	identity, err := s.storage.GetIdentityByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrIdentityNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if identity.Secret == "" || identity.Secret != secret {
		return nil, ErrInvalidCredentials
	}

	role := identity.RoleName
	if role == "" {
		role = RoleFallback
	}

	now := s.clock.Now()
	expires := now.Add(s.cfg.TokenTTL)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(int64(identity.ID), 10),
			Issuer:    s.cfg.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		Username: identity.Username,
		Role:     role,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Key))
	if err != nil {
		return nil, err
	}

	s.logger.Info("issued session token",
		slog.String("username", identity.Username),
		slog.Time("expires_at", expires),
	)

	return &Session{
		Token:     token,
		Identity:  *identity,
		IssuedAt:  now,
		ExpiresAt: expires,
	}, nil
}

// VerifyToken parses and validates a session token, returning its claims
func (s *Service) VerifyToken(token string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return []byte(s.cfg.Key), nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
