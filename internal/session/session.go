package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "slot-scheduler"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleBarber   Role = "barber"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleCustomer, RoleBarber, RoleAdmin:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrRevoked      = errors.New("session revoked")
)

// Session is the caller identity resolved from a bearer token. For barbers
// UserID is the barber id.
type Session struct {
	ID        string
	UserID    uint
	Role      Role
	ExpiresAt time.Time
}

type claims struct {
	UserID uint `json:"uid"`
	Role   Role `json:"role"`
	jwt.RegisteredClaims
}

// Revocations remembers logged-out token ids until they would have expired anyway.
type Revocations interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Manager struct {
	secret  []byte
	ttl     time.Duration
	revoked Revocations
	now     func() time.Time
}

func NewManager(secret string, ttl time.Duration, revoked Revocations, now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{secret: []byte(secret), ttl: ttl, revoked: revoked, now: now}
}

// Issue signs a new HS256 token for the user.
func (m *Manager) Issue(userID uint, role Role) (string, Session, error) {
	now := m.now()
	s := Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Role:      role,
		ExpiresAt: now.Add(m.ttl).Truncate(time.Second),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.ID,
			Issuer:    issuer,
			Subject:   fmt.Sprint(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", Session{}, fmt.Errorf("signing session token: %w", err)
	}
	return signed, s, nil
}

// Parse validates signature, expiry and revocation.
func (m *Manager) Parse(ctx context.Context, raw string) (Session, error) {
	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if _, err := ParseRole(string(c.Role)); err != nil || c.ID == "" {
		return Session{}, ErrInvalidToken
	}

	revoked, err := m.revoked.IsRevoked(ctx, c.ID)
	if err != nil {
		return Session{}, fmt.Errorf("checking revocation: %w", err)
	}
	if revoked {
		return Session{}, ErrRevoked
	}

	return Session{
		ID:        c.ID,
		UserID:    c.UserID,
		Role:      c.Role,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}

// Revoke invalidates the session for the rest of its lifetime.
func (m *Manager) Revoke(ctx context.Context, s Session) error {
	ttl := s.ExpiresAt.Sub(m.now())
	if ttl <= 0 {
		return nil
	}
	return m.revoked.Revoke(ctx, s.ID, ttl)
}
