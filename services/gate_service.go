package services

import (
	"strconv"
	"time"

	"supplier-app/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// StateStore is the durable key-value backing for gate state. Values are
// plain strings so any store (in-memory, database table) can carry them.
type StateStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

const (
	attemptsPrefix = "gate_attempts:"
	lockoutPrefix  = "gate_lockout:"
)

// GateService implements the access gate: failed submissions accumulate per
// client until MaxAttempts, then the client is locked for Lockout. A correct
// password resets the counter and issues a session token valid for Session.
// The gate is access friction, not authentication.
type GateService struct {
	Store        StateStore
	Password     string
	PasswordHash string // bcrypt; takes precedence over Password when set
	MaxAttempts  int
	Lockout      time.Duration
	Session      time.Duration
	Secret       []byte

	Now func() time.Time
}

func NewGateService(store StateStore) *GateService {
	return &GateService{
		Store:        store,
		Password:     config.GatePassword,
		PasswordHash: config.GatePasswordHash,
		MaxAttempts:  config.GateMaxAttempts,
		Lockout:      config.GateLockout,
		Session:      config.GateSession,
		Secret:       []byte(config.JWTSecret),
		Now:          time.Now,
	}
}

type LoginResult struct {
	Success   bool
	Locked    bool
	TimeLeft  time.Duration
	Attempts  int
	Token     string
	ExpiresAt time.Time
}

// Login runs one submission through the state machine. A submission during
// the lock window is rejected without consuming an attempt; once the window
// has passed the counter is reset before the password is evaluated.
func (s *GateService) Login(clientKey, password string) LoginResult {
	now := s.Now()

	if locked, left := s.lockedOut(clientKey, now); locked {
		return LoginResult{Locked: true, TimeLeft: left, Attempts: s.attempts(clientKey)}
	}

	if s.verify(password) {
		s.clearAttempts(clientKey)
		token, expiresAt := s.issueToken(now)
		return LoginResult{Success: true, Token: token, ExpiresAt: expiresAt}
	}

	attempts := s.attempts(clientKey) + 1
	s.Store.Set(attemptsPrefix+clientKey, strconv.Itoa(attempts))
	result := LoginResult{Attempts: attempts}

	if attempts >= s.MaxAttempts {
		until := now.Add(s.Lockout)
		s.Store.Set(lockoutPrefix+clientKey, strconv.FormatInt(until.UnixMilli(), 10))
		result.Locked = true
		result.TimeLeft = s.Lockout
	}

	return result
}

// LockedOut reports whether the client is currently inside a lock window.
// An elapsed window clears the stored state as a side effect.
func (s *GateService) LockedOut(clientKey string) (bool, time.Duration) {
	return s.lockedOut(clientKey, s.Now())
}

func (s *GateService) lockedOut(clientKey string, now time.Time) (bool, time.Duration) {
	raw, ok := s.Store.Get(lockoutPrefix + clientKey)
	if !ok {
		return false, 0
	}

	untilMilli, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		s.clearAttempts(clientKey)
		return false, 0
	}

	until := time.UnixMilli(untilMilli)
	if now.Before(until) {
		return true, until.Sub(now)
	}

	s.clearAttempts(clientKey)
	return false, 0
}

func (s *GateService) attempts(clientKey string) int {
	raw, ok := s.Store.Get(attemptsPrefix + clientKey)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func (s *GateService) clearAttempts(clientKey string) {
	s.Store.Delete(attemptsPrefix + clientKey)
	s.Store.Delete(lockoutPrefix + clientKey)
}

func (s *GateService) verify(password string) bool {
	if s.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(password)) == nil
	}
	return password != "" && password == s.Password
}

func (s *GateService) issueToken(now time.Time) (string, time.Time) {
	expiresAt := now.Add(s.Session)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"gate": true,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
		"jti":  uuid.NewString(),
	})

	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", time.Time{}
	}
	return signed, expiresAt
}

// ValidateSession reports whether a session token is still valid. Expiry is
// evaluated against the service clock, so an authenticated state older than
// the session duration reads as unauthenticated without an explicit logout.
func (s *GateService) ValidateSession(tokenString string) bool {
	if tokenString == "" {
		return false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.Secret, nil
	}, jwt.WithTimeFunc(s.Now))

	return err == nil && token.Valid
}
