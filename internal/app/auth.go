package app

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/ErnestoAbreu/distributed-social-network/internal/chord"
)

var (
	// ErrUserExists is returned when registering a taken username.
	ErrUserExists = errors.New("user already exists")
	// ErrBadCredentials covers unknown users and wrong passwords alike, so
	// login failures do not leak which usernames exist.
	ErrBadCredentials = errors.New("incorrect username or password")
)

const tokenTTL = 24 * time.Hour

// AuthRepository persists account records through the router.
type AuthRepository struct {
	router *chord.Router
	lgr    *zap.Logger
}

func NewAuthRepository(router *chord.Router, lgr *zap.Logger) *AuthRepository {
	return &AuthRepository{router: router, lgr: lgr.Named("app.auth")}
}

// ExistsUser reports whether an account record exists for username.
func (r *AuthRepository) ExistsUser(username string) (bool, error) {
	return r.router.Exists(UserKey(username))
}

// LoadUser fetches an account record.
func (r *AuthRepository) LoadUser(username string) (*User, error) {
	raw, err := r.router.Load(UserKey(username))
	if err != nil {
		return nil, err
	}
	var u User
	if err := unmarshal(raw, &u); err != nil {
		r.lgr.Error("user record corrupted", zap.String("username", username), zap.Error(err))
		return nil, chord.ErrInternal
	}
	return &u, nil
}

// SaveUser stores an account record.
func (r *AuthRepository) SaveUser(u *User) error {
	raw, err := marshal(u)
	if err != nil {
		return chord.ErrInternal
	}
	return r.router.Save(UserKey(u.Username), raw)
}

// AuthService implements registration, login and token verification.
type AuthService struct {
	repo   *AuthRepository
	secret []byte
	lgr    *zap.Logger
}

func NewAuthService(repo *AuthRepository, secret string, lgr *zap.Logger) *AuthService {
	return &AuthService{repo: repo, secret: []byte(secret), lgr: lgr.Named("app.auth")}
}

// HashPassword derives the stored credential from a plaintext password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register creates a new account. The username must be free.
func (s *AuthService) Register(username, displayName, password string) error {
	if username == "" || password == "" {
		return chord.ErrInvalidArgument
	}
	exists, err := s.repo.ExistsUser(username)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserExists
	}
	u := &User{
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: HashPassword(password),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.SaveUser(u); err != nil {
		s.lgr.Error("registration failed", zap.String("username", username), zap.Error(err))
		return err
	}
	s.lgr.Info("user registered", zap.String("username", username))
	return nil
}

// Login verifies credentials and issues a signed token.
func (s *AuthService) Login(username, password string) (string, error) {
	u, err := s.repo.LoadUser(username)
	if errors.Is(err, chord.ErrNotFound) {
		return "", ErrBadCredentials
	}
	if err != nil {
		return "", err
	}
	if u.PasswordHash != HashPassword(password) {
		return "", ErrBadCredentials
	}

	claims := jwt.MapClaims{
		"user_id": u.Username,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", chord.ErrInternal
	}
	s.lgr.Info("user logged in", zap.String("username", username))
	return token, nil
}

// VerifyToken validates a bearer token and returns its username.
func (s *AuthService) VerifyToken(raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrBadCredentials
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrBadCredentials
	}
	username, _ := claims["user_id"].(string)
	if username == "" {
		return "", ErrBadCredentials
	}
	return username, nil
}
