package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"

	"github.com/cityworks/facilitybooking/internal/domain"
	"github.com/cityworks/facilitybooking/internal/repository"
	"github.com/google/uuid"
)

type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) error
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	ValidateSession(ctx context.Context, token string) (*domain.Session, error)
}

type SessionStore interface {
	PutSession(ctx context.Context, session domain.Session) error
	GetSession(ctx context.Context, token string) (*domain.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

type AuthService struct {
	admins   repository.AdminRepository
	sessions SessionStore
}

type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Admin        domain.Admin
	SessionToken string
}

func NewAuthService(admins repository.AdminRepository, sessions SessionStore) *AuthService {
	return &AuthService{admins: admins, sessions: sessions}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) error {
	if input.Username == "" || input.Password == "" {
		return errors.New("username and password are required")
	}

	exists, err := s.admins.UsernameExists(ctx, input.Username)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrUsernameTaken
	}

	admin := &domain.Admin{
		Username:     input.Username,
		PasswordHash: hashPassword(input.Password),
		FullName:     input.FullName,
		Email:        input.Email,
	}
	return s.admins.Create(ctx, admin)
}

// Login returns the same ErrInvalidCredentials for an unknown username and a
// wrong password so the response never leaks which usernames exist.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	admin, err := s.admins.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	supplied := hashPassword(input.Password)
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(admin.PasswordHash)) != 1 {
		return nil, domain.ErrInvalidCredentials
	}

	session := domain.Session{
		Token:    uuid.NewString(),
		AdminID:  admin.ID,
		Username: admin.Username,
	}
	if s.sessions != nil {
		if err := s.sessions.PutSession(ctx, session); err != nil {
			return nil, err
		}
	}

	return &LoginResult{Admin: *admin, SessionToken: session.Token}, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if s.sessions == nil || token == "" {
		return nil
	}
	return s.sessions.DeleteSession(ctx, token)
}

func (s *AuthService) ValidateSession(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrInvalidSession
	}
	if s.sessions == nil {
		return nil, domain.ErrInvalidSession
	}
	return s.sessions.GetSession(ctx, token)
}

// hashPassword is the deterministic unsalted SHA-256 the existing admin rows
// were created with. Replacing it with a salted scheme would strand every
// stored credential, so any upgrade needs a rehash-on-login migration first.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return base64.StdEncoding.EncodeToString(sum[:])
}

var _ AuthUseCase = (*AuthService)(nil)
