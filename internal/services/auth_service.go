package services

import (
	"database/sql"
	"errors"

	"inkwell/internal/auth"
	"inkwell/internal/domain"
	"inkwell/internal/repos"
)

var (
	ErrEmailTaken   = errors.New("email is already in use")
	ErrUserNotFound = errors.New("user not found")
	ErrBadCreds     = errors.New("invalid credentials")
)

type AuthService struct {
	Users  *repos.UserRepo
	Hasher auth.Hasher
	Tokens *auth.Tokens
}

// Register creates a user with the default role. The email check and the
// insert are not atomic; the unique index on email is the backstop against
// a concurrent registration winning the race.
func (s *AuthService) Register(email, name, password string) (*domain.User, error) {
	_, err := s.Users.ByEmail(email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	return s.Users.Insert(email, name, hash, domain.RoleUser)
}

// Login verifies credentials and issues a signed token carrying the user's
// identity and role as of now; the token is not re-checked against the
// store until it expires.
func (s *AuthService) Login(email, password string) (string, *domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil, ErrUserNotFound
	}
	if err != nil {
		return "", nil, err
	}
	if !s.Hasher.Verify(password, u.Hash) {
		return "", nil, ErrBadCreds
	}

	tok, err := s.Tokens.Issue(auth.Principal{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role})
	if err != nil {
		return "", nil, err
	}
	return tok, u, nil
}
