package users

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo   Repository
	tokens *TokenIssuer
	now    func() time.Time
}

func NewService(repo Repository, tokens *TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		now:    time.Now,
	}
}

// Login valida credenciales y emite un access token. Todas las causas de
// rechazo (email desconocido, password incorrecta, cuenta inactiva)
// devuelven el mismo ErrInvalidCredentials para no filtrar cuál falló.
// El last_login se actualiza antes de emitir; si ese update falla, el
// login falla.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if !u.IsActive {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	if err := s.repo.UpdateLastLogin(ctx, u.ID, s.now().UTC()); err != nil {
		return "", err
	}

	return s.tokens.Issue(u)
}

// Resolve verifica el token y carga el usuario referido. Token inválido,
// usuario borrado o cuenta desactivada colapsan en ErrInvalidToken.
func (s *Service) Resolve(ctx context.Context, token string) (User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return User{}, ErrInvalidToken
	}

	u, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return User{}, ErrInvalidToken
	}
	if !u.IsActive {
		return User{}, ErrInvalidToken
	}
	return u, nil
}

// HashPassword se usa en el bootstrap de cuentas (cmd/createadmin).
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password required")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
