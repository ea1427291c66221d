package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/stakeit-app/stakeit-api/internal/auth"
	"github.com/stakeit-app/stakeit-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrMissingFields      = errors.New("name, email and password are required")
)

const tokenDuration = 24 * time.Hour

type Service interface {
	Register(ctx context.Context, dto RegisterDTO) (*AuthResponse, error)
	Login(ctx context.Context, dto LoginDTO) (*AuthResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error)
}

type service struct {
	repo UserRepository
}

func NewService(repo UserRepository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, dto RegisterDTO) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	if dto.Name == "" || dto.Email == "" || dto.Password == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := User{
		ID:           uuid.New(),
		Name:         dto.Name,
		Email:        dto.Email,
		PasswordHash: string(hash),
	}

	if err := s.repo.Create(&u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	return s.authResponse(&u)
}

func (s *service) Login(ctx context.Context, dto LoginDTO) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		log.WithField("user_id", u.ID).Warn("Failed login attempt")
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(u)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	resp := toResponse(u)
	return &resp, nil
}

func (s *service) authResponse(u *User) (*AuthResponse, error) {
	token, err := auth.GenerateJWT(u.ID.String(), "user", tokenDuration)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Token: token,
		User:  toResponse(u),
	}, nil
}

func toResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
