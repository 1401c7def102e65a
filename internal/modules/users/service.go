package users

import (
	"context"
	"errors"
	"fmt"

	"githubsearch/internal/domain"
	"githubsearch/internal/pkg/password"

	"gorm.io/gorm"
)

var (
	ErrUserAlreadyExists     = errors.New("user already exists")
	ErrUserCouldNotBeCreated = errors.New("user could not be created")
	ErrUserNotFound          = errors.New("user not found")
)

// Repository is the slice of UserRepository this service needs.
type Repository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type CreateUserInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// Service owns the user-row lifecycle. Auth composes it; password hashes
// leave this package only through FindByEmail, which login needs for
// credential verification.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	exists, err := s.repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Password:  hash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUserCouldNotBeCreated, err)
	}

	user.Password = ""
	return user, nil
}

// FindByEmail returns the user with the password hash populated.
func (s *Service) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
