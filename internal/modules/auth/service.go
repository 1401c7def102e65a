package auth

import (
	"context"
	"errors"

	"githubsearch/internal/domain"
	"githubsearch/internal/modules/users"
	"githubsearch/internal/pkg/jwt"
	"githubsearch/internal/pkg/password"

	"gorm.io/gorm"
)

// Service composes signup, login and refresh on top of the users service,
// the token store and the issuer.
type Service struct {
	users  UserDirectory
	tokens TokenStore
	issuer *Issuer
}

func NewService(users UserDirectory, tokens TokenStore, issuer *Issuer) *Service {
	return &Service{users: users, tokens: tokens, issuer: issuer}
}

func (s *Service) SignUp(ctx context.Context, req SignUpRequest) (*domain.User, error) {
	return s.users.Create(ctx, users.CreateUserInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrEmailNotRegistered
		}
		return nil, err
	}

	if !password.Matches(req.Password, user.Password) {
		return nil, ErrPasswordMismatch
	}

	pair, err := s.issuer.Issue(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &LoginResult{User: user, Token: pair}, nil
}

// Refresh validates a presented refresh token against the stored secret row
// and reissues a pair on success.
//
// Verification failure is fail-closed: the row is revoked before the
// classified error is returned, so one bad presentation retires the whole
// refresh lineage and forces a fresh login.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claimedUserID, err := jwt.DecodeSubject(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	row, err := s.tokens.FindActive(ctx, claimedUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenNotFound
		}
		return nil, err
	}

	claims, err := jwt.VerifyRefresh(refreshToken, row.Secret)
	if err != nil {
		// The revocation has to land before the failure surfaces:
		// subsequent refresh attempts depend on observing it.
		if revokeErr := s.tokens.Revoke(ctx, row); revokeErr != nil {
			return nil, revokeErr
		}
		if errors.Is(err, jwt.ErrExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	verifiedUserID, err := jwt.ParseSubject(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, verifiedUserID)
	if err != nil {
		return nil, err
	}

	pair, err := s.issuer.Issue(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &LoginResult{User: user, Token: pair}, nil
}
