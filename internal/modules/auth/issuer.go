package auth

import (
	"context"
	"time"

	"githubsearch/internal/pkg/jwt"
	"githubsearch/internal/pkg/random"
)

const secretLength = 32

// Issuer mints access+refresh token pairs.
//
// The access token is signed with the server-wide secret; the refresh token
// with the user's stored secret row. Revoking that single row therefore
// invalidates every refresh token issued under it, no blacklist needed, and
// a forged refresh token cannot verify without database access to the row.
type Issuer struct {
	users      UserDirectory
	tokens     TokenStore
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewIssuer(users UserDirectory, tokens TokenStore, secret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		users:      users,
		tokens:     tokens,
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Issue returns a fresh token pair for the user. An existing active secret
// row is reused verbatim; plain logins never rotate it. Only revocation
// retires a secret, after which the next call creates a new row.
func (i *Issuer) Issue(ctx context.Context, userID int64) (*TokenPair, error) {
	user, err := i.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidate, err := random.Generate(secretLength)
	if err != nil {
		return nil, err
	}
	row, err := i.tokens.FindOrCreate(ctx, user.ID, candidate)
	if err != nil {
		return nil, err
	}

	refreshToken, err := jwt.SignRefresh(user.ID, row.Secret, i.refreshTTL)
	if err != nil {
		return nil, err
	}
	accessToken, err := jwt.SignAccess(user.ID, user.FirstName, i.secret, i.accessTTL)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        int64(i.accessTTL.Seconds()),
		RefreshExpiresIn: int64(i.refreshTTL.Seconds()),
	}, nil
}
