package jwt

import (
	"errors"
	"strconv"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired reports a token that is correctly signed but past its
	// expiry window. The refresh protocol branches on it.
	ErrExpired = errors.New("token expired")
	// ErrInvalid covers every other decode or verification failure.
	ErrInvalid = errors.New("invalid token")
)

// AccessData is the profile block embedded in access-token payloads.
type AccessData struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type AccessClaims struct {
	Data AccessData `json:"data"`
	jwtlib.RegisteredClaims
}

type RefreshClaims struct {
	jwtlib.RegisteredClaims
}

// SignAccess mints the short-lived access token under the server-wide secret.
func SignAccess(userID int64, username, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Data: AccessData{ID: userID, Username: username},
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// SignRefresh mints a refresh token under the caller-supplied per-user
// secret. The payload carries only the subject.
func SignRefresh(userID int64, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := RefreshClaims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func VerifyAccess(tokenStr, secret string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := verify(tokenStr, secret, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func VerifyRefresh(tokenStr, secret string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := verify(tokenStr, secret, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func verify(tokenStr, secret string, claims jwtlib.Claims) error {
	token, err := jwtlib.ParseWithClaims(tokenStr, claims, func(t *jwtlib.Token) (any, error) {
		return []byte(secret), nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return ErrExpired
		}
		return ErrInvalid
	}
	if !token.Valid {
		return ErrInvalid
	}
	return nil
}

// DecodeSubject extracts the subject claim without verifying the signature.
// The refresh protocol uses it to pick which stored secret to verify
// against; nothing read here is trusted until verification succeeds.
func DecodeSubject(tokenStr string) (int64, error) {
	claims := &jwtlib.RegisteredClaims{}
	if _, _, err := jwtlib.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		return 0, ErrInvalid
	}
	return ParseSubject(claims.Subject)
}

// ParseSubject converts a subject claim into a user id. Empty or
// non-positive subjects are invalid.
func ParseSubject(sub string) (int64, error) {
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalid
	}
	return id, nil
}
