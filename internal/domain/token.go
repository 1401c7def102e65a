package domain

import "time"

// TokenTypeRefresh is the only token kind stored today.
const TokenTypeRefresh = "refresh_token"

// Token holds the rotating per-user refresh-signing secret.
//
// At most one non-revoked row per user is consulted as "current". A row is
// revoked, never deleted, when a refresh token fails verification against
// it; the next issuance then creates a fresh row with a new secret.
type Token struct {
	ID int64 `json:"id" gorm:"primaryKey"`

	UserID int64 `json:"user_id" gorm:"index;not null"`
	User   User  `json:"-" gorm:"foreignKey:UserID"`

	Secret  string `json:"-" gorm:"size:128;not null"`
	Type    string `json:"type" gorm:"size:32;index;not null"`
	Revoked bool   `json:"revoked" gorm:"index;not null;default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Token) TableName() string { return "tokens" }
