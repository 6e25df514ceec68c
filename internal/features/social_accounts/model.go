package social_accounts

import (
	"time"

	"github.com/google/uuid"
)

type SocialPlatform string

const (
	SocialPlatformTwitter   SocialPlatform = "TWITTER"
	SocialPlatformFacebook  SocialPlatform = "FACEBOOK"
	SocialPlatformInstagram SocialPlatform = "INSTAGRAM"
	SocialPlatformLinkedin  SocialPlatform = "LINKEDIN"
	SocialPlatformThreads   SocialPlatform = "THREADS"
)

func (p SocialPlatform) IsValid() bool {
	switch p {
	case SocialPlatformTwitter, SocialPlatformFacebook, SocialPlatformInstagram,
		SocialPlatformLinkedin, SocialPlatformThreads:
		return true
	default:
		return false
	}
}

// SocialAccount is an externally-authenticated posting account owned by
// a single user. The posting proxy consumes its credentials; this service
// only tracks ownership and token expiry.
type SocialAccount struct {
	ID             uuid.UUID      `json:"id"             gorm:"column:id"`
	UserID         uuid.UUID      `json:"userId"         gorm:"column:user_id"`
	Platform       SocialPlatform `json:"platform"       gorm:"column:platform"`
	Username       string         `json:"username"       gorm:"column:username"`
	TokenExpiresAt time.Time      `json:"tokenExpiresAt" gorm:"column:token_expires_at"`
	IsActive       bool           `json:"isActive"       gorm:"column:is_active"`
	CreatedAt      time.Time      `json:"createdAt"      gorm:"column:created_at"`
}

func (SocialAccount) TableName() string {
	return "social_accounts"
}

func (a *SocialAccount) IsExpired(now time.Time) bool {
	return !a.TokenExpiresAt.IsZero() && a.TokenExpiresAt.Before(now)
}
