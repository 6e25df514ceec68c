package social_accounts

import "time"

type RegisterAccountRequestDTO struct {
	Platform       SocialPlatform `json:"platform"       binding:"required"`
	Username       string         `json:"username"       binding:"required"`
	TokenExpiresAt time.Time      `json:"tokenExpiresAt" binding:"required"`
}

type ListAccountsResponseDTO struct {
	Accounts []*SocialAccount `json:"accounts"`
}
