// File: internal/domain/models/token.go
package models

// TokenPair bundles the access and refresh tokens returned by signin and
// token refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"` // always "Bearer"
	ExpiresIn    int    `json:"expires_in"` // access token lifetime in seconds
}

// RefreshRequest is the payload for POST /token-refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
