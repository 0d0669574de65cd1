package model

import "time"

// Company is the public company profile returned by the API.
type Company struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Disabled  bool      `json:"disabled"`
}

// CompanyRecord is the full company row including private columns.
// CompanyID is the opaque tenant key that scopes every roles/interviews/questions query.
type CompanyRecord struct {
	Company
	CompanyID      string `json:"company_id"`
	HashedPassword string `json:"hashed_password"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
