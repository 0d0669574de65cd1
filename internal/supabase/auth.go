package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

type otpRequest struct {
	Email      string `json:"email"`
	CreateUser bool   `json:"create_user"`
}

// SendMagicLink asks the auth service to email a one-time login link to the
// candidate. Token issuance and delivery are entirely the service's concern.
func (c *Client) SendMagicLink(ctx context.Context, email, redirectTo string) error {
	params := url.Values{}
	if redirectTo != "" {
		params.Set("redirect_to", redirectTo)
	}
	_, err := c.do(ctx, http.MethodPost, "/auth/v1/otp", params, nil, otpRequest{
		Email:      email,
		CreateUser: true,
	})
	return err
}

// UserEmail verifies a candidate bearer token against the auth service and
// returns the verified email address.
func (c *Client) UserEmail(ctx context.Context, accessToken string) (string, error) {
	headers := map[string]string{"Authorization": "Bearer " + accessToken}
	b, err := c.do(ctx, http.MethodGet, "/auth/v1/user", nil, headers, nil)
	if err != nil {
		return "", err
	}

	var user struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(b, &user); err != nil {
		return "", fmt.Errorf("decode auth user: %w", err)
	}
	if user.Email == "" {
		return "", fmt.Errorf("auth user has no email")
	}
	return user.Email, nil
}
