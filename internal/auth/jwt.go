package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every verification failure. Signature
// mismatch and expiry are deliberately indistinguishable to callers.
var ErrInvalidToken = errors.New("could not validate credentials")

type Claims struct {
	CompanyID string `json:"company_id"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed bearer token for a company session. The
// username travels as the subject claim, the opaque tenant key as company_id.
func GenerateToken(secret, username, companyID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		CompanyID: companyID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
