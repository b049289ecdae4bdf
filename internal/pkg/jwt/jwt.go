package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
)

// Claims is the identity carried by a session token.
type Claims struct {
	AccountID string
	Email     string
	Role      account.Role
}

type Service interface {
	GenerateAccessToken(accountID string, email string, role account.Role) (token string, expiresAt int64, err error)
	ValidateAccessToken(tokenString string) (Claims, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(accountID string, email string, role account.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id": accountID,
		"email":   email,
		"role":    string(role),
		"type":    "access",
		"jti":     uuid.NewString(),
		"exp":     expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// ValidateAccessToken verifies the signature, expiry and token type, and
// returns the embedded identity claims.
func (j *JWTService) ValidateAccessToken(tokenString string) (Claims, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return Claims{}, err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "access" {
		return Claims{}, jwt.ErrInvalidJWT()
	}

	var claims Claims
	if v, ok := token.Get("user_id"); ok {
		claims.AccountID, _ = v.(string)
	}
	if v, ok := token.Get("email"); ok {
		claims.Email, _ = v.(string)
	}
	if v, ok := token.Get("role"); ok {
		if s, ok := v.(string); ok {
			claims.Role = account.Role(s)
		}
	}
	if claims.AccountID == "" {
		return Claims{}, jwt.ErrInvalidJWT()
	}

	return claims, nil
}
