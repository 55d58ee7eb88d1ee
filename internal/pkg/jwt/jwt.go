package jwt

import (
	"time"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const TokenTypeAccess = "access"

// AccessClaims are the identity claims carried by an access token.
// EmployeeID is nil for actors without an employee record.
type AccessClaims struct {
	UserID     int64
	TenantID   int64
	EmployeeID *int64
	Role       user.Role
}

type Service interface {
	GenerateAccessToken(claims AccessClaims) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime time.Duration
	tokenAuth                 *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime time.Duration) *JWTService {
	if accessTokenExpirationTime <= 0 {
		accessTokenExpirationTime = 15 * time.Minute
	}
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(c AccessClaims) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(j.accessTokenExpirationTime).Unix()

	claims := map[string]interface{}{
		"jti":       uuid.NewString(),
		"user_id":   c.UserID,
		"tenant_id": c.TenantID,
		"role":      string(c.Role),
		"type":      TokenTypeAccess,
		"exp":       expiresAt,
	}
	if c.EmployeeID != nil {
		claims["employee_id"] = *c.EmployeeID
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}
