package jwt

import (
	"fmt"
	"time"

	"companion-srv/pkg/scope"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateToken generates a new JWT token with HS256 algorithm.
func (m *managerImpl) GenerateToken(userID, email, role string, groups []string) (string, error) {
	now := time.Now()
	expiresAt := now.Add(m.ttl)

	// Generate unique JTI (JWT ID) for token tracking and revocation
	jti := uuid.New().String()

	claims := Claims{
		Email:  email,
		Role:   role,
		Groups: groups,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   userID,
			Audience:  m.audience,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        jti,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Sign token with secret key
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// VerifyToken verifies and parses a JWT token.
func (m *managerImpl) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return m.secretKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("invalid claims type")
	}

	return claims, nil
}

// Verify implements scope.Manager, returning the token payload.
func (m *managerImpl) Verify(token string) (scope.Payload, error) {
	claims, err := m.VerifyToken(token)
	if err != nil {
		return scope.Payload{}, err
	}

	var expiresAt int64
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Unix()
	}
	var issuedAt int64
	if claims.IssuedAt != nil {
		issuedAt = claims.IssuedAt.Unix()
	}

	return scope.Payload{
		UserID:    claims.Subject,
		Username:  claims.Email,
		Role:      claims.Role,
		Subject:   claims.Subject,
		Issuer:    claims.Issuer,
		Id:        claims.ID,
		ExpiresAt: expiresAt,
		IssuedAt:  issuedAt,
	}, nil
}

// CreateToken implements scope.Manager interface.
func (m *managerImpl) CreateToken(payload scope.Payload) (string, error) {
	return m.GenerateToken(payload.UserID, payload.Username, payload.Role, nil)
}
