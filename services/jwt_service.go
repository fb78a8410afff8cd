package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const customerIssuer = "modeva-api"

var ErrInvalidToken = errors.New("invalid token")

// CustomerJWTClaims represents the JWT payload of a storefront customer
type CustomerJWTClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// JWTService handles customer token generation and verification
type JWTService struct {
	secretKey string
	expiry    time.Duration
}

// NewJWTService creates a JWT service. A non-positive expiry means 24h.
func NewJWTService(secretKey string, expiry time.Duration) (*JWTService, error) {
	if secretKey == "" {
		return nil, errors.New("JWT secret key cannot be empty")
	}
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &JWTService{secretKey: secretKey, expiry: expiry}, nil
}

// GenerateCustomerJWT creates a signed token for a customer
func (j *JWTService) GenerateCustomerJWT(userID, email, name string) (string, error) {
	if userID == "" || email == "" {
		return "", errors.New("userID and email cannot be empty")
	}

	now := time.Now()
	claims := CustomerJWTClaims{
		UserID: userID,
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    customerIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// VerifyCustomerJWT verifies and parses a customer token
// Returns claims if valid, ErrInvalidToken (wrapped) otherwise
func (j *JWTService) VerifyCustomerJWT(tokenString string) (*CustomerJWTClaims, error) {
	claims := &CustomerJWTClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	}, jwt.WithIssuer(customerIssuer))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing user id", ErrInvalidToken)
	}

	return claims, nil
}
