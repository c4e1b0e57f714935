package services

import (
	"fmt"
	"strings"
	"time"

	"blogapp/internal/models"
	"blogapp/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenConfig holds the signing parameters for issued tokens.
type TokenConfig struct {
	Secret     string
	Issuer     string
	Audience   string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// AuthService issues and validates the access and refresh tokens of the
// users service.
type AuthService struct {
	users repositories.UserRepository
	cfg   TokenConfig
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repositories.UserRepository, cfg TokenConfig) *AuthService {
	if cfg.AccessTTL == 0 {
		cfg.AccessTTL = 15 * time.Minute
	}
	if cfg.RefreshTTL == 0 {
		cfg.RefreshTTL = 24 * time.Hour
	}
	return &AuthService{users: users, cfg: cfg}
}

// Token authenticates the credentials and issues an access token carrying
// the user's identity claims plus a longer-lived refresh token. The failure
// message never reveals whether the username exists.
func (s *AuthService) Token(userName, password string) (models.TokenResult, error) {
	user, err := s.users.GetByUserName(strings.TrimSpace(userName))
	if err != nil {
		return models.TokenResult{}, err
	}
	if user == nil {
		return models.TokenResult{CommandResult: models.Fail("Invalid username or password.")}, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.TokenResult{CommandResult: models.Fail("Invalid username or password.")}, nil
	}

	expires := time.Now().Add(s.cfg.AccessTTL)
	accessToken, err := s.signAccessToken(user, expires)
	if err != nil {
		return models.TokenResult{}, err
	}

	refreshToken, err := s.signRefreshToken(user)
	if err != nil {
		return models.TokenResult{}, err
	}

	return models.TokenResult{
		CommandResult: models.Ok("Token created successfully.", user.ID),
		AccessToken:   accessToken,
		RefreshToken:  refreshToken,
		Expires:       expires,
	}, nil
}

// RefreshToken validates a previously issued refresh token and issues a new
// access token with a fresh expiry, without re-checking the password. The
// user must still exist and be active.
func (s *AuthService) RefreshToken(refreshToken string) (models.TokenResult, error) {
	claims, err := s.parse(refreshToken)
	if err != nil {
		return models.TokenResult{CommandResult: models.Fail("Invalid or expired refresh token.")}, nil
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return models.TokenResult{CommandResult: models.Fail("Invalid or expired refresh token.")}, nil
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return models.TokenResult{CommandResult: models.Fail("Invalid or expired refresh token.")}, nil
	}

	user, err := s.users.GetByID(uint(userID))
	if err != nil {
		return models.TokenResult{}, err
	}
	if user == nil || !user.IsActive {
		return models.TokenResult{CommandResult: models.Fail("Invalid or expired refresh token.")}, nil
	}

	expires := time.Now().Add(s.cfg.AccessTTL)
	accessToken, err := s.signAccessToken(user, expires)
	if err != nil {
		return models.TokenResult{}, err
	}

	return models.TokenResult{
		CommandResult: models.Ok("Token refreshed successfully.", user.ID),
		AccessToken:   accessToken,
		RefreshToken:  refreshToken,
		Expires:       expires,
	}, nil
}

// ValidateToken parses an access token and returns its claims if the
// signature, issuer, audience, and expiry all check out.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if typ, _ := claims["typ"].(string); typ == "refresh" {
		return nil, fmt.Errorf("refresh token cannot be used for access")
	}
	return claims, nil
}

func (s *AuthService) signAccessToken(user *models.User, expires time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.UserName,
		"role":     user.Role.Name,
		"iss":      s.cfg.Issuer,
		"aud":      s.cfg.Audience,
		"exp":      expires.Unix(),
		"iat":      time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

func (s *AuthService) signRefreshToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"jti":     uuid.New().String(),
		"typ":     "refresh",
		"iss":     s.cfg.Issuer,
		"aud":     s.cfg.Audience,
		"exp":     time.Now().Add(s.cfg.RefreshTTL).Unix(),
		"iat":     time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return signed, nil
}

func (s *AuthService) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if !claims.VerifyIssuer(s.cfg.Issuer, true) {
		return nil, fmt.Errorf("invalid token issuer")
	}
	if !claims.VerifyAudience(s.cfg.Audience, true) {
		return nil, fmt.Errorf("invalid token audience")
	}
	return claims, nil
}
