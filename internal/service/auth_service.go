package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/cache"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/config"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/logger"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/models"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles accounts and token lifecycle. Tokens are JWTs
// whose jti is backed by an access_tokens row; deleting the row revokes
// the token before its JWT expiry.
type AuthService struct {
	cfg       *config.Config
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
}

// NewAuthService creates the auth service.
func NewAuthService(cfg *config.Config, userRepo repository.UserRepository, tokenRepo repository.TokenRepository) *AuthService {
	return &AuthService{
		cfg:       cfg,
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

// JWTClaims are the claims carried by issued tokens.
type JWTClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken generates a JWT for the user and records its validity row.
func (s *AuthService) IssueToken(user *models.User) (string, time.Time, error) {
	expireHours := s.cfg.JWT.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	now := time.Now()
	expiresAt := now.Add(time.Duration(expireHours) * time.Hour)
	tokenID := uuid.NewString()

	claims := JWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	record := &models.AccessToken{
		TokenID:   tokenID,
		UserID:    user.ID,
		Name:      "auth_token",
		ExpiresAt: &expiresAt,
		CreatedAt: now,
	}
	if err := s.tokenRepo.Create(record); err != nil {
		return "", time.Time{}, err
	}
	_ = cache.SetTokenAuthState(context.Background(), cache.BuildTokenAuthState(record, user))

	return tokenString, expiresAt, nil
}

// ParseToken parses and verifies a JWT string.
func (s *AuthService) ParseToken(tokenString string) (*JWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &JWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// ValidateTokenID checks that the token's validity row still exists and
// has not expired. Consults the cache first.
func (s *AuthService) ValidateTokenID(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}

	if state, hit, err := cache.GetTokenAuthState(ctx, tokenID); err == nil && hit {
		if state.ExpiresAt != 0 && state.ExpiresAt < time.Now().Unix() {
			return false, nil
		}
		return true, nil
	}

	record, err := s.tokenRepo.GetByTokenID(tokenID)
	if err != nil {
		return false, err
	}
	if record == nil {
		return false, nil
	}
	if record.ExpiresAt != nil && record.ExpiresAt.Before(time.Now()) {
		return false, nil
	}

	if user, err := s.userRepo.GetByID(record.UserID); err == nil && user != nil {
		_ = cache.SetTokenAuthState(ctx, cache.BuildTokenAuthState(record, user))
	}
	return true, nil
}

// Register creates a client account and logs it in. Self-registration
// always yields the client role; supplier accounts only come from the
// admin.
func (s *AuthService) Register(name, email, password string) (*models.User, string, time.Time, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, "", time.Time{}, ErrNameRequired
	}
	if err := validatePassword(s.cfg.Security.PasswordPolicy, password); err != nil {
		return nil, "", time.Time{}, err
	}

	exist, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if exist != nil {
		return nil, "", time.Time{}, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	now := time.Now()
	user := &models.User{
		Name:         name,
		Email:        normalized,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleClient,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.IssueToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

// Login verifies credentials and issues a token. Unknown email and bad
// password collapse into the same error so accounts cannot be probed.
func (s *AuthService) Login(email, password string) (*models.User, string, time.Time, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	user, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if user == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.IssueToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

// Logout revokes the current token only. Other sessions of the same
// user stay valid.
func (s *AuthService) Logout(ctx context.Context, tokenID string) error {
	if tokenID == "" {
		return nil
	}
	if err := s.tokenRepo.DeleteByTokenID(tokenID); err != nil {
		return err
	}
	_ = cache.DelTokenAuthState(ctx, tokenID)
	return nil
}

// CreateSupplier creates a supplier account. Only reachable through the
// admin surface; there is no supplier self-registration.
func (s *AuthService) CreateSupplier(name, email, password string) (*models.User, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if err := validatePassword(s.cfg.Security.PasswordPolicy, password); err != nil {
		return nil, err
	}

	exist, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	supplier := &models.User{
		Name:         name,
		Email:        normalized,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleSupplier,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(supplier); err != nil {
		return nil, err
	}
	logger.Infow("supplier_account_created", "supplier_id", supplier.ID, "email", supplier.Email)
	return supplier, nil
}

// GetUserByID fetches a user profile.
func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// RemoveProfileImage clears the user's profile image reference.
func (s *AuthService) RemoveProfileImage(userID uint) (*models.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user.ProfileImage == nil {
		return nil, ErrNoProfileImage
	}

	user.ProfileImage = nil
	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// PurgeExpiredTokens removes validity rows whose expiry has passed.
// Invoked by the background worker.
func (s *AuthService) PurgeExpiredTokens() (int64, error) {
	purged, err := s.tokenRepo.DeleteExpired(time.Now())
	if err != nil {
		return 0, err
	}
	if purged > 0 {
		logger.Infow("expired_tokens_purged", "count", purged)
	}
	return purged, nil
}

func normalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(normalized); err != nil {
		return "", ErrInvalidEmail
	}
	return normalized, nil
}
