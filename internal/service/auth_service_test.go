package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/config"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/models"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.AccessToken{}); err != nil {
		t.Fatalf("migrate models failed: %v", err)
	}
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.ExpireHours = 1
	cfg.Security.PasswordPolicy.MinLength = 8
	return NewAuthService(cfg, repository.NewUserRepository(db), repository.NewTokenRepository(db)), db
}

func TestRegisterAlwaysCreatesClient(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	user, token, _, err := authService.Register("Aline", "aline@test.example", "motdepasse")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != models.RoleClient {
		t.Fatalf("registered role want client got %s", user.Role)
	}
	if token == "" {
		t.Fatalf("register should log the user in")
	}
	if user.PasswordHash == "motdepasse" {
		t.Fatalf("password must be hashed")
	}

	// Same email again is rejected.
	if _, _, _, err := authService.Register("Aline", "aline@test.example", "motdepasse"); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	if _, _, _, err := authService.Register("Aline", "not-an-email", "motdepasse"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if _, _, _, err := authService.Register("", "aline@test.example", "motdepasse"); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if _, _, _, err := authService.Register("Aline", "aline@test.example", "court"); !errors.Is(err, ErrPasswordTooWeak) {
		t.Fatalf("expected weak password error, got %v", err)
	}
}

func TestLoginDoesNotLeakAccountExistence(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	if _, _, _, err := authService.Register("Aline", "aline@test.example", "motdepasse"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, _, unknownErr := authService.Login("nobody@test.example", "motdepasse")
	_, _, _, wrongPassErr := authService.Login("aline@test.example", "mauvais-mdp")

	if !errors.Is(unknownErr, ErrInvalidCredentials) || !errors.Is(wrongPassErr, ErrInvalidCredentials) {
		t.Fatalf("both failures must be ErrInvalidCredentials, got %v / %v", unknownErr, wrongPassErr)
	}
}

func TestLogoutRevokesOnlyCurrentToken(t *testing.T) {
	authService, db := setupAuthServiceTest(t)

	_, _, _, err := authService.Register("Aline", "aline@test.example", "motdepasse")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Two concurrent sessions.
	_, token1, _, err := authService.Login("aline@test.example", "motdepasse")
	if err != nil {
		t.Fatalf("first login failed: %v", err)
	}
	_, token2, _, err := authService.Login("aline@test.example", "motdepasse")
	if err != nil {
		t.Fatalf("second login failed: %v", err)
	}

	claims1, err := authService.ParseToken(token1)
	if err != nil {
		t.Fatalf("parse token1 failed: %v", err)
	}
	claims2, err := authService.ParseToken(token2)
	if err != nil {
		t.Fatalf("parse token2 failed: %v", err)
	}

	ctx := context.Background()
	if err := authService.Logout(ctx, claims1.ID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	valid, err := authService.ValidateTokenID(ctx, claims1.ID)
	if err != nil {
		t.Fatalf("validate token1 failed: %v", err)
	}
	if valid {
		t.Fatalf("logged-out token must be invalid")
	}

	valid, err = authService.ValidateTokenID(ctx, claims2.ID)
	if err != nil {
		t.Fatalf("validate token2 failed: %v", err)
	}
	if !valid {
		t.Fatalf("other session must survive the logout")
	}

	var remaining int64
	db.Model(&models.AccessToken{}).Count(&remaining)
	if remaining != 2 { // registration token + session 2
		t.Fatalf("expected 2 token rows, got %d", remaining)
	}
}

func TestCreateSupplier(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	supplier, err := authService.CreateSupplier("Atelier Soleil", "atelier@test.example", "motdepasse")
	if err != nil {
		t.Fatalf("create supplier failed: %v", err)
	}
	if supplier.Role != models.RoleSupplier {
		t.Fatalf("role want fournisseur got %s", supplier.Role)
	}
	if _, err := authService.CreateSupplier("Atelier Soleil", "atelier@test.example", "motdepasse"); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestRemoveProfileImage(t *testing.T) {
	authService, db := setupAuthServiceTest(t)

	user, _, _, err := authService.Register("Aline", "aline@test.example", "motdepasse")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := authService.RemoveProfileImage(user.ID); !errors.Is(err, ErrNoProfileImage) {
		t.Fatalf("expected ErrNoProfileImage, got %v", err)
	}

	image := "avatar.png"
	if err := db.Model(&models.User{}).Where("id = ?", user.ID).Update("profile_image", &image).Error; err != nil {
		t.Fatalf("set image failed: %v", err)
	}

	updated, err := authService.RemoveProfileImage(user.ID)
	if err != nil {
		t.Fatalf("remove image failed: %v", err)
	}
	if updated.ProfileImage != nil {
		t.Fatalf("profile image should be cleared")
	}
}

func TestPurgeExpiredTokens(t *testing.T) {
	authService, db := setupAuthServiceTest(t)

	user, _, _, err := authService.Register("Aline", "aline@test.example", "motdepasse")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	expired := time.Now().Add(-time.Hour)
	stale := &models.AccessToken{TokenID: "stale-token", UserID: user.ID, ExpiresAt: &expired}
	if err := db.Create(stale).Error; err != nil {
		t.Fatalf("create stale token failed: %v", err)
	}

	purged, err := authService.PurgeExpiredTokens()
	if err != nil {
		t.Fatalf("purge failed: %v", err)
	}
	if purged != 1 {
		t.Fatalf("purged want 1 got %d", purged)
	}

	valid, err := authService.ValidateTokenID(context.Background(), "stale-token")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if valid {
		t.Fatalf("expired token must not validate")
	}
}
