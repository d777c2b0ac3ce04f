package worker

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"

	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/config"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/models"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/provider"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/queue"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/repository"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/service"
)

func setupConsumerTest(t *testing.T) (*Consumer, *gorm.DB) {
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

	container := &provider.Container{
		Config:      cfg,
		AuthService: service.NewAuthService(cfg, repository.NewUserRepository(db), repository.NewTokenRepository(db)),
	}
	return NewConsumer(container), db
}

func TestHandleAuthPurgeTokensSweepsExpiredRows(t *testing.T) {
	consumer, db := setupConsumerTest(t)

	expiredAt := time.Now().Add(-time.Hour)
	liveAt := time.Now().Add(time.Hour)
	tokens := []models.AccessToken{
		{TokenID: "jti-expired", UserID: 1, ExpiresAt: &expiredAt},
		{TokenID: "jti-live", UserID: 1, ExpiresAt: &liveAt},
	}
	if err := db.Create(&tokens).Error; err != nil {
		t.Fatalf("seed tokens failed: %v", err)
	}

	task, err := queue.NewAuthPurgeTokensTask(queue.AuthPurgeTokensPayload{Before: time.Now()})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleAuthPurgeTokens(context.Background(), task); err != nil {
		t.Fatalf("handle purge failed: %v", err)
	}

	var remaining []models.AccessToken
	if err := db.Find(&remaining).Error; err != nil {
		t.Fatalf("list tokens failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].TokenID != "jti-live" {
		t.Fatalf("expected only the live token to survive, got %+v", remaining)
	}
}

func TestHandleAuthPurgeTokensRejectsBadPayload(t *testing.T) {
	consumer, _ := setupConsumerTest(t)

	task := asynq.NewTask(queue.TaskAuthPurgeTokens, []byte("{not json"))
	if err := consumer.handleAuthPurgeTokens(context.Background(), task); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}
