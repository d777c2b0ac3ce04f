package public

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/models"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/provider"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/repository"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartHandlerTest(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate models failed: %v", err)
	}
	c := &provider.Container{
		CartService: service.NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db)),
	}
	return New(c), db
}

func TestAddCartItemUnknownProductIsFieldError(t *testing.T) {
	h, db := setupCartHandlerTest(t)
	client := &models.User{Name: "Client", Email: "client@test", PasswordHash: "x", Role: models.RoleClient}
	if err := db.Create(client).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	engine := gin.New()
	engine.POST("/cart/add", func(c *gin.Context) {
		c.Set("user_id", client.ID)
		h.AddCartItem(c)
	})

	req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(`{"product_id": 9999, "quantity": 1}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status want 422 got %d (body: %s)", w.Code, w.Body.String())
	}
	var envelope struct {
		Data struct {
			Errors map[string]string `json:"errors"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	if envelope.Data.Errors["product_id"] == "" {
		t.Fatalf("expected a product_id field error, got %v", envelope.Data.Errors)
	}
}
