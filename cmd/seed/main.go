package main

import (
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/config"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/constants"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/logger"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/models"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.InitDefaultAdmin(cfg.Admin.Email, cfg.Admin.Password); err != nil {
		stdLog.Printf("Failed to bootstrap admin: %v", err)
	}

	supplier := seedUser(stdLog, "Atelier Toffa", "atelier.toffa@artisanat.local", "fournisseur123", models.RoleSupplier)
	client := seedUser(stdLog, "Aline Dossou", "aline.dossou@artisanat.local", "client123", models.RoleClient)
	if supplier == nil || client == nil {
		stdLog.Fatalf("Seed accounts missing, aborting")
	}

	products := []models.Product{
		{
			SupplierID:  supplier.ID,
			Name:        "Panier tressé en raphia",
			Description: "Panier artisanal tressé à la main en fibres de raphia naturel.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(35)),
			ImageURL:    "https://images.unsplash.com/photo-1595408076683-5d0c643e4f11?w=800",
			Address:     "Cotonou",
		},
		{
			SupplierID:  supplier.ID,
			Name:        "Statuette en bois d'ébène",
			Description: "Statuette sculptée dans du bois d'ébène par un maître artisan.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(120)),
			ImageURL:    "https://images.unsplash.com/photo-1582582621959-48d27397dc69?w=800",
			Address:     "Abomey",
		},
		{
			SupplierID:  supplier.ID,
			Name:        "Tissu batik teint à la main",
			Description: "Coupon de tissu batik aux motifs traditionnels, teinture artisanale.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(45.50)),
			ImageURL:    "https://images.unsplash.com/photo-1549989476-69a92fa57c36?w=800",
			Address:     "Porto-Novo",
		},
	}
	for i := range products {
		product := &products[i]
		var existing models.Product
		err := models.DB.Where("name = ? AND supplier_id = ?", product.Name, product.SupplierID).First(&existing).Error
		if err == nil {
			*product = existing
			stdLog.Printf("Product already exists: %s", product.Name)
			continue
		}
		if err := models.DB.Create(product).Error; err != nil {
			stdLog.Printf("Failed to create product %s: %v", product.Name, err)
			continue
		}
		stdLog.Printf("Created product: %s", product.Name)
	}

	seedDeliveredOrder(stdLog, client, products)

	stdLog.Printf("Seed finished")
}

func seedUser(stdLog *log.Logger, name, email, password string, role models.Role) *models.User {
	var existing models.User
	if err := models.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		stdLog.Printf("User already exists: %s", email)
		return &existing
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		stdLog.Printf("Failed to hash password for %s: %v", email, err)
		return nil
	}
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := models.DB.Create(&user).Error; err != nil {
		stdLog.Printf("Failed to create user %s: %v", email, err)
		return nil
	}
	stdLog.Printf("Created user: %s (%s)", email, role)
	return &user
}

// seedDeliveredOrder creates one historical delivered order so the
// sales evolution endpoint shows data on a fresh install.
func seedDeliveredOrder(stdLog *log.Logger, client *models.User, products []models.Product) {
	if len(products) < 2 {
		return
	}
	var count int64
	if err := models.DB.Model(&models.Order{}).Where("user_id = ?", client.ID).Count(&count).Error; err != nil {
		stdLog.Printf("Failed to count orders: %v", err)
		return
	}
	if count > 0 {
		stdLog.Printf("Orders already seeded for %s", client.Email)
		return
	}

	order := models.Order{
		UserID:    client.ID,
		Status:    constants.OrderStatusDelivered,
		OrderDate: time.Now().AddDate(0, 0, -14),
		Items: []models.OrderItem{
			{ProductID: products[0].ID, Quantity: 2, UnitPrice: products[0].Price},
			{ProductID: products[1].ID, Quantity: 1, UnitPrice: products[1].Price},
		},
	}
	if err := models.DB.Create(&order).Error; err != nil {
		stdLog.Printf("Failed to create seed order: %v", err)
		return
	}
	stdLog.Printf("Created delivered order %d for %s", order.ID, client.Email)
}
