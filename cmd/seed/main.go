package main

import (
	"fmt"
	"os"

	"github.com/joymarket/joymarket/internal/config"
	"github.com/joymarket/joymarket/internal/constants"
	"github.com/joymarket/joymarket/internal/logger"
	"github.com/joymarket/joymarket/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
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

	if err := models.InitDefaultAdmin(os.Getenv("JM_DEFAULT_ADMIN_EMAIL"), os.Getenv("JM_DEFAULT_ADMIN_PASSWORD")); err != nil {
		stdLog.Printf("Failed to seed admin account: %v", err)
	}

	products := []models.Product{
		{
			Name:      "Nasi Goreng Spesial",
			Price:     models.NewMoneyFromDecimal(decimal.NewFromInt(25000)),
			Stock:     50,
			Category:  "food",
			IsActive:  true,
			SortOrder: 300,
		},
		{
			Name:      "Es Teh Manis",
			Price:     models.NewMoneyFromDecimal(decimal.NewFromInt(8000)),
			Stock:     120,
			Category:  "drink",
			IsActive:  true,
			SortOrder: 280,
		},
		{
			Name:      "Ayam Geprek",
			Price:     models.NewMoneyFromDecimal(decimal.NewFromInt(20000)),
			Stock:     40,
			Category:  "food",
			IsActive:  true,
			SortOrder: 260,
		},
		{
			Name:      "Kopi Susu Gula Aren",
			Price:     models.NewMoneyFromDecimal(decimal.NewFromInt(18000)),
			Stock:     80,
			Category:  "drink",
			IsActive:  true,
			SortOrder: 240,
		},
		{
			Name:      "Keripik Singkong",
			Price:     models.NewMoneyFromDecimal(decimal.NewFromInt(12000)),
			Stock:     0,
			Category:  "snack",
			IsActive:  true,
			SortOrder: 220,
		},
		{
			Name:      "Paket Hemat (Nonaktif)",
			Price:     models.NewMoneyFromDecimal(decimal.NewFromInt(35000)),
			Stock:     10,
			Category:  "food",
			IsActive:  false,
			SortOrder: 200,
		},
	}

	for _, prod := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", prod.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Name)
			}
		} else {
			existing.Price = prod.Price
			existing.Stock = prod.Stock
			existing.Category = prod.Category
			existing.IsActive = prod.IsActive
			existing.SortOrder = prod.SortOrder
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Updated product: %s", prod.Name)
			}
		}
	}

	promos := []models.Promo{
		{
			Code:            "SAVE10",
			DiscountPercent: models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
			Headline:        "Diskon 10% untuk semua pesanan",
			IsActive:        true,
		},
		{
			Code:            "WELCOME20",
			DiscountPercent: models.NewMoneyFromDecimal(decimal.NewFromInt(20)),
			Headline:        "Diskon 20% pelanggan baru",
			IsActive:        true,
		},
		{
			Code:            "EXPIRED50",
			DiscountPercent: models.NewMoneyFromDecimal(decimal.NewFromInt(50)),
			Headline:        "Promo lama yang sudah ditutup",
			IsActive:        false,
		},
	}

	for _, promo := range promos {
		var existing models.Promo
		if err := models.DB.Where("code = ?", promo.Code).First(&existing).Error; err != nil {
			if err := models.DB.Create(&promo).Error; err != nil {
				stdLog.Printf("Failed to create promo %s: %v", promo.Code, err)
			} else {
				stdLog.Printf("Created promo: %s", promo.Code)
			}
		} else {
			existing.DiscountPercent = promo.DiscountPercent
			existing.Headline = promo.Headline
			existing.IsActive = promo.IsActive
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update promo %s: %v", promo.Code, err)
			} else {
				stdLog.Printf("Updated promo: %s", promo.Code)
			}
		}
	}

	seedCustomer(stdLog)
	seedCourier(stdLog)

	fmt.Println("\nSeed data ready.")
	fmt.Println("Summary:")
	fmt.Println("- Admin account (see JM_DEFAULT_ADMIN_EMAIL / JM_DEFAULT_ADMIN_PASSWORD)")
	fmt.Println("- 6 Products (1 out of stock, 1 inactive)")
	fmt.Println("- 3 Promo codes (1 inactive)")
	fmt.Println("- Demo customer: budi@joymarket.local / rahasia123 (balance Rp 100.000)")
	fmt.Println("- Demo courier: kurnia@joymarket.local / rahasia123")
}

func seedCustomer(stdLog interface{ Printf(string, ...interface{}) }) {
	const email = "budi@joymarket.local"
	var existing models.User
	if err := models.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		stdLog.Printf("Demo customer already exists: %s", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.DefaultCost)
	if err != nil {
		stdLog.Printf("Failed to hash demo customer password: %v", err)
		return
	}
	user := models.User{
		FullName:     "Budi Santoso",
		Email:        email,
		PasswordHash: string(hash),
		Phone:        "081234567890",
		Address:      "Jl. Merdeka No. 1, Jakarta",
		Role:         constants.RoleCustomer,
		Status:       constants.UserStatusActive,
	}
	if err := models.DB.Create(&user).Error; err != nil {
		stdLog.Printf("Failed to create demo customer user: %v", err)
		return
	}
	customer := models.Customer{
		UserID:  user.ID,
		Balance: models.NewMoneyFromDecimal(decimal.NewFromInt(100000)),
	}
	if err := models.DB.Create(&customer).Error; err != nil {
		stdLog.Printf("Failed to create demo customer profile: %v", err)
		return
	}
	stdLog.Printf("Created demo customer: %s", email)
}

func seedCourier(stdLog interface{ Printf(string, ...interface{}) }) {
	const email = "kurnia@joymarket.local"
	var existing models.User
	if err := models.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		stdLog.Printf("Demo courier already exists: %s", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.DefaultCost)
	if err != nil {
		stdLog.Printf("Failed to hash demo courier password: %v", err)
		return
	}
	user := models.User{
		FullName:     "Kurnia Wijaya",
		Email:        email,
		PasswordHash: string(hash),
		Phone:        "081298765432",
		Role:         constants.RoleCourier,
		Status:       constants.UserStatusActive,
	}
	if err := models.DB.Create(&user).Error; err != nil {
		stdLog.Printf("Failed to create demo courier user: %v", err)
		return
	}
	courier := models.Courier{
		UserID:       user.ID,
		VehicleType:  constants.VehicleTypeMotorcycle,
		VehiclePlate: "B 1234 JKT",
	}
	if err := models.DB.Create(&courier).Error; err != nil {
		stdLog.Printf("Failed to create demo courier profile: %v", err)
		return
	}
	stdLog.Printf("Created demo courier: %s", email)
}
