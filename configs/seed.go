package configs

import (
	"log"

	"foodorder/entity"

	"golang.org/x/crypto/bcrypt"
)

// สร้าง admin ครั้งแรก
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Account{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.Account{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// Seed เมนูเริ่มต้นถ้า catalog ยังว่าง
func SeedMenu() error {
	db := DB()

	var count int64
	db.Model(&entity.MenuItem{}).Count(&count)
	if count > 0 {
		return nil
	}

	items := []entity.MenuItem{
		{Name: "Pho Bo", Detail: "beef noodle soup", Price: 5.50, Available: true},
		{Name: "Banh Mi", Detail: "vietnamese baguette", Price: 3.00, Available: true},
		{Name: "Com Tam", Detail: "broken rice with grilled pork", Price: 4.75, Available: true},
		{Name: "Ca Phe Sua Da", Detail: "iced milk coffee", Price: 2.25, Available: true},
	}
	return db.Create(&items).Error
}
