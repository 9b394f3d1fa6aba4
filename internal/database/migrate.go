package database

import (
	"database/sql"
	"log"
	"os"

	"github.com/4phone-ma/4phone-golang/internal/models"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS parts_inventory (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		slug VARCHAR(255) NOT NULL,
		category VARCHAR(100) NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		stock INT NOT NULL,
		min_stock INT NOT NULL DEFAULT 5,
		status VARCHAR(20) NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS purchase_orders (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		customer_name VARCHAR(255) NOT NULL,
		phone VARCHAR(50) NOT NULL,
		items JSON NOT NULL,
		total DECIMAL(10,2) NOT NULL,
		status VARCHAR(20) NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS repair_requests (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		customer_name VARCHAR(255) NOT NULL,
		phone VARCHAR(50) NOT NULL,
		device_model VARCHAR(255) NOT NULL,
		problem TEXT NOT NULL,
		estimated_cost DECIMAL(10,2) NULL,
		status VARCHAR(20) NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,
	"CREATE TABLE IF NOT EXISTS used_phones (" +
		"id BIGINT AUTO_INCREMENT PRIMARY KEY, " +
		"customer_name VARCHAR(255) NULL, " +
		"phone VARCHAR(50) NULL, " +
		"device_model VARCHAR(255) NOT NULL, " +
		"`condition` VARCHAR(100) NOT NULL, " +
		"offer_price DECIMAL(10,2) NOT NULL, " +
		"status VARCHAR(20) NOT NULL, " +
		"created_at DATETIME NOT NULL, " +
		"updated_at DATETIME NOT NULL" +
		")",
	`CREATE TABLE IF NOT EXISTS admin_users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,
}

// Migrate creates the shop's tables if they do not exist yet.
func Migrate(db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SeedAdmin inserts the default admin account when the admin_users table is
// empty. The password comes from ADMIN_PASSWORD, falling back to the shop's
// historical default.
func SeedAdmin(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM admin_users").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	plaintext := os.Getenv("ADMIN_PASSWORD")
	if plaintext == "" {
		plaintext = "123456"
	}

	var password models.Password
	if err := password.Set(plaintext); err != nil {
		return err
	}

	query := `
		INSERT INTO admin_users (username, password_hash, created_at, updated_at)
		VALUES (?, ?, NOW(), NOW())`
	if _, err := db.Exec(query, "admin", password.Hash); err != nil {
		return err
	}

	log.Println("Seeded default admin user")
	return nil
}
