package config

import (
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database selected by DB_DRIVER. The default is a
// local sqlite file so the service boots with nothing configured;
// mysql is opt-in for shared deployments.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	dsn := os.Getenv("DB_DSN")

	if driver == "mysql" {
		if dsn == "" {
			dsn = "root:@tcp(127.0.0.1:3306)/cartel_storefront?charset=utf8mb4&parseTime=True&loc=Local"
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	}

	if dsn == "" {
		dsn = "storefront.db"
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

// AdminAccessCode returns the shared secret for the management console.
func AdminAccessCode() string {
	code := os.Getenv("ADMIN_ACCESS_CODE")
	if code == "" {
		code = "JAWDAT2026"
	}
	return code
}
