package mysql

import (
	"fmt"

	"harvestmarket/internal/config"
	"harvestmarket/internal/domain"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func NewMySQL(cfg config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.MySQLUser, cfg.MySQLPassword, cfg.MySQLHost, cfg.MySQLPort, cfg.MySQLDatabase)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.FarmerProfile{},
		&domain.Wallet{},
		&domain.CropCategory{},
		&domain.CropVariety{},
		&domain.ProductListing{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.Transaction{},
		&domain.NegotiationSession{},
		&domain.NegotiationMessage{},
		&domain.Dispute{},
		&domain.CartItem{},
		&domain.SavedSearch{},
		&domain.LogisticsAssignment{},
		&domain.Notification{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
