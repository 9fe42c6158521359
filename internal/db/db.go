package db

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"warehouseiq/internal/models"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := gdb.AutoMigrate(
		&models.Warehouse{},
		&models.WarehouseLocation{},
		&models.InventoryItem{},
		&models.InventoryStock{},
		&models.Movement{},
		&models.Order{},
		&models.OrderItem{},
		&models.ReceivingLog{},
		&models.ReceivedDocument{},
		&models.AlertRule{},
		&models.GeneratedAlert{},
		&models.DailyInsight{},
		&models.ReorderRecommendation{},
	); err != nil {
		return nil, err
	}
	return gdb, nil
}
