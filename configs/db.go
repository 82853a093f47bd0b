package configs

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/minsmanse/bar/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	db = database
	log.Printf("connected database: %s", source)
}

func SetupDatabase() {
	err := db.AutoMigrate(
		&entity.Ingredient{},
		&entity.MenuItem{},
		&entity.MenuPortion{},
		&entity.Order{},
		&entity.OrderItem{},
	)
	if err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
}
