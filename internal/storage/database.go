package storage

import (
	"github.com/cyal-dev3/cyalbot-sub000/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the SQLite database, keeps the schema updated via
// AutoMigrate and seeds starter players when the table is empty.
func OpenAndMigrate(dataSourceName string, seedPlayers []game.PlayerStats) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.PlayerStats{}); err != nil {
		return nil, err
	}
	seedDefaultPlayers(db, seedPlayers)
	return db, nil
}

func seedDefaultPlayers(db *gorm.DB, seedPlayers []game.PlayerStats) {
	if len(seedPlayers) == 0 {
		return
	}
	var count int64
	db.Model(&game.PlayerStats{}).Count(&count)
	if count > 0 {
		return
	}
	players := make([]game.PlayerStats, len(seedPlayers))
	copy(players, seedPlayers)
	db.Create(&players)
}
