package storage

import (
	"errors"

	"github.com/cyal-dev3/cyalbot-sub000/internal/game"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// SQLiteRepository implements Repository on top of GORM/SQLite.
type SQLiteRepository struct {
	db *gorm.DB
	// reads deduplicates concurrent Get calls for the same player id so a
	// burst of status lookups hits the database once.
	reads singleflight.Group
}

func NewSQLiteRepository(db *gorm.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(id string) (*game.PlayerStats, error) {
	v, err, _ := r.reads.Do(id, func() (interface{}, error) {
		var p game.PlayerStats
		if err := r.db.Where("player_id = ?", id).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPlayerNotFound
			}
			return nil, err
		}
		return &p, nil
	})
	if err != nil {
		return nil, err
	}
	shared := v.(*game.PlayerStats)
	// Callers may mutate the result; hand each one its own copy.
	cp := *shared
	return &cp, nil
}

func (r *SQLiteRepository) Update(id string, patch game.PlayerPatch) error {
	updates := map[string]interface{}{}
	if patch.ExpDelta != nil {
		updates["exp"] = gorm.Expr("exp + ?", *patch.ExpDelta)
	}
	if patch.MoneyDelta != nil {
		updates["money"] = gorm.Expr("money + ?", *patch.MoneyDelta)
	}
	if patch.WinsDelta != nil {
		updates["wins"] = gorm.Expr("wins + ?", *patch.WinsDelta)
	}
	if patch.LossesDelta != nil {
		updates["losses"] = gorm.Expr("losses + ?", *patch.LossesDelta)
	}
	if len(updates) == 0 {
		return nil
	}
	res := r.db.Model(&game.PlayerStats{}).Where("player_id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

func (r *SQLiteRepository) GetTopPlayers(limit int) ([]game.PlayerStats, error) {
	var players []game.PlayerStats
	if err := r.db.Order("wins DESC, exp DESC").Limit(limit).Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}
