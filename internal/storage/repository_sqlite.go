package storage

import (
	"github.com/sm48337/wargame/internal/game"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository wraps a gorm database handle in the Repository
// contract. SQLite serializes writes per connection, which satisfies the
// per-game write serialization requirement.
func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateGame(g *game.Game) error {
	return r.db.Create(g).Error
}

func (r *sqliteRepository) GetGames() ([]game.Game, error) {
	var games []game.Game
	if err := r.db.Order("created_at desc").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *sqliteRepository) FindGameByJoinCode(code string) (*game.Game, error) {
	var g game.Game
	if err := r.db.Where("join_code = ?", code).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *sqliteRepository) UpdateGame(g *game.Game) error {
	return r.db.Save(g).Error
}

func (r *sqliteRepository) FindRunningGames() ([]game.Game, error) {
	var games []game.Game
	if err := r.db.Where("victor = ? AND is_paused = ?", "", false).Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}
