package newsdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Black-And-White-Club/fantasy-league/app/shared/database"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new news repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) GetAll(ctx context.Context, db bun.IDB) ([]News, error) {
	db = r.resolveDB(db)
	var items []News
	err := db.NewSelect().
		Model(&items).
		Relation("Player").
		OrderExpr("n.created_at DESC, n.id DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	return items, nil
}

func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id int64) (*News, error) {
	db = r.resolveDB(db)
	item := new(News)
	err := db.NewSelect().
		Model(item).
		Relation("Player").
		Where("n.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get news by id: %w", err)
	}
	return item, nil
}

func (r *Impl) GetByPlayer(ctx context.Context, db bun.IDB, playerID int64) ([]News, error) {
	db = r.resolveDB(db)
	var items []News
	err := db.NewSelect().
		Model(&items).
		Relation("Player").
		Where("n.player_id = ?", playerID).
		OrderExpr("n.created_at DESC, n.id DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list news by player: %w", err)
	}
	return items, nil
}

func (r *Impl) Create(ctx context.Context, db bun.IDB, news *News) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(news).
		Returning("id").
		Exec(ctx)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return fmt.Errorf("failed to create news: %w: %v", ErrPlayerReference, err)
		}
		return fmt.Errorf("failed to create news: %w", err)
	}
	return nil
}
