package nflteamdb

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

// NewRepository creates a new NFL team repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) GetAll(ctx context.Context, db bun.IDB) ([]Team, error) {
	db = r.resolveDB(db)
	var teams []Team
	err := db.NewSelect().
		Model(&teams).
		OrderExpr("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nfl teams: %w", err)
	}
	return teams, nil
}

func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id int64) (*Team, error) {
	db = r.resolveDB(db)
	team := new(Team)
	err := db.NewSelect().
		Model(team).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get nfl team by id: %w", err)
	}
	return team, nil
}

func (r *Impl) ExistsByName(ctx context.Context, db bun.IDB, name string) (bool, error) {
	db = r.resolveDB(db)
	exists, err := db.NewSelect().
		Model((*Team)(nil)).
		Where("lower(trim(name)) = lower(trim(?))", name).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check nfl team name: %w", err)
	}
	return exists, nil
}

func (r *Impl) Create(ctx context.Context, db bun.IDB, team *Team) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(team).
		Returning("id").
		Exec(ctx)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicateName
		}
		return fmt.Errorf("failed to create nfl team: %w", err)
	}
	return nil
}

func (r *Impl) Delete(ctx context.Context, db bun.IDB, id int64) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Team)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return ErrHasPlayers
		}
		return fmt.Errorf("failed to delete nfl team: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
