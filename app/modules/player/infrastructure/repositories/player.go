package playerdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Black-And-White-Club/fantasy-league/app/shared/database"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new player repository.
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

func (r *Impl) GetAll(ctx context.Context, db bun.IDB) ([]Player, error) {
	db = r.resolveDB(db)
	var players []Player
	err := db.NewSelect().
		Model(&players).
		Relation("Team").
		OrderExpr("p.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id int64) (*Player, error) {
	db = r.resolveDB(db)
	player := new(Player)
	err := db.NewSelect().
		Model(player).
		Relation("Team").
		Where("p.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}
	return player, nil
}

func (r *Impl) GetByTeam(ctx context.Context, db bun.IDB, teamID int64) ([]Player, error) {
	db = r.resolveDB(db)
	var players []Player
	err := db.NewSelect().
		Model(&players).
		Relation("Team").
		Where("p.nfl_team_id = ?", teamID).
		OrderExpr("p.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players by team: %w", err)
	}
	return players, nil
}

func (r *Impl) GetActivePlayersByTeam(ctx context.Context, db bun.IDB, teamID int64) ([]Player, error) {
	db = r.resolveDB(db)
	var players []Player
	err := db.NewSelect().
		Model(&players).
		Where("p.nfl_team_id = ?", teamID).
		Where("p.status = ?", "Active").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active players by team: %w", err)
	}
	return players, nil
}

func (r *Impl) GetByPosition(ctx context.Context, db bun.IDB, position string) ([]Player, error) {
	db = r.resolveDB(db)
	var players []Player
	err := db.NewSelect().
		Model(&players).
		Relation("Team").
		Where("upper(p.position) = ?", strings.ToUpper(strings.TrimSpace(position))).
		OrderExpr("p.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players by position: %w", err)
	}
	return players, nil
}

func (r *Impl) ExistsActiveByNameAndTeam(ctx context.Context, db bun.IDB, name string, teamID int64, excludeID int64) (bool, error) {
	db = r.resolveDB(db)
	q := db.NewSelect().
		Model((*Player)(nil)).
		Where("lower(trim(p.name)) = lower(trim(?))", name).
		Where("p.nfl_team_id = ?", teamID).
		Where("p.status = ?", "Active")
	if excludeID > 0 {
		q = q.Where("p.id <> ?", excludeID)
	}
	exists, err := q.Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check player name: %w", err)
	}
	return exists, nil
}

func (r *Impl) Create(ctx context.Context, db bun.IDB, player *Player) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(player).
		ExcludeColumn("updated_at").
		Returning("id").
		Exec(ctx)
	if err != nil {
		return mapWriteError("failed to create player", err)
	}
	return nil
}

func (r *Impl) Update(ctx context.Context, db bun.IDB, player *Player) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model(player).
		Column("name", "position", "nfl_team_id", "image_url", "thumbnail_url", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return mapWriteError("failed to update player", err)
	}
	return requireRow(result)
}

func (r *Impl) SetStatus(ctx context.Context, db bun.IDB, id int64, status string, at time.Time) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*Player)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", at).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return mapWriteError("failed to update player status", err)
	}
	return requireRow(result)
}

func (r *Impl) UpdateInjuryDesignation(ctx context.Context, db bun.IDB, id int64, designation *string, at time.Time) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*Player)(nil)).
		Set("injury_designation = ?", designation).
		Set("updated_at = ?", at).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update injury designation: %w", err)
	}
	return requireRow(result)
}

func (r *Impl) Delete(ctx context.Context, db bun.IDB, id int64) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Player)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return requireRow(result)
}

func mapWriteError(msg string, err error) error {
	switch {
	case database.IsUniqueViolation(err):
		return fmt.Errorf("%s: %w: %v", msg, ErrDuplicate, err)
	case database.IsForeignKeyViolation(err):
		return fmt.Errorf("%s: %w: %v", msg, ErrTeamReference, err)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}

func requireRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
