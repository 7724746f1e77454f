package nflteamservice

import (
	"context"

	nflteamdb "github.com/Black-And-White-Club/fantasy-league/app/modules/nflteam/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake NFL Team Repo
// ------------------------

type FakeTeamRepo struct {
	trace []string

	GetAllFunc       func(ctx context.Context, db bun.IDB) ([]nflteamdb.Team, error)
	GetByIDFunc      func(ctx context.Context, db bun.IDB, id int64) (*nflteamdb.Team, error)
	ExistsByNameFunc func(ctx context.Context, db bun.IDB, name string) (bool, error)
	CreateFunc       func(ctx context.Context, db bun.IDB, team *nflteamdb.Team) error
	DeleteFunc       func(ctx context.Context, db bun.IDB, id int64) error
}

func NewFakeTeamRepo() *FakeTeamRepo {
	return &FakeTeamRepo{trace: []string{}}
}

func (f *FakeTeamRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeTeamRepo) GetAll(ctx context.Context, db bun.IDB) ([]nflteamdb.Team, error) {
	f.record("GetAll")
	if f.GetAllFunc != nil {
		return f.GetAllFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeTeamRepo) GetByID(ctx context.Context, db bun.IDB, id int64) (*nflteamdb.Team, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	return nil, nflteamdb.ErrNotFound
}

func (f *FakeTeamRepo) ExistsByName(ctx context.Context, db bun.IDB, name string) (bool, error) {
	f.record("ExistsByName")
	if f.ExistsByNameFunc != nil {
		return f.ExistsByNameFunc(ctx, db, name)
	}
	return false, nil
}

func (f *FakeTeamRepo) Create(ctx context.Context, db bun.IDB, team *nflteamdb.Team) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, team)
	}
	team.ID = 1
	return nil
}

func (f *FakeTeamRepo) Delete(ctx context.Context, db bun.IDB, id int64) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeTeamRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ nflteamdb.Repository = (*FakeTeamRepo)(nil)
