package newsservice

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	newsdb "github.com/Black-And-White-Club/fantasy-league/app/modules/news/infrastructure/repositories"
	playerdb "github.com/Black-And-White-Club/fantasy-league/app/modules/player/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake News Repository
// ------------------------

type FakeNewsRepo struct {
	mu    sync.Mutex
	trace []string

	GetAllFunc      func(ctx context.Context, db bun.IDB) ([]newsdb.News, error)
	GetByIDFunc     func(ctx context.Context, db bun.IDB, id int64) (*newsdb.News, error)
	GetByPlayerFunc func(ctx context.Context, db bun.IDB, playerID int64) ([]newsdb.News, error)
	CreateFunc      func(ctx context.Context, db bun.IDB, news *newsdb.News) error
}

func NewFakeNewsRepo() *FakeNewsRepo {
	return &FakeNewsRepo{trace: []string{}}
}

func (f *FakeNewsRepo) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

func (f *FakeNewsRepo) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeNewsRepo) GetAll(ctx context.Context, db bun.IDB) ([]newsdb.News, error) {
	f.record("GetAll")
	if f.GetAllFunc != nil {
		return f.GetAllFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeNewsRepo) GetByID(ctx context.Context, db bun.IDB, id int64) (*newsdb.News, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	return nil, newsdb.ErrNotFound
}

func (f *FakeNewsRepo) GetByPlayer(ctx context.Context, db bun.IDB, playerID int64) ([]newsdb.News, error) {
	f.record("GetByPlayer")
	if f.GetByPlayerFunc != nil {
		return f.GetByPlayerFunc(ctx, db, playerID)
	}
	return nil, nil
}

func (f *FakeNewsRepo) Create(ctx context.Context, db bun.IDB, news *newsdb.News) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, news)
	}
	news.ID = 1
	return nil
}

var _ newsdb.Repository = (*FakeNewsRepo)(nil)

// ------------------------
// Fake Player Store
// ------------------------

type FakePlayerStore struct {
	mu      sync.Mutex
	players map[int64]*playerdb.Player

	UpdateInjuryDesignationFunc func(ctx context.Context, db bun.IDB, id int64, designation *string, at time.Time) error
}

func NewFakePlayerStore(players ...playerdb.Player) *FakePlayerStore {
	f := &FakePlayerStore{players: map[int64]*playerdb.Player{}}
	for i := range players {
		p := players[i]
		f.players[p.ID] = &p
	}
	return f
}

func (f *FakePlayerStore) GetByID(ctx context.Context, db bun.IDB, id int64) (*playerdb.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.players[id]
	if !ok {
		return nil, playerdb.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (f *FakePlayerStore) UpdateInjuryDesignation(ctx context.Context, db bun.IDB, id int64, designation *string, at time.Time) error {
	if f.UpdateInjuryDesignationFunc != nil {
		if err := f.UpdateInjuryDesignationFunc(ctx, db, id, designation, at); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.players[id]
	if !ok {
		return playerdb.ErrNotFound
	}
	p.InjuryDesignation = designation
	p.UpdatedAt = &at
	return nil
}

func (f *FakePlayerStore) Designation(id int64) *string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.players[id]; ok {
		return p.InjuryDesignation
	}
	return nil
}

var _ PlayerStore = (*FakePlayerStore)(nil)

// ------------------------
// Fake Event Bus
// ------------------------

type FakeEventBus struct {
	mu     sync.Mutex
	Topics []string
}

func (f *FakeEventBus) Publish(ctx context.Context, topic string, msg *message.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Topics = append(f.Topics, topic)
	return nil
}

func (f *FakeEventBus) Subscribe(ctx context.Context, topic string, handler func(ctx context.Context, msg *message.Message) error) error {
	return nil
}

func (f *FakeEventBus) Close() error { return nil }

// ------------------------
// Fake Transaction Runner
// ------------------------

// rollbackRunner records whether the unit of work committed. The tx handle
// passed on is the zero bun.Tx, which fakes ignore.
type rollbackRunner struct {
	commits   int
	rollbacks int
}

func (r *rollbackRunner) RunInTx(ctx context.Context, _ *sql.TxOptions, fn func(ctx context.Context, tx bun.Tx) error) error {
	if err := fn(ctx, bun.Tx{}); err != nil {
		r.rollbacks++
		return err
	}
	r.commits++
	return nil
}
