package playerservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Black-And-White-Club/fantasy-league/app/eventbus"
	playerdomain "github.com/Black-And-White-Club/fantasy-league/app/modules/player/domain"
	playerdb "github.com/Black-And-White-Club/fantasy-league/app/modules/player/infrastructure/repositories"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/database"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/observability"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Player Repo
// ------------------------

type FakePlayerRepo struct {
	mu    sync.Mutex
	trace []string

	GetAllFunc                    func(ctx context.Context, db bun.IDB) ([]playerdb.Player, error)
	GetByIDFunc                   func(ctx context.Context, db bun.IDB, id int64) (*playerdb.Player, error)
	GetByTeamFunc                 func(ctx context.Context, db bun.IDB, teamID int64) ([]playerdb.Player, error)
	GetActivePlayersByTeamFunc    func(ctx context.Context, db bun.IDB, teamID int64) ([]playerdb.Player, error)
	GetByPositionFunc             func(ctx context.Context, db bun.IDB, position string) ([]playerdb.Player, error)
	ExistsActiveByNameAndTeamFunc func(ctx context.Context, db bun.IDB, name string, teamID int64, excludeID int64) (bool, error)
	CreateFunc                    func(ctx context.Context, db bun.IDB, player *playerdb.Player) error
	UpdateFunc                    func(ctx context.Context, db bun.IDB, player *playerdb.Player) error
	SetStatusFunc                 func(ctx context.Context, db bun.IDB, id int64, status string, at time.Time) error
	UpdateInjuryDesignationFunc   func(ctx context.Context, db bun.IDB, id int64, designation *string, at time.Time) error
	DeleteFunc                    func(ctx context.Context, db bun.IDB, id int64) error
}

func NewFakePlayerRepo() *FakePlayerRepo {
	return &FakePlayerRepo{trace: []string{}}
}

func (f *FakePlayerRepo) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

func (f *FakePlayerRepo) GetAll(ctx context.Context, db bun.IDB) ([]playerdb.Player, error) {
	f.record("GetAll")
	if f.GetAllFunc != nil {
		return f.GetAllFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakePlayerRepo) GetByID(ctx context.Context, db bun.IDB, id int64) (*playerdb.Player, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	return nil, playerdb.ErrNotFound
}

func (f *FakePlayerRepo) GetByTeam(ctx context.Context, db bun.IDB, teamID int64) ([]playerdb.Player, error) {
	f.record("GetByTeam")
	if f.GetByTeamFunc != nil {
		return f.GetByTeamFunc(ctx, db, teamID)
	}
	return nil, nil
}

func (f *FakePlayerRepo) GetActivePlayersByTeam(ctx context.Context, db bun.IDB, teamID int64) ([]playerdb.Player, error) {
	f.record(fmt.Sprintf("GetActivePlayersByTeam(%d)", teamID))
	if f.GetActivePlayersByTeamFunc != nil {
		return f.GetActivePlayersByTeamFunc(ctx, db, teamID)
	}
	return nil, nil
}

func (f *FakePlayerRepo) GetByPosition(ctx context.Context, db bun.IDB, position string) ([]playerdb.Player, error) {
	f.record("GetByPosition")
	if f.GetByPositionFunc != nil {
		return f.GetByPositionFunc(ctx, db, position)
	}
	return nil, nil
}

func (f *FakePlayerRepo) ExistsActiveByNameAndTeam(ctx context.Context, db bun.IDB, name string, teamID int64, excludeID int64) (bool, error) {
	f.record("ExistsActiveByNameAndTeam")
	if f.ExistsActiveByNameAndTeamFunc != nil {
		return f.ExistsActiveByNameAndTeamFunc(ctx, db, name, teamID, excludeID)
	}
	return false, nil
}

func (f *FakePlayerRepo) Create(ctx context.Context, db bun.IDB, player *playerdb.Player) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, player)
	}
	player.ID = 1
	return nil
}

func (f *FakePlayerRepo) Update(ctx context.Context, db bun.IDB, player *playerdb.Player) error {
	f.record("Update")
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, db, player)
	}
	return nil
}

func (f *FakePlayerRepo) SetStatus(ctx context.Context, db bun.IDB, id int64, status string, at time.Time) error {
	f.record("SetStatus")
	if f.SetStatusFunc != nil {
		return f.SetStatusFunc(ctx, db, id, status, at)
	}
	return nil
}

func (f *FakePlayerRepo) UpdateInjuryDesignation(ctx context.Context, db bun.IDB, id int64, designation *string, at time.Time) error {
	f.record("UpdateInjuryDesignation")
	if f.UpdateInjuryDesignationFunc != nil {
		return f.UpdateInjuryDesignationFunc(ctx, db, id, designation, at)
	}
	return nil
}

func (f *FakePlayerRepo) Delete(ctx context.Context, db bun.IDB, id int64) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, db, id)
	}
	return nil
}

func (f *FakePlayerRepo) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ playerdb.Repository = (*FakePlayerRepo)(nil)

// ------------------------
// Fake Team Lookup
// ------------------------

type FakeTeamLookup struct {
	GetAllTeamsFunc func(ctx context.Context, db bun.IDB) ([]TeamRef, error)
	GetTeamByIDFunc func(ctx context.Context, db bun.IDB, id int64) (*TeamRef, error)
}

// NewFakeTeamLookup serves a fixed catalog.
func NewFakeTeamLookup(teams ...TeamRef) *FakeTeamLookup {
	return &FakeTeamLookup{
		GetAllTeamsFunc: func(ctx context.Context, db bun.IDB) ([]TeamRef, error) {
			return slices.Clone(teams), nil
		},
		GetTeamByIDFunc: func(ctx context.Context, db bun.IDB, id int64) (*TeamRef, error) {
			for _, t := range teams {
				if t.ID == id {
					team := t
					return &team, nil
				}
			}
			return nil, ErrTeamNotFound
		},
	}
}

func (f *FakeTeamLookup) GetAllTeams(ctx context.Context, db bun.IDB) ([]TeamRef, error) {
	return f.GetAllTeamsFunc(ctx, db)
}

func (f *FakeTeamLookup) GetTeamByID(ctx context.Context, db bun.IDB, id int64) (*TeamRef, error) {
	return f.GetTeamByIDFunc(ctx, db, id)
}

var _ TeamLookup = (*FakeTeamLookup)(nil)

// ------------------------
// Fake Archive Store
// ------------------------

type FakeArchiveStore struct {
	mu    sync.Mutex
	Saved map[string][]byte

	SaveFunc func(ctx context.Context, subfolder, filename string, data []byte) error
}

func NewFakeArchiveStore() *FakeArchiveStore {
	return &FakeArchiveStore{Saved: map[string][]byte{}}
}

func (f *FakeArchiveStore) Save(ctx context.Context, subfolder, filename string, data []byte) error {
	if f.SaveFunc != nil {
		if err := f.SaveFunc(ctx, subfolder, filename, data); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key := subfolder + "/" + filename
	if _, ok := f.Saved[key]; ok {
		return ErrArtifactExists
	}
	f.Saved[key] = slices.Clone(data)
	return nil
}

func (f *FakeArchiveStore) Names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.Saved))
	for k := range f.Saved {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

var _ ArchiveStore = (*FakeArchiveStore)(nil)

// ------------------------
// Fake Event Bus
// ------------------------

type publishedEvent struct {
	Topic string
	Msg   *message.Message
}

type FakeEventBus struct {
	mu        sync.Mutex
	Published []publishedEvent

	PublishFunc func(ctx context.Context, topic string, msg *message.Message) error
}

func (f *FakeEventBus) Publish(ctx context.Context, topic string, msg *message.Message) error {
	if f.PublishFunc != nil {
		if err := f.PublishFunc(ctx, topic, msg); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Published = append(f.Published, publishedEvent{Topic: topic, Msg: msg})
	return nil
}

func (f *FakeEventBus) Subscribe(ctx context.Context, topic string, handler func(ctx context.Context, msg *message.Message) error) error {
	return nil
}

func (f *FakeEventBus) Close() error { return nil }

var _ eventbus.EventBus = (*FakeEventBus)(nil)

// ------------------------
// Fake batch metrics
// ------------------------

type fakeBatchMetrics struct {
	observability.NoOpMetrics
	outcomes []string
}

func (m *fakeBatchMetrics) RecordBatchOutcome(_ context.Context, outcome string, _ int) {
	m.outcomes = append(m.outcomes, outcome)
}

// ------------------------
// Transactional in-memory store
// ------------------------

// memoryStore keeps committed players and rolls back everything written in a
// transaction whose callback fails.
type memoryStore struct {
	mu        sync.Mutex
	players   []playerdb.Player
	nextID    int64
	creates   int
	failOnNth int
	commits   int
	rollbacks int
}

func newMemoryStore(existing ...playerdb.Player) *memoryStore {
	s := &memoryStore{nextID: 100}
	for _, p := range existing {
		s.nextID++
		p.ID = s.nextID
		s.players = append(s.players, p)
	}
	return s
}

func (s *memoryStore) RunInTx(ctx context.Context, _ *sql.TxOptions, fn func(ctx context.Context, tx bun.Tx) error) error {
	s.mu.Lock()
	snapshot := slices.Clone(s.players)
	nextID := s.nextID
	s.mu.Unlock()

	if err := fn(ctx, bun.Tx{}); err != nil {
		s.mu.Lock()
		s.players = snapshot
		s.nextID = nextID
		s.rollbacks++
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.commits++
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.players)
}

func (s *memoryStore) ByTeam(teamID int64) []playerdb.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []playerdb.Player
	for _, p := range s.players {
		if p.NFLTeamID == teamID {
			out = append(out, p)
		}
	}
	return out
}

// repo returns a FakePlayerRepo backed by the store.
func (s *memoryStore) repo() *FakePlayerRepo {
	f := NewFakePlayerRepo()
	f.CreateFunc = func(ctx context.Context, db bun.IDB, player *playerdb.Player) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.creates++
		if s.failOnNth > 0 && s.creates == s.failOnNth {
			return errors.New("insert failed: connection reset")
		}
		for _, p := range s.players {
			if p.Status == playerdomain.StatusActive && p.NFLTeamID == player.NFLTeamID &&
				strings.EqualFold(strings.TrimSpace(p.Name), strings.TrimSpace(player.Name)) {
				return fmt.Errorf("insert: %w", playerdb.ErrDuplicate)
			}
		}
		s.nextID++
		player.ID = s.nextID
		s.players = append(s.players, *player)
		return nil
	}
	f.GetActivePlayersByTeamFunc = func(ctx context.Context, db bun.IDB, teamID int64) ([]playerdb.Player, error) {
		var out []playerdb.Player
		for _, p := range s.ByTeam(teamID) {
			if p.Status == playerdomain.StatusActive {
				out = append(out, p)
			}
		}
		return out, nil
	}
	f.GetByTeamFunc = func(ctx context.Context, db bun.IDB, teamID int64) ([]playerdb.Player, error) {
		return s.ByTeam(teamID), nil
	}
	return f
}

var _ database.TxRunner = (*memoryStore)(nil)
