package playerintegrationtests

import (
	"context"
	"testing"

	"github.com/Black-And-White-Club/fantasy-league/app/eventbus"
	"github.com/Black-And-White-Club/fantasy-league/app/modules/nflteam"
	nflteamdb "github.com/Black-And-White-Club/fantasy-league/app/modules/nflteam/infrastructure/repositories"
	"github.com/Black-And-White-Club/fantasy-league/app/modules/player"
	playerservice "github.com/Black-And-White-Club/fantasy-league/app/modules/player/application"
	playerdb "github.com/Black-And-White-Club/fantasy-league/app/modules/player/infrastructure/repositories"
	"github.com/Black-And-White-Club/fantasy-league/integration_tests/testutils"
	"github.com/stretchr/testify/require"
)

// TestDeps holds dependencies needed by individual tests.
type TestDeps struct {
	Ctx      context.Context
	Teams    nflteamdb.Repository
	Players  playerdb.Repository
	Service  playerservice.Service
	EventBus eventbus.EventBus
	Gen      *testutils.TestDataGenerator
}

// SetupTestPlayerService empties the tables and wires the player module
// against the shared database.
func SetupTestPlayerService(t *testing.T) TestDeps {
	t.Helper()
	ctx := testEnv.Ctx
	require.NoError(t, testEnv.Reset(ctx))

	bus := eventbus.NewEventBus(testEnv.Obs.Logger)
	t.Cleanup(func() { bus.Close() })

	teams := nflteam.NewModule(ctx, testEnv.Obs, testEnv.DB, nil, nil)
	players := player.NewModule(ctx, testEnv.Config, testEnv.Obs, testEnv.DB, teams.Repository, bus, nil, nil)

	gen := testutils.NewTestDataGenerator()
	t.Logf("data generator seed: %d", gen.Seed())

	return TestDeps{
		Ctx:      ctx,
		Teams:    teams.Repository,
		Players:  players.Repository,
		Service:  players.Service,
		EventBus: bus,
		Gen:      gen,
	}
}

// SeedTeams inserts count generated teams and returns their ids.
func (d TestDeps) SeedTeams(t *testing.T, count int) []int64 {
	t.Helper()
	ids := make([]int64, 0, count)
	for _, team := range d.Gen.GenerateTeams(count) {
		team := team
		require.NoError(t, d.Teams.Create(d.Ctx, nil, &team))
		ids = append(ids, team.ID)
	}
	return ids
}

func countPlayers(t *testing.T, d TestDeps) int {
	t.Helper()
	all, err := d.Players.GetAll(d.Ctx, nil)
	require.NoError(t, err)
	return len(all)
}
