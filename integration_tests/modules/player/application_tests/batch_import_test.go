package playerintegrationtests

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Black-And-White-Club/fantasy-league/app/eventbus"
	playerdomain "github.com/Black-And-White-Club/fantasy-league/app/modules/player/domain"
	playerdb "github.com/Black-And-White-Club/fantasy-league/app/modules/player/infrastructure/repositories"
	"github.com/Black-And-White-Club/fantasy-league/integration_tests/testutils"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func archivedPath(name string) string {
	return filepath.Join(testEnv.StorageRoot, "processed", testEnv.Config.Storage.BatchSubfolder, name)
}

func TestImportBatch_CommitsWholeRoster(t *testing.T) {
	deps := SetupTestPlayerService(t)
	teamIDs := deps.SeedTeams(t, 3)
	roster := deps.Gen.GenerateRoster(teamIDs, 25, 1)

	var (
		mu       sync.Mutex
		payloads []eventbus.PlayersBatchImportedPayload
	)
	require.NoError(t, deps.EventBus.Subscribe(deps.Ctx, eventbus.PlayersBatchImportedTopic, func(ctx context.Context, msg *message.Message) error {
		var p eventbus.PlayersBatchImportedPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return err
		}
		mu.Lock()
		payloads = append(payloads, p)
		mu.Unlock()
		return nil
	}))

	outcome := deps.Service.ImportBatch(deps.Ctx, "roster.json", testutils.RosterJSON(roster))

	require.True(t, outcome.Success, "%+v", outcome.Errors)
	assert.Equal(t, playerdomain.StateSucceeded, outcome.State)
	assert.Equal(t, 25, outcome.TotalProcessed)
	assert.Equal(t, 25, outcome.TotalSucceeded)
	assert.Len(t, outcome.CreatedPlayers, 25)
	assert.Equal(t, 25, countPlayers(t, deps))
	for _, created := range outcome.CreatedPlayers {
		assert.NotEqual(t, "N/A", created.NFLTeamName)
	}

	assert.Contains(t, outcome.ArchivedAs, "_Exito_roster")
	_, err := os.Stat(archivedPath(outcome.ArchivedAs))
	assert.NoError(t, err)

	require.NoError(t, testutils.WaitFor(5*time.Second, 50*time.Millisecond, func() error {
		mu.Lock()
		defer mu.Unlock()
		if len(payloads) == 0 {
			return assert.AnError
		}
		return nil
	}))
	mu.Lock()
	assert.Equal(t, 25, payloads[0].TotalCreated)
	assert.Equal(t, outcome.ImportID, payloads[0].ImportID)
	mu.Unlock()
}

func TestImportBatch_ValidationRejectsWholeFile(t *testing.T) {
	deps := SetupTestPlayerService(t)
	teamIDs := deps.SeedTeams(t, 2)
	roster := deps.Gen.GenerateRoster(teamIDs, 10, 1)
	roster[9].NFLTeamID = 9999

	outcome := deps.Service.ImportBatch(deps.Ctx, "roster.json", testutils.RosterJSON(roster))

	assert.False(t, outcome.Success)
	assert.Equal(t, playerdomain.StateRejectedValidation, outcome.State)
	require.Len(t, outcome.Errors, 1)
	assert.Equal(t, playerdomain.CategoryNotFound, outcome.Errors[0].Category)
	assert.Zero(t, countPlayers(t, deps))
	assert.Contains(t, outcome.ArchivedAs, "_Fallo_roster")
}

func TestImportBatch_DatabaseFailureRollsBack(t *testing.T) {
	deps := SetupTestPlayerService(t)
	teamIDs := deps.SeedTeams(t, 2)
	roster := deps.Gen.GenerateRoster(teamIDs, 8, 1)
	// Passes validation but exceeds the column width, so the insert of the
	// last candidate fails after the earlier ones succeeded in the same tx.
	roster[7].Name = strings.Repeat("x", 150)

	outcome := deps.Service.ImportBatch(deps.Ctx, "roster.json", testutils.RosterJSON(roster))

	assert.False(t, outcome.Success)
	assert.Equal(t, playerdomain.StateFailed, outcome.State)
	assert.Zero(t, countPlayers(t, deps))
	assert.NotEmpty(t, outcome.ArchivedAs)
}

func TestImportBatch_CrossBatchDuplicate(t *testing.T) {
	deps := SetupTestPlayerService(t)
	teamIDs := deps.SeedTeams(t, 1)
	first := deps.Gen.GenerateRoster(teamIDs, 3, 1)

	outcome := deps.Service.ImportBatch(deps.Ctx, "first.json", testutils.RosterJSON(first))
	require.True(t, outcome.Success, "%+v", outcome.Errors)

	second := deps.Gen.GenerateRoster(teamIDs, 2, 100)
	second[1].Name = "  " + strings.ToUpper(first[0].Name) + " "

	outcome = deps.Service.ImportBatch(deps.Ctx, "second.json", testutils.RosterJSON(second))

	assert.Equal(t, playerdomain.StateRejectedValidation, outcome.State)
	require.Len(t, outcome.Errors, 1)
	assert.Equal(t, playerdomain.CategoryDuplicate, outcome.Errors[0].Category)
	assert.Equal(t, 3, countPlayers(t, deps))
}

func TestImportBatch_InactivePlayerDoesNotBlock(t *testing.T) {
	deps := SetupTestPlayerService(t)
	teamIDs := deps.SeedTeams(t, 1)
	roster := deps.Gen.GenerateRoster(teamIDs, 1, 1)

	outcome := deps.Service.ImportBatch(deps.Ctx, "first.json", testutils.RosterJSON(roster))
	require.True(t, outcome.Success)
	require.NoError(t, deps.Service.DeactivatePlayer(deps.Ctx, outcome.CreatedPlayers[0].ID))

	outcome = deps.Service.ImportBatch(deps.Ctx, "again.json", testutils.RosterJSON(roster))

	assert.True(t, outcome.Success, "%+v", outcome.Errors)
	assert.Equal(t, 2, countPlayers(t, deps))
}

func TestImportBatch_RoundTrip(t *testing.T) {
	deps := SetupTestPlayerService(t)
	teamIDs := deps.SeedTeams(t, 2)
	roster := deps.Gen.GenerateRoster(teamIDs, 6, 1)

	outcome := deps.Service.ImportBatch(deps.Ctx, "roster.json", testutils.RosterJSON(roster))
	require.True(t, outcome.Success, "%+v", outcome.Errors)

	type key struct {
		name   string
		teamID int64
	}
	stored := map[key]playerdb.Player{}
	for _, teamID := range teamIDs {
		players, err := deps.Players.GetByTeam(deps.Ctx, nil, teamID)
		require.NoError(t, err)
		for _, p := range players {
			stored[key{p.Name, p.NFLTeamID}] = p
		}
	}

	require.Len(t, stored, len(roster))
	for _, c := range roster {
		p, ok := stored[key{c.Name, int64(c.NFLTeamID)}]
		require.True(t, ok, c.Name)
		assert.Equal(t, strings.ToUpper(c.Position), p.Position)
		assert.Equal(t, int64(c.NFLTeamID), p.NFLTeamID)
		assert.Equal(t, playerdomain.StatusActive, p.Status)
		assert.Equal(t, c.ImageURL, p.ImageURL)
		assert.Equal(t, p.ImageURL, p.ThumbnailURL)
	}
}

func TestImportBatch_RejectedFilesAreArchived(t *testing.T) {
	deps := SetupTestPlayerService(t)

	tests := []struct {
		name     string
		fileName string
		content  []byte
		state    playerdomain.BatchState
	}{
		{name: "empty", fileName: "empty.json", content: nil, state: playerdomain.StateRejectedEmpty},
		{name: "malformed", fileName: "broken.json", content: []byte(`{"jugadores": [`), state: playerdomain.StateRejectedParse},
		{name: "no players", fileName: "none.json", content: []byte(`{"jugadores": []}`), state: playerdomain.StateRejectedEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := deps.Service.ImportBatch(deps.Ctx, tt.fileName, tt.content)

			assert.Equal(t, tt.state, outcome.State)
			assert.Contains(t, outcome.ArchivedAs, "_Fallo_")
			_, err := os.Stat(archivedPath(outcome.ArchivedAs))
			assert.NoError(t, err)
		})
	}
}
