package nflteamservice

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	nflteamdb "github.com/Black-And-White-Club/fantasy-league/app/modules/nflteam/infrastructure/repositories"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func newTestService(repo nflteamdb.Repository) *NFLTeamService {
	return NewNFLTeamService(repo, slog.Default(), observability.NoOpMetrics{}, nil, nil)
}

func strPtr(s string) *string { return &s }

func TestGetTeam(t *testing.T) {
	tests := []struct {
		name        string
		setupRepo   func(*FakeTeamRepo)
		wantName    string
		wantErr     bool
		wantErrType error
	}{
		{
			name: "happy path - team found",
			setupRepo: func(f *FakeTeamRepo) {
				f.GetByIDFunc = func(ctx context.Context, db bun.IDB, id int64) (*nflteamdb.Team, error) {
					return &nflteamdb.Team{ID: id, Name: "Chiefs", City: "Kansas City", Status: nflteamdb.StatusActive}, nil
				}
			},
			wantName: "Chiefs",
		},
		{
			name:        "team not found",
			setupRepo:   func(f *FakeTeamRepo) {},
			wantErr:     true,
			wantErrType: ErrTeamNotFound,
		},
		{
			name: "database error",
			setupRepo: func(f *FakeTeamRepo) {
				f.GetByIDFunc = func(ctx context.Context, db bun.IDB, id int64) (*nflteamdb.Team, error) {
					return nil, errors.New("database connection failed")
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakeRepo := NewFakeTeamRepo()
			tt.setupRepo(fakeRepo)

			result, err := newTestService(fakeRepo).GetTeam(context.Background(), 12)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantErrType != nil {
					assert.ErrorIs(t, err, tt.wantErrType)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, result.Name)
			assert.Equal(t, int64(12), result.ID)
		})
	}
}

func TestListTeams(t *testing.T) {
	fakeRepo := NewFakeTeamRepo()
	fakeRepo.GetAllFunc = func(ctx context.Context, db bun.IDB) ([]nflteamdb.Team, error) {
		return []nflteamdb.Team{{ID: 1, Name: "Bears"}, {ID: 2, Name: "Packers"}}, nil
	}

	teams, err := newTestService(fakeRepo).ListTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Packers", teams[1].Name)
}

func TestCreateTeam(t *testing.T) {
	tests := []struct {
		name        string
		input       CreateTeamInput
		setupRepo   func(*FakeTeamRepo)
		wantErrType error
		wantTrace   []string
	}{
		{
			name:      "creates trimmed team",
			input:     CreateTeamInput{Name: "  Bills ", City: " Buffalo ", ImageURL: strPtr("https://cdn.test/bills.png")},
			setupRepo: func(f *FakeTeamRepo) {},
			wantTrace: []string{"ExistsByName", "Create"},
		},
		{
			name:        "name required",
			input:       CreateTeamInput{Name: "  ", City: "Buffalo"},
			setupRepo:   func(f *FakeTeamRepo) {},
			wantErrType: ErrNameRequired,
			wantTrace:   []string{},
		},
		{
			name:        "city too long",
			input:       CreateTeamInput{Name: "Bills", City: strings.Repeat("x", 101)},
			setupRepo:   func(f *FakeTeamRepo) {},
			wantErrType: ErrCityTooLong,
			wantTrace:   []string{},
		},
		{
			name:        "bad image url",
			input:       CreateTeamInput{Name: "Bills", City: "Buffalo", ImageURL: strPtr("ftp://cdn.test/bills.png")},
			setupRepo:   func(f *FakeTeamRepo) {},
			wantErrType: ErrInvalidImageURL,
			wantTrace:   []string{},
		},
		{
			name:  "duplicate name",
			input: CreateTeamInput{Name: "Bills", City: "Buffalo"},
			setupRepo: func(f *FakeTeamRepo) {
				f.ExistsByNameFunc = func(ctx context.Context, db bun.IDB, name string) (bool, error) {
					return true, nil
				}
			},
			wantErrType: ErrDuplicateName,
			wantTrace:   []string{"ExistsByName"},
		},
		{
			name:  "unique index race maps to duplicate",
			input: CreateTeamInput{Name: "Bills", City: "Buffalo"},
			setupRepo: func(f *FakeTeamRepo) {
				f.CreateFunc = func(ctx context.Context, db bun.IDB, team *nflteamdb.Team) error {
					return nflteamdb.ErrDuplicateName
				}
			},
			wantErrType: ErrDuplicateName,
			wantTrace:   []string{"ExistsByName", "Create"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakeRepo := NewFakeTeamRepo()
			tt.setupRepo(fakeRepo)

			info, err := newTestService(fakeRepo).CreateTeam(context.Background(), tt.input)

			assert.Equal(t, tt.wantTrace, fakeRepo.Trace())
			if tt.wantErrType != nil {
				assert.ErrorIs(t, err, tt.wantErrType)
				assert.True(t, IsDomainError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Bills", info.Name)
			assert.Equal(t, "Buffalo", info.City)
			assert.Equal(t, nflteamdb.StatusActive, info.Status)
		})
	}
}

func TestDeleteTeam(t *testing.T) {
	tests := []struct {
		name        string
		deleteErr   error
		wantErrType error
		wantInfra   bool
	}{
		{name: "deleted"},
		{name: "not found", deleteErr: nflteamdb.ErrNotFound, wantErrType: ErrTeamNotFound},
		{name: "still has players", deleteErr: nflteamdb.ErrHasPlayers, wantErrType: ErrTeamHasPlayers},
		{name: "infrastructure error", deleteErr: errors.New("conn reset"), wantInfra: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakeRepo := NewFakeTeamRepo()
			fakeRepo.DeleteFunc = func(ctx context.Context, db bun.IDB, id int64) error {
				return tt.deleteErr
			}

			err := newTestService(fakeRepo).DeleteTeam(context.Background(), 3)
			switch {
			case tt.wantErrType != nil:
				assert.ErrorIs(t, err, tt.wantErrType)
			case tt.wantInfra:
				require.Error(t, err)
				assert.False(t, IsDomainError(err))
				assert.Contains(t, err.Error(), "DeleteTeam")
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithTelemetry_RecoversPanic(t *testing.T) {
	fakeRepo := NewFakeTeamRepo()
	fakeRepo.GetAllFunc = func(ctx context.Context, db bun.IDB) ([]nflteamdb.Team, error) {
		panic("boom")
	}

	_, err := newTestService(fakeRepo).ListTeams(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic in ListTeams")
}
