package testutils

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	nflteamdb "github.com/Black-And-White-Club/fantasy-league/app/modules/nflteam/infrastructure/repositories"
	playerdomain "github.com/Black-And-White-Club/fantasy-league/app/modules/player/domain"
	"github.com/brianvoe/gofakeit/v7"
)

// TestDataGenerator provides methods to create test data for integration tests.
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a new test data generator with optional seed.
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}

	return &TestDataGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

// Seed returns the seed so failing runs can be reproduced.
func (g *TestDataGenerator) Seed() int64 { return g.seed }

// GenerateTeams returns count teams with distinct names.
func (g *TestDataGenerator) GenerateTeams(count int) []nflteamdb.Team {
	teams := make([]nflteamdb.Team, 0, count)
	seen := make(map[string]struct{}, count)
	for len(teams) < count {
		name := g.faker.Animal() + "s"
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			name = fmt.Sprintf("%s %d", name, len(teams)+1)
			key = strings.ToLower(name)
		}
		seen[key] = struct{}{}
		teams = append(teams, nflteamdb.Team{
			Name:   name,
			City:   g.faker.City(),
			Status: nflteamdb.StatusActive,
		})
	}
	return teams
}

// GenerateRoster returns count valid candidates spread over teamIDs, with
// external ids starting at firstID and names unique per team.
func (g *TestDataGenerator) GenerateRoster(teamIDs []int64, count, firstID int) []playerdomain.PlayerCandidate {
	positions := make([]string, 0, len(playerdomain.Positions))
	for _, p := range playerdomain.Positions {
		positions = append(positions, string(p))
	}

	roster := make([]playerdomain.PlayerCandidate, 0, count)
	seen := make(map[string]struct{}, count)
	for i := 0; len(roster) < count; i++ {
		teamID := teamIDs[i%len(teamIDs)]
		name := g.faker.FirstName() + " " + g.faker.LastName()
		key := fmt.Sprintf("%s|%d", strings.ToLower(name), teamID)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		c := playerdomain.PlayerCandidate{
			ID:        firstID + len(roster),
			Name:      name,
			Position:  g.faker.RandomString(positions),
			NFLTeamID: int(teamID),
		}
		if g.faker.Bool() {
			u := fmt.Sprintf("https://img.example.com/players/%d.png", c.ID)
			c.ImageURL = &u
		}
		roster = append(roster, c)
	}
	return roster
}

// RosterJSON encodes candidates as an upload body.
func RosterJSON(candidates []playerdomain.PlayerCandidate) []byte {
	data, err := json.Marshal(map[string]any{"jugadores": candidates})
	if err != nil {
		panic(err)
	}
	return data
}
