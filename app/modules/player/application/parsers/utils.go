package parsers

import (
	"fmt"
	"strconv"
	"strings"

	playerdomain "github.com/Black-And-White-Club/fantasy-league/app/modules/player/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Accepted header names per column, compared after normalization.
var (
	idColumn       = []string{"id"}
	nameColumn     = []string{"nombre", "name"}
	positionColumn = []string{"posicion", "posición", "position"}
	teamColumn     = []string{"equipoNFLId", "team_id", "teamId", "nfl_team_id"}
	imageColumn    = []string{"imagenUrl", "image_url", "imageUrl"}
)

// normalizeHeader lowercases and drops spaces, underscores and hyphens.
func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
}

// findColumn returns the index of the first header cell matching any of the
// possible names, or -1.
func findColumn(header []string, possibleNames []string) int {
	for i, col := range header {
		colNorm := normalizeHeader(col)
		for _, name := range possibleNames {
			if colNorm == normalizeHeader(name) {
				return i
			}
		}
	}
	return -1
}

type columnLayout struct {
	id, name, position, team, image int
}

func detectLayout(header []string) (columnLayout, error) {
	layout := columnLayout{
		id:       findColumn(header, idColumn),
		name:     findColumn(header, nameColumn),
		position: findColumn(header, positionColumn),
		team:     findColumn(header, teamColumn),
		image:    findColumn(header, imageColumn),
	}

	var missing []string
	if layout.id < 0 {
		missing = append(missing, "id")
	}
	if layout.name < 0 {
		missing = append(missing, "nombre")
	}
	if layout.position < 0 {
		missing = append(missing, "posicion")
	}
	if layout.team < 0 {
		missing = append(missing, "equipoNFLId")
	}
	if len(missing) > 0 {
		return layout, fmt.Errorf("header row is missing columns: %s", strings.Join(missing, ", "))
	}
	return layout, nil
}

// candidatesFromRows converts a header row plus data rows into candidates.
// Blank rows are skipped.
func candidatesFromRows(rows [][]string) ([]playerdomain.PlayerCandidate, error) {
	headerIdx := -1
	for i, row := range rows {
		if !isBlankRow(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, nil
	}

	layout, err := detectLayout(rows[headerIdx])
	if err != nil {
		return nil, err
	}

	var candidates []playerdomain.PlayerCandidate
	for i := headerIdx + 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}
		line := i + 1

		id, err := intCell(row, layout.id)
		if err != nil {
			return nil, fmt.Errorf("invalid id at line %d: %w", line, err)
		}
		teamID, err := intCell(row, layout.team)
		if err != nil {
			return nil, fmt.Errorf("invalid equipoNFLId at line %d: %w", line, err)
		}

		candidate := playerdomain.PlayerCandidate{
			ID:        id,
			Name:      cell(row, layout.name),
			Position:  cell(row, layout.position),
			NFLTeamID: teamID,
		}
		if layout.image >= 0 {
			if url := cell(row, layout.image); url != "" {
				candidate.ImageURL = &url
			}
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// intCell parses an integer cell. A blank cell is zero.
func intCell(row []string, idx int) (int, error) {
	val := cell(row, idx)
	if val == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("non-numeric value %q", val)
	}
	return n, nil
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
