package playerservice

import (
	"fmt"
	"strings"

	playerdomain "github.com/Black-And-White-Club/fantasy-league/app/modules/player/domain"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/validation"
)

type rosterKey struct {
	name   string
	teamID int
}

// Validate returns every error in a batch without touching any store.
//
// Id collisions come first, one entry per occurrence in order of first
// appearance. Each candidate then gets at most one more entry, from the first
// failing check: id, name, position, position code, team id, image url, team
// existence, persisted duplicate, in-batch duplicate.
func Validate(
	candidates []playerdomain.PlayerCandidate,
	existingTeamIDs map[int]struct{},
	existingPlayersByTeam map[int][]playerdomain.ExistingPlayerKey,
) []playerdomain.ValidationError {
	errs := duplicateIDErrors(candidates)

	claims := make(map[rosterKey]int, len(candidates))
	for _, c := range candidates {
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		claims[rosterKey{name: playerdomain.NameKey(c.Name), teamID: c.NFLTeamID}]++
	}

	for _, c := range candidates {
		if verr, failed := checkCandidate(c, existingTeamIDs, existingPlayersByTeam, claims); failed {
			errs = append(errs, verr)
		}
	}

	return errs
}

func duplicateIDErrors(candidates []playerdomain.PlayerCandidate) []playerdomain.ValidationError {
	counts := make(map[int]int, len(candidates))
	var order []int
	for _, c := range candidates {
		if counts[c.ID] == 0 {
			order = append(order, c.ID)
		}
		counts[c.ID]++
	}

	var errs []playerdomain.ValidationError
	for _, id := range order {
		n := counts[id]
		if n < 2 {
			continue
		}
		for _, c := range candidates {
			if c.ID != id {
				continue
			}
			errs = append(errs, newValidationError(c, playerdomain.CategoryDuplicate,
				fmt.Sprintf("El ID %d aparece %d veces en el archivo. Cada ID debe ser único", id, n)))
		}
	}
	return errs
}

func checkCandidate(
	c playerdomain.PlayerCandidate,
	existingTeamIDs map[int]struct{},
	existingPlayersByTeam map[int][]playerdomain.ExistingPlayerKey,
	claims map[rosterKey]int,
) (playerdomain.ValidationError, bool) {
	fail := func(category playerdomain.ErrorCategory, format string, args ...any) (playerdomain.ValidationError, bool) {
		return newValidationError(c, category, fmt.Sprintf(format, args...)), true
	}

	if c.ID <= 0 {
		return fail(playerdomain.CategoryValidation, "El ID debe ser un número positivo mayor a 0 (valor actual: %d)", c.ID)
	}
	if strings.TrimSpace(c.Name) == "" {
		return fail(playerdomain.CategoryValidation, "El nombre es requerido")
	}
	if strings.TrimSpace(c.Position) == "" {
		return fail(playerdomain.CategoryValidation, "La posición es requerida")
	}
	if _, ok := playerdomain.ParsePosition(c.Position); !ok {
		return fail(playerdomain.CategoryValidation, "La posición '%s' no es válida. Posiciones válidas: %s", c.Position, playerdomain.PositionList())
	}
	if c.NFLTeamID <= 0 {
		return fail(playerdomain.CategoryValidation, "El ID del equipo NFL debe ser mayor a 0")
	}
	if c.ImageURL != nil && strings.TrimSpace(*c.ImageURL) != "" && !validation.IsHTTPURL(*c.ImageURL) {
		return fail(playerdomain.CategoryValidation, "La URL de imagen '%s' no tiene un formato válido", *c.ImageURL)
	}
	if _, ok := existingTeamIDs[c.NFLTeamID]; !ok {
		return fail(playerdomain.CategoryNotFound, "El equipo NFL con ID %d no existe", c.NFLTeamID)
	}

	key := playerdomain.NameKey(c.Name)
	for _, existing := range existingPlayersByTeam[c.NFLTeamID] {
		if playerdomain.NameKey(existing.Name) == key {
			return fail(playerdomain.CategoryDuplicate,
				"Ya existe un jugador con el nombre '%s' en el equipo NFL especificado (jugador existente ID %d)", c.Name, existing.ID)
		}
	}

	if claims[rosterKey{name: key, teamID: c.NFLTeamID}] > 1 {
		return fail(playerdomain.CategoryDuplicate, "El jugador '%s' aparece duplicado en el archivo para el mismo equipo", c.Name)
	}

	return playerdomain.ValidationError{}, false
}

func newValidationError(c playerdomain.PlayerCandidate, category playerdomain.ErrorCategory, msg string) playerdomain.ValidationError {
	id := c.ID
	name := c.Name
	if strings.TrimSpace(name) == "" {
		name = playerdomain.MissingNamePlaceholder
	}
	return playerdomain.ValidationError{
		ID:       &id,
		Name:     &name,
		Message:  msg,
		Category: category,
	}
}
