package parsers

import (
	"bytes"
	"encoding/json"
	"fmt"

	playerdomain "github.com/Black-And-White-Club/fantasy-league/app/modules/player/domain"
)

// JSONParser reads {"jugadores": [...]} documents or a bare array of candidates.
// Keys match case-insensitively.
type JSONParser struct{}

// NewJSONParser creates a new JSON parser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

type batchRequest struct {
	Players []playerdomain.PlayerCandidate `json:"jugadores"`
}

func (p *JSONParser) Parse(data []byte) ([]playerdomain.PlayerCandidate, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	trimmed := bytes.TrimSpace(data)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var players []playerdomain.PlayerCandidate
		if err := json.Unmarshal(trimmed, &players); err != nil {
			return nil, fmt.Errorf("invalid JSON roster: %w", err)
		}
		return players, nil
	}

	var req *batchRequest
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return nil, fmt.Errorf("invalid JSON roster: %w", err)
	}
	if req == nil {
		return nil, nil
	}
	return req.Players, nil
}
