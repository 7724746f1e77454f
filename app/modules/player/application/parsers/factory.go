package parsers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	playerdomain "github.com/Black-And-White-Club/fantasy-league/app/modules/player/domain"
)

// ErrUnsupportedFormat is returned for file extensions no parser handles.
var ErrUnsupportedFormat = errors.New("unsupported roster file type")

// Parser decodes an uploaded roster into candidates.
type Parser interface {
	Parse(data []byte) ([]playerdomain.PlayerCandidate, error)
}

// ParserFactory defines the interface for creating parsers
type ParserFactory interface {
	GetParser(fileName string) (Parser, error)
}

// Factory creates the appropriate parser based on file extension.
type Factory struct{}

var _ ParserFactory = (*Factory)(nil)

// NewFactory creates a new parser factory.
func NewFactory() *Factory {
	return &Factory{}
}

// GetParser returns the parser for fileName's extension.
func (f *Factory) GetParser(fileName string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(fileName)))

	switch ext {
	case ".json":
		return NewJSONParser(), nil
	case ".csv":
		return NewCSVParser(), nil
	case ".xlsx", ".xls":
		return NewXLSXParser(), nil
	default:
		return nil, fmt.Errorf("%w: %q (must be .json, .csv or .xlsx)", ErrUnsupportedFormat, ext)
	}
}

// Supported reports whether fileName has an extension the factory can parse.
func Supported(fileName string) bool {
	_, err := NewFactory().GetParser(fileName)
	return err == nil
}
