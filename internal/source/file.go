package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"supergo/internal/state"
)

// fileSource implements Source for a JSON catalogue document on disk.
type fileSource struct {
	path   string
	logger zerolog.Logger
}

// NewFileSource creates a data source reading the catalogue from a JSON
// file.
func NewFileSource(path string, logger zerolog.Logger) Source {
	return &fileSource{
		path:   path,
		logger: logger.With().Str("component", "file-source").Logger(),
	}
}

func (f *fileSource) FetchInitialData(ctx context.Context) (*state.InitialData, error) {
	f.logger.Info().Str("path", f.path).Msg("loading initial data file")

	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read initial data file %s: %w", f.path, err)
	}

	var data state.InitialData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode initial data file %s: %w", f.path, err)
	}

	f.logger.Info().
		Str("path", f.path).
		Int("products", len(data.Products)).
		Msg("initial data file loaded")
	return &data, nil
}
