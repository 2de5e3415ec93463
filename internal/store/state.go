package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/tidwall/pretty"
)

// ModelRecord is one persisted fit result.
type ModelRecord struct {
	Slope        float64   `json:"slope"`
	Intercept    float64   `json:"intercept"`
	R2           float64   `json:"r2"`
	RMSE         float64   `json:"rmse"`
	Observations int       `json:"observations"`
	Trend        string    `json:"trend"`
	RunID        string    `json:"run_id"`
	FittedAt     time.Time `json:"fitted_at"`
}

// State is the on-disk registry of the latest fitted model per ticker.
type State struct {
	Models    map[string]ModelRecord `json:"models"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// LoadState reads the registry from a JSON file. Returns an empty registry if
// the file doesn't exist.
func LoadState(filePath string) (*State, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &State{Models: map[string]ModelRecord{}}, nil
		}
		return nil, err
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	if state.Models == nil {
		state.Models = map[string]ModelRecord{}
	}
	return &state, nil
}

// SaveState writes the registry as pretty-printed JSON.
func SaveState(filePath string, state *State) error {
	state.UpdatedAt = time.Now()
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return err
	}
	return os.WriteFile(filePath, pretty.Pretty(data), 0644)
}
