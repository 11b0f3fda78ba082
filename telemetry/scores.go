// Package telemetry persists high scores and logs finished runs.
package telemetry

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// HighScores tracks the best score per difficulty across sessions.
type HighScores struct {
	Easy     int32 `json:"easy"`
	Hardcore int32 `json:"hardcore"`
}

// Record ratchets the score for a difficulty. Returns true when the
// score improved.
func (h *HighScores) Record(hardcore bool, score int32) bool {
	if hardcore {
		if score > h.Hardcore {
			h.Hardcore = score
			return true
		}
		return false
	}
	if score > h.Easy {
		h.Easy = score
		return true
	}
	return false
}

// Best returns the stored score for a difficulty.
func (h *HighScores) Best(hardcore bool) int32 {
	if hardcore {
		return h.Hardcore
	}
	return h.Easy
}

// LoadHighScores reads scores from a JSON file. A missing file is not
// an error; a fresh table is returned so first runs start clean.
func LoadHighScores(path string) (*HighScores, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &HighScores{}, nil
		}
		return nil, fmt.Errorf("reading high scores: %w", err)
	}

	var h HighScores
	if err := json.Unmarshal(data, &h); err != nil {
		slog.Warn("high score file unreadable, starting fresh", "path", path, "error", err)
		return &HighScores{}, nil
	}
	return &h, nil
}

// Save writes the scores as JSON.
func (h *HighScores) Save(path string) error {
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling high scores: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing high scores: %w", err)
	}
	return nil
}
