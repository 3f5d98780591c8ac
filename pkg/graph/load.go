package graph

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// CastFile is the on-disk JSON cast format.
type CastFile struct {
	Characters    []Character    `json:"characters"`
	Relationships []Relationship `json:"relationships"`
}

// LoadCast reads a cast file. Relationships without an id get one
// minted; strength is clamped into 1..10 so a sloppy file still renders.
func LoadCast(path string) (CastFile, error) {
	var cf CastFile
	data, err := os.ReadFile(path)
	if err != nil {
		return cf, fmt.Errorf("load cast: %w", err)
	}
	if err := json.Unmarshal(data, &cf); err != nil {
		return cf, fmt.Errorf("load cast %s: %w", path, err)
	}
	for i := range cf.Relationships {
		r := &cf.Relationships[i]
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		if r.Strength < 1 {
			r.Strength = 1
		}
		if r.Strength > 10 {
			r.Strength = 10
		}
	}
	return cf, nil
}
