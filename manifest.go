package main

import (
	"os"
	"time"

	json "github.com/goccy/go-json"
)

// Manifest run record written next to the output archive. The tile count is
// how callers detect an incomplete run (failed workers or skipped shards
// leave a gap against the expected pyramid size).
type Manifest struct {
	ID            string         `json:"id"`
	Style         string         `json:"style"`
	MaxZoom       int            `json:"maxZoom"`
	Format        string         `json:"format"`
	Output        string         `json:"output"`
	Workers       []WorkerStatus `json:"workers"`
	TileCount     int64          `json:"tileCount"`
	ExpectedTiles int64          `json:"expectedTiles"`
	SkippedShards []string       `json:"skippedShards,omitempty"`
	StartedAt     time.Time      `json:"startedAt"`
	FinishedAt    time.Time      `json:"finishedAt"`
}

// Complete reports whether every expected tile made it into the archive.
func (m Manifest) Complete() bool {
	return m.TileCount == m.ExpectedTiles
}

// WriteManifest saves the run record as indented json.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// pyramidSize total tiles across zoom 0..maxZoom.
func pyramidSize(maxZoom int) int64 {
	var total int64
	for z := 0; z <= maxZoom; z++ {
		n := int64(1) << uint(z)
		total += n * n
	}
	return total
}
