package main

import (
	"github.com/paulmach/orb/maptile"
)

// Partition one worker's share of the tile pyramid. Ownership is a pure
// function of the tile coordinates, never a materialized list: for every zoom
// a worker owns the rows y with y % NumWorkers == WorkerID.
type Partition struct {
	WorkerID   int
	NumWorkers int
	MaxZoom    int
}

// NewPartition builds the partition for one worker. A worker count below 1
// is coerced to 1.
func NewPartition(workerID, numWorkers, maxZoom int) Partition {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return Partition{
		WorkerID:   workerID,
		NumWorkers: numWorkers,
		MaxZoom:    maxZoom,
	}
}

// Owner reports which worker renders a tile in row y.
func (p Partition) Owner(y uint32) int {
	return int(y % uint32(p.NumWorkers))
}

// Tiles streams the partition in render order: zoom ascending, column
// ascending, then the worker's row stripe ascending. At low zoom levels a
// worker whose id is beyond the row count simply yields nothing there.
func (p Partition) Tiles() <-chan maptile.Tile {
	ch := make(chan maptile.Tile, 64)
	go func() {
		defer close(ch)
		for z := 0; z <= p.MaxZoom; z++ {
			n := uint32(1) << uint(z)
			for x := uint32(0); x < n; x++ {
				for y := uint32(p.WorkerID); y < n; y += uint32(p.NumWorkers) {
					ch <- maptile.New(x, y, maptile.Zoom(z))
				}
			}
		}
	}()
	return ch
}

// CountAtZoom tiles this worker owns at one zoom level.
func (p Partition) CountAtZoom(z int) int64 {
	n := int64(1) << uint(z)
	rows := (n - int64(p.WorkerID) + int64(p.NumWorkers) - 1) / int64(p.NumWorkers)
	if rows < 0 {
		rows = 0
	}
	return n * rows
}

// Count tiles this worker owns across the whole pyramid.
func (p Partition) Count() int64 {
	var total int64
	for z := 0; z <= p.MaxZoom; z++ {
		total += p.CountAtZoom(z)
	}
	return total
}
