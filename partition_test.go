package main

import (
	"testing"

	"github.com/paulmach/orb/maptile"
)

func TestPartitionCoverage(t *testing.T) {
	// the union over all workers is the full pyramid, with no tile owned
	// twice and the owner matching the row stripe rule
	for _, workers := range []int{1, 2, 3, 5, 8} {
		for maxZoom := 0; maxZoom <= 3; maxZoom++ {
			seen := make(map[maptile.Tile]int)
			for id := 0; id < workers; id++ {
				for tile := range NewPartition(id, workers, maxZoom).Tiles() {
					if prev, ok := seen[tile]; ok {
						t.Fatalf("workers=%d maxZoom=%d: tile %v owned by both %d and %d",
							workers, maxZoom, tile, prev, id)
					}
					seen[tile] = id
				}
			}
			if int64(len(seen)) != pyramidSize(maxZoom) {
				t.Fatalf("workers=%d maxZoom=%d: covered %d tiles, want %d",
					workers, maxZoom, len(seen), pyramidSize(maxZoom))
			}
			for z := 0; z <= maxZoom; z++ {
				n := uint32(1) << uint(z)
				for x := uint32(0); x < n; x++ {
					for y := uint32(0); y < n; y++ {
						tile := maptile.New(x, y, maptile.Zoom(z))
						owner, ok := seen[tile]
						if !ok {
							t.Fatalf("workers=%d maxZoom=%d: tile %v has no owner", workers, maxZoom, tile)
						}
						if owner != int(y)%workers {
							t.Fatalf("tile %v owned by %d, want %d", tile, owner, int(y)%workers)
						}
					}
				}
			}
		}
	}
}

func TestPartitionOrder(t *testing.T) {
	// zoom ascending, then column ascending, then the row stripe ascending
	var tiles []maptile.Tile
	for tile := range NewPartition(1, 2, 2).Tiles() {
		tiles = append(tiles, tile)
	}
	for i := 1; i < len(tiles); i++ {
		a, b := tiles[i-1], tiles[i]
		ok := a.Z < b.Z ||
			(a.Z == b.Z && a.X < b.X) ||
			(a.Z == b.Z && a.X == b.X && a.Y < b.Y)
		if !ok {
			t.Fatalf("tiles out of order: %v before %v", a, b)
		}
	}
}

func TestPartitionIdleWorker(t *testing.T) {
	// a worker id beyond the row count of a zoom level owns nothing there
	p := NewPartition(3, 4, 0)
	if n := p.Count(); n != 0 {
		t.Fatalf("worker 3 of 4 at maxZoom 0 owns %d tiles, want 0", n)
	}

	p = NewPartition(1, 2, 1)
	if n := p.CountAtZoom(0); n != 0 {
		t.Fatalf("worker 1 of 2 owns %d tiles at zoom 0, want 0", n)
	}
	if n := p.CountAtZoom(1); n != 2 {
		t.Fatalf("worker 1 of 2 owns %d tiles at zoom 1, want 2", n)
	}
}

func TestPartitionCount(t *testing.T) {
	for _, workers := range []int{1, 2, 4} {
		for id := 0; id < workers; id++ {
			p := NewPartition(id, workers, 3)
			var streamed int64
			for range p.Tiles() {
				streamed++
			}
			if streamed != p.Count() {
				t.Fatalf("worker %d of %d: streamed %d tiles, Count() says %d",
					id, workers, streamed, p.Count())
			}
		}
	}
}

func TestPartitionWorkerCoercion(t *testing.T) {
	if p := NewPartition(0, 0, 1); p.NumWorkers != 1 {
		t.Fatalf("NumWorkers = %d, want 1", p.NumWorkers)
	}
	if p := NewPartition(0, -3, 1); p.NumWorkers != 1 {
		t.Fatalf("NumWorkers = %d, want 1", p.NumWorkers)
	}
}
