package main

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

// TileToLonLat returns the WGS84 coordinate of the tile's top-left corner on
// the web mercator grid: longitude is linear in the column, latitude is the
// inverse projection of a linear function of the row.
func TileToLonLat(x, y uint32, z maptile.Zoom) orb.Point {
	n := math.Exp2(float64(z))
	lon := float64(x)/n*360.0 - 180.0
	latRad := math.Atan(math.Sinh(math.Pi * (1.0 - 2.0*float64(y)/n)))
	return orb.Point{lon, latRad * 180.0 / math.Pi}
}

// TileCenter returns the camera center for a tile. The corner latitudes are
// averaged in mercator space and projected back, not averaged in degrees:
// the projection is non-linear, so a naive mean would drift the camera off
// the tile bounds.
func TileCenter(x, y uint32, z maptile.Zoom) orb.Point {
	nw := TileToLonLat(x, y, z)
	se := TileToLonLat(x+1, y+1, z)

	mercNw := math.Log(math.Tan(math.Pi/4.0 + nw[1]*math.Pi/360.0))
	mercSe := math.Log(math.Tan(math.Pi/4.0 + se[1]*math.Pi/360.0))
	avgMerc := (mercNw + mercSe) / 2.0
	lat := math.Atan(math.Exp(avgMerc))*360.0/math.Pi - 90.0

	return orb.Point{(nw[0] + se[0]) / 2.0, lat}
}
