// Package compass lists the 32 points of the compass with their azimuths.
package compass

import "sync"

// Step is the angle between neighbouring points, in degrees.
const Step = 360.0 / 32

// Point is one compass point.
type Point struct {
	Abbreviation string  `json:"abbreviation"`
	Azimuth      float64 `json:"azimuth"`
}

var cardinals = [4]string{"N", "E", "S", "W"}

var table = sync.OnceValue(build)

// Points returns the 32 points clockwise from north. The slice is a fresh
// copy; the underlying table is built once.
func Points() []Point {
	return append([]Point(nil), table()...)
}

// Lookup returns the point with the given abbreviation.
func Lookup(abbreviation string) (Point, bool) {
	for _, p := range table() {
		if p.Abbreviation == abbreviation {
			return p, true
		}
	}
	return Point{}, false
}

// build walks each quarter from one cardinal to the next. With side C, next
// side D and their midpoint M the quarter reads
// C, CbD, CM, MbC, M, MbD, DM, DbC.
func build() []Point {
	points := make([]Point, 0, 32)
	for i, c := range cardinals {
		d := cardinals[(i+1)%len(cardinals)]
		m := midpoint(c, d)
		for _, name := range []string{
			c, c + "b" + d, c + m, m + "b" + c,
			m, m + "b" + d, d + m, d + "b" + c,
		} {
			points = append(points, Point{
				Abbreviation: name,
				Azimuth:      float64(len(points)) * Step,
			})
		}
	}
	return points
}

// midpoint names the intercardinal between two neighbouring cardinals. North
// or south always comes first: NE, SE, SW, NW.
func midpoint(c, d string) string {
	if c == "N" || c == "S" {
		return c + d
	}
	return d + c
}
