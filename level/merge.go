package level

import "sort"

// Run is a maximal horizontal sequence of contiguous Platform cells on one row.
type Run struct {
	StartX int
	Y      int
	Length int
}

func (r Run) EndX() int {
	return r.StartX + r.Length - 1
}

func (r Run) Contains(c Cell) bool {
	return c.Y == r.Y && c.X >= r.StartX && c.X <= r.EndX()
}

// MergePlatformRuns collapses the Platform tiles into one run per maximal
// contiguous block on each row. Duplicate coordinates count once and Spikes
// are ignored. Runs are ordered by row, then by starting column.
func MergePlatformRuns(tiles []Tile) []Run {
	rows := make(map[int][]int)
	seen := make(map[Cell]struct{}, len(tiles))
	for _, t := range tiles {
		if t.Kind != Platform {
			continue
		}
		c := t.Cell()
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		rows[c.Y] = append(rows[c.Y], c.X)
	}

	ys := make([]int, 0, len(rows))
	for y := range rows {
		ys = append(ys, y)
	}
	sort.Ints(ys)

	var runs []Run
	for _, y := range ys {
		xs := rows[y]
		sort.Ints(xs)

		start, prev := xs[0], xs[0]
		for _, x := range xs[1:] {
			if x == prev+1 {
				prev = x
				continue
			}
			runs = append(runs, Run{StartX: start, Y: y, Length: prev - start + 1})
			start, prev = x, x
		}
		runs = append(runs, Run{StartX: start, Y: y, Length: prev - start + 1})
	}

	return runs
}
