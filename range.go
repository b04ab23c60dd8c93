package prettylist

import "fmt"

// Range selects the rows a render includes. Bounds follow slice semantics:
// negative values count from the end, out-of-bounds values clamp, and the
// stop bound is exclusive. The zero Range selects every row.
type Range struct {
	start, stop       int
	hasStart, hasStop bool
	step              int // 0 means 1 unless stepSet
	stepSet           bool
	single            bool
}

// All selects every row.
func All() Range { return Range{} }

// Index selects the single row at i. An index outside the rows selects
// nothing.
func Index(i int) Range { return Range{start: i, hasStart: true, single: true} }

// Span selects rows [start, stop).
func Span(start, stop int) Range {
	return Range{start: start, stop: stop, hasStart: true, hasStop: true}
}

// From selects rows from start to the end.
func From(start int) Range { return Range{start: start, hasStart: true} }

// Until selects rows from the beginning up to stop.
func Until(stop int) Range { return Range{stop: stop, hasStop: true} }

// Every returns a copy of r that takes every step-th row. A negative step
// walks backwards; its default bounds are then the last and first rows. Every
// has no effect on an Index range.
func (r Range) Every(step int) Range {
	r.step = step
	r.stepSet = true
	return r
}

// String describes r in slice notation.
func (r Range) String() string {
	if r.single {
		return fmt.Sprintf("[%d]", r.start)
	}
	s := "["
	if r.hasStart {
		s += fmt.Sprint(r.start)
	}
	s += ":"
	if r.hasStop {
		s += fmt.Sprint(r.stop)
	}
	if r.stepSet {
		s += fmt.Sprintf(":%d", r.step)
	}
	return s + "]"
}

// indices returns the positions r selects from n rows.
func (r Range) indices(n int) ([]int, error) {
	if r.single {
		i := r.start
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return nil, nil
		}
		return []int{i}, nil
	}

	step := 1
	if r.stepSet {
		step = r.step
	}
	if step == 0 {
		return nil, fmt.Errorf("%w: range %s has a zero step", ErrInvalidConfiguration, r)
	}

	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}
	clamp := func(v int) int {
		if v < 0 {
			v += n
			if v < lower {
				v = lower
			}
		} else if v > upper {
			v = upper
		}
		return v
	}

	start, stop := lower, upper
	if step < 0 {
		start, stop = upper, lower
	}
	if r.hasStart {
		start = clamp(r.start)
	}
	if r.hasStop {
		stop = clamp(r.stop)
	}

	var out []int
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, i)
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, i)
		}
	}
	return out, nil
}
