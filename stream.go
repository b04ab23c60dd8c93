package prettylist

import "iter"

// AddRows appends every row produced by seq. It stops at the first row
// AddRow rejects and returns that error; rows appended before it are kept.
func (t *Table) AddRows(seq iter.Seq[[]any]) error {
	var addErr error
	seq(func(row []any) bool {
		if err := t.AddRow(row...); err != nil {
			addErr = err
			return false
		}
		return true
	})
	return addErr
}

// AddRowsChan appends rows received from ch until it is closed.
// It is a thin wrapper around [Table.AddRows]. On error the channel is not
// drained.
func (t *Table) AddRowsChan(ch <-chan []any) error {
	return t.AddRows(chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
