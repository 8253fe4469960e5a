package ds

// Repeat returns n copies of t.
func Repeat[T any](n int, t T) []T {
	ts := make([]T, n)
	for i := range ts {
		ts[i] = t
	}
	return ts
}

func ShallowCopy[T any](ts []T) []T {
	if ts == nil {
		return nil
	}
	tsCopy := make([]T, len(ts))
	copy(tsCopy, ts)
	return tsCopy
}

// MakeChunks groups elements within a slice into smaller "chunks",
// each containing n elements. The last chunk is shorter when len(ts) is not
// a multiple of n. For example,
//
//	MakeChunks([]int{1, 2, 3, 4, 5}, 2)
//
// returns
//
//	[][]int{{1, 2}, {3, 4}, {5}}
//
// The chunks share memory with ts.
func MakeChunks[T any](ts []T, n int) [][]T {
	chunks := make([][]T, 0, len(ts)/n+1)
	for i := 0; i < len(ts); i += n {
		end := min(i+n, len(ts))
		chunks = append(chunks, ts[i:end:end])
	}
	return chunks
}
