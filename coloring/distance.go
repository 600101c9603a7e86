package coloring

// Hamming returns the number of vertices where a and b differ.
// Only the common prefix is compared; callers pass equal-length colorings.
func Hamming(a, b Coloring) int {
	var (
		n = len(a)
		d int
		i int
	)
	if len(b) < n {
		n = len(b)
	}
	for i = 0; i < n; i++ {
		if a[i] != b[i] {
			d++
		}
	}

	return d
}

// Similarity returns 1 − Hamming(a,b)/len(a): the fraction of vertices
// that carry the same label. An empty coloring is fully similar to itself.
func Similarity(a, b Coloring) float64 {
	if len(a) == 0 {
		return 1
	}

	return 1 - float64(Hamming(a, b))/float64(len(a))
}
