package engine

// byteOffsets maps rune indexes of s (as regexp2 counts them) to byte
// offsets. The table has one extra entry holding len(s) so the end of a span
// that reaches the end of s resolves too.
func byteOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}

	return append(offsets, len(s))
}
