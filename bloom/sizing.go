package bloom

// DefaultBitsPerChunk is the classic 10-bits-per-element sizing, which lands
// the false-positive rate near 1% with ten hash functions.
const DefaultBitsPerChunk = 10

// SizeForQuery returns the bit capacity for a batch run over a query of
// queryLen bytes chunked every k bytes: bitsPerChunk bits per chunk, rounded
// down to a multiple of 8. It returns 0 when the query yields no chunks.
func SizeForQuery(queryLen, k, bitsPerChunk int) int {
	if k <= 0 || queryLen < k {
		return 0
	}
	if bitsPerChunk <= 0 {
		bitsPerChunk = DefaultBitsPerChunk
	}
	return (queryLen * bitsPerChunk / k) &^ 7
}
