package inflate

// maxCodeLen is the longest Huffman code length DEFLATE permits.
const maxCodeLen = 15

// maxLitLenSymbols covers the largest alphabet a decode table must hold:
// 288 literal/length symbols (the 286 in use plus the two reserved ones the
// fixed tree also assigns codes to). The code-length (19) and distance (32)
// alphabets are smaller and simply use a prefix of the same storage.
const maxLitLenSymbols = 288

// huffmanTable is a canonical-Huffman decode table: count[L] holds the
// number of symbols assigned a code of length L, and symbols holds every
// symbol ordered first by code length ascending then by symbol value
// ascending — the ordering buildTree produces and decodeSymbol relies on.
type huffmanTable struct {
	count   [maxCodeLen + 1]int
	symbols [maxLitLenSymbols]int
}

// buildTree turns the code length assigned to each of the first n symbols
// of lengths into the canonical-Huffman decode table described above. A
// length of 0 means the symbol is unused.
func buildTree(lengths []int, n int, table *huffmanTable) {
	for l := range table.count {
		table.count[l] = 0
	}
	for i := 0; i < n; i++ {
		table.count[lengths[i]]++
	}
	table.count[0] = 0

	var offs [maxCodeLen + 1]int
	sum := 0
	for l := 1; l <= maxCodeLen; l++ {
		offs[l] = sum
		sum += table.count[l]
	}

	for i := 0; i < n; i++ {
		l := lengths[i]
		if l == 0 {
			continue
		}
		table.symbols[offs[l]] = i
		offs[l]++
	}
}

// decodeSymbol consumes the next variable-length Huffman code from r and
// returns the symbol it encodes, per RFC 1951 §3.2.2's canonical ordering.
// Bits are read LSB-first and accumulated into code; first tracks the
// numeric value of the first code of the current length, so code-first is
// the code's index within its length group once it falls inside count[L].
func decodeSymbol(r *bitReader, table *huffmanTable) (int, error) {
	var code, first, index int
	for length := 1; length <= maxCodeLen; length++ {
		bit, err := r.getBit()
		if err != nil {
			return 0, err
		}
		code |= int(bit)

		count := table.count[length]
		if code-first < count {
			return table.symbols[index+(code-first)], nil
		}
		index += count
		first += count
		first <<= 1
		code <<= 1
	}
	return 0, dataErrorf("huffman code exceeds %d bits", maxCodeLen)
}
