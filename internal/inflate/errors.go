package inflate

import "fmt"

// DataError reports a malformed or truncated DEFLATE stream: a reserved
// block type, a corrupt stored-block length pair, an out-of-range Huffman
// symbol, a back-reference reaching before the start of output, an output
// buffer too small for the decompressed data, or input exhausted before the
// final block was seen.
type DataError struct {
	msg string
}

func (e *DataError) Error() string { return e.msg }

func dataErrorf(format string, args ...interface{}) error {
	return &DataError{msg: fmt.Sprintf("inflate: "+format, args...)}
}
