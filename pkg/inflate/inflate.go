// Package inflate decodes raw RFC 1951 DEFLATE streams. It has no
// knowledge of zlib, gzip, or PNG framing, no streaming API, and no
// compression side: it is a one-shot decoder from a caller-owned
// compressed buffer into a caller-owned, pre-sized output buffer.
package inflate

import (
	"github.com/quarksb/tiny-inflate/internal/inflate"
)

// DataError is returned when source does not hold a valid DEFLATE stream.
// Use errors.As to detect it regardless of the specific message.
type DataError = inflate.DataError

// Inflate decodes source, a raw DEFLATE bitstream, into dest, which must be
// at least as long as the known decompressed size. It returns the prefix of
// dest that was written; dest may be larger than needed, and bytes beyond
// the returned view are left in an implementation-defined state.
//
// On error the contents already written to dest are undefined; callers
// must not treat them as valid output.
func Inflate(dest, source []byte) ([]byte, error) {
	return inflate.Decode(dest, source)
}
