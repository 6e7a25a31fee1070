package inflate

// decoder is the per-call mutable state threaded through a single decode:
// the bitstream reader, the caller's output buffer and write cursor, and
// the two dynamic decode tables reused across every dynamic block in the
// stream. It is created fresh for each Decode call and never reused or
// shared across goroutines.
type decoder struct {
	r    *bitReader
	dest []byte
	wpos int

	lt, dt huffmanTable
}

// Decode runs a raw DEFLATE stream (RFC 1951, no zlib/gzip framing) from
// source into dest, which must be at least as long as the decompressed
// data. It returns the prefix of dest actually written. The caller owns
// both buffers for the lifetime of the call and after it returns.
func Decode(dest, source []byte) ([]byte, error) {
	d := &decoder{
		r:    newBitReader(source),
		dest: dest,
	}

	for {
		bfinal, err := d.r.getBit()
		if err != nil {
			return nil, err
		}
		btype, err := d.r.readBits(2, 0)
		if err != nil {
			return nil, err
		}

		switch btype {
		case 0:
			err = d.readStored()
		case 1:
			err = d.expandBlock(&fixedLitLenTable, &fixedDistTable)
		case 2:
			if err = d.readDynamicTrees(); err == nil {
				err = d.expandBlock(&d.lt, &d.dt)
			}
		default:
			err = dataErrorf("reserved block type 3")
		}
		if err != nil {
			return nil, err
		}

		if bfinal == 1 {
			break
		}
	}

	return d.dest[:d.wpos], nil
}
