package inflate

// maxDescriptorSymbols is HLIT's max (288, since HLIT = readBits(5, 257)
// spans 257..288) plus HDIST's max (32): the most code lengths a dynamic
// block's descriptor can ever name.
const maxDescriptorSymbols = 288 + 32

// readStored handles a BTYPE=0 block: align to a byte boundary, read the
// LEN/NLEN length pair, verify they complement each other, and copy LEN raw
// bytes from input to output.
func (d *decoder) readStored() error {
	d.r.alignToByte()

	lenLo, err := d.r.readByte()
	if err != nil {
		return err
	}
	lenHi, err := d.r.readByte()
	if err != nil {
		return err
	}
	nlenLo, err := d.r.readByte()
	if err != nil {
		return err
	}
	nlenHi, err := d.r.readByte()
	if err != nil {
		return err
	}

	length := int(lenLo) | int(lenHi)<<8
	nlen := int(nlenLo) | int(nlenHi)<<8
	if length != (^nlen)&0xFFFF {
		return dataErrorf("stored block length %d does not complement %d", length, nlen)
	}

	if d.wpos+length > len(d.dest) {
		return dataErrorf("output buffer too small for stored block")
	}
	for i := 0; i < length; i++ {
		b, err := d.r.readByte()
		if err != nil {
			return err
		}
		d.dest[d.wpos] = b
		d.wpos++
	}
	return nil
}

// readDynamicTrees parses a BTYPE=2 block's tree descriptor per RFC 1951
// §3.2.7: HLIT/HDIST/HCLEN, the code-length alphabet's own lengths (read in
// clcidx order), and from that alphabet the HLIT+HDIST code lengths for the
// literal/length and distance trees, including the 16/17/18 run-length
// repeat symbols. The resulting trees are built into d.lt and d.dt.
func (d *decoder) readDynamicTrees() error {
	hlit, err := d.r.readBits(5, 257)
	if err != nil {
		return err
	}
	hdist, err := d.r.readBits(5, 1)
	if err != nil {
		return err
	}
	hclen, err := d.r.readBits(4, 4)
	if err != nil {
		return err
	}

	var clLengths [19]int
	for i := 0; i < int(hclen); i++ {
		v, err := d.r.readBits(3, 0)
		if err != nil {
			return err
		}
		clLengths[clcidx[i]] = int(v)
	}

	var clTable huffmanTable
	buildTree(clLengths[:], 19, &clTable)

	target := int(hlit) + int(hdist)
	var lengths [maxDescriptorSymbols]int
	n := 0
	prev := 0
	for n < target {
		sym, err := decodeSymbol(d.r, &clTable)
		if err != nil {
			return err
		}
		switch {
		case sym < 16:
			lengths[n] = sym
			prev = sym
			n++
		case sym == 16:
			if n == 0 {
				return dataErrorf("repeat code 16 with no previous length")
			}
			rep, err := d.r.readBits(2, 3)
			if err != nil {
				return err
			}
			if n+int(rep) > target {
				return dataErrorf("code length descriptor overflows HLIT+HDIST")
			}
			for i := uint32(0); i < rep; i++ {
				lengths[n] = prev
				n++
			}
		case sym == 17:
			rep, err := d.r.readBits(3, 3)
			if err != nil {
				return err
			}
			if n+int(rep) > target {
				return dataErrorf("code length descriptor overflows HLIT+HDIST")
			}
			for i := uint32(0); i < rep; i++ {
				lengths[n] = 0
				n++
			}
			prev = 0
		case sym == 18:
			rep, err := d.r.readBits(7, 11)
			if err != nil {
				return err
			}
			if n+int(rep) > target {
				return dataErrorf("code length descriptor overflows HLIT+HDIST")
			}
			for i := uint32(0); i < rep; i++ {
				lengths[n] = 0
				n++
			}
			prev = 0
		default:
			return dataErrorf("invalid code-length symbol %d", sym)
		}
	}

	buildTree(lengths[:hlit], int(hlit), &d.lt)
	buildTree(lengths[hlit:hlit+hdist], int(hdist), &d.dt)
	return nil
}

// expandBlock runs the literal/length decode loop shared by fixed and
// dynamic Huffman blocks: literals are written directly, length/distance
// pairs drive a back-reference copy, and symbol 256 ends the block.
func (d *decoder) expandBlock(lt, dt *huffmanTable) error {
	for {
		sym, err := decodeSymbol(d.r, lt)
		if err != nil {
			return err
		}

		switch {
		case sym < 256:
			if d.wpos >= len(d.dest) {
				return dataErrorf("output buffer too small")
			}
			d.dest[d.wpos] = byte(sym)
			d.wpos++
		case sym == 256:
			return nil
		case sym <= 285:
			i := sym - 257
			length, err := d.r.readBits(lengthExtraBits[i], lengthBase[i])
			if err != nil {
				return err
			}

			dsym, err := decodeSymbol(d.r, dt)
			if err != nil {
				return err
			}
			if dsym > 29 {
				return dataErrorf("invalid distance symbol %d", dsym)
			}
			dist, err := d.r.readBits(distExtraBits[dsym], distBase[dsym])
			if err != nil {
				return err
			}

			if err := d.copyMatch(int(length), int(dist)); err != nil {
				return err
			}
		default:
			return dataErrorf("reserved literal/length symbol %d", sym)
		}
	}
}

// copyMatch performs the LZ77 back-copy for a decoded (length, dist) pair.
// The copy is byte-wise and advances the write cursor between reads so that
// dist < length overlaps replicate the bytes this same call is writing, as
// RFC 1951 requires.
func (d *decoder) copyMatch(length, dist int) error {
	if dist < 1 || dist > d.wpos {
		return dataErrorf("distance %d exceeds %d bytes written", dist, d.wpos)
	}
	if d.wpos+length > len(d.dest) {
		return dataErrorf("output buffer too small for back-reference")
	}
	src := d.wpos - dist
	for i := 0; i < length; i++ {
		d.dest[d.wpos] = d.dest[src]
		d.wpos++
		src++
	}
	return nil
}
