package inflate

// clcidx is the permutation RFC 1951 §3.2.7 mandates for the order in which
// code-length-alphabet code lengths appear in a dynamic block's header.
var clcidx = [19]int{16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15}

// lengthBase and lengthExtraBits give the base length and extra-bit count
// for length symbols 257..285 (indexed 0..28). The table is a step-every-4
// ramp starting at base 3, per RFC 1951 §3.2.5, with symbol 285 (index 28)
// as the single special case: 0 extra bits, exact length 258.
var lengthBase = [29]uint32{
	3, 4, 5, 6, 7, 8, 9, 10,
	11, 13, 15, 17, 19, 23, 27, 31,
	35, 43, 51, 59, 67, 83, 99, 115,
	131, 163, 195, 227, 258,
}

var lengthExtraBits = [29]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1, 2, 2, 2, 2,
	3, 3, 3, 3, 4, 4, 4, 4,
	5, 5, 5, 5, 0,
}

// distBase and distExtraBits give the base distance and extra-bit count for
// distance symbols 0..29, a step-every-2 ramp starting at base 1.
var distBase = [30]uint32{
	1, 2, 3, 4, 5, 7, 9, 13,
	17, 25, 33, 49, 65, 97, 129, 193,
	257, 385, 513, 769, 1025, 1537, 2049, 3073,
	4097, 6145, 8193, 12289, 16385, 24577,
}

var distExtraBits = [30]int{
	0, 0, 0, 0, 1, 1, 2, 2,
	3, 3, 4, 4, 5, 5, 6, 6,
	7, 7, 8, 8, 9, 9, 10, 10,
	11, 11, 12, 12, 13, 13,
}

// fixedLitLenTable and fixedDistTable are the RFC 1951 §3.2.6 fixed trees
// used by BTYPE=1 blocks, built once at package init and shared read-only by
// every decode — no decode ever mutates them.
var fixedLitLenTable huffmanTable
var fixedDistTable huffmanTable

func init() {
	var lengths [288]int
	for i := 0; i <= 143; i++ {
		lengths[i] = 8
	}
	for i := 144; i <= 255; i++ {
		lengths[i] = 9
	}
	for i := 256; i <= 279; i++ {
		lengths[i] = 7
	}
	for i := 280; i <= 287; i++ {
		lengths[i] = 8
	}
	buildTree(lengths[:], 288, &fixedLitLenTable)

	var distLengths [32]int
	for i := range distLengths {
		distLengths[i] = 5
	}
	buildTree(distLengths[:], 32, &fixedDistTable)
}
