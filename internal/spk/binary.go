// Package spk implements a reader for NAIF DAF/SPK binary ephemeris
// kernels: the file/summary-record structure, the type-2 (Chebyshev
// position) and type-3 (Chebyshev position+velocity) segment layouts,
// and the (target,center) segment chaining spec.md §4.3 describes.
//
// The byte-level plumbing here — endianness auto-detection, raw
// integer/float extraction from a fixed-size buffer — is adapted from
// the teacher's own JPL-ephemeris binary reader
// (mshafiee/jpleph/binary_reader.go), which reads a different (older,
// text-header) JPL binary layout but faces the identical problem: a
// flat little/big-endian buffer of doubles and 32-bit integers that
// must be sliced at known byte offsets.
package spk

import (
	"encoding/binary"
	"math"
)

// order is little or big endian, detected once per kernel by trying a
// known-small field (ND) both ways, exactly as the teacher's
// SetByteOrder/defaultByteOrder pair does for the DE-binary format.
type order struct {
	bo binary.ByteOrder
}

func detectOrder(fileRecord []byte) (order, error) {
	nd := int32(binary.LittleEndian.Uint32(fileRecord[8:12]))
	if nd >= 1 && nd <= 100 {
		return order{binary.LittleEndian}, nil
	}
	nd = int32(binary.BigEndian.Uint32(fileRecord[8:12]))
	if nd >= 1 && nd <= 100 {
		return order{binary.BigEndian}, nil
	}
	return order{}, ErrKernelParse("ND field out of range in both byte orders")
}

func (o order) u32(b []byte) uint32 {
	return o.bo.Uint32(b)
}

func (o order) i32(b []byte) int32 {
	return int32(o.bo.Uint32(b))
}

func (o order) f64(b []byte) float64 {
	return math.Float64frombits(o.bo.Uint64(b))
}

func (o order) f64Slice(b []byte, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = o.f64(b[i*8 : i*8+8])
	}
	return out
}
