package spk

import (
	"fmt"
)

const fileRecordSize = 1024
const summaryRecordSize = 1024

// SpkKernel owns the underlying byte buffer and a read-only
// (target,center) -> segment-list index. It is immutable once built
// and safe to share by reference across concurrent queries (spec.md
// §5): every read method takes the buffer as a slice and never
// mutates kernel state.
type SpkKernel struct {
	buf     []byte
	order   order
	nd, ni  int32
	groups  map[[2]int][]SpkSegment
}

// NewKernel parses a DAF/SPK byte buffer per spec.md §4.3: detects
// endianness from ND, reads NI and the FWARD/BWARD/FREE summary-record
// pointers from the 1024-byte file record, then walks the
// singly-linked list of summary records starting at FWARD, extracting
// every segment summary into the (target,center) index.
func NewKernel(buf []byte) (*SpkKernel, error) {
	if len(buf) < fileRecordSize {
		return nil, ErrKernelParse("file shorter than one file record")
	}
	o, err := detectOrder(buf)
	if err != nil {
		return nil, err
	}
	nd := o.i32(buf[8:12])
	ni := o.i32(buf[12:16])

	// FWARD/BWARD/FREE are record-number pointers at byte offsets
	// 256/260/264 into the file record (spec.md §4.3). Only FWARD is
	// needed to walk the summary-record chain.
	fward := o.i32(buf[256:260])

	k := &SpkKernel{
		buf:    buf,
		order:  o,
		nd:     nd,
		ni:     ni,
		groups: make(map[[2]int][]SpkSegment),
	}

	summarySize := int(nd)*8 + int(ni)*4
	if summarySize <= 0 {
		return nil, ErrKernelParse("invalid ND/NI summary size")
	}

	record := int64(fward)
	seen := map[int64]bool{}
	for record != 0 {
		if seen[record] {
			return nil, ErrKernelParse("summary-record chain contains a cycle")
		}
		seen[record] = true

		start := (record - 1) * summaryRecordSize
		if start < 0 || start+summaryRecordSize > int64(len(buf)) {
			return nil, ErrKernelParse("summary record out of file bounds")
		}
		rec := buf[start : start+summaryRecordSize]

		next := o.f64(rec[0:8])
		nSummaries := int(o.f64(rec[16:24]))
		if nSummaries < 0 {
			return nil, ErrKernelParse("negative summary count")
		}

		body := rec[24:]
		for i := 0; i < nSummaries; i++ {
			off := i * summarySize
			if off+summarySize > len(body) {
				return nil, ErrKernelParse("summary entry overruns record")
			}
			entry := body[off : off+summarySize]
			seg, err := k.parseSummary(entry)
			if err != nil {
				return nil, err
			}
			key := [2]int{seg.Target, seg.Center}
			k.groups[key] = append(k.groups[key], seg)
		}

		record = int64(next)
	}

	return k, nil
}

// parseSummary decodes one SPK summary entry: ND doubles (startET,
// endET, for SPK ND=2) followed by NI 32-bit integers (target, center,
// frame, dataType, beginAddr, endAddr, for SPK NI=6).
func (k *SpkKernel) parseSummary(entry []byte) (SpkSegment, error) {
	if k.nd < 2 || k.ni < 6 {
		return SpkSegment{}, ErrKernelParse("unexpected ND/NI for an SPK summary")
	}
	startET := k.order.f64(entry[0:8])
	endET := k.order.f64(entry[8:16])
	if startET >= endET {
		return SpkSegment{}, ErrKernelParse("segment startET >= endET")
	}

	intBase := int(k.nd) * 8
	ints := entry[intBase:]
	target := int(k.order.i32(ints[0:4]))
	center := int(k.order.i32(ints[4:8]))
	frame := int(k.order.i32(ints[8:12]))
	dataType := int(k.order.i32(ints[12:16]))
	beginAddr := int64(k.order.i32(ints[16:20]))
	endAddr := int64(k.order.i32(ints[20:24]))

	if dataType != 2 && dataType != 3 {
		return SpkSegment{}, ErrKernelParse(fmt.Sprintf("unsupported SPK data type %d (only 2 and 3 are supported)", dataType))
	}

	byteOffset := (beginAddr - 1) * 8
	byteSize := (endAddr - beginAddr + 1) * 8
	if byteOffset < 0 || byteSize <= 0 || byteOffset+byteSize > int64(len(k.buf)) {
		return SpkSegment{}, ErrKernelParse("segment data address out of file bounds")
	}

	return SpkSegment{
		Target:     target,
		Center:     center,
		Frame:      frame,
		DataType:   dataType,
		StartET:    startET,
		EndET:      endET,
		ByteOffset: byteOffset,
		ByteSize:   byteSize,
	}, nil
}

// Segments returns the segments directly covering (target,center),
// without chaining. Used for diagnostics (verify-kernels).
func (k *SpkKernel) Segments(target, center int) []SpkSegment {
	return k.groups[[2]int{target, center}]
}

// SegmentGroups exposes the full (target,center) index, for
// diagnostics only.
func (k *SpkKernel) SegmentGroups() map[[2]int][]SpkSegment {
	return k.groups
}

func (k *SpkKernel) directSegmentFor(target, center int, et float64) (SpkSegment, bool) {
	segs := k.groups[[2]int{target, center}]
	for _, s := range segs {
		if et >= s.StartET && et <= s.EndET {
			return s, true
		}
	}
	return SpkSegment{}, false
}

// hasGroup reports whether a direct segment group exists for
// (target,center), regardless of time coverage.
func (k *SpkKernel) hasGroup(target, center int) bool {
	_, ok := k.groups[[2]int{target, center}]
	return ok
}
