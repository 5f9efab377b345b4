package spk

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTestKernel assembles a minimal, valid little-endian DAF/SPK
// buffer in memory with one type-2 segment for each of the given
// (target,center) pairs, each carrying a single Chebyshev record
// (degree 0, i.e. constant position) so tests can assert exact values.
type testSegSpec struct {
	target, center int
	startET, endET float64
	pos            [3]float64
}

func buildTestKernel(t *testing.T, specs []testSegSpec) []byte {
	t.Helper()
	bo := binary.LittleEndian

	const nd, ni = 2, 6
	summarySize := nd*8 + ni*4

	// Build segment data blocks first so we know their sizes.
	type builtSeg struct {
		spec       testSegSpec
		dataOffset int64
		dataSize   int64
		data       []byte
	}
	var segs []builtSeg
	// Data area starts right after file record (1024) + one summary record (1024).
	cursor := int64(fileRecordSize + summaryRecordSize)
	for _, s := range specs {
		degreePlus1 := 1 // constant polynomial: only c[0] matters
		rsize := 2 + 3*degreePlus1
		record := make([]float64, rsize)
		mid := (s.startET + s.endET) / 2
		radius := (s.endET - s.startET) / 2
		record[0] = mid
		record[1] = radius
		record[2] = s.pos[0] // X c0
		record[3] = s.pos[1] // Y c0
		record[4] = s.pos[2] // Z c0

		dir := []float64{s.startET, s.endET - s.startET, float64(rsize), 1}

		buf := make([]byte, (len(record)+len(dir))*8)
		for i, v := range record {
			bo.PutUint64(buf[i*8:i*8+8], math.Float64bits(v))
		}
		off := len(record) * 8
		for i, v := range dir {
			bo.PutUint64(buf[off+i*8:off+i*8+8], math.Float64bits(v))
		}

		segs = append(segs, builtSeg{spec: s, dataOffset: cursor, dataSize: int64(len(buf)), data: buf})
		cursor += int64(len(buf))
	}

	total := cursor
	out := make([]byte, total)

	// File record.
	bo.PutUint32(out[8:12], uint32(nd))
	bo.PutUint32(out[12:16], uint32(ni))
	bo.PutUint32(out[256:260], 2) // FWARD points to record 2 (the summary record)
	bo.PutUint32(out[260:264], 2) // BWARD

	// Summary record (record number 2, i.e. byte offset 1024).
	sumStart := int64(fileRecordSize)
	bo.PutUint64(out[sumStart:sumStart+8], math.Float64bits(0)) // next = 0 (end of chain)
	bo.PutUint64(out[sumStart+8:sumStart+16], math.Float64bits(0))
	bo.PutUint64(out[sumStart+16:sumStart+24], math.Float64bits(float64(len(segs))))

	body := out[sumStart+24:]
	for i, bs := range segs {
		entry := body[i*summarySize : (i+1)*summarySize]
		bo.PutUint64(entry[0:8], math.Float64bits(bs.spec.startET))
		bo.PutUint64(entry[8:16], math.Float64bits(bs.spec.endET))
		ints := entry[16:]
		beginAddr := bs.dataOffset/8 + 1
		endAddr := (bs.dataOffset+bs.dataSize)/8

		bo.PutUint32(ints[0:4], uint32(bs.spec.target))
		bo.PutUint32(ints[4:8], uint32(bs.spec.center))
		bo.PutUint32(ints[8:12], 1) // frame J2000
		bo.PutUint32(ints[12:16], 2) // data type 2
		bo.PutUint32(ints[16:20], uint32(beginAddr))
		bo.PutUint32(ints[20:24], uint32(endAddr))
	}

	// Copy segment data blocks into place.
	for _, bs := range segs {
		copy(out[bs.dataOffset:bs.dataOffset+bs.dataSize], bs.data)
	}

	return out
}

func TestNewKernelParsesSegments(t *testing.T) {
	buf := buildTestKernel(t, []testSegSpec{
		{target: BodyMoon, center: BodyEMB, startET: -1000, endET: 1000, pos: [3]float64{1, 2, 3}},
		{target: BodyEarth, center: BodyEMB, startET: -1000, endET: 1000, pos: [3]float64{0.1, 0.2, 0.3}},
	})

	k, err := NewKernel(buf)
	require.NoError(t, err)

	segs := k.Segments(BodyMoon, BodyEMB)
	require.Len(t, segs, 1)
	assert.Equal(t, -1000.0, segs[0].StartET)
}

func TestStateDirectSegment(t *testing.T) {
	buf := buildTestKernel(t, []testSegSpec{
		{target: BodyMoon, center: BodyEarth, startET: -1000, endET: 1000, pos: [3]float64{5, 6, 7}},
	})
	k, err := NewKernel(buf)
	require.NoError(t, err)

	sv, err := k.State(BodyMoon, BodyEarth, 0)
	require.NoError(t, err)
	assert.InDelta(t, 5, sv.Position.X, 1e-9)
	assert.InDelta(t, 6, sv.Position.Y, 1e-9)
	assert.InDelta(t, 7, sv.Position.Z, 1e-9)
}

func TestStateChainingMoonRelativeToEarth(t *testing.T) {
	buf := buildTestKernel(t, []testSegSpec{
		{target: BodyMoon, center: BodyEMB, startET: -1000, endET: 1000, pos: [3]float64{10, 0, 0}},
		{target: BodyEarth, center: BodyEMB, startET: -1000, endET: 1000, pos: [3]float64{-0.01, 0, 0}},
	})
	k, err := NewKernel(buf)
	require.NoError(t, err)

	moonRelEarth, err := k.State(BodyMoon, BodyEarth, 0)
	require.NoError(t, err)
	assert.InDelta(t, 10.01, moonRelEarth.Position.X, 1e-9)

	earthRelMoon, err := k.State(BodyEarth, BodyMoon, 0)
	require.NoError(t, err)
	assert.InDelta(t, -10.01, earthRelMoon.Position.X, 1e-9)
}

func TestStateOutOfRange(t *testing.T) {
	buf := buildTestKernel(t, []testSegSpec{
		{target: BodyMoon, center: BodyEarth, startET: -1000, endET: 1000, pos: [3]float64{1, 1, 1}},
	})
	k, err := NewKernel(buf)
	require.NoError(t, err)

	_, err = k.State(BodyMoon, BodyEarth, 5000)
	var oor *ErrOutOfRange
	assert.ErrorAs(t, err, &oor)
}

func TestStateNoSegmentPath(t *testing.T) {
	buf := buildTestKernel(t, []testSegSpec{
		{target: BodyMoon, center: BodyEarth, startET: -1000, endET: 1000, pos: [3]float64{1, 1, 1}},
	})
	k, err := NewKernel(buf)
	require.NoError(t, err)

	_, err = k.State(999, 888, 0)
	var nsp *ErrNoSegmentPath
	assert.ErrorAs(t, err, &nsp)
}

func TestNewKernelDetectsBigEndian(t *testing.T) {
	buf := buildTestKernel(t, []testSegSpec{
		{target: BodyMoon, center: BodyEarth, startET: -1000, endET: 1000, pos: [3]float64{1, 1, 1}},
	})
	// A well-formed little-endian buffer parses as little-endian.
	_, err := NewKernel(buf)
	require.NoError(t, err)

	// A file record whose ND is written big-endian reads out of [1,100]
	// little-endian, so detection falls through to big-endian.
	fileRecord := make([]byte, fileRecordSize)
	binary.BigEndian.PutUint32(fileRecord[8:12], 2)
	o, err := detectOrder(fileRecord)
	require.NoError(t, err)
	assert.Equal(t, binary.BigEndian, o.bo)
}
