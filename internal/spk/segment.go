package spk

// SpkSegment describes one contiguous-time data block in a kernel.
type SpkSegment struct {
	Target, Center int
	Frame          int
	DataType       int
	StartET, EndET float64
	ByteOffset     int64 // byte offset of the segment's data within the file
	ByteSize       int64 // size in bytes of the segment's data
}

// StateVector is the position (km) and velocity (km/s) of one body
// relative to another, in the frame the kernel stores (ICRF/J2000 ~
// GCRS for SPK output).
type StateVector struct {
	Position Vec3
	Velocity Vec3
}

// Vec3 mirrors numkit.Vec3 locally so that spk does not depend on
// numkit; internal/bodies' KernelProvider converts between the two at
// its boundary.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) add(u Vec3) Vec3 { return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z} }
func (v Vec3) sub(u Vec3) Vec3 { return Vec3{v.X - u.X, v.Y - u.Y, v.Z - u.Z} }
func (v Vec3) neg() Vec3       { return Vec3{-v.X, -v.Y, -v.Z} }

func (s StateVector) add(o StateVector) StateVector {
	return StateVector{Position: s.Position.add(o.Position), Velocity: s.Velocity.add(o.Velocity)}
}
func (s StateVector) sub(o StateVector) StateVector {
	return StateVector{Position: s.Position.sub(o.Position), Velocity: s.Velocity.sub(o.Velocity)}
}
func (s StateVector) neg() StateVector {
	return StateVector{Position: s.Position.neg(), Velocity: s.Velocity.neg()}
}

// NAIF body ids referenced by this package (spec.md §4.3).
const (
	BodySSB   = 0
	BodyEMB   = 3
	BodySun   = 10
	BodyMoon  = 301
	BodyEarth = 399
)
