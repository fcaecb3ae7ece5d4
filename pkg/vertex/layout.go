// Package vertex defines the interleaved vertex record shared by the shape
// generators and every upload backend.
//
// A record is 11 tightly packed float32 values:
//
//	offset  0  position xyz
//	offset 12  color    rgb
//	offset 24  normal   xyz
//	offset 36  uv
//
// Every three consecutive records form one triangle.
package vertex

const (
	// Stride is the number of floats in one record.
	Stride = 11
	// FloatSize is the size in bytes of one component.
	FloatSize = 4
	// StrideBytes is the size in bytes of one record.
	StrideBytes = Stride * FloatSize
	// RecordsPerTriangle is fixed; there is no index buffer.
	RecordsPerTriangle = 3
)

// Attribute describes one field of the record as seen by a GPU binding.
type Attribute struct {
	Name     string
	Location uint32 // shader input location
	Size     int32  // component count
	Offset   int    // byte offset inside the record
}

// FloatOffset returns the attribute offset counted in floats.
func (a Attribute) FloatOffset() int {
	return a.Offset / FloatSize
}

const (
	positionOffset = 0
	colorOffset    = 3
	normalOffset   = 6
	uvOffset       = 9
)

var layout = []Attribute{
	{Name: "position", Location: 0, Size: 3, Offset: positionOffset * FloatSize},
	{Name: "color", Location: 1, Size: 3, Offset: colorOffset * FloatSize},
	{Name: "normal", Location: 2, Size: 3, Offset: normalOffset * FloatSize},
	{Name: "uv", Location: 3, Size: 2, Offset: uvOffset * FloatSize},
}

// Layout returns the attribute table in location order. The returned slice
// is a copy.
func Layout() []Attribute {
	out := make([]Attribute, len(layout))
	copy(out, layout)
	return out
}
