package vertex

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrPartialTriangle is returned when a float slice does not hold a whole
// number of triangles.
var ErrPartialTriangle = errors.New("vertex data is not a whole number of triangles")

// Buffer is an ordered list of records stored as flat floats. The zero
// value is an empty buffer ready for use.
type Buffer struct {
	data []float32
}

// NewBuffer returns an empty buffer with room for n records.
func NewBuffer(n int) Buffer {
	return Buffer{data: make([]float32, 0, n*Stride)}
}

// FromFloats wraps a copy of interleaved float data.
func FromFloats(data []float32) (Buffer, error) {
	if len(data)%(Stride*RecordsPerTriangle) != 0 {
		return Buffer{}, fmt.Errorf("%w: %d floats", ErrPartialTriangle, len(data))
	}
	b := Buffer{data: make([]float32, len(data))}
	copy(b.data, data)
	return b, nil
}

// Append adds one record.
func (b *Buffer) Append(r Record) {
	b.data = r.appendTo(b.data)
}

// AppendTriangle adds three records in order.
func (b *Buffer) AppendTriangle(r1, r2, r3 Record) {
	b.data = r1.appendTo(b.data)
	b.data = r2.appendTo(b.data)
	b.data = r3.appendTo(b.data)
}

// Len returns the number of records.
func (b Buffer) Len() int {
	return len(b.data) / Stride
}

// TriangleCount returns the number of complete triangles.
func (b Buffer) TriangleCount() int {
	return b.Len() / RecordsPerTriangle
}

// Record returns record i. It panics when i is out of range.
func (b Buffer) Record(i int) Record {
	return recordFrom(b.data[i*Stride : (i+1)*Stride])
}

// Triangle returns the three records of triangle i.
func (b Buffer) Triangle(i int) [3]Record {
	base := i * RecordsPerTriangle
	return [3]Record{b.Record(base), b.Record(base + 1), b.Record(base + 2)}
}

// Records decodes every record.
func (b Buffer) Records() []Record {
	out := make([]Record, b.Len())
	for i := range out {
		out[i] = b.Record(i)
	}
	return out
}

// Floats returns a copy of the interleaved data.
func (b Buffer) Floats() []float32 {
	out := make([]float32, len(b.data))
	copy(out, b.data)
	return out
}

// Bytes returns the data as little-endian IEEE 754 floats, StrideBytes per
// record with no padding.
func (b Buffer) Bytes() []byte {
	out := make([]byte, len(b.data)*FloatSize)
	for i, f := range b.data {
		binary.LittleEndian.PutUint32(out[i*FloatSize:], math.Float32bits(f))
	}
	return out
}

// Validate checks that the buffer holds whole triangles.
func (b Buffer) Validate() error {
	if len(b.data)%(Stride*RecordsPerTriangle) != 0 {
		return fmt.Errorf("%w: %d records", ErrPartialTriangle, b.Len())
	}
	return nil
}

// Equal reports whether both buffers hold bit-identical data.
func (b Buffer) Equal(other Buffer) bool {
	if len(b.data) != len(other.data) {
		return false
	}
	for i := range b.data {
		if math.Float32bits(b.data[i]) != math.Float32bits(other.data[i]) {
			return false
		}
	}
	return true
}

// Concat joins buffers in order into a new buffer.
func Concat(bufs ...Buffer) Buffer {
	n := 0
	for _, b := range bufs {
		n += len(b.data)
	}
	out := Buffer{data: make([]float32, 0, n)}
	for _, b := range bufs {
		out.data = append(out.data, b.data...)
	}
	return out
}

// Freeze returns a view whose capacity equals its length, so appending to
// the view never writes into storage shared with b.
func (b Buffer) Freeze() Buffer {
	return Buffer{data: b.data[:len(b.data):len(b.data)]}
}

// Clone returns a buffer with its own copy of the data.
func (b Buffer) Clone() Buffer {
	return Buffer{data: b.Floats()}
}

// IsEmpty reports whether the buffer holds no records.
func (b Buffer) IsEmpty() bool {
	return len(b.data) == 0
}
