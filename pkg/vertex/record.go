package vertex

import "github.com/go-gl/mathgl/mgl32"

// White is the color every generator writes unless told otherwise.
var White = mgl32.Vec3{1, 1, 1}

// Record is one corner of one triangle.
type Record struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// NewRecord builds a record from its parts.
func NewRecord(pos, color, normal mgl32.Vec3, u, v float32) Record {
	return Record{Position: pos, Color: color, Normal: normal, UV: mgl32.Vec2{u, v}}
}

func (r Record) appendTo(dst []float32) []float32 {
	return append(dst,
		r.Position[0], r.Position[1], r.Position[2],
		r.Color[0], r.Color[1], r.Color[2],
		r.Normal[0], r.Normal[1], r.Normal[2],
		r.UV[0], r.UV[1],
	)
}

func recordFrom(src []float32) Record {
	return Record{
		Position: mgl32.Vec3{src[positionOffset], src[positionOffset+1], src[positionOffset+2]},
		Color:    mgl32.Vec3{src[colorOffset], src[colorOffset+1], src[colorOffset+2]},
		Normal:   mgl32.Vec3{src[normalOffset], src[normalOffset+1], src[normalOffset+2]},
		UV:       mgl32.Vec2{src[uvOffset], src[uvOffset+1]},
	}
}
