package shape

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// fanTriangles returns how many triangles capFan emits.
func fanTriangles(sides int, seam bool) int {
	if seam {
		return sides + 1
	}
	return sides
}

// capFan emits a flat disc in the XZ plane around center. UVs are the raw
// cosine and sine of each rim angle, so they span [-1, 1]; the center is
// mapped to (0, 0).
func (e *emitter) capFan(center mgl32.Vec3, radius float32, sides int, normal mgl32.Vec3, seam bool) {
	n := fanTriangles(sides, seam)
	for i := 0; i < n; i++ {
		cur := 2 * math32.Pi * float32(i) / float32(sides)
		nxt := 2 * math32.Pi * float32(i+1) / float32(sides)

		curCos, curSin := math32.Cos(cur), math32.Sin(cur)
		nxtCos, nxtSin := math32.Cos(nxt), math32.Sin(nxt)

		e.add(center, normal, 0, 0)
		e.add(mgl32.Vec3{center[0] + radius*curCos, center[1], center[2] + radius*curSin}, normal, curCos, curSin)
		e.add(mgl32.Vec3{center[0] + radius*nxtCos, center[1], center[2] + radius*nxtSin}, normal, nxtCos, nxtSin)
	}
}
