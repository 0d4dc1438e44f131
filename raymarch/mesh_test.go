package raymarch

import (
	"testing"
	"unsafe"

	"github.com/oliverbestmann/raymarch/glm"
	"github.com/stretchr/testify/assert"
)

func TestFullScreenQuad(t *testing.T) {
	quad := FullScreenQuad()

	assert.Equal(t, TopologyTriangleFan, quad.Topology)
	assert.Len(t, quad.Vertices, 4)

	for _, v := range quad.Vertices {
		x, y, z := v.Position.XYZ()
		assert.InDelta(t, 1.0, abs(x), 1e-6)
		assert.InDelta(t, 1.0, abs(y), 1e-6)
		assert.Zero(t, z)
	}

	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3}, quad.TriangleIndices())
}

func TestFullScreenQuadIsFresh(t *testing.T) {
	quad := FullScreenQuad()
	quad.Vertices[0].Position = glm.Vec3f{42, 42, 42}

	assert.Equal(t, glm.Vec3f{-1, -1, 0}, FullScreenQuad().Vertices[0].Position)
}

func TestVertexLayout(t *testing.T) {
	assert.EqualValues(t, 12, unsafe.Sizeof(Vertex{}))
}

func TestFanIndices(t *testing.T) {
	assert.Nil(t, FanIndices(0))
	assert.Nil(t, FanIndices(2))
	assert.Equal(t, []uint16{0, 1, 2}, FanIndices(3))
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3, 0, 3, 4}, FanIndices(5))
}

func TestTriangleListIndices(t *testing.T) {
	mesh := Mesh{
		Vertices: make([]Vertex, 7),
		Topology: TopologyTriangleList,
	}

	assert.Equal(t, []uint16{0, 1, 2, 3, 4, 5}, mesh.TriangleIndices())
}

func TestTopologyString(t *testing.T) {
	assert.Equal(t, "TriangleFan", TopologyTriangleFan.String())
	assert.Equal(t, "Topology(?)", Topology(9).String())
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}

	return v
}
