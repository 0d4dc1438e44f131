package raymarch

import (
	"structs"

	"github.com/oliverbestmann/raymarch/glm"
)

type Vertex struct {
	_ structs.HostLayout

	Position glm.Vec3f
}

type Topology uint8

const (
	TopologyTriangleList Topology = iota
	TopologyTriangleFan
)

func (t Topology) String() string {
	switch t {
	case TopologyTriangleList:
		return "TriangleList"
	case TopologyTriangleFan:
		return "TriangleFan"
	default:
		return "Topology(?)"
	}
}

// Mesh is static geometry. It is uploaded once and never written to again.
type Mesh struct {
	Vertices []Vertex
	Topology Topology
}

// FullScreenQuad returns the four corners of clip space as a triangle fan.
func FullScreenQuad() Mesh {
	return Mesh{
		Vertices: []Vertex{
			{Position: glm.Vec3f{-1.0, -1.0, 0.0}},
			{Position: glm.Vec3f{1.0, -1.0, 0.0}},
			{Position: glm.Vec3f{1.0, 1.0, 0.0}},
			{Position: glm.Vec3f{-1.0, 1.0, 0.0}},
		},
		Topology: TopologyTriangleFan,
	}
}

// TriangleIndices returns the mesh as an indexed triangle list, the
// only triangle topology webgpu and the fan share.
func (m Mesh) TriangleIndices() []uint16 {
	switch m.Topology {
	case TopologyTriangleFan:
		return FanIndices(len(m.Vertices))

	default:
		indices := make([]uint16, len(m.Vertices)-len(m.Vertices)%3)
		for idx := range indices {
			indices[idx] = uint16(idx)
		}

		return indices
	}
}

// FanIndices expands a triangle fan of n vertices into a triangle list.
// Every triangle shares the first vertex.
func FanIndices(n int) []uint16 {
	if n < 3 {
		return nil
	}

	indices := make([]uint16, 0, (n-2)*3)
	for idx := 1; idx < n-1; idx++ {
		indices = append(indices, 0, uint16(idx), uint16(idx+1))
	}

	return indices
}
