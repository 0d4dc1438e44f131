package raymarch

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/raymarch/pulse"
)

// Renderer draws the full screen quad with the ray marching shader into
// the current surface texture of a View.
type Renderer struct {
	view *pulse.View

	pipelineCache *pulse.PipelineCache[raymarchPipeline]
	pipeline      pulse.CachedPipeline

	bufVertices *wgpu.Buffer
	bufIndices  *wgpu.Buffer
	bufUniforms *wgpu.Buffer
	bindGroup   *wgpu.BindGroup

	indexCount uint32
	clearColor pulse.Color
}

// NewRenderer compiles the shaders and uploads the mesh. Failing to
// compile the shaders is reported before any frame is drawn.
func NewRenderer(view *pulse.View, shaders Shaders, mesh Mesh, clearColor pulse.Color) (r *Renderer, err error) {
	if err := shaders.Validate(); err != nil {
		return nil, err
	}

	r = &Renderer{
		view:       view,
		clearColor: clearColor,
	}

	defer func() {
		if err != nil {
			r.Release()
			r = nil
		}
	}()

	r.pipelineCache = pulse.NewPipelineCache[raymarchPipeline](view.Context)

	r.pipeline, err = r.pipelineCache.Get(raymarchPipeline{
		TargetFormat:   view.Format(),
		VertexSource:   shaders.Vertex,
		FragmentSource: shaders.Fragment,
	})
	if err != nil {
		return r, fmt.Errorf("get pipeline: %w", err)
	}

	r.bufVertices, err = view.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Raymarch.Vertices",
		Contents: wgpu.ToBytes(mesh.Vertices),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return r, fmt.Errorf("create vertex buffer: %w", err)
	}

	indices := mesh.TriangleIndices()
	r.indexCount = uint32(len(indices))

	if len(indices)%2 != 0 {
		// buffer sizes must be a multiple of four bytes
		indices = append(indices, 0)
	}

	r.bufIndices, err = view.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Raymarch.Indices",
		Contents: wgpu.ToBytes(indices),
		Usage:    wgpu.BufferUsageIndex,
	})
	if err != nil {
		return r, fmt.Errorf("create index buffer: %w", err)
	}

	r.bufUniforms, err = view.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Raymarch.Uniforms",
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:  uint64(unsafe.Sizeof(Uniforms{})),
	})
	if err != nil {
		return r, fmt.Errorf("create uniform buffer: %w", err)
	}

	r.bindGroup, err = view.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Raymarch.BindGroup",
		// released by the pipeline cache
		Layout: r.pipeline.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  r.bufUniforms,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		return r, fmt.Errorf("create bind group: %w", err)
	}

	slog.Info("Renderer ready",
		slog.Int("vertices", len(mesh.Vertices)),
		slog.Int("indices", int(r.indexCount)),
		slog.String("topology", mesh.Topology.String()),
	)

	return r, nil
}

// RenderFrame uploads the uniforms, draws one frame and presents it.
func (r *Renderer) RenderFrame(uniforms Uniforms) error {
	frame, err := r.view.Acquire()
	if err != nil {
		return err
	}

	defer frame.Release()

	err = r.view.WriteBuffer(r.bufUniforms, 0, pulse.AsByteSlice(&uniforms))
	if err != nil {
		return fmt.Errorf("update uniform buffer: %w", err)
	}

	if err := r.draw(&frame.Target); err != nil {
		return fmt.Errorf("draw: %w", err)
	}

	frame.Present()

	return nil
}

func (r *Renderer) draw(target *pulse.RenderTarget) error {
	encoder, err := r.view.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "Raymarch.Frame",
	})
	if err != nil {
		return err
	}

	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "RenderPassRaymarch",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       target.View,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: r.clearColor.ToWGPU(),
			},
		},
	})

	passGuard := pulse.NewReleaseGuard(pass)
	defer passGuard.Release()

	pass.SetPipeline(r.pipeline.Pipeline)
	pass.SetBindGroup(0, r.bindGroup, nil)
	pass.SetVertexBuffer(0, r.bufVertices, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(r.bufIndices, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
	pass.DrawIndexed(r.indexCount, 1, 0, 0, 0)

	if err := pass.End(); err != nil {
		return err
	}

	// must release pass before finishing the encoder
	passGuard.Release()

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		return err
	}

	defer cmdBuffer.Release()

	r.view.Submit(cmdBuffer)

	return nil
}

func (r *Renderer) Release() {
	if r.bindGroup != nil {
		r.bindGroup.Release()
		r.bindGroup = nil
	}

	for _, buf := range []**wgpu.Buffer{&r.bufUniforms, &r.bufIndices, &r.bufVertices} {
		if *buf != nil {
			(*buf).Release()
			*buf = nil
		}
	}

	if r.pipelineCache != nil {
		r.pipelineCache.Release()
		r.pipelineCache = nil
	}
}
