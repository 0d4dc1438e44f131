package raymarch

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// raymarchPipeline identifies a compiled render pipeline: one per target
// format and shader source.
type raymarchPipeline struct {
	TargetFormat   wgpu.TextureFormat
	VertexSource   string
	FragmentSource string
}

func (conf raymarchPipeline) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	slog.Info(
		"Create RenderPipeline for raymarch",
		slog.Any("format", conf.TargetFormat),
	)

	vertexShader, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:      "Raymarch.VertexShader",
		WGSLSource: &wgpu.ShaderSourceWGSL{Code: conf.VertexSource},
	})
	if err != nil {
		return nil, fmt.Errorf("compile vertex shader: %w", err)
	}

	defer vertexShader.Release()

	fragmentShader, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:      "Raymarch.FragmentShader",
		WGSLSource: &wgpu.ShaderSourceWGSL{Code: conf.FragmentSource},
	})
	if err != nil {
		return nil, fmt.Errorf("compile fragment shader: %w", err)
	}

	defer fragmentShader.Release()

	desc := &wgpu.RenderPipelineDescriptor{
		Label: fmt.Sprintf("Raymarch.%s", conf.TargetFormat),
		Vertex: wgpu.VertexState{
			Module:     vertexShader,
			EntryPoint: vertexEntryPoint,
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uint64(unsafe.Sizeof(Vertex{})),
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{
							// position
							Format:         wgpu.VertexFormatFloat32x3,
							Offset:         uint64(unsafe.Offsetof(Vertex{}.Position)),
							ShaderLocation: 0,
						},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     fragmentShader,
			EntryPoint: fragmentEntryPoint,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    conf.TargetFormat,
					Blend:     &wgpu.BlendStateReplace,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	}

	pipeline, err := dev.CreateRenderPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("build raymarch pipeline: %w", err)
	}

	return pipeline, nil
}
