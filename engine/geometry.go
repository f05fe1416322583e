package engine

import (
	"bytes"
	"encoding/binary"
	"math"
	"time"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/vkmol/gpu"
	vkngmath "github.com/vkngwrapper/math"
)

type Vertex struct {
	Position vkngmath.Vec2[float32]
	Color    vkngmath.Vec3[float32]
}

// Quad is the geometry every frame draws
var Quad = []Vertex{
	{Position: vkngmath.Vec2[float32]{X: -0.5, Y: -0.5}, Color: vkngmath.Vec3[float32]{X: 1, Y: 0, Z: 0}},
	{Position: vkngmath.Vec2[float32]{X: 0.5, Y: -0.5}, Color: vkngmath.Vec3[float32]{X: 0, Y: 1, Z: 0}},
	{Position: vkngmath.Vec2[float32]{X: 0.5, Y: 0.5}, Color: vkngmath.Vec3[float32]{X: 0, Y: 0, Z: 1}},
	{Position: vkngmath.Vec2[float32]{X: -0.5, Y: 0.5}, Color: vkngmath.Vec3[float32]{X: 1, Y: 1, Z: 1}},
}

// QuadIndices draws Quad as two counter-clockwise triangles
var QuadIndices = []uint16{0, 1, 2, 2, 3, 0}

// VertexBindings describes the single interleaved vertex buffer
func VertexBindings() []core1_0.VertexInputBindingDescription {
	v := Vertex{}
	return []core1_0.VertexInputBindingDescription{
		{
			Binding:   0,
			Stride:    int(unsafe.Sizeof(v)),
			InputRate: core1_0.VertexInputRateVertex,
		},
	}
}

// VertexAttributes describes position at location 0 and color at location 1
func VertexAttributes() []core1_0.VertexInputAttributeDescription {
	v := Vertex{}
	return []core1_0.VertexInputAttributeDescription{
		{
			Binding:  0,
			Location: 0,
			Format:   core1_0.FormatR32G32SignedFloat,
			Offset:   int(unsafe.Offsetof(v.Position)),
		},
		{
			Binding:  0,
			Location: 1,
			Format:   core1_0.FormatR32G32B32SignedFloat,
			Offset:   int(unsafe.Offsetof(v.Color)),
		},
	}
}

// UniformBufferObject is the layout of the uniform buffer at binding 0
type UniformBufferObject struct {
	Model vkngmath.Mat4x4[float32]
	View  vkngmath.Mat4x4[float32]
	Proj  vkngmath.Mat4x4[float32]
}

const (
	// rotationPeriod is the time the model takes to turn a full circle at 90 degrees per second
	rotationPeriod = 4.0
	fieldOfView    = math.Pi / 4.0
	nearPlane      = float32(0.1)
	farPlane       = float32(10.0)
)

// NewUniformBufferObject computes the transforms for a frame drawn elapsed after startup.
// The projection is already in Vulkan clip space, with Y pointing down.
func NewUniformBufferObject(elapsed time.Duration, extent core1_0.Extent2D) UniformBufferObject {
	period := math.Mod(elapsed.Seconds(), rotationPeriod)

	ubo := UniformBufferObject{}
	ubo.Model.SetRotationY(period * math.Pi / 2.0)
	ubo.View.SetLookAt(
		&vkngmath.Vec3[float32]{X: 2, Y: 2, Z: 2},
		&vkngmath.Vec3[float32]{X: 0, Y: 0, Z: 0},
		&vkngmath.Vec3[float32]{X: 0, Y: 0, Z: 1},
	)

	aspectRatio := float32(1)
	if extent.Height > 0 {
		aspectRatio = float32(extent.Width) / float32(extent.Height)
	}
	ubo.Proj.SetPerspective(fieldOfView, aspectRatio, nearPlane, farPlane)

	return ubo
}

// encode lays data out in the byte order the device expects
func encode(data any) ([]byte, error) {
	buf := &bytes.Buffer{}
	err := binary.Write(buf, common.ByteOrder, data)
	if err != nil {
		return nil, errors.Wrap(err, "encoding buffer contents")
	}
	return buf.Bytes(), nil
}

func uniformBufferSize() int {
	return binary.Size(UniformBufferObject{})
}

func clearColor() [4]float32 {
	return [4]float32{0, 0, 0, 0}
}

// recordCommands records the draw of the quad into one framebuffer
func recordCommands(commandBuffer gpu.CommandBuffer, pass gpu.RenderPassBeginInfo, pipeline gpu.Pipeline, layout gpu.PipelineLayout, vertices, indices gpu.Buffer, descriptorSet gpu.DescriptorSet) error {
	err := commandBuffer.Begin(core1_0.CommandBufferUsageSimultaneousUse)
	if err != nil {
		return errors.Wrap(err, "beginning command buffer")
	}

	err = commandBuffer.BeginRenderPass(pass)
	if err != nil {
		return errors.Wrap(err, "beginning render pass")
	}

	commandBuffer.BindPipeline(pipeline)
	commandBuffer.BindVertexBuffers([]gpu.Buffer{vertices})
	commandBuffer.BindIndexBuffer(indices, core1_0.IndexTypeUInt16)
	commandBuffer.BindDescriptorSets(layout, []gpu.DescriptorSet{descriptorSet})
	commandBuffer.DrawIndexed(len(QuadIndices))
	commandBuffer.EndRenderPass()

	return errors.Wrap(commandBuffer.End(), "ending command buffer")
}
