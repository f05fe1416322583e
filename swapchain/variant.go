package swapchain

import (
	"fmt"

	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/vkmol/gpu"
)

// PipelineVariant selects one of the graphics pipelines built for every swapchain generation
type PipelineVariant int

const (
	// PipelineSolid draws filled triangles
	PipelineSolid PipelineVariant = iota
	// PipelineWireframe draws the same vertices as a line strip
	PipelineWireframe

	pipelineVariantCount
)

var pipelineVariantToString = map[PipelineVariant]string{
	PipelineSolid:     "Solid",
	PipelineWireframe: "Wireframe",
}

func (v PipelineVariant) String() string {
	str, ok := pipelineVariantToString[v]
	if !ok {
		return fmt.Sprintf("PipelineVariant(%d)", int(v))
	}
	return str
}

// Valid returns true if the variant has a pipeline
func (v PipelineVariant) Valid() bool {
	return v >= 0 && v < pipelineVariantCount
}

// Next cycles through the variants in declaration order
func (v PipelineVariant) Next() PipelineVariant {
	return (v + 1) % pipelineVariantCount
}

// ParsePipelineVariant returns the variant whose String matches name
func ParsePipelineVariant(name string) (PipelineVariant, bool) {
	for variant, str := range pipelineVariantToString {
		if str == name {
			return variant, true
		}
	}
	return PipelineSolid, false
}

// variantBuilders adjusts the shared pipeline state for each variant. Every variant must
// have an entry.
var variantBuilders = [pipelineVariantCount]func(info *gpu.PipelineCreateInfo){
	PipelineSolid: func(info *gpu.PipelineCreateInfo) {
		info.Topology = core1_0.PrimitiveTopologyTriangleList
	},
	PipelineWireframe: func(info *gpu.PipelineCreateInfo) {
		info.Topology = core1_0.PrimitiveTopologyLineStrip
	},
}
