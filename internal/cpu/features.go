package cpu

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2      bool
	HasSSE3      bool
	HasAVX       bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasSSE3:      cpu.X86.HasSSE3,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// String returns a compact summary like "amd64 sse2 avx2".
func (f Features) String() string {
	parts := []string{f.Architecture}

	if f.HasSSE2 {
		parts = append(parts, "sse2")
	}

	if f.HasSSE3 {
		parts = append(parts, "sse3")
	}

	if f.HasAVX {
		parts = append(parts, "avx")
	}

	if f.HasAVX2 {
		parts = append(parts, "avx2")
	}

	if f.HasAVX512 {
		parts = append(parts, "avx512")
	}

	if f.HasNEON {
		parts = append(parts, "neon")
	}

	return strings.Join(parts, " ")
}
