package fft

// Workspace holds the per-execution scratch buffers for axis transforms.
//
// A Workspace is exclusive to one execution at a time. Concurrent executions
// against the same immutable plan state must each use their own Workspace.
type Workspace[T Complex] struct {
	// In, Out and Work are line buffers sized to the largest axis length.
	// In receives the gathered strided line, Out receives the transformed
	// line, and Work is the ping-pong partner for the stage passes.
	In, Out, Work []T

	// ConvA, ConvB and ConvWork are Bluestein convolution buffers sized to
	// the largest convolution length among the axes, or empty when no axis
	// needs Bluestein.
	ConvA, ConvB, ConvWork []T

	// Radix holds the root table and gathered column of the generic
	// butterfly, 2*maxDirectRadix entries.
	Radix []T
}

// NewWorkspace allocates a workspace for line length lineLen and Bluestein
// convolution length convLen (0 when unused).
func NewWorkspace[T Complex](lineLen, convLen int) *Workspace[T] {
	ws := &Workspace[T]{}

	if lineLen > 0 {
		ws.In = make([]T, lineLen)
		ws.Out = make([]T, lineLen)
		ws.Work = make([]T, lineLen)
		ws.Radix = make([]T, 2*maxDirectRadix)
	}

	if convLen > 0 {
		ws.ConvA = make([]T, convLen)
		ws.ConvB = make([]T, convLen)
		ws.ConvWork = make([]T, convLen)
	}

	return ws
}

// Fits reports whether the workspace is large enough for the given line and
// convolution lengths.
func (ws *Workspace[T]) Fits(lineLen, convLen int) bool {
	if ws == nil {
		return lineLen == 0 && convLen == 0
	}

	return len(ws.In) >= lineLen && len(ws.Out) >= lineLen && len(ws.Work) >= lineLen &&
		(lineLen == 0 || len(ws.Radix) >= 2*maxDirectRadix) &&
		len(ws.ConvA) >= convLen && len(ws.ConvB) >= convLen && len(ws.ConvWork) >= convLen
}
