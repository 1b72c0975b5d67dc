package pipeline

// PCM conversion constants
const (
	// nativeBits is the sample width the filters operate on.
	nativeBits = 16

	// midScale is signed zero in offset-binary.
	midScale = 1 << (nativeBits - 1)

	// maxSample is the largest offset-binary sample.
	maxSample = 1<<nativeBits - 1
)

// Supported PCM bit depths
const (
	bitDepth16 = 16
	bitDepth24 = 24
	bitDepth32 = 32
)

// Buffer sizing
const (
	// defaultFrameCapacity is the initial per-channel scratch size.
	defaultFrameCapacity = 4096
)
