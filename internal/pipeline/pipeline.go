// Package pipeline runs fixed-point filter chains over interleaved signed PCM.
// Every channel owns an independent chain, so channels can be processed
// concurrently without sharing state.
package pipeline

import (
	"errors"
	"fmt"
	"sync"
)

// Stage is a single per-sample processing step. fixedfilter.Filter satisfies
// it.
type Stage interface {
	// Process transforms one offset-binary sample.
	Process(x uint16) uint16

	// Reset clears internal state.
	Reset()
}

// StageFactory builds a fresh stage. It is called once per channel.
type StageFactory func() (Stage, error)

// Chain runs stages in series.
type Chain struct {
	stages []Stage
}

// NewChain creates a chain from already constructed stages.
func NewChain(stages ...Stage) *Chain {
	return &Chain{stages: stages}
}

// Process feeds x through every stage in order.
func (c *Chain) Process(x uint16) uint16 {
	for _, s := range c.stages {
		x = s.Process(x)
	}
	return x
}

// Reset resets every stage.
func (c *Chain) Reset() {
	for _, s := range c.stages {
		s.Reset()
	}
}

// Len returns the number of stages.
func (c *Chain) Len() int { return len(c.stages) }

// Config holds pipeline construction parameters.
type Config struct {
	// Channels is the number of interleaved channels.
	Channels int

	// BitDepth of the signed PCM samples: 16, 24 or 32. Wider samples are
	// reduced to 16 bits for filtering and scaled back afterwards.
	BitDepth int

	// Parallel processes channels concurrently.
	Parallel bool

	// Stages are instantiated once per channel, in order.
	Stages []StageFactory
}

// Common errors returned by New and ProcessInterleaved.
var (
	ErrInvalidChannels     = errors.New("channel count must be positive")
	ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")
	ErrNoStages            = errors.New("pipeline needs at least one stage")
	ErrMisalignedFrames    = errors.New("sample count is not a multiple of the channel count")
)

// Pipeline filters interleaved PCM frames.
type Pipeline struct {
	config  Config
	shift   uint
	chains  []*Chain
	scratch [][]uint16
}

// New builds one chain per channel.
func New(config Config) (*Pipeline, error) {
	if config.Channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, config.Channels)
	}
	shift, err := BitDepthShift(config.BitDepth)
	if err != nil {
		return nil, err
	}
	if len(config.Stages) == 0 {
		return nil, ErrNoStages
	}

	p := &Pipeline{
		config:  config,
		shift:   shift,
		chains:  make([]*Chain, config.Channels),
		scratch: make([][]uint16, config.Channels),
	}

	for ch := range config.Channels {
		stages := make([]Stage, len(config.Stages))
		for i, factory := range config.Stages {
			s, err := factory()
			if err != nil {
				return nil, fmt.Errorf("channel %d stage %d: %w", ch, i, err)
			}
			stages[i] = s
		}
		p.chains[ch] = NewChain(stages...)
		p.scratch[ch] = make([]uint16, 0, defaultFrameCapacity)
	}

	return p, nil
}

// ProcessInterleaved filters data in place. len(data) must be a multiple of
// the channel count. State carries over between calls.
func (p *Pipeline) ProcessInterleaved(data []int) error {
	channels := p.config.Channels
	if len(data)%channels != 0 {
		return fmt.Errorf("%w: %d samples, %d channels", ErrMisalignedFrames, len(data), channels)
	}
	frames := len(data) / channels

	p.deinterleave(data, frames)

	if !p.config.Parallel || channels == 1 {
		for ch := range channels {
			p.processChannel(ch)
		}
	} else {
		var wg sync.WaitGroup
		for ch := range channels {
			wg.Add(1)
			go func(channel int) {
				defer wg.Done()
				p.processChannel(channel)
			}(ch)
		}
		wg.Wait()
	}

	p.interleave(data, frames)
	return nil
}

// Reset clears every channel chain.
func (p *Pipeline) Reset() {
	for _, c := range p.chains {
		c.Reset()
	}
}

// Channels returns the configured channel count.
func (p *Pipeline) Channels() int { return p.config.Channels }

// Stages returns the number of stages per channel.
func (p *Pipeline) Stages() int { return len(p.config.Stages) }

func (p *Pipeline) processChannel(ch int) {
	buf := p.scratch[ch]
	chain := p.chains[ch]
	for i, x := range buf {
		buf[i] = chain.Process(x)
	}
}

func (p *Pipeline) deinterleave(data []int, frames int) {
	channels := p.config.Channels
	for ch := range channels {
		buf := p.scratch[ch]
		if cap(buf) < frames {
			buf = make([]uint16, frames)
		}
		buf = buf[:frames]
		for i := range frames {
			buf[i] = ToOffsetBinary(data[i*channels+ch], p.shift)
		}
		p.scratch[ch] = buf
	}
}

func (p *Pipeline) interleave(data []int, frames int) {
	channels := p.config.Channels
	for ch := range channels {
		buf := p.scratch[ch]
		for i := range frames {
			data[i*channels+ch] = FromOffsetBinary(buf[i], p.shift)
		}
	}
}

// BitDepthShift returns the right shift that reduces a signed PCM sample of
// the given depth to 16 bits.
func BitDepthShift(bitDepth int) (uint, error) {
	switch bitDepth {
	case bitDepth16, bitDepth24, bitDepth32:
		return uint(bitDepth - nativeBits), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

// ToOffsetBinary converts a signed PCM sample to an unsigned 16-bit sample
// centred on 32768, clamping anything outside the reduced range.
func ToOffsetBinary(v int, shift uint) uint16 {
	s := v>>shift + midScale
	switch {
	case s < 0:
		return 0
	case s > maxSample:
		return maxSample
	default:
		return uint16(s)
	}
}

// FromOffsetBinary is the inverse of ToOffsetBinary. The bits dropped by the
// shift are not restored.
func FromOffsetBinary(u uint16, shift uint) int {
	return (int(u) - midScale) << shift
}
