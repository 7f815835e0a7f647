// Package mic captures live audio from the default input device and reduces
// each fixed-size sample frame to the band energies the flora engine
// consumes: RMS volume plus mean FFT magnitude over the bass, mids, and
// treble ranges.
package mic

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/gordonklaus/portaudio"
	"github.com/mjibson/go-dsp/fft"

	"github.com/phanxgames/flora"
)

const (
	// SampleRate is the capture rate in Hz.
	SampleRate = 44100
	// FrameSize is the number of samples read per tick.
	FrameSize = 2048
)

// Band edges in Hz.
const (
	bassLo   = 20
	bassHi   = 250
	midsLo   = 250
	midsHi   = 2000
	trebleLo = 2000
	trebleHi = 8000
)

// Capture owns a portaudio input stream and implements flora.Provider with
// bounded blocking reads. Close releases the stream and the portaudio
// runtime.
type Capture struct {
	stream   *portaudio.Stream
	buf      []int16
	samples  []float64
	windowed []float64
	window   []float64
}

// Open initializes portaudio and starts a mono input stream on the default
// device. The returned Capture must be closed.
func Open() (*Capture, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize portaudio: %w", err)
	}

	c := &Capture{
		buf:      make([]int16, FrameSize),
		samples:  make([]float64, FrameSize),
		windowed: make([]float64, FrameSize),
		window:   hannWindow(FrameSize),
	}

	stream, err := portaudio.OpenDefaultStream(1, 0, SampleRate, FrameSize, c.buf)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("open input stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("start input stream: %w", err)
	}

	c.stream = stream
	return c, nil
}

// Levels blocks for one frame and returns its band energies. Read errors
// surface to the caller, which treats the tick as silent.
func (c *Capture) Levels() (flora.Levels, error) {
	if err := c.stream.Read(); err != nil {
		return flora.Levels{}, fmt.Errorf("read audio frame: %w", err)
	}

	silent := true
	for i, v := range c.buf {
		if v != 0 {
			silent = false
		}
		c.samples[i] = float64(v)
		c.windowed[i] = float64(v) * c.window[i]
	}
	if silent {
		return flora.Levels{}, nil
	}

	// Hann-windowed FFT; RMS volume stays on the raw samples.
	spectrum := fft.FFTReal(c.windowed)
	mags := make([]float64, FrameSize/2+1)
	for i := range mags {
		mags[i] = cmplx.Abs(spectrum[i])
	}

	bassLoBin, bassHiBin := binRange(bassLo, bassHi)
	midsLoBin, midsHiBin := binRange(midsLo, midsHi)
	trebleLoBin, trebleHiBin := binRange(trebleLo, trebleHi)

	return flora.Levels{
		Volume: rms(c.samples),
		Bass:   bandMean(mags, bassLoBin, bassHiBin),
		Mids:   bandMean(mags, midsLoBin, midsHiBin),
		Treble: bandMean(mags, trebleLoBin, trebleHiBin),
	}, nil
}

// Close stops and closes the stream and tears down portaudio.
func (c *Capture) Close() error {
	if c.stream == nil {
		return nil
	}
	err := c.stream.Stop()
	if cerr := c.stream.Close(); err == nil {
		err = cerr
	}
	c.stream = nil
	portaudio.Terminate()
	return err
}

// hannWindow returns the Hann window coefficients for a frame of n samples.
func hannWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}

// binRange returns the half-open FFT bin range [lo, hi) covering the given
// frequency range in Hz. Bin i holds frequency i*SampleRate/FrameSize.
func binRange(loHz, hiHz float64) (lo, hi int) {
	perBin := float64(SampleRate) / FrameSize
	lo = int(math.Ceil(loHz / perBin))
	hi = int(math.Ceil(hiHz / perBin))
	if max := FrameSize/2 + 1; hi > max {
		hi = max
	}
	return lo, hi
}

// bandMean returns the mean of mags over the half-open bin range [lo, hi).
func bandMean(mags []float64, lo, hi int) float64 {
	if lo >= hi {
		return 0
	}
	sum := 0.0
	for _, m := range mags[lo:hi] {
		sum += m
	}
	return sum / float64(hi-lo)
}

// rms returns the root mean square of samples.
func rms(samples []float64) float64 {
	sum := 0.0
	for _, s := range samples {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(samples)))
}
