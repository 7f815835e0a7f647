package mic

import (
	"math"
	"testing"
)

func TestBinRangesCoverBandsContiguously(t *testing.T) {
	bassLoBin, bassHiBin := binRange(bassLo, bassHi)
	midsLoBin, midsHiBin := binRange(midsLo, midsHi)
	trebleLoBin, trebleHiBin := binRange(trebleLo, trebleHi)

	if bassLoBin <= 0 {
		t.Errorf("bass low bin = %d, DC bin must be excluded", bassLoBin)
	}
	if bassHiBin != midsLoBin {
		t.Errorf("bass/mids boundary mismatch: %d vs %d", bassHiBin, midsLoBin)
	}
	if midsHiBin != trebleLoBin {
		t.Errorf("mids/treble boundary mismatch: %d vs %d", midsHiBin, trebleLoBin)
	}
	if max := FrameSize/2 + 1; trebleHiBin > max {
		t.Errorf("treble high bin = %d, exceeds spectrum length %d", trebleHiBin, max)
	}
}

func TestBinRangeFrequencies(t *testing.T) {
	perBin := float64(SampleRate) / FrameSize
	lo, hi := binRange(bassLo, bassHi)

	if f := float64(lo) * perBin; f < bassLo {
		t.Errorf("first bass bin at %f Hz, below %d Hz", f, bassLo)
	}
	if f := float64(lo-1) * perBin; f >= bassLo {
		t.Errorf("bin below the range already covers %f Hz", f)
	}
	if f := float64(hi-1) * perBin; f >= bassHi {
		t.Errorf("last bass bin at %f Hz, at or above %d Hz", f, bassHi)
	}
}

func TestBandMean(t *testing.T) {
	mags := []float64{0, 10, 20, 30, 40}

	if got := bandMean(mags, 1, 4); got != 20 {
		t.Errorf("bandMean = %f, want 20", got)
	}
	if got := bandMean(mags, 3, 3); got != 0 {
		t.Errorf("empty range mean = %f, want 0", got)
	}
}

func TestHannWindowShape(t *testing.T) {
	w := hannWindow(FrameSize)
	if len(w) != FrameSize {
		t.Fatalf("window length = %d, want %d", len(w), FrameSize)
	}
	if w[0] != 0 || math.Abs(w[FrameSize-1]) > 1e-12 {
		t.Errorf("window endpoints = %f, %f, want 0", w[0], w[FrameSize-1])
	}
	for i, v := range w {
		if v < 0 || v > 1 {
			t.Fatalf("coefficient %d = %f, outside [0, 1]", i, v)
		}
	}
	// Peak sits at the frame center.
	if mid := w[FrameSize/2]; mid < 0.999 {
		t.Errorf("center coefficient = %f, want near 1", mid)
	}
}

func TestRMS(t *testing.T) {
	if got := rms([]float64{3, 3, 3}); math.Abs(got-3) > 1e-12 {
		t.Errorf("rms of constant = %f, want 3", got)
	}
	want := math.Sqrt((9.0 + 16.0) / 2.0)
	if got := rms([]float64{3, -4}); math.Abs(got-want) > 1e-12 {
		t.Errorf("rms = %f, want %f", got, want)
	}
}
