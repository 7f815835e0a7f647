// Package flora renders a procedurally generated plant whose growth,
// foliage, and bloom are continuously driven by live audio.
//
// A [Plant] is a recursively generated branch hierarchy built once from a
// seeded random source and never restructured. Each tick, smoothed band
// levels from a [Normalizer] drive the animation: mids grow branches and
// unfurl leaves, treble blooms flowers and spins their petals, and bass
// pulses branch thickness and shakes the scene. Flowers emit short-lived
// [Sparkles] particles on qualifying bloom rises.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	flora.Run(flora.RunConfig{
//		Title: "Flora", Width: 1280, Height: 720,
//	})
//
// With no Provider set, Run falls back to [Synthetic], a deterministic
// waveform that exercises the whole pipeline without audio hardware. For
// live input, use the mic subpackage:
//
//	capture, err := mic.Open()
//	if err != nil {
//		// no device: the synthetic fallback keeps everything running
//	}
//	flora.Run(flora.RunConfig{Provider: capture})
//
// # Pipeline
//
// One tick is: read the [Provider], fold the raw frame through the
// [Normalizer], update the [Plant] (which updates its leaves and flowers,
// emitting into [Sparkles]), advance and prune the particles, then roll the
// bass-driven shake offset. Rendering issues [Surface] draw calls for the
// tree and particles; [Run] composites that layer at the shake offset and
// draws the optional level HUD on top, unshaken.
//
// Everything is single-threaded and exclusively owned: one audio read, one
// simulation update, one render pass per tick. A fixed seed and provider
// reproduce a run exactly.
package flora
