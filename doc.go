// Package signalgenerator is a PWM waveform engine for multi-channel LED
// outputs: a palette colour, a waveform shape and a few brightness knobs go
// in, a byte buffer of per-channel samples comes out.
//
// 🚀 What is inside?
//
//	A small, allocation-free library that brings together:
//		• lut/       - logarithmic brightness and quarter-sine breakpoint tables
//		• palette/   - 8 symbolic colours with per-channel ratios
//		• siggen/    - validation + square, ramp, triangle and sine synthesis
//		• wavexport/ - WAV encode/decode of generated buffers for previewing
//
// Quick ASCII example (red, square, duty 50, 10 samples):
//
//	255 ┤█████
//	    │     ▁▁▁▁▁
//	  0 ┼──────────
//
// See siggen/example_test.go and examples/ for runnable walkthroughs.
//
//	go get github.com/IldefonsoAspera/signalGenerator/siggen
package signalgenerator
