// Package lut holds the compiled-in breakpoint tables used to shape PWM
// waveforms: a logarithmic brightness curve and one quarter of a sine period.
//
// 🚀 What is stored?
//
//	Each table keeps 33 breakpoints spanning the 8-bit input domain in steps
//	of 8. Intermediate values are never stored expanded; they are computed on
//	demand by piecewise-linear interpolation:
//
//	  value(i) = t[i/8] + (t[i/8+1] - t[i/8]) * (i%8) / 8
//
// ✨ Key features:
//   - Log:  perceptual brightness curve, Log(0)=0 and Log(255)=65535 exactly
//   - Sine: quarter-period sine scaled to [0, 65535]
//   - SinePhase / SineCentered: mirroring helpers that rebuild a full period
//     out of the quarter table
//
// ⚙️ Usage:
//
//	import "github.com/IldefonsoAspera/signalGenerator/lut"
//
//	level := lut.Log(128)      // perceptual 50%
//	s := lut.Sine(64)          // quarter-sine at 1/4 of the quarter
//
// Tables are immutable package data, safe for concurrent readers.
//
// Performance:
//
//   - Time:   O(1) per lookup
//   - Memory: 2 × 66 bytes of static data
package lut
