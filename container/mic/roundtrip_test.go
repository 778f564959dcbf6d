/*
DESCRIPTION
  roundtrip_test.go contains the end-to-end scenarios from the spec's
  testable properties: uniform images, a single bright pixel, a
  gradient, and format-vs-size/PSNR monotonicity.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

package mic

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/ausocean/utils/logging"

	"github.com/mcmaster-ece/mic/codec/mic"
)

func uniformImage(rows, cols int, r, g, b byte) *mic.RGBImage {
	img := mic.NewRGBImage(rows, cols)
	for i := range img.R {
		img.R[i], img.G[i], img.B[i] = r, g, b
	}
	return img
}

func psnr(a, b *mic.RGBImage) float64 {
	var sumSq, n float64
	for i := range a.R {
		for _, d := range [3]int{
			int(a.R[i]) - int(b.R[i]),
			int(a.G[i]) - int(b.G[i]),
			int(a.B[i]) - int(b.B[i]),
		} {
			sumSq += float64(d * d)
			n++
		}
	}
	if sumSq == 0 {
		return math.Inf(1)
	}
	rmse := math.Sqrt(sumSq / n)
	return 20 * math.Log10(255/rmse)
}

func TestUniformGray16x16Format0RoundTripsExactly(t *testing.T) {
	img := uniformImage(16, 16, 128, 128, 128)
	var buf bytes.Buffer
	if err := NewEncoder().Encode(&buf, img, mic.Format0); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.Len() > 40 {
		t.Errorf("encoded size %d bytes, want <= 40", buf.Len())
	}
	got, err := NewDecoder().Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for i := range img.R {
		if got.R[i] != img.R[i] || got.G[i] != img.G[i] || got.B[i] != img.B[i] {
			t.Fatalf("pixel %d: got (%d,%d,%d), want (%d,%d,%d)", i, got.R[i], got.G[i], got.B[i], img.R[i], img.G[i], img.B[i])
		}
	}
}

func TestSingleBrightPixelFormat0(t *testing.T) {
	img := uniformImage(16, 16, 0, 0, 0)
	img.R[0], img.G[0], img.B[0] = 255, 0, 0

	var buf bytes.Buffer
	if err := NewEncoder().Encode(&buf, img, mic.Format0); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := NewDecoder().Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.R[0] < 200 {
		t.Errorf("R[0] = %d, want >= 200", got.R[0])
	}
	if got.G[0] > 30 || got.B[0] > 30 {
		t.Errorf("G[0]=%d B[0]=%d, want <= 30", got.G[0], got.B[0])
	}
	if p := psnr(img, got); p < 30 {
		t.Errorf("PSNR = %.2f dB, want >= 30", p)
	}
}

func TestGradient32x16Format1DecodesMonotonic(t *testing.T) {
	img := mic.NewRGBImage(16, 32)
	for row := 0; row < 16; row++ {
		for col := 0; col < 32; col++ {
			idx := img.At(row, col)
			img.R[idx] = byte(col * 8)
			img.G[idx], img.B[idx] = 0, 0
		}
	}
	var buf bytes.Buffer
	if err := NewEncoder().Encode(&buf, img, mic.Format1); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := NewDecoder().Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for row := 0; row < 16; row++ {
		for col := 1; col < 32; col++ {
			prev := got.R[img.At(row, col-1)]
			cur := got.R[img.At(row, col)]
			if cur < prev {
				t.Fatalf("row %d: R decreased from col %d (%d) to col %d (%d)", row, col-1, prev, col, cur)
			}
		}
	}
}

func TestTruncatedFileFailsWithFormatError(t *testing.T) {
	img := uniformImage(64, 64, 60, 120, 200)
	var buf bytes.Buffer
	if err := NewEncoder().Encode(&buf, img, mic.Format2); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	truncated := buf.Bytes()[:HeaderSize+5]
	_, err := NewDecoder().Decode(bytes.NewReader(truncated))
	if err == nil {
		t.Fatal("expected a premature-end-of-stream error, got nil")
	}
}

func TestTamperedUOffsetDecodesWithOnlyAWarning(t *testing.T) {
	img := uniformImage(16, 16, 40, 90, 160)
	var buf bytes.Buffer
	if err := NewEncoder().Encode(&buf, img, mic.Format0); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// The codec is lossy, so the reference is the decode of the untampered
	// file: a header offset mismatch must not change the decoded pixels.
	want, err := NewDecoder().Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode of untampered file: %v", err)
	}

	tampered := append([]byte(nil), buf.Bytes()...)
	// U plane's offset record sits at header bytes [12:16); corrupt its
	// byte-offset field so it no longer matches what decoding observes.
	tampered[12] ^= 0xff
	tampered[13] ^= 0xff

	var logBuf strings.Builder
	log := logging.New(logging.Warning, &logBuf, true)
	got, err := NewDecoder(WithLogger(log)).Decode(bytes.NewReader(tampered))
	if err != nil {
		t.Fatalf("Decode: %v, want a successful decode with only a diagnostic warning", err)
	}
	for i := range want.R {
		if got.R[i] != want.R[i] || got.G[i] != want.G[i] || got.B[i] != want.B[i] {
			t.Fatalf("pixel %d: got (%d,%d,%d), want (%d,%d,%d)", i, got.R[i], got.G[i], got.B[i], want.R[i], want.G[i], want.B[i])
		}
	}
	if !strings.Contains(logBuf.String(), "offset mismatch") {
		t.Errorf("log output = %q, want it to mention the offset mismatch", logBuf.String())
	}
}

func TestFormatsDecreaseSizeAndPSNR(t *testing.T) {
	img := mic.NewRGBImage(64, 64)
	for row := 0; row < 64; row++ {
		for col := 0; col < 64; col++ {
			idx := img.At(row, col)
			img.R[idx] = byte((row * 4) % 256)
			img.G[idx] = byte((col * 4) % 256)
			img.B[idx] = byte((row + col) % 256)
		}
	}

	var prevSize int
	prevPSNR := math.Inf(1)
	for _, f := range []mic.Format{mic.Format0, mic.Format1, mic.Format2} {
		var buf bytes.Buffer
		if err := NewEncoder().Encode(&buf, img, f); err != nil {
			t.Fatalf("format %d: Encode: %v", f, err)
		}
		got, err := NewDecoder().Decode(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatalf("format %d: Decode: %v", f, err)
		}
		p := psnr(img, got)
		if f > mic.Format0 {
			if buf.Len() > prevSize {
				t.Errorf("format %d: size %d not smaller than format %d's %d", f, buf.Len(), f-1, prevSize)
			}
			if p > prevPSNR {
				t.Errorf("format %d: PSNR %.2f not lower than format %d's %.2f", f, p, f-1, prevPSNR)
			}
		}
		prevSize, prevPSNR = buf.Len(), p
	}
}
