/*
DESCRIPTION
  encoder.go implements the MIC pipeline driver's encode half: RGB -> YUV
  -> 4:2:2 downsample -> per-plane block DCT/quantize/entropy-encode ->
  framed MIC file, per spec.md section 4.8.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

package mic

import (
	"io"

	"github.com/pkg/errors"

	"github.com/mcmaster-ece/mic/codec/mic"
)

// Encoder drives the MIC encode pipeline for one image at a time. It
// holds no state between calls to Encode, so one Encoder is safe to
// reuse (but not to share concurrently — create one per goroutine).
type Encoder struct {
	c    *config
	coef mic.CoeffMatrix
}

// NewEncoder returns an Encoder configured with opts (see WithLogger,
// WithVisitor, WithWorkers).
func NewEncoder(opts ...func(*config)) *Encoder {
	return &Encoder{c: newConfig(opts), coef: mic.NewCoeffMatrix()}
}

// Encode compresses img under the given format and writes a complete MIC
// file (header + entropy-coded color data) to w. It validates dimensions
// before doing any work, per spec.md section 4.9: all encoder failures
// are argument/format errors surfaced before I/O begins.
func (e *Encoder) Encode(w io.Writer, img *mic.RGBImage, format mic.Format) error {
	if !format.Valid() {
		return mic.NewInputError("invalid format %d", format)
	}
	if img.Rows%16 != 0 || img.Cols%16 != 0 {
		return mic.NewInputError("dimensions %dx%d are not multiples of 16", img.Rows, img.Cols)
	}
	if img.Rows > 65535 || img.Cols > 65535 {
		return mic.NewInputError("dimensions %dx%d exceed 65535", img.Rows, img.Cols)
	}

	y, u, v := mic.RGBToYUV(img)
	yuv := mic.NewYUV422Image(img.Rows, img.Cols)
	copy(yuv.Y, byteSlice(y))
	for row := 0; row < img.Rows; row++ {
		start, end := row*img.Cols, (row+1)*img.Cols
		du := mic.Downsample(u[start:end])
		dv := mic.Downsample(v[start:end])
		copy(yuv.U[row*yuv.ChromaCols():], du)
		copy(yuv.V[row*yuv.ChromaCols():], dv)
	}
	e.c.visitor.Stage("colorspace+downsample", mic.PlaneY, yuv)

	bw := mic.NewBitWriter()
	hdr := &Header{Format: format, Rows: uint16(img.Rows), Cols: uint16(img.Cols)}

	planes := []struct {
		plane mic.Plane
		data  []byte
		cols  int
	}{
		{mic.PlaneY, yuv.Y, yuv.Cols},
		{mic.PlaneU, yuv.U, yuv.ChromaCols()},
		{mic.PlaneV, yuv.V, yuv.ChromaCols()},
	}

	for _, p := range planes {
		hdr.Offsets[p.plane] = PlaneOffset{
			ByteOffset: uint32(bw.ByteOffset()),
			BitOffset:  uint8(bw.BitOffset()),
		}
		blocks := planeToBlocks(p.data, img.Rows, p.cols)

		coeffs := dctBlocksParallel(e.coef, blocks, e.c.workers)
		e.c.visitor.Stage("dct", p.plane, mic.NewCoeffImagePlane(img.Rows, p.cols, p.plane, coeffs))

		quantized, err := quantizeBlocksParallel(format, coeffs, e.c.workers)
		if err != nil {
			return errors.Wrapf(err, "plane %s", p.plane)
		}
		e.c.visitor.Stage("quantize", p.plane, mic.NewQuantizedImagePlane(img.Rows, p.cols, p.plane, quantized))

		for _, q := range quantized {
			mic.EncodeBlock(bw, q)
		}
	}
	bw.Pad16()

	if _, err := hdr.WriteTo(w); err != nil {
		return errors.Wrap(err, "could not write header")
	}
	if _, err := w.Write(bw.Bytes()); err != nil {
		return errors.Wrap(err, "could not write color data")
	}
	e.c.log.Debug("encoded mic image", "rows", img.Rows, "cols", img.Cols, "format", int(format), "bytes", HeaderSize+len(bw.Bytes()))
	return nil
}

// byteSlice converts a []int of 0..255 values to []byte.
func byteSlice(xs []int) []byte {
	out := make([]byte, len(xs))
	for i, x := range xs {
		out[i] = byte(x)
	}
	return out
}
