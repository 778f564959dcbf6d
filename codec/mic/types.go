/*
DESCRIPTION
  types.go defines the image buffer types that flow through the codec
  pipeline: RGBImage at the boundary, YUV422Image and CoeffImage as
  transient intermediates, QuantizedImage as the pre-entropy-code form,
  and the 8x8 Block each stage works on.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

package mic

// BlockSize is the side length of the square transform block the DCT,
// quantizer and entropy codec all operate on.
const BlockSize = 8

// Plane identifies one of the three color planes a MIC image is split
// into. U and V planes are half the width of Y once chroma-resampled.
type Plane int

const (
	PlaneY Plane = iota
	PlaneU
	PlaneV
)

func (p Plane) String() string {
	switch p {
	case PlaneY:
		return "Y"
	case PlaneU:
		return "U"
	case PlaneV:
		return "V"
	default:
		return "?"
	}
}

// RGBImage is a full-resolution 24-bit RGB image, row-major, one byte per
// sample in [0,255].
type RGBImage struct {
	Rows, Cols int
	R, G, B    []byte // each len Rows*Cols
}

// NewRGBImage allocates an RGBImage of the given dimensions. Rows and Cols
// must already have been validated as multiples of 16 by the caller; this
// constructor does not re-check the invariant so it can also be used for
// scratch buffers internal to a stage.
func NewRGBImage(rows, cols int) *RGBImage {
	n := rows * cols
	return &RGBImage{
		Rows: rows, Cols: cols,
		R: make([]byte, n), G: make([]byte, n), B: make([]byte, n),
	}
}

// At returns the row-major index of pixel (row,col).
func (img *RGBImage) At(row, col int) int { return row*img.Cols + col }

// YUV422Image holds a full-width Y plane and half-width U, V planes, all
// at full height, per spec ("4:2:2"): one luma sample per pixel, one U and
// one V sample per two horizontal pixels.
type YUV422Image struct {
	Rows, Cols int    // Cols is the luma (full) width; Cols/2 is chroma width.
	Y          []byte // len Rows*Cols
	U, V       []byte // len Rows*(Cols/2)
}

// NewYUV422Image allocates a YUV422Image for a Cols-wide, Rows-tall luma
// plane.
func NewYUV422Image(rows, cols int) *YUV422Image {
	return &YUV422Image{
		Rows: rows, Cols: cols,
		Y: make([]byte, rows*cols),
		U: make([]byte, rows*(cols/2)),
		V: make([]byte, rows*(cols/2)),
	}
}

// ChromaCols is the width of the U and V planes.
func (img *YUV422Image) ChromaCols() int { return img.Cols / 2 }

// Block is a single 8x8 transform unit. Index as Block[row][col].
type Block [BlockSize][BlockSize]int

// CoeffImage holds post-DCT, pre-quantization signed coefficients, one
// slice of blocks per plane, in row-major block order.
type CoeffImage struct {
	Rows, Cols       int // geometry of whichever plane(s) are populated.
	YBlocks          []Block
	UBlocks, VBlocks []Block
}

// NewCoeffImagePlane returns a CoeffImage with only plane's blocks
// populated, Rows/Cols set to that plane's own pixel geometry (chroma
// planes are Cols/2 wide). The pipeline driver reports one plane to a
// Visitor at a time, so only one of YBlocks/UBlocks/VBlocks is ever set
// on a value built this way.
func NewCoeffImagePlane(rows, cols int, plane Plane, blocks []Block) *CoeffImage {
	ci := &CoeffImage{Rows: rows, Cols: cols}
	switch plane {
	case PlaneY:
		ci.YBlocks = blocks
	case PlaneU:
		ci.UBlocks = blocks
	case PlaneV:
		ci.VBlocks = blocks
	}
	return ci
}

// QuantizedImage holds post-quantization signed coefficients (9-bit range,
// [-256,255]), same geometry as CoeffImage.
type QuantizedImage struct {
	Rows, Cols       int
	YBlocks          []Block
	UBlocks, VBlocks []Block
}

// NewQuantizedImagePlane is NewCoeffImagePlane's QuantizedImage
// counterpart.
func NewQuantizedImagePlane(rows, cols int, plane Plane, blocks []Block) *QuantizedImage {
	qi := &QuantizedImage{Rows: rows, Cols: cols}
	switch plane {
	case PlaneY:
		qi.YBlocks = blocks
	case PlaneU:
		qi.UBlocks = blocks
	case PlaneV:
		qi.VBlocks = blocks
	}
	return qi
}

// BlocksWide and BlocksHigh return the block-grid dimensions of a plane of
// the given pixel width and height. Both must already be multiples of 8
// (guaranteed by the Rows/Cols-multiple-of-16 invariant upstream).
func BlocksWide(cols int) int { return cols / BlockSize }
func BlocksHigh(rows int) int { return rows / BlockSize }

// Visitor is the pluggable post-stage observer described in the design
// notes: a conforming pipeline never needs one, but a caller may supply
// one to inspect intermediate buffers (for debugging or validation)
// without the pipeline itself branching on a debug level. Stage is called
// synchronously after each stage has produced its output: once per plane
// for the block stages, and once per image (with PlaneY) for the
// colorspace+downsample and upsample stages. data is one of *YUV422Image
// (colorspace+downsample, upsample stages), *CoeffImage (post-DCT,
// post-dequantize), or *QuantizedImage (post-quantization,
// post-entropy-decode), depending on stage.
type Visitor interface {
	Stage(stage string, plane Plane, data any)
}

// NopVisitor implements Visitor by discarding every call. It is the
// default used when no visitor is supplied.
type NopVisitor struct{}

func (NopVisitor) Stage(string, Plane, any) {}
