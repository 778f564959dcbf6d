/*
DESCRIPTION
  bmp.go adapts golang.org/x/image/bmp onto the RGBImage type, so BMP
  files can feed the same encode pipeline as PPM.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

package bmp

import (
	"fmt"
	"image"
	"io"

	xbmp "golang.org/x/image/bmp"

	"github.com/mcmaster-ece/mic/codec/mic"
)

// Decode reads a BMP file from r and converts it to an RGBImage.
func Decode(r io.Reader) (*mic.RGBImage, error) {
	src, err := xbmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("bmp: %w", err)
	}
	bounds := src.Bounds()
	rows, cols := bounds.Dy(), bounds.Dx()
	if rows%16 != 0 || cols%16 != 0 {
		return nil, mic.NewInputError("bmp: dimensions %dx%d are not multiples of 16", rows, cols)
	}
	img := mic.NewRGBImage(rows, cols)
	for y := 0; y < img.Rows; y++ {
		for x := 0; x < img.Cols; x++ {
			r32, g32, b32, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			idx := img.At(y, x)
			img.R[idx] = byte(r32 >> 8)
			img.G[idx] = byte(g32 >> 8)
			img.B[idx] = byte(b32 >> 8)
		}
	}
	return img, nil
}

// Encode writes img to w as a BMP file.
func Encode(w io.Writer, img *mic.RGBImage) error {
	dst := image.NewRGBA(image.Rect(0, 0, img.Cols, img.Rows))
	for y := 0; y < img.Rows; y++ {
		for x := 0; x < img.Cols; x++ {
			idx := img.At(y, x)
			offset := dst.PixOffset(x, y)
			dst.Pix[offset] = img.R[idx]
			dst.Pix[offset+1] = img.G[idx]
			dst.Pix[offset+2] = img.B[idx]
			dst.Pix[offset+3] = 0xff
		}
	}
	if err := xbmp.Encode(w, dst); err != nil {
		return fmt.Errorf("bmp: %w", err)
	}
	return nil
}
