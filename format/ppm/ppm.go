/*
DESCRIPTION
  ppm.go reads and writes binary (P6) Portable Pixmap images, used as a
  raw RGB interchange format alongside format/bmp. The header lexer
  follows the explicit byte-at-a-time style of codec/jpeg/lex.go rather
  than fmt.Fscanf, so '#' comments anywhere between header tokens are
  handled without fmt's surprises around whitespace and EOF.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

package ppm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/mcmaster-ece/mic/codec/mic"
)

// Decode reads a binary P6 PPM image from r.
func Decode(r io.Reader) (*mic.RGBImage, error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: reading magic: %w", err)
	}
	if magic != "P6" {
		return nil, fmt.Errorf("ppm: unsupported magic %q, want P6", magic)
	}

	cols, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: reading width: %w", err)
	}
	rows, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: reading height: %w", err)
	}
	maxVal, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: reading maxval: %w", err)
	}
	if maxVal != 255 {
		return nil, fmt.Errorf("ppm: unsupported maxval %d, want 255", maxVal)
	}
	// The single whitespace byte following maxval is part of the header
	// and has already been consumed by readIntToken's trailing skip.

	img := mic.NewRGBImage(rows, cols)
	pixels := make([]byte, rows*cols*3)
	if _, err := io.ReadFull(br, pixels); err != nil {
		return nil, fmt.Errorf("ppm: reading pixel data: %w", err)
	}
	for i := 0; i < rows*cols; i++ {
		img.R[i] = pixels[3*i]
		img.G[i] = pixels[3*i+1]
		img.B[i] = pixels[3*i+2]
	}
	return img, nil
}

// Encode writes img to w as a binary P6 PPM image.
func Encode(w io.Writer, img *mic.RGBImage) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", img.Cols, img.Rows); err != nil {
		return fmt.Errorf("ppm: writing header: %w", err)
	}
	pixels := make([]byte, img.Rows*img.Cols*3)
	for i := range img.R {
		pixels[3*i] = img.R[i]
		pixels[3*i+1] = img.G[i]
		pixels[3*i+2] = img.B[i]
	}
	if _, err := bw.Write(pixels); err != nil {
		return fmt.Errorf("ppm: writing pixel data: %w", err)
	}
	return bw.Flush()
}

// readToken reads bytes up to the next whitespace, skipping '#' comments
// (which run to end of line) and any leading whitespace, in the style of
// the PPM header grammar.
func readToken(r *bufio.Reader) (string, error) {
	var tok []byte
	inComment := false
	for {
		b, err := r.ReadByte()
		if err != nil {
			if len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}
		switch {
		case inComment:
			if b == '\n' {
				inComment = false
			}
		case b == '#':
			inComment = true
		case isSpace(b):
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

// readIntToken reads the next whitespace-delimited token and parses it as
// a non-negative decimal integer.
func readIntToken(r *bufio.Reader) (int, error) {
	tok, err := readToken(r)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("not a valid integer: %q", tok)
	}
	return n, nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}
