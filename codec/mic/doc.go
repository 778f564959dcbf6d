/*
DESCRIPTION
  doc.go provides package level documentation for mic.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

// Package mic implements the core McMaster Image Codec (MIC) transform
// pipeline: colorspace conversion, chroma resampling, block DCT/IDCT,
// quantization, zigzag scanning and the entropy codec, plus the bit-level
// I/O primitives the entropy codec rides on.
//
// Everything in this package is pure and allocation-light by design: no
// package-level mutable state is kept between calls, so a single process
// can run many encodes/decodes concurrently. The higher-level framing
// (the MIC file header, the per-plane pipeline driver) lives in the
// sibling container/mic package.
package mic
