/*
DESCRIPTION
  blocks.go converts between a flat color plane buffer and its row-major
  grid of 8x8 transform blocks.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

package mic

import "github.com/mcmaster-ece/mic/codec/mic"

// planeToBlocks splits a rows x cols plane (row-major bytes) into
// row-major 8x8 blocks.
func planeToBlocks(plane []byte, rows, cols int) []mic.Block {
	bw, bh := mic.BlocksWide(cols), mic.BlocksHigh(rows)
	out := make([]mic.Block, 0, bw*bh)
	for br := 0; br < bh; br++ {
		for bc := 0; bc < bw; bc++ {
			var b mic.Block
			for i := 0; i < mic.BlockSize; i++ {
				row := (br*mic.BlockSize + i) * cols
				col := bc * mic.BlockSize
				for j := 0; j < mic.BlockSize; j++ {
					b[i][j] = int(plane[row+col+j])
				}
			}
			out = append(out, b)
		}
	}
	return out
}

// blocksToPlane is the inverse of planeToBlocks: it writes a row-major
// grid of 8x8 blocks back into a rows x cols plane buffer.
func blocksToPlane(blocks []mic.Block, rows, cols int) []byte {
	bw := mic.BlocksWide(cols)
	plane := make([]byte, rows*cols)
	for idx, b := range blocks {
		br, bc := idx/bw, idx%bw
		for i := 0; i < mic.BlockSize; i++ {
			row := (br*mic.BlockSize + i) * cols
			col := bc * mic.BlockSize
			for j := 0; j < mic.BlockSize; j++ {
				plane[row+col+j] = byte(clampToByteRange(b[i][j]))
			}
		}
	}
	return plane
}

// clampToByteRange guards against a corrupt stream producing an
// out-of-range IDCT output reaching here; InverseDCT already clamps, so
// this is a defensive no-op in the conforming path.
func clampToByteRange(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
