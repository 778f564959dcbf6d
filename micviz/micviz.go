//go:build withcv
// +build withcv

/*
DESCRIPTION
  micviz implements a codec/mic.Visitor that dumps intermediate pipeline
  stages (post-downsample planes, post-quantize coefficients) to image
  files via gocv, for debugging a format or quantizer change. Isolated
  behind the withcv build tag exactly like exp/gocv-exp, so the
  conforming encode/decode path never links against OpenCV.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

package micviz

import (
	"fmt"
	"path/filepath"

	"gocv.io/x/gocv"

	"github.com/ausocean/utils/logging"

	"github.com/mcmaster-ece/mic/codec/mic"
)

// Dumper is a mic.Visitor that writes one grayscale PNG per stage/plane
// call into dir, named "<stage>-<plane>.png".
type Dumper struct {
	dir string
	log logging.Logger
}

// NewDumper returns a Dumper writing into dir.
func NewDumper(dir string, log logging.Logger) *Dumper {
	return &Dumper{dir: dir, log: log}
}

// Stage implements mic.Visitor. Unrecognized data shapes are logged and
// skipped rather than causing a panic, since a Visitor is a debugging aid
// and must never abort a real encode/decode.
func (d *Dumper) Stage(stage string, plane mic.Plane, data any) {
	mat, err := toMat(data)
	if err != nil {
		d.log.Debug("micviz: skipping stage", "stage", stage, "plane", plane.String(), "reason", err.Error())
		return
	}
	defer mat.Close()

	path := filepath.Join(d.dir, fmt.Sprintf("%s-%s.png", stage, plane.String()))
	if ok := gocv.IMWrite(path, mat); !ok {
		d.log.Warning("micviz: could not write debug image", "path", path)
		return
	}
	d.log.Debug("micviz: wrote debug image", "path", path)
}

// toMat converts the data shapes produced by the encode/decode pipeline
// ([]byte planes, *mic.YUV422Image, and the per-stage coefficient images)
// into a single-channel gocv.Mat suitable for visual inspection.
func toMat(data any) (gocv.Mat, error) {
	switch v := data.(type) {
	case []byte:
		return byteMat(v, 1, len(v))
	case *mic.YUV422Image:
		return byteMat(v.Y, v.Rows, v.Cols)
	case *mic.CoeffImage:
		blocks := coeffImagePlane(v)
		if blocks == nil {
			return gocv.Mat{}, fmt.Errorf("micviz: CoeffImage has no populated plane")
		}
		return blockGridMat(blocks)
	case *mic.QuantizedImage:
		blocks := quantizedImagePlane(v)
		if blocks == nil {
			return gocv.Mat{}, fmt.Errorf("micviz: QuantizedImage has no populated plane")
		}
		return blockGridMat(blocks)
	default:
		return gocv.Mat{}, fmt.Errorf("micviz: unsupported stage data type %T", data)
	}
}

// coeffImagePlane returns whichever of ci's Y/U/V block slices is
// non-nil; the pipeline driver only ever populates one per call.
func coeffImagePlane(ci *mic.CoeffImage) []mic.Block {
	switch {
	case ci.YBlocks != nil:
		return ci.YBlocks
	case ci.UBlocks != nil:
		return ci.UBlocks
	case ci.VBlocks != nil:
		return ci.VBlocks
	default:
		return nil
	}
}

// quantizedImagePlane is coeffImagePlane's QuantizedImage counterpart.
func quantizedImagePlane(qi *mic.QuantizedImage) []mic.Block {
	switch {
	case qi.YBlocks != nil:
		return qi.YBlocks
	case qi.UBlocks != nil:
		return qi.UBlocks
	case qi.VBlocks != nil:
		return qi.VBlocks
	default:
		return nil
	}
}

func byteMat(plane []byte, rows, cols int) (gocv.Mat, error) {
	if rows*cols != len(plane) {
		return gocv.Mat{}, fmt.Errorf("micviz: plane length %d does not match %dx%d", len(plane), rows, cols)
	}
	mat := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8U)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			mat.SetUCharAt(row, col, plane[row*cols+col])
		}
	}
	return mat, nil
}

// blockGridMat lays out a block slice as a square-ish grid of 8x8 tiles,
// intensity-scaled so coefficient magnitude (rather than the raw signed
// value) is what's visible.
func blockGridMat(blocks []mic.Block) (gocv.Mat, error) {
	if len(blocks) == 0 {
		return gocv.Mat{}, fmt.Errorf("micviz: empty block slice")
	}
	cols := 1
	for cols*cols < len(blocks) {
		cols++
	}
	rows := (len(blocks) + cols - 1) / cols

	mat := gocv.NewMatWithSize(rows*mic.BlockSize, cols*mic.BlockSize, gocv.MatTypeCV8U)
	for idx, b := range blocks {
		br, bc := idx/cols, idx%cols
		for i := 0; i < mic.BlockSize; i++ {
			for j := 0; j < mic.BlockSize; j++ {
				mat.SetUCharAt(br*mic.BlockSize+i, bc*mic.BlockSize+j, magnitudeByte(b[i][j]))
			}
		}
	}
	return mat, nil
}

func magnitudeByte(v int) byte {
	if v < 0 {
		v = -v
	}
	if v > 255 {
		v = 255
	}
	return byte(v)
}
