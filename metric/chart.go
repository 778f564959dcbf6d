/*
DESCRIPTION
  chart.go renders a size-vs-PSNR chart across the three compression
  formats, used by cmd/mic's report verb.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

package metric

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// FormatPoint is one format's measured file size and PSNR, for plotting.
type FormatPoint struct {
	Format string
	Bytes  int
	PSNR   float64
}

// PlotSizeVsPSNR writes a scatter chart of bytes vs PSNR, one point per
// entry in points, to path, in the image format named by path's extension
// (e.g. ".png").
func PlotSizeVsPSNR(points []FormatPoint, path string) error {
	p := plot.New()
	p.Title.Text = "MIC size vs PSNR by format"
	p.X.Label.Text = "encoded bytes"
	p.Y.Label.Text = "PSNR (dB)"

	xys := make(plotter.XYs, len(points))
	labels := make([]string, len(points))
	for i, pt := range points {
		xys[i].X = float64(pt.Bytes)
		xys[i].Y = pt.PSNR
		labels[i] = pt.Format
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("metric: building scatter: %w", err)
	}
	p.Add(scatter)

	textLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return fmt.Errorf("metric: building labels: %w", err)
	}
	p.Add(textLabels)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("metric: saving chart: %w", err)
	}
	return nil
}
