/*
DESCRIPTION
  pipeline.go provides the bounded worker pools the Encoder/Decoder use to
  parallelize per-block work across the independent blocks of one plane
  (spec.md section 5 explicitly allows this: "DCT, quantization, and
  block-level entropy encoding of distinct blocks are independent").
  Entropy encoding itself stays serial per plane since bit offsets chain;
  DCT, quantization, dequantization and IDCT are each their own stage here
  (rather than fused), so the pipeline driver has a real post-DCT and a
  real post-quantization buffer to hand to a Visitor.

  Grounded on the wg sync.WaitGroup pattern used for goroutine lifecycle
  management in protocol/rtcp/client.go.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

package mic

import (
	"runtime"
	"sync"

	"github.com/mcmaster-ece/mic/codec/mic"
)

// workerCount clamps workers to [1,len(n)], falling back to
// runtime.GOMAXPROCS(0) when workers<=0.
func workerCount(workers, n int) int {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// dctBlocksParallel runs ForwardDCT over every block in xs using up to
// workers goroutines, preserving block order in the result.
func dctBlocksParallel(c mic.CoeffMatrix, xs []mic.Block, workers int) []mic.Block {
	out := make([]mic.Block, len(xs))
	if len(xs) == 0 {
		return out
	}
	workers = workerCount(workers, len(xs))
	if workers <= 1 {
		for i, x := range xs {
			out[i] = mic.ForwardDCT(c, x)
		}
		return out
	}

	var wg sync.WaitGroup
	chunk := (len(xs) + workers - 1) / workers
	for start := 0; start < len(xs); start += chunk {
		end := start + chunk
		if end > len(xs) {
			end = len(xs)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				out[i] = mic.ForwardDCT(c, xs[i])
			}
		}(start, end)
	}
	wg.Wait()
	return out
}

// quantizeBlocksParallel runs QuantizeChecked over every block in xs using
// up to workers goroutines, preserving block order in the result. The
// first InternalError any goroutine observes is returned; the codec's own
// invariants should make this impossible for a block that came from
// dctBlocksParallel.
func quantizeBlocksParallel(f mic.Format, xs []mic.Block, workers int) ([]mic.Block, error) {
	out := make([]mic.Block, len(xs))
	if len(xs) == 0 {
		return out, nil
	}
	workers = workerCount(workers, len(xs))
	if workers <= 1 {
		for i, x := range xs {
			q, err := mic.QuantizeChecked(f, x)
			if err != nil {
				return nil, err
			}
			out[i] = q
		}
		return out, nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	chunk := (len(xs) + workers - 1) / workers
	for start := 0; start < len(xs); start += chunk {
		end := start + chunk
		if end > len(xs) {
			end = len(xs)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				q, err := mic.QuantizeChecked(f, xs[i])
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
				out[i] = q
			}
		}(start, end)
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// dequantizeBlocksParallel runs Dequantize over every block in qs using up
// to workers goroutines, preserving block order in the result.
func dequantizeBlocksParallel(f mic.Format, qs []mic.Block, workers int) []mic.Block {
	out := make([]mic.Block, len(qs))
	if len(qs) == 0 {
		return out
	}
	workers = workerCount(workers, len(qs))
	if workers <= 1 {
		for i, q := range qs {
			out[i] = mic.Dequantize(f, q)
		}
		return out
	}

	var wg sync.WaitGroup
	chunk := (len(qs) + workers - 1) / workers
	for start := 0; start < len(qs); start += chunk {
		end := start + chunk
		if end > len(qs) {
			end = len(qs)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				out[i] = mic.Dequantize(f, qs[i])
			}
		}(start, end)
	}
	wg.Wait()
	return out
}

// idctBlocksParallel runs InverseDCT over every block in ys using up to
// workers goroutines, preserving block order in the result.
func idctBlocksParallel(c mic.CoeffMatrix, ys []mic.Block, workers int) []mic.Block {
	out := make([]mic.Block, len(ys))
	if len(ys) == 0 {
		return out
	}
	workers = workerCount(workers, len(ys))
	if workers <= 1 {
		for i, y := range ys {
			out[i] = mic.InverseDCT(c, y)
		}
		return out
	}

	var wg sync.WaitGroup
	chunk := (len(ys) + workers - 1) / workers
	for start := 0; start < len(ys); start += chunk {
		end := start + chunk
		if end > len(ys) {
			end = len(ys)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				out[i] = mic.InverseDCT(c, ys[i])
			}
		}(start, end)
	}
	wg.Wait()
	return out
}
