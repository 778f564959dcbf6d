/*
DESCRIPTION
  Mic is the command line front end for the McMaster Image Codec: it
  parses BMP images to PPM, encodes/decodes .mic files, and compares a
  decompressed image back against its original.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

// Command mic is the McMaster Image Codec's command line tool.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ausocean/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	micc "github.com/mcmaster-ece/mic/container/mic"
	"github.com/mcmaster-ece/mic/format/bmp"
	"github.com/mcmaster-ece/mic/format/ppm"
	"github.com/mcmaster-ece/mic/metric"

	codec "github.com/mcmaster-ece/mic/codec/mic"
)

// Logging related constants, matching the rotation policy used elsewhere
// in the command line tools.
const (
	logPath      = "mic.log"
	logMaxSize   = 10 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = false
)

func main() {
	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log := logging.New(logVerbosity, io.MultiWriter(os.Stderr, fileLog), logSuppress)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "parse":
		err = runParse(os.Args[2:])
	case "encode":
		err = runEncode(os.Args[2:], log)
	case "decode":
		err = runDecode(os.Args[2:], log)
	case "compare":
		err = runCompare(os.Args[2:])
	case "report":
		err = runReport(os.Args[2:], log)
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal("mic: command failed", "command", os.Args[1], "error", err.Error())
	}
}

func usage() {
	fmt.Println(`Usage:
  mic parse input.bmp output.ppm
  mic encode input.ppm format output.mic     (format is 0, 1, or 2)
  mic decode input.mic output.ppm
  mic compare reference.ppm decoded.ppm
  mic report input.ppm output.png            (size/PSNR across all formats)`)
}

func runParse(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 2 {
		return fmt.Errorf("parse: expected input.bmp output.ppm")
	}
	in, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer in.Close()
	img, err := bmp.Decode(in)
	if err != nil {
		return err
	}
	out, err := os.Create(fs.Arg(1))
	if err != nil {
		return err
	}
	defer out.Close()
	return ppm.Encode(out, img)
}

func runEncode(args []string, log logging.Logger) error {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	workers := fs.Int("workers", 0, "number of worker goroutines (0 = GOMAXPROCS)")
	fs.Parse(args)
	if fs.NArg() != 3 {
		return fmt.Errorf("encode: expected input.ppm format output.mic")
	}
	format, err := parseFormat(fs.Arg(1))
	if err != nil {
		return err
	}
	in, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer in.Close()
	img, err := ppm.Decode(in)
	if err != nil {
		return err
	}
	out, err := os.Create(fs.Arg(2))
	if err != nil {
		return err
	}
	defer out.Close()

	enc := micc.NewEncoder(micc.WithLogger(log), micc.WithWorkers(*workers))
	return enc.Encode(out, img, format)
}

func runDecode(args []string, log logging.Logger) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	workers := fs.Int("workers", 0, "number of worker goroutines (0 = GOMAXPROCS)")
	fs.Parse(args)
	if fs.NArg() != 2 {
		return fmt.Errorf("decode: expected input.mic output.ppm")
	}
	in, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer in.Close()

	dec := micc.NewDecoder(micc.WithLogger(log), micc.WithWorkers(*workers))
	img, err := dec.Decode(in)
	if err != nil {
		return err
	}
	out, err := os.Create(fs.Arg(1))
	if err != nil {
		return err
	}
	defer out.Close()
	return ppm.Encode(out, img)
}

func runCompare(args []string) error {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 2 {
		return fmt.Errorf("compare: expected reference.ppm decoded.ppm")
	}
	a, err := readPPM(fs.Arg(0))
	if err != nil {
		return err
	}
	b, err := readPPM(fs.Arg(1))
	if err != nil {
		return err
	}
	res, err := metric.Compare(a, b)
	if err != nil {
		return err
	}
	fmt.Printf("MSE: %.4f\nPSNR: %.2f dB\n", res.MeanSquaredError, res.PSNR)
	return nil
}

func runReport(args []string, log logging.Logger) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 2 {
		return fmt.Errorf("report: expected input.ppm output.png")
	}
	img, err := readPPM(fs.Arg(0))
	if err != nil {
		return err
	}

	var points []metric.FormatPoint
	for _, f := range []codec.Format{codec.Format0, codec.Format1, codec.Format2} {
		var buf bytes.Buffer
		enc := micc.NewEncoder(micc.WithLogger(log))
		if err := enc.Encode(&buf, img, f); err != nil {
			return fmt.Errorf("report: format %d: %w", f, err)
		}
		dec := micc.NewDecoder(micc.WithLogger(log))
		got, err := dec.Decode(bytes.NewReader(buf.Bytes()))
		if err != nil {
			return fmt.Errorf("report: format %d: %w", f, err)
		}
		res, err := metric.Compare(img, got)
		if err != nil {
			return err
		}
		points = append(points, metric.FormatPoint{
			Format: fmt.Sprintf("format%d", f),
			Bytes:  buf.Len(),
			PSNR:   res.PSNR,
		})
	}
	return metric.PlotSizeVsPSNR(points, fs.Arg(1))
}

func readPPM(path string) (*codec.RGBImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ppm.Decode(f)
}

func parseFormat(s string) (codec.Format, error) {
	switch s {
	case "0":
		return codec.Format0, nil
	case "1":
		return codec.Format1, nil
	case "2":
		return codec.Format2, nil
	default:
		return 0, fmt.Errorf("invalid format %q, want 0, 1, or 2", s)
	}
}
