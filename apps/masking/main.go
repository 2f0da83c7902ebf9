//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/markkurossi/masking/env"
	"github.com/markkurossi/masking/leakage"
	"github.com/markkurossi/masking/mask"
	"github.com/markkurossi/masking/prng"
	"github.com/markkurossi/masking/timing"
	"github.com/markkurossi/text/superscript"
)

var (
	verbose = false
)

func main() {
	fWidth := flag.String("w", "32", "word width: 8, 16, 32, or 64")
	iterations := flag.Int("n", 100000, "self-test iterations per operation")
	numWorkers := flag.Int("workers", 4, "number of self-test workers")
	seed := flag.String("seed", "",
		"hex-encoded 32-byte seed for deterministic masks")
	fLeakage := flag.Bool("leakage", false, "run leakage assessment")
	traces := flag.Int("traces", 10000, "leakage assessment traces")
	all := flag.Bool("all", false, "print all assessed intermediates")
	fTiming := flag.Bool("timing", false, "print timing report")
	fVerbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	verbose = *fVerbose

	width, err := mask.ParseWidth(*fWidth)
	if err != nil {
		fmt.Printf("%s\n", err)
		os.Exit(1)
	}

	config := &env.Config{
		Verbose: verbose,
	}
	if len(*seed) > 0 {
		config.Seed, err = hex.DecodeString(*seed)
		if err != nil {
			log.Fatalf("invalid seed: %s", err)
		}
	}
	src, err := config.NewSource()
	if err != nil {
		log.Fatal(err)
	}

	if verbose {
		err = demo(src, width)
		if err != nil {
			log.Fatal(err)
		}
	}

	prof := timing.New()
	var failed bool

	for _, test := range selfTests {
		err = runSelfTest(src, width, test, *iterations, *numWorkers)
		if err != nil {
			fmt.Printf("FAILURE %s: %s\n", test.name, err)
			failed = true
		} else {
			fmt.Printf("SUCCESS %s\n", test.name)
		}
		prof.Sample(test.name, *iterations, []string{width.String()})
	}

	if *fLeakage {
		params := leakage.NewParams()
		params.Traces = *traces
		params.Verbose = verbose

		for _, target := range leakage.Targets {
			report, err := assess(src, width, target, params)
			if err != nil {
				log.Fatal(err)
			}
			report.Print(os.Stdout, *all)
			if len(report.Leaking()) > 0 {
				failed = true
			}
			prof.Sample("Leakage "+target.String(), *traces,
				[]string{width.String()})
		}
	}

	if *fTiming {
		prof.Print(os.Stdout, "Width")
	}
	if failed {
		os.Exit(1)
	}
}

// demo prints one masked addition step by step.
func demo(src prng.Source, width mask.Width) error {
	m := width.Mask()

	var words [6]uint64
	for i := range words {
		v, err := src.Uint64()
		if err != nil {
			return err
		}
		words[i] = v & m
	}
	x1, s, y1, r, t, u := words[0], words[1], words[2], words[3],
		words[4], words[5]

	z1, z2, err := width.MaskedAdd(x1, s, y1, r, t, u)
	if err != nil {
		return err
	}
	one := superscript.Itoa(1)
	two := superscript.Itoa(2)

	fmt.Printf("%v masked addition:\n", width)
	fmt.Printf("  x%s=%#x, x%s=%#x\n", one, x1, two, s)
	fmt.Printf("  y%s=%#x, y%s=%#x\n", one, y1, two, r)
	fmt.Printf("  z%s=%#x, z%s=%#x\n", one, z1, two, z2)
	fmt.Printf("  x+y=%#x, z=%#x\n", ((x1^s)+(y1^r))&m, z1^z2)

	return nil
}

func assess(src prng.Source, width mask.Width, target leakage.Target,
	params *leakage.Params) (*leakage.Report, error) {

	switch width {
	case mask.W8:
		return leakage.Assess[uint8](src, target, params)
	case mask.W16:
		return leakage.Assess[uint16](src, target, params)
	case mask.W32:
		return leakage.Assess[uint32](src, target, params)
	case mask.W64:
		return leakage.Assess[uint64](src, target, params)
	default:
		return nil, width.Validate()
	}
}
