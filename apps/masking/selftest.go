//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"

	"github.com/markkurossi/masking/mask"
	"github.com/markkurossi/masking/prng"
)

type selfTest struct {
	name string
	run  func(src prng.Source, width mask.Width) error
}

var selfTests = []selfTest{
	{
		name: "ArithToBool",
		run:  testArithToBool,
	},
	{
		name: "BoolToArith",
		run:  testBoolToArith,
	},
	{
		name: "KoggeStoneArithToBool",
		run:  testKoggeStoneArithToBool,
	},
	{
		name: "MaskedAdd",
		run:  testMaskedAdd,
	},
}

// runSelfTest runs the test iterations on numWorkers goroutines. Each
// worker gets its own mask source.
func runSelfTest(src prng.Source, width mask.Width, test selfTest,
	iterations, numWorkers int) error {

	if numWorkers < 1 {
		numWorkers = 1
	}
	ch := make(chan error)

	for i := 0; i < numWorkers; i++ {
		wsrc, err := workerSource(src, test.name, i)
		if err != nil {
			return err
		}
		count := iterations / numWorkers
		if i < iterations%numWorkers {
			count++
		}
		go func(src prng.Source, count int) {
			for ; count > 0; count-- {
				err := test.run(src, width)
				if err != nil {
					ch <- err
					return
				}
			}
			ch <- nil
		}(wsrc, count)
	}

	var result error
	for i := 0; i < numWorkers; i++ {
		err := <-ch
		if err != nil && result == nil {
			result = err
		}
	}
	return result
}

// workerSource returns the mask source for the worker id. Seeded
// sources are forked so that the workers' streams are independent
// and reproducible. Other sources are shared, they serialize their
// callers.
func workerSource(src prng.Source, name string, id int) (
	prng.Source, error) {

	c, ok := src.(*prng.ChaCha20)
	if !ok {
		return src, nil
	}
	return c.Fork(fmt.Sprintf("%s/%d", name, id))
}

func words(src prng.Source, width mask.Width, n int) ([]uint64, error) {
	m := width.Mask()
	result := make([]uint64, n)
	for i := range result {
		v, err := src.Uint64()
		if err != nil {
			return nil, err
		}
		result[i] = v & m
	}
	return result, nil
}

func testArithToBool(src prng.Source, width mask.Width) error {
	w, err := words(src, width, 2)
	if err != nil {
		return err
	}
	x, r := w[0], w[1]
	a := (x - r) & width.Mask()

	x1, err := width.ArithToBool(src, a, r)
	if err != nil {
		return err
	}
	if x1^r != x {
		return fmt.Errorf("A=%#x, R=%#x: %#x != %#x", a, r, x1^r, x)
	}
	return nil
}

func testBoolToArith(src prng.Source, width mask.Width) error {
	w, err := words(src, width, 2)
	if err != nil {
		return err
	}
	x, r := w[0], w[1]
	x1 := x ^ r

	a, err := width.BoolToArith(src, x1, r)
	if err != nil {
		return err
	}
	if (a+r)&width.Mask() != x {
		return fmt.Errorf("x1=%#x, R=%#x: %#x != %#x",
			x1, r, (a+r)&width.Mask(), x)
	}
	return nil
}

func testKoggeStoneArithToBool(src prng.Source, width mask.Width) error {
	w, err := words(src, width, 5)
	if err != nil {
		return err
	}
	x, r := w[0], w[1]
	a := (x - r) & width.Mask()

	x1, err := width.KoggeStoneArithToBool(a, r, w[2], w[3], w[4])
	if err != nil {
		return err
	}
	if x1^r != x {
		return fmt.Errorf("A=%#x, R=%#x: %#x != %#x", a, r, x1^r, x)
	}
	return nil
}

func testMaskedAdd(src prng.Source, width mask.Width) error {
	w, err := words(src, width, 6)
	if err != nil {
		return err
	}
	x, s, y, r := w[0], w[1], w[2], w[3]

	z1, z2, err := width.MaskedAdd(x^s, s, y^r, r, w[4], w[5])
	if err != nil {
		return err
	}
	sum := (x + y) & width.Mask()
	if z1^z2 != sum {
		return fmt.Errorf("x=%#x, y=%#x: %#x != %#x", x, y, z1^z2, sum)
	}
	return nil
}
