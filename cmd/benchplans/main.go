package main

import (
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"strconv"
	"strings"
	"time"

	fftnd "github.com/cwbudde/algo-fftnd"
	"github.com/cwbudde/algo-fftnd/internal/cpu"
)

const modeInverse = "inverse"

func main() {
	var (
		shapeList  = flag.String("shapes", "1024;4096;64x64;128x128;32x32x32", "semicolon-separated shapes, axes joined with 'x'")
		iters      = flag.Int("iters", 50, "benchmark iterations")
		warmup     = flag.Int("warmup", 5, "warmup iterations")
		workers    = flag.Int("workers", 1, "worker goroutines per plan")
		mode       = flag.String("mode", "forward", "benchmark mode: forward, inverse, roundtrip, all")
		wisdomFile = flag.String("wisdom", "", "export wisdom to file after benchmarking")
		seed       = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	shapes := parseShapes(*shapeList)
	if len(shapes) == 0 {
		fmt.Println("no shapes specified")
		return
	}

	rnd := rand.New(rand.NewSource(*seed))

	fmt.Printf("cpu: %s\n", cpu.DetectFeatures())
	fmt.Printf("iters=%d warmup=%d workers=%d\n", *iters, *warmup, *workers)
	fmt.Printf("%-16s  %10s  %-24s  %12s\n", "shape", "mode", "decomposition", "ns/op")

	for _, shape := range shapes {
		for _, runMode := range resolveModes(*mode) {
			benchmarkShape(rnd, shape, *iters, *warmup, *workers, runMode)
		}
	}

	if *wisdomFile != "" {
		if err := fftnd.ExportWisdom(*wisdomFile); err != nil {
			fmt.Printf("error exporting wisdom: %v\n", err)
			return
		}

		fmt.Printf("\nwisdom exported to: %s\n", *wisdomFile)
	}
}

func benchmarkShape(rnd *rand.Rand, shape []int, iters, warmup, workers int, mode string) {
	fwd, err := fftnd.NewPlan[complex64](shape, fftnd.Forward, fftnd.WithWorkers(workers))
	if err != nil {
		fmt.Printf("%-16s  %10s  plan error: %v\n", shapeName(shape), mode, err)
		return
	}

	inv, err := fftnd.NewPlan[complex64](shape, fftnd.Inverse, fftnd.WithWorkers(workers))
	if err != nil {
		fmt.Printf("%-16s  %10s  plan error: %v\n", shapeName(shape), mode, err)
		return
	}

	n := fwd.Len()

	src := make([]complex64, n)
	for i := range src {
		src[i] = complex(rnd.Float32(), rnd.Float32())
	}

	dst := make([]complex64, n)
	freq := make([]complex64, n)

	if mode == modeInverse {
		if err := fwd.Transform(freq, src); err != nil {
			fmt.Printf("%-16s  %10s  forward error: %v\n", shapeName(shape), mode, err)
			return
		}
	}

	for i := 0; i < warmup; i++ {
		if err := runPlanMode(fwd, inv, dst, src, freq, mode); err != nil {
			fmt.Printf("%-16s  %10s  error: %v\n", shapeName(shape), mode, err)
			return
		}
	}

	runtime.GC()

	start := time.Now()

	for i := 0; i < iters; i++ {
		if err := runPlanMode(fwd, inv, dst, src, freq, mode); err != nil {
			fmt.Printf("%-16s  %10s  error: %v\n", shapeName(shape), mode, err)
			return
		}
	}

	elapsed := time.Since(start)
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iters)

	fmt.Printf("%-16s  %10s  %-24s  %12.1f\n", shapeName(shape), mode, decompositionName(fwd), nsPerOp)
}

func runPlanMode(fwd, inv *fftnd.Plan[complex64], dst, src, freq []complex64, mode string) error {
	switch mode {
	case modeInverse:
		return inv.Transform(dst, freq)
	case "roundtrip":
		if err := fwd.Transform(freq, src); err != nil {
			return err
		}

		return inv.Transform(dst, freq)
	default:
		return fwd.Transform(dst, src)
	}
}

func resolveModes(mode string) []string {
	switch mode {
	case "all":
		return []string{"forward", "inverse", "roundtrip"}
	case "inverse", "roundtrip", "forward":
		return []string{mode}
	default:
		return []string{"forward"}
	}
}

func parseShapes(list string) [][]int {
	parts := strings.Split(list, ";")

	out := make([][]int, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		axes := strings.Split(part, "x")

		shape := make([]int, 0, len(axes))
		ok := true

		for _, axis := range axes {
			n, err := strconv.Atoi(strings.TrimSpace(axis))
			if err != nil || n <= 0 {
				ok = false
				break
			}

			shape = append(shape, n)
		}

		if ok && len(shape) > 0 {
			out = append(out, shape)
		}
	}

	return out
}

func shapeName(shape []int) string {
	parts := make([]string, len(shape))
	for i, n := range shape {
		parts[i] = strconv.Itoa(n)
	}

	return strings.Join(parts, "x")
}

func decompositionName(p *fftnd.Plan[complex64]) string {
	meta := p.Meta()

	parts := make([]string, 0, len(meta.Axes))
	for _, axis := range meta.Axes {
		factors := make([]string, len(axis.Factors))
		for i, f := range axis.Factors {
			factors[i] = strconv.Itoa(f)
		}

		parts = append(parts, strings.Join(factors, "."))
	}

	return strings.Join(parts, "|")
}
