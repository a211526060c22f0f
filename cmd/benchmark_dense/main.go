package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/dumbsignals/dumb"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

func main() {
	log.Print("Starting dumb signals dense benchmark, please wait...")
	defer log.Print("Finished dumb signals dense benchmark")

	cfgs := []denseTestConfig{
		{
			name:        "simple",
			width:       10,
			totalLayers: 5,
			nSources:    2,
			iterations:  10_000,
		},
		{
			name:            "dynamic",
			width:           10,
			totalLayers:     10,
			nSources:        4,
			dynamicFraction: 0.25,
			iterations:      2_000,
		},
		{
			name:        "wide dense",
			width:       1_000,
			totalLayers: 5,
			nSources:    25,
			iterations:  100,
		},
		{
			name:        "deep",
			width:       5,
			totalLayers: 500,
			nSources:    3,
			iterations:  100,
		},
	}

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{
		"framework", "size", "nSources", "dynamic%",
		"nTimes", "test", "time", "updateRate", "digest",
	})

	testRepeats := 3
	for _, cfg := range cfgs {
		log.Printf("Running '%s' config", cfg.name)

		bestDuration := time.Hour
		bestCount := int64(0)
		var digest uint64
		haveDigest := false

		for i := 0; i < testRepeats; i++ {
			// a fresh graph per repeat: the run is then a pure function of
			// the seed and the write sequence, so every repeat must produce
			// the same digest
			counter := new(int64)
			g := makeDenseGraph(cfg, counter)
			*counter = 0 // construction settles the graph; count only the writes

			start := time.Now()
			d := runDenseGraph(g, cfg)
			duration := time.Since(start)

			if !haveDigest {
				digest, haveDigest = d, true
			} else if d != digest {
				log.Fatalf("digest mismatch on repeat %d of %q: %016x != %016x", i, cfg.name, d, digest)
			}

			if duration < bestDuration {
				bestDuration = duration
				bestCount = *counter
			}
		}

		updateRate := float64(bestCount) / (float64(bestDuration) / float64(time.Millisecond))
		tbl.Append([]string{
			"dumb",
			fmt.Sprintf("%dx%d", cfg.width, cfg.totalLayers),
			fmt.Sprint(cfg.nSources),
			fmt.Sprint(cfg.dynamicFraction),
			humanize.Comma(int64(cfg.iterations)),
			cfg.name,
			fmt.Sprint(bestDuration),
			humanize.Comma(int64(updateRate)),
			fmt.Sprintf("%016x", digest),
		})
	}
	tbl.Render()
}

type denseTestConfig struct {
	name            string
	width           int     // cells per layer
	totalLayers     int     // layers including the source layer
	nSources        int     // reads per cell from the previous layer
	dynamicFraction float64 // fraction of cells that switch a source on a condition
	iterations      int
}

// denseGraph drives every leaf through an effect; the effects are the
// subscribers that pull the leaf computeds, so leafVals always holds the
// settled leaf state.
type denseGraph struct {
	rs       *dumb.ReactiveSystem
	sources  []*dumb.WriteableSignal[int]
	leafVals []int
}

func readCell(x any) int {
	switch x := x.(type) {
	case *dumb.WriteableSignal[int]:
		return x.Value()
	case *dumb.ReadonlySignal[int]:
		return x.Value()
	default:
		panic("unknown cell type")
	}
}

func makeDenseGraph(cfg denseTestConfig, counter *int64) *denseGraph {
	random := rand.New(rand.NewSource(42))
	rs := dumb.NewReactiveSystem()

	sources := make([]*dumb.WriteableSignal[int], cfg.width)
	prev := make([]any, cfg.width)
	for i := range sources {
		sources[i] = dumb.Signal(rs, i)
		prev[i] = sources[i]
	}

	for layer := 1; layer < cfg.totalLayers; layer++ {
		row := make([]any, cfg.width)
		for i := 0; i < cfg.width; i++ {
			picks := make([]any, cfg.nSources)
			for j := range picks {
				picks[j] = prev[random.Intn(len(prev))]
			}
			dynamic := cfg.nSources >= 3 && random.Float64() < cfg.dynamicFraction

			row[i] = dumb.Computed(rs, func() int {
				*counter++
				sum := 0
				rest := picks
				if dynamic {
					// the first pick decides which of the next two feeds in,
					// so the cell's dependency set changes shape over time
					if readCell(picks[0])%2 == 0 {
						sum += readCell(picks[1])
					} else {
						sum += readCell(picks[2])
					}
					rest = picks[3:]
				}
				for _, p := range rest {
					sum += readCell(p)
				}
				return sum
			})
		}
		prev = row
	}

	g := &denseGraph{
		rs:       rs,
		sources:  sources,
		leafVals: make([]int, cfg.width),
	}
	for i, cell := range prev {
		i := i
		leaf := cell.(*dumb.ReadonlySignal[int])
		dumb.Effect(rs, func() dumb.CleanupFn {
			g.leafVals[i] = leaf.Value()
			return nil
		})
	}
	return g
}

// runDenseGraph repeatedly writes a rotating source inside a batch and folds
// the leaf state the effects maintain into a digest.
func runDenseGraph(g *denseGraph, cfg denseTestConfig) uint64 {
	d := xxhash.New()
	for i := 0; i < cfg.iterations; i++ {
		src := g.sources[i%len(g.sources)]
		g.rs.Batch(func() {
			src.SetValue(src.Peek() + i + 1)
		})
		for _, v := range g.leafVals {
			fmt.Fprintf(d, "%d,", v)
		}
	}
	return d.Sum64()
}
