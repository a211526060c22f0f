package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/dumbsignals/dumb"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	itersKey      = "iters"
	cpuProfileKey = "cpuprofile"
)

var (
	ww = []int{1, 10, 100, 1_000}
	hh = []int{1, 10, 100}
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure dumb signals write-to-settle latency",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Number of timed writes per topology",
				Value: 100,
			},
			&cli.StringFlag{
				Name:  cpuProfileKey,
				Usage: "Write a CPU profile to the given path",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	iters := int(cmd.Uint(itersKey))

	if path := cmd.String(cpuProfileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")
	benchmarkPropagate(1, 1, iters, false)

	tbl := table.NewWriter()
	tbl.SetTitle("Dumb Signals")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			calc := benchmarkPropagate(w, h, iters, true)
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	tbl.Render()
	return nil
}

// benchmarkPropagate builds w chains of h computeds off one source signal,
// attaches an effect to the tail of each chain and times source writes.
func benchmarkPropagate(w, h, iters int, record bool) *tachymeter.Metrics {
	readValue := func(x any) int {
		switch x := x.(type) {
		case *dumb.WriteableSignal[int]:
			return x.Value()
		case *dumb.ReadonlySignal[int]:
			return x.Value()
		default:
			panic("unknown cell type")
		}
	}

	tach := tachymeter.New(&tachymeter.Config{Size: iters})

	rs := dumb.NewReactiveSystem()
	src := dumb.Signal(rs, 1)
	for i := 0; i < w; i++ {
		var last any = src
		for j := 0; j < h; j++ {
			prev := last
			last = dumb.Computed(rs, func() int {
				return readValue(prev) + 1
			})
		}

		tail := last
		dumb.Effect(rs, func() dumb.CleanupFn {
			readValue(tail)
			return nil
		})
	}

	for i := 0; i < iters; i++ {
		start := time.Now()
		src.SetValue(src.Peek() + 1)
		tach.AddTime(time.Since(start))
	}

	if !record {
		return nil
	}
	return tach.Calc()
}
