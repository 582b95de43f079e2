package driver

import (
	"fmt"
	"io"
	"time"

	movingaverage "github.com/RobinUS2/golang-moving-average"

	"github.com/dborchard/ostgen/pkg/config"
	"github.com/dborchard/ostgen/pkg/diskio"
	"github.com/dborchard/ostgen/pkg/fixture"
	"github.com/dborchard/ostgen/pkg/workload"
	"github.com/dborchard/ostgen/pkg/y/rnd"
)

// GenerateFunc builds one fixture from its own random source.
type GenerateFunc func(r rnd.Source) (*workload.Fixture, error)

type Options struct {
	// Seed overrides the config seed. A time based seed is used when
	// neither is set.
	Seed *uint64
	// Workers > 1 generates fixtures on a pool; output is identical to a
	// sequential run with the same seed.
	Workers int
	// Output receives progress and stats lines. nil is silent.
	Output io.Writer
	// ProgressInterval between progress lines; 0 disables them.
	ProgressInterval time.Duration
}

type Stats struct {
	Seed       uint64
	Fixtures   int
	Elapsed    time.Duration
	AvgFixture time.Duration
}

func RunOrderStat(cfg *config.OrderStatConfig, opt Options) (Stats, error) {
	if err := cfg.Validate(); err != nil {
		return Stats{}, err
	}
	gen := func(r rnd.Source) (*workload.Fixture, error) {
		return workload.GenerateOrderStat(r, cfg)
	}
	return run(cfg.Output, pickSeed(opt.Seed, cfg.Seed), gen, opt)
}

func RunRangeCount(cfg *config.RangeCountConfig, opt Options) (Stats, error) {
	if err := cfg.Validate(); err != nil {
		return Stats{}, err
	}
	gen := func(r rnd.Source) (*workload.Fixture, error) {
		return workload.GenerateRangeCount(r, cfg)
	}
	return run(cfg.Output, pickSeed(opt.Seed, cfg.Seed), gen, opt)
}

func pickSeed(override, fromConfig *uint64) uint64 {
	switch {
	case override != nil:
		return *override
	case fromConfig != nil:
		return *fromConfig
	default:
		return rnd.TimeSeed()
	}
}

// encoded is one fixture ready for the writer.
type encoded struct {
	idx     int
	input   []byte
	answers []byte
	genTime time.Duration
	err     error
}

func build(gen GenerateFunc, seed uint64, idx int) encoded {
	start := time.Now()
	f, err := gen(rnd.ForFixture(seed, idx))
	if err != nil {
		return encoded{idx: idx, err: fmt.Errorf("fixture %d: %w", idx, err)}
	}
	e := encoded{idx: idx, input: fixture.EncodeInput(f)}
	if f.HasAnswers() {
		e.answers = fixture.EncodeAnswers(f)
	}
	e.genTime = time.Since(start)
	return e
}

func run(out config.Output, seed uint64, gen GenerateFunc, opt Options) (Stats, error) {
	w, err := diskio.New(out.Path)
	if err != nil {
		return Stats{}, err
	}

	p := newProgress(opt.Output, out.Number, opt.ProgressInterval)
	p.start(seed, out.Path)
	defer p.stop()

	moAvg := movingaverage.New(avgWindow(out.Number))
	startTs := time.Now()

	write := func(e encoded) error {
		if e.err != nil {
			return e.err
		}
		if err := w.Write(e.idx, e.input, e.answers); err != nil {
			return fmt.Errorf("fixture %d: %w", e.idx, err)
		}
		moAvg.Add(float64(e.genTime.Nanoseconds()))
		p.done.Add(1)
		return nil
	}

	if opt.Workers > 1 {
		err = runPooled(out.Number, opt.Workers, seed, gen, write)
	} else {
		for i := 0; i < out.Number && err == nil; i++ {
			err = write(build(gen, seed, i))
		}
	}
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Seed:       seed,
		Fixtures:   out.Number,
		Elapsed:    time.Since(startTs),
		AvgFixture: time.Duration(moAvg.Avg()),
	}
	p.report(stats)
	return stats, nil
}

// moving average over the last 1000 fixtures at most
func avgWindow(n int) int {
	if n > 1000 {
		return 1000
	}
	return n
}
