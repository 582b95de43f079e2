package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/dborchard/ostgen/pkg/config"
	"github.com/dborchard/ostgen/pkg/driver"
)

// Generates order statistics fixtures: test{i}.dat with k/m/n operations and
// test{i}.dat.ans with the expected answers.
func main() {
	configPath := flag.String("config_path", "", "Path to config file.")
	seed := flag.Uint64("seed", 0, "Random seed (overrides the config seed).")
	workers := flag.Int("workers", 1, "Number of generator goroutines.")
	flag.Parse()

	if *configPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadOrderStat(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	opt := driver.Options{
		Workers:          *workers,
		Output:           os.Stdout,
		ProgressInterval: 5 * time.Second,
	}
	if isFlagSet("seed") {
		opt.Seed = seed
	}

	if _, err := driver.RunOrderStat(cfg, opt); err != nil {
		log.Fatal(err)
	}
}

func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
