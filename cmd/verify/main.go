package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dborchard/ostgen/pkg/verify"
	"github.com/dborchard/ostgen/pkg/workload"
)

func main() {
	dir := flag.String("dir", "", "Directory holding test{i}.dat and test{i}.dat.ans.")
	rangeCount := flag.Bool("range_count", false, "Fixtures are range count fixtures.")
	flag.Parse()

	if *dir == "" {
		flag.Usage()
		os.Exit(2)
	}

	mode := workload.OrderStatMode
	if *rangeCount {
		mode = workload.RangeCountMode
	}

	n, err := verify.Dir(*dir, mode)
	if err != nil {
		log.Fatalf("after %d good fixtures: %v", n, err)
	}
	fmt.Printf("Verified %d fixtures in %s \n", n, *dir)
}
