package main

import (
	"fmt"

	"github.com/dborchard/ostgen/pkg/config"
	"github.com/dborchard/ostgen/pkg/y/keygen"
	"github.com/dborchard/ostgen/pkg/y/rnd"
)

func main() {

	r := rnd.New(rnd.TimeSeed())
	keys, err := keygen.SampleKeys(r, config.Range{Min: 0, Max: 100}, config.Range{Min: 5, Max: 10})
	if err != nil {
		panic(err)
	}

	for _, key := range keys {
		fmt.Println(key)
	}
}
