package driver

import (
	"errors"
	"sync/atomic"

	"github.com/alphadose/zenq/v2"
	"github.com/panjf2000/ants/v2"
)

var errAborted = errors.New("aborted")

// runPooled builds fixtures on an ants pool and hands them over a zenq queue
// to the calling goroutine, which is the only one touching the disk.
// The first failing fixture aborts the run.
func runPooled(n, workers int, seed uint64, gen GenerateFunc, write func(encoded) error) error {
	pool, err := ants.NewPool(workers)
	if err != nil {
		return err
	}
	defer pool.Release()

	queue := zenq.New[encoded](1 << 10)
	defer queue.Close()

	var failed atomic.Bool

	// Producer
	go func() {
		for i := 0; i < n; i++ {
			idx := i
			err := pool.Submit(func() {
				if failed.Load() {
					queue.Write(encoded{idx: idx, err: errAborted})
					return
				}
				queue.Write(build(gen, seed, idx))
			})
			if err != nil {
				queue.Write(encoded{idx: idx, err: err})
			}
		}
	}()

	// Single writer. Every index yields exactly one queue item, so the loop
	// drains n items even after a failure.
	var firstErr error
	for got := 0; got < n; got++ {
		e, isQueueOpen := queue.Read()
		if !isQueueOpen {
			break
		}
		if firstErr != nil {
			continue
		}
		if firstErr = write(e); firstErr != nil {
			failed.Store(true)
		}
	}
	return firstErr
}
