package keygen

import (
	"fmt"

	"github.com/dborchard/ostgen/pkg/config"
	"github.com/dborchard/ostgen/pkg/y/rnd"
)

// pool-based sampling is used while the value domain is at most this many
// times the sample size; beyond that a rejection set is cheaper.
const poolFactor = 4

// SampleKeys draws n uniformly from [count.Min, count.Max) and then n distinct
// values uniformly from [values.Min, values.Max). The result is in draw order.
func SampleKeys(r rnd.Source, values, count config.Range) ([]int64, error) {
	if count.Max <= count.Min {
		return nil, fmt.Errorf("%w: empty count range [%d, %d)", config.ErrConfiguration, count.Min, count.Max)
	}
	if count.Min < 0 {
		return nil, fmt.Errorf("%w: negative count %d", config.ErrConfiguration, count.Min)
	}
	if values.Max <= values.Min {
		return nil, fmt.Errorf("%w: empty value range [%d, %d)", config.ErrConfiguration, values.Min, values.Max)
	}
	if uint64(count.Max-1) > values.Size() {
		return nil, fmt.Errorf("%w: cannot draw up to %d distinct keys from %d values",
			config.ErrConfiguration, count.Max-1, values.Size())
	}

	n := rnd.IntRange(r, count.Min, count.Max)
	return Distinct(r, values.Min, values.Max, int(n)), nil
}

// Distinct draws n distinct values from [lo, hi) without replacement.
// The caller guarantees hi-lo >= n.
func Distinct(r rnd.Source, lo, hi int64, n int) []int64 {
	size := uint64(hi - lo)
	keys := make([]int64, 0, n)
	if n == 0 {
		return keys
	}

	if size <= uint64(n)*poolFactor {
		// partial Fisher-Yates over the whole domain
		pool := make([]int64, size)
		for i := range pool {
			pool[i] = lo + int64(i)
		}
		for i := 0; i < n; i++ {
			j := i + int(r.Uint64n(size-uint64(i)))
			pool[i], pool[j] = pool[j], pool[i]
			keys = append(keys, pool[i])
		}
		return keys
	}

	seen := make(map[int64]struct{}, n)
	for len(keys) < n {
		k := rnd.IntRange(r, lo, hi)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}
