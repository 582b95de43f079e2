package workload

import (
	"fmt"

	"github.com/dborchard/ostgen/pkg/config"
	"github.com/dborchard/ostgen/pkg/oracle"
	"github.com/dborchard/ostgen/pkg/y/keygen"
	"github.com/dborchard/ostgen/pkg/y/rnd"
)

// SampleRangeQueries draws r from count, then r RangeCount queries with
// low uniform in [min(keys), max(keys)] and high uniform in [low, max(keys)].
func SampleRangeQueries(r rnd.Source, keys *oracle.KeySet, count config.Range) ([]Query, error) {
	if count.Max <= count.Min {
		return nil, fmt.Errorf("%w: empty requests range [%d, %d)", config.ErrConfiguration, count.Min, count.Max)
	}
	n := rnd.IntRange(r, count.Min, count.Max)
	if n == 0 {
		return []Query{}, nil
	}

	lo, ok := keys.Min()
	if !ok {
		return nil, fmt.Errorf("%w: %d range queries over an empty key set", config.ErrConfiguration, n)
	}
	hi, _ := keys.Max()

	lowGen := keygen.NewUniform(lo, hi)
	queries := make([]Query, 0, n)
	for i := int64(0); i < n; i++ {
		low := lowGen.Next(r)
		high := keygen.NewUniform(low, hi).Next(r)
		queries = append(queries, RangeCount{Low: low, High: high})
	}
	return queries, nil
}

// GenerateRangeCount builds one range-count fixture. Answers are filled only
// when cfg.Answers is set.
func GenerateRangeCount(r rnd.Source, cfg *config.RangeCountConfig) (*Fixture, error) {
	keys, err := keygen.SampleKeys(r, *cfg.Integers, *cfg.Inserts)
	if err != nil {
		return nil, err
	}
	set := oracle.NewKeySet(keys)

	queries, err := SampleRangeQueries(r, set, *cfg.Requests)
	if err != nil {
		return nil, err
	}

	f := &Fixture{Mode: RangeCountMode, Keys: keys, Queries: queries}
	if cfg.Answers {
		f.Answers = make([]int64, len(queries))
		for i, q := range queries {
			rc := q.(RangeCount)
			f.Answers[i] = int64(set.CountInRange(rc.Low, rc.High))
		}
	}
	return f, nil
}
