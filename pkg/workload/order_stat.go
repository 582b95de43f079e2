package workload

import (
	"fmt"

	"github.com/dborchard/ostgen/pkg/config"
	"github.com/dborchard/ostgen/pkg/oracle"
	"github.com/dborchard/ostgen/pkg/y/keygen"
	"github.com/dborchard/ostgen/pkg/y/rnd"
)

type OrderStatOptions struct {
	KthQueries  config.Range
	LessQueries config.Range

	// DrawLessCount uses a fresh draw from LessQueries for the number of
	// less-than queries. Off by default: the rank query count is reused.
	DrawLessCount bool
	// IncludeMaxRank makes |keys| a reachable rank index.
	IncludeMaxRank bool
}

// SampleOrderStatQueries emits the rank queries followed by the less-than
// queries, with answers[i] holding the oracle result of queries[i].
func SampleOrderStatQueries(r rnd.Source, keys *oracle.KeySet, opt OrderStatOptions) (queries []Query, answers []int64, err error) {
	for _, nr := range []struct {
		name string
		config.Range
	}{{"kth_queries", opt.KthQueries}, {"less_queries", opt.LessQueries}} {
		if nr.Max <= nr.Min {
			return nil, nil, fmt.Errorf("%w: empty %s range [%d, %d)", config.ErrConfiguration, nr.name, nr.Min, nr.Max)
		}
	}

	n := keys.Len()
	kCount := rnd.IntRange(r, opt.KthQueries.Min, opt.KthQueries.Max)

	maxIndex := n - 1
	if opt.IncludeMaxRank {
		maxIndex = n
	}
	if kCount > 0 && maxIndex < 1 {
		return nil, nil, fmt.Errorf("%w: no rank index to draw from a key set of size %d", config.ErrConfiguration, n)
	}

	queries = make([]Query, 0, 2*kCount)
	answers = make([]int64, 0, 2*kCount)

	// 1. rank queries
	indexGen := keygen.NewUniform(1, int64(maxIndex))
	for i := int64(0); i < kCount; i++ {
		index := int(indexGen.Next(r))
		key, _ := keys.Rank(index)
		queries = append(queries, Rank{Index: index})
		answers = append(answers, key)
	}

	// 2. less-than queries. The less count is always drawn so that toggling
	// DrawLessCount does not shift the remaining draws.
	lessCount := rnd.IntRange(r, opt.LessQueries.Min, opt.LessQueries.Max)
	if !opt.DrawLessCount {
		lessCount = kCount
	}
	if lessCount == 0 {
		return queries, answers, nil
	}

	lo, ok := keys.Min()
	if !ok {
		return nil, nil, fmt.Errorf("%w: %d less-than queries over an empty key set", config.ErrConfiguration, lessCount)
	}
	hi, _ := keys.Max()

	valueGen := keygen.NewUniform(lo, hi)
	for i := int64(0); i < lessCount; i++ {
		value := valueGen.Next(r)
		queries = append(queries, LessThanCount{Value: value})
		answers = append(answers, int64(keys.CountLess(value)))
	}
	return queries, answers, nil
}

// GenerateOrderStat builds one order-statistics fixture with its answers.
func GenerateOrderStat(r rnd.Source, cfg *config.OrderStatConfig) (*Fixture, error) {
	keys, err := keygen.SampleKeys(r, *cfg.Integers, *cfg.Elements)
	if err != nil {
		return nil, err
	}
	set := oracle.NewKeySet(keys)

	queries, answers, err := SampleOrderStatQueries(r, set, OrderStatOptions{
		KthQueries:     *cfg.KthQueries,
		LessQueries:    *cfg.LessQueries,
		DrawLessCount:  cfg.DrawLessCount,
		IncludeMaxRank: cfg.IncludeMaxRank,
	})
	if err != nil {
		return nil, err
	}

	return &Fixture{Mode: OrderStatMode, Keys: keys, Queries: queries, Answers: answers}, nil
}
