package workload

import "fmt"

type Mode int

const (
	RangeCountMode Mode = iota
	OrderStatMode
)

func (m Mode) String() string {
	switch m {
	case RangeCountMode:
		return "range_count"
	case OrderStatMode:
		return "order_stat"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Query is one of RangeCount, Rank or LessThanCount.
type Query interface {
	isQuery()
}

// RangeCount asks how many keys lie in [Low, High].
type RangeCount struct {
	Low, High int64
}

// Rank asks for the Index-th smallest key, 1-based.
type Rank struct {
	Index int
}

// LessThanCount asks how many keys are strictly less than Value.
type LessThanCount struct {
	Value int64
}

func (RangeCount) isQuery()    {}
func (Rank) isQuery()          {}
func (LessThanCount) isQuery() {}

// Fixture is one generated test instance. Keys keep their draw order.
// Answers is nil for input-only fixtures; otherwise Answers[i] is the
// expected result of Queries[i].
type Fixture struct {
	Mode    Mode
	Keys    []int64
	Queries []Query
	Answers []int64
}

func (f *Fixture) HasAnswers() bool {
	return f.Answers != nil
}
