package verify

import (
	"errors"
	"fmt"
	"os"

	"github.com/dborchard/ostgen/pkg/diskio"
	"github.com/dborchard/ostgen/pkg/fixture"
	"github.com/dborchard/ostgen/pkg/oracle"
	"github.com/dborchard/ostgen/pkg/workload"
)

var ErrNoAnswers = errors.New("fixture has no answers")

// MismatchError reports the first answer that disagrees with the oracle.
type MismatchError struct {
	Index int
	Query workload.Query
	Want  int64
	Got   int64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("answer %d for %#v: want %d, got %d", e.Index, e.Query, e.Want, e.Got)
}

// Expected recomputes the answer of every query of f.
func Expected(f *workload.Fixture) ([]int64, error) {
	set := oracle.NewKeySet(f.Keys)
	if set.Len() != len(f.Keys) {
		return nil, fmt.Errorf("%w: duplicate keys", fixture.ErrMalformed)
	}

	want := make([]int64, len(f.Queries))
	for i, q := range f.Queries {
		switch q := q.(type) {
		case workload.RangeCount:
			want[i] = int64(set.CountInRange(q.Low, q.High))
		case workload.Rank:
			k, ok := set.Rank(q.Index)
			if !ok {
				return nil, fmt.Errorf("%w: query %d: rank %d out of [1, %d]", fixture.ErrMalformed, i, q.Index, set.Len())
			}
			want[i] = k
		case workload.LessThanCount:
			want[i] = int64(set.CountLess(q.Value))
		default:
			return nil, fmt.Errorf("%w: query %d: unknown query %T", fixture.ErrMalformed, i, q)
		}
	}
	return want, nil
}

// Fixture checks f.Answers against the oracle.
func Fixture(f *workload.Fixture) error {
	if !f.HasAnswers() {
		return ErrNoAnswers
	}
	want, err := Expected(f)
	if err != nil {
		return err
	}
	for i := range want {
		if want[i] != f.Answers[i] {
			return &MismatchError{Index: i, Query: f.Queries[i], Want: want[i], Got: f.Answers[i]}
		}
	}
	return nil
}

// Streams decodes an input/answer pair and checks it.
func Streams(mode workload.Mode, input, answers []byte) error {
	if answers == nil {
		return ErrNoAnswers
	}
	var (
		f   *workload.Fixture
		err error
	)
	switch mode {
	case workload.RangeCountMode:
		f, err = fixture.DecodeRangeCount(input, answers)
	case workload.OrderStatMode:
		f, err = fixture.DecodeOrderStat(input, answers)
	default:
		return fmt.Errorf("unknown mode %v", mode)
	}
	if err != nil {
		return err
	}
	return Fixture(f)
}

// Dir checks test0.dat, test1.dat, ... in dir until the first missing index
// and returns how many fixtures passed.
func Dir(dir string, mode workload.Mode) (int, error) {
	r, err := diskio.Open(dir)
	if err != nil {
		return 0, err
	}
	checked := 0
	for ; ; checked++ {
		input, answers, err := r.Read(checked)
		if os.IsNotExist(err) {
			return checked, nil
		}
		if err != nil {
			return checked, err
		}
		if err := Streams(mode, input, answers); err != nil {
			return checked, fmt.Errorf("%s: %w", diskio.InputName(checked), err)
		}
	}
}
