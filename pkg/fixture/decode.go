package fixture

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dborchard/ostgen/pkg/workload"
)

var ErrMalformed = errors.New("malformed fixture")

type tokens struct {
	toks []string
	pos  int
}

func newTokens(raw []byte) *tokens {
	return &tokens{toks: strings.Fields(string(raw))}
}

func (t *tokens) done() bool {
	return t.pos >= len(t.toks)
}

func (t *tokens) next() (string, error) {
	if t.done() {
		return "", fmt.Errorf("%w: unexpected end of stream after %d tokens", ErrMalformed, t.pos)
	}
	tok := t.toks[t.pos]
	t.pos++
	return tok, nil
}

func (t *tokens) integer() (int64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d: %v", ErrMalformed, t.pos-1, err)
	}
	return v, nil
}

func (t *tokens) count() (int, error) {
	v, err := t.integer()
	if err != nil {
		return 0, err
	}
	if v < 0 || v > int64(len(t.toks)) {
		return 0, fmt.Errorf("%w: token %d: bad count %d", ErrMalformed, t.pos-1, v)
	}
	return int(v), nil
}

// DecodeRangeCount parses a range-count input stream. answers may be nil.
func DecodeRangeCount(input, answers []byte) (*workload.Fixture, error) {
	t := newTokens(input)
	f := &workload.Fixture{Mode: workload.RangeCountMode}

	n, err := t.count()
	if err != nil {
		return nil, err
	}
	f.Keys = make([]int64, n)
	for i := range f.Keys {
		if f.Keys[i], err = t.integer(); err != nil {
			return nil, err
		}
	}

	r, err := t.count()
	if err != nil {
		return nil, err
	}
	f.Queries = make([]workload.Query, r)
	for i := range f.Queries {
		var q workload.RangeCount
		if q.Low, err = t.integer(); err != nil {
			return nil, err
		}
		if q.High, err = t.integer(); err != nil {
			return nil, err
		}
		f.Queries[i] = q
	}
	if !t.done() {
		return nil, fmt.Errorf("%w: %d trailing tokens", ErrMalformed, len(t.toks)-t.pos)
	}

	if answers != nil {
		if f.Answers, err = DecodeAnswers(answers, len(f.Queries)); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// DecodeOrderStat parses an order-statistics input stream and its answers.
// Inserts must precede rank queries, which must precede less-than queries.
func DecodeOrderStat(input, answers []byte) (*workload.Fixture, error) {
	t := newTokens(input)
	f := &workload.Fixture{Mode: workload.OrderStatMode, Keys: []int64{}, Queries: []workload.Query{}}

	phase := 0
	for !t.done() {
		op, _ := t.next()
		v, err := t.integer()
		if err != nil {
			return nil, err
		}

		var p int
		switch op {
		case OpInsert:
			p = 0
			f.Keys = append(f.Keys, v)
		case OpRank:
			p = 1
			f.Queries = append(f.Queries, workload.Rank{Index: int(v)})
		case OpLess:
			p = 2
			f.Queries = append(f.Queries, workload.LessThanCount{Value: v})
		default:
			return nil, fmt.Errorf("%w: token %d: unknown opcode %q", ErrMalformed, t.pos-2, op)
		}
		if p < phase {
			return nil, fmt.Errorf("%w: token %d: opcode %q out of order", ErrMalformed, t.pos-2, op)
		}
		phase = p
	}

	if answers != nil {
		var err error
		if f.Answers, err = DecodeAnswers(answers, len(f.Queries)); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// DecodeAnswers parses an answer stream that must hold exactly want values.
func DecodeAnswers(raw []byte, want int) ([]int64, error) {
	t := newTokens(raw)
	if len(t.toks) != want {
		return nil, fmt.Errorf("%w: %d answers for %d queries", ErrMalformed, len(t.toks), want)
	}
	out := make([]int64, want)
	for i := range out {
		v, err := t.integer()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
