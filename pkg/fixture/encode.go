package fixture

import (
	"fmt"
	"strconv"

	"github.com/dborchard/ostgen/pkg/workload"
)

// Opcodes of the order-statistics input stream.
const (
	OpInsert = "k"
	OpRank   = "m"
	OpLess   = "n"
)

const sep = ' '

// EncodeInput renders the input token stream of f. Every token, including
// the last one, is followed by a single space.
//
//	range count: <n> <key_1> ... <key_n> <r> <low_1> <high_1> ... <low_r> <high_r>
//	order stat:  k <key> ... m <index> ... n <value> ...
func EncodeInput(f *workload.Fixture) []byte {
	switch f.Mode {
	case workload.RangeCountMode:
		return appendRangeCount(nil, f)
	case workload.OrderStatMode:
		return appendOrderStat(nil, f)
	default:
		panic(fmt.Sprintf("unknown mode %v", f.Mode))
	}
}

// EncodeAnswers renders the answer stream of f, one token per query.
func EncodeAnswers(f *workload.Fixture) []byte {
	buf := make([]byte, 0, 8*len(f.Answers))
	for _, a := range f.Answers {
		buf = appendInt(buf, a)
	}
	return buf
}

func appendRangeCount(buf []byte, f *workload.Fixture) []byte {
	buf = appendInt(buf, int64(len(f.Keys)))
	for _, k := range f.Keys {
		buf = appendInt(buf, k)
	}
	buf = appendInt(buf, int64(len(f.Queries)))
	for _, q := range f.Queries {
		rc := q.(workload.RangeCount)
		buf = appendInt(buf, rc.Low)
		buf = appendInt(buf, rc.High)
	}
	return buf
}

func appendOrderStat(buf []byte, f *workload.Fixture) []byte {
	for _, k := range f.Keys {
		buf = appendOp(buf, OpInsert, k)
	}
	for _, q := range f.Queries {
		switch q := q.(type) {
		case workload.Rank:
			buf = appendOp(buf, OpRank, int64(q.Index))
		case workload.LessThanCount:
			buf = appendOp(buf, OpLess, q.Value)
		default:
			panic(fmt.Sprintf("query %T in an order stat fixture", q))
		}
	}
	return buf
}

func appendOp(buf []byte, op string, v int64) []byte {
	buf = append(buf, op...)
	buf = append(buf, sep)
	return appendInt(buf, v)
}

func appendInt(buf []byte, v int64) []byte {
	buf = strconv.AppendInt(buf, v, 10)
	return append(buf, sep)
}
