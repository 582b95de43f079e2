package keygen

import (
	"github.com/dborchard/ostgen/pkg/y/rnd"
)

type Generator interface {
	Next(r rnd.Source) int64
}

// Uniform draws from the closed range [lb, ub].
type Uniform struct {
	lb, ub int64
}

func NewUniform(lb, ub int64) *Uniform {
	return &Uniform{lb: lb, ub: ub}
}

func (u *Uniform) Next(r rnd.Source) int64 {
	return rnd.IntClosed(r, u.lb, u.ub)
}
