package config

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the kind of every configuration and sampling-domain
// failure. Test with errors.Is.
var ErrConfiguration = errors.New("configuration error")

// Range is the half-open sampling range [Min, Max).
type Range struct {
	Min int64 `json:"min" yaml:"min"`
	Max int64 `json:"max" yaml:"max"`
}

func (r Range) Size() uint64 {
	if r.Max <= r.Min {
		return 0
	}
	return uint64(r.Max - r.Min)
}

// Output is where fixtures go and how many of them.
type Output struct {
	Path   string `json:"output_path" yaml:"output_path"`
	Number int    `json:"number" yaml:"number"`
}

// RangeCountConfig drives range-count (benchmark) fixtures.
type RangeCountConfig struct {
	Output   `yaml:",inline"`
	Inserts  *Range  `json:"inserts" yaml:"inserts"`
	Integers *Range  `json:"integers" yaml:"integers"`
	Requests *Range  `json:"requests" yaml:"requests"`
	Answers  bool    `json:"answers,omitempty" yaml:"answers,omitempty"`
	Seed     *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// OrderStatConfig drives order-statistics fixtures.
type OrderStatConfig struct {
	Output      `yaml:",inline"`
	Elements    *Range `json:"elements" yaml:"elements"`
	Integers    *Range `json:"integers" yaml:"integers"`
	KthQueries  *Range `json:"kth_queries" yaml:"kth_queries"`
	LessQueries *Range `json:"less_queries" yaml:"less_queries"`

	// DrawLessCount draws the less-than query count from LessQueries instead
	// of reusing the rank query count.
	DrawLessCount bool `json:"draw_less_count,omitempty" yaml:"draw_less_count,omitempty"`
	// IncludeMaxRank draws rank indices from [1, |keys|] instead of [1, |keys|).
	IncludeMaxRank bool    `json:"include_max_rank,omitempty" yaml:"include_max_rank,omitempty"`
	Seed           *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

func (c *RangeCountConfig) Validate() error {
	if err := c.Output.validate(); err != nil {
		return err
	}
	if err := required("inserts", c.Inserts, "integers", c.Integers, "requests", c.Requests); err != nil {
		return err
	}
	for _, nr := range []namedRange{{"inserts", *c.Inserts}, {"integers", *c.Integers}, {"requests", *c.Requests}} {
		if err := nr.validate(); err != nil {
			return err
		}
	}
	if err := countRange("inserts", *c.Inserts); err != nil {
		return err
	}
	if err := countRange("requests", *c.Requests); err != nil {
		return err
	}
	return fitsDomain("inserts", *c.Inserts, *c.Integers)
}

func (c *OrderStatConfig) Validate() error {
	if err := c.Output.validate(); err != nil {
		return err
	}
	if err := required("elements", c.Elements, "integers", c.Integers,
		"kth_queries", c.KthQueries, "less_queries", c.LessQueries); err != nil {
		return err
	}
	ranges := []namedRange{
		{"elements", *c.Elements}, {"integers", *c.Integers},
		{"kth_queries", *c.KthQueries}, {"less_queries", *c.LessQueries},
	}
	for _, nr := range ranges {
		if err := nr.validate(); err != nil {
			return err
		}
	}
	for _, nr := range []namedRange{ranges[0], ranges[2], ranges[3]} {
		if err := countRange(nr.name, nr.Range); err != nil {
			return err
		}
	}
	return fitsDomain("elements", *c.Elements, *c.Integers)
}

func (o Output) validate() error {
	if o.Path == "" {
		return fmt.Errorf("%w: output_path is missing", ErrConfiguration)
	}
	if o.Number <= 0 {
		return fmt.Errorf("%w: number must be positive, got %d", ErrConfiguration, o.Number)
	}
	return nil
}

type namedRange struct {
	name string
	Range
}

func (nr namedRange) validate() error {
	if nr.Max <= nr.Min {
		return fmt.Errorf("%w: %s.max (%d) must exceed %s.min (%d)", ErrConfiguration, nr.name, nr.Max, nr.name, nr.Min)
	}
	return nil
}

func countRange(name string, r Range) error {
	if r.Min < 0 {
		return fmt.Errorf("%w: %s.min must not be negative, got %d", ErrConfiguration, name, r.Min)
	}
	return nil
}

// fitsDomain checks that the largest drawable count can be sampled without
// replacement from the value domain.
func fitsDomain(name string, count, values Range) error {
	if uint64(count.Max-1) > values.Size() {
		return fmt.Errorf("%w: %s.max-1 (%d) exceeds the integers domain size (%d)",
			ErrConfiguration, name, count.Max-1, values.Size())
	}
	return nil
}

func required(pairs ...any) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if r, _ := pairs[i+1].(*Range); r == nil {
			return fmt.Errorf("%w: %s is missing", ErrConfiguration, pairs[i])
		}
	}
	return nil
}
