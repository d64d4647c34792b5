package circuit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Source supplies the randomness consumed by Collapse. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	// Float64 returns a uniform sample in [0, 1).
	Float64() float64
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
}

// Mode selects the collapse strategy.
type Mode uint8

const (
	// ModeBalanced fixes each free side independently with bias 0.5.
	ModeBalanced Mode = iota
	// ModeBiased fixes each free side independently with bias 0.8.
	ModeBiased
	// ModeConnected walks the sides in a randomized order with a
	// count-dependent acceptance schedule.
	ModeConnected
)

const (
	// DefaultBias is the independent-sides threshold for ModeBalanced.
	DefaultBias = 0.5
	// BiasedBias is the independent-sides threshold for ModeBiased.
	BiasedBias = 0.8
)

var modeNames = [...]string{"balanced", "biased", "connected"}

// Modes lists every strategy.
var Modes = [...]Mode{ModeBalanced, ModeBiased, ModeConnected}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Bias returns the independent-sides threshold associated with m.
func (m Mode) Bias() float64 {
	if m == ModeBiased {
		return BiasedBias
	}
	return DefaultBias
}

// ErrUnknownMode is returned by ParseMode.
var ErrUnknownMode = errors.New("circuit: unknown collapse mode")

// ParseMode accepts a mode name or the numeric selectors 1 (balanced),
// 2 (biased) and 3 (connected).
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if s == name {
			return Mode(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(modeNames) {
		return Mode(n - 1), nil
	}
	return ModeBalanced, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// ErrEmptyAvailability is returned when a cell side holds no state at all.
var ErrEmptyAvailability = errors.New("circuit: side has no available states")

type collapseOptions struct {
	mode    Mode
	bias    float64
	hasBias bool
}

// Option adjusts a single Collapse call.
type Option func(*collapseOptions)

// WithMode selects the strategy.
func WithMode(m Mode) Option {
	return func(o *collapseOptions) { o.mode = m }
}

// WithBias overrides the independent-sides threshold. Samples at or above
// the bias become Present, so 1.0 forces Absent and 0 forces Present.
func WithBias(p float64) Option {
	return func(o *collapseOptions) {
		o.bias = p
		o.hasBias = true
	}
}

// Connected-strategy acceptance thresholds indexed by the running cable count.
var connectedThresholds = [4]float64{0.7, 0.9, 0.1, 0.3}

var (
	orderNSEW = [4]Side{North, South, East, West}
	orderEWNS = [4]Side{East, West, North, South}
)

// Collapse fixes every free side of c and attaches the classified joint.
// Sides that are already fixed are never redrawn, so collapsing a resolved
// cell only re-classifies it.
func Collapse(c *Cell, src Source, opts ...Option) error {
	o := collapseOptions{mode: ModeBalanced}
	for _, fn := range opts {
		fn(&o)
	}
	for _, s := range Sides {
		if !c.Sides[s].IsSet() {
			return fmt.Errorf("collapse side %s: %w", s, ErrEmptyAvailability)
		}
	}

	if c.Joint != nil {
		if _, ok := c.Pattern(); ok {
			variant := c.Joint.Variant
			c.Joint = classify(c, nil)
			c.Joint.Variant = variant
			return nil
		}
	}

	switch o.mode {
	case ModeConnected:
		collapseConnected(c, src)
	default:
		bias := o.mode.Bias()
		if o.hasBias {
			bias = o.bias
		}
		collapseIndependent(c, src, bias)
	}
	c.Joint = classify(c, src)
	return nil
}

func collapseIndependent(c *Cell, src Source, p float64) {
	for _, s := range Sides {
		if !c.Sides[s].IsFree() {
			continue
		}
		if src.Float64() >= p {
			c.Sides[s] = Fixed(Present)
		} else {
			c.Sides[s] = Fixed(Absent)
		}
	}
}

func collapseConnected(c *Cell, src Source) {
	var eligible [4]bool
	count := 0
	for _, s := range Sides {
		if c.Sides[s].IsFree() {
			eligible[s] = true
			continue
		}
		if st, _ := c.Sides[s].State(); st == Present {
			count++
		}
	}

	order := orderNSEW
	if src.Float64() >= 0.9 {
		order = orderEWNS
	}
	if src.Float64() >= 0.5 {
		order = [4]Side{order[1], order[0], order[3], order[2]}
	}

	for _, s := range order {
		if !eligible[s] {
			continue
		}
		threshold := 0.0
		if count < len(connectedThresholds) {
			threshold = connectedThresholds[count]
		}
		if src.Float64() >= threshold {
			continue
		}
		c.Sides[s] = Fixed(Present)
		eligible[s] = false
		count++
	}

	for _, s := range Sides {
		if eligible[s] {
			c.Sides[s] = Fixed(Absent)
		}
	}
}

// classify assumes every side is fixed. A nil src leaves the variant at 0.
func classify(c *Cell, src Source) *Joint {
	p, _ := c.Pattern()
	t := Classify(p)
	j := &Joint{Kind: t.Kind, Rotation: t.Rotation, Raw: p}
	if t.Variants > 1 && src != nil {
		j.Variant = src.IntN(t.Variants)
	}
	return j
}
