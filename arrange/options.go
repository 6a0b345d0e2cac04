// SPDX-License-Identifier: MIT
// Package: arrange
//
// options.go — functional options shared by SortSamples and SortCategories.
//
// Contract:
//   • Constructors panic on meaningless inputs (negative row, empty names).
//   • An option that does not apply to a function is ignored by it:
//     ByRow means nothing to SortCategories, Alpha nothing to SortSamples.

package arrange

// Method selects how SortCategories orders rows.
type Method int

const (
	// Abundance orders categories by descending mean across samples.
	Abundance Method = iota
	// Alpha orders categories lexically by label.
	Alpha
	// Retain keeps the input order.
	Retain
	// CustomOrder follows an explicit, fuzzy-matched list (see Custom).
	CustomOrder
)

func (m Method) String() string {
	switch m {
	case Abundance:
		return "abundance"
	case Alpha:
		return "alpha"
	case Retain:
		return "retain"
	case CustomOrder:
		return "custom"
	default:
		return "unknown"
	}
}

type options struct {
	row     int // sample sort key; -1 sorts by sample label
	method  Method
	order   []string
	first   string
	reverse bool
}

func defaultOptions() options {
	return options{row: -1, method: Abundance}
}

func gather(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Option customizes a sort.
type Option func(*options)

// BySamples sorts samples alphabetically by label (the default).
func BySamples() Option {
	return func(o *options) { o.row = -1 }
}

// ByRow sorts samples by ascending value in category row i.
// Panics if i < 0.
func ByRow(i int) Option {
	if i < 0 {
		panic("arrange: ByRow(negative)")
	}
	return func(o *options) { o.row = i }
}

// Reverse flips the final order.
func Reverse() Option {
	return func(o *options) { o.reverse = true }
}

// WithMethod sets the category method; Custom is the way to pass an order.
// Panics on CustomOrder or an unknown method.
func WithMethod(m Method) Option {
	if m < Abundance || m >= CustomOrder {
		panic("arrange: WithMethod(" + m.String() + ")")
	}
	return func(o *options) { o.method = m }
}

// Custom orders categories by the given names, each fuzzy-matched against
// the row labels. Names may repeat a category. Panics on an empty list.
func Custom(order ...string) Option {
	if len(order) == 0 {
		panic("arrange: Custom() needs at least one name")
	}
	cp := append([]string(nil), order...)
	return func(o *options) {
		o.method = CustomOrder
		o.order = cp
	}
}

// FirstCategory pins the fuzzy-matched category to the front.
// It is ignored by Custom. Panics on an empty name.
func FirstCategory(name string) Option {
	if name == "" {
		panic("arrange: FirstCategory(\"\")")
	}
	return func(o *options) { o.first = name }
}
