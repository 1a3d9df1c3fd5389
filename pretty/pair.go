package pretty

// Pair is an ordered two-element record. Pairs render as "(first, second)"
// with no padding inside the parentheses, unlike the bracketed forms.
type Pair[F, S any] struct {
	First  F
	Second S
}

// NewPair builds a Pair without spelling out the type arguments.
func NewPair[F, S any](first F, second S) Pair[F, S] {
	return Pair[F, S]{First: first, Second: second}
}

// pairValue lets render recognize any Pair instantiation.
type pairValue interface {
	pairValues() (any, any)
}

func (p Pair[F, S]) pairValues() (any, any) {
	return p.First, p.Second
}
