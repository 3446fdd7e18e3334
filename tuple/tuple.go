//nolint:ireturn
package tuple

// Tuple is the fixed-arity, ordered, indexable capability. Anything that
// implements it is accepted where a tuple is declared; plain slices are not,
// since a slice is a list with no fixed arity.
type Tuple interface {
	Len() int
	At(i int) any
}

// Values is a tuple of dynamically-typed values.
type Values []any

// Of builds a Values tuple. Of() is the empty tuple.
func Of(values ...any) Values {
	if values == nil {
		return Values{}
	}

	return Values(values)
}

func (v Values) Len() int {
	return len(v)
}

func (v Values) At(i int) any {
	return v[i]
}

// Elements copies the members of any tuple into a slice.
func Elements(t Tuple) []any {
	out := make([]any, t.Len())
	for i := range out {
		out[i] = t.At(i)
	}

	return out
}

func NewTuple2[A, B any](first A, second B) Tuple2[A, B] {
	return Tuple2[A, B]{
		first:  first,
		second: second,
	}
}

// Tuple2 is a type that represents a pair of values.
type Tuple2[A any, B any] struct {
	first  A
	second B
}

func (t Tuple2[A, B]) First() A {
	return t.first
}

func (t Tuple2[A, B]) Second() B {
	return t.second
}

func (t Tuple2[A, B]) Len() int {
	return 2 //nolint:mnd
}

func (t Tuple2[A, B]) At(i int) any {
	switch i {
	case 0:
		return t.first
	case 1:
		return t.second
	default:
		panic(outOfRange(i, t.Len()))
	}
}

func NewTuple3[A, B, C any](first A, second B, third C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{
		first:  first,
		second: second,
		third:  third,
	}
}

// Tuple3 is a type that represents a triple of values.
type Tuple3[A any, B any, C any] struct {
	first  A
	second B
	third  C
}

func (t Tuple3[A, B, C]) First() A {
	return t.first
}

func (t Tuple3[A, B, C]) Second() B {
	return t.second
}

func (t Tuple3[A, B, C]) Third() C {
	return t.third
}

func (t Tuple3[A, B, C]) Len() int {
	return 3 //nolint:mnd
}

func (t Tuple3[A, B, C]) At(i int) any {
	switch i {
	case 0:
		return t.first
	case 1:
		return t.second
	case 2: //nolint:mnd
		return t.third
	default:
		panic(outOfRange(i, t.Len()))
	}
}

func NewTuple4[A, B, C, D any](first A, second B, third C, fourth D) Tuple4[A, B, C, D] {
	return Tuple4[A, B, C, D]{
		first:  first,
		second: second,
		third:  third,
		fourth: fourth,
	}
}

// Tuple4 is a type that represents a quadruple of values.
type Tuple4[A any, B any, C any, D any] struct {
	first  A
	second B
	third  C
	fourth D
}

func (t Tuple4[A, B, C, D]) First() A {
	return t.first
}

func (t Tuple4[A, B, C, D]) Second() B {
	return t.second
}

func (t Tuple4[A, B, C, D]) Third() C {
	return t.third
}

func (t Tuple4[A, B, C, D]) Fourth() D {
	return t.fourth
}

func (t Tuple4[A, B, C, D]) Len() int {
	return 4 //nolint:mnd
}

func (t Tuple4[A, B, C, D]) At(i int) any {
	switch i {
	case 0:
		return t.first
	case 1:
		return t.second
	case 2: //nolint:mnd
		return t.third
	case 3: //nolint:mnd
		return t.fourth
	default:
		panic(outOfRange(i, t.Len()))
	}
}

var (
	_ Tuple = Values(nil)
	_ Tuple = Tuple2[int, int]{}
	_ Tuple = Tuple3[int, int, int]{}
	_ Tuple = Tuple4[int, int, int, int]{}
)
