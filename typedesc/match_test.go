package typedesc

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"reflect"
	"strings"
	"testing"

	"github.com/amp-labs/typecheck/tuple"
	"github.com/stretchr/testify/assert"
)

type matchCase struct {
	name  string
	value any
	want  bool
}

func runMatchCases(t *testing.T, d Descriptor, cases []matchCase) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, Match(tc.value, d), "Match(%#v, %s)", tc.value, d)
		})
	}
}

func TestMatch_Concrete(t *testing.T) {
	t.Parallel()

	runMatchCases(t, Int(), []matchCase{
		{"int", 10, true},
		{"float", 1.2, false},
		{"string", "10", false},
		{"int64 is a different type", int64(10), false},
		{"nil", nil, false},
	})

	runMatchCases(t, String(), []matchCase{
		{"string", "John", true},
		{"int", 1, false},
	})
}

type myInts []int

type namedReader struct{}

func (namedReader) Read([]byte) (int, error) { return 0, io.EOF }

func TestMatch_Concrete_Assignability(t *testing.T) {
	t.Parallel()

	// Named types are assignable to their unnamed underlying type.
	assert.True(t, Match(myInts{1}, Of[[]int]()))
	assert.True(t, Match([]int{1}, Of[myInts]()))

	// Interface descriptors accept any implementation.
	assert.True(t, Match(namedReader{}, Of[io.Reader]()))
	assert.True(t, Match(strings.NewReader("x"), Of[io.Reader]()))
	assert.False(t, Match("x", Of[io.Reader]()))
	assert.False(t, Match(nil, Of[io.Reader]()))

	// Every error is an error.
	assert.True(t, Match(errors.New("boom"), Of[error]())) //nolint:err113
}

func TestMatch_Concrete_Any(t *testing.T) {
	t.Parallel()

	runMatchCases(t, Of[any](), []matchCase{
		{"string", "a", true},
		{"slice", []any{}, true},
		{"nil", nil, true},
	})
}

func TestMatch_Nil(t *testing.T) {
	t.Parallel()

	var ptr *int

	runMatchCases(t, Nil(), []matchCase{
		{"nil", nil, true},
		{"typed nil pointer is a value", ptr, false},
		{"zero int", 0, false},
	})
}

func TestMatch_Iterable(t *testing.T) {
	t.Parallel()

	runMatchCases(t, Iterable(), []matchCase{
		{"empty slice", []any{}, true},
		{"string", "foo", true},
		{"mixed slice", []any{"foo", 12, "bar", 12.2}, true},
		{"array", [2]int{1, 2}, true},
		{"map", map[string]int{}, true},
		{"channel", make(chan int), true},
		{"tuple", tuple.Of(1, 2), true},
		{"pair", tuple.NewTuple2("a", 1), true},
		{"range func", maps.Keys(map[string]int{"a": 1}), true},
		{"int", 12, false},
		{"float", 12.2, false},
		{"nil", nil, false},
		{"plain func", func() {}, false},
	})
}

func TestMatch_UnconstrainedPlaceholder(t *testing.T) {
	t.Parallel()

	runMatchCases(t, TypeVar("T"), []matchCase{
		{"string", "a", true},
		{"list", []any{}, true},
		{"empty tuple", tuple.Of(), true},
		{"nil", nil, true},
	})
}

func TestMatch_ConstrainedPlaceholder(t *testing.T) {
	t.Parallel()

	runMatchCases(t, TypeVar("T", Int(), String()), []matchCase{
		{"int", 10, true},
		{"string", "a", true},
		{"empty tuple", tuple.Of(), false},
		{"empty list", []any{}, false},
		{"nil", nil, false},
	})
}

func TestMatch_Disjunction(t *testing.T) {
	t.Parallel()

	flat := Union(Int(), String())
	nested := Union(Union(Int(), String()), Union(Int(), String()))

	cases := []matchCase{
		{"int", 10, true},
		{"string", "a", true},
		{"nil", nil, false},
		{"list", []any{}, false},
		{"tuple", tuple.Of(), false},
	}

	runMatchCases(t, flat, cases)
	runMatchCases(t, nested, cases)

	assert.True(t, Equal(flat, nested))
	assert.Len(t, nested.Alternatives(), 2)

	withOpen := Union(Union(), Int())

	runMatchCases(t, withOpen, []matchCase{
		{"int", 1, true},
		{"string", "a", true},
		{"nil", nil, true},
	})

	assert.Empty(t, withOpen.Alternatives())
	assert.True(t, Equal(withOpen, Union()))
}

func TestMatch_EmptyDisjunction(t *testing.T) {
	t.Parallel()

	runMatchCases(t, Union(), []matchCase{
		{"nil", nil, true},
		{"int", 1, true},
		{"struct", struct{}{}, true},
	})
}

func TestMatch_Optional(t *testing.T) {
	t.Parallel()

	runMatchCases(t, Optional(String()), []matchCase{
		{"string", "a", true},
		{"nil", nil, true},
		{"int", 1, false},
	})
}

func TestMatch_Sequence(t *testing.T) {
	t.Parallel()

	runMatchCases(t, Tuple(String(), Int()), []matchCase{
		{"matching pair", tuple.Of("a", 1), true},
		{"generic pair", tuple.NewTuple2("a", 1), true},
		{"array of any", [2]any{"a", 1}, true},
		{"wrong element types", tuple.Of(1, 2, 3), false},
		{"too long", tuple.Of("a", 1, 2), false},
		{"too short", tuple.Of("a"), false},
		{"swapped", tuple.Of(1, "a"), false},
		{"list of same shape", []any{"a", 1}, false},
		{"nil", nil, false},
	})
}

func TestMatch_SequenceSingle(t *testing.T) {
	t.Parallel()

	runMatchCases(t, Tuple(String()), []matchCase{
		{"empty", tuple.Of(), false},
		{"wrong type", tuple.Of(10), false},
		{"too long", tuple.Of("a", "b"), false},
		{"single string", tuple.Of("a"), true},
	})
}

func TestMatch_SequenceMixed(t *testing.T) {
	t.Parallel()

	runMatchCases(t, Tuple(String(), Int(), List()), []matchCase{
		{"short", tuple.Of("a", 10), false},
		{"last is not a list", tuple.Of("a", 10, "a"), false},
		{"full", tuple.Of("a", 10, []string{"items"}), true},
	})
}

func TestMatch_SequenceNested(t *testing.T) {
	t.Parallel()

	pair := Tuple(String(), Int())

	runMatchCases(t, Tuple(pair, pair), []matchCase{
		{"empty members", tuple.Of(tuple.Of(), tuple.Of()), false},
		{"short first", tuple.Of(tuple.Of("a"), tuple.Of("a", 10)), false},
		{"bad second", tuple.Of(tuple.Of("a", 10), tuple.Of("a", "a")), false},
		{"bad first", tuple.Of(tuple.Of("a", "a"), tuple.Of("a", 10)), false},
		{"both good", tuple.Of(tuple.Of("a", 10), tuple.Of("a", 10)), true},
	})
}

func TestMatch_SequenceAnyArity(t *testing.T) {
	t.Parallel()

	runMatchCases(t, Tuple(), []matchCase{
		{"empty", tuple.Of(), true},
		{"three ints", tuple.Of(1, 2, 3), true},
		{"one string", tuple.Of("foo"), true},
		{"empty array", [0]int{}, true},
		{"int", 10, false},
		{"list", []any{}, false},
	})
}

func TestMatch_Container(t *testing.T) {
	t.Parallel()

	cases := []matchCase{
		{"empty", []any{}, true},
		{"mixed elements pass", []any{"foo", 12, "bar", 12.2}, true},
		{"typed slice", []string{"a"}, true},
		{"int", 12, false},
		{"string", "hello", false},
		{"tuple is not a list", tuple.Of(1), false},
		{"nil", nil, false},
	}

	runMatchCases(t, List(), cases)
	runMatchCases(t, List(String()), cases)
}

func TestMatch_MapAndContainerOf(t *testing.T) {
	t.Parallel()

	runMatchCases(t, Map(String(), Int()), []matchCase{
		{"map", map[string]int{"a": 1}, true},
		{"other element types", map[int]bool{}, true},
		{"slice", []int{}, false},
	})

	runMatchCases(t, ContainerOf(reflect.TypeFor[myInts](), Int()), []matchCase{
		{"exact", myInts{}, true},
		{"unnamed slice is assignable", []int{}, true},
		{"other slice", []string{}, false},
	})
}

func TestMatch_ReferenceAndNil(t *testing.T) {
	t.Parallel()

	assert.False(t, Match(1, Ref("Number")))
	assert.True(t, Match(1, nil))
	assert.True(t, Match(nil, nil))
}

func ExampleMatch() {
	point := Tuple(Float(), Float())

	fmt.Println(Match(tuple.Of(1.5, 2.0), point))
	fmt.Println(Match([]any{1.5, 2.0}, point))
	fmt.Println(Match("a", Union(Int(), String())))
	// Output:
	// true
	// false
	// true
}
