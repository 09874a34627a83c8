package functional_test

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Pjiwm/functional"
)

type parsed struct {
	value int
	err   error
}

func parseInt(s string) parsed {
	v, err := strconv.Atoi(s)
	return parsed{value: v, err: err}
}

func orZero(p parsed) int {
	if p.err != nil {
		return 0
	}
	return p.value
}

// This example builds a three-stage parsing pipeline: take the first word of
// the input, parse it as an integer, and fall back to zero on failure.
func Example() {
	firstWord := functional.Wrap(func(s string) string {
		fields := strings.Fields(s)
		if len(fields) == 0 {
			return ""
		}
		return fields[0]
	})

	pipeline := functional.Compose(
		functional.Compose(firstWord, functional.Wrap(parseInt)),
		functional.Wrap(orZero),
	)

	fmt.Println(pipeline.Invoke("100 THIS IS A NUMBER"))
	fmt.Println(pipeline.Invoke("100THIS IS NOT A NUMBER"))

	// Output:
	// 100
	// 0
}

// Compose runs the first Func and feeds its output to the second.
// The composed Func is reusable; the operands are consumed.
func ExampleCompose() {
	parse := functional.Compose(functional.Wrap(parseInt), functional.Wrap(orZero))

	fmt.Println(parse.Invoke("10"))
	fmt.Println(parse.Invoke("not a number"))

	// Output:
	// 10
	// 0
}

// Curry2 turns a two-argument function into a chain of unary ones,
// enabling partial application.
func ExampleCurry2() {
	add := functional.Curry2(func(a, b int) int { return a + b })

	addTen := add(10)
	fmt.Println(addTen(4))
	fmt.Println(addTen(32))

	// Output:
	// 14
	// 42
}

// A curried function's final unary leg composes like any other Func.
func ExampleCurry2_composed() {
	addTen := functional.Curry2(func(a, b int) int { return a + b })(10)

	pipeline := functional.Compose(
		functional.Compose(functional.Wrap(parseInt), functional.Wrap(orZero)),
		functional.Wrap(addTen),
	)

	fmt.Println(pipeline.Invoke("4"))

	// Output:
	// 14
}
