// Package functional provides small building blocks for function composition in Go:
// a wrapper that turns any unary function into a composable value, and a currying
// facility that converts multi-argument functions into chains of single-argument
// functions supporting partial application. The library has zero external dependencies
// and performs no I/O.
//
// # Composable functions
//
// [Wrap] lifts an ordinary unary function into a [Func] value. Two Funcs are chained
// with [Compose], which consumes both operands and returns a new Func that applies
// them left to right: Compose(f, g) invokes f first and feeds its output to g.
// Composition is lazy; nothing runs until the resulting Func is invoked.
//
// Compose is associative: for any f, g and h, Compose(Compose(f, g), h) and
// Compose(f, Compose(g, h)) behave identically on every input.
//
// A Func is consumed when it is composed. Invoking or re-composing a consumed Func
// is a programming error and panics immediately. The Funcs returned by [Wrap] and
// [Compose] are otherwise reusable and can be invoked any number of times.
//
// # Currying
//
// [Curry2] through [Curry5] convert a function of several arguments into a chain of
// unary functions, each accepting the next argument in declared order:
//
//	add := functional.Curry2(func(a, b int) int { return a + b })
//	addTen := add(10)
//	addTen(4) // 14
//
// Every partial application is an independent value. Applying the same step to two
// different arguments yields two independent continuations; nothing is shared or
// mutated between them. Arity is part of each Curry function's signature, so
// supplying a wrong number of arguments does not compile.
//
// # Error handling
//
// The library is a transparent pass-through. It never catches, wraps, or suppresses
// anything a wrapped function does: errors returned as values flow through like any
// other value, and panics propagate unchanged to the caller. The only panics the
// library raises itself signal misuse of a consumed [Func].
//
// # Concurrency
//
// Invocation runs the wrapped function synchronously on the caller's goroutine.
// The library spawns no goroutines and holds no locks; a composed or curried chain
// is exactly as safe for concurrent use as the functions it was built from.
package functional
