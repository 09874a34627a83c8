package functional

// Curry2 converts a two-argument function into a chain of two unary functions.
// Arguments are supplied one at a time, in declared order; the final application
// calls fn and returns its result. Each intermediate step captures the arguments
// supplied so far by value, so a partial application is an independent, reusable
// value: applying it to two different next-arguments yields two independent
// continuations.
func Curry2[A1, A2, R any](fn func(A1, A2) R) func(A1) func(A2) R {
	return func(a1 A1) func(A2) R {
		return func(a2 A2) R {
			return fn(a1, a2)
		}
	}
}

// Curry3 is like [Curry2] for three-argument functions.
func Curry3[A1, A2, A3, R any](fn func(A1, A2, A3) R) func(A1) func(A2) func(A3) R {
	return func(a1 A1) func(A2) func(A3) R {
		return func(a2 A2) func(A3) R {
			return func(a3 A3) R {
				return fn(a1, a2, a3)
			}
		}
	}
}

// Curry4 is like [Curry2] for four-argument functions.
func Curry4[A1, A2, A3, A4, R any](fn func(A1, A2, A3, A4) R) func(A1) func(A2) func(A3) func(A4) R {
	return func(a1 A1) func(A2) func(A3) func(A4) R {
		return func(a2 A2) func(A3) func(A4) R {
			return func(a3 A3) func(A4) R {
				return func(a4 A4) R {
					return fn(a1, a2, a3, a4)
				}
			}
		}
	}
}

// Curry5 is like [Curry2] for five-argument functions. Five is the highest arity
// the library provides; curry a narrower wrapper around wider functions if needed.
func Curry5[A1, A2, A3, A4, A5, R any](fn func(A1, A2, A3, A4, A5) R) func(A1) func(A2) func(A3) func(A4) func(A5) R {
	return func(a1 A1) func(A2) func(A3) func(A4) func(A5) R {
		return func(a2 A2) func(A3) func(A4) func(A5) R {
			return func(a3 A3) func(A4) func(A5) R {
				return func(a4 A4) func(A5) R {
					return func(a5 A5) R {
						return fn(a1, a2, a3, a4, a5)
					}
				}
			}
		}
	}
}

// Uncurry2 inverts [Curry2], turning a chain of two unary functions back into
// a function that accepts both arguments at once.
func Uncurry2[A1, A2, R any](fn func(A1) func(A2) R) func(A1, A2) R {
	return func(a1 A1, a2 A2) R {
		return fn(a1)(a2)
	}
}

// Uncurry3 inverts [Curry3].
func Uncurry3[A1, A2, A3, R any](fn func(A1) func(A2) func(A3) R) func(A1, A2, A3) R {
	return func(a1 A1, a2 A2, a3 A3) R {
		return fn(a1)(a2)(a3)
	}
}

// Uncurry4 inverts [Curry4].
func Uncurry4[A1, A2, A3, A4, R any](fn func(A1) func(A2) func(A3) func(A4) R) func(A1, A2, A3, A4) R {
	return func(a1 A1, a2 A2, a3 A3, a4 A4) R {
		return fn(a1)(a2)(a3)(a4)
	}
}

// Uncurry5 inverts [Curry5].
func Uncurry5[A1, A2, A3, A4, A5, R any](fn func(A1) func(A2) func(A3) func(A4) func(A5) R) func(A1, A2, A3, A4, A5) R {
	return func(a1 A1, a2 A2, a3 A3, a4 A4, a5 A5) R {
		return fn(a1)(a2)(a3)(a4)(a5)
	}
}
