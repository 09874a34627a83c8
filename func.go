package functional

// Func is a composable wrapper around a single unary transformation from T to U.
// It holds exactly one transformation, set at construction and never replaced.
// A Func can be invoked any number of times, but composing it with another Func
// consumes it: the transformation moves into the composed Func, and the original
// must not be used again.
type Func[T, U any] struct {
	transform func(T) U
	consumed  bool
}

// Wrap converts a regular unary function into a composable [Func].
// The function is stored as-is: no validation is performed and Wrap never fails.
func Wrap[T, U any](transform func(T) U) *Func[T, U] {
	return &Func[T, U]{transform: transform}
}

// Invoke applies the wrapped transformation to x and returns the result.
// Whatever the transformation does passes through unchanged: returned values,
// side effects and panics all belong to the wrapped function, not to the wrapper.
// Invoke panics if the Func has already been consumed by [Compose].
func (f *Func[T, U]) Invoke(x T) U {
	if f.consumed {
		panic("functional: Invoke called on a Func already consumed by Compose")
	}
	return f.transform(x)
}

// take moves the transformation out of f, marking it consumed.
func (f *Func[T, U]) take() func(T) U {
	if f.consumed {
		panic("functional: Compose called on a Func already consumed by Compose")
	}
	transform := f.transform
	f.transform = nil
	f.consumed = true
	return transform
}

// Compose combines two Funcs into one that applies f first and feeds its output
// to g, i.e. the returned Func computes g(f(x)). Both operands are consumed and
// must not be invoked or composed again; the result is a fresh, independent Func.
// Composition is lazy - neither transformation runs until the result is invoked.
//
// Compose is a free function rather than a method because the output type of g
// is a type parameter of the result. It is associative: chaining three Funcs
// yields the same behavior regardless of grouping.
func Compose[T, U, V any](f *Func[T, U], g *Func[U, V]) *Func[T, V] {
	first := f.take()
	second := g.take()

	return Wrap(func(x T) V {
		return second(first(x))
	})
}
