package functional

// Identity returns its argument unchanged. Wrapped, it acts as the left and
// right identity of [Compose].
func Identity[T any](x T) T {
	return x
}

// Const returns a unary function that ignores its argument and always returns x.
func Const[T, A any](x T) func(A) T {
	return func(A) T {
		return x
	}
}
