package filedeps

// Result is an explicit success-or-failure sum type. A Result holds exactly one
// of a success value of type T or an error value of type E; there is no default
// variant, so the zero Result is invalid and both accessors panic on it. Every
// fallible operation in this package returns a Result instead of a bare error,
// which gives callers linear short-circuiting without sentinel checks.
type Result[T, E any] struct {
	value T
	err   E
	state resultState
}

type resultState int

const (
	resultUnset resultState = iota
	resultSuccess
	resultFailure
)

// Ok constructs a success Result carrying v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, state: resultSuccess}
}

// Fail constructs a failure Result carrying e.
func Fail[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e, state: resultFailure}
}

// IsSuccess reports whether the Result holds a success value.
func (r Result[T, E]) IsSuccess() bool { return r.state == resultSuccess }

// IsFailure reports whether the Result holds an error value.
func (r Result[T, E]) IsFailure() bool { return r.state == resultFailure }

// Value returns the success payload. Reading the value of a failure (or of a
// zero Result) is a programming error and panics.
func (r Result[T, E]) Value() T {
	if r.state != resultSuccess {
		panic("filedeps: Value called on a non-success Result")
	}
	return r.value
}

// Err returns the error payload. Reading the error of a success (or of a zero
// Result) is a programming error and panics.
func (r Result[T, E]) Err() E {
	if r.state != resultFailure {
		panic("filedeps: Err called on a non-failure Result")
	}
	return r.err
}

// Switch invokes exactly one of the callbacks depending on the variant. Nil
// callbacks are skipped, so callers can react to one side only.
func (r Result[T, E]) Switch(onSuccess func(T), onFailure func(E)) {
	switch r.state {
	case resultSuccess:
		if onSuccess != nil {
			onSuccess(r.value)
		}
	case resultFailure:
		if onFailure != nil {
			onFailure(r.err)
		}
	default:
		panic("filedeps: Switch called on a zero Result")
	}
}

// Match converts a Result into a value of another type by applying exactly one
// of the two functions. Methods cannot introduce new type parameters, hence
// the package-level function.
func Match[T, E, U any](r Result[T, E], onSuccess func(T) U, onFailure func(E) U) U {
	switch r.state {
	case resultSuccess:
		return onSuccess(r.value)
	case resultFailure:
		return onFailure(r.err)
	default:
		panic("filedeps: Match called on a zero Result")
	}
}
