package service

// Result is the outcome of an account operation: either Ok or Err, each
// carrying the human-readable message returned to the caller.
type Result struct {
	ok      bool
	message string
}

// Ok returns a successful result.
func Ok(message string) Result {
	return Result{ok: true, message: message}
}

// Err returns a failed result.
func Err(message string) Result {
	return Result{ok: false, message: message}
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.ok
}

// Message returns the caller-facing message.
func (r Result) Message() string {
	return r.message
}
