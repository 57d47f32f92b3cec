package errcode

// Error code convention:
// - 0: no error
// - 4xxx: recoverable warnings (the result is still usable)
// - 5xxx: system errors (the operation failed)
const (
	OK           = 0
	FontFallback = 4001
	SystemError  = 5000
)
