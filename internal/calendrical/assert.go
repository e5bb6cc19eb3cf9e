package calendrical

import "fmt"

// Assertf panics with the formatted message when cond is false and the
// module is built with the calendardebug tag. It is a no-op otherwise.
func Assertf(cond bool, format string, args ...any) {
	if debugChecks && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

func assertf(cond bool, format string, args ...any) {
	Assertf(cond, "calendrical: "+format, args...)
}
