package utils

import "fmt"

// Assert panics when condition is false. args, if any, are joined with
// fmt.Sprint into the panic value.
func Assert(condition bool, args ...any) {
	if condition {
		return
	}
	if len(args) == 0 {
		panic("assertion failed")
	}
	panic(fmt.Sprint(args...))
}
