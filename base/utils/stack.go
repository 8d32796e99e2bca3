package utils

import (
	"fmt"
	"runtime"
)

// Stack formats the calling goroutine's stack, skipping the given number of
// frames. Used by the recoverable goroutine wrapper when reporting panics.
func Stack(skip int) []byte {
	buf := []byte{}
	for i := skip; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fn := runtime.FuncForPC(pc)
		name := "unknown"
		if fn != nil {
			name = fn.Name()
		}
		buf = append(buf, []byte(fmt.Sprintf("%s\n\t%s:%d\n", name, file, line))...)
	}
	return buf
}
