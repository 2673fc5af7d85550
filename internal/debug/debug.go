// Package debug provides opt-in diagnostic logging. Output is off by
// default so the report on stdout stays machine-parseable; the --verbose
// flag points it at stderr.
package debug

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var (
	mu     sync.Mutex
	output io.Writer
)

// SetOutput directs debug output to w. Pass nil to disable.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Enabled reports whether debug output is currently routed anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return output != nil
}

// Logf writes a timestamped diagnostic line. No-op when output is disabled.
func Logf(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if output == nil {
		return
	}
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(output, "[%s] %s\n", ts, fmt.Sprintf(format, args...))
}
