// Package debuglog is a printf logger for code that must not write to the
// terminal while the UI owns it. Output is appended to the file named by
// the NBDIFF_LOG environment variable; when it is unset every call is a
// no-op.
package debuglog

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"time"
)

var mu sync.Mutex

// Enabled reports whether log lines currently go anywhere.
func Enabled() bool {
	return os.Getenv("NBDIFF_LOG") != ""
}

// Logf appends one timestamped line to the log file. Open errors are
// swallowed; a debug log must never take the application down.
func Logf(format string, args ...any) {
	path := os.Getenv("NBDIFF_LOG")
	if path == "" {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	var b bytes.Buffer
	fmt.Fprintf(&b, "%s ", time.Now().Format("15:04:05.000"))
	fmt.Fprintf(&b, format, args...)
	if b.Len() == 0 || b.Bytes()[b.Len()-1] != '\n' {
		b.WriteByte('\n')
	}
	_, _ = f.Write(b.Bytes())
}
