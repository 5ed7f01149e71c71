package dnd

import (
	"fmt"
	"io"
	"os"
)

// SetDebugMode enables or disables debug logging. When enabled, drag starts,
// drop resolutions, reverts and ignored presses are logged to the debug
// output (stderr by default).
func (m *Manager) SetDebugMode(enabled bool) {
	m.debug = enabled
}

// SetDebugOutput redirects debug logging. Pass nil to restore stderr.
func (m *Manager) SetDebugOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	m.logOut = w
}

func (m *Manager) debugf(format string, args ...any) {
	if !m.debug {
		return
	}
	_, _ = fmt.Fprintf(m.logOut, "[dnd] "+format+"\n", args...)
}

// nodeName formats a node for log lines.
func nodeName(n Node) string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%q", n.Name())
}
