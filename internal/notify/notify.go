// Package notify delivers budget alerts to the terminal. Alerts are gated on
// an explicit permission so the app never pings users who opted out.
package notify

import (
	"fmt"
	"os"
)

// Permission is the user's standing answer to budget alerts.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// FromConfig maps the config flag onto a permission.
func FromConfig(enabled bool) Permission {
	if enabled {
		return PermissionGranted
	}
	return PermissionDenied
}

// Notifier sends alerts through the controlling terminal.
type Notifier struct {
	permission Permission
	out        *os.File
}

// New creates a notifier writing to stderr, so alerts survive stdout
// redirection.
func New(permission Permission) *Notifier {
	return &Notifier{permission: permission, out: os.Stderr}
}

// Permission returns the current permission.
func (n *Notifier) Permission() Permission {
	return n.permission
}

// Grant flips the permission to granted. The caller persists the choice.
func (n *Notifier) Grant() {
	n.permission = PermissionGranted
}

// Deny flips the permission to denied.
func (n *Notifier) Deny() {
	n.permission = PermissionDenied
}

// Send emits a desktop notification via the OSC 9 terminal sequence.
// No-op unless granted.
func (n *Notifier) Send(title, body string) {
	if n.permission != PermissionGranted {
		return
	}
	fmt.Fprintf(n.out, "\x1b]9;%s: %s\x07", title, body)
}
