package sysinfo

import "strings"

// Window-manager labels reported by the detector. Wayland compositors are
// not directly queryable the way X11 window managers are, so known
// desktops map to their compositor by name and everything else gets the
// generic label.
const (
	wmGnomeWayland = "Mutter"
	wmKDEWayland   = "KWin"
	wmWayland      = "Wayland Compositor"
	wmUnknownX11   = "Unknown WM"
	wmUnknown      = "Unknown"
)

// Display is the windowing-system capability the detector and the
// session-type probe run against. The live implementation connects to
// real display servers; tests substitute a fake.
type Display interface {
	// TryX11 reports whether an X display connection can be opened.
	TryX11() bool

	// TryWayland reports whether a Wayland compositor socket accepts a
	// connection.
	TryWayland() bool

	// RootWindowName opens an X connection, reads the _NET_WM_NAME
	// property (UTF8_STRING) off the root window and closes the
	// connection again. ok is false when the connection or the property
	// read fails.
	RootWindowName() (name string, ok bool)
}

// DetectWindowManager decides the window-manager fact from the probed
// session type, the desktop-related environment variables and the display
// capability. It is a single-pass decision tree: every branch terminates
// in a fixed-shape string, and nothing is retried.
func DetectWindowManager(session string, getenv func(string) string, display Display) string {
	switch {
	case strings.EqualFold(session, "wayland"):
		return detectWaylandCompositor(getenv)
	case strings.EqualFold(session, "x11"):
		name, ok := display.RootWindowName()
		if !ok {
			return wmUnknownX11
		}
		return name
	default:
		return wmUnknown
	}
}

// detectWaylandCompositor maps known desktop environments to their
// compositor. The table is a starting heuristic, not an exhaustive
// detector: desktops it does not cover get the generic label.
func detectWaylandCompositor(getenv func(string) string) string {
	desktop := strings.ToLower(getenv("XDG_CURRENT_DESKTOP"))
	sessionName := strings.ToLower(getenv("DESKTOP_SESSION"))

	switch {
	case strings.Contains(desktop, "gnome"):
		return wmGnomeWayland
	case strings.Contains(desktop, "kde") &&
		(strings.Contains(sessionName, "plasma") || strings.Contains(sessionName, "kde")):
		return wmKDEWayland
	default:
		return wmWayland
	}
}
