//go:build linux
// +build linux

// Package sysinfo - Display-server connections
package sysinfo

import (
	"net"
	"os"
	"path/filepath"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// netWMNameMax caps the _NET_WM_NAME read at 64 32-bit units; window
// manager names are short.
const netWMNameMax = 64

// SystemDisplay implements Display against the real display servers: X11
// through an xgb connection on $DISPLAY, Wayland through the compositor's
// unix socket under $XDG_RUNTIME_DIR. Each probe opens its own connection
// and closes it before returning.
type SystemDisplay struct{}

// TryX11 implements Display.
func (SystemDisplay) TryX11() bool {
	conn, err := xgb.NewConn()
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// TryWayland implements Display.
func (SystemDisplay) TryWayland() bool {
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		return false
	}
	display := os.Getenv("WAYLAND_DISPLAY")
	if display == "" {
		display = "wayland-0"
	}
	conn, err := net.Dial("unix", filepath.Join(runtimeDir, display))
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// RootWindowName implements Display: it reads the window manager's name
// from the _NET_WM_NAME property (UTF8_STRING type) on the root window.
func (SystemDisplay) RootWindowName() (string, bool) {
	conn, err := xgb.NewConn()
	if err != nil {
		return "", false
	}
	defer conn.Close()

	root := xproto.Setup(conn).DefaultScreen(conn).Root

	nameAtom, err := internAtom(conn, "_NET_WM_NAME")
	if err != nil {
		return "", false
	}
	typeAtom, err := internAtom(conn, "UTF8_STRING")
	if err != nil {
		return "", false
	}

	prop, err := xproto.GetProperty(conn, false, root, nameAtom, typeAtom, 0, netWMNameMax).Reply()
	if err != nil || prop == nil || len(prop.Value) == 0 {
		return "", false
	}
	return string(prop.Value), true
}

// internAtom resolves an existing atom by name ("only if exists" mode, so
// a server that has never seen the atom yields atom 0 rather than
// creating it).
func internAtom(conn *xgb.Conn, name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(conn, true, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, err
	}
	return reply.Atom, nil
}
