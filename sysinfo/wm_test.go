package sysinfo

import "testing"

type fakeDisplay struct {
	x11     bool
	wayland bool
	root    string
	rootOK  bool
}

func (d fakeDisplay) TryX11() bool                   { return d.x11 }
func (d fakeDisplay) TryWayland() bool               { return d.wayland }
func (d fakeDisplay) RootWindowName() (string, bool) { return d.root, d.rootOK }

func envMap(vals map[string]string) func(string) string {
	return func(key string) string { return vals[key] }
}

func TestDetectWindowManager(t *testing.T) {
	tests := []struct {
		name    string
		session string
		env     map[string]string
		display fakeDisplay
		want    string
	}{
		{
			name:    "wayland gnome",
			session: "Wayland",
			env:     map[string]string{"XDG_CURRENT_DESKTOP": "GNOME"},
			want:    "Mutter",
		},
		{
			name:    "wayland gnome wins regardless of session name",
			session: "wayland",
			env:     map[string]string{"XDG_CURRENT_DESKTOP": "ubuntu:GNOME", "DESKTOP_SESSION": "whatever"},
			want:    "Mutter",
		},
		{
			name:    "wayland kde plasma",
			session: "Wayland",
			env:     map[string]string{"XDG_CURRENT_DESKTOP": "KDE", "DESKTOP_SESSION": "plasmawayland"},
			want:    "KWin",
		},
		{
			name:    "wayland kde without plasma session",
			session: "Wayland",
			env:     map[string]string{"XDG_CURRENT_DESKTOP": "KDE"},
			want:    "Wayland Compositor",
		},
		{
			name:    "wayland unrecognized desktop",
			session: "Wayland",
			env:     map[string]string{"XDG_CURRENT_DESKTOP": "sway"},
			want:    "Wayland Compositor",
		},
		{
			name:    "x11 with reachable server",
			session: "X11",
			display: fakeDisplay{root: "i3", rootOK: true},
			want:    "i3",
		},
		{
			name:    "x11 no display server",
			session: "x11",
			display: fakeDisplay{},
			want:    "Unknown WM",
		},
		{
			name:    "session absent",
			session: "Unknown",
			want:    "Unknown",
		},
		{
			name:    "session something else",
			session: "Tty",
			want:    "Unknown",
		},
	}

	for _, tc := range tests {
		got := DetectWindowManager(tc.session, envMap(tc.env), tc.display)
		if got != tc.want {
			t.Fatalf("%s: DetectWindowManager(%q) = %q; want %q", tc.name, tc.session, got, tc.want)
		}
	}
}
