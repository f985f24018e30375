// Package sysinfo gathers the facts lfetch reports about a Linux desktop:
// OS pretty name, kernel, uptime, session type, desktop environment,
// window manager and shell. Each fact is collected by an independent
// best-effort probe; a probe that cannot obtain its fact yields an unknown
// value and the report is still produced with whatever else succeeded.
package sysinfo

// ANSI color codes for terminal output formatting
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
)

// SystemInfo holds every fact lfetch reports. Fields left empty mean the
// corresponding probe could not obtain the fact; that is an expected state,
// not an error.
type SystemInfo struct {
	// Username is the current logged-in user's name
	Username string

	// Hostname is the computer's network name
	Hostname string

	// OS is the human-readable PRETTY_NAME from the os-release file
	OS string

	// Desktop is the desktop environment name
	Desktop string

	// Session is the windowing session type (X11 or Wayland)
	Session string

	// Kernel is the kernel name and release, e.g. "Linux 6.8.0-41-generic"
	Kernel string

	// Uptime is the formatted system uptime duration
	Uptime string

	// WM is the detected window manager or Wayland compositor
	WM string

	// Shell is the parent shell name and version, e.g. "bash 5.1.16"
	Shell string
}

// Fact pairs a report label with its probed value and the sentence printed
// when the probe came up empty.
type Fact struct {
	Label    string
	Value    string
	Fallback string
}

// Known reports whether the fact's probe produced a value.
func (f Fact) Known() bool { return f.Value != "" }

// Facts returns the report rows in their fixed display order.
func (s *SystemInfo) Facts() []Fact {
	return []Fact{
		{"Hostname", s.Hostname, "Hostname not found."},
		{"Operating System", s.OS, "Operating System not found."},
		{"Desktop Environment", s.Desktop, "Desktop Environment not recognized."},
		{"Session Type", s.Session, "Desktop session not recognized."},
		{"Kernel", s.Kernel, "Kernel not recognized."},
		{"Uptime", s.Uptime, "Uptime not available."},
		{"Window Manager", s.WM, "Window Manager not recognized."},
		{"Shell", s.Shell, "Shell not recognized."},
	}
}

// GetSystemInfo probes the live system and returns the populated facts.
// Individual probe failures surface as empty fields; the returned error is
// non-nil only when a required low-level query (the uname system call)
// fails, in which case no report can be produced.
func GetSystemInfo() (*SystemInfo, error) {
	return DefaultProber().Collect()
}
