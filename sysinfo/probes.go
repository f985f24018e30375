package sysinfo

import (
	"bufio"
	"os"
	"strings"
)

// osReleaseKey is the os-release field holding the human-readable OS name.
const osReleaseKey = "PRETTY_NAME="

// Prober collects system facts. Every external effect a probe performs —
// environment lookups, file reads, subprocess output, process-table
// queries, display-server connections — goes through a field on this
// struct, so tests substitute fakes and probes stay independently
// verifiable. DefaultProber wires the live system behind each field.
type Prober struct {
	// Getenv looks up one environment variable, "" when unset.
	Getenv func(string) string

	// OSReleasePath and HostnamePath are the fixed config files probed
	// for the OS pretty name and the hostname.
	OSReleasePath string
	HostnamePath  string

	// Runner invokes subprocesses (the shell --version call).
	Runner CommandRunner

	// Display probes the windowing system.
	Display Display

	// Uname is the structured system-information query returning the
	// kernel sysname and release.
	Uname func() (sysname, release string, err error)

	// UptimeSeconds returns the system uptime in whole seconds.
	UptimeSeconds func() (int64, error)

	// ParentPID returns the pid of this process's parent.
	ParentPID func() int

	// ProcessName resolves a pid to its command name.
	ProcessName func(pid int) (string, error)

	// HostnameQuery is the fallback used when HostnamePath is unreadable.
	HostnameQuery func() (string, error)
}

// Collect runs every probe once, in order, and assembles the report.
// The only error path is the uname query failing; everything else
// degrades to an empty field for that fact alone.
func (p *Prober) Collect() (*SystemInfo, error) {
	kernel, err := p.Kernel()
	if err != nil {
		return nil, err
	}

	info := &SystemInfo{
		Username: p.Getenv("USER"),
		Hostname: p.Hostname(),
		OS:       p.OSName(),
		Desktop:  p.Desktop(),
		Session:  p.SessionType(),
		Kernel:   kernel,
		Uptime:   p.Uptime(),
		Shell:    p.Shell(),
	}
	info.WM = p.WindowManager()

	if info.Username == "" {
		info.Username = "unknown"
	}
	return info, nil
}

// OSName scans the os-release file for the first PRETTY_NAME= line and
// returns the quoted value. Empty result when the file is unreadable, no
// line matches, or the value is not quoted.
func (p *Prober) OSName() string {
	f, err := os.Open(p.OSReleasePath)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, osReleaseKey) {
			continue
		}
		name, ok := ExtractQuotedString(line)
		if !ok {
			return ""
		}
		return name
	}
	return ""
}

// Hostname reads the first line of the hostname file, falling back to the
// hostname system query when the file is unreadable.
func (p *Prober) Hostname() string {
	data, err := os.ReadFile(p.HostnamePath)
	if err == nil {
		if name := strings.TrimSpace(FirstLine(string(data))); name != "" {
			return name
		}
	}
	name, err := p.HostnameQuery()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(name)
}

// Kernel joins the uname sysname and release with a single space, e.g.
// "Linux 6.8.0-41-generic". A failing uname syscall is the one condition
// the report cannot continue past, so the error propagates.
func (p *Prober) Kernel() (string, error) {
	sysname, release, err := p.Uname()
	if err != nil {
		return "", err
	}
	return sysname + " " + release, nil
}

// Uptime formats the structured uptime query via FormatUptime. Empty
// result when the query fails.
func (p *Prober) Uptime() string {
	secs, err := p.UptimeSeconds()
	if err != nil {
		return ""
	}
	return FormatUptime(secs)
}

// SessionType reports the windowing session in use. A set
// XDG_SESSION_TYPE wins and is returned capitalized with no further
// validation; otherwise the display connections are probed, X11 before
// Wayland, and "Unknown" is reported when neither connects.
func (p *Prober) SessionType() string {
	if session := p.Getenv("XDG_SESSION_TYPE"); session != "" {
		return CapitalizeFirst(session)
	}
	if p.Display.TryX11() {
		return "X11"
	}
	if p.Display.TryWayland() {
		return "Wayland"
	}
	return "Unknown"
}

// Desktop reads XDG_CURRENT_DESKTOP, falling back to DESKTOP_SESSION.
// The contents are not validated. Empty result when neither is set.
func (p *Prober) Desktop() string {
	if desktop := p.Getenv("XDG_CURRENT_DESKTOP"); desktop != "" {
		return desktop
	}
	return p.Getenv("DESKTOP_SESSION")
}

// WindowManager runs the window-manager decision tree against the probed
// session type.
func (p *Prober) WindowManager() string {
	return DetectWindowManager(p.SessionType(), p.Getenv, p.Display)
}

// Shell resolves the parent process's command name, asks it for its
// version, and combines the two, e.g. "bash 5.1.16". A failure at any
// step — process lookup, invocation, no output, no digit in the banner —
// makes the whole fact unknown; a name without a version is never
// reported.
func (p *Prober) Shell() string {
	name, err := p.ProcessName(p.ParentPID())
	if err != nil {
		return ""
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	out, err := p.Runner.Output(name, "--version")
	if err != nil {
		return ""
	}
	version := ExtractVersionNumber(FirstLine(out))
	if version == "" {
		return ""
	}
	return name + " " + version
}
