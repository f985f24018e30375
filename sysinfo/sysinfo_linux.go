//go:build linux
// +build linux

// Package sysinfo - Linux wiring for the live system
package sysinfo

import (
	"os"

	"github.com/shirou/gopsutil/v3/process"
	"golang.org/x/sys/unix"
)

// DefaultProber returns a Prober wired to the live system: real
// environment, the standard config file paths, exec-backed subprocess
// invocation, uname/sysinfo syscalls, the process table and the real
// display servers.
func DefaultProber() *Prober {
	return &Prober{
		Getenv:        os.Getenv,
		OSReleasePath: "/etc/os-release",
		HostnamePath:  "/etc/hostname",
		Runner:        ExecRunner{},
		Display:       SystemDisplay{},
		Uname:         unameQuery,
		UptimeSeconds: uptimeQuery,
		ParentPID:     os.Getppid,
		ProcessName:   processName,
		HostnameQuery: os.Hostname,
	}
}

// unameQuery wraps the uname system call, the structured replacement for
// shelling out to `uname -s` and `uname -r`.
func unameQuery() (string, string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", "", err
	}
	return unix.ByteSliceToString(uts.Sysname[:]), unix.ByteSliceToString(uts.Release[:]), nil
}

// uptimeQuery wraps the sysinfo system call's uptime field.
func uptimeQuery() (int64, error) {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return 0, err
	}
	return int64(si.Uptime), nil
}

// processName resolves a pid to its command name through the process
// table. For the shell probe the pid is this process's parent.
func processName(pid int) (string, error) {
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return "", err
	}
	return proc.Name()
}
