package sysinfo

import "os/exec"

// CommandRunner abstracts subprocess invocation so probes can be tested
// with canned output instead of spawning real processes.
type CommandRunner interface {
	// Output runs the named command and returns its combined standard
	// output. Shells print their --version banner to stdout, but some
	// report it on stderr, so both streams are captured.
	Output(name string, args ...string) (string, error)
}

// ExecRunner is the CommandRunner backed by os/exec. Every invocation is
// attempted exactly once with no timeout; a hung command blocks the probe.
type ExecRunner struct{}

// Output implements CommandRunner.
func (ExecRunner) Output(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
