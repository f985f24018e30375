package sysinfo

import "testing"

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{3725, "1 hours, 2 minutes"}, // seconds truncated, zero days omitted
		{0, "0 hours, 0 minutes"},
		{59, "0 hours, 0 minutes"},
		{60, "0 hours, 1 minutes"},
		{86400, "1 days, 0 hours, 0 minutes"},
		{90061, "1 days, 1 hours, 1 minutes"},
		{2*86400 + 3*3600 + 4*60, "2 days, 3 hours, 4 minutes"},
	}

	for _, tc := range tests {
		if got := FormatUptime(tc.seconds); got != tc.want {
			t.Fatalf("FormatUptime(%d) = %q; want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("Hello World", 8); got != "Hello..." {
		t.Fatalf("TruncateString short failed: got %q", got)
	}
	if got := TruncateString("Hi", 5); got != "Hi" {
		t.Fatalf("TruncateString no-truncate failed: got %q", got)
	}
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"bash, version 5.1.16\nCopyright", "bash, version 5.1.16"},
		{"single line", "single line"},
		{"crlf line\r\nnext", "crlf line"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := FirstLine(tc.in); got != tc.want {
			t.Fatalf("FirstLine(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}
