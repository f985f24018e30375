// Package ascii provides the ASCII art logos rendered beside the report.
// Logos are color-coded using ANSI escape sequences for terminal display.
package ascii

import "lfetch/sysinfo"

// GetLogo returns the standard Linux logo, one string per line.
//
// The logo uses ANSI color codes for visual appeal in terminal output;
// callers that measure line width must strip them first.
func GetLogo() []string {
	w := sysinfo.ColorWhite
	y := sysinfo.ColorYellow
	r := sysinfo.ColorReset

	return []string{
		w + "        _nnnn_" + r,
		w + "       dGGGGMMb" + r,
		w + "      @p~qp~~qMb" + r,
		w + "      M|" + y + "@" + w + "||" + y + "@" + w + ") M|" + r,
		w + "      @,----.JM|" + r,
		w + "     JS^\\__/  qKL" + r,
		w + "    dZP        qKRb" + r,
		w + "   dZP          qKKb" + r,
		w + "  fZP            SMMb" + r,
		w + "  HZM            MMMM" + r,
		w + "  FqM            MMMM" + r,
		w + " __| \".        |\\dS\"qML" + r,
		w + " |    `.       | `' \\Zq" + r,
		w + "_)      \\.___.,|     .'" + r,
		w + "\\____   )MMMMMP|   .'" + r,
		w + "     `-'       `--'" + r,
	}
}

// GetCompactLogo returns a smaller alternative logo for constrained
// terminals or user preference.
func GetCompactLogo() []string {
	w := sysinfo.ColorWhite
	y := sysinfo.ColorYellow
	r := sysinfo.ColorReset

	return []string{
		w + "    .--.   " + r,
		w + "   |" + y + "o_o" + w + " |  " + r,
		w + "   |" + y + ":_/" + w + " |  " + r,
		w + "  //   \\ \\ " + r,
		w + " (|     | )" + r,
		w + "/'\\_   _/`\\" + r,
		w + "\\___)=(___/" + r,
	}
}
