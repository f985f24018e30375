// Package main provides the lfetch command-line tool for displaying Linux
// desktop system information, plain or beside an ASCII logo.
package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"lfetch/ascii"
	"lfetch/internal/config"
	"lfetch/sysinfo"
)

const version = "0.3.0"

// maxValueWidth bounds fact values in logo mode so overlong window titles
// or shell banners cannot break the column layout.
const maxValueWidth = 64

// ansiRegex matches ANSI escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

var (
	labelColor = color.New(color.FgBlue)
	hostColor  = color.New(color.FgCyan)
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		logo       bool
		compact    bool
		gap        int
		noColor    bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:           "lfetch",
		Short:         "lfetch prints facts about the running Linux desktop",
		Long:          `lfetch collects hostname, OS, desktop environment, session type, kernel, uptime, window manager and shell, and prints them as a fixed-order report.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			// Flags the user actually passed override the config file.
			if cmd.Flags().Changed("logo") {
				cfg.Output.Logo = logo
			}
			if cmd.Flags().Changed("compact") {
				cfg.Output.Compact = compact
			}
			if cmd.Flags().Changed("gap") {
				cfg.Output.Gap = gap
			}
			if noColor || !cfg.Output.Color || os.Getenv("NO_COLOR") != "" {
				color.NoColor = true
			}

			info, err := sysinfo.GetSystemInfo()
			if err != nil {
				return fmt.Errorf("getting system info: %w", err)
			}

			if cfg.Output.Logo || cfg.Output.Compact {
				art := ascii.GetLogo()
				if cfg.Output.Compact {
					art = ascii.GetCompactLogo()
				}
				displayWithLogo(art, info, cfg.Output.Gap)
				return nil
			}
			displayPlain(info)
			return nil
		},
	}

	cmd.Flags().BoolVar(&logo, "logo", false, "render the ASCII logo beside the report")
	cmd.Flags().BoolVar(&compact, "compact", false, "use the compact alternative ASCII logo")
	cmd.Flags().IntVar(&gap, "gap", 4, "number of spaces between logo and info")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().StringVar(&configPath, "config", config.ConfigPath(), "path to the config file")

	cmd.AddCommand(versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the lfetch version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("lfetch %s\n", version)
		},
	}
}

// displayPlain prints one line per fact in the fixed report order. Known
// facts print as "Label: value"; unknown facts print their fallback
// sentence instead.
func displayPlain(info *sysinfo.SystemInfo) {
	for _, fact := range info.Facts() {
		if fact.Known() {
			fmt.Printf("%s: %s\n", labelColor.Sprint(fact.Label), fact.Value)
		} else {
			fmt.Println(fact.Fallback)
		}
	}
}

// displayWithLogo renders the ASCII art logo and the report side-by-side,
// top-aligned, with gap spaces between the columns. Visible width is
// measured with ANSI codes stripped so colors never break alignment.
func displayWithLogo(logo []string, info *sysinfo.SystemInfo, gap int) {
	userColored := hostColor.Sprint(info.Username)
	hostColored := hostColor.Sprint(info.Hostname)
	sepLen := getVisibleWidth(userColored) + getVisibleWidth(hostColored) + 1

	infoLines := []string{
		"",
		fmt.Sprintf("%s@%s", userColored, hostColored),
		strings.Repeat("-", sepLen),
	}
	for _, fact := range info.Facts() {
		if fact.Label == "Hostname" {
			// Already shown in the user@host header.
			continue
		}
		if fact.Known() {
			value := sysinfo.TruncateString(fact.Value, maxValueWidth)
			infoLines = append(infoLines, fmt.Sprintf("%s: %s", labelColor.Sprint(fact.Label), value))
		} else {
			infoLines = append(infoLines, fact.Fallback)
		}
	}
	infoLines = append(infoLines, "", colorBar(), "")

	// Logo column width excludes ANSI codes.
	logoWidth := 0
	for _, line := range logo {
		if w := getVisibleWidth(line); w > logoWidth {
			logoWidth = w
		}
	}

	maxLines := len(logo)
	if len(infoLines) > maxLines {
		maxLines = len(infoLines)
	}

	spacer := strings.Repeat(" ", gap)
	for i := 0; i < maxLines; i++ {
		var logoLine, infoLine string

		if i < len(logo) {
			logoLine = logo[i]
			if pad := logoWidth - getVisibleWidth(logoLine); pad > 0 {
				logoLine += strings.Repeat(" ", pad)
			}
		} else {
			logoLine = strings.Repeat(" ", logoWidth)
		}

		if i < len(infoLines) {
			infoLine = infoLines[i]
		}

		fmt.Printf("%s%s%s\n", logoLine, spacer, infoLine)
	}
}

// getVisibleWidth calculates the visible width of a string excluding ANSI
// escape codes, counting display width so wide runes stay aligned.
func getVisibleWidth(s string) int {
	return runewidth.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}

// colorBar generates a row of the 16 basic terminal background colors, a
// visual reference in the style of other fetch utilities.
func colorBar() string {
	if color.NoColor {
		return ""
	}
	var bar strings.Builder
	for bg := 40; bg <= 47; bg++ {
		fmt.Fprintf(&bar, "\033[%dm   ", bg)
	}
	for bg := 100; bg <= 107; bg++ {
		fmt.Fprintf(&bar, "\033[%dm   ", bg)
	}
	bar.WriteString(sysinfo.ColorReset)
	return bar.String()
}
