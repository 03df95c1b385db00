package main

import (
	"os"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
)

// useColor decides whether to print ANSI color codes by the --color flag.
func useColor(cmd *cobra.Command) bool {
	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return isatty()
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var rePos = regexp.MustCompile(`^[^\s:]+:\d+:\d+: `)

var (
	dim   = color.New(color.Faint)
	red   = color.New(color.FgRed)
	green = color.New(color.FgGreen)
	cyan  = color.New(color.FgCyan)
)

func init() {
	// The decision is made by useColor.
	for _, c := range []*color.Color{dim, red, green, cyan} {
		c.EnableColor()
	}
}

// colorize dims the position prefix of each error line.
//
//	main.go:7:2: record Server: field host ...
//	^^^^^^^^^^^^ dim
func colorize(message string) string {
	lines := strings.Split(message, "\n")
	for i, line := range lines {
		if loc := rePos.FindStringIndex(line); loc != nil {
			lines[i] = dim.Sprint(line[:loc[1]]) + red.Sprint(line[loc[1]:])
		}
	}
	return strings.Join(lines, "\n")
}

// colorizeDiff colors the lines of a diff from [sectiongeninternal.Diff].
func colorizeDiff(diff string) string {
	lines := strings.SplitAfter(diff, "\n")
	for i, line := range lines {
		body, nl := strings.CutSuffix(line, "\n")
		var c *color.Color
		switch {
		case strings.HasPrefix(body, "---"), strings.HasPrefix(body, "+++"):
			c = dim
		case strings.HasPrefix(body, "@@"):
			c = cyan
		case strings.HasPrefix(body, "-"):
			c = red
		case strings.HasPrefix(body, "+"):
			c = green
		}
		if c == nil || body == "" {
			continue
		}
		lines[i] = c.Sprint(body)
		if nl {
			lines[i] += "\n"
		}
	}
	return strings.Join(lines, "")
}
