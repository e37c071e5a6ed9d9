package output

import (
	"fmt"

	"github.com/lorenzotomasdiez/debatecrew/internal/crew"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

// Colorize wraps s with an ANSI color code and reset.
func Colorize(color, s string) string { return color + s + ansiReset }

// Bold wraps s with ANSI bold and reset.
func Bold(s string) string { return ansiBold + s + ansiReset }

// PrintTask prints a formatted task result to stdout.
func PrintTask(res crew.TaskResult) {
	marker := ""
	if res.Replayed {
		marker = Colorize(ansiCyan, " (replayed)")
	}
	fmt.Printf("%s %s (%s)%s:\n%s\n\n",
		Colorize(ansiYellow, "["+res.Task+"]"),
		Bold(res.Agent),
		res.Model,
		marker,
		res.Output,
	)
}

// PrintBanner prints a section banner.
func PrintBanner(text string) {
	fmt.Printf("\n%s\n", Colorize(ansiBold+ansiCyan, "=== "+text+" ==="))
}

// PrintResult prints the final workflow result.
func PrintResult(final string) {
	PrintBanner("Result")
	fmt.Printf("%s\n", Colorize(ansiGreen, final))
}
