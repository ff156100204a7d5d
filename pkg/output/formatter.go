package output

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/liuyu80/buildLog2CompileCommands/pkg/generator"
)

// PrintSummary prints a colorized run summary to the console.
func PrintSummary(logPath, outputPath string, res *generator.Result) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	bold.Println("Build Log -> Compilation Database")
	bold.Println("=================================")
	fmt.Printf("Log: %s\n", logPath)
	fmt.Printf("Scanned: %d lines\n", res.Stats.Lines)

	if res.Stats.Records == 0 {
		yellow.Println("No compile commands found or parsed from the log file.")
	} else {
		green.Printf("Records: %d\n", res.Stats.Records)
	}
	if res.Stats.Skipped > 0 {
		yellow.Printf("Skipped: %d matched line(s) yielded no record\n", res.Stats.Skipped)
	}

	cyan.Printf("Successfully generated %s with %d entries.\n", outputPath, res.Stats.Records)
}
