package ui

import (
	"fmt"

	"github.com/hance08/fintrack/internal/constants"
	"github.com/pterm/pterm"
)

// PrintL1Title prints a top level heading, e.g. for a report.
func PrintL1Title(format string, a ...any) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)
	style.Println(fmt.Sprintf(" %s   ", fmt.Sprintf(format, a...)))
}

func PrintSeparator() {
	pterm.Println(pterm.Green("---------------------------------------------------------"))
}

// ColorByKind paints income green and expenses red.
func ColorByKind(kind string, s string) string {
	switch kind {
	case constants.KindIncome:
		return pterm.Green(s)
	case constants.KindExpense:
		return pterm.Red(s)
	default:
		return s
	}
}
