package cli

import (
	"github.com/fatih/color"
)

var (
	colorHeader = color.New(color.Bold)
	colorPassed = color.New(color.FgGreen)
	colorFailed = color.New(color.FgRed, color.Bold)
	colorMuted  = color.New(color.FgWhite, color.Faint)
)
