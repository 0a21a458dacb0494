package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/sgr/pkg/sgr"
	"github.com/arthur-debert/sgr/pkg/terminal"
)

var swatchCmd = &cobra.Command{
	Use:   "swatch",
	Short: "Show the base colors, attributes and a palette strip",
	RunE:  runSwatch,
}

var namedColors = []struct {
	name  string
	color sgr.Color
}{
	{"black", sgr.Black},
	{"red", sgr.Red},
	{"green", sgr.Green},
	{"yellow", sgr.Yellow},
	{"blue", sgr.Blue},
	{"magenta", sgr.Magenta},
	{"cyan", sgr.Cyan},
	{"white", sgr.White},
}

var attrs = []struct {
	name  string
	style sgr.Style
}{
	{"bold", sgr.NewStyle().Bold(true)},
	{"dim", sgr.NewStyle().Dim(true)},
	{"italic", sgr.NewStyle().Italic(true)},
	{"underline", sgr.NewStyle().Underline(true)},
	{"blink", sgr.NewStyle().Blink(true)},
	{"reverse", sgr.NewStyle().Reverse(true)},
	{"hidden", sgr.NewStyle().Hidden(true)},
	{"strikethrough", sgr.NewStyle().Strikethrough(true)},
}

func runSwatch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	printer := terminal.NewPrinter(out, colorEnabled(out))

	if _, err := io.WriteString(printer, "base colors:\n"); err != nil {
		return err
	}
	for _, nc := range namedColors {
		if err := printer.Styled(sgr.FromFg(nc.color), fmt.Sprintf("  %-9s", nc.name)); err != nil {
			return err
		}
		if err := printer.Styled(sgr.FromFg(nc.color).Intense(true), nc.name+" (intense)"); err != nil {
			return err
		}
		if _, err := io.WriteString(printer, "\n"); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(printer, "\nattributes:\n"); err != nil {
		return err
	}
	for _, a := range attrs {
		if err := printer.Styled(a.style, "  "+a.name); err != nil {
			return err
		}
		if _, err := io.WriteString(printer, "\n"); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(printer, "\npalette:\n"); err != nil {
		return err
	}
	for i := 0; i < 256; i++ {
		if err := printer.Transition(sgr.FromBg(sgr.Ansi256(uint8(i)))); err != nil {
			return err
		}
		if _, err := io.WriteString(printer, "  "); err != nil {
			return err
		}
		if (i+1)%32 == 0 {
			if err := printer.Reset(); err != nil {
				return err
			}
			if _, err := io.WriteString(printer, "\n"); err != nil {
				return err
			}
		}
	}

	return nil
}
