package main

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	sgrerrors "github.com/arthur-debert/sgr/pkg/errors"
	"github.com/arthur-debert/sgr/pkg/markup"
	"github.com/arthur-debert/sgr/pkg/terminal"
	"github.com/arthur-debert/sgr/pkg/theme"
)

var (
	styleName string
	themeFile string
)

var printCmd = &cobra.Command{
	Use:   "print [text...]",
	Short: "Print styled text",
	Long: `Print text with ANSI styling. With --style, the whole input is wrapped in
the named theme style. Without it, [tag]...[/tag] markup in the input is
expanded against the theme. Text is read from the arguments, or from stdin
when none are given.`,
	RunE: runPrint,
}

func init() {
	printCmd.Flags().StringVarP(&styleName, "style", "s", "", "Wrap the input in this named style")
	printCmd.Flags().StringVarP(&themeFile, "theme", "t", "", "Load styles from this TOML theme file")
}

func runPrint(cmd *cobra.Command, args []string) error {
	th, err := loadTheme()
	if err != nil {
		return err
	}

	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printer := terminal.NewPrinter(out, colorEnabled(out))

	if styleName != "" {
		style, ok := th.Style(styleName)
		if !ok {
			return sgrerrors.Newf(sgrerrors.ErrStyleUnknown, "no style named %q in theme", styleName)
		}
		if err := printer.Styled(style, text); err != nil {
			return err
		}
		_, err = io.WriteString(printer, "\n")
		return err
	}

	_, err = io.WriteString(printer, markup.New(th, printer.Enabled()).Expand(text)+"\n")
	return err
}

func loadTheme() (theme.Theme, error) {
	if themeFile == "" {
		return theme.Default(), nil
	}
	log.Debug().Str("path", themeFile).Msg("Loading theme file")
	return theme.Load(themeFile)
}

// inputText joins the arguments, or reads stdin when no arguments were given.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// colorEnabled resolves the color decision for the output the command is
// actually writing to. Only a real file can be a terminal; buffers in tests
// and redirected output stay plain.
func colorEnabled(out io.Writer) bool {
	if noColor {
		return false
	}
	f, ok := out.(*os.File)
	return ok && terminal.Detect(f)
}
