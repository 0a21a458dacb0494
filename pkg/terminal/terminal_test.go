package terminal_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/sgr/pkg/sgr"
	"github.com/arthur-debert/sgr/pkg/terminal"
)

func TestPrinterDisabledWritesZeroBytes(t *testing.T) {
	var buf bytes.Buffer
	p := terminal.NewPrinter(&buf, false)

	require.NoError(t, p.WriteStyle(sgr.FromFg(sgr.Red).Bold(true)))
	require.NoError(t, p.Transition(sgr.FromFg(sgr.Blue)))
	require.NoError(t, p.Reset())
	assert.Zero(t, buf.Len(), "disabled printer must write zero bytes")

	require.NoError(t, p.Styled(sgr.FromFg(sgr.Red), "plain"))
	assert.Equal(t, "plain", buf.String(), "text passes through without escapes")
}

func TestPrinterEnabled(t *testing.T) {
	var buf bytes.Buffer
	p := terminal.NewPrinter(&buf, true)

	require.NoError(t, p.WriteStyle(sgr.FromFg(sgr.Red)))
	assert.Equal(t, "\x1b[31m", buf.String())

	// Gaining bold is an incremental add, not a re-render.
	buf.Reset()
	require.NoError(t, p.Transition(sgr.FromFg(sgr.Red).Bold(true)))
	assert.Equal(t, "\x1b[1m", buf.String())

	// Dropping bold forces reset plus re-apply.
	buf.Reset()
	require.NoError(t, p.Transition(sgr.FromFg(sgr.Red)))
	assert.Equal(t, "\x1b[0m\x1b[31m", buf.String())

	buf.Reset()
	require.NoError(t, p.Reset())
	assert.Equal(t, "\x1b[0m", buf.String())
}

func TestPrinterStyled(t *testing.T) {
	var buf bytes.Buffer
	p := terminal.NewPrinter(&buf, true)

	require.NoError(t, p.Styled(sgr.FromFg(sgr.Green), "ok"))
	assert.Equal(t, "\x1b[32mok\x1b[0m", buf.String())
}

func TestPrinterToggle(t *testing.T) {
	var buf bytes.Buffer
	p := terminal.NewPrinter(&buf, true)
	assert.True(t, p.Enabled())

	// The decision is consulted per call, so a section can run plain.
	p.SetEnabled(false)
	require.NoError(t, p.WriteStyle(sgr.FromFg(sgr.Red)))
	assert.Zero(t, buf.Len())

	p.SetEnabled(true)
	require.NoError(t, p.WriteStyle(sgr.FromFg(sgr.Red)))
	assert.Equal(t, "\x1b[31m", buf.String())
}

func TestDetectRespectsOptOuts(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, terminal.Detect(os.Stdout))

	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "dumb")
	assert.False(t, terminal.Detect(os.Stdout))
}
