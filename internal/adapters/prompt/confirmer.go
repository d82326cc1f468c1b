package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"tutsync/internal/ports"
)

// ConfirmToken is the exact input that lets a sync proceed. The comparison
// is case-sensitive; anything else declines.
const ConfirmToken = "yes"

// Confirmer implements ports.Confirmer by blocking for a single line of
// input on the given reader.
type Confirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// Ensure Confirmer implements the port
var _ ports.Confirmer = (*Confirmer)(nil)

// NewConfirmer creates a confirmer reading from in and prompting on out
func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm shows the release token and blocks for one line of input.
// Only the literal "yes" proceeds; EOF before any input is an error.
func (c *Confirmer) Confirm(ctx context.Context, version string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	fmt.Fprintf(c.out, "\nThis will update the workspace to release %s.\n", version)
	fmt.Fprintf(c.out, "Type %q to continue: ", ConfirmToken)

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	return strings.TrimRight(line, "\r\n") == ConfirmToken, nil
}

// Static is a non-interactive Confirmer with a fixed decision, used by
// the --yes CLI flag and by tests.
type Static struct {
	Proceed bool
}

// Confirm returns the fixed decision
func (s Static) Confirm(ctx context.Context, version string) (bool, error) {
	return s.Proceed, nil
}
