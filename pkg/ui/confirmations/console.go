// Package confirmations asks the user to approve overwriting existing paths.
package confirmations

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"

	"github.com/arthur-debert/dotkeeper/pkg/errors"
	"github.com/arthur-debert/dotkeeper/pkg/types"
)

// Console asks for confirmation on the console. On a terminal it uses a
// promptui confirm prompt, otherwise it prints "[y/n]" and reads a line.
type Console struct {
	in          io.ReadCloser
	out         io.WriteCloser
	interactive bool
	reader      *bufio.Reader
}

// NewConsole returns a Console reading stdin and writing stdout.
func NewConsole() *Console {
	return &Console{
		in:          os.Stdin,
		out:         os.Stdout,
		interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}
}

// NewLineConsole returns a Console that always uses line prompts on the
// given streams.
func NewLineConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  io.NopCloser(in),
		out: nopWriteCloser{out},
	}
}

// Confirm implements types.ConfirmFunc.
func (c *Console) Confirm(req types.ConfirmationRequest) (bool, error) {
	if c.interactive {
		return c.prompt(req)
	}
	return c.readLine(req)
}

func (c *Console) prompt(req types.ConfirmationRequest) (bool, error) {
	def := "n"
	if req.Default {
		def = "y"
	}

	p := promptui.Prompt{
		Label:     req.Description,
		IsConfirm: true,
		Default:   def,
		Stdin:     c.in,
		Stdout:    c.out,
	}

	_, err := p.Run()
	switch {
	case err == nil:
		return true, nil
	case stderrors.Is(err, promptui.ErrAbort):
		return false, nil
	case stderrors.Is(err, promptui.ErrInterrupt), stderrors.Is(err, promptui.ErrEOF):
		return false, errors.New(errors.ErrInvalidInput, "restore interrupted").WithDetail("link", req.ID)
	default:
		return false, errors.Wrap(err, errors.ErrInvalidInput, "failed to read confirmation").WithDetail("link", req.ID)
	}
}

func (c *Console) readLine(req types.ConfirmationRequest) (bool, error) {
	if c.reader == nil {
		c.reader = bufio.NewReader(c.in)
	}

	if _, err := fmt.Fprintf(c.out, "%s [y/n] ", req.Description); err != nil {
		return false, err
	}

	line, err := c.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return false, errors.New(errors.ErrInvalidInput, "no answer to confirmation prompt").WithDetail("link", req.ID)
		}
		return false, errors.Wrap(err, errors.ErrInvalidInput, "failed to read confirmation").WithDetail("link", req.ID)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	case "":
		return req.Default, nil
	default:
		return false, nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
