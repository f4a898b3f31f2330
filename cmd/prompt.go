package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errEmptyPin = errors.New("pin cannot be empty")

// prompter reads secrets from the terminal without echo, or line by line when
// input is piped.
type prompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

func newPrompter(cmd *cobra.Command) *prompter {
	in := cmd.InOrStdin()
	return &prompter{
		in:     in,
		out:    cmd.ErrOrStderr(),
		reader: bufio.NewReader(in),
	}
}

func (p *prompter) terminal() (int, bool) {
	f, ok := p.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	return int(f.Fd()), true
}

func (p *prompter) line(label string) (string, error) {
	fmt.Fprint(p.out, label+": ")
	s, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return "", fmt.Errorf("failed to read %s: %w", label, err)
	}
	return strings.TrimRight(s, "\r\n"), nil
}

func (p *prompter) secret(label string) (string, error) {
	fd, ok := p.terminal()
	if !ok {
		return p.line(label)
	}

	fmt.Fprint(p.out, label+": ")
	defer fmt.Fprintln(p.out)
	raw, err := term.ReadPassword(fd)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", label, err)
	}
	s := string(raw)
	clear(raw)
	return s, nil
}

func (p *prompter) pin() ([]byte, error) {
	s, err := p.secret("PIN")
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, errEmptyPin
	}
	return []byte(s), nil
}
