package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

type line struct {
	text string
	err  error
}

// Prompter reads answers line by line. An interrupt while waiting counts as
// an empty answer; interrupts that arrive while an operation runs are picked
// up by the next prompt.
type Prompter struct {
	out        io.Writer
	style      func(...string) string
	lines      chan line
	interrupts <-chan os.Signal
	eof        bool
}

// NewPrompter starts reading in; interrupts may be nil
func NewPrompter(in io.Reader, out io.Writer, styles Styles, interrupts <-chan os.Signal) *Prompter {
	p := &Prompter{
		out:        out,
		style:      styles.Prompt.Render,
		lines:      make(chan line),
		interrupts: interrupts,
	}
	go p.read(in)
	return p
}

func (p *Prompter) read(in io.Reader) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		p.lines <- line{text: scanner.Text()}
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	p.lines <- line{err: err}
}

// Ask prints msg and returns the trimmed answer. io.EOF means input is gone.
func (p *Prompter) Ask(msg string) (string, error) {
	fmt.Fprint(p.out, p.style(msg))
	if p.eof {
		fmt.Fprintln(p.out)
		return "", io.EOF
	}

	select {
	case l := <-p.lines:
		if l.err != nil {
			p.eof = true
			fmt.Fprintln(p.out)
			return "", io.EOF
		}
		return strings.TrimSpace(strings.TrimSuffix(l.text, "\r")), nil
	case <-p.interrupts:
		fmt.Fprintln(p.out)
		return "", nil
	}
}
