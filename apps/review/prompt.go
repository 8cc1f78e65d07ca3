package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/pkg/errors"
)

var (
	// errors
	errEndOfInput   = errors.New("end of input")
	errInvalidInput = errors.New("invalid input")
)

// console reads line-based input and writes (optionally coloured) output.
type console struct {
	reader *bufio.Reader
	out    io.Writer
	clr    *color.Color
}

func newConsole(in io.Reader, out io.Writer, colored bool) *console {
	clr := color.New()
	if colored {
		clr.Enable()
	} else {
		clr.Disable()
	}
	return &console{
		reader: bufio.NewReader(in),
		out:    out,
		clr:    clr,
	}
}

// readLine returns the next input line, trimmed. Lines have no length limit.
// errEndOfInput once the input is exhausted.
func (c *console) readLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", errors.Wrap(err, "reading input")
		}
		if line == "" {
			return "", errEndOfInput
		}
	}
	return strings.TrimSpace(line), nil
}

// prompt prints label and reads the answer.
func (c *console) prompt(label string) (string, error) {
	_, _ = fmt.Fprint(c.out, label)
	return c.readLine()
}

// choose prints a menu and reads a numeric option.
// errInvalidInput is returned when the answer is not a number.
func (c *console) choose(title string, options ...string) (int, error) {
	c.println("")
	c.println(c.clr.Bold(title))
	for i, opt := range options {
		c.printf("%d) %s\n", i+1, opt)
	}
	answer, err := c.prompt("Choose an option: ")
	if err != nil {
		return 0, err
	}
	choice, err := strconv.Atoi(answer)
	if err != nil {
		return 0, errInvalidInput
	}
	return choice, nil
}

func (c *console) println(a ...interface{}) {
	_, _ = fmt.Fprintln(c.out, a...)
}

func (c *console) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

func (c *console) success(msg string) { c.println(c.clr.Green(msg)) }
func (c *console) notice(msg string)  { c.println(c.clr.Yellow(msg)) }
func (c *console) fail(msg string)    { c.println(c.clr.Red(msg)) }

// list prints a header followed by items, or empty when there are none.
func (c *console) list(header, empty, bullet string, items []string) {
	if len(items) == 0 {
		c.notice(empty)
		return
	}
	c.println(c.clr.Cyan(header))
	for _, it := range items {
		c.println(bullet + it)
	}
}
