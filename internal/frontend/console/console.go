package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Console reads player input line by line and writes styled output.
// With color disabled every style is stripped before writing.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
	color  bool
	fold   cases.Caser
}

// New wraps in and out.
//
// Precondition: in and out must be non-nil.
func New(in io.Reader, out io.Writer, color bool) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
		color:  color,
		fold:   cases.Fold(),
	}
}

// Style applies color to text when color output is enabled.
func (c *Console) Style(color, text string) string {
	if !c.color {
		return text
	}
	return Colorize(color, text)
}

// WriteLine writes text followed by a newline.
func (c *Console) WriteLine(text string) error {
	if !c.color {
		text = StripANSI(text)
	}
	_, err := io.WriteString(c.out, text+"\n")
	return err
}

// Printf formats and writes a line.
func (c *Console) Printf(format string, args ...any) error {
	return c.WriteLine(fmt.Sprintf(format, args...))
}

// WritePrompt writes prompt without a trailing newline.
func (c *Console) WritePrompt(prompt string) error {
	if !c.color {
		prompt = StripANSI(prompt)
	}
	_, err := io.WriteString(c.out, prompt)
	return err
}

// ReadLine reads one line of input without its line terminator.
//
// Postcondition: Returns io.EOF only when no input remains; a final line
// lacking a newline is returned first.
func (c *Console) ReadLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ask writes prompt and returns the trimmed reply.
func (c *Console) Ask(prompt string) (string, error) {
	if err := c.WritePrompt(prompt); err != nil {
		return "", err
	}
	line, err := c.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskInt prompts until the reply is an integer in [lo, hi], explaining each
// rejected reply.
//
// Precondition: lo <= hi.
// Postcondition: Returns a value in [lo, hi], or the read error.
func (c *Console) AskInt(prompt string, lo, hi int) (int, error) {
	for {
		reply, err := c.Ask(prompt)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(reply)
		switch {
		case convErr != nil:
			err = c.WriteLine(c.Style(Yellow, "Incompatible type, please enter a valid integer."))
		case n < lo || n > hi:
			err = c.WriteLine(c.Style(Yellow, fmt.Sprintf("Invalid choice, please select a number between %d and %d.", lo, hi)))
		default:
			return n, nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// AskYesNo prompts until the reply is yes or no, ignoring case. "y" and "n"
// are accepted.
//
// Postcondition: Returns true for yes, false for no, or the read error.
func (c *Console) AskYesNo(prompt string) (bool, error) {
	for {
		reply, err := c.Ask(prompt)
		if err != nil {
			return false, err
		}
		switch c.fold.String(reply) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		if err := c.WriteLine(c.Style(Yellow, "Invalid choice, please respond with 'yes' or 'no'.")); err != nil {
			return false, err
		}
	}
}
