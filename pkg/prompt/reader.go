// Package prompt reads validated values from a console stream.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// EscapeWord aborts the current operation and returns to the menu.
const EscapeWord = "menu"

// DateFormat is the day/month/year layout accepted by ReadDate.
const DateFormat = "02/01/2006"

// Reader reads validated input from an injected stream, so menus stay
// testable with scripted input. Every Read method loops until it gets
// a valid value and returns ok=false when the user types the escape
// word (or the stream ends), which callers treat as "back to menu".
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewReader wraps the given input and output streams.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{scanner: bufio.NewScanner(in), out: out}
}

// ReadInt prompts until a whole number is entered.
func (r *Reader) ReadInt(promptText string) (int, bool) {
	for {
		input, ok := r.readLine(promptText)
		if !ok {
			return 0, false
		}
		value, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(r.out, "Invalid number format. Please enter a whole number.")
			continue
		}
		return value, true
	}
}

// ReadString prompts until a non-empty string is entered.
func (r *Reader) ReadString(promptText string) (string, bool) {
	for {
		input, ok := r.readLine(promptText)
		if !ok {
			return "", false
		}
		if input == "" {
			fmt.Fprintln(r.out, "Input cannot be empty. Please try again.")
			continue
		}
		return input, true
	}
}

// ReadDate prompts until a date in DD/MM/YYYY form is entered.
func (r *Reader) ReadDate(promptText string) (time.Time, bool) {
	for {
		input, ok := r.readLine(promptText)
		if !ok {
			return time.Time{}, false
		}
		value, err := time.ParseInLocation(DateFormat, input, time.Local)
		if err != nil {
			fmt.Fprintln(r.out, "Invalid date. Please use DD/MM/YYYY.")
			continue
		}
		return value, true
	}
}

// Confirm prompts until y/yes/n/no is entered.
func (r *Reader) Confirm(promptText string) (bool, bool) {
	for {
		input, ok := r.readLine(promptText)
		if !ok {
			return false, false
		}
		switch strings.ToLower(input) {
		case "y", "yes":
			return true, true
		case "n", "no":
			return false, true
		default:
			fmt.Fprintln(r.out, "Please answer yes or no.")
		}
	}
}

// readLine prints the prompt and fetches one trimmed line. The escape
// word and end-of-input both surface as ok=false.
func (r *Reader) readLine(promptText string) (string, bool) {
	fmt.Fprintf(r.out, "%s ", promptText)
	if !r.scanner.Scan() {
		return "", false
	}
	input := strings.TrimSpace(r.scanner.Text())
	if strings.EqualFold(input, EscapeWord) {
		return "", false
	}
	return input, true
}
