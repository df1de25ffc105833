package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

var ErrEmptyInput = errors.New("empty input")

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetRequiredText is GetSimpleText that rejects blank answers.
func GetRequiredText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	s, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", fmt.Errorf("%s: %w", prompt, ErrEmptyInput)
	}
	return s, nil
}

// GetPassword prints a password prompt to w and reads a password
// from the user's terminal without echo. A newline is printed after
// the read to keep the UI tidy.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetChoice shows the options numbered from 1 and returns the parsed answer.
// The user may type either the number or the value itself; an empty answer
// selects def when def is non-empty.
func GetChoice[T ~string](reader *bufio.Reader, prompt string, options []T, def T, parse func(string) (T, error), w io.Writer) (T, error) {
	var b strings.Builder
	b.WriteString(prompt)
	for i, o := range options {
		fmt.Fprintf(&b, "\n  %d) %s", i+1, o)
	}
	if def != "" {
		fmt.Fprintf(&b, "\n(default: %s)", def)
	}

	s, err := GetSimpleText(reader, b.String(), w)
	if err != nil {
		return "", err
	}
	if s == "" {
		if def != "" {
			return def, nil
		}
		return "", fmt.Errorf("%s: %w", prompt, ErrEmptyInput)
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > len(options) {
			return "", fmt.Errorf("choice %d out of range 1..%d", n, len(options))
		}
		return options[n-1], nil
	}
	return parse(s)
}

// GetPositiveInt reads a whole number greater than zero. An empty answer
// selects def when def > 0.
func GetPositiveInt(reader *bufio.Reader, prompt string, def int, w io.Writer) (int, error) {
	if def > 0 {
		prompt = fmt.Sprintf("%s (default: %d)", prompt, def)
	}
	s, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return 0, err
	}
	if s == "" && def > 0 {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%q is not a positive whole number", s)
	}
	return n, nil
}
