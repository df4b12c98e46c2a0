package input

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ErrNoInput is returned when stdin was requested but nothing is piped in.
var ErrNoInput = errors.New("no input: pipe table data on stdin or pass a file path")

// Lines resolves the CLI's input argument into raw table lines. "-" reads
// stdin, an argument containing a newline is inline table data, anything
// else is a file path.
func Lines(arg string) ([]string, error) {
	switch {
	case arg == "-":
		return readStdin()
	case strings.Contains(arg, "\n"):
		return splitLines(arg), nil
	default:
		return readFile(arg)
	}
}

func readStdin() ([]string, error) {
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return nil, ErrNoInput
	}

	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}

	return lines, nil
}

func readFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// Invalid UTF-8 is replaced rather than rejected; the input is often
	// scraped command output.
	return splitLines(strings.ToValidUTF8(string(data), "�")), nil
}

// splitLines breaks text into newline-stripped lines, tolerating CRLF and
// a trailing newline.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
