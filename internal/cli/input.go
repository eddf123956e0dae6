package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// readLine reads a line from the reader, trimming line endings.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return strings.TrimRight(line, "\r\n"), io.EOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptString asks for a non-empty value.
func promptString(reader *bufio.Reader, out io.Writer, label string) (string, error) {
	for {
		fmt.Fprintf(out, "%s: ", label)
		line, err := readLine(reader)
		if err != nil && err != io.EOF {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		if err == io.EOF {
			return "", fmt.Errorf("missing input for %s", label)
		}
	}
}

// promptAnswer asks for a true/false answer until one is given.
func promptAnswer(reader *bufio.Reader, out io.Writer) (bool, error) {
	for {
		fmt.Fprint(out, "Answer [t/f]: ")
		line, err := readLine(reader)
		if err != nil && err != io.EOF {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "t", "true", "y", "yes":
			return true, nil
		case "f", "false", "n", "no":
			return false, nil
		case "":
			if err == io.EOF {
				return false, io.ErrUnexpectedEOF
			}
		default:
			if err == io.EOF {
				return false, fmt.Errorf("invalid answer %q", line)
			}
			fmt.Fprintln(out, "Please answer t (true) or f (false).")
		}
	}
}
