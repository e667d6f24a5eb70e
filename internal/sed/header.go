package sed

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// headerTerminator is how the last header line must end: the closing paren of
// the units annotation, then the newline.
const headerTerminator = ")\n"

// CheckHeader reports whether the header of the SED file at path is well
// formed. See HeaderOK.
func CheckHeader(path string) (bool, error) {
	rc, err := openSED(path)
	if err != nil {
		return false, err
	}
	defer rc.Close()

	return HeaderOK(rc)
}

// HeaderOK reads header lines from r up to the first data line and reports
// whether the last header line ends in ")\n". Files with no header, and files
// that end before any data line, are reported as well formed.
func HeaderOK(r io.Reader) (bool, error) {
	br := bufio.NewReader(r)

	var prev string
	seen := false
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		if line == "" {
			return true, nil
		}

		if !strings.HasPrefix(line, commentMarker) {
			return !seen || strings.HasSuffix(prev, headerTerminator), nil
		}
		prev = normalizeNewline(line)
		seen = true

		if err != nil {
			return true, nil
		}
	}
}

// normalizeNewline folds a trailing "\r\n" into "\n".
func normalizeNewline(line string) string {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2] + "\n"
	}
	return line
}
