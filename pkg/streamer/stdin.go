package streamer

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/muesli/cancelreader"
)

const stdinBufferSize = 100

// OpenStdin returns stdin and a function that unblocks any pending read on it.
// A terminal is wrapped in a cancelreader, since closing it does not interrupt a blocked read.
func OpenStdin() (io.Reader, func(), error) {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return nil, nil, err
	}

	if (fi.Mode() & os.ModeCharDevice) == 0 {
		return os.Stdin, func() {
			_ = os.Stdin.Close()
		}, nil
	}

	r, err := cancelreader.NewReader(os.Stdin)
	if err != nil {
		return nil, nil, err
	}

	return r, func() {
		_ = r.Cancel()
	}, nil
}

// ReadLines sends every non-empty line of r to the returned channel, which is closed when r is exhausted or cancelled.
func ReadLines(r io.Reader) <-chan string {
	lines := make(chan string, stdinBufferSize)

	go func() {
		defer close(lines)

		scan := bufio.NewScanner(r)
		for scan.Scan() {
			if line := strings.TrimSpace(scan.Text()); line != "" {
				lines <- line
			}
		}
	}()

	return lines
}
