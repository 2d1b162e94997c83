package structure

import (
	"io"
	"strings"
)

// accumulate reads r in fixed-size windows into a capped buffer. It never
// holds more than one window plus the accumulated output in memory, and it
// stops reading once capBytes is reached. Returns the text and whether the
// cap truncated the stream.
func accumulate(r io.Reader, windowBytes, capBytes int) (string, bool, error) {
	if windowBytes <= 0 {
		windowBytes = 64 << 10
	}
	if capBytes <= 0 {
		capBytes = windowBytes
	}
	// The cap is the contract; a cap below the window size shrinks the
	// window so a small budget (the viability probe) stays a small read.
	if capBytes < windowBytes {
		windowBytes = capBytes
	}

	var b strings.Builder
	b.Grow(windowBytes)
	win := make([]byte, windowBytes)

	for {
		n, err := r.Read(win)
		if n > 0 {
			remaining := capBytes - b.Len()
			if n >= remaining {
				b.Write(win[:remaining])
				return b.String(), true, nil
			}
			b.Write(win[:n])
		}
		if err == io.EOF {
			return b.String(), false, nil
		}
		if err != nil {
			return b.String(), false, err
		}
	}
}
