package logstore

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// readLastLines scans path front to back keeping the last limit lines in a
// ring buffer, so memory stays bounded regardless of file size.
func readLastLines(path string, limit int) ([]string, error) {
	ring := make([]string, limit)
	count := 0
	idx := 0

	err := scanLines(path, func(line string) {
		ring[idx] = line
		idx = (idx + 1) % limit
		if count < limit {
			count++
		}
	})
	if err != nil {
		return nil, err
	}

	lines := make([]string, count)
	if count == limit {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%limit]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// scanLines reads path line by line, invoking fn for each line in file order.
func scanLines(path string, fn func(line string)) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return fmt.Errorf("%w: open: %v", ErrNotFound, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: read: %v", ErrIO, err)
	}
	return nil
}
