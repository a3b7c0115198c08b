package ntriples

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// MergeFiles combines chunk files into one deduplicated, sorted N-Triples
// file. Statements are compared as lines, which is exact because the chunk
// writer emits one canonical line per statement. Returns the number of
// distinct statements written.
func MergeFiles(paths []string, out string) (int, error) {
	seen := make(map[string]struct{})

	for _, path := range paths {
		if err := readLines(path, seen); err != nil {
			return 0, err
		}
	}

	lines := make([]string, 0, len(seen))
	for l := range seen {
		lines = append(lines, l)
	}
	sort.Strings(lines)

	f, err := os.Create(out)
	if err != nil {
		return 0, fmt.Errorf("create merged file: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, l := range lines {
		if _, err := w.WriteString(l); err != nil {
			_ = f.Close()
			return 0, fmt.Errorf("write merged file: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			_ = f.Close()
			return 0, fmt.Errorf("write merged file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return 0, fmt.Errorf("flush merged file: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close merged file: %w", err)
	}
	return len(lines), nil
}

func readLines(path string, seen map[string]struct{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open chunk %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		seen[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read chunk %s: %w", path, err)
	}
	return nil
}
