package config

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// ParseINI parses the legacy ornament line format:
//
//	SHAPE=[COLOR, POSITION, SCREEN]
//	# comment
//
// e.g. `CUBE=[GREEN, TOP-LEFT, 0]`. Field values may be double-quoted.
// Malformed lines are skipped and reported in the returned slice of errors,
// keeping the valid entries; one bad line never discards the whole file.
// Name validation happens later in Entries; here a line only has to be
// structurally well formed.
func ParseINI(data []byte) ([]OrnamentEntry, []error) {
	var (
		entries []OrnamentEntry
		errs    []error
	)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseINILine(line)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", lineNo, err))
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, err)
	}

	return entries, errs
}

func parseINILine(line string) (OrnamentEntry, error) {
	shape, rhs, ok := strings.Cut(line, "=")
	if !ok {
		return OrnamentEntry{}, fmt.Errorf("missing '=' in %q", line)
	}

	rhs = strings.TrimSpace(rhs)
	if !strings.HasPrefix(rhs, "[") || !strings.HasSuffix(rhs, "]") {
		return OrnamentEntry{}, fmt.Errorf("missing [...] in %q", line)
	}

	fields := strings.Split(rhs[1:len(rhs)-1], ",")
	if len(fields) != 3 {
		return OrnamentEntry{}, fmt.Errorf("need 3 fields in %q, got %d", line, len(fields))
	}

	screen, err := strconv.Atoi(unquote(fields[2]))
	if err != nil {
		return OrnamentEntry{}, fmt.Errorf("bad screen index in %q: %w", line, err)
	}

	return OrnamentEntry{
		Shape:    unquote(shape),
		Color:    unquote(fields[0]),
		Position: unquote(fields[1]),
		Screen:   screen,
	}, nil
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return s
}
