package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Format selects the input parsing mode.
type Format string

const (
	// FormatFreq is the frequency format: one tab-delimited record per line
	// carrying frequency, surface form and a bracketed spelling list.
	FormatFreq Format = "freq"
	// FormatPlain is one bare surface form per line, frequency 0, no
	// spellings. Used when only lemma names are available.
	FormatPlain Format = "plain"
)

// MalformedRecordError reports an input line that does not match the
// frequency format. It aborts the load of the offending file: a partially
// parsed file would silently skew the comparison results.
type MalformedRecordError struct {
	File   string
	Line   int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Reason)
}

// LoadFile parses one input file into a fresh store.
func LoadFile(path string, format Format) (*Store, error) {
	store := NewStore()
	if err := loadInto(store, path, format); err != nil {
		return nil, err
	}
	return store, nil
}

// LoadGlob parses every file matching a doublestar glob pattern into a
// single store, in lexical path order so the store order is reproducible.
func LoadGlob(pattern string, format Format) (*Store, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad input pattern %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files match %q", pattern)
	}
	sort.Strings(paths)

	store := NewStore()
	for _, path := range paths {
		if err := loadInto(store, path, format); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func loadInto(store *Store, path string, format Format) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	if err := Parse(store, f, format); err != nil {
		var malformed *MalformedRecordError
		if errors.As(err, &malformed) && malformed.File == "" {
			malformed.File = path
		}
		return err
	}
	return nil
}

// Parse reads records from r into the store. Input is decoded as UTF-8
// best-effort: invalid byte sequences are dropped, not replaced, so a
// corrupt byte never becomes a spurious comparison character.
func Parse(store *Store, r io.Reader, format Format) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(strings.ToValidUTF8(scanner.Text(), ""))
		if line == "" {
			continue
		}

		var rec Record
		var err error
		switch format {
		case FormatPlain:
			rec = Record{SurfaceForm: line}
		default:
			rec, err = parseFreqLine(line)
			if err != nil {
				if malformed, ok := err.(*MalformedRecordError); ok {
					malformed.Line = lineNo
				}
				return err
			}
		}
		store.Add(rec)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// parseFreqLine splits a frequency-format line into a record. The first
// tab field carries the frequency as its leading digit run and the surface
// form as everything else minus digits and spaces; the last field is the
// bracketed spelling list.
func parseFreqLine(line string) (Record, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 2 {
		return Record{}, &MalformedRecordError{Reason: "missing tab-delimited fields"}
	}

	freq, ok := leadingInt(fields[0])
	if !ok {
		return Record{}, &MalformedRecordError{Reason: "frequency field has no leading digits"}
	}

	form := strings.Map(func(r rune) rune {
		if r == ' ' || (r >= '0' && r <= '9') {
			return -1
		}
		return r
	}, fields[0])
	if form == "" {
		return Record{}, &MalformedRecordError{Reason: "empty surface form"}
	}

	list := fields[len(fields)-1]
	list = strings.TrimPrefix(list, "[")
	list = strings.TrimSuffix(list, "]")

	return Record{
		SurfaceForm: form,
		Frequency:   freq,
		Spellings:   strings.Split(list, ", "),
	}, nil
}

// leadingInt parses the leading ASCII digit run of s. ok is false when s
// has no leading digits.
func leadingInt(s string) (value int, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		value = value*10 + int(s[i]-'0')
		i++
	}
	return value, i > 0
}
