package tilerecord

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/heeschnum/heesch/geom"
)

// Reader reads a stream of tile records from an underlying io.Reader,
// one Read call per record.
type Reader struct {
	sc *bufio.Scanner
}

// NewReader wraps r for record-at-a-time parsing.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &Reader{sc: sc}
}

func (r *Reader) nextLine() (string, bool) {
	for r.sc.Scan() {
		line := r.sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		return line, true
	}
	return "", false
}

// Read parses and returns the next record. It returns io.EOF once the
// input is exhausted with no partial record pending.
func (r *Reader) Read() (*Record, error) {
	line1, ok := r.nextLine()
	if !ok {
		return nil, io.EOF
	}

	rec := &Record{}
	fields := strings.Fields(line1)
	if len(fields) == 0 {
		return nil, ErrMalformedLine1
	}

	head := fields[0]
	naked := false
	rec.GridCode = head[0]
	if rest := head[1:]; rest == "?" {
		naked = true
	} else if rest != "" {
		return nil, fmt.Errorf("tilerecord: line 1 head %q: %w", head, ErrMalformedLine1)
	}

	coords := fields[1:]
	if len(coords)%2 != 0 {
		return nil, ErrMalformedLine1
	}
	for i := 0; i+1 < len(coords); i += 2 {
		x, err := strconv.Atoi(coords[i])
		if err != nil {
			return nil, fmt.Errorf("tilerecord: %w", ErrMalformedLine1)
		}
		y, err := strconv.Atoi(coords[i+1])
		if err != nil {
			return nil, fmt.Errorf("tilerecord: %w", ErrMalformedLine1)
		}
		rec.Cells = append(rec.Cells, geom.Point{X: int32(x), Y: int32(y)})
	}

	if naked {
		rec.Kind = KindNaked
		return rec, nil
	}

	line2, ok := r.nextLine()
	if !ok {
		return nil, ErrMalformedLine2
	}
	rec.Kind = Kind(line2[0])

	switch rec.Kind {
	case KindUnknown, KindHasHole, KindInconclusive, KindAnisohedral, KindAperiodic:
		// No trailing fields.
	case KindIsohedral:
		fs := strings.Fields(line2[1:])
		if len(fs) != 1 {
			return nil, ErrMalformedLine2
		}
		n, err := strconv.Atoi(fs[0])
		if err != nil {
			return nil, fmt.Errorf("tilerecord: %w", ErrMalformedLine2)
		}
		rec.TransitivityClasses = n
	case KindNonTiler:
		fs := strings.Fields(line2[1:])
		if len(fs) < 2 {
			return nil, ErrMalformedLine2
		}
		hc, err := strconv.Atoi(fs[0])
		if err != nil {
			return nil, fmt.Errorf("tilerecord: %w", ErrMalformedLine2)
		}
		hh, err := strconv.Atoi(fs[1])
		if err != nil {
			return nil, fmt.Errorf("tilerecord: %w", ErrMalformedLine2)
		}
		rec.Hc, rec.Hh = hc, hh

		if len(fs) >= 3 && fs[2] == "P" {
			rec.HasPatches = true
			patch, err := r.readPatch()
			if err != nil {
				return nil, err
			}
			rec.HcPatch = patch

			if hh > hc {
				patch2, err := r.readPatch()
				if err != nil {
					return nil, err
				}
				rec.HhPatch = patch2
			}
		}
	default:
		return nil, fmt.Errorf("tilerecord: kind %q: %w", line2[:1], ErrMalformedLine2)
	}

	return rec, nil
}

func (r *Reader) readPatch() ([]PatchEntry, error) {
	countLine, ok := r.nextLine()
	if !ok {
		return nil, ErrMalformedPatch
	}
	n, err := strconv.Atoi(strings.TrimSpace(countLine))
	if err != nil {
		return nil, fmt.Errorf("tilerecord: patch count: %w", ErrMalformedPatch)
	}

	out := make([]PatchEntry, 0, n)
	for i := 0; i < n; i++ {
		line, ok := r.nextLine()
		if !ok {
			return nil, ErrMalformedPatch
		}
		parts := strings.SplitN(line, ";", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("tilerecord: patch entry %q: %w", line, ErrMalformedPatch)
		}
		level, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("tilerecord: %w", ErrMalformedPatch)
		}
		T, err := parseTransform(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, err
		}
		out = append(out, PatchEntry{Level: level, T: T})
	}
	return out, nil
}

func parseTransform(s string) (geom.Transform, error) {
	s = strings.TrimPrefix(s, "<")
	s = strings.TrimSuffix(s, ">")
	fs := strings.Split(s, ",")
	if len(fs) != 6 {
		return geom.Transform{}, fmt.Errorf("tilerecord: transform %q: %w", s, ErrMalformedPatch)
	}
	var vals [6]int32
	for i, f := range fs {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return geom.Transform{}, fmt.Errorf("tilerecord: transform %q: %w", s, ErrMalformedPatch)
		}
		vals[i] = int32(n)
	}
	return geom.Transform{A: vals[0], B: vals[1], C: vals[2], D: vals[3], E: vals[4], F: vals[5]}, nil
}

// ReadAll reads every record from r. A malformed record is skipped
// and logged to stderr rather than aborting the scan, so one corrupt
// record in a batch never costs the rest of the stream.
func ReadAll(r io.Reader) ([]*Record, error) {
	return readAll(r, os.Stderr)
}

// readAll is ReadAll with the skip-log destination exposed for tests.
func readAll(r io.Reader, warnings io.Writer) ([]*Record, error) {
	reader := NewReader(r)
	var out []*Record
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			fmt.Fprintf(warnings, "tilerecord: skipping malformed record: %v\n", err)
			continue
		}
		out = append(out, rec)
	}
}
