package bmfont

import (
	"bytes"
	"fmt"
	"math"
)

// SyntaxError reports a descriptor record that cannot be tokenized.
type SyntaxError struct {
	Line int // 1-based
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("bmfont: line %d: %s", e.Line, e.Msg)
}

// A Scanner splits a text descriptor into records.
type Scanner struct {
	data []byte
	line int
	tag  string

	// fields is reused for every record and cleared by Scan.
	fields map[string]string

	err error
}

// NewScanner returns a scanner reading the descriptor in data.
func NewScanner(data []byte) *Scanner {
	return &Scanner{
		data:   data,
		fields: make(map[string]string, 16),
	}
}

// Scan advances to the next non-empty record. It returns false at the end
// of the input or after a syntax error; Err tells the two apart.
func (s *Scanner) Scan() bool {
	for s.err == nil && len(s.data) > 0 {
		line := s.data
		if i := bytes.IndexByte(line, '\n'); i >= 0 {
			line, s.data = line[:i], s.data[i+1:]
		} else {
			s.data = nil
		}
		s.line++
		line = bytes.TrimSuffix(line, []byte{'\r'})

		clear(s.fields)
		if s.parseRecord(line) {
			return true
		}
	}
	return false
}

// parseRecord tokenizes a single line. It returns false for blank lines and
// on error.
func (s *Scanner) parseRecord(line []byte) bool {
	pos := skipSpace(line, 0)
	if pos == len(line) {
		return false
	}

	end := pos
	for end < len(line) && !isSpace(line[end]) {
		end++
	}
	s.tag = string(line[pos:end])

	pos = end
	for {
		pos = skipSpace(line, pos)
		if pos == len(line) {
			return true
		}

		start := pos
		for pos < len(line) && line[pos] != '=' && !isSpace(line[pos]) {
			pos++
		}
		if pos == len(line) || line[pos] != '=' {
			// A bare word carries no value.
			continue
		}
		key := string(line[start:pos])
		pos++

		if pos < len(line) && line[pos] == '"' {
			closing := bytes.IndexByte(line[pos+1:], '"')
			if closing < 0 {
				s.err = &SyntaxError{Line: s.line, Msg: fmt.Sprintf("unterminated quoted value for %q", key)}
				return false
			}
			s.fields[key] = string(line[pos+1 : pos+1+closing])
			pos += closing + 2
			continue
		}

		start = pos
		for pos < len(line) && !isSpace(line[pos]) {
			pos++
		}
		s.fields[key] = string(line[start:pos])
	}
}

// Tag returns the tag word of the current record, such as "info" or "char".
func (s *Scanner) Tag() string {
	return s.tag
}

// Line returns the 1-based line number of the current record.
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first syntax error encountered, if any.
func (s *Scanner) Err() error {
	return s.err
}

// String returns the value of key in the current record. Quotes around the
// value are removed. ok is false when the record has no such field.
func (s *Scanner) String(key string) (value string, ok bool) {
	value, ok = s.fields[key]
	return value, ok
}

// Number returns the leading integer of the value of key in the current
// record, or 0 when the field is absent or does not start with a number.
// List values such as "padding=1,2,3,4" yield their first element.
func (s *Scanner) Number(key string) int {
	v, ok := s.fields[key]
	if !ok {
		return 0
	}
	return leadingInt(v)
}

func leadingInt(v string) int {
	i, neg := 0, false
	if i < len(v) && (v[i] == '-' || v[i] == '+') {
		neg = v[i] == '-'
		i++
	}
	n := 0
	for ; i < len(v) && v[i] >= '0' && v[i] <= '9'; i++ {
		n = n*10 + int(v[i]-'0')
		if n > math.MaxInt32 {
			n = math.MaxInt32
		}
	}
	if neg {
		return -n
	}
	return n
}

func skipSpace(line []byte, pos int) int {
	for pos < len(line) && isSpace(line[pos]) {
		pos++
	}
	return pos
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}
