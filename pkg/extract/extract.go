// Package extract turns raw logfile lines into records of numeric tokens.
//
// The extraction stage is a three-step funnel: an optional line filter
// (regex search, not full match), a tokenizer that pulls numeric literals
// out of each surviving line, and a scanner that drives both over an
// io.Reader and numbers the surviving lines.
package extract

import (
	"bufio"
	"io"
	"regexp"
	"strconv"

	"github.com/matzehuels/dataplot/pkg/errors"
)

// DefaultNumberPattern matches decimal and scientific numeric literals.
// It is the default for --num-regex.
const DefaultNumberPattern = `[-+]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][-+]?[0-9]+)?`

// maxLineSize caps the scanner's line buffer. Logfiles occasionally carry
// very long lines (stack traces, serialized payloads).
const maxLineSize = 1024 * 1024

// Filter decides which input lines take part in extraction.
// The zero pattern passes every line.
type Filter struct {
	re *regexp.Regexp
}

// NewFilter compiles pattern into a Filter. An empty pattern yields a
// pass-all filter. A pattern that does not compile is a usage error and
// aborts the invocation.
func NewFilter(pattern string) (*Filter, error) {
	if pattern == "" {
		return &Filter{}, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUsage, err, "invalid filter pattern %q", pattern)
	}
	return &Filter{re: re}, nil
}

// Match reports whether line passes the filter. Matching is a substring
// search anywhere in the line.
func (f *Filter) Match(line string) bool {
	return f.re == nil || f.re.MatchString(line)
}

// Tokenizer extracts numeric tokens from a line.
type Tokenizer struct {
	re *regexp.Regexp
}

// NewTokenizer compiles pattern into a Tokenizer. An empty pattern selects
// [DefaultNumberPattern].
func NewTokenizer(pattern string) (*Tokenizer, error) {
	if pattern == "" {
		pattern = DefaultNumberPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUsage, err, "invalid number pattern %q", pattern)
	}
	return &Tokenizer{re: re}, nil
}

// Tokens returns the numeric tokens found in line, left to right.
// Matches that do not parse as floats (possible with a custom pattern)
// are dropped.
func (t *Tokenizer) Tokens(line string) []float64 {
	matches := t.re.FindAllString(line, -1)
	if len(matches) == 0 {
		return nil
	}
	tokens := make([]float64, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		tokens = append(tokens, v)
	}
	return tokens
}

// Record is one line that survived the filter, with its ordinal position
// among surviving lines and the numeric tokens extracted from it.
type Record struct {
	// Ord is the 0-based position among lines that passed the filter.
	Ord    int
	Line   string
	Tokens []float64
}

// Scanner reads lines from an input, applies a filter, and tokenizes the
// survivors. Usage mirrors bufio.Scanner:
//
//	sc := extract.NewScanner(r, filter, tok)
//	for sc.Scan() {
//	    rec := sc.Record()
//	    ...
//	}
//	if err := sc.Err(); err != nil { ... }
type Scanner struct {
	s      *bufio.Scanner
	filter *Filter
	tok    *Tokenizer
	rec    Record
	next   int
}

// NewScanner creates a Scanner over r using the given filter and tokenizer.
func NewScanner(r io.Reader, f *Filter, t *Tokenizer) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Scanner{s: s, filter: f, tok: t}
}

// Scan advances to the next line that passes the filter.
// It returns false at end of input or on read error.
func (s *Scanner) Scan() bool {
	for s.s.Scan() {
		line := s.s.Text()
		if !s.filter.Match(line) {
			continue
		}
		s.rec = Record{Ord: s.next, Line: line, Tokens: s.tok.Tokens(line)}
		s.next++
		return true
	}
	return false
}

// Record returns the record produced by the last successful Scan.
func (s *Scanner) Record() Record {
	return s.rec
}

// Err returns the first error encountered while reading the input.
func (s *Scanner) Err() error {
	return s.s.Err()
}
