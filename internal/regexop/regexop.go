// Package regexop implements the POSIX-ERE-equivalent regex operations
// backing the `a`, `/`, and `%` opcodes and the split form of `:`
// (§4.2, §4.6c), using the standard library's RE2 engine. The split form
// of `-` splits on whitespace and does not use this package.
package regexop

import "regexp"

// Engine is the external regex adapter an Interp depends on. It is
// implemented by *RE2 and isolated behind this interface so an
// alternative engine could be substituted without touching the
// interpreter.
type Engine interface {
	FindAll(pattern, s string) ([]string, error)
	Find(pattern, s string) (string, bool, error)
	ReplaceAll(pattern, repl, s string) (string, error)
	Split(pattern, s string) ([]string, error)
}

// RE2 is the default Engine, backed by regexp.
type RE2 struct {
	cache map[string]*regexp.Regexp
}

// NewRE2 returns a ready-to-use RE2 engine with a compiled-pattern
// cache.
func NewRE2() *RE2 { return &RE2{cache: make(map[string]*regexp.Regexp)} }

func (e *RE2) compile(pattern string) (*regexp.Regexp, error) {
	if re, ok := e.cache[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	e.cache[pattern] = re
	return re, nil
}

// FindAll returns every non-overlapping match of pattern in s, in source
// order.
func (e *RE2) FindAll(pattern, s string) ([]string, error) {
	re, err := e.compile(pattern)
	if err != nil {
		return nil, err
	}
	return re.FindAllString(s, -1), nil
}

// Find returns the first match of pattern in s, if any.
func (e *RE2) Find(pattern, s string) (string, bool, error) {
	re, err := e.compile(pattern)
	if err != nil {
		return "", false, err
	}
	m := re.FindString(s)
	return m, re.MatchString(s), nil
}

// ReplaceAll substitutes every match of pattern in s with repl.
func (e *RE2) ReplaceAll(pattern, repl, s string) (string, error) {
	re, err := e.compile(pattern)
	if err != nil {
		return "", err
	}
	return re.ReplaceAllString(s, repl), nil
}

// Split splits s on every match of pattern.
func (e *RE2) Split(pattern, s string) ([]string, error) {
	re, err := e.compile(pattern)
	if err != nil {
		return nil, err
	}
	return re.Split(s, -1), nil
}
