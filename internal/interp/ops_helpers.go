package interp

import (
	"math"
	"strings"
)

const (
	mathPi = math.Pi
	mathE  = math.E
)

func mathPow(base, exp float64) float64 { return math.Pow(base, exp) }

func splitWhitespace(s string) []string { return strings.Fields(s) }

func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s
}
