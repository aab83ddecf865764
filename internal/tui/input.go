package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jask/pokedex/internal/service"
)

const blanks = " \t\r\n"

// cleanInput strips surrounding spaces, tabs and carriage returns.
func cleanInput(s string) string {
	return strings.Trim(s, blanks)
}

// parseInt reads a base-10 integer. Anything left over after the number is
// rejected, so "12abc" is an error rather than 12.
func parseInt(s string) (int, error) {
	s = cleanInput(s)
	if s == "" {
		return 0, fmt.Errorf("%w: expected a number", service.ErrInvalidInput)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", service.ErrInvalidInput, s)
	}
	return n, nil
}
