package core

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// String keeps the token as is.
func String(s string) (any, error) { return s, nil }

// Int parses a base-10 integer of any size into a *big.Int.
func Int(s string) (any, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return n, nil
}

// Int64 parses a base-10 integer into an int64.
func Int64(s string) (any, error) {
	return strconv.ParseInt(s, 10, 64)
}

// Float parses a float64.
func Float(s string) (any, error) {
	return strconv.ParseFloat(s, 64)
}

// Bool parses the forms accepted by strconv.ParseBool.
func Bool(s string) (any, error) {
	return strconv.ParseBool(s)
}

// Truthy is true for any non-empty token, "0" and "false" included.
func Truthy(s string) (any, error) { return s != "", nil }

// Fields splits the token on white space.
func Fields(s string) (any, error) { return strings.Fields(s), nil }
