// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"strings"
)

// Kind selects an InverseLaplacian strategy.
type Kind int

const (
	// Full forms the dense inverse once.
	Full Kind = iota
	// LU factorizes the banded reduced Laplacian once.
	LU
	// CG runs preconditioned conjugate gradient per request.
	CG
)

var kindNames = [...]string{Full: "full", LU: "lu", CG: "cg"}

// String returns the lowercase name accepted by ParseKind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Valid reports whether k names a known strategy.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(kindNames)
}

// ParseKind maps "full", "lu" or "cg" (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("%w: %q (want full, lu or cg)", ErrUnknownSolver, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSolver, int(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v

	return nil
}
