package table

import (
	"fmt"
	"strings"
)

// Kind is one of the three card kinds.
type Kind int

const (
	Stone Kind = iota
	Scissor
	Paper
)

// Kinds lists every kind in canonical order.
var Kinds = [...]Kind{Stone, Scissor, Paper}

var kindNames = [...]string{"stone", "scissor", "paper"}

func (k Kind) Valid() bool {
	return k >= Stone && k <= Paper
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Beats returns the kind that k defeats.
func (k Kind) Beats() Kind {
	switch k {
	case Stone:
		return Scissor
	case Scissor:
		return Paper
	default:
		return Stone
	}
}

// BeatenBy returns the kind that defeats k.
func (k Kind) BeatenBy() Kind {
	switch k {
	case Stone:
		return Paper
	case Scissor:
		return Stone
	default:
		return Scissor
	}
}

// Compare returns 1 when a beats b, -1 when b beats a and 0 on a tie.
func Compare(a, b Kind) int {
	switch {
	case a == b:
		return 0
	case a.Beats() == b:
		return 1
	default:
		return -1
	}
}

// ParseKind accepts a kind name, case-insensitive. Plural forms are tolerated.
func ParseKind(s string) (Kind, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	switch name {
	case "stone", "rock":
		return Stone, nil
	case "scissor":
		return Scissor, nil
	case "paper":
		return Paper, nil
	}
	return 0, fmt.Errorf("unknown card kind %q", s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid card kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
