// Package lsystem implements deterministic, context-free L-systems over the
// turtle alphabet used by the G-code compiler.
package lsystem

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/louiss0/l2g/custom_errors"
)

// Symbol is a single character of the L-system alphabet.
type Symbol string

// The full alphabet. F and G both draw while moving forward, + and - turn
// the turtle, [ and ] push and pop turtle state, A, B and X are rewriting
// placeholders that draw nothing.
const (
	FORWARD       Symbol = "F"
	FORWARD_ALT   Symbol = "G"
	TURN_LEFT     Symbol = "+"
	TURN_RIGHT    Symbol = "-"
	PUSH_STATE    Symbol = "["
	POP_STATE     Symbol = "]"
	PLACEHOLDER_A Symbol = "A"
	PLACEHOLDER_B Symbol = "B"
	PLACEHOLDER_X Symbol = "X"
)

// Alphabet lists every symbol accepted by ParseSymbols and ParseRule.
var Alphabet = [9]Symbol{
	FORWARD,
	FORWARD_ALT,
	TURN_LEFT,
	TURN_RIGHT,
	PUSH_STATE,
	POP_STATE,
	PLACEHOLDER_A,
	PLACEHOLDER_B,
	PLACEHOLDER_X,
}

// Rules maps a symbol to the sequence that replaces it on each iteration.
type Rules map[Symbol][]Symbol

// System is a deterministic, context-free L-system.
type System struct {
	axiom []Symbol
	rules Rules
}

// NewSystem validates the axiom and every rule body against the alphabet
// and returns the resulting system.
func NewSystem(axiom []Symbol, rules Rules) (System, error) {
	if len(axiom) == 0 {
		return System{}, custom_errors.CreateInvalidArgumentErrorWithMessage("an L-system needs a non-empty axiom")
	}

	if err := validateSymbols(axiom); err != nil {
		return System{}, err
	}

	for head, body := range rules {
		if !lo.Contains(Alphabet[:], head) {
			return System{}, custom_errors.CreateInvalidSymbolError(string(head))
		}

		if len(body) == 0 {
			return System{}, custom_errors.CreateInvalidArgumentErrorWithMessage(
				fmt.Sprintf("the rule for %s has an empty replacement", head),
			)
		}

		if err := validateSymbols(body); err != nil {
			return System{}, err
		}
	}

	return System{axiom: axiom, rules: rules}, nil
}

// Axiom returns a copy of the system's axiom.
func (s System) Axiom() []Symbol {
	return append([]Symbol(nil), s.axiom...)
}

// Expand rewrites the axiom n times. Each iteration is a single parallel
// pass: every symbol with a rule is replaced by the rule's body, symbols
// without a rule are kept as-is. n = 0 returns the axiom itself.
func (s System) Expand(n int) []Symbol {
	curr := s.axiom
	for i := 0; i < n; i++ {
		curr = s.next(curr)
	}
	return curr
}

func (s System) next(curr []Symbol) []Symbol {
	// Most rules grow the string, so start with room to spare.
	out := make([]Symbol, 0, len(curr)*2)
	for _, sym := range curr {
		if body, ok := s.rules[sym]; ok {
			out = append(out, body...)
			continue
		}
		out = append(out, sym)
	}
	return out
}

func validateSymbols(symbols []Symbol) error {
	for _, sym := range symbols {
		if !lo.Contains(Alphabet[:], sym) {
			return custom_errors.CreateInvalidSymbolError(string(sym))
		}
	}
	return nil
}

// ParseSymbols splits a compact symbol string like "F-G-G" into symbols,
// rejecting any character outside the alphabet. Whitespace is not allowed.
func ParseSymbols(value string) ([]Symbol, error) {
	if value == "" {
		return nil, custom_errors.CreateInvalidArgumentErrorWithMessage("a symbol string cannot be empty")
	}

	symbols := make([]Symbol, 0, len(value))
	for _, r := range value {
		sym := Symbol(r)
		if !lo.Contains(Alphabet[:], sym) {
			return nil, custom_errors.CreateInvalidSymbolError(string(r))
		}
		symbols = append(symbols, sym)
	}
	return symbols, nil
}

// ParseRule parses a production rule written as "HEAD=BODY", for example
// "F=F+F--F+F". The head must be a single alphabet symbol and the body a
// non-empty symbol string.
func ParseRule(value string) (Symbol, []Symbol, error) {
	head, body, found := strings.Cut(value, "=")
	if !found {
		return "", nil, custom_errors.CreateInvalidArgumentErrorWithMessage(
			fmt.Sprintf("a rule must be written as HEAD=BODY, got %q", value),
		)
	}

	headSymbols, err := ParseSymbols(head)
	if err != nil {
		return "", nil, err
	}

	if len(headSymbols) != 1 {
		return "", nil, custom_errors.CreateInvalidArgumentErrorWithMessage(
			fmt.Sprintf("a rule head must be a single symbol, got %q", head),
		)
	}

	bodySymbols, err := ParseSymbols(body)
	if err != nil {
		return "", nil, err
	}

	return headSymbols[0], bodySymbols, nil
}

// ParseRules parses a set of "HEAD=BODY" rule strings. A duplicate head is
// an error because the system is deterministic.
func ParseRules(values []string) (Rules, error) {
	rules := make(Rules, len(values))
	for _, value := range values {
		head, body, err := ParseRule(value)
		if err != nil {
			return nil, err
		}

		if _, exists := rules[head]; exists {
			return nil, custom_errors.CreateInvalidArgumentErrorWithMessage(
				fmt.Sprintf("there is more than one rule for %s", head),
			)
		}

		rules[head] = body
	}
	return rules, nil
}

// String joins symbols back into their compact form.
func String(symbols []Symbol) string {
	var sb strings.Builder
	sb.Grow(len(symbols))
	for _, sym := range symbols {
		sb.WriteString(string(sym))
	}
	return sb.String()
}
