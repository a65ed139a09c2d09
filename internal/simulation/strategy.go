package simulation

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Strategy decides what a player does between daily ticks
type Strategy string

const (
	// Hold never claims
	Hold Strategy = "hold"
	// CompoundWhenPossible reinvests claimed mead into breweries whenever
	// the unclaimed mead covers a brewery
	CompoundWhenPossible Strategy = "compound"
	// ClaimDaily claims and settles every day
	ClaimDaily Strategy = "claim-daily"
)

var (
	ErrInvalidStrategy = errors.New("invalid strategy")
	ErrInvalidDays     = errors.New("invalid day count")
)

// InvalidStrategyError reports a strategy name that matches no strategy
type InvalidStrategyError struct {
	Name string
}

func (e *InvalidStrategyError) Error() string {
	return fmt.Sprintf("invalid strategy %q (want one of %s)", e.Name, strings.Join(StrategyNames(), ", "))
}

// Is makes errors.Is(err, ErrInvalidStrategy) match
func (e *InvalidStrategyError) Is(target error) bool {
	return target == ErrInvalidStrategy
}

var strategyAliases = map[string]Strategy{
	"hold":                   Hold,
	"hodl":                   Hold,
	"compound":               CompoundWhenPossible,
	"compound when possible": CompoundWhenPossible,
	"compound-when-possible": CompoundWhenPossible,
	"compoundwhenpossible":   CompoundWhenPossible,
	"claim-daily":            ClaimDaily,
	"claim daily":            ClaimDaily,
	"claimdaily":             ClaimDaily,
}

// AllStrategies returns every strategy in comparison order
func AllStrategies() []Strategy {
	return []Strategy{Hold, CompoundWhenPossible, ClaimDaily}
}

// StrategyNames returns the canonical strategy names
func StrategyNames() []string {
	all := AllStrategies()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = string(s)
	}
	return names
}

// Aliases returns the accepted names of a strategy, sorted
func (s Strategy) Aliases() []string {
	var aliases []string
	for alias, target := range strategyAliases {
		if target == s && alias != string(s) {
			aliases = append(aliases, alias)
		}
	}
	slices.Sort(aliases)
	return aliases
}

// ParseStrategy resolves a strategy name or alias, ignoring case and
// surrounding whitespace
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if s, ok := strategyAliases[key]; ok {
		return s, nil
	}
	return "", &InvalidStrategyError{Name: name}
}

func (s Strategy) String() string {
	return string(s)
}

// Description explains the strategy in one line
func (s Strategy) Description() string {
	switch s {
	case Hold:
		return "never claim, let mead pile up"
	case CompoundWhenPossible:
		return "buy breweries with claimed mead whenever one is affordable"
	case ClaimDaily:
		return "claim and settle every day"
	default:
		return ""
	}
}
