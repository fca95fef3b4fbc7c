package kernel

import "slices"

// TransitionTable maps a status to the statuses directly reachable from it.
// A status with no entry, or an empty entry, is terminal. Tables are built once at
// package init and never mutated.
type TransitionTable[S comparable] map[S][]S

// Allowed returns a copy of the statuses reachable from current.
func (t TransitionTable[S]) Allowed(current S) []S {
	return slices.Clone(t[current])
}

func (t TransitionTable[S]) Can(current, next S) bool {
	return slices.Contains(t[current], next)
}

func (t TransitionTable[S]) IsTerminal(current S) bool {
	return len(t[current]) == 0
}

// Names renders the allowed set of current with name, for error diagnostics.
func (t TransitionTable[S]) Names(current S, name func(S) string) []string {
	next := t[current]
	out := make([]string, 0, len(next))
	for _, s := range next {
		out = append(out, name(s))
	}
	return out
}
