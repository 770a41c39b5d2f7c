// Package frontier defines the candidate container types shared by all
// search disciplines in github.com/ramandeep-singh77/glassbox.
package frontier

import (
	"github.com/ramandeep-singh77/glassbox/env"
)

// Kind names the discipline of a frontier container.
type Kind string

const (
	// KindQueue is first-in-first-out: breadth-first exploration.
	KindQueue Kind = "queue"
	// KindStack is last-in-first-out: depth-first exploration.
	KindStack Kind = "stack"
	// KindHeap is a min-heap on Item.Priority: cost-ordered exploration.
	KindHeap Kind = "heap"
)

// Item is one candidate awaiting expansion. Unweighted disciplines fill
// Depth and leave the cost fields zero; cost-aware disciplines fill G
// (and H/F when a heuristic is in play). Priority is the single number a
// heap orders by; queue and stack ignore it.
type Item struct {
	Key      string         `json:"key"`
	Coord    env.Coordinate `json:"coord"`
	Depth    int            `json:"depth"`
	G        float64        `json:"g"`
	H        float64        `json:"h"`
	F        float64        `json:"f"`
	Priority float64        `json:"priority"`
}

// Frontier is the uniform surface over all three disciplines. Exactly one
// Frontier lives per search run; the driver never cares which kind it got.
//
// Duplicate keys are permitted. Cost-aware searches rely on this: a better
// route pushes a fresh entry and the stale one is filtered when popped.
type Frontier interface {
	// Push adds a candidate.
	Push(it Item)
	// Pop removes and returns the next candidate per the discipline.
	// The second return is false when the frontier is empty.
	Pop() (Item, bool)
	// Len returns the number of waiting candidates.
	Len() int
	// Items returns a fresh copy of the waiting candidates in storage
	// order. Mutating the result never touches the frontier.
	Items() []Item
	// Kind names the discipline.
	Kind() Kind
}

// New constructs an empty frontier of the given kind. Unknown kinds fall
// back to a queue.
func New(k Kind) Frontier {
	switch k {
	case KindStack:
		return NewStack()
	case KindHeap:
		return NewHeap()
	default:
		return NewQueue()
	}
}
