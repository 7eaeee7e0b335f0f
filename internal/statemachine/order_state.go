package statemachine

import (
	"errors"

	"chefbazaar_backend/internal/models"
)

// Transition defines a legal order status change.
type Transition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// validTransitions is the authoritative state machine definition:
// pending → accepted | cancelled, accepted → delivered.
// cancelled and delivered are terminal. The transition authority (the chef
// whose chefId matches the order) is checked by the order service, not here.
var validTransitions = []Transition{
	{From: models.OrderStatusPending, To: models.OrderStatusAccepted},
	{From: models.OrderStatusPending, To: models.OrderStatusCancelled},
	{From: models.OrderStatusAccepted, To: models.OrderStatusDelivered},
}

type transitionKey struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// Lookup map for O(1) validation.
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all legal next states from a given state.
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// IsTerminal reports whether no transition leaves the given state.
func IsTerminal(status models.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

// ValidStatus reports whether the value is a known order status.
func ValidStatus(status models.OrderStatus) bool {
	switch status {
	case models.OrderStatusPending, models.OrderStatusAccepted,
		models.OrderStatusCancelled, models.OrderStatusDelivered:
		return true
	}
	return false
}

// CanTransition checks whether moving from one state to another is legal.
func CanTransition(from, to models.OrderStatus) error {
	if transitionMap[transitionKey{From: from, To: to}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed. Valid transitions from " + string(from) +
			" are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// AllTransitions returns the full state machine for documentation.
func AllTransitions() []Transition {
	return validTransitions
}
