// Package audit defines the state-change tuple emitted by every successful
// workflow transition. The surrounding system may log or persist it; the
// workflow core only guarantees it is derivable.
package audit

import "time"

// StateChange records one entity transition performed by one actor.
type StateChange struct {
	EntityType string    `json:"entity_type"`
	EntityID   uint      `json:"entity_id"`
	FromState  string    `json:"from_state"`
	ToState    string    `json:"to_state"`
	ActorID    uint      `json:"actor_id"`
	At         time.Time `json:"at"`
}

// NewStateChange builds the audit tuple for a completed transition.
func NewStateChange(entityType string, entityID uint, from, to string, actorID uint) StateChange {
	return StateChange{
		EntityType: entityType,
		EntityID:   entityID,
		FromState:  from,
		ToState:    to,
		ActorID:    actorID,
		At:         time.Now(),
	}
}
