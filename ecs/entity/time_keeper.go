package entity

import (
	"fmt"

	"github.com/milk9111/vaultrun/ecs"
	"github.com/milk9111/vaultrun/ecs/component"
)

// NewTimeKeeper creates the entity holding the global time scale. A world
// needs exactly one; an existing keeper is returned as is.
func NewTimeKeeper(w *ecs.World) (ecs.Entity, error) {
	if w == nil {
		return 0, &ConfigurationError{Field: "world", Reason: "is nil"}
	}
	if e, ok := w.First(component.TimeKeeperTagComponent.Kind()); ok {
		return e, nil
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TimeKeeperTagComponent.Kind(), &component.TimeKeeperTag{}); err != nil {
		return 0, fmt.Errorf("time keeper: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TimeScaleComponent.Kind(), &component.TimeScale{Scale: 1}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("time keeper: add time scale: %w", err)
	}
	return e, nil
}
