package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/vaultrun/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex < 0 {
				return
			}
			if !DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatal("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, ents[c.destroyIndex]) {
				t.Fatal("entity should not be alive after destruction")
			}
			if DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatal("DestroyEntity should return false the second time")
			}
		})
	}
}

func TestRecycledSlotInvalidatesOldHandle(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh == old {
		t.Fatal("expected a new generation for the recycled slot")
	}
	if Has(w, fresh, h.Kind()) {
		t.Fatal("expected recycled entity to start without components")
	}
	if _, ok := Get(w, old, h.Kind()); ok {
		t.Fatal("expected stale handle lookups to fail")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestComponentAddGetRemove(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()
	e := CreateEntity(w)

	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "add_and_get",
			run: func(t *testing.T) {
				if err := Add(w, e, ints.Kind(), intPtr(10)); err != nil {
					t.Fatal(err)
				}
				v, ok := Get(w, e, ints.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
		},
		{
			name: "get_returns_stored_pointer",
			run: func(t *testing.T) {
				v, _ := Get(w, e, ints.Kind())
				*v = 11
				again, _ := Get(w, e, ints.Kind())
				if *again != 11 {
					t.Fatalf("expected mutation visible, got %d", *again)
				}
			},
		},
		{
			name: "nil_value_rejected",
			run: func(t *testing.T) {
				if err := Add[string](w, e, strs.Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
					t.Fatalf("expected ErrNilComponent, got %v", err)
				}
			},
		},
		{
			name: "zero_kind_rejected",
			run: func(t *testing.T) {
				var kind component.ComponentKind[int]
				if err := Add(w, e, kind, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
					t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
				}
			},
		},
		{
			name: "remove",
			run: func(t *testing.T) {
				if !Remove(w, e, ints.Kind()) {
					t.Fatal("expected remove to report true")
				}
				if Has(w, e, ints.Kind()) {
					t.Fatal("expected component gone")
				}
				if Remove(w, e, ints.Kind()) {
					t.Fatal("expected second remove to report false")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestForEachIntersections(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()
	kc := component.NewComponentKind[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	adds := []struct {
		e    Entity
		kind component.ComponentKind[int]
		v    int
	}{
		{e1, ka, 1},
		{e2, ka, 2}, {e2, kb, 3}, {e2, kc, 4},
		{e3, ka, 5}, {e3, kb, 6},
	}
	for _, a := range adds {
		if err := Add(w, a.e, a.kind, intPtr(a.v)); err != nil {
			t.Fatal(err)
		}
	}

	var one, two, three []Entity
	ForEach(w, ka, func(e Entity, _ *int) { one = append(one, e) })
	ForEach2(w, ka, kb, func(e Entity, _ *int, _ *int) { two = append(two, e) })
	ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { three = append(three, e) })

	if len(one) != 3 {
		t.Fatalf("expected 3 entities with a, got %v", one)
	}
	if len(two) != 2 {
		t.Fatalf("expected 2 entities with a and b, got %v", two)
	}
	if len(three) != 1 || three[0] != e2 {
		t.Fatalf("expected only e2 with a, b and c, got %v", three)
	}

	DestroyEntity(w, e2)
	three = three[:0]
	ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { three = append(three, e) })
	if len(three) != 0 {
		t.Fatalf("expected destroyed entity skipped, got %v", three)
	}

	if first, ok := w.First(ka, kb); !ok || first != e3 {
		t.Fatalf("expected First to find e3, got %v ok=%v", first, ok)
	}
}
