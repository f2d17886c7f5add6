package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/vaultrun/ecs"
	"github.com/milk9111/vaultrun/ecs/component"
)

func TestSensorRays(t *testing.T) {
	tuning := component.DefaultMovement()
	h := newHarness(t, tuning)
	h.probe.vault = true
	h.probe.vaultHeight = 0.75
	h.step()

	down := h.probe.rays[component.LayerGround]
	if !vecNear(down.origin, h.body.pos, 1e-9) || !vecNear(down.dir, mgl64.Vec3{0, -1, 0}, 1e-9) {
		t.Fatalf("unexpected ground ray %+v", down)
	}
	if want := tuning.PlayerHeight*0.5 + 0.1; down.distance != want {
		t.Fatalf("expected ground ray length %v, got %v", want, down.distance)
	}

	wall := h.probe.rays[component.LayerWall]
	if !vecNear(wall.dir, mgl64.Vec3{0, 0, 1}, 1e-9) || wall.distance != tuning.WallCheckDistance {
		t.Fatalf("unexpected wall ray %+v", wall)
	}

	vault := h.probe.rays[component.LayerAll&^component.LayerPlayer]
	if !vecNear(vault.origin, h.body.pos.Add(mgl64.Vec3{0, 0.5, 0}), 1e-9) || vault.distance != tuning.VaultRange {
		t.Fatalf("unexpected vault ray %+v", vault)
	}

	contacts, _ := ecs.Get(h.w, h.player, component.ContactsComponent.Kind())
	if !contacts.Grounded || !contacts.Landed || contacts.TouchingWall {
		t.Fatalf("unexpected contacts %+v", contacts)
	}
	if !contacts.VaultHit || contacts.VaultHeight != 0.75 {
		t.Fatalf("expected vault obstacle at 0.75, got %+v", contacts)
	}
}

func TestSensorLandedEdge(t *testing.T) {
	h := newHarness(t, component.DefaultMovement())
	contacts, _ := ecs.Get(h.w, h.player, component.ContactsComponent.Kind())

	steps := []struct {
		ground bool
		landed bool
	}{
		{ground: true, landed: true},
		{ground: true, landed: false},
		{ground: false, landed: false},
		{ground: false, landed: false},
		{ground: true, landed: true},
	}
	for i, s := range steps {
		h.probe.ground = s.ground
		h.step()
		if contacts.Grounded != s.ground || contacts.Landed != s.landed {
			t.Fatalf("step %d: expected grounded=%v landed=%v, got %+v", i, s.ground, s.landed, contacts)
		}
	}
}

func TestSensorMissIsNotAnError(t *testing.T) {
	h := newHarness(t, component.DefaultMovement())
	h.probe.ground = false
	h.step()

	contacts, _ := ecs.Get(h.w, h.player, component.ContactsComponent.Kind())
	if contacts.Grounded || contacts.TouchingWall || contacts.VaultHit {
		t.Fatalf("expected every probe to miss, got %+v", contacts)
	}
}
