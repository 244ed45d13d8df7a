package registration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestRegistryMountGetUnmount(t *testing.T) {
	reg := NewRegistry(time.Minute, zerolog.Nop())
	inst := reg.Mount(&fakeBackend{}, EditPayload{})
	if inst.ID == "" {
		t.Fatal("expected instance id")
	}
	got, ok := reg.Get(inst.ID)
	if !ok || got != inst {
		t.Fatal("expected mounted instance")
	}

	reg.Unmount(inst.ID)
	if _, ok := reg.Get(inst.ID); ok {
		t.Fatal("expected instance removed")
	}
	if err := inst.Form.Reset(); !errors.Is(err, ErrUnmounted) {
		t.Fatalf("expected unmounted form, got %v", err)
	}
}

func TestRegistryInstancesAreIndependent(t *testing.T) {
	reg := NewRegistry(time.Minute, zerolog.Nop())
	a := reg.Mount(&fakeBackend{}, EditPayload{})
	b := reg.Mount(&fakeBackend{}, EditPayload{})
	_ = a.Form.UpdateField(FieldName, "Alice", KindValue)
	if b.Form.Snapshot().Draft.Name != "" {
		t.Fatal("drafts must not be shared between instances")
	}
	a.Form.Cancel()
	if nav, _ := b.Outbox.Drain(); nav != "" {
		t.Fatal("outboxes must not be shared between instances")
	}
}

func TestRegistrySweepDropsIdleInstances(t *testing.T) {
	reg := NewRegistry(time.Minute, zerolog.Nop())
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	reg.now = func() time.Time { return now }

	idle := reg.Mount(&fakeBackend{}, EditPayload{})
	now = now.Add(45 * time.Second)
	active := reg.Mount(&fakeBackend{}, EditPayload{})
	now = now.Add(30 * time.Second)

	if n := reg.Sweep(); n != 1 {
		t.Fatalf("expected one expired instance, got %d", n)
	}
	if _, ok := reg.Get(idle.ID); ok {
		t.Fatal("expected idle instance swept")
	}
	if _, ok := reg.Get(active.ID); !ok {
		t.Fatal("expected active instance kept")
	}
}

func TestRegistryRunStopsOnCancel(t *testing.T) {
	reg := NewRegistry(time.Minute, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		reg.Run(ctx, 5*time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
