package hakoniwa

import "testing"

func TestResources(t *testing.T) {
	type tickCount struct{ N int }
	type worldName struct{ S string }

	t.Run("Put and Get", func(t *testing.T) {
		r := &Resources{}
		PutResource(r, tickCount{N: 7})
		got, ok := GetResource[tickCount](r)
		if !ok || got.N != 7 {
			t.Errorf("expected (7, true), got (%v, %v)", got, ok)
		}
	})

	t.Run("Get absent", func(t *testing.T) {
		r := &Resources{}
		got, ok := GetResource[tickCount](r)
		if ok || got.N != 0 {
			t.Errorf("expected zero value and false, got (%v, %v)", got, ok)
		}
	})

	t.Run("Has", func(t *testing.T) {
		r := &Resources{}
		PutResource(r, tickCount{})
		if !HasResource[tickCount](r) {
			t.Error("expected true")
		}
		if HasResource[worldName](r) {
			t.Error("expected false")
		}
	})

	t.Run("Put replaces", func(t *testing.T) {
		r := &Resources{}
		PutResource(r, tickCount{N: 1})
		PutResource(r, tickCount{N: 2})
		got, _ := GetResource[tickCount](r)
		if got.N != 2 {
			t.Errorf("expected 2, got %d", got.N)
		}
		if r.Len() != 1 {
			t.Errorf("expected one resource, got %d", r.Len())
		}
	})

	t.Run("Distinct types", func(t *testing.T) {
		r := &Resources{}
		PutResource(r, tickCount{N: 1})
		PutResource(r, worldName{S: "a"})
		if r.Len() != 2 {
			t.Errorf("expected 2 resources, got %d", r.Len())
		}
	})

	t.Run("Remove", func(t *testing.T) {
		r := &Resources{}
		PutResource(r, tickCount{N: 1})
		RemoveResource[tickCount](r)
		if HasResource[tickCount](r) {
			t.Error("expected false after remove")
		}
		RemoveResource[tickCount](r) // absent, no-op
	})

	t.Run("Pointer resource mutates in place", func(t *testing.T) {
		r := &Resources{}
		PutResource(r, &tickCount{N: 1})
		p, _ := GetResource[*tickCount](r)
		p.N = 5
		p2, _ := GetResource[*tickCount](r)
		if p2.N != 5 {
			t.Errorf("expected 5, got %d", p2.N)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		r := &Resources{}
		PutResource(r, tickCount{})
		PutResource(r, worldName{})
		r.Clear()
		if r.Len() != 0 {
			t.Errorf("expected empty, got %d", r.Len())
		}
	})
}

func TestWorldResources(t *testing.T) {
	type gravity struct{ G float64 }
	w := NewWorld(0)
	PutResource(w.Resources(), gravity{G: 9.81})
	got, ok := GetResource[gravity](w.Resources())
	if !ok || got.G != 9.81 {
		t.Errorf("expected (9.81, true), got (%v, %v)", got, ok)
	}
}
