package agreement

import (
	"testing"
)

func TestStore_FirstWriteWins(t *testing.T) {
	s := NewInMemoryStore()

	if !s.PutIfAbsent("0->1", Attack) {
		t.Fatal("First write should be stored")
	}
	if s.PutIfAbsent("0->1", Retreat) {
		t.Error("Second write for the same path should be rejected")
	}

	got, ok := s.Get("0->1")
	if !ok || got != Attack {
		t.Errorf("Expected first value ATTACK preserved, got %v (ok=%v)", got, ok)
	}
}

func TestStore_GetMissing(t *testing.T) {
	s := NewInMemoryStore()
	if _, ok := s.Get("0"); ok {
		t.Error("Expected no value for an unknown path")
	}
	if s.Len() != 0 {
		t.Errorf("Expected empty store, got %d entries", s.Len())
	}
}

func TestStore_Snapshot(t *testing.T) {
	s := NewInMemoryStore()
	s.PutIfAbsent("0", Attack)
	s.PutIfAbsent("0->2", Retreat)

	snap := s.Snapshot()
	if len(snap) != 2 || snap["0"] != Attack || snap["0->2"] != Retreat {
		t.Errorf("Unexpected snapshot: %v", snap)
	}

	// Mutating the snapshot must not touch the store.
	snap["0"] = Retreat
	if got, _ := s.Get("0"); got != Attack {
		t.Error("Snapshot mutation leaked into the store")
	}
}

func TestPath_AppendCopies(t *testing.T) {
	root := Root(0)
	a := root.Append(1)
	b := root.Append(2)

	if a.Key() != "0->1" || b.Key() != "0->2" {
		t.Errorf("Expected independent paths, got %s and %s", a, b)
	}
	if root.Key() != "0" {
		t.Errorf("Root path mutated: %s", root)
	}
}

func TestPath_Contains(t *testing.T) {
	p := Path{0, 2, 3}
	if !p.Contains(2) {
		t.Error("Expected path to contain 2")
	}
	if p.Contains(1) {
		t.Error("Expected path to not contain 1")
	}
}

func TestOrder_Invert(t *testing.T) {
	if Attack.Invert() != Retreat || Retreat.Invert() != Attack {
		t.Error("Invert must swap ATTACK and RETREAT")
	}
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		input   string
		want    Order
		wantErr bool
	}{
		{"ATTACK", Attack, false},
		{"RETREAT", Retreat, false},
		{"attack", Retreat, true},
		{"", Retreat, true},
	}
	for _, tt := range tests {
		got, err := ParseOrder(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOrder(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseOrder(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestMajority(t *testing.T) {
	tests := []struct {
		name   string
		values []Order
		want   Order
	}{
		{"empty defaults to retreat", nil, Retreat},
		{"unanimous attack", []Order{Attack, Attack, Attack}, Attack},
		{"unanimous retreat", []Order{Retreat, Retreat}, Retreat},
		{"attack majority", []Order{Attack, Attack, Retreat}, Attack},
		{"retreat majority", []Order{Attack, Retreat, Retreat}, Retreat},
		{"tie resolves to retreat", []Order{Attack, Retreat}, Retreat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := majority(tt.values); got != tt.want {
				t.Errorf("majority(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}
