package state

import (
	"reflect"
	"testing"
)

func TestStore_StartsEmpty(t *testing.T) {
	s := New()
	if got := s.Input.Get(); got != "" {
		t.Fatalf("Input.Get() = %q, want empty", got)
	}
	if got := s.Items.Snapshot(); len(got) != 0 {
		t.Fatalf("Items.Snapshot() = %v, want empty", got)
	}
}

func TestItemList_Append(t *testing.T) {
	values := []string{"buy milk", "", "x", "x", "\x00\ttab", "ünïcödé"}
	s := New()
	for _, v := range values {
		before := s.Items.Len()
		s.Items.Append(v)
		snap := s.Items.Snapshot()
		if len(snap) != before+1 {
			t.Fatalf("Append(%q): len = %d, want %d", v, len(snap), before+1)
		}
		if snap[len(snap)-1] != v {
			t.Fatalf("Append(%q): last = %q", v, snap[len(snap)-1])
		}
	}
}

func TestItemList_Remove(t *testing.T) {
	tests := []struct {
		name    string
		items   []string
		remove  string
		want    []string
		removed int
	}{
		{name: "middle", items: []string{"a", "b", "c"}, remove: "b", want: []string{"a", "c"}, removed: 1},
		{name: "all duplicates", items: []string{"x", "x"}, remove: "x", want: []string{}, removed: 2},
		{name: "scattered duplicates", items: []string{"x", "a", "x", "b", "x"}, remove: "x", want: []string{"a", "b"}, removed: 3},
		{name: "absent", items: []string{"a", "b"}, remove: "z", want: []string{"a", "b"}, removed: 0},
		{name: "empty list", items: nil, remove: "a", want: []string{}, removed: 0},
		{name: "empty string", items: []string{"", "a", ""}, remove: "", want: []string{"a"}, removed: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			for _, it := range tt.items {
				s.Items.Append(it)
			}
			if n := s.Items.Remove(tt.remove); n != tt.removed {
				t.Errorf("Remove(%q) = %d, want %d", tt.remove, n, tt.removed)
			}
			if got := s.Items.Snapshot(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Snapshot() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestItemList_RemoveAt(t *testing.T) {
	s := New()
	for _, it := range []string{"x", "y", "x"} {
		s.Items.Append(it)
	}
	if s.Items.RemoveAt(3) || s.Items.RemoveAt(-1) {
		t.Fatal("RemoveAt out of range reported true")
	}
	if !s.Items.RemoveAt(2) {
		t.Fatal("RemoveAt(2) = false")
	}
	if got, want := s.Items.Snapshot(), []string{"x", "y"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Snapshot() = %q, want %q", got, want)
	}
}

func TestItemList_SnapshotIsCopy(t *testing.T) {
	s := New()
	s.Items.Append("a")
	snap := s.Items.Snapshot()
	snap[0] = "mutated"
	if v, _ := s.Items.At(0); v != "a" {
		t.Fatalf("At(0) = %q after mutating snapshot", v)
	}
}

func TestStore_SubscribeNotifiesOnEveryMutation(t *testing.T) {
	s := New()
	calls := 0
	s.Subscribe(func() { calls++ })

	s.Input.Set("a")
	s.Items.Append("a")
	s.Items.Remove("a")
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestStore_UpdateBatchesNotifications(t *testing.T) {
	s := New()
	s.Input.Set("v")

	var seen [][2]any
	s.Subscribe(func() {
		seen = append(seen, [2]any{s.Input.Get(), s.Items.Snapshot()})
	})

	s.Update(func() {
		s.Items.Append(s.Input.Get())
		s.Update(func() { s.Input.Set("") })
	})

	if len(seen) != 1 {
		t.Fatalf("notifications = %d, want 1", len(seen))
	}
	if seen[0][0] != "" || !reflect.DeepEqual(seen[0][1], []string{"v"}) {
		t.Fatalf("observer saw %v, want input cleared and item appended", seen[0])
	}
}

func TestStore_UpdateWithoutMutationIsSilent(t *testing.T) {
	s := New()
	calls := 0
	s.Subscribe(func() { calls++ })
	s.Update(func() {})
	if calls != 0 {
		t.Fatalf("calls = %d, want 0", calls)
	}
}

func TestStore_CancelSubscription(t *testing.T) {
	s := New()
	a, b := 0, 0
	cancelA := s.Subscribe(func() { a++ })
	s.Subscribe(func() { b++ })

	s.Input.Set("1")
	cancelA()
	s.Input.Set("2")

	if a != 1 || b != 2 {
		t.Fatalf("a = %d, b = %d, want 1, 2", a, b)
	}
}

func TestInputField_Submit(t *testing.T) {
	s := New()
	var got []string
	cancel := s.Input.OnSubmit(func() { got = append(got, s.Input.Get()) })

	s.Input.Set("first")
	s.Input.Submit()
	cancel()
	s.Input.Set("second")
	s.Input.Submit()

	if !reflect.DeepEqual(got, []string{"first"}) {
		t.Fatalf("submitted = %q, want [first]", got)
	}
}

func TestZeroValues(t *testing.T) {
	var f InputField
	f.Set("x")
	submitted := 0
	f.OnSubmit(func() { submitted++ })
	f.Submit()
	if f.Get() != "x" || submitted != 1 {
		t.Fatalf("zero InputField: Get() = %q, submitted = %d", f.Get(), submitted)
	}

	var l ItemList
	l.Append("a")
	l.Append("a")
	if n := l.Remove("a"); n != 2 || l.Len() != 0 {
		t.Fatalf("zero ItemList: Remove = %d, Len = %d", n, l.Len())
	}
	l.Append("b")
	if !l.RemoveAt(0) {
		t.Fatal("zero ItemList: RemoveAt(0) = false")
	}
}
