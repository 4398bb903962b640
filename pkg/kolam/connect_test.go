package kolam

import "testing"

func TestConnect(t *testing.T) {
	line := []Dot{{0, 0}, {1, 0}, {2, 0}, {4, 0}}

	tests := []struct {
		name string
		dots []Dot
		rule Rule
		want int
	}{
		{"max distance 1", line, MaxDistance(1), 2},
		{"max distance 2", line, MaxDistance(2), 4},
		{"center linked", line, CenterLinked(Dot{0, 0}, 2), 2},
		{"center not in set", line, CenterLinked(Dot{3, 0}, 1), 2},
		{"ring of four", line, RingCycle(), 4},
		{"ring of two", line[:2], RingCycle(), 1},
		{"ring of one", line[:1], RingCycle(), 0},
		{"empty", nil, MaxDistance(10), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Connect(tt.dots, tt.rule)
			if len(got) != tt.want {
				t.Errorf("Connect() returned %d connections, want %d: %v", len(got), tt.want, got)
			}
			for _, c := range got {
				if c.A == c.B {
					t.Errorf("self connection %v", c)
				}
			}
		})
	}
}

func TestConnectOrder(t *testing.T) {
	dots := []Dot{{2, 2}, {0, 0}, {1, 1}}
	got := Connect(dots, MaxDistance(1.5))
	want := []Connection{
		{A: Dot{2, 2}, B: Dot{1, 1}},
		{A: Dot{0, 0}, B: Dot{1, 1}},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("connection %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestConnectSkipsCoincidentDots(t *testing.T) {
	got := Connect([]Dot{{1, 1}, {1, 1}}, MaxDistance(5))
	if len(got) != 0 {
		t.Errorf("got %v, want no connections", got)
	}
}

func TestAutoConnect(t *testing.T) {
	// Center of a 7-grid is (3,3).
	dots := []Dot{{3, 3}, {4, 3}, {5, 4}, {6, 6}, {0, 3}}

	tests := []struct {
		hint Archetype
		want int
	}{
		// (4,3) d=1, (5,4) d=2.24, (0,3) d=3 from center; (6,6) is too far.
		{Flower, 3},
		{Traditional, 3},
		// (3,3)-(4,3) and (4,3)-(5,4); nothing else is within 2.
		{Geometric, 2},
		{Diamond, 2},
		{Spiral, 2},
		{"unknown", 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.hint), func(t *testing.T) {
			got := AutoConnect(dots, 7, tt.hint)
			if len(got) != tt.want {
				t.Errorf("AutoConnect(%s) = %v, want %d connections", tt.hint, got, tt.want)
			}
		})
	}
}

func TestConnectionEqual(t *testing.T) {
	a := Connection{A: Dot{0, 0}, B: Dot{1, 2}}
	if !a.Equal(Connection{A: Dot{1, 2}, B: Dot{0, 0}}) {
		t.Error("reversed connection should be equal")
	}
	if a.Equal(Connection{A: Dot{0, 0}, B: Dot{2, 1}}) {
		t.Error("different connection reported equal")
	}
}

func TestParseArchetype(t *testing.T) {
	tests := []struct {
		in   string
		want Archetype
		ok   bool
	}{
		{"flower", Flower, true},
		{"  Lotus ", Lotus, true},
		{"TRADITIONAL", Traditional, true},
		{"blorp", "blorp", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseArchetype(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseArchetype(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseSymmetry(t *testing.T) {
	if s, ok := ParseSymmetry("Radial"); !ok || s != Radial {
		t.Errorf("ParseSymmetry(Radial) = %q, %v", s, ok)
	}
	if _, ok := ParseSymmetry("chiral"); ok {
		t.Error("ParseSymmetry(chiral) should fail")
	}
}

func TestNormalize(t *testing.T) {
	got := Request{Archetype: "x", Complexity: -3, ElementCount: 1, GridSize: 1}.Normalize()
	want := Request{Archetype: "x", Complexity: MinComplexity, ElementCount: MinElementCount, GridSize: MinGridSize}
	if got != want {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}
}

func TestArchetypeElementAndNote(t *testing.T) {
	for _, a := range Archetypes() {
		if a.Element() == "" || a.Note() == "" {
			t.Errorf("%s: element %q, note %q", a, a.Element(), a.Note())
		}
	}
	if got := Archetype("blorp").Element(); got != "elements" {
		t.Errorf("unknown archetype element = %q, want elements", got)
	}
}
