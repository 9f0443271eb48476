package assign

import (
	"testing"
)

func TestCleanNames(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{
			name: "trims and drops empties",
			raw:  []string{" Amy ", "", "Bo", "   ", "Cara\n"},
			want: []string{"Amy", "Bo", "Cara"},
		},
		{
			name: "dedup preserves first-seen order",
			raw:  []string{"Cara", "Amy", "Cara", "Bo", "Amy"},
			want: []string{"Cara", "Amy", "Bo"},
		},
		{
			name: "dedup is case-sensitive",
			raw:  []string{"Sam", "Sam ", "sam"},
			want: []string{"Sam", "sam"},
		},
		{
			name: "empty input",
			raw:  []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanNames(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("CleanNames(%v) = %v, want %v", tt.raw, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("CleanNames(%v)[%d] = %q, want %q", tt.raw, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGenerateIsDerangement(t *testing.T) {
	groups := [][]string{
		{"Amy", "Bo"},
		{"Amy", "Bo", "Cara"},
		{"Amy", "Bo", "Cara", "Dan", "Eve"},
		manyNames(50),
	}

	for _, names := range groups {
		assignments, err := Generate(names)
		if err != nil {
			t.Fatalf("Generate(%d names) failed: %v", len(names), err)
		}

		if len(assignments) != len(names) {
			t.Fatalf("got %d assignments, want %d", len(assignments), len(names))
		}

		targets := make(map[string]int, len(names))
		for _, name := range names {
			assigned, ok := assignments[name]
			if !ok {
				t.Fatalf("no assignment for %q", name)
			}
			if assigned == name {
				t.Errorf("%q is assigned to themselves", name)
			}
			targets[assigned]++
		}

		// Every participant must be a target exactly once.
		for _, name := range names {
			if targets[name] != 1 {
				t.Errorf("%q appears as target %d times, want 1", name, targets[name])
			}
		}
	}
}

func TestGenerateTwoAlwaysSwap(t *testing.T) {
	// N = 2 has exactly one derangement: the mutual swap.
	for i := 0; i < 100; i++ {
		assignments, err := Generate([]string{"Amy", "Bo"})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if assignments["Amy"] != "Bo" || assignments["Bo"] != "Amy" {
			t.Fatalf("expected mutual swap, got %v", assignments)
		}
	}
}

func TestGenerateThreeIsACycle(t *testing.T) {
	// Only two derangements exist for three names: the two 3-cycles.
	names := []string{"Amy", "Bo", "Cara"}
	for i := 0; i < 100; i++ {
		assignments, err := Generate(names)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		forward := assignments["Amy"] == "Bo" && assignments["Bo"] == "Cara" && assignments["Cara"] == "Amy"
		backward := assignments["Amy"] == "Cara" && assignments["Cara"] == "Bo" && assignments["Bo"] == "Amy"
		if !forward && !backward {
			t.Fatalf("expected a 3-cycle, got %v", assignments)
		}
	}
}

func TestGenerateInsufficientParticipants(t *testing.T) {
	for _, names := range [][]string{nil, {}, {"Amy"}} {
		if _, err := Generate(names); err != ErrInsufficientParticipants {
			t.Errorf("Generate(%v) error = %v, want ErrInsufficientParticipants", names, err)
		}
	}
}

func manyNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = "Participant" + string(rune('A'+i%26)) + string(rune('0'+i/26))
	}
	return names
}
