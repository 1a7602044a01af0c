package feature

import "testing"

func TestCloneIsDeep(t *testing.T) {
	v := Vector{Features: []float64{1, 2, 3}, TimePosition: 0.5}
	c := v.Clone()
	c.Features[0] = 42

	if v.Features[0] != 1 {
		t.Fatalf("Clone shares storage: original %v", v.Features)
	}
	if c.TimePosition != 0.5 {
		t.Fatalf("TimePosition = %v, want 0.5", c.TimePosition)
	}

	empty := Vector{}.Clone()
	if len(empty.Features) != 0 {
		t.Fatalf("Clone of empty vector has %d features", len(empty.Features))
	}
}

func TestColumn(t *testing.T) {
	vectors := []Vector{
		{Features: []float64{1, 10}},
		{Features: []float64{2}},
		{Features: []float64{3, 30}},
	}

	tests := []struct {
		idx  int
		want []float64
	}{
		{idx: 0, want: []float64{1, 2, 3}},
		{idx: 1, want: []float64{10, 30}},
		{idx: 2, want: []float64{}},
		{idx: -1, want: []float64{}},
	}

	for _, tt := range tests {
		got := Column(vectors, tt.idx)
		if len(got) != len(tt.want) {
			t.Fatalf("Column(%d) = %v, want %v", tt.idx, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("Column(%d) = %v, want %v", tt.idx, got, tt.want)
			}
		}
	}
}
