package engine

import "testing"

func TestPriorityWeight(t *testing.T) {
	tests := []struct {
		rank int
		want float64
	}{
		{1, 4},
		{2, 3},
		{3, 2},
		{4, 1},
		{0, 5}, // out-of-range ranks pass through
		{6, -1},
	}
	for _, tt := range tests {
		p := Priority{Feature: FeatureBrand, Rank: tt.rank}
		if got := p.Weight(); got != tt.want {
			t.Errorf("rank %d: expected weight %f, got %f", tt.rank, tt.want, got)
		}
	}
}
