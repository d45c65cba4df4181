package services

import "testing"

func TestTotalScore(t *testing.T) {
	tests := []struct {
		name   string
		scores [5]float64
		want   float64
	}{
		{"example from rubric", [5]float64{9, 8, 9, 10, 8}, 8.8},
		{"holistic session scores", [5]float64{7, 7, 8, 8, 7}, 7.4},
		{"all zero", [5]float64{0, 0, 0, 0, 0}, 0},
		{"all max", [5]float64{10, 10, 10, 10, 10}, 10},
		{"rounds half up", [5]float64{1, 1, 1, 1, 1.25}, 1.1},
	}

	for _, tt := range tests {
		got := TotalScore(tt.scores[0], tt.scores[1], tt.scores[2], tt.scores[3], tt.scores[4])
		if got != tt.want {
			t.Errorf("%s: TotalScore(%v) = %v, want %v", tt.name, tt.scores, got, tt.want)
		}
		if got < 0 || got > 10 {
			t.Errorf("%s: TotalScore(%v) = %v, outside [0,10]", tt.name, tt.scores, got)
		}
	}
}

func TestClampScore(t *testing.T) {
	if got := ClampScore(-3); got != 0 {
		t.Errorf("ClampScore(-3) = %v, want 0", got)
	}
	if got := ClampScore(14); got != 10 {
		t.Errorf("ClampScore(14) = %v, want 10", got)
	}
	if got := ClampScore(7.5); got != 7.5 {
		t.Errorf("ClampScore(7.5) = %v, want 7.5", got)
	}
}
