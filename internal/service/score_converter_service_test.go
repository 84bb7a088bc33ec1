package service

import "testing"

func TestConvertToPercentage(t *testing.T) {
	sc := NewScoreConverterService()

	cases := []struct {
		correct, total, want int
	}{
		{0, 0, 0},
		{0, 3, 0},
		{1, 2, 50},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 rounds up
		{3, 8, 38}, // 37.5 rounds up
		{5, 5, 100},
	}
	for _, tc := range cases {
		got, err := sc.ConvertToPercentage(tc.correct, tc.total)
		if err != nil {
			t.Fatalf("ConvertToPercentage(%d, %d) failed: %v", tc.correct, tc.total, err)
		}
		if got != tc.want {
			t.Fatalf("ConvertToPercentage(%d, %d) = %d, want %d", tc.correct, tc.total, got, tc.want)
		}
	}

	if _, err := sc.ConvertToPercentage(4, 3); err == nil {
		t.Fatalf("expected error when correct exceeds total")
	}
	if _, err := sc.ConvertToPercentage(-1, 3); err == nil {
		t.Fatalf("expected error for negative correct count")
	}
}
