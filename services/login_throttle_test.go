package services

import "testing"

func TestCooldownSecondsForFailCount(t *testing.T) {
	tests := []struct {
		failCount int
		want      int
	}{
		{0, 1},   // 2^0=1
		{1, 2},   // 2^1=2
		{2, 4},   // 2^2=4
		{3, 8},   // 2^3=8
		{4, 16},  // 2^4=16
		{5, 30},  // 2^5=32 -> cap 30
		{6, 30},  // cap 30
		{10, 30}, // cap 30
	}
	for _, tt := range tests {
		if got := CooldownSecondsForFailCount(tt.failCount); got != tt.want {
			t.Errorf("CooldownSecondsForFailCount(%d) = %d, want %d", tt.failCount, got, tt.want)
		}
	}
}
