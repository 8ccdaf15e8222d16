package check

import "testing"

func TestMeetsDifficulty(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		difficulty int
		want       bool
	}{
		{"exact match", 10, 10, true},
		{"above difficulty", 15, 10, true},
		{"below difficulty", 5, 10, false},
		{"zero total zero difficulty", 0, 0, true},
		{"negative total", -5, 0, false},
		{"one below", 15, 16, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MeetsDifficulty(tt.total, tt.difficulty)
			if got != tt.want {
				t.Errorf("MeetsDifficulty(%d, %d) = %v, want %v", tt.total, tt.difficulty, got, tt.want)
			}
		})
	}
}

func TestMargin(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		difficulty int
		want       int
	}{
		{"exact match", 10, 10, 0},
		{"above by 5", 15, 10, 5},
		{"below by 5", 5, 10, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Margin(tt.total, tt.difficulty)
			if got != tt.want {
				t.Errorf("Margin(%d, %d) = %v, want %v", tt.total, tt.difficulty, got, tt.want)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name       string
		roll       int
		modifier   int
		difficulty int
		want       Result
	}{
		{"success with margin", 14, 1, 10, Result{Roll: 14, Modifier: 1, Total: 15, Difficulty: 10, Success: true, Margin: 5}},
		{"exact success", 12, 0, 12, Result{Roll: 12, Modifier: 0, Total: 12, Difficulty: 12, Success: true, Margin: 0}},
		{"negative modifier fails", 16, -1, 16, Result{Roll: 16, Modifier: -1, Total: 15, Difficulty: 16, Success: false, Margin: -1}},
		{"natural one", 1, 2, 8, Result{Roll: 1, Modifier: 2, Total: 3, Difficulty: 8, Success: false, Margin: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(tt.roll, tt.modifier, tt.difficulty)
			if got != tt.want {
				t.Errorf("Check(%d, %d, %d) = %+v, want %+v", tt.roll, tt.modifier, tt.difficulty, got, tt.want)
			}
		})
	}
}
