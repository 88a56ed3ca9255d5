package utils

import "testing"

func TestSplitTimestamp(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDate  string
		wantClock string
	}{
		{"full timestamp", "2025-01-14T22:30:00+03:00", "2025-01-14", "22:30"},
		{"no separator", "2025-01-14 22:30:00", "2025-01-14 22:30:00", TimePlaceholder},
		{"truncated time", "2025-01-14T22:3", "2025-01-14T22:3", TimePlaceholder},
		{"empty", "", "", TimePlaceholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, clock := SplitTimestamp(tt.input)
			if date != tt.wantDate {
				t.Errorf("date = %q, want %q", date, tt.wantDate)
			}
			if clock != tt.wantClock {
				t.Errorf("clock = %q, want %q", clock, tt.wantClock)
			}
		})
	}
}

func TestHourOf(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"22:30", 22},
		{"00:05", 0},
		{"06:00", 6},
		{TimePlaceholder, 0},
		{"garbage", 0},
		{"25:00", 0},
	}

	for _, tt := range tests {
		if got := HourOf(tt.input); got != tt.want {
			t.Errorf("HourOf(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestFormatTravelTime(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{27300, "7ч 35м"},
		{7200, "2ч"},
		{2700, "45м"},
		{30, "30с"},
		{0, "0с"},
	}

	for _, tt := range tests {
		if got := FormatTravelTime(tt.seconds); got != tt.want {
			t.Errorf("FormatTravelTime(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestTravelTime(t *testing.T) {
	t.Run("explicit duration wins", func(t *testing.T) {
		got := TravelTime("2025-01-14T22:30:00+03:00", "2025-01-14T23:00:00+03:00", 27300)
		if got != "7ч 35м" {
			t.Errorf("got %q, want %q", got, "7ч 35м")
		}
	})

	t.Run("delta fallback", func(t *testing.T) {
		got := TravelTime("2025-01-14T22:30:00+03:00", "2025-01-15T06:05:00+03:00", 0)
		if got != "7ч 35м" {
			t.Errorf("got %q, want %q", got, "7ч 35м")
		}
	})

	t.Run("unparsable timestamps", func(t *testing.T) {
		if got := TravelTime("not a date", "also not", 0); got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})

	t.Run("arrival before departure", func(t *testing.T) {
		got := TravelTime("2025-01-15T06:05:00+03:00", "2025-01-14T22:30:00+03:00", 0)
		if got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})
}

func TestLocalizeDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2025-01-14", "14 января"},
		{"2025-12-01", "1 декабря"},
		{"not-a-date", "not-a-date"},
	}

	for _, tt := range tests {
		if got := LocalizeDate(tt.input); got != tt.want {
			t.Errorf("LocalizeDate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
