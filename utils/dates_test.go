package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2025-06-01", "2025-06-01", false},
		{" 2025-06-01 ", "2025-06-01", false},
		{"2025-06-01T00:00:00Z", "2025-06-01", false},
		{"2025-06-01 15:04:05", "2025-06-01", false},
		{"2025-06-01T15:04:05+07:00", "2025-06-01", false},
		{"not-a-date", "", true},
		{"2025-13-01", "", true},
		{"2025-06-01nonsense", "", true},
		{"2025-06-01 garbage", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tc.in, err)
			continue
		}
		if FormatDate(got) != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, FormatDate(got), tc.want)
		}
		if got.Location() != time.UTC {
			t.Errorf("ParseDate(%q) not UTC", tc.in)
		}
	}
}

func TestTodayIsMidnightUTC(t *testing.T) {
	today := Today()
	if h, m, s := today.Clock(); h != 0 || m != 0 || s != 0 {
		t.Fatalf("Today() = %v, want midnight", today)
	}
	if today.Location() != time.UTC {
		t.Fatalf("Today() not UTC: %v", today)
	}
}
