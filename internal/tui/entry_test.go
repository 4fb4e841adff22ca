package tui

import (
	"testing"
	"time"
)

func TestEntryTime(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	now := time.Date(2025, 3, 10, 22, 15, 4, 0, loc)

	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{
			name: "blank means now",
			raw:  "",
			want: now,
		},
		{
			name: "explicit date keeps time of day in the user's zone",
			raw:  "2025-03-08",
			want: time.Date(2025, 3, 8, 22, 15, 4, 0, loc),
		},
		{
			name:    "malformed date",
			raw:     "08/03/2025",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := entryTime(tt.raw, now)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("entryTime: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("entryTime = %v, want %v", got, tt.want)
			}
			// The wall clock must match the user's zone, not a shifted one
			if got.In(loc).Hour() != tt.want.Hour() {
				t.Errorf("hour in user zone = %d, want %d", got.In(loc).Hour(), tt.want.Hour())
			}
		})
	}
}
