package tui

import (
	"testing"

	"weightless/internal/config"
)

func TestFormatWeightKg(t *testing.T) {
	u := NewUnits(config.DisplayConfig{WeightUnit: "kg"})

	if got := u.FormatWeight(80.25); got != "80.2 kg" {
		t.Errorf("FormatWeight = %q", got)
	}
	if got := u.FormatDelta(-0.5); got != "-0.5 kg" {
		t.Errorf("FormatDelta = %q", got)
	}
	if got := u.FormatDelta(0.5); got != "+0.5 kg" {
		t.Errorf("FormatDelta = %q", got)
	}
	if u.IsPounds() {
		t.Error("kg config reported pounds")
	}
}

func TestFormatWeightPounds(t *testing.T) {
	u := NewUnits(config.DisplayConfig{WeightUnit: "lb"})

	// 80 kg is about 176.4 lb
	if got := u.FormatWeight(80); got != "176.4 lb" {
		t.Errorf("FormatWeight = %q", got)
	}
	if !u.IsPounds() {
		t.Error("lb config did not report pounds")
	}
}

func TestToKgRoundTrip(t *testing.T) {
	u := NewUnits(config.DisplayConfig{WeightUnit: "lb"})

	kg := u.ToKg(176.37)
	if kg < 79.9 || kg > 80.1 {
		t.Errorf("ToKg(176.37) = %v, want ~80", kg)
	}

	back := u.WeightValue(kg)
	if back < 176.3 || back > 176.4 {
		t.Errorf("WeightValue(%v) = %v, want ~176.37", kg, back)
	}
}
