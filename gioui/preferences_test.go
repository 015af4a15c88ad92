package gioui

import "testing"

func TestDefaultPreferences(t *testing.T) {
	p := loadDefaultPreferences()
	if p.Window.Width <= 0 || p.Window.Height <= 0 {
		t.Fatalf("default window size should be positive, got %+v", p.Window)
	}
	if p.Keyboard.Octaves != 2 || p.Keyboard.LowOctave != 4 {
		t.Fatalf("default keyboard should span two octaves from 4, got %+v", p.Keyboard)
	}
}
