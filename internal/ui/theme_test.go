package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Dracula" || names[1] != "Nord" || names[2] != "Daylight" {
		t.Fatalf("ThemeNames() = %v, want [Dracula Nord Daylight]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Dracula"); got != "Nord" {
		t.Fatalf("NextTheme(Dracula) = %q, want Nord", got)
	}
	if got := NextTheme("Daylight"); got != "Dracula" {
		t.Fatalf("NextTheme(Daylight) = %q, want Dracula", got)
	}
	if got := NextTheme("Unknown"); got != "Dracula" {
		t.Fatalf("NextTheme(Unknown) = %q, want Dracula", got)
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name); got.Name != name {
			t.Fatalf("GetTheme(%s).Name = %q, want %q", name, got.Name, name)
		}
	}
	if got := GetTheme("Unknown"); got.Name != "Dracula" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Dracula (fallback)", got.Name)
	}
}
