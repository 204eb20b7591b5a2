package main

import "testing"

func TestLoadScenario(t *testing.T) {
	if _, err := loadScenario("", ""); err == nil {
		t.Fatalf("expected error without input or preset")
	}
	if _, err := loadScenario("a.yaml", "flyby"); err == nil {
		t.Fatalf("expected error for both input and preset")
	}
	if _, err := loadScenario("", "nope"); err == nil {
		t.Fatalf("expected error for unknown preset")
	}
	sc, err := loadScenario("", "flyby")
	if err != nil {
		t.Fatalf("loadScenario: %v", err)
	}
	if len(sc.Asteroids) == 0 {
		t.Fatalf("expected preset asteroids")
	}
	sc, err = loadScenario("../../config/scenarios.yaml", "")
	if err != nil {
		t.Fatalf("loadScenario: %v", err)
	}
	if sc.Name != "reference-set" {
		t.Fatalf("unexpected scenario %s", sc.Name)
	}
}
