package cards

import (
	"strings"
	"testing"
)

func TestConfigFor(t *testing.T) {
	tests := []struct {
		name      string
		phase     Phase
		wantLabel string
		wantMin   int
		wantMax   int
	}{
		{"saguru", PhaseSaguru, "①さぐる：現状をさぐる", 6, 10},
		{"kizuku", PhaseKizuku, "②きづく：本当の問題に気づく", 3, 5},
		{"hirameku", PhaseHirameku, "③ひらめく：解決アイデアをひらめく", 8, 12},
		{"tsukuru", PhaseTsukuru, "④つくる：ペーパープロトタイプにまとめる", 3, 7},
		{"tamesu", PhaseTamesu, "⑤ためす：ユーザーテストとフィードバック", 4, 6},

		// Anything unknown falls back to saguru
		{"unknown phase", Phase("mitei"), "①さぐる：現状をさぐる", 6, 10},
		{"empty phase", Phase(""), "①さぐる：現状をさぐる", 6, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ConfigFor(tt.phase)
			if cfg.Label != tt.wantLabel {
				t.Errorf("ConfigFor(%q).Label = %q, want %q", tt.phase, cfg.Label, tt.wantLabel)
			}
			if cfg.CountMin != tt.wantMin || cfg.CountMax != tt.wantMax {
				t.Errorf("ConfigFor(%q) counts = %d〜%d, want %d〜%d",
					tt.phase, cfg.CountMin, cfg.CountMax, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestPhases(t *testing.T) {
	want := []Phase{PhaseSaguru, PhaseKizuku, PhaseHirameku, PhaseTsukuru, PhaseTamesu}
	got := Phases()
	if len(got) != len(want) {
		t.Fatalf("Phases() returned %d phases, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Phases()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// Every configured phase must be fully filled in; a half-empty entry would
// produce a prompt with blank sections.
func TestPhaseConfigsComplete(t *testing.T) {
	for _, p := range Phases() {
		cfg := ConfigFor(p)
		if cfg.Label == "" || cfg.CardType == "" || cfg.Aim == "" {
			t.Errorf("phase %q has empty text fields: %+v", p, cfg)
		}
		if cfg.CountMin <= 0 || cfg.CountMax < cfg.CountMin {
			t.Errorf("phase %q has bad count range %d〜%d", p, cfg.CountMin, cfg.CountMax)
		}
		if len(cfg.Examples) == 0 {
			t.Errorf("phase %q has no examples", p)
		}
		for _, ex := range cfg.Examples {
			if strings.TrimSpace(ex) == "" {
				t.Errorf("phase %q has a blank example", p)
			}
		}
	}
}
