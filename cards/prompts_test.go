package cards

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	memo := "カバンが重い。\n教科書を全部持ってきている。"

	for _, p := range Phases() {
		t.Run(string(p), func(t *testing.T) {
			cfg := ConfigFor(p)
			prompt := BuildPrompt(memo, p)

			wantParts := []string{
				"今はデザイン思考のフェーズ「" + cfg.Label + "」にいます。",
				"今回ほしいカードの種類：" + cfg.CardType,
				"ねらい：" + cfg.Aim,
				"【出力フォーマット】",
				`{"keyword": "短いキーワード", "quote": "元の発話の一部"}`,
				"【カードのイメージ例】",
			}
			for _, part := range wantParts {
				if !strings.Contains(prompt, part) {
					t.Errorf("prompt for %q missing %q", p, part)
				}
			}

			for _, ex := range cfg.Examples {
				if !strings.Contains(prompt, "・"+ex+"\n") {
					t.Errorf("prompt for %q missing example line %q", p, ex)
				}
			}

			// The memo goes in verbatim at the very end.
			if !strings.HasSuffix(prompt, "【元のメモ】\n"+memo+"\n") {
				t.Errorf("prompt for %q does not end with the memo block", p)
			}
		})
	}
}

func TestBuildPrompt_CountRange(t *testing.T) {
	prompt := BuildPrompt("memo", PhaseSaguru)
	if !strings.Contains(prompt, "フレーズカードを 6〜10 個、日本語で生成してください。") {
		t.Errorf("saguru prompt missing count range line:\n%s", prompt)
	}
}

// An unknown phase must produce exactly the saguru prompt, not a variant.
func TestBuildPrompt_UnknownPhase(t *testing.T) {
	memo := "メモの内容"
	if got, want := BuildPrompt(memo, Phase("sonzai-shinai")), BuildPrompt(memo, PhaseSaguru); got != want {
		t.Errorf("unknown phase prompt differs from saguru prompt")
	}
}

func TestBuildPrompt_EmptyMemo(t *testing.T) {
	prompt := BuildPrompt("", PhaseKizuku)
	if !strings.HasSuffix(prompt, "【元のメモ】\n\n") {
		t.Errorf("empty memo should leave an empty memo block, got tail %q",
			prompt[len(prompt)-30:])
	}
}
