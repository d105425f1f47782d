package cards

import (
	"fmt"
	"strings"
)

// SystemInstruction is the chat system message for card extraction.
const SystemInstruction = "あなたは日本語の話し合いから、授業で使いやすいフレーズカードをJSON形式で作るアシスタントです。"

// promptTemplate is filled with, in order: phase label, count min, count max,
// card type, aim, bulleted example lines, and the raw memo.
const promptTemplate = `あなたは日本の中高生の話し合いを支援するファシリテーターです。
今はデザイン思考のフェーズ「%s」にいます。

生徒たちの話し合いメモ（文字起こしを含む）から、このフェーズにふさわしい内容のフレーズカードを %d〜%d 個、日本語で生成してください。
今回ほしいカードの種類：%s

ねらい：%s

【出力フォーマット】
- 必ず JSON 配列だけを出力する。
- 各要素は {"keyword": "短いキーワード", "quote": "元の発話の一部"} の形にする。
- keyword は 20文字前後の短い常体の文（〜する、〜になる など）。
- quote は元の発話から15〜25文字程度をそのまま抜粋する。見つからなければ空文字にする。
- 丁寧語（〜です、〜ます）は使わず、子どもが自分のノートに書きそうな表現にする。
- 同じ意味の内容は1つにまとめる。
- JSON 以外の説明文やコメントは一切出力しない。

【カードのイメージ例】
%s
【元のメモ】
%s
`

// BuildPrompt assembles the user prompt for one extraction call. The memo is
// embedded verbatim; the phase picks the card type, count range, aim and
// example lines. Unknown phases produce the same prompt as saguru.
func BuildPrompt(memo string, phase Phase) string {
	cfg := ConfigFor(phase)

	var examples strings.Builder
	for _, ex := range cfg.Examples {
		examples.WriteString("・")
		examples.WriteString(ex)
		examples.WriteString("\n")
	}

	return fmt.Sprintf(promptTemplate,
		cfg.Label, cfg.CountMin, cfg.CountMax, cfg.CardType, cfg.Aim,
		examples.String(), memo)
}
