// Package cards turns classroom discussion memos into phrase cards: it builds
// the Japanese prompts sent to the model and normalizes whatever the model
// sends back. Everything here is pure; callers own the network.
package cards

// Phase identifies one step of the five-phase design thinking cycle.
type Phase string

const (
	PhaseSaguru   Phase = "saguru"   // explore the current situation
	PhaseKizuku   Phase = "kizuku"   // notice the real problem
	PhaseHirameku Phase = "hirameku" // come up with ideas
	PhaseTsukuru  Phase = "tsukuru"  // build a paper prototype
	PhaseTamesu   Phase = "tamesu"   // user test and feedback
)

// DefaultPhase is used when a request names no phase or an unknown one.
const DefaultPhase = PhaseSaguru

// PhaseConfig describes what kind of cards a phase asks the model for.
type PhaseConfig struct {
	Label    string
	CardType string
	CountMin int
	CountMax int
	Examples []string
	Aim      string
}

var phaseOrder = []Phase{PhaseSaguru, PhaseKizuku, PhaseHirameku, PhaseTsukuru, PhaseTamesu}

var phaseConfigs = map[Phase]PhaseConfig{
	PhaseSaguru: {
		Label:    "①さぐる：現状をさぐる",
		CardType: "事実・観察・感情の「今こうなっている」カード",
		CountMin: 6,
		CountMax: 10,
		Examples: []string{
			"毎日カバンが重くて、肩が痛くなることが多い。",
			"授業で使わなかった教科書を、念のため持ってきている。",
			"教室が暑すぎたり寒すぎたりして集中しにくい。",
		},
		Aim: "観察欄・困りごと欄を補完する材料として、状況カードを多めに出す。" +
			"評価や解決策は抑えめにし、事実と感じたことを見える化する。",
	},
	PhaseKizuku: {
		Label:    "②きづく：本当の問題に気づく",
		CardType: "解決したい『問題の核心』や『問い』を表すカード",
		CountMin: 3,
		CountMax: 5,
		Examples: []string{
			"荷物が重くなる理由をきちんと整理できていないことが問題だ。",
			"生徒が本当に必要な持ち物を自分で判断できていない。",
		},
		Aim: "さぐるフェーズのカードを踏まえて、AIが問題候補をまとめ直す。" +
			"生徒は『一番気になる問題』を選んでシートに一文で書く。" +
			"カードは問いの文にして、次のひらめく・つくるの起点にする。",
	},
	PhaseHirameku: {
		Label:    "③ひらめく：解決アイデアをひらめく",
		CardType: "解決アイデアや『こんな工夫をしてみたい』カード",
		CountMin: 8,
		CountMax: 12,
		Examples: []string{
			"曜日ごとに持ち物チェックリストをつくる。",
			"ロッカーに置いておける教科書を学年で決める。",
			"カバンの重さを1週間計測して、結果をポスターにまとめる。",
		},
		Aim: "アイデア出し欄を広げる役割。似ていても視点が違えば残す。" +
			"評価はまだせず、生徒が『面白い・実現しやすい』観点で選べるようにする。",
	},
	PhaseTsukuru: {
		Label:    "④つくる：ペーパープロトタイプにまとめる",
		CardType: "実際に形にするアイデアの要約カード＋具体化カード",
		CountMin: 3,
		CountMax: 7,
		Examples: []string{
			"休み時間に自分の空間を作れる『安眠ムードBOX』をつくる。",
			"机の上に置ける大きさにする。",
			"箱の中は暗くして、音もできるだけ遮る。",
			"軽くて持ち運びしやすい素材にする。",
		},
		Aim: "ワークシートの『見た目／大きさ／機能／特徴』と対応させる。" +
			"AIは要約と具体化の候補を出し、生徒はそれをヒントに自分の言葉と絵で書く。",
	},
	PhaseTamesu: {
		Label:    "⑤ためす：ユーザーテストとフィードバック",
		CardType: "良かったところ／もっと良くできそうなところ／次に取り組むこと",
		CountMin: 4,
		CountMax: 6,
		Examples: []string{
			"手軽に自分の空間ができるのが良さそうと言われた。",
			"BOXが大きくて置き場所に困るので、畳めるようにした方が良いと言われた。",
			"板を小さくして折り畳みしやすい形を考える。",
		},
		Aim: "フィードバックシートの3欄（良かった・もっと・次）を埋める材料。" +
			"次のサイクルのさぐる・きづくに引き継ぐ学びのエッセンスとして少数精鋭にする。",
	},
}

// ConfigFor returns the configuration for a phase. Unknown phases fall back
// to the saguru configuration rather than failing, so a stale or mistyped
// frontend still gets usable cards.
func ConfigFor(p Phase) PhaseConfig {
	if cfg, ok := phaseConfigs[p]; ok {
		return cfg
	}
	return phaseConfigs[DefaultPhase]
}

// Phases lists the known phases in lesson order.
func Phases() []Phase {
	out := make([]Phase, len(phaseOrder))
	copy(out, phaseOrder)
	return out
}
