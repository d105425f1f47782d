package cards

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Card is one phrase card shown to students: a short keyword line plus the
// snippet of the original discussion it came from.
type Card struct {
	Keyword string `json:"keyword"`
	Quote   string `json:"quote"`
}

// Normalize turns raw model output into phrase cards. The model is told to
// answer with a bare JSON array, but replies drift, so input degrades tier by
// tier instead of failing:
// - Fenced output: ```json ... ``` is unwrapped first.
// - JSON array: objects become cards, bare strings become quote-less cards,
//   anything else (numbers, null, nested arrays, badly typed objects) is
//   dropped.
// - Other valid JSON: wrapped as a single quote-less card.
// - Not JSON at all: the original text is split into lines, bullet and
//   numbering prefixes stripped.
// Cards whose keyword trims to empty are dropped. The result is never nil,
// and once something parses as JSON the line fallback is not consulted, even
// when zero cards survive.
func Normalize(raw string) []Card {
	cards := []Card{}

	text := stripFence(strings.TrimSpace(raw))

	var value json.RawMessage
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return appendLines(cards, raw)
	}

	if len(value) > 0 && value[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(value, &items); err == nil {
			for _, item := range items {
				if card, ok := cardFromElement(item); ok {
					cards = append(cards, card)
				}
			}
		}
		return cards
	}

	// A single non-array JSON value; keep it rather than losing the reply.
	if kw := strings.TrimSpace(stringifyValue(value)); kw != "" {
		cards = append(cards, Card{Keyword: kw})
	}
	return cards
}

// stripFence unwraps a markdown code fence: the opening line (``` with an
// optional language tag) is dropped along with everything from the last
// closing ``` on. Text without both fence parts is returned unchanged.
func stripFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	_, rest, ok := strings.Cut(text, "\n")
	if !ok {
		return text
	}
	end := strings.LastIndex(rest, "```")
	if end < 0 {
		return text
	}
	return rest[:end]
}

// cardFromElement classifies one array element by its leading byte: an
// object with keyword/quote strings, a bare string, or something to drop.
func cardFromElement(item json.RawMessage) (Card, bool) {
	if len(item) == 0 {
		return Card{}, false
	}
	switch item[0] {
	case '{':
		var card Card
		if err := json.Unmarshal(item, &card); err != nil {
			// keyword or quote is not a string; drop the element
			return Card{}, false
		}
		card.Keyword = strings.TrimSpace(card.Keyword)
		card.Quote = strings.TrimSpace(card.Quote)
		return card, card.Keyword != ""
	case '"':
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			return Card{}, false
		}
		s = strings.TrimSpace(s)
		return Card{Keyword: s}, s != ""
	default:
		return Card{}, false
	}
}

// stringifyValue renders a JSON value for the single-value wrap: strings use
// their decoded text, everything else its compact JSON form.
func stringifyValue(value json.RawMessage) string {
	if len(value) > 0 && value[0] == '"' {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return string(value)
	}
	return buf.String()
}

// appendLines is the last resort for output with no JSON anywhere: treat it
// as a plain list, one card per line, dropping bullet markers (・ - *) and
// "1." style numbering.
func appendLines(cards []Card, raw string) []Card {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimSpace(strings.TrimLeft(line, "・-*"))

		// Numbering is detected within the first three runes so that a
		// sentence merely containing a period is left alone.
		head := []rune(line)
		if len(head) > 3 {
			head = head[:3]
		}
		if strings.ContainsRune(string(head), '.') {
			_, rest, _ := strings.Cut(line, ".")
			line = strings.TrimSpace(rest)
		}

		if line != "" {
			cards = append(cards, Card{Keyword: line})
		}
	}
	return cards
}
