package danger

import "strings"

// Уровни ключевых слов в тексте пользователя
const (
	TierImmediateDanger = "immediate_danger"
	TierUnease          = "unease"
)

// KeywordTable - неизменяемая таблица ключевых слов. Строится один раз и
// используется только на чтение во всех вызовах Evaluate.
type KeywordTable struct {
	immediateDanger []string
	unease          []string
}

// NewKeywordTable создает таблицу, приводя ключевые слова к нижнему регистру
func NewKeywordTable(immediateDanger, unease []string) KeywordTable {
	return KeywordTable{
		immediateDanger: lowerAll(immediateDanger),
		unease:          lowerAll(unease),
	}
}

// DefaultKeywords возвращает стандартную таблицу ключевых слов
func DefaultKeywords() KeywordTable {
	return NewKeywordTable(
		[]string{"help", "sos", "stalk", "following", "threat", "danger", "attack", "harass"},
		[]string{"scared", "unsafe", "alone", "dark", "anxious"},
	)
}

// Match возвращает уровень, к которому относится текст, или пустую строку.
// Поиск - по вхождению подстроки без учёта регистра; immediate_danger имеет приоритет.
func (k KeywordTable) Match(text string) string {
	if text == "" {
		return ""
	}
	lower := strings.ToLower(text)
	if containsAny(lower, k.immediateDanger) {
		return TierImmediateDanger
	}
	if containsAny(lower, k.unease) {
		return TierUnease
	}
	return ""
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func lowerAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			out = append(out, w)
		}
	}
	return out
}
