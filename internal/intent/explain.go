package intent

import (
	"sort"
	"strings"
	"sync"

	"fjacquet/quicklog/internal/models"

	"github.com/cloudflare/ahocorasick"
)

// KeywordHit is one table keyword found in a message.
type KeywordHit struct {
	Keyword  string
	Kind     models.Kind
	Category string // set for category keywords only
}

type indexEntry struct {
	order int
	hit   KeywordHit
}

// KeywordIndex finds every intent and category keyword of a message in a
// single pass. Classification does not use it; it backs the explain command.
type KeywordIndex struct {
	mu       sync.Mutex // ahocorasick.Matcher keeps per-call state
	matcher  *ahocorasick.Matcher
	patterns []string
	entries  [][]indexEntry
}

// NewKeywordIndex indexes the intent keywords followed by the parser's category table.
func (p *Parser) NewKeywordIndex() *KeywordIndex {
	ix := &KeywordIndex{}
	byPattern := make(map[string]int)
	order := 0

	add := func(keyword string, hit KeywordHit) {
		idx, ok := byPattern[keyword]
		if !ok {
			idx = len(ix.patterns)
			byPattern[keyword] = idx
			ix.patterns = append(ix.patterns, keyword)
			ix.entries = append(ix.entries, nil)
		}
		ix.entries[idx] = append(ix.entries[idx], indexEntry{order: order, hit: hit})
		order++
	}

	tables := []struct {
		kind     models.Kind
		keywords []string
	}{
		{models.KindReminder, reminderKeywords},
		{models.KindExpense, spendVerbs},
		{models.KindTask, taskKeywords},
		{models.KindNote, noteKeywords},
	}
	for _, table := range tables {
		for _, keyword := range table.keywords {
			add(keyword, KeywordHit{Keyword: keyword, Kind: table.kind})
		}
	}
	for _, category := range p.categories {
		for _, keyword := range category.Keywords {
			add(keyword, KeywordHit{Keyword: keyword, Kind: models.KindExpense, Category: category.Name})
		}
	}

	if len(ix.patterns) > 0 {
		ix.matcher = ahocorasick.NewStringMatcher(ix.patterns)
	}
	return ix
}

// Hits returns the keywords present in text, in table order.
func (ix *KeywordIndex) Hits(text string) []KeywordHit {
	if ix.matcher == nil {
		return nil
	}

	ix.mu.Lock()
	matched := ix.matcher.Match([]byte(strings.ToLower(text)))
	ix.mu.Unlock()

	var found []indexEntry
	for _, idx := range matched {
		if idx >= 0 && idx < len(ix.entries) {
			found = append(found, ix.entries[idx]...)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].order < found[j].order })

	hits := make([]KeywordHit, len(found))
	for i, entry := range found {
		hits[i] = entry.hit
	}
	return hits
}

// PatternCount returns the number of distinct keywords indexed.
func (ix *KeywordIndex) PatternCount() int {
	return len(ix.patterns)
}

// Explanation is a classification together with the evidence behind it.
type Explanation struct {
	Intent     models.ParsedIntent
	Normalized string
	Amount     string // first number found, as typed, or empty
	BareAmount bool   // the message is shaped like "12 lunch" or "lunch 12"
	Hits       []KeywordHit
}

// Explain classifies text and reports the keywords and amount it saw.
func (p *Parser) Explain(text string, ix *KeywordIndex) Explanation {
	msg := p.normalize(text)
	exp := Explanation{
		Intent:     p.Classify(text),
		Normalized: msg.normalized,
		BareAmount: looksLikeBareAmount(msg.original),
	}
	if msg.amount != nil {
		exp.Amount = msg.amount.text
	}
	if ix != nil {
		exp.Hits = ix.Hits(msg.normalized)
	}
	return exp
}
