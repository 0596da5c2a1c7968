package knowledge

import (
	"math"
	"regexp"
	"strings"
)

// Analysis is the resolved interpretation of a score against one entry.
type Analysis struct {
	Level            int      `json:"level"`
	Definition       string   `json:"definition"`
	Recommendations  []string `json:"recommendations"`
	LinkedIndicators string   `json:"linked_indicators,omitempty"`
}

// ResolveLevel buckets a continuous score into a 1-5 level: round half up,
// clamp to the scale ends.
func ResolveLevel(score float64) int {
	level := int(math.Floor(score + 0.5))
	if level < 1 {
		return 1
	}
	if level > 5 {
		return 5
	}
	return level
}

var fallbackSplit = regexp.MustCompile(`\n+|;\s*|\d\.\s+`)

// SplitPoints breaks a free-text block into list points on sentence and
// numbering boundaries. Used for generic recommendation and business
// impact cells that were written as prose.
func SplitPoints(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var items []string
	for _, part := range fallbackSplit.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}

// Resolve returns the level-specific definition and recommendations for a
// score. Missing level data degrades to the entry's generic text and
// finally to empty values; it never fails.
func Resolve(entry *Entry, score float64) Analysis {
	level := ResolveLevel(score)
	levelEntry := entry.LevelAt(level)

	definition := levelEntry.Definition
	if definition == "" {
		definition = entry.GeneralDescription
	}
	if definition == "" {
		definition = entry.Definition
	}

	recommendations := levelEntry.Recommendations
	if len(recommendations) == 0 {
		recommendations = SplitPoints(entry.Recommendations)
	}
	if len(recommendations) == 0 && entry.Scope == ScopeArea {
		source := entry.GeneralDescription
		if source == "" {
			source = entry.Definition
		}
		recommendations = SplitPoints(source)
	}
	if recommendations == nil {
		recommendations = []string{}
	}

	return Analysis{
		Level:            level,
		Definition:       definition,
		Recommendations:  recommendations,
		LinkedIndicators: entry.LinkedIndicators,
	}
}

// Lookup memoizes Find results for one report run, so the per-department
// resolution loops hit the fold index at most once per distinct name.
// It is not safe for concurrent use; each report run builds its own.
type Lookup struct {
	store *Store
	seen  map[string]*Entry
}

func NewLookup(store *Store) *Lookup {
	return &Lookup{store: store, seen: make(map[string]*Entry)}
}

func (l *Lookup) Find(name string) (*Entry, bool) {
	if entry, ok := l.seen[name]; ok {
		return entry, entry != nil
	}
	entry, ok := l.store.Find(name)
	if !ok {
		l.seen[name] = nil
		return nil, false
	}
	l.seen[name] = entry
	return entry, true
}
