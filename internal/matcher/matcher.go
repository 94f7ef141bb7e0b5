// Package matcher resolves template exercise names against the external
// exercise catalog using a layered, increasingly coarse strategy.
package matcher

import (
	"strings"

	"example.com/gamification/internal/catalog"
)

// strategy attempts one matching tier. A nil result means the tier missed.
type strategy struct {
	name string
	fn   func(name string, entries []catalog.Entry) *catalog.Entry
}

// Tier order matters: curated and exact mappings win over heuristics, and
// heuristic ties break toward the more specific candidate.
var tiers = []strategy{
	{"curated", matchCurated},
	{"exact", matchExact},
	{"fallback_list", matchFallbackList},
	{"substring", matchSubstring},
	{"equipment_variant", matchEquipmentVariant},
	{"reverse_containment", matchReverseContainment},
	{"muscle_keyword", matchMuscleKeyword},
	{"primary_body_part", matchPrimaryBodyPart},
}

// Match resolves a template name to its best catalog entry. The boolean is
// false when every tier missed; callers must supply their own fallback.
func Match(name string, entries []catalog.Entry) (catalog.Entry, bool) {
	entry, _, ok := MatchTier(name, entries)
	return entry, ok
}

// MatchTier is Match plus the label of the winning tier, for observability.
func MatchTier(name string, entries []catalog.Entry) (catalog.Entry, string, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || len(entries) == 0 {
		return catalog.Entry{}, "", false
	}
	for _, tier := range tiers {
		if hit := tier.fn(trimmed, entries); hit != nil {
			return *hit, tier.name, true
		}
	}
	return catalog.Entry{}, "", false
}

// matchCurated resolves through the pinned template -> catalog name table.
func matchCurated(name string, entries []catalog.Entry) *catalog.Entry {
	canonical, ok := curatedNames[strings.ToLower(name)]
	if !ok {
		return nil
	}
	return findByName(canonical, entries)
}

// matchExact compares the template name directly against catalog names.
func matchExact(name string, entries []catalog.Entry) *catalog.Entry {
	return findByName(name, entries)
}

// matchFallbackList walks the curated alternative spellings in order.
func matchFallbackList(name string, entries []catalog.Entry) *catalog.Entry {
	for _, alt := range fallbackNames[strings.ToLower(name)] {
		if hit := findByName(alt, entries); hit != nil {
			return hit
		}
	}
	return nil
}

// matchSubstring accepts containment in either direction. With several hits
// the shortest catalog name wins, on the assumption that it is the most
// canonical variant.
func matchSubstring(name string, entries []catalog.Entry) *catalog.Entry {
	lower := strings.ToLower(name)
	var best *catalog.Entry
	for i := range entries {
		entryName := strings.ToLower(entries[i].Name)
		if !strings.Contains(entryName, lower) && !strings.Contains(lower, entryName) {
			continue
		}
		if best == nil || len(entries[i].Name) < len(best.Name) {
			best = &entries[i]
		}
	}
	return best
}

// matchEquipmentVariant strips a leading equipment token to get the core
// movement phrase, then probes equipment keywords in a fixed order. The
// first keyword with at least one hit wins and its first hit is returned.
func matchEquipmentVariant(name string, entries []catalog.Entry) *catalog.Entry {
	core := strings.ToLower(name)
	for _, prefix := range equipmentPrefixes {
		if strings.HasPrefix(core, prefix+" ") {
			core = strings.TrimSpace(strings.TrimPrefix(core, prefix+" "))
			break
		}
	}
	if core == "" {
		return nil
	}
	for _, keyword := range equipmentKeywords {
		for i := range entries {
			if strings.Contains(strings.ToLower(entries[i].Name), core) &&
				strings.Contains(strings.ToLower(entries[i].Equipment), keyword) {
				return &entries[i]
			}
		}
	}
	return nil
}

// matchReverseContainment takes the last two words of the template name and
// accepts catalog names contained in that short phrase, preferring the
// longest (most specific) hit.
func matchReverseContainment(name string, entries []catalog.Entry) *catalog.Entry {
	words := strings.Fields(strings.ToLower(name))
	if len(words) > 2 {
		words = words[len(words)-2:]
	}
	phrase := strings.Join(words, " ")
	var best *catalog.Entry
	for i := range entries {
		entryName := strings.ToLower(entries[i].Name)
		if entryName == "" || !strings.Contains(phrase, entryName) {
			continue
		}
		if best == nil || len(entries[i].Name) > len(best.Name) {
			best = &entries[i]
		}
	}
	return best
}

// matchMuscleKeyword extracts known muscle tokens from the template name and
// filters entries whose bodyPart or target mentions any of them. The match
// against the longest extracted token wins.
func matchMuscleKeyword(name string, entries []catalog.Entry) *catalog.Entry {
	lower := strings.ToLower(name)
	var found []string
	for _, keyword := range muscleKeywords {
		if strings.Contains(lower, keyword) {
			found = append(found, keyword)
		}
	}
	if len(found) == 0 {
		return nil
	}

	var best *catalog.Entry
	bestToken := ""
	for i := range entries {
		bodyPart := strings.ToLower(entries[i].BodyPart)
		target := strings.ToLower(entries[i].Target)
		for _, token := range found {
			if !strings.Contains(bodyPart, token) && !strings.Contains(target, token) {
				continue
			}
			if best == nil || len(token) > len(bestToken) {
				best = &entries[i]
				bestToken = token
			}
		}
	}
	return best
}

// matchPrimaryBodyPart is the last resort: map the template name to one
// coarse body part and return the shortest-named entry sharing it.
func matchPrimaryBodyPart(name string, entries []catalog.Entry) *catalog.Entry {
	lower := strings.ToLower(name)
	bodyPart := ""
	for _, row := range primaryBodyParts {
		if strings.Contains(lower, row.keyword) {
			bodyPart = row.bodyPart
			break
		}
	}
	if bodyPart == "" {
		return nil
	}

	var best *catalog.Entry
	for i := range entries {
		if !strings.Contains(strings.ToLower(entries[i].BodyPart), bodyPart) &&
			!strings.Contains(strings.ToLower(entries[i].Target), bodyPart) {
			continue
		}
		if best == nil || len(entries[i].Name) < len(best.Name) {
			best = &entries[i]
		}
	}
	return best
}

func findByName(name string, entries []catalog.Entry) *catalog.Entry {
	for i := range entries {
		if strings.EqualFold(entries[i].Name, name) {
			return &entries[i]
		}
	}
	return nil
}
