package matching

import "strings"

// NormalizeSkill trims and lowercases a free-text skill name.
func NormalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SkillSet is a normalized set of skill names. Build it once per entity and
// reuse it for every comparison.
type SkillSet map[string]struct{}

func NewSkillSet(skills []string) SkillSet {
	set := make(SkillSet, len(skills))
	for _, s := range skills {
		if n := NormalizeSkill(s); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

func (s SkillSet) Has(skill string) bool {
	_, ok := s[NormalizeSkill(skill)]
	return ok
}

func (s SkillSet) Len() int { return len(s) }

// requirement is a job's required-skill list in display order with
// duplicates (after normalization) removed.
type requirement struct {
	display    []string
	normalized []string
}

func newRequirement(skills []string) requirement {
	seen := make(map[string]struct{}, len(skills))
	r := requirement{}
	for _, s := range skills {
		n := NormalizeSkill(s)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		r.display = append(r.display, strings.TrimSpace(s))
		r.normalized = append(r.normalized, n)
	}
	return r
}

// intersect returns the required skills present in set, in requirement order.
func (r requirement) intersect(set SkillSet) []string {
	var matched []string
	for i, n := range r.normalized {
		if _, ok := set[n]; ok {
			matched = append(matched, r.display[i])
		}
	}
	return matched
}
