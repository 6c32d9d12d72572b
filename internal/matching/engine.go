// Package matching scores talent-bank candidates against job requisitions by
// skill overlap. It is stateless: results are computed on every call.
package matching

import (
	"sort"

	"talent-bank/internal/storage"
)

// MatchResult describes how well one candidate covers one job's required skills.
type MatchResult struct {
	CandidateID         int64    `json:"candidateId"`
	CandidateName       string   `json:"candidateName"`
	CandidateEmail      string   `json:"candidateEmail"`
	MatchedSkillCount   int      `json:"matchedSkillCount"`
	TotalRequiredSkills int      `json:"totalRequiredSkills"`
	MatchPercentage     float64  `json:"matchPercentage"`
	MatchedSkills       []string `json:"matchedSkills"`

	AlreadySuggested bool                    `json:"alreadySuggested"`
	SuggestionState  storage.SuggestionState `json:"suggestionState,omitempty"`
}

// JobMatch is the candidate-centric view: one job scored for one candidate.
type JobMatch struct {
	JobID               int64    `json:"jobId"`
	JobTitle            string   `json:"jobTitle"`
	Location            string   `json:"location"`
	MatchedSkillCount   int      `json:"matchedSkillCount"`
	TotalRequiredSkills int      `json:"totalRequiredSkills"`
	MatchPercentage     float64  `json:"matchPercentage"`
	MatchedSkills       []string `json:"matchedSkills"`

	AlreadySuggested bool                    `json:"alreadySuggested"`
	SuggestionState  storage.SuggestionState `json:"suggestionState,omitempty"`
}

// ComputeMatches scores every candidate against job. Candidates without a
// single matching skill are left out, and a job without required skills
// yields an empty result. Ordering is percentage desc, matched count desc,
// candidate id asc.
func ComputeMatches(job *storage.JobRequisition, candidates []*storage.Candidate) []MatchResult {
	results := make([]MatchResult, 0)
	if job == nil {
		return results
	}
	req := newRequirement(job.RequiredSkills)
	total := len(req.normalized)
	if total == 0 {
		return results
	}

	for _, c := range candidates {
		if c == nil {
			continue
		}
		matched := req.intersect(NewSkillSet(c.Skills))
		if len(matched) == 0 {
			continue
		}
		results = append(results, MatchResult{
			CandidateID:         c.ID,
			CandidateName:       c.Name,
			CandidateEmail:      c.Email,
			MatchedSkillCount:   len(matched),
			TotalRequiredSkills: total,
			MatchPercentage:     percentage(len(matched), total),
			MatchedSkills:       matched,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.MatchPercentage != b.MatchPercentage {
			return a.MatchPercentage > b.MatchPercentage
		}
		if a.MatchedSkillCount != b.MatchedSkillCount {
			return a.MatchedSkillCount > b.MatchedSkillCount
		}
		return a.CandidateID < b.CandidateID
	})
	return results
}

// ComputeJobMatches scores one candidate against each job with the same rules
// as ComputeMatches. Ties fall back to job id asc.
func ComputeJobMatches(candidate *storage.Candidate, jobs []*storage.JobRequisition) []JobMatch {
	results := make([]JobMatch, 0)
	if candidate == nil {
		return results
	}
	set := NewSkillSet(candidate.Skills)
	if set.Len() == 0 {
		return results
	}

	for _, j := range jobs {
		if j == nil {
			continue
		}
		req := newRequirement(j.RequiredSkills)
		total := len(req.normalized)
		if total == 0 {
			continue
		}
		matched := req.intersect(set)
		if len(matched) == 0 {
			continue
		}
		results = append(results, JobMatch{
			JobID:               j.ID,
			JobTitle:            j.Title,
			Location:            j.Location,
			MatchedSkillCount:   len(matched),
			TotalRequiredSkills: total,
			MatchPercentage:     percentage(len(matched), total),
			MatchedSkills:       matched,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.MatchPercentage != b.MatchPercentage {
			return a.MatchPercentage > b.MatchPercentage
		}
		if a.MatchedSkillCount != b.MatchedSkillCount {
			return a.MatchedSkillCount > b.MatchedSkillCount
		}
		return a.JobID < b.JobID
	})
	return results
}

func percentage(matched, total int) float64 {
	if total <= 0 {
		return 0
	}
	p := float64(matched) / float64(total) * 100
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
