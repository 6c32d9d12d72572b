package api

import (
	"net/http"
)

// ActiveJobsHandler lists the jobs that can currently receive suggestions.
// @Summary List active jobs
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} storage.JobRequisition
// @Failure 503 {object} ErrorBody
// @Router /jobs/active [get]
func (a *API) ActiveJobsHandler(w http.ResponseWriter, r *http.Request) {
	jobs, err := a.matches.ActiveJobs(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

// JobMatchesHandler scores every talent-bank candidate against one job.
// @Summary Match talent-bank candidates to a job
// @Description Candidates with no matching skill are omitted. Ordered by match percentage, then matched skill count, then candidate id.
// @Tags matching
// @Produce json
// @Security BearerAuth
// @Param jobID path int true "Job ID"
// @Success 200 {array} matching.MatchResult
// @Failure 400 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Failure 503 {object} ErrorBody
// @Router /jobs/{jobID}/matches [get]
func (a *API) JobMatchesHandler(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathID(r, "jobID")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	results, err := a.matches.ForJob(r.Context(), jobID)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// CandidateMatchesHandler scores one candidate against every active job.
// @Summary Match active jobs to a candidate
// @Tags matching
// @Produce json
// @Security BearerAuth
// @Param candidateID path int true "Candidate ID"
// @Success 200 {array} matching.JobMatch
// @Failure 400 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Failure 503 {object} ErrorBody
// @Router /talent-bank/candidates/{candidateID}/matches [get]
func (a *API) CandidateMatchesHandler(w http.ResponseWriter, r *http.Request) {
	candidateID, err := pathID(r, "candidateID")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	results, err := a.matches.ForCandidate(r.Context(), candidateID)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}
