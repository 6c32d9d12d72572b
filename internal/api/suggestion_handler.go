package api

import (
	"net/http"

	"talent-bank/internal/auth"
	"talent-bank/internal/suggestion"
)

type CreateSuggestionRequest struct {
	CandidateID int64  `json:"candidateId"`
	JobID       int64  `json:"jobId"`
	Note        string `json:"note,omitempty"`
	SendEmail   bool   `json:"sendEmail"`
}

// CreateSuggestionHandler suggests a job to a talent-bank candidate.
// @Summary Suggest a job to a candidate
// @Description Creates a pending suggestion and notifies the candidate in-app and, if requested, by email. Delivery failures are reported through notificationSent and emailSent, never as an error.
// @Tags suggestions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSuggestionRequest true "Suggestion"
// @Success 201 {object} storage.Suggestion
// @Failure 400 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Failure 409 {object} ErrorBody "Already suggested, or job not active"
// @Failure 503 {object} ErrorBody
// @Router /suggestions [post]
func (a *API) CreateSuggestionHandler(w http.ResponseWriter, r *http.Request) {
	recruiter, ok := auth.RecruiterFrom(r.Context())
	if !ok {
		writeErrorBody(w, http.StatusUnauthorized, codeUnauthorized, "missing recruiter identity")
		return
	}

	var req CreateSuggestionRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}

	sg, err := a.suggestions.Create(r.Context(), suggestion.CreateInput{
		CandidateID: req.CandidateID,
		JobID:       req.JobID,
		Note:        req.Note,
		SendEmail:   req.SendEmail,
		SuggestedBy: recruiter.ID,
	})
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sg)
}

// CandidateSuggestionsHandler lists a candidate's suggestions, newest first.
// @Summary List suggestions for a candidate
// @Tags suggestions
// @Produce json
// @Security BearerAuth
// @Param candidateID path int true "Candidate ID"
// @Success 200 {array} storage.Suggestion
// @Failure 400 {object} ErrorBody
// @Failure 503 {object} ErrorBody
// @Router /talent-bank/candidates/{candidateID}/suggestions [get]
func (a *API) CandidateSuggestionsHandler(w http.ResponseWriter, r *http.Request) {
	candidateID, err := pathID(r, "candidateID")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	list, err := a.suggestions.ListForCandidate(r.Context(), candidateID)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// SuggestionStatusHandler returns the suggestion for a candidate and job.
// @Summary Get suggestion status
// @Description Responds with null when the job was never suggested to the candidate.
// @Tags suggestions
// @Produce json
// @Security BearerAuth
// @Param candidateId query int true "Candidate ID"
// @Param jobId query int true "Job ID"
// @Success 200 {object} storage.Suggestion
// @Failure 400 {object} ErrorBody
// @Failure 503 {object} ErrorBody
// @Router /suggestions/status [get]
func (a *API) SuggestionStatusHandler(w http.ResponseWriter, r *http.Request) {
	candidateID, err := queryID(r, "candidateId")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	jobID, err := queryID(r, "jobId")
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	sg, err := a.suggestions.Status(r.Context(), candidateID, jobID)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if sg == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, sg)
}

// SuggestionEventHandler records a state change reported by the candidate side.
// @Summary Report a suggestion state change
// @Description Repeated and out-of-order reports are accepted and leave the suggestion unchanged.
// @Tags suggestions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param suggestionID path string true "Suggestion ID" format(uuid)
// @Param request body SuggestionEvent true "Event"
// @Success 200 {object} storage.Suggestion
// @Failure 400 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Failure 409 {object} ErrorBody
// @Failure 503 {object} ErrorBody
// @Router /suggestions/{suggestionID}/events [post]
func (a *API) SuggestionEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "suggestionID")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	ev, err := decodeEvent(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	state, err := suggestion.ParseState(ev.State)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	sg, err := a.suggestions.ApplyTransition(r.Context(), id, state)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.log.Debug("suggestion event applied", "suggestion_id", id.String(), "reported", state, "source", ev.Source, "state", sg.State)
	writeJSON(w, http.StatusOK, sg)
}

// DeleteSuggestionHandler removes a suggestion.
// @Summary Delete a suggestion
// @Tags suggestions
// @Security BearerAuth
// @Param suggestionID path string true "Suggestion ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Failure 503 {object} ErrorBody
// @Router /suggestions/{suggestionID} [delete]
func (a *API) DeleteSuggestionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "suggestionID")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := a.suggestions.Remove(r.Context(), id); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
