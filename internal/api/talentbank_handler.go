package api

import (
	"net/http"

	"talent-bank/internal/apperr"
	"talent-bank/internal/talentbank"
)

type AddCandidateRequest struct {
	CandidateID int64  `json:"candidateId"`
	Notes       string `json:"notes"`
}

type UpdateNotesRequest struct {
	Notes *string `json:"notes"`
}

type MembershipResponse struct {
	Exists bool `json:"exists"`
}

// ListTalentBankHandler pages through the talent bank.
// @Summary List talent-bank candidates
// @Description search matches name, email or any skill, case-insensitively. mode selects database paging (server) or paging a fully loaded list (memory).
// @Tags talent-bank
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search text"
// @Param page query int false "Page, from 1" default(1)
// @Param perPage query int false "Page size, max 100" default(15)
// @Param mode query string false "Pagination strategy" Enums(server, memory) default(server)
// @Success 200 {object} talentbank.Page
// @Failure 400 {object} ErrorBody
// @Failure 503 {object} ErrorBody
// @Router /talent-bank [get]
func (a *API) ListTalentBankHandler(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	perPage, err := queryInt(r, "perPage")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	strategy, err := talentbank.ParseStrategy(r.URL.Query().Get("mode"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	q := talentbank.Query{Search: r.URL.Query().Get("search"), Page: page, PerPage: perPage}
	res, err := a.talentBank.List(r.Context(), q, strategy)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// AddCandidateHandler adds an existing candidate to the talent bank.
// @Summary Add a candidate to the talent bank
// @Tags talent-bank
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddCandidateRequest true "Candidate"
// @Success 201 {object} storage.Candidate
// @Failure 400 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Failure 409 {object} ErrorBody "Already a member"
// @Failure 503 {object} ErrorBody
// @Router /talent-bank [post]
func (a *API) AddCandidateHandler(w http.ResponseWriter, r *http.Request) {
	var req AddCandidateRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	c, err := a.talentBank.AddCandidate(r.Context(), req.CandidateID, req.Notes)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// MembershipHandler reports whether the candidate is in the talent bank.
// @Summary Check talent-bank membership
// @Tags talent-bank
// @Produce json
// @Security BearerAuth
// @Param candidateID path int true "Candidate ID"
// @Success 200 {object} MembershipResponse
// @Failure 400 {object} ErrorBody
// @Failure 503 {object} ErrorBody
// @Router /talent-bank/candidates/{candidateID}/exists [get]
func (a *API) MembershipHandler(w http.ResponseWriter, r *http.Request) {
	candidateID, err := pathID(r, "candidateID")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	ok, err := a.talentBank.CheckCandidateExists(r.Context(), candidateID)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MembershipResponse{Exists: ok})
}

// UpdateCandidateNotesHandler replaces the talent-bank notes of a candidate.
// @Summary Update notes by candidate
// @Tags talent-bank
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param candidateID path int true "Candidate ID"
// @Param request body UpdateNotesRequest true "Notes"
// @Success 200 {object} storage.Candidate
// @Failure 400 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Failure 503 {object} ErrorBody
// @Router /talent-bank/candidates/{candidateID}/notes [patch]
func (a *API) UpdateCandidateNotesHandler(w http.ResponseWriter, r *http.Request) {
	candidateID, err := pathID(r, "candidateID")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	notes, err := decodeNotes(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	c, err := a.talentBank.UpdateNotes(r.Context(), candidateID, notes)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// UpdateEntryNotesHandler replaces the notes of a talent-bank entry.
// @Summary Update notes by entry
// @Tags talent-bank
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entryID path int true "Talent-bank entry ID"
// @Param request body UpdateNotesRequest true "Notes"
// @Success 200 {object} storage.Candidate
// @Failure 400 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Failure 503 {object} ErrorBody
// @Router /talent-bank/entries/{entryID}/notes [patch]
func (a *API) UpdateEntryNotesHandler(w http.ResponseWriter, r *http.Request) {
	entryID, err := pathID(r, "entryID")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	notes, err := decodeNotes(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	c, err := a.talentBank.UpdateNotesByEntry(r.Context(), entryID, notes)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func decodeNotes(r *http.Request) (string, error) {
	var req UpdateNotesRequest
	if err := decodeJSON(r, &req); err != nil {
		return "", err
	}
	if req.Notes == nil {
		return "", &apperr.ValidationError{Field: "notes", Reason: "is required"}
	}
	return *req.Notes, nil
}

// RemoveCandidateHandler drops a candidate from the talent bank.
// @Summary Remove a candidate from the talent bank
// @Description Candidates that have received suggestions cannot be removed.
// @Tags talent-bank
// @Security BearerAuth
// @Param candidateID path int true "Candidate ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Failure 409 {object} ErrorBody
// @Failure 503 {object} ErrorBody
// @Router /talent-bank/candidates/{candidateID} [delete]
func (a *API) RemoveCandidateHandler(w http.ResponseWriter, r *http.Request) {
	candidateID, err := pathID(r, "candidateID")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := a.talentBank.RemoveCandidate(r.Context(), candidateID); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
