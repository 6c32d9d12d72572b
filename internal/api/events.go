package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"talent-bank/internal/apperr"
)

// SuggestionEvent is what the candidate portal posts when a candidate opens,
// applies to or dismisses a suggested job.
type SuggestionEvent struct {
	State      string     `json:"state" enums:"viewed,applied,discarded"`
	OccurredAt *time.Time `json:"occurredAt,omitempty"`
	Source     string     `json:"source,omitempty"`
}

const suggestionEventSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["state"],
	"additionalProperties": false,
	"properties": {
		"state": {"type": "string", "enum": ["viewed", "applied", "discarded"]},
		"occurredAt": {"type": "string", "format": "date-time"},
		"source": {"type": "string", "maxLength": 64}
	}
}`

var eventSchema = mustSchema(suggestionEventSchema)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(err)
	}
	return s
}

// decodeEvent validates the request body against the event schema before
// decoding it.
func decodeEvent(r *http.Request) (*SuggestionEvent, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, &apperr.ValidationError{Field: "body", Reason: err.Error()}
	}

	res, err := eventSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, &apperr.ValidationError{Field: "body", Reason: err.Error()}
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, &apperr.ValidationError{Field: "body", Reason: strings.Join(msgs, "; ")}
	}

	var ev SuggestionEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, &apperr.ValidationError{Field: "body", Reason: err.Error()}
	}
	return &ev, nil
}
