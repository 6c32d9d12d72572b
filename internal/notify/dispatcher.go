// Package notify delivers job-suggestion notifications to candidates.
//
// Every delivery is best-effort: the in-app record and the email are
// attempted independently and concurrently, and their outcome is reported as
// two flags rather than as an error.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"talent-bank/internal/apperr"
	"talent-bank/internal/storage"
	"talent-bank/pkg/logging"
)

const TypeJobSuggestion = "job_suggestion"

// Outcome is the result of one dispatch.
type Outcome struct {
	NotificationSent bool `json:"notificationSent"`
	EmailSent        bool `json:"emailSent"`
}

// InAppSender stores an in-app notification for a candidate.
type InAppSender interface {
	Notify(ctx context.Context, n *storage.Notification) error
}

// EmailSender sends a single email.
type EmailSender interface {
	Send(ctx context.Context, req SendEmailRequest) (*SendEmailResult, error)
}

var errEmailDisabled = errors.New("email delivery is not configured")

type Dispatcher struct {
	inApp InAppSender
	email EmailSender
	log   *logging.Logger
	clock func() time.Time
}

// NewDispatcher builds a Dispatcher. email may be nil, in which case every
// requested email is reported as not sent.
func NewDispatcher(inApp InAppSender, email EmailSender, log *logging.Logger) *Dispatcher {
	return &Dispatcher{
		inApp: inApp,
		email: email,
		log:   log.With("component", "notify"),
		clock: time.Now,
	}
}

// Dispatch creates the in-app notification and, when sendEmail is set, sends
// the email. Both attempts finish before Dispatch returns.
func (d *Dispatcher) Dispatch(ctx context.Context, s *storage.Suggestion, c *storage.Candidate, j *storage.JobRequisition, sendEmail bool) Outcome {
	return d.deliver(ctx, s, c, j, true, sendEmail)
}

// Redeliver retries only the channels that previously failed. Flags that are
// already true stay true.
func (d *Dispatcher) Redeliver(ctx context.Context, s *storage.Suggestion, c *storage.Candidate, j *storage.JobRequisition) Outcome {
	out := d.deliver(ctx, s, c, j, !s.NotificationSent, s.EmailRequested && !s.EmailSent)
	out.NotificationSent = out.NotificationSent || s.NotificationSent
	out.EmailSent = out.EmailSent || s.EmailSent
	return out
}

func (d *Dispatcher) deliver(ctx context.Context, s *storage.Suggestion, c *storage.Candidate, j *storage.JobRequisition, inApp, email bool) Outcome {
	var (
		out Outcome
		g   errgroup.Group
	)
	log := d.log.With("suggestion_id", s.ID.String(), "candidate_id", c.ID, "job_id", j.ID)

	// Goroutines never return an error so one failing channel cannot cancel
	// the other.
	if inApp {
		g.Go(func() error {
			if err := d.sendInApp(ctx, s, c, j); err != nil {
				log.Warn("in-app notification failed", "err", &apperr.DeliveryError{Channel: "in-app", Err: err})
				return nil
			}
			out.NotificationSent = true
			return nil
		})
	}
	if email {
		g.Go(func() error {
			if err := d.sendEmail(ctx, s, c, j); err != nil {
				log.Warn("email notification failed", "err", &apperr.DeliveryError{Channel: "email", Err: err})
				return nil
			}
			out.EmailSent = true
			return nil
		})
	}
	_ = g.Wait()

	log.Info("suggestion dispatched", "notification_sent", out.NotificationSent, "email_sent", out.EmailSent)
	return out
}

func (d *Dispatcher) sendInApp(ctx context.Context, s *storage.Suggestion, c *storage.Candidate, j *storage.JobRequisition) error {
	if d.inApp == nil {
		return errors.New("in-app delivery is not configured")
	}
	data, err := json.Marshal(map[string]any{
		"suggestionId": s.ID.String(),
		"jobId":        j.ID,
		"jobTitle":     j.Title,
	})
	if err != nil {
		return err
	}
	return d.inApp.Notify(ctx, &storage.Notification{
		ID:          uuid.New(),
		CandidateID: c.ID,
		Type:        TypeJobSuggestion,
		Title:       "New job suggestion",
		Message:     suggestionMessage(j, s.Notes),
		Data:        data,
		CreatedAt:   d.clock().UTC(),
	})
}

func (d *Dispatcher) sendEmail(ctx context.Context, s *storage.Suggestion, c *storage.Candidate, j *storage.JobRequisition) error {
	if d.email == nil {
		return errEmailDisabled
	}
	if strings.TrimSpace(c.Email) == "" {
		return fmt.Errorf("candidate %d has no email address", c.ID)
	}
	_, err := d.email.Send(ctx, SendEmailRequest{
		To:         []EmailAddress{{Email: c.Email, Name: c.Name}},
		Subject:    fmt.Sprintf("A new opportunity for you: %s", j.Title),
		Text:       emailBody(c, j, s.Notes),
		Categories: []string{TypeJobSuggestion},
		CustomArgs: map[string]string{"suggestion_id": s.ID.String()},
	})
	return err
}

func suggestionMessage(j *storage.JobRequisition, note string) string {
	msg := fmt.Sprintf("A recruiter thinks %s", j.Title)
	if j.Location != "" {
		msg += fmt.Sprintf(" (%s)", j.Location)
	}
	msg += " is a good fit for you."
	if note = strings.TrimSpace(note); note != "" {
		msg += " " + note
	}
	return msg
}

func emailBody(c *storage.Candidate, j *storage.JobRequisition, note string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", c.Name)
	b.WriteString(suggestionMessage(j, ""))
	b.WriteString("\n")
	if note = strings.TrimSpace(note); note != "" {
		fmt.Fprintf(&b, "\nNote from the recruiter:\n%s\n", note)
	}
	b.WriteString("\nSign in to your account to view the position and apply.\n")
	return b.String()
}
