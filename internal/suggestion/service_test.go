package suggestion

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"talent-bank/internal/apperr"
	"talent-bank/internal/notify"
	"talent-bank/internal/storage"
	"talent-bank/pkg/logging"
)

type memStore struct {
	mu          sync.Mutex
	candidates  map[int64]*storage.Candidate
	jobs        map[int64]*storage.JobRequisition
	suggestions map[uuid.UUID]*storage.Suggestion

	// hidePairs makes GetSuggestionByPair miss, as a concurrent request would.
	hidePairs     bool
	insertErr     error
	conflictsLeft int
}

func newMemStore() *memStore {
	return &memStore{
		candidates: map[int64]*storage.Candidate{
			1: {ID: 1, Name: "Ada", Email: "ada@example.com", Skills: []string{"Go"}},
		},
		jobs: map[int64]*storage.JobRequisition{
			10: {ID: 10, Title: "Backend", Status: storage.JobStatusActive, RequiredSkills: []string{"Go"}},
			11: {ID: 11, Title: "Old", Status: storage.JobStatusClosed},
		},
		suggestions: map[uuid.UUID]*storage.Suggestion{},
	}
}

func (m *memStore) GetTalentBankCandidate(_ context.Context, id int64) (*storage.Candidate, error) {
	if c, ok := m.candidates[id]; ok {
		return c, nil
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) GetJob(_ context.Context, id int64) (*storage.JobRequisition, error) {
	if j, ok := m.jobs[id]; ok {
		return j, nil
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) InsertSuggestion(_ context.Context, s *storage.Suggestion) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return m.insertErr
	}
	for _, existing := range m.suggestions {
		if existing.CandidateID == s.CandidateID && existing.JobID == s.JobID {
			return storage.ErrDuplicate
		}
	}
	cp := *s
	m.suggestions[s.ID] = &cp
	return nil
}

func (m *memStore) GetSuggestion(_ context.Context, id uuid.UUID) (*storage.Suggestion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.suggestions[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) GetSuggestionByPair(_ context.Context, candidateID, jobID int64) (*storage.Suggestion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hidePairs {
		return nil, storage.ErrNotFound
	}
	for _, s := range m.suggestions {
		if s.CandidateID == candidateID && s.JobID == jobID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) ListSuggestionsByCandidate(_ context.Context, candidateID int64) ([]*storage.Suggestion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []*storage.Suggestion
	for _, s := range m.suggestions {
		if s.CandidateID == candidateID {
			cp := *s
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (m *memStore) ListUndelivered(_ context.Context, limit int) ([]*storage.Suggestion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []*storage.Suggestion
	for _, s := range m.suggestions {
		if !s.NotificationSent || (s.EmailRequested && !s.EmailSent) {
			cp := *s
			res = append(res, &cp)
		}
	}
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (m *memStore) UpdateSuggestionState(_ context.Context, id uuid.UUID, from, to storage.SuggestionState, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.suggestions[id]
	if !ok {
		return storage.ErrNotFound
	}
	if m.conflictsLeft > 0 {
		m.conflictsLeft--
		return storage.ErrConflict
	}
	if s.State != from {
		return storage.ErrConflict
	}
	s.State = to
	s.UpdatedAt = at
	return nil
}

func (m *memStore) UpdateDeliveryFlags(_ context.Context, id uuid.UUID, notificationSent, emailSent bool, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.suggestions[id]
	if !ok {
		return storage.ErrNotFound
	}
	s.NotificationSent = notificationSent
	s.EmailSent = emailSent
	s.UpdatedAt = at
	return nil
}

func (m *memStore) DeleteSuggestion(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.suggestions[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.suggestions, id)
	return nil
}

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.suggestions)
}

type stubDispatcher struct {
	mu        sync.Mutex
	inAppOK   bool
	emailOK   bool
	calls     int
	emailAsks []bool
}

func (d *stubDispatcher) Dispatch(_ context.Context, _ *storage.Suggestion, _ *storage.Candidate, _ *storage.JobRequisition, sendEmail bool) notify.Outcome {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	d.emailAsks = append(d.emailAsks, sendEmail)
	return notify.Outcome{NotificationSent: d.inAppOK, EmailSent: sendEmail && d.emailOK}
}

func (d *stubDispatcher) Redeliver(_ context.Context, s *storage.Suggestion, _ *storage.Candidate, _ *storage.JobRequisition) notify.Outcome {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	return notify.Outcome{
		NotificationSent: s.NotificationSent || d.inAppOK,
		EmailSent:        s.EmailSent || (s.EmailRequested && d.emailOK),
	}
}

func newService(store *memStore, d *stubDispatcher) *Service {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return NewService(store, d, logging.NewNop(), WithClock(func() time.Time { return fixed }))
}

func TestCreateThenDuplicate(t *testing.T) {
	store := newMemStore()
	svc := newService(store, &stubDispatcher{inAppOK: true, emailOK: true})
	ctx := context.Background()
	in := CreateInput{CandidateID: 1, JobID: 10, Note: " strong Go background ", SendEmail: true, SuggestedBy: "recruiter-1"}

	first, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	if first.State != storage.StatePending {
		t.Fatalf("expected pending, got %s", first.State)
	}
	if first.Notes != "strong Go background" || first.SuggestedBy != "recruiter-1" {
		t.Fatalf("unexpected suggestion: %+v", first)
	}
	if !first.NotificationSent || !first.EmailSent {
		t.Fatalf("expected both flags, got %+v", first)
	}

	_, err = svc.Create(ctx, in)
	var dup *apperr.DuplicateSuggestionError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateSuggestionError, got %v", err)
	}
	if store.count() != 1 {
		t.Fatalf("expected exactly one persisted suggestion, got %d", store.count())
	}
}

func TestCreateRejectsResuggestingDiscarded(t *testing.T) {
	store := newMemStore()
	svc := newService(store, &stubDispatcher{inAppOK: true})
	ctx := context.Background()
	in := CreateInput{CandidateID: 1, JobID: 10, SuggestedBy: "r"}

	sg, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.ApplyTransition(ctx, sg.ID, storage.StateDiscarded); err != nil {
		t.Fatalf("discard: %v", err)
	}

	_, err = svc.Create(ctx, in)
	var dup *apperr.DuplicateSuggestionError
	if !errors.As(err, &dup) {
		t.Fatalf("expected duplicate for discarded pair, got %v", err)
	}
}

func TestConcurrentCreateFirstInsertWins(t *testing.T) {
	store := newMemStore()
	store.hidePairs = true
	svc := newService(store, &stubDispatcher{inAppOK: true})
	in := CreateInput{CandidateID: 1, JobID: 10, SuggestedBy: "r"}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(context.Background(), in)
		}(i)
	}
	wg.Wait()

	var ok, dups int
	for _, err := range errs {
		var dup *apperr.DuplicateSuggestionError
		switch {
		case err == nil:
			ok++
		case errors.As(err, &dup):
			dups++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || dups != 1 {
		t.Fatalf("expected one success and one duplicate, got %d/%d", ok, dups)
	}
	if store.count() != 1 {
		t.Fatalf("expected one stored suggestion, got %d", store.count())
	}
}

func TestCreateEmailFailureKeepsSuggestion(t *testing.T) {
	store := newMemStore()
	svc := newService(store, &stubDispatcher{inAppOK: true, emailOK: false})

	sg, err := svc.Create(context.Background(), CreateInput{CandidateID: 1, JobID: 10, SendEmail: true, SuggestedBy: "r"})
	if err != nil {
		t.Fatalf("create must not fail on email delivery: %v", err)
	}
	if !sg.NotificationSent || sg.EmailSent {
		t.Fatalf("expected {true,false}, got {%v,%v}", sg.NotificationSent, sg.EmailSent)
	}

	stored, err := store.GetSuggestion(context.Background(), sg.ID)
	if err != nil {
		t.Fatalf("suggestion must persist: %v", err)
	}
	if stored.State != storage.StatePending || !stored.NotificationSent || stored.EmailSent {
		t.Fatalf("unexpected stored suggestion: %+v", stored)
	}
}

func TestCreateWithoutEmail(t *testing.T) {
	d := &stubDispatcher{inAppOK: false, emailOK: true}
	svc := newService(newMemStore(), d)

	sg, err := svc.Create(context.Background(), CreateInput{CandidateID: 1, JobID: 10, SendEmail: false, SuggestedBy: "r"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sg.EmailSent || sg.EmailRequested {
		t.Fatalf("email must not be sent or requested: %+v", sg)
	}
	if sg.NotificationSent {
		t.Fatalf("notification flag must mirror the in-app attempt")
	}
	if len(d.emailAsks) != 1 || d.emailAsks[0] {
		t.Fatalf("dispatcher should be told not to email, got %v", d.emailAsks)
	}
}

func TestCreateNotFound(t *testing.T) {
	svc := newService(newMemStore(), &stubDispatcher{})
	ctx := context.Background()

	cases := map[string]CreateInput{
		"candidate": {CandidateID: 99, JobID: 10, SuggestedBy: "r"},
		"job":       {CandidateID: 1, JobID: 99, SuggestedBy: "r"},
	}
	for entity, in := range cases {
		_, err := svc.Create(ctx, in)
		var nf *apperr.NotFoundError
		if !errors.As(err, &nf) || nf.Entity != entity {
			t.Fatalf("expected NotFoundError for %s, got %v", entity, err)
		}
	}
}

func TestCreateValidation(t *testing.T) {
	d := &stubDispatcher{}
	svc := newService(newMemStore(), d)

	_, err := svc.Create(context.Background(), CreateInput{CandidateID: 1, JobID: 10})
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error without recruiter, got %v", err)
	}

	_, err = svc.Create(context.Background(), CreateInput{CandidateID: 1, JobID: 11, SuggestedBy: "r"})
	var ce *apperr.ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected conflict for closed job, got %v", err)
	}
	if d.calls != 0 {
		t.Fatalf("dispatcher must not run on rejected input")
	}
}

func TestCreateTransportError(t *testing.T) {
	store := newMemStore()
	store.insertErr = context.DeadlineExceeded
	d := &stubDispatcher{}
	svc := newService(store, d)

	_, err := svc.Create(context.Background(), CreateInput{CandidateID: 1, JobID: 10, SuggestedBy: "r"})
	var te *apperr.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if d.calls != 0 || store.count() != 0 {
		t.Fatalf("nothing should have happened")
	}
}

func TestDiscardTwiceIsIdempotent(t *testing.T) {
	store := newMemStore()
	svc := newService(store, &stubDispatcher{inAppOK: true})
	ctx := context.Background()

	sg, err := svc.Create(ctx, CreateInput{CandidateID: 1, JobID: 10, SuggestedBy: "r"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for i := 0; i < 2; i++ {
		got, err := svc.ApplyTransition(ctx, sg.ID, storage.StateDiscarded)
		if err != nil {
			t.Fatalf("discard #%d: %v", i+1, err)
		}
		if got.State != storage.StateDiscarded {
			t.Fatalf("expected discarded, got %s", got.State)
		}
	}

	if _, err := svc.ApplyTransition(ctx, sg.ID, storage.StatePending); err == nil {
		t.Fatalf("expected error moving back to pending")
	}
	stored, _ := store.GetSuggestion(ctx, sg.ID)
	if stored.State != storage.StateDiscarded {
		t.Fatalf("suggestion reverted to %s", stored.State)
	}
}

func TestTransitionsThroughLifecycle(t *testing.T) {
	store := newMemStore()
	svc := newService(store, &stubDispatcher{inAppOK: true})
	ctx := context.Background()

	sg, err := svc.Create(ctx, CreateInput{CandidateID: 1, JobID: 10, SuggestedBy: "r"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	steps := []struct {
		report storage.SuggestionState
		want   storage.SuggestionState
	}{
		{storage.StateViewed, storage.StateViewed},
		{storage.StateApplied, storage.StateApplied},
		{storage.StateViewed, storage.StateApplied},
	}
	for _, step := range steps {
		got, err := svc.ApplyTransition(ctx, sg.ID, step.report)
		if err != nil {
			t.Fatalf("report %s: %v", step.report, err)
		}
		if got.State != step.want {
			t.Fatalf("report %s: got %s, want %s", step.report, got.State, step.want)
		}
	}

	_, err = svc.ApplyTransition(ctx, sg.ID, storage.StateDiscarded)
	var it *apperr.InvalidTransitionError
	if !errors.As(err, &it) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
}

func TestTransitionRetriesOnConflict(t *testing.T) {
	store := newMemStore()
	svc := newService(store, &stubDispatcher{inAppOK: true})
	ctx := context.Background()

	sg, err := svc.Create(ctx, CreateInput{CandidateID: 1, JobID: 10, SuggestedBy: "r"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	store.conflictsLeft = 1

	got, err := svc.ApplyTransition(ctx, sg.ID, storage.StateApplied)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.State != storage.StateApplied {
		t.Fatalf("expected applied after retry, got %s", got.State)
	}
}

func TestTransitionUnknownSuggestion(t *testing.T) {
	svc := newService(newMemStore(), &stubDispatcher{})

	_, err := svc.ApplyTransition(context.Background(), uuid.New(), storage.StateViewed)
	var nf *apperr.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestListForCandidateNewestFirst(t *testing.T) {
	store := newMemStore()
	store.jobs[12] = &storage.JobRequisition{ID: 12, Title: "Another", Status: storage.JobStatusActive}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := now
	svc := NewService(store, &stubDispatcher{inAppOK: true}, logging.NewNop(),
		WithClock(func() time.Time { return clock }))
	ctx := context.Background()

	older, err := svc.Create(ctx, CreateInput{CandidateID: 1, JobID: 10, SuggestedBy: "r"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	clock = now.Add(time.Hour)
	newer, err := svc.Create(ctx, CreateInput{CandidateID: 1, JobID: 12, SuggestedBy: "r"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := svc.ListForCandidate(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != newer.ID || list[1].ID != older.ID {
		t.Fatalf("unexpected order: %+v", list)
	}

	empty, err := svc.ListForCandidate(ctx, 42)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty list, got %v, %v", empty, err)
	}
}

func TestStatus(t *testing.T) {
	svc := newService(newMemStore(), &stubDispatcher{inAppOK: true})
	ctx := context.Background()

	got, err := svc.Status(ctx, 1, 10)
	if err != nil || got != nil {
		t.Fatalf("expected nil status, got %v, %v", got, err)
	}

	sg, err := svc.Create(ctx, CreateInput{CandidateID: 1, JobID: 10, SuggestedBy: "r"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err = svc.Status(ctx, 1, 10)
	if err != nil || got == nil || got.ID != sg.ID {
		t.Fatalf("expected suggestion %s, got %v, %v", sg.ID, got, err)
	}
}

func TestRemove(t *testing.T) {
	store := newMemStore()
	svc := newService(store, &stubDispatcher{inAppOK: true})
	ctx := context.Background()

	sg, err := svc.Create(ctx, CreateInput{CandidateID: 1, JobID: 10, SuggestedBy: "r"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Remove(ctx, sg.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	err = svc.Remove(ctx, sg.ID)
	var nf *apperr.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError on second remove, got %v", err)
	}
}

func TestRedeliverMergesFlags(t *testing.T) {
	store := newMemStore()
	d := &stubDispatcher{inAppOK: true, emailOK: false}
	svc := newService(store, d)
	ctx := context.Background()

	sg, err := svc.Create(ctx, CreateInput{CandidateID: 1, JobID: 10, SendEmail: true, SuggestedBy: "r"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	pending, err := svc.Undelivered(ctx, 10)
	if err != nil || len(pending) != 1 || pending[0].ID != sg.ID {
		t.Fatalf("expected the suggestion to be undelivered, got %v, %v", pending, err)
	}

	d.emailOK = true
	got, err := svc.Redeliver(ctx, pending[0])
	if err != nil {
		t.Fatalf("redeliver: %v", err)
	}
	if !got.NotificationSent || !got.EmailSent {
		t.Fatalf("expected both flags after redelivery, got %+v", got)
	}
	if left, _ := svc.Undelivered(ctx, 10); len(left) != 0 {
		t.Fatalf("expected nothing left to deliver, got %d", len(left))
	}
}
