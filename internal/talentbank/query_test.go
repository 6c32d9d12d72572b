package talentbank

import (
	"fmt"
	"testing"

	"talent-bank/internal/storage"
)

func directory(n int) []*storage.Candidate {
	all := make([]*storage.Candidate, 0, n)
	for i := 1; i <= n; i++ {
		all = append(all, &storage.Candidate{
			ID:     int64(i),
			Name:   fmt.Sprintf("Candidate %03d", i),
			Email:  fmt.Sprintf("c%03d@example.com", i),
			Skills: []string{"Go"},
		})
	}
	return all
}

func TestPaginateInMemoryPages(t *testing.T) {
	all := directory(120)

	cases := []struct {
		page, perPage int
		wantLen       int
		wantFirst     int64
		wantLast      int
	}{
		{page: 2, perPage: 50, wantLen: 50, wantFirst: 51, wantLast: 3},
		{page: 3, perPage: 50, wantLen: 20, wantFirst: 101, wantLast: 3},
		{page: 4, perPage: 50, wantLen: 0, wantLast: 3},
		{page: 0, perPage: 0, wantLen: DefaultPerPage, wantFirst: 1, wantLast: 8},
		{page: 1, perPage: 500, wantLen: MaxPerPage, wantFirst: 1, wantLast: 2},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("page%d_per%d", tc.page, tc.perPage), func(t *testing.T) {
			got := PaginateInMemory(all, Query{Page: tc.page, PerPage: tc.perPage})
			if got.Total != 120 {
				t.Fatalf("total = %d", got.Total)
			}
			if len(got.Entries) != tc.wantLen {
				t.Fatalf("entries = %d, want %d", len(got.Entries), tc.wantLen)
			}
			if tc.wantLen > 0 && got.Entries[0].ID != tc.wantFirst {
				t.Fatalf("first entry = %d, want %d", got.Entries[0].ID, tc.wantFirst)
			}
			if got.LastPage != tc.wantLast {
				t.Fatalf("lastPage = %d, want %d", got.LastPage, tc.wantLast)
			}
		})
	}
}

func TestPaginateInMemoryEmpty(t *testing.T) {
	got := PaginateInMemory(nil, Query{Page: 1, PerPage: 10})
	if got.Entries == nil || len(got.Entries) != 0 {
		t.Fatalf("expected empty, non-nil entries")
	}
	if got.Total != 0 || got.LastPage != 1 {
		t.Fatalf("unexpected page: %+v", got)
	}
}

func TestPaginateInMemorySearch(t *testing.T) {
	all := []*storage.Candidate{
		{ID: 1, Name: "Ada Lovelace", Email: "ada@example.com", Skills: []string{"Go"}},
		{ID: 2, Name: "Grace Hopper", Email: "grace@navy.mil", Skills: []string{"COBOL"}},
		{ID: 3, Name: "Linus", Email: "linus@example.com", Skills: []string{"C", "Kubernetes"}},
	}

	cases := map[string][]int64{
		"ADA":     {1},
		"example": {1, 3},
		"cobol":   {2},
		"kube":    {3},
		"  ":      {1, 2, 3},
		"missing": {},
	}
	for search, want := range cases {
		got := PaginateInMemory(all, Query{Search: search, Page: 1, PerPage: 10})
		if len(got.Entries) != len(want) || got.Total != len(want) {
			t.Fatalf("search %q: got %d entries, want %d", search, len(got.Entries), len(want))
		}
		for i, id := range want {
			if got.Entries[i].ID != id {
				t.Fatalf("search %q: entry %d = %d, want %d", search, i, got.Entries[i].ID, id)
			}
		}
	}
}

func TestQueryWithSearchResetsPage(t *testing.T) {
	q := Query{Page: 3, PerPage: 50}.WithSearch("go")
	if q.Page != 1 || q.Search != "go" || q.PerPage != 50 {
		t.Fatalf("unexpected query: %+v", q)
	}
}

func TestParseStrategy(t *testing.T) {
	for in, want := range map[string]Strategy{"": ServerPaged, "server": ServerPaged, "Memory": InMemory} {
		got, err := ParseStrategy(in)
		if err != nil || got != want {
			t.Fatalf("ParseStrategy(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseStrategy("both"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
