package view

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/contactbook/internal/models"
)

func sampleContacts() []models.Contact {
	return []models.Contact{
		{ID: "1", Name: "John Doe", Email: "john.doe@example.com", Tags: []string{"developer", "frontend"}},
		{ID: "2", Name: "Jane Roe", Email: "jane@corp.io", Tags: []string{"backend"}},
		{ID: "3", Name: "Alice", Email: "alice.JOHNSON@mail.com", Tags: []string{"developer", "backend"}},
		{ID: "4", Name: "Bob", Email: "bob@example.com", Tags: []string{}},
	}
}

func ids(contacts []models.Contact) []string {
	out := make([]string, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, c.ID)
	}
	return out
}

func TestVisible(t *testing.T) {
	tests := []struct {
		name   string
		search string
		filter string
		want   []string
	}{
		{name: "no constraints", filter: models.FilterAll, want: []string{"1", "2", "3", "4"}},
		{name: "empty filter means all", want: []string{"1", "2", "3", "4"}},
		{name: "search by name case insensitive", search: "JOHN", filter: models.FilterAll, want: []string{"1", "3"}},
		{name: "search by email", search: "corp.io", filter: models.FilterAll, want: []string{"2"}},
		{name: "tag filter", filter: "developer", want: []string{"1", "3"}},
		{name: "search and tag", search: "example", filter: "developer", want: []string{"1"}},
		{name: "unknown tag", filter: "designer", want: []string{}},
		{name: "no match", search: "zzz", filter: models.FilterAll, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Visible(sampleContacts(), tt.search, tt.filter)))
		})
	}
}

// TestVisible_MatchesDefinition сверяет Visible с прямым определением на наборе комбинаций
func TestVisible_MatchesDefinition(t *testing.T) {
	names := []string{"Ann", "anna", "BOB", "Carl", "Dana Ann"}
	tagSets := [][]string{{}, {"developer"}, {"frontend", "developer"}, {"backend"}}

	var contacts []models.Contact
	for i := 0; i < 40; i++ {
		name := names[i%len(names)]
		contacts = append(contacts, models.Contact{
			ID:    fmt.Sprint(i),
			Name:  name,
			Email: fmt.Sprintf("%s%d@Example.com", strings.ToLower(name[:1]), i),
			Tags:  tagSets[(i/3)%len(tagSets)],
		})
	}

	for _, search := range []string{"", "ann", "ANN", "b", "example", "x", "3@"} {
		for _, filter := range []string{models.FilterAll, "developer", "frontend", "backend", "none"} {
			got := Visible(contacts, search, filter)

			var want []models.Contact
			for _, c := range contacts {
				s := strings.ToLower(search)
				okSearch := s == "" ||
					strings.Contains(strings.ToLower(c.Name), s) ||
					strings.Contains(strings.ToLower(c.Email), s)
				okFilter := filter == models.FilterAll || c.HasTag(filter)
				if okSearch && okFilter {
					want = append(want, c)
				}
			}

			assert.Equal(t, ids(want), ids(got), "search=%q filter=%q", search, filter)
			if filter != models.FilterAll {
				for _, c := range got {
					assert.True(t, c.HasTag(filter))
				}
			}
		}
	}
}
