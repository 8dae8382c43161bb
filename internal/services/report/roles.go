package report

import (
	"strings"

	"github.com/svenskadata/bolagskollen/internal/models"
)

// RoleGroup is a bucket of signatories sharing a role category
type RoleGroup struct {
	Category string
	People   []models.Person
}

// roleCategories maps Swedish role-text substrings to display categories,
// checked in order so "styrelsens ordförande" lands under Chair, not Board.
var roleCategories = []struct {
	category   string
	substrings []string
}{
	{"CEO", []string{"verkställande direktör", "vd"}},
	{"Chair", []string{"ordförande"}},
	{"Deputies", []string{"suppleant"}},
	{"Auditors", []string{"revisor"}},
	{"Board", []string{"styrelseledamot", "ledamot"}},
}

// GroupByRole buckets signatories into role categories in a fixed display
// order, unmatched roles last under Other. Empty buckets are omitted.
func GroupByRole(people []models.Person) []RoleGroup {
	buckets := map[string][]models.Person{}
	for _, p := range people {
		buckets[roleCategory(p.Role)] = append(buckets[roleCategory(p.Role)], p)
	}

	var groups []RoleGroup
	for _, rc := range roleCategories {
		if members, ok := buckets[rc.category]; ok {
			groups = append(groups, RoleGroup{Category: rc.category, People: members})
		}
	}
	if members, ok := buckets["Other"]; ok {
		groups = append(groups, RoleGroup{Category: "Other", People: members})
	}
	return groups
}

func roleCategory(role string) string {
	lower := strings.ToLower(role)
	for _, rc := range roleCategories {
		for _, sub := range rc.substrings {
			if strings.Contains(lower, sub) {
				return rc.category
			}
		}
	}
	return "Other"
}
