package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
)

// TeamSource names how the team was resolved.
type TeamSource string

const (
	TeamFromAnchor    TeamSource = "anchor"
	TeamFromNextToken TeamSource = "next-token"
	TeamFromCell      TeamSource = "cell"
	TeamFromNothing   TeamSource = "not-found"
)

var (
	nonWord = regexp.MustCompile(`[^\p{L}\p{N}\p{M}_]+`)
	// Club designators and disability-category wording that sit between
	// the team header and the team name on federation forms.
	teamBoilerplate = regexp.MustCompile(`[^\p{L}\p{N}\p{M}_]+|_+|ХК|СХК|ДЮСХК|Хоккейный клуб` +
		`|по незрячему хоккею|по специальному хоккею|Спец хоккей|по специальному|по следж-хоккею`)
)

// ResolveTeam returns the team name of the document. The free text is
// searched first: after the first team header token the anchor rules
// are tried in order, then the next token is taken as the name. If the
// header is missing or a rule looks past the end of the text, table
// cells containing the header are used instead.
func ResolveTeam(text []string, columns []models.Column, pattern *regexp.Regexp, catalog Catalog) (string, TeamSource) {
	if team, source, ok := teamFromText(text, pattern, catalog); ok {
		return team, source
	}
	if team, ok := teamFromCells(columns, pattern); ok {
		return team, TeamFromCell
	}
	return models.TeamNotFound, TeamFromNothing
}

func teamFromText(text []string, pattern *regexp.Regexp, catalog Catalog) (string, TeamSource, bool) {
	tokens := strings.Fields(teamBoilerplate.ReplaceAllString(strings.Join(text, " "), " "))

	header := -1
	for idx, token := range tokens {
		if pattern.MatchString(token) {
			header = idx
			break
		}
	}
	if header < 0 {
		return "", "", false
	}

	for _, rule := range catalog.Rules {
		pos := header + rule.Offset
		if pos >= len(tokens) {
			return "", "", false
		}
		if tokens[pos] == rule.Fragment {
			return rule.Team, TeamFromAnchor, true
		}
	}

	if header+1 >= len(tokens) {
		return "", "", false
	}
	return capitalize(tokens[header+1]), TeamFromNextToken, true
}

func teamFromCells(columns []models.Column, pattern *regexp.Regexp) (string, bool) {
	for _, column := range columns {
		for _, cell := range column.Cells {
			if !pattern.MatchString(cell) {
				continue
			}
			tokens := strings.Fields(nonWord.ReplaceAllString(cell, " "))
			if len(tokens) < 2 {
				continue
			}
			return capitalize(tokens[1]), true
		}
	}
	return "", false
}
