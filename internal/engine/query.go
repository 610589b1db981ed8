package engine

import (
	"regexp"
	"strings"
)

// locationClause captures a trailing "in <city>" style phrase so "jobs in
// Paris" filters by city instead of searching for the literal word "paris".
var locationClause = regexp.MustCompile(`(?i)\s(?:in|à|en|dans|في)\s+([\p{L}][\p{L} -]*)\s*$`)

// queryStopwords are the job-vocabulary and filler tokens that carry no
// search signal on their own.
var queryStopwords = map[string]struct{}{}

func init() {
	words := []string{
		"job", "jobs", "role", "roles", "opening", "openings",
		"position", "positions", "hiring", "vacancy", "vacancies",
		"career", "careers", "offre", "offres", "poste", "postes",
		"emploi", "recrutement", "وظيفة", "وظائف", "فرصة", "توظيف",
		"show", "me", "any", "some", "all", "what", "which", "are",
		"there", "open", "available", "you", "have", "do", "list",
		"find", "looking", "for", "please", "the", "a", "an", "is",
		"des", "les", "quels", "quelles", "sont", "cherche", "je",
		"un", "une", "هل", "لديكم", "عن", "ابحث", "ما", "هي",
	}
	for _, w := range words {
		queryStopwords[w] = struct{}{}
	}
}

// parseQuery splits a job query into ranking inputs: free keywords and an
// optional location filter.
func parseQuery(text string) (keywords, location string) {
	text = strings.TrimSpace(text)
	if m := locationClause.FindStringSubmatch(text); m != nil {
		location = strings.TrimSpace(m[1])
		text = text[:len(text)-len(m[0])]
	}

	var kept []string
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		tok = strings.Trim(tok, ".,!?;:؟،\"'«»")
		if tok == "" {
			continue
		}
		if _, stop := queryStopwords[tok]; stop {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " "), location
}
