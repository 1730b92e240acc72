package graphql

import (
	"regexp"
	"strings"
)

var (
	didYouMeanRe = regexp.MustCompile(`Did you mean (.+?)\?`)
	quotedRe     = regexp.MustCompile(`"([^"]+)"`)
)

// Suggestion is a schema hint extracted from a validation error, such as
// `Cannot query field "jobz" on type "RootQuery". Did you mean "jobs"?`.
type Suggestion struct {
	Message    string
	Subject    string
	Candidates []string
}

// Suggestions collects "Did you mean" hints from errs. Errors without a hint
// are skipped. This is a debugging aid for schema mismatches only.
func Suggestions(errs []Error) []Suggestion {
	var out []Suggestion
	for _, e := range errs {
		m := didYouMeanRe.FindStringSubmatch(e.Message)
		if m == nil {
			continue
		}
		s := Suggestion{Message: e.Message}

		head := e.Message[:strings.Index(e.Message, m[0])]
		if q := quotedRe.FindStringSubmatch(head); q != nil {
			s.Subject = q[1]
		}
		for _, q := range quotedRe.FindAllStringSubmatch(m[1], -1) {
			s.Candidates = append(s.Candidates, q[1])
		}
		out = append(out, s)
	}
	return out
}
