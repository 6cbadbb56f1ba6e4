// Package moderation decides the approval state of a newly submitted
// comment. The decision table is priority-ordered: administrator status
// always wins, then the denylist scan, then the default-open policy.
package moderation

import (
	"yorum-servisi/internal/pkg/wordfilter"
)

type Decision struct {
	IsApproved bool
	IsAdmin    bool
}

// Decide maps the submitter's admin status and the denylist scan result
// to the stored approval flags.
func Decide(submitterIsAdmin bool, scan wordfilter.ScanResult) Decision {
	if submitterIsAdmin {
		return Decision{IsApproved: true, IsAdmin: true}
	}
	if scan.Matched {
		return Decision{IsApproved: false, IsAdmin: false}
	}
	return Decision{IsApproved: true, IsAdmin: false}
}

// Policy binds the decision table to a denylist filter.
type Policy struct {
	filter *wordfilter.Filter
}

func NewPolicy(filter *wordfilter.Filter) *Policy {
	return &Policy{filter: filter}
}

// Evaluate scans every submitter-supplied field and applies the decision
// table. The scan result is returned alongside the decision so callers
// can report which entries matched.
func (p *Policy) Evaluate(submitterIsAdmin bool, authorName, authorEmail, content string) (Decision, wordfilter.ScanResult) {
	scan := p.filter.ScanComment(authorName, authorEmail, content)
	return Decide(submitterIsAdmin, scan), scan
}
