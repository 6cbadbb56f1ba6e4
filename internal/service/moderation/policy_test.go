package moderation

import (
	"testing"

	"yorum-servisi/internal/pkg/wordfilter"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	matched := wordfilter.ScanResult{Matched: true, Words: []string{"kürdistan"}}
	clean := wordfilter.ScanResult{}

	tests := []struct {
		name    string
		isAdmin bool
		scan    wordfilter.ScanResult
		want    Decision
	}{
		{"Admin Always Approved", true, clean, Decision{IsApproved: true, IsAdmin: true}},
		{"Admin Overrides Flagged Content", true, matched, Decision{IsApproved: true, IsAdmin: true}},
		{"Flagged Content Pending", false, matched, Decision{IsApproved: false, IsAdmin: false}},
		{"Clean Content Default Open", false, clean, Decision{IsApproved: true, IsAdmin: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.isAdmin, tt.scan))
		})
	}
}

func TestPolicy_Evaluate(t *testing.T) {
	policy := NewPolicy(wordfilter.New())

	t.Run("Flagged Non Admin", func(t *testing.T) {
		decision, scan := policy.Evaluate(false, "Ali", "ali@example.com", "kurdistan üzerine bir yazı")
		assert.False(t, decision.IsApproved)
		assert.False(t, decision.IsAdmin)
		assert.True(t, scan.Matched)
	})

	t.Run("Clean Non Admin", func(t *testing.T) {
		decision, scan := policy.Evaluate(false, "Ayşe", "ayse@example.com", "Bu harika bir makale, tebrikler!")
		assert.True(t, decision.IsApproved)
		assert.False(t, decision.IsAdmin)
		assert.False(t, scan.Matched)
	})

	t.Run("Admin With Flagged Content", func(t *testing.T) {
		decision, _ := policy.Evaluate(true, "Editör", "editor@example.com", "kurdistan haberinin düzeltmesi")
		assert.True(t, decision.IsApproved)
		assert.True(t, decision.IsAdmin)
	})
}
