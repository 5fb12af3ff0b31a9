package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Document kinds the analyzer recognizes from the file name, checked in
// order.
var analyzerProfiles = []struct {
	keywords []string
	kind     string
	findings string
}{
	{
		[]string{"lease", "rental", "tenancy"},
		"rental agreement",
		"Check the rent escalation clause, the security deposit amount and refund terms, the notice period for termination, and whether maintenance responsibilities are clearly split between landlord and tenant.",
	},
	{
		[]string{"nda", "non-disclosure", "confidential"},
		"non-disclosure agreement",
		"Review the definition of confidential information, the duration of the confidentiality obligation, carve-outs for independently developed information, and whether obligations are mutual or one-way.",
	},
	{
		[]string{"employment", "offer"},
		"employment document",
		"Verify the compensation structure, probation and notice periods, non-compete scope and duration, and any clawback or bond clauses before signing.",
	},
	{
		[]string{"will", "testament"},
		"will",
		"Confirm the testator's details, the executor appointment, unambiguous identification of assets and beneficiaries, and attestation by two witnesses who are not beneficiaries.",
	},
	{
		[]string{"notice"},
		"legal notice",
		"Note the demands raised, the compliance deadline, and the consequences stated for non-compliance. A timely written reply through an advocate is advisable.",
	},
	{
		[]string{"agreement", "contract"},
		"contract",
		"Examine the obligations of each party, payment terms, termination and breach provisions, the dispute resolution clause, and the governing law.",
	},
}

// AnalyzeDocument produces a plain-text analysis summary for an uploaded
// document. Selection is deterministic on the file name; the reference code
// is the only varying part.
func AnalyzeDocument(fileName, fileType string, content *string) string {
	lower := strings.ToLower(fileName)

	kind := "legal document"
	findings := "The document appears to be a general legal document. Review all defined terms, obligations, dates, and signature requirements. Consider having a qualified lawyer verify the document before acting on it."
	for _, p := range analyzerProfiles {
		matched := false
		for _, kw := range p.keywords {
			if strings.Contains(lower, kw) {
				matched = true
				break
			}
		}
		if matched {
			kind = p.kind
			findings = p.findings
			break
		}
	}

	ref := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])

	var b strings.Builder
	fmt.Fprintf(&b, "Document Analysis (ref %s)\n\n", ref)
	fmt.Fprintf(&b, "File: %s (%s)\n", fileName, fileType)
	fmt.Fprintf(&b, "Detected type: %s\n\n", kind)
	fmt.Fprintf(&b, "Key points to review: %s\n\n", findings)
	if content != nil && *content != "" {
		words := len(strings.Fields(*content))
		fmt.Fprintf(&b, "Submitted text: approximately %d words examined.\n\n", words)
	}
	b.WriteString("This is an automated informational summary, not legal advice.")

	return b.String()
}
