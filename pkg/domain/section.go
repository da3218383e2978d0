package domain

// Section is one bucket of the admin moderation dashboard.
type Section string

const (
	// SectionPending holds documents waiting for a first decision.
	SectionPending Section = "pending"
	// SectionApproved holds published documents without open problems.
	SectionApproved Section = "approved"
	// SectionDownvoted holds published documents whose net score fell to the
	// configured threshold.
	SectionDownvoted Section = "downvoted"
	// SectionFlagged holds published documents with unresolved reports.
	SectionFlagged Section = "flagged"
)

// Sections lists the dashboard sections in display order.
var Sections = []Section{SectionPending, SectionApproved, SectionDownvoted, SectionFlagged} //nolint: gochecknoglobals

// ParseSection validates s as a dashboard section.
func ParseSection(s string) (Section, bool) {
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, true
		}
	}

	return "", false
}

// SectionOf places d into its dashboard section. downvoteThreshold is the
// number of net downvotes that moves an approved document to
// SectionDownvoted. Flagged wins over downvoted. Rejected and deleted
// documents belong to no section.
func SectionOf(d *Document, downvoteThreshold int) (Section, bool) {
	if !d.DeletedAt.IsZero() {
		return "", false
	}

	switch d.Status {
	case DocumentStatusPending:
		return SectionPending, true
	case DocumentStatusApproved:
		if d.FlagCount > 0 {
			return SectionFlagged, true
		}
		if downvoteThreshold > 0 && d.Downvotes-d.Upvotes >= downvoteThreshold {
			return SectionDownvoted, true
		}

		return SectionApproved, true
	default:
		return "", false
	}
}
