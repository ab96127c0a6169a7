package model

import "fmt"

// SkipReason explains why a pull request was not eligible
type SkipReason string

const (
	SkipNone               SkipReason = ""
	SkipAlreadyApproved    SkipReason = "already-approved"
	SkipNotMergeable       SkipReason = "not-mergeable"
	SkipPendingChecks      SkipReason = "pending-checks"
	SkipGroupTableUnparsed SkipReason = "group-table-unparsed"
	SkipGroupHasMajor      SkipReason = "group-has-major"
	SkipGroupUnclassified  SkipReason = "group-unclassifiable"
	SkipGroupNoChange      SkipReason = "group-no-version-change"
	SkipMajorBump          SkipReason = "major-bump"
	SkipNoVersionChange    SkipReason = "no-version-change"
	SkipUnparseableTitle   SkipReason = "unparseable-title"
	SkipDeniedPackage      SkipReason = "denied-package"
)

// Verdict is the eligibility decision for one pull request. Exactly one of
// Eligible or a non-empty Reason holds. Err carries the parse failure for
// reasons caused by one.
type Verdict struct {
	PR         *PullRequest
	Eligible   bool
	Reason     SkipReason
	UpdateType UpdateType
	Changes    []DependencyChange
	Err        error
}

// Message renders the human-readable skip line for the verdict
func (v *Verdict) Message() string {
	n := v.PR.Number
	switch v.Reason {
	case SkipNone:
		return fmt.Sprintf("PR #%d is eligible for approval (%s).", n, v.UpdateType)
	case SkipAlreadyApproved:
		return fmt.Sprintf("PR #%d is already approved. Skipping.", n)
	case SkipNotMergeable:
		return fmt.Sprintf("PR #%d has merge conflicts. Skipping.", n)
	case SkipPendingChecks:
		return fmt.Sprintf("PR #%d does not have all status checks passing. Skipping.", n)
	case SkipGroupTableUnparsed:
		return fmt.Sprintf("PR #%d is a group update but couldn't parse dependency table. Skipping.", n)
	case SkipGroupHasMajor:
		return fmt.Sprintf("PR #%d contains major version updates in group. Skipping.", n)
	case SkipGroupNoChange:
		return fmt.Sprintf("PR #%d contains dependencies without a version change in group. Skipping.", n)
	case SkipGroupUnclassified:
		return fmt.Sprintf("Error determining update type for PR #%d: %v", n, v.Err)
	case SkipMajorBump:
		return fmt.Sprintf("PR #%d is a major version bump. Skipping.", n)
	case SkipNoVersionChange:
		return fmt.Sprintf("PR #%d does not change the version. Skipping.", n)
	case SkipUnparseableTitle:
		return fmt.Sprintf("Error determining update type for PR #%d: %v", n, v.Err)
	case SkipDeniedPackage:
		return fmt.Sprintf("PR #%d updates a denied package. Skipping.", n)
	default:
		return fmt.Sprintf("PR #%d skipped: %s", n, v.Reason)
	}
}
