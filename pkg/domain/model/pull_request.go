package model

import "strings"

// MergeableState is GitHub's merge readiness of a pull request
type MergeableState string

const (
	Mergeable   MergeableState = "MERGEABLE"
	Conflicting MergeableState = "CONFLICTING"
	// MergeableUnknown means GitHub has not computed mergeability yet
	MergeableUnknown MergeableState = "UNKNOWN"
)

// ParseMergeableState maps gh CLI / GraphQL values. Anything unrecognised is unknown.
func ParseMergeableState(s string) MergeableState {
	switch MergeableState(strings.ToUpper(s)) {
	case Mergeable:
		return Mergeable
	case Conflicting:
		return Conflicting
	default:
		return MergeableUnknown
	}
}

// MergeableFromREST maps the REST API's nullable boolean
func MergeableFromREST(v *bool) MergeableState {
	switch {
	case v == nil:
		return MergeableUnknown
	case *v:
		return Mergeable
	default:
		return Conflicting
	}
}

// ReviewState is the state of a single pull request review
type ReviewState string

const (
	ReviewApproved         ReviewState = "APPROVED"
	ReviewChangesRequested ReviewState = "CHANGES_REQUESTED"
	ReviewCommented        ReviewState = "COMMENTED"
	ReviewDismissed        ReviewState = "DISMISSED"
	ReviewPending          ReviewState = "PENDING"
)

type Review struct {
	State  ReviewState
	Author string
}

// PullRequest is the subset of a GitHub pull request consumed by the approval flow
type PullRequest struct {
	Number    int
	Title     string
	Body      string
	Author    string
	State     string // "open" or "closed"
	HeadRef   string
	URL       string
	Mergeable MergeableState
	Reviews   []Review
}

// IsApproved reports whether any review has already approved the pull request
func (pr *PullRequest) IsApproved() bool {
	for _, r := range pr.Reviews {
		if r.State == ReviewApproved {
			return true
		}
	}
	return false
}

// IsGroupUpdate reports whether the pull request bundles several dependency
// bumps, described by a table in the body instead of the title.
func (pr *PullRequest) IsGroupUpdate() bool {
	return strings.Contains(strings.ToLower(pr.Title), "group")
}

// IsClosed reports whether the pull request was closed or merged
func (pr *PullRequest) IsClosed() bool {
	return strings.EqualFold(pr.State, "closed") || strings.EqualFold(pr.State, "merged")
}
