package model

// ApprovalOutcome is the result of approving one pull request
type ApprovalOutcome struct {
	PR                *PullRequest
	Approved          bool
	Err               error
	ResolvedThreads   []string
	UnresolvedThreads []string
}

// ApprovalReport summarises one approval run against a repository
type ApprovalReport struct {
	RunID      string
	Repository Repository
	Verdicts   []Verdict
	Confirmed  bool
	Outcomes   []ApprovalOutcome
}

// Eligible returns the pull requests that passed the filter
func (r *ApprovalReport) Eligible() []*PullRequest {
	var prs []*PullRequest
	for _, v := range r.Verdicts {
		if v.Eligible {
			prs = append(prs, v.PR)
		}
	}
	return prs
}

// Approved returns the pull requests that were approved successfully
func (r *ApprovalReport) Approved() []*PullRequest {
	var prs []*PullRequest
	for _, o := range r.Outcomes {
		if o.Approved {
			prs = append(prs, o.PR)
		}
	}
	return prs
}

// TriageReport summarises one notification triage run
type TriageReport struct {
	RunID         string
	Notifications int
	ClosedDone    []string
	ClosedFailed  []string
	Repositories  []Repository
	Approvals     []*ApprovalReport
}
