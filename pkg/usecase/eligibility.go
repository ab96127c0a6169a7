package usecase

import (
	"errors"

	"github.com/m-mizutani/depherd/pkg/domain/model"
	"github.com/m-mizutani/depherd/pkg/domain/types"
)

// Evaluate decides whether a pull request can be approved unattended. Only
// minor and patch updates pass. Every uncertainty (pending mergeability,
// unparsable title or table) rejects the pull request.
func Evaluate(pr *model.PullRequest, policy model.Policy) model.Verdict {
	v := model.Verdict{PR: pr}

	if pr.IsApproved() {
		v.Reason = model.SkipAlreadyApproved
		return v
	}

	switch pr.Mergeable {
	case model.Mergeable:
	case model.Conflicting:
		v.Reason = model.SkipNotMergeable
		return v
	default:
		v.Reason = model.SkipPendingChecks
		return v
	}

	if pr.IsGroupUpdate() {
		v.Changes = ParseDependencyTable(pr.Body)
		if len(v.Changes) == 0 {
			v.Reason = model.SkipGroupTableUnparsed
			return v
		}

		ok, err := CheckGroupUpdateEligibility(v.Changes)
		switch {
		case err != nil:
			v.Reason = model.SkipGroupUnclassified
			v.Err = err
			return v
		case !ok && hasMajor(v.Changes):
			v.Reason = model.SkipGroupHasMajor
			v.UpdateType = model.UpdateMajor
			return v
		case !ok:
			v.Reason = model.SkipGroupNoChange
			v.UpdateType = model.UpdateNoChange
			return v
		}

		v.UpdateType = highestUpdate(v.Changes)
	} else {
		updateType, err := Classify(pr.Title)
		if err != nil {
			v.Reason = model.SkipUnparseableTitle
			v.Err = err
			return v
		}

		v.UpdateType = updateType
		switch updateType {
		case model.UpdateMajor:
			v.Reason = model.SkipMajorBump
			return v
		case model.UpdateNoChange:
			v.Reason = model.SkipNoVersionChange
			return v
		}

		if name, ok := bumpedPackage(pr.Title); ok {
			v.Changes = []model.DependencyChange{{Name: name}}
		}
	}

	for _, c := range v.Changes {
		if policy.IsDenied(c.Name) {
			v.Reason = model.SkipDeniedPackage
			return v
		}
	}

	v.Eligible = true
	return v
}

// FilterEligible evaluates every pull request and returns the eligible ones
// in input order together with all verdicts.
func FilterEligible(prs []*model.PullRequest, policy model.Policy) ([]*model.PullRequest, []model.Verdict) {
	var eligible []*model.PullRequest
	verdicts := make([]model.Verdict, 0, len(prs))

	for _, pr := range prs {
		v := Evaluate(pr, policy)
		verdicts = append(verdicts, v)
		if v.Eligible {
			eligible = append(eligible, pr)
		}
	}

	return eligible, verdicts
}

// highestUpdate reports the most significant update in an eligible group.
// Rows are known to classify at this point.
func highestUpdate(changes []model.DependencyChange) model.UpdateType {
	result := model.UpdateNoChange
	for _, c := range changes {
		t, err := Classify(c.VersionText())
		if err != nil {
			continue
		}
		switch {
		case t == model.UpdateMinor:
			result = model.UpdateMinor
		case t == model.UpdatePatch && result == model.UpdateNoChange:
			result = model.UpdatePatch
		}
	}
	return result
}

// hasMajor reports whether any classifiable row is a major update
func hasMajor(changes []model.DependencyChange) bool {
	for _, c := range changes {
		if t, err := Classify(c.VersionText()); err == nil && t == model.UpdateMajor {
			return true
		}
	}
	return false
}

// isParseError reports whether the verdict was caused by malformed input
func isParseError(v *model.Verdict) bool {
	return v.Err != nil && errors.Is(v.Err, types.ErrParse)
}
