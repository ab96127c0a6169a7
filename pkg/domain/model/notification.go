package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m-mizutani/depherd/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const SubjectTypePullRequest = "PullRequest"

// Notification is a GitHub notification thread
type Notification struct {
	ID           string
	SubjectType  string
	SubjectURL   string // API URL, e.g. https://api.github.com/repos/o/r/pulls/1
	SubjectTitle string
	Repository   string // owner/name
}

// IsPullRequest reports whether the thread is about a pull request
func (n *Notification) IsPullRequest() bool {
	return n.SubjectType == SubjectTypePullRequest
}

// References reports whether the notification is about the given pull request.
// A subject URL ending in /pulls/<number> or an identical title both count.
func (n *Notification) References(repo Repository, pr *PullRequest) bool {
	if !strings.EqualFold(n.Repository, repo.FullName()) {
		return false
	}
	if n.SubjectURL != "" && strings.HasSuffix(n.SubjectURL, fmt.Sprintf("/pulls/%d", pr.Number)) {
		return true
	}
	return n.SubjectTitle != "" && n.SubjectTitle == pr.Title
}

// PullRequestRef locates a pull request from its API URL
type PullRequestRef struct {
	Repository Repository
	Number     int
}

// ParsePullRequestURL extracts owner, repo and number from
// .../repos/{owner}/{repo}/pulls/{number}
func ParsePullRequestURL(u string) (PullRequestRef, error) {
	idx := strings.Index(u, "/repos/")
	if idx < 0 {
		return PullRequestRef{}, goerr.Wrap(types.ErrParse, "not a repository API URL", goerr.V("url", u))
	}

	parts := strings.Split(strings.Trim(u[idx+len("/repos/"):], "/"), "/")
	if len(parts) != 4 || parts[2] != "pulls" {
		return PullRequestRef{}, goerr.Wrap(types.ErrParse, "not a pull request API URL", goerr.V("url", u))
	}

	number, err := strconv.Atoi(parts[3])
	if err != nil || number <= 0 {
		return PullRequestRef{}, goerr.Wrap(types.ErrParse, "invalid pull request number", goerr.V("url", u))
	}

	return PullRequestRef{
		Repository: Repository{Owner: parts[0], Name: parts[1]},
		Number:     number,
	}, nil
}
