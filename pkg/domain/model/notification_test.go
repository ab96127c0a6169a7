package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/depherd/pkg/domain/model"
	"github.com/m-mizutani/depherd/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestNotification_References(t *testing.T) {
	repo := model.Repository{Owner: "octo", Name: "app"}
	pr := &model.PullRequest{Number: 42, Title: "Bump lodash from 4.17.20 to 4.17.21"}

	tests := []struct {
		name  string
		n     model.Notification
		match bool
	}{
		{
			name:  "url suffix",
			n:     model.Notification{Repository: "octo/app", SubjectURL: "https://api.github.com/repos/octo/app/pulls/42"},
			match: true,
		},
		{
			name:  "title",
			n:     model.Notification{Repository: "octo/app", SubjectTitle: "Bump lodash from 4.17.20 to 4.17.21"},
			match: true,
		},
		{
			name:  "other number with shared suffix",
			n:     model.Notification{Repository: "octo/app", SubjectURL: "https://api.github.com/repos/octo/app/pulls/142"},
			match: false,
		},
		{
			name:  "other repository",
			n:     model.Notification{Repository: "octo/other", SubjectURL: "https://api.github.com/repos/octo/other/pulls/42"},
			match: false,
		},
		{
			name:  "empty subject",
			n:     model.Notification{Repository: "octo/app"},
			match: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, tt.n.References(repo, pr)).Equal(tt.match)
		})
	}
}

func TestParsePullRequestURL(t *testing.T) {
	ref, err := model.ParsePullRequestURL("https://api.github.com/repos/octo/app/pulls/42")
	gt.NoError(t, err)
	gt.Value(t, ref.Repository).Equal(model.Repository{Owner: "octo", Name: "app"})
	gt.Number(t, ref.Number).Equal(42)

	for _, u := range []string{
		"https://api.github.com/repos/octo/app/issues/42",
		"https://api.github.com/notifications",
		"https://api.github.com/repos/octo/app/pulls/abc",
		"https://api.github.com/repos/octo/app/pulls/42/reviews",
	} {
		_, err := model.ParsePullRequestURL(u)
		gt.True(t, errors.Is(err, types.ErrParse))
	}
}

func TestParseRepository(t *testing.T) {
	repo, err := model.ParseRepository("octo/app")
	gt.NoError(t, err)
	gt.Value(t, repo.FullName()).Equal("octo/app")

	for _, s := range []string{"", "octo", "/app", "octo/", "octo/app/extra"} {
		_, err := model.ParseRepository(s)
		gt.True(t, errors.Is(err, types.ErrInvalidArgument))
	}
}
