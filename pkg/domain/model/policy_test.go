package model_test

import (
	"testing"

	"github.com/m-mizutani/depherd/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestPolicy_IsAuthor(t *testing.T) {
	p := model.DefaultPolicy()
	gt.True(t, p.IsAuthor("dependabot[bot]"))
	gt.True(t, p.IsAuthor("app/dependabot"))
	gt.True(t, p.IsAuthor("Dependabot"))
	gt.False(t, p.IsAuthor("renovate[bot]"))

	custom := model.Policy{Author: "renovate[bot]"}
	gt.True(t, custom.IsAuthor("app/renovate"))
	gt.False(t, custom.IsAuthor("dependabot[bot]"))

	gt.True(t, model.Policy{}.IsAuthor("dependabot[bot]"))
}

func TestPolicy_IsDenied(t *testing.T) {
	p := model.Policy{
		DenyPackages: []string{"Lodash"},
		DenyOrgs:     []string{"@datadog", "aws"},
	}

	gt.True(t, p.IsDenied("lodash"))
	gt.True(t, p.IsDenied("@datadog/browser-rum"))
	gt.True(t, p.IsDenied("aws/aws-sdk-go"))
	gt.False(t, p.IsDenied("express"))
	gt.False(t, p.IsDenied("@types/node"))
	gt.False(t, model.DefaultPolicy().IsDenied("lodash"))
}
