package model

import (
	"strings"

	"github.com/m-mizutani/depherd/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Repository identifies a GitHub repository
type Repository struct {
	Owner string
	Name  string
}

// ParseRepository parses "owner/name"
func ParseRepository(fullName string) (Repository, error) {
	owner, name, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return Repository{}, goerr.Wrap(types.ErrInvalidArgument, "repository must be owner/name", goerr.V("repository", fullName))
	}
	return Repository{Owner: owner, Name: name}, nil
}

func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

func (r Repository) String() string {
	return r.FullName()
}
