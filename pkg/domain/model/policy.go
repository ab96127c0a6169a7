package model

import "strings"

// DefaultAuthor is the login Dependabot opens pull requests as
const DefaultAuthor = "dependabot[bot]"

// Policy tunes which pull requests are considered at all
type Policy struct {
	Author       string   `toml:"author"`
	DenyPackages []string `toml:"deny_packages"`
	DenyOrgs     []string `toml:"deny_orgs"`
}

// DefaultPolicy returns the policy used when no policy file is given
func DefaultPolicy() Policy {
	return Policy{Author: DefaultAuthor}
}

// IsAuthor reports whether login matches the policy author. "app/dependabot"
// (the gh search form) and "dependabot" are accepted as aliases.
func (p Policy) IsAuthor(login string) bool {
	author := p.Author
	if author == "" {
		author = DefaultAuthor
	}
	return normalizeLogin(login) == normalizeLogin(author)
}

func normalizeLogin(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "app/")
	return strings.TrimSuffix(s, "[bot]")
}

// IsDenied reports whether the package name or its organization is denied.
// "@org/pkg" and "org/pkg" both belong to org.
func (p Policy) IsDenied(pkg string) bool {
	name := strings.ToLower(pkg)
	for _, d := range p.DenyPackages {
		if strings.ToLower(d) == name {
			return true
		}
	}

	org, _, ok := strings.Cut(strings.TrimPrefix(name, "@"), "/")
	if !ok {
		return false
	}
	for _, d := range p.DenyOrgs {
		if strings.ToLower(strings.TrimPrefix(d, "@")) == org {
			return true
		}
	}
	return false
}
