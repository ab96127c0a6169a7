package model

import "fmt"

// DependencyChange is one row of a Dependabot group update table
type DependencyChange struct {
	Name string
	From string
	To   string
}

// VersionText renders the change in the same shape as a single-update PR title
func (c DependencyChange) VersionText() string {
	return fmt.Sprintf("from %s to %s", c.From, c.To)
}
