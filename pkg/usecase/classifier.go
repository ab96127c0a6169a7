package usecase

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/depherd/pkg/domain/model"
	"github.com/m-mizutani/depherd/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

var (
	versionChangePattern = regexp.MustCompile(`from (\d+\.\d+\.\d+) to (\d+\.\d+\.\d+)`)
	bumpNamePattern      = regexp.MustCompile(`(?i)\bbump (\S+) from `)
	markdownLinkPattern  = regexp.MustCompile(`\[(.*?)\]`)
)

// Classify determines whether the first "from X.Y.Z to A.B.C" in text is a
// major, minor or patch update. Text without such a substring fails with
// types.ErrParse.
func Classify(text string) (model.UpdateType, error) {
	m := versionChangePattern.FindStringSubmatch(text)
	if m == nil {
		return "", goerr.Wrap(types.ErrParse, "input does not contain valid 'from' and 'to' semver versions",
			goerr.V("text", text))
	}

	from, err := model.ParseVersionTriple(m[1])
	if err != nil {
		return "", err
	}
	to, err := model.ParseVersionTriple(m[2])
	if err != nil {
		return "", err
	}

	return from.UpdateTo(to), nil
}

// ParseDependencyTable extracts the rows of the markdown table Dependabot puts
// in group update descriptions. Malformed rows are skipped.
func ParseDependencyTable(body string) []model.DependencyChange {
	var changes []model.DependencyChange

	for _, line := range strings.Split(body, "\n") {
		if !strings.Contains(line, "|") {
			continue
		}
		if strings.Contains(line, "---") || strings.Contains(line, "Package") {
			continue
		}

		cells := strings.Split(strings.TrimSpace(line), "|")
		if len(cells) < 2 {
			continue
		}
		cells = cells[1 : len(cells)-1]
		if len(cells) != 3 {
			continue
		}
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}

		name := cells[0]
		if strings.Contains(name, "[") {
			if m := markdownLinkPattern.FindStringSubmatch(name); m != nil {
				name = m[1]
			}
		}

		changes = append(changes, model.DependencyChange{
			Name: name,
			From: strings.Trim(cells[1], "`"),
			To:   strings.Trim(cells[2], "`"),
		})
	}

	return changes
}

// CheckGroupUpdateEligibility returns true only if every change is a minor
// or patch update. It stops at the first major or no-change row, and an empty
// list is never eligible. A change that cannot be classified makes the whole
// group ineligible and is returned as the error.
func CheckGroupUpdateEligibility(changes []model.DependencyChange) (bool, error) {
	if len(changes) == 0 {
		return false, nil
	}

	for _, c := range changes {
		updateType, err := Classify(c.VersionText())
		if err != nil {
			return false, goerr.Wrap(err, "failed to determine update type", goerr.V("package", c.Name))
		}
		switch updateType {
		case model.UpdateMinor, model.UpdatePatch:
		default:
			return false, nil
		}
	}
	return true, nil
}

// bumpedPackage extracts the dependency name from a single update title such
// as "Bump lodash from 4.17.20 to 4.17.21".
func bumpedPackage(title string) (string, bool) {
	m := bumpNamePattern.FindStringSubmatch(title)
	if m == nil {
		return "", false
	}
	return m[1], true
}
