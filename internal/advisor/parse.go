package advisor

import (
	"regexp"
	"strings"
)

// MaxSteps is the maximum number of steps kept from a reply.
const MaxSteps = 7

var (
	ordinalStep = regexp.MustCompile(`^\d+[.)]\s*(.+)$`)
	namedStep   = regexp.MustCompile(`(?i)^step\s+\d+:\s*(.+)$`)
	onlyDigits  = regexp.MustCompile(`^\d+$`)
)

// ParseSteps extracts the numbered steps from a free text reply.
//
// Lines starting with "1. ", "1) " or "Step 1: " start a new step. Other
// lines continue the previous step, except for lines that are only a number.
// Text before the first step is ignored.
func ParseSteps(reply string) []string {
	var steps []string

	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		match := ordinalStep.FindStringSubmatch(line)
		if match == nil {
			match = namedStep.FindStringSubmatch(line)
		}

		if match != nil {
			steps = append(steps, strings.TrimSpace(match[1]))
			continue
		}

		if len(steps) > 0 && !onlyDigits.MatchString(line) {
			steps[len(steps)-1] += " " + line
		}
	}

	if len(steps) > MaxSteps {
		steps = steps[:MaxSteps]
	}

	return steps
}
