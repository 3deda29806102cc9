package content

import (
	"strings"

	"github.com/dgallion1/onboard/internal/domain"
	"github.com/dgallion1/onboard/internal/sections"
)

const (
	markBuddy     = "YOUR ONBOARDING BUDDY"
	markConsult   = "You may also want to consult"
	markChecklist = "NEW HIRE CHECKLIST"

	subTaskMarker = "○"
)

// periodMarkers open a new timeline item wherever they appear in a line.
// Matching is case-sensitive so task text such as "the first week induction"
// stays a task.
var periodMarkers = []string{"Day One:", "First week", "Within first month", "Within first three"}

// ParseOnboardingPlan builds the onboarding plan record from one document.
func (p *Parser) ParseOnboardingPlan(text string) domain.OnboardingPlan {
	d := p.newDocument(text, "onboarding_plan")

	details, activities := parseBuddy(d)
	summary, timeline := parseTimeline(d)

	plan := domain.OnboardingPlan{
		Buddy:     domain.Buddy{Details: details, Activities: activities},
		Checklist: domain.Checklist{Summary: summary, Timeline: timeline},
	}
	plan.Normalize()
	return plan
}

// ParseBuddyActivities returns every line after the "You may also want to
// consult" marker that follows the buddy heading, up to the checklist
// heading. Without the marker nothing is collected; the search for the marker
// ends at the checklist heading.
func ParseBuddyActivities(lines []string) []string {
	_, activities := scanBuddy(lines)
	return activities
}

func parseBuddy(d *document) (string, []string) {
	details, activities := scanBuddy(d.lines)
	if details == "" && len(activities) == 0 {
		d.log.Warn("buddy section empty", "heading", markBuddy)
	}
	return details, activities
}

func scanBuddy(lines []string) (string, []string) {
	activities := []string{}
	c := sections.NewCursor(lines)
	if !c.SeekContains(markBuddy) {
		return "", activities
	}
	c.Advance()

	var details []string
	found := false
	for !c.Done() {
		line, _ := c.Next()
		if line == "" {
			continue
		}
		if sections.ContainsFold(line, markChecklist) {
			return sections.JoinTrimmed(details), activities
		}
		if sections.ContainsFold(line, markConsult) {
			found = true
			break
		}
		details = append(details, line)
	}
	if !found {
		return sections.JoinTrimmed(details), activities
	}

	for !c.Done() {
		line, _ := c.Next()
		if sections.ContainsFold(line, markChecklist) {
			break
		}
		activities = append(activities, line)
	}
	return sections.JoinTrimmed(details), activities
}

// ParseTimeline reads the checklist timeline that follows the new hire
// checklist heading.
func ParseTimeline(lines []string) []domain.TimelineItem {
	_, items := scanTimeline(lines)
	return items
}

func parseTimeline(d *document) (string, []domain.TimelineItem) {
	summary, items := scanTimeline(d.lines)
	if len(items) == 0 {
		d.log.Warn("checklist timeline empty", "heading", markChecklist)
	}
	return summary, items
}

func scanTimeline(lines []string) (string, []domain.TimelineItem) {
	items := []domain.TimelineItem{}
	c := sections.NewCursor(lines)
	if !c.SeekContains(markChecklist) {
		return "", items
	}
	c.Advance()

	var summary []string
	var current *domain.TimelineItem
	flush := func() {
		if current != nil {
			items = append(items, *current)
			current = nil
		}
	}

	for ; !c.Done(); c.Advance() {
		raw, line := c.Raw(), c.Text()
		if line == "" {
			continue
		}
		if isPeriodLine(line) {
			flush()
			current = &domain.TimelineItem{Period: periodLabel(line), Tasks: []string{}, SubTasks: []string{}}
			continue
		}
		if current == nil {
			summary = append(summary, line)
			continue
		}
		switch {
		case isSubTask(raw, line):
			current.SubTasks = append(current.SubTasks, stripSubTask(line))
		case sections.IsBullet(line):
			current.Tasks = append(current.Tasks, sections.StripBullet(line))
		case len(current.Tasks) > 0:
			// A plain line after a task continues that task. Before any task it
			// stands as a task of its own.
			last := len(current.Tasks) - 1
			current.Tasks[last] = current.Tasks[last] + " " + line
		default:
			current.Tasks = append(current.Tasks, line)
		}
	}
	flush()
	return sections.JoinTrimmed(summary), items
}

func isPeriodLine(line string) bool {
	for _, m := range periodMarkers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}

// periodLabel keeps the text before the first colon and terminates it with
// a colon: "Day One: arrive early" -> "Day One:".
func periodLabel(line string) string {
	if i := strings.Index(line, ":"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line) + ":"
}

func isSubTask(raw, line string) bool {
	if strings.HasPrefix(line, subTaskMarker) {
		return true
	}
	return strings.HasPrefix(raw, " ") || strings.HasPrefix(raw, "\t")
}

func stripSubTask(line string) string {
	line = strings.TrimSpace(strings.TrimPrefix(line, subTaskMarker))
	return sections.StripBullet(line)
}
