package tui

import (
	"fmt"
	"strings"
)

func (m model) View() string {
	session := m.controller.Session()
	rows := buildRows(session)

	var b strings.Builder

	dayName := m.controller.ActiveDayID()
	for _, day := range m.controller.Days() {
		if day.DayID == dayName && day.Name != "" {
			dayName = day.Name
		}
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  %s", session.Date, dayName)))
	b.WriteString("  " + m.statusChip() + "\n")

	for i, r := range rows {
		if r.header {
			label := r.exercise.Name
			if r.exercise.TargetReps > 0 {
				label += dimStyle.Render(fmt.Sprintf("  target %d", r.exercise.TargetReps))
			}
			b.WriteString(headerStyle.Render(label) + "\n")
			continue
		}

		line := m.setLine(r, i == m.cursor)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		} else if r.set.Done {
			line = doneStyle.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}

	if m.notice != "" {
		b.WriteString("\n" + dimStyle.Render(m.notice) + "\n")
	}

	b.WriteString(helpStyle.Render(
		"w/enter weight · r reps · space done · a/x add/remove set · tab day · s sync · m alerts · c copy · q quit"))

	return b.String()
}

func (m model) setLine(r row, selected bool) string {
	mark := "[ ]"
	if r.set.Done {
		mark = "[x]"
	}

	weight := fmt.Sprintf("%g kg", r.set.Weight)
	reps := fmt.Sprintf("%d reps", r.set.Reps)
	if selected && m.editing == editWeight {
		weight = m.input.View() + " kg"
	}
	if selected && m.editing == editReps {
		reps = m.input.View() + " reps"
	}

	return fmt.Sprintf("%s set %d  %10s  %8s", mark, r.set.SetNumber, weight, reps)
}

func (m model) statusChip() string {
	switch {
	case m.sync == syncRunning:
		return chipPending.Render(m.spinner.View() + "syncing")
	case m.sync == syncFailed:
		return chipFailed.Render("some failed")
	case m.pending > 0:
		return chipPending.Render(fmt.Sprintf("sync now (%d)", m.pending))
	default:
		return chipSynced.Render("synced")
	}
}
