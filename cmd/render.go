package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"StarGame/internal/game/engine"
	"StarGame/internal/game/table"
)

var (
	roundStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700"))
	safeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#32CD32"))
	outStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4500"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))

	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#5A56E0"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// printEvents writes one line per event.
func printEvents(w io.Writer, evs []engine.Event) {
	for _, ev := range evs {
		msg := ev.Message()
		switch ev.Type {
		case engine.EventRoundStarted, engine.EventTournamentStarted, engine.EventTournamentEnded:
			msg = roundStyle.Render(msg)
		case engine.EventActorSafe:
			msg = safeStyle.Render(msg)
		case engine.EventActorEliminated, engine.EventTournamentAborted:
			msg = outStyle.Render(msg)
		case engine.EventRoundEnded:
			msg = dimStyle.Render(msg)
		}
		fmt.Fprintln(w, msg)
	}
}

func newTable(headers ...string) *ltable.Table {
	return ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// standingsTable renders the detailed per-actor view.
func standingsTable(rows []engine.Standing) string {
	t := newTable("Actor", "Stars", "Stone", "Scissor", "Paper", "Success", "Fail", "Will")
	for _, r := range rows {
		a := r.Actor
		t.Row(
			a.Name,
			fmt.Sprint(a.Stars()),
			fmt.Sprint(a.Count(table.Stone)),
			fmt.Sprint(a.Count(table.Scissor)),
			fmt.Sprint(a.Count(table.Paper)),
			fmt.Sprintf("%.3f", r.Success),
			fmt.Sprintf("%.3f", r.Fail),
			fmt.Sprintf("%+.3f", r.Will),
		)
	}
	return t.String()
}

// resultTable renders the final outcome of one tournament.
func resultTable(res engine.Result) string {
	t := newTable("Outcome", "Count", "Actors")
	t.Row("safe", fmt.Sprint(len(res.Safe)), actorNames(res.Safe))
	t.Row("eliminated", fmt.Sprint(len(res.Eliminated)), actorNames(res.Eliminated))
	t.Row("unfinished", fmt.Sprint(len(res.Unfinished)), actorNames(res.Unfinished))
	return t.String()
}

const maxListed = 8

func actorNames(actors []table.Actor) string {
	names := make([]string, 0, maxListed+1)
	for i, a := range actors {
		if i == maxListed {
			names = append(names, fmt.Sprintf("+%d more", len(actors)-maxListed))
			break
		}
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}
