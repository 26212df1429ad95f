package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = newPalette(paletteColors{
	heading:  "#7D56F4",
	birthday: "#04B575",
	failure:  "#FF0000",
	missing:  "#FFA500",
	muted:    "#626262",
})

type paletteColors struct {
	heading, birthday, failure, missing, muted string
}

// palette holds the styles used by the contact views
type palette struct {
	heading  lipgloss.Style // contact name and view titles
	birthday lipgloss.Style
	failure  lipgloss.Style
	missing  lipgloss.Style // fields a contact has not filled in
	muted    lipgloss.Style
}

func newPalette(c paletteColors) *palette {
	return &palette{
		heading:  bold(c.heading).MarginBottom(1),
		birthday: bold(c.birthday),
		failure:  bold(c.failure),
		missing:  fg(c.missing),
		muted:    fg(c.muted).Italic(true),
	}
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

func bold(color string) lipgloss.Style {
	return fg(color).Bold(true)
}
