package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/abook/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgBookLoaded MsgKind = iota
)

type bookLoaded struct {
	book *models.AddressBook
	err  error
}

// bookLoadedMsg is the constructor for [MsgBookLoaded]
func bookLoadedMsg(book *models.AddressBook, err error) Msg {
	return Msg{kind: MsgBookLoaded, data: bookLoaded{book: book, err: err}}
}
