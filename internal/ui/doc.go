// Package ui implements an interactive, read-only terminal browser for the address book using bubbletea's Elm architecture.
//
// The TUI has three views:
//  1. [ContactsView] : Browse and filter every contact
//  2. [BirthdaysView] : Contacts to congratulate in the upcoming window, with weekend shifts applied
//  3. [DetailView] : All phones and the birthday of the selected contact
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
// The book is loaded from a [models.Store] by a command issued from Init, so the terminal is responsive while the file is read.
//
// Keyboard navigation uses vim-style bindings (j/k, /, tab, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
