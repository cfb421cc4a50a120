// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a three-view loop for digging through the cache:
//  1. [MenuView] : Pick an operation (artist, track, playlist, related, featured, posts, search)
//  2. [InputView] : Enter the id or keyword the operation needs
//  3. [ResultView] : View the rendered entity, with charts where they apply
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View
// pattern. Operations run as [tea.Cmd] functions against the explorer, so
// a slow remote fetch never blocks the event loop; a cached entity
// renders immediately.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
