package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cratedig/cratedig/internal/explorer"
	"github.com/cratedig/cratedig/internal/formatter"
	"github.com/cratedig/cratedig/internal/services"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	MenuView ViewState = iota
	InputView
	LoadingView
	ResultView
)

// Model represents the TUI application state.
type Model struct {
	ctx      context.Context
	view     ViewState
	explorer *explorer.Explorer
	width    int
	height   int
	menu     list.Model
	input    textinput.Model
	selected menuItem
	result   resultMsg
	help     help.Model
	keys     keyMap
}

// NewModel creates a new TUI model over the given explorer.
func NewModel(ctx context.Context, e *explorer.Explorer) *Model {
	menu := list.New(menuItems(), list.NewDefaultDelegate(), 0, 0)
	menu.Title = "cratedig"

	input := textinput.New()
	input.CharLimit = 120

	return &Model{
		ctx:      ctx,
		view:     MenuView,
		explorer: e,
		menu:     menu,
		input:    input,
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menu.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case MenuView:
			return m.handleMenuKeys(msg)
		case InputView:
			return m.handleInputKeys(msg)
		case LoadingView:
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		case ResultView:
			return m.handleResultKeys(msg)
		}

	case resultMsg:
		m.result = msg
		m.view = ResultView
		return m, nil
	}

	if m.view == MenuView {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case MenuView:
		return m.renderMenu()
	case InputView:
		return m.renderInput()
	case LoadingView:
		return m.renderLoading()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handleMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		selected := m.menu.SelectedItem()
		if selected == nil {
			return m, nil
		}
		item, ok := selected.(menuItem)
		if !ok {
			return m, nil
		}
		m.selected = item
		if item.prompt == "" {
			m.view = LoadingView
			return m, m.runOperation("")
		}
		m.input.SetValue("")
		m.input.Prompt = fmt.Sprintf("%s: ", item.prompt)
		m.input.Focus()
		m.view = InputView
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = MenuView
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		if value == "" {
			return m, nil
		}
		m.view = LoadingView
		return m, m.runOperation(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r", "esc":
		m.view = MenuView
		m.result = resultMsg{}
		return m, nil
	}
	return m, nil
}

// runOperation executes the selected explorer operation off the event
// loop and delivers a rendered result.
func (m *Model) runOperation(value string) tea.Cmd {
	op := m.selected.op
	title := m.selected.title

	return func() tea.Msg {
		switch op {
		case opArtist:
			artist, err := m.explorer.GetArtist(m.ctx, value)
			if err != nil {
				return resultMsg{title: title, err: err}
			}
			return resultMsg{title: title, body: artist.String()}

		case opTrack:
			track, err := m.explorer.GetTrack(m.ctx, value)
			if err != nil {
				return resultMsg{title: title, err: err}
			}
			return resultMsg{title: title, body: track.String()}

		case opPlaylist:
			playlist, err := m.explorer.GetPlaylist(m.ctx, value)
			if err != nil {
				return resultMsg{title: title, err: err}
			}
			body := playlist.String()
			if len(playlist.Tracks) > 0 {
				body += "\n" + formatter.PopularityChart(playlist.Tracks)
			}
			return resultMsg{title: title, body: body}

		case opRelated:
			artists, err := m.explorer.GetRelatedArtists(m.ctx, value)
			if err != nil {
				return resultMsg{title: title, err: err}
			}
			if len(artists) == 0 {
				return resultMsg{title: title, body: "No related artists."}
			}
			return resultMsg{title: title, body: formatter.FollowerChart(artists)}

		case opFeatured:
			playlists, err := m.explorer.GetFeaturedPlaylists(m.ctx)
			if err != nil {
				return resultMsg{title: title, err: err}
			}
			var b strings.Builder
			for i, p := range playlists {
				fmt.Fprintf(&b, "%d. %s (%s, %d tracks)\n", i+1, p.Name, p.Owner, len(p.Tracks))
			}
			if b.Len() == 0 {
				b.WriteString("No featured playlists.")
			}
			return resultMsg{title: title, body: b.String()}

		case opPosts:
			posts, err := m.explorer.GetPostsByTrack(m.ctx, value)
			if err != nil {
				return resultMsg{title: title, err: err}
			}
			var b strings.Builder
			for _, p := range posts {
				b.WriteString(p.String())
				b.WriteString("\n")
			}
			if b.Len() == 0 {
				b.WriteString("No posts found.")
			}
			return resultMsg{title: title, body: b.String()}

		case opSearchArtists, opSearchTracks, opSearchPlaylists:
			kind := services.KindArtist
			switch op {
			case opSearchTracks:
				kind = services.KindTrack
			case opSearchPlaylists:
				kind = services.KindPlaylist
			}
			results, err := m.explorer.Search(m.ctx, value, kind)
			if err != nil {
				return resultMsg{title: title, err: err}
			}
			var b strings.Builder
			for _, r := range results {
				fmt.Fprintf(&b, "%s  %s", r.ID, r.Name)
				if r.Detail != "" {
					fmt.Fprintf(&b, " (%s)", r.Detail)
				}
				b.WriteString("\n")
			}
			if b.Len() == 0 {
				b.WriteString("No results.")
			}
			return resultMsg{title: title, body: b.String()}
		}

		return resultMsg{title: title, err: fmt.Errorf("unknown operation")}
	}
}

func (m *Model) renderMenu() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.menu.View(), helpView)
}

func (m *Model) renderInput() string {
	title := styles.title.Render(m.selected.title)
	helpKeys := []key.Binding{m.keys.enter, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n\n%s", title, m.input.View(), helpView)
}

func (m *Model) renderLoading() string {
	return styles.help.Render(fmt.Sprintf("Looking up %s...", strings.ToLower(m.selected.title)))
}

func (m *Model) renderResult() string {
	title := styles.title.Render(m.selected.title)

	var body string
	if m.result.err != nil {
		body = styles.err.Render(fmt.Sprintf("Error: %v", m.result.err))
	} else {
		body = m.result.body
	}

	helpKeys := []key.Binding{m.keys.restart, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s", title, body, helpView)
}
