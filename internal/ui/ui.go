package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/soundwhiskers/swx/internal/models"
	"github.com/soundwhiskers/swx/internal/notify"
	"github.com/soundwhiskers/swx/internal/workflows"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	PromptView ViewState = iota
	GeneratingView
	PreviewView
	ConfirmView
	CreatingView
	ResultView
)

// Model represents the TUI application state.
type Model struct {
	ctx        context.Context
	view       ViewState
	generation *workflows.GenerationWorkflow
	creation   *workflows.CreationWorkflow
	notices    *notify.Recorder

	width  int
	height int

	promptInput textinput.Model
	nameInput   textinput.Model
	spin        spinner.Model
	previewList list.Model

	result *models.Playlist
	err    error

	help help.Model
	keys keyMap
}

// NewModel creates a new TUI model with the provided workflows.
//
// Both workflows must be constructed with notices as their notifier so the
// TUI can render the notifications they emit.
func NewModel(ctx context.Context, generation *workflows.GenerationWorkflow, creation *workflows.CreationWorkflow, notices *notify.Recorder) *Model {
	prompt := textinput.New()
	prompt.Placeholder = "upbeat songs for a morning run"
	prompt.CharLimit = 300
	prompt.Width = 60
	prompt.Focus()

	name := textinput.New()
	name.Placeholder = "Playlist name"
	name.CharLimit = 100
	name.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		ctx:         ctx,
		view:        PromptView,
		generation:  generation,
		creation:    creation,
		notices:     notices,
		promptInput: prompt,
		nameInput:   name,
		spin:        sp,
		help:        help.New(),
		keys:        newKeyMap(),
	}
}

// Init focuses the prompt input.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.previewList.Width() == 0 {
			m.previewList.SetSize(msg.Width-4, msg.Height-10)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case PromptView:
			return m.handlePromptKeys(msg)
		case PreviewView:
			return m.handlePreviewKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		case GeneratingView, CreatingView:
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case generationDoneMsg:
		return m.handleGenerationDone(msg)

	case creationDoneMsg:
		m.result = msg.playlist
		m.view = ResultView
		return m, nil
	}

	return m.updateInputs(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case PromptView:
		return m.renderPrompt()
	case GeneratingView:
		return m.renderGenerating()
	case PreviewView:
		return m.renderPreview()
	case ConfirmView:
		return m.renderConfirm()
	case CreatingView:
		return m.renderCreating()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		prompt := strings.TrimSpace(m.promptInput.Value())
		if prompt == "" {
			return m, nil
		}
		m.notices.Reset()
		m.view = GeneratingView
		return m, tea.Batch(m.spin.Tick, m.runGeneration(prompt))
	}

	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(msg)
	return m, cmd
}

func (m *Model) handlePreviewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.generation.Reset()
		m.view = PromptView
		return m, textinput.Blink
	case "enter":
		preview := m.generation.Preview()
		if preview != nil {
			m.nameInput.SetValue(preview.Prompt)
			m.nameInput.Focus()
		}
		m.view = ConfirmView
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.previewList, cmd = m.previewList.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = PreviewView
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			return m, nil
		}
		m.notices.Reset()
		m.view = CreatingView
		return m, tea.Batch(m.spin.Tick, m.runCreation(name))
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.generation.Reset()
		m.result = nil
		m.err = nil
		m.promptInput.SetValue("")
		m.promptInput.Focus()
		m.view = PromptView
		return m, textinput.Blink
	}
	return m, nil
}

func (m *Model) handleGenerationDone(msg generationDoneMsg) (tea.Model, tea.Cmd) {
	m.err = msg.err

	preview := m.generation.Preview()
	if !m.generation.IsPreviewing() || preview == nil {
		m.view = PromptView
		return m, textinput.Blink
	}

	items := make([]list.Item, len(preview.Tracks))
	for i, track := range preview.Tracks {
		items[i] = trackItem{track: track}
	}
	m.previewList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.previewList.Title = fmt.Sprintf("Preview: %s", preview.Prompt)
	m.previewList.SetSize(m.width-4, m.height-10)
	m.view = PreviewView
	return m, nil
}

func (m *Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case PromptView:
		m.promptInput, cmd = m.promptInput.Update(msg)
	case ConfirmView:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case PreviewView:
		m.previewList, cmd = m.previewList.Update(msg)
	}
	return m, cmd
}

func (m *Model) runGeneration(prompt string) tea.Cmd {
	return func() tea.Msg {
		err := m.generation.Generate(m.ctx, prompt)
		return generationDoneMsg{err: err}
	}
}

func (m *Model) runCreation(name string) tea.Cmd {
	preview := m.generation.Preview()

	draft := models.PlaylistDraft{
		Name:   name,
		Prompt: preview.Prompt,
		Tracks: preview.Tracks,
	}

	return func() tea.Msg {
		playlist, _ := m.creation.Create(m.ctx, draft)
		if playlist != nil {
			m.generation.Reset()
		}
		return creationDoneMsg{playlist: playlist}
	}
}

// renderNotices renders the recorded workflow notifications, most recent last.
func (m *Model) renderNotices() string {
	notifications := m.notices.All()
	if len(notifications) == 0 {
		return ""
	}

	var lines []string
	for _, n := range notifications {
		switch n.Severity {
		case notify.Error:
			lines = append(lines, styles.err.Render(n.Message))
		case notify.Warning:
			lines = append(lines, styles.warn.Render(n.Message))
		case notify.Success:
			lines = append(lines, styles.ok.Render(n.Message))
		default:
			lines = append(lines, n.Message)
		}
	}
	return "\n" + strings.Join(lines, "\n") + "\n"
}

func (m *Model) renderPrompt() string {
	title := styles.title.Render("Sound Whiskers")
	label := "Describe the playlist you want:"

	quitKey := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit"))
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, quitKey})

	return fmt.Sprintf("%s\n%s\n\n%s\n%s\n%s", title, label, m.promptInput.View(), m.renderNotices(), helpView)
}

func (m *Model) renderGenerating() string {
	title := styles.title.Render("Generating Playlist")
	return fmt.Sprintf("%s\n%s Asking the model for tracks...\n", title, m.spin.View())
}

func (m *Model) renderPreview() string {
	saveKey := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save"))
	helpKeys := []key.Binding{saveKey, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n%s", m.previewList.View(), m.renderNotices(), helpView)
}

func (m *Model) renderConfirm() string {
	preview := m.generation.Preview()
	title := styles.title.Render("Save Playlist")
	info := fmt.Sprintf("Tracks: %d\n\nName:\n%s", preview.Count, m.nameInput.View())

	createKey := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "create"))
	helpView := m.help.ShortHelpView([]key.Binding{createKey, m.keys.back})

	return fmt.Sprintf("%s\n%s\n\n%s", title, info, helpView)
}

func (m *Model) renderCreating() string {
	title := styles.title.Render("Saving Playlist")
	return fmt.Sprintf("%s\n%s Creating playlist...\n", title, m.spin.View())
}

func (m *Model) renderResult() string {
	helpKeys := []key.Binding{m.keys.restart, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	if m.result == nil {
		body := styles.err.Render("Playlist was not created.")
		return fmt.Sprintf("%s\n%s\n%s", body, m.renderNotices(), helpView)
	}

	title := styles.ok.Render("✓ Playlist Created")
	info := fmt.Sprintf("\n%s (ID: %s)\nTracks: %d\n\nExport it with: swx export spotify %s", m.result.Name, m.result.ID, m.result.TrackCount, m.result.ID)

	return fmt.Sprintf("%s%s\n%s\n%s", title, info, m.renderNotices(), helpView)
}
