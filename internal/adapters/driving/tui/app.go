package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/haste-cli/internal/adapters/driving/tui/components/editor"
	"github.com/custodia-labs/haste-cli/internal/adapters/driving/tui/components/prompt"
	"github.com/custodia-labs/haste-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/haste-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/haste-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/haste-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/haste-cli/internal/adapters/driving/tui/views/history"
	"github.com/custodia-labs/haste-cli/internal/core/domain"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driven"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driving"
	"github.com/custodia-labs/haste-cli/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation and store requests.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	// session owns the active document.
	session driving.SessionController

	// actions dispatches the action table.
	actions driving.ActionService

	// bindings mirrors the action table as key bindings.
	bindings []keymap.Action

	// presenter collects what the session asks to display.
	presenter *presenter

	editor      *editor.Editor
	prompt      *prompt.Prompt
	status      *status.Bar
	historyView *history.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// reloads is signalled by the configuration watcher.
	reloads chan struct{}

	// preload is a key loaded when the program starts.
	preload string

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	ed := editor.New(s)
	p := &presenter{}

	session, actions := ports.Sessions(ed, p)

	a := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		session:     session,
		actions:     actions,
		bindings:    keymap.Actions(actions.Actions()),
		presenter:   p,
		editor:      ed,
		prompt:      prompt.New(s),
		status:      status.NewBar(s, km),
		historyView: history.NewView(context.Background(), s, ports.History),
		currentView: messages.ViewEditor,
		reloads:     make(chan struct{}, 1),
		width:       80,
		height:      24,
	}
	a.sync()
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.historyView = history.NewView(ctx, a.styles, a.ports.History)
	return a
}

// Preload queues raw ("abc123" or "abc123.py") to load when the program starts.
func (a *App) Preload(raw string) {
	a.preload = raw
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle(a.session.State().Title),
		a.editor.Init(),
	}
	if a.preload != "" {
		raw := a.preload
		cmds = append(cmds, func() tea.Msg { return messages.LoadRequested{Raw: raw} })
	}
	if a.ports.Watch != nil {
		go func() {
			if err := a.ports.Watch(a.ctx, a.notifyReload); err != nil {
				logger.Warn("config watch stopped: %v", err)
			}
		}()
		cmds = append(cmds, a.waitReload)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			return a, tea.Quit
		}
		switch a.currentView {
		case messages.ViewEditor:
			return a.updateEditor(msg)
		case messages.ViewLoad:
			if keymap.Matches(msg.String(), a.keymap.Back) {
				return a.changeView(messages.ViewEditor)
			}
			a.prompt, cmd = a.prompt.Update(msg)
			return a, cmd
		case messages.ViewHistory:
			if keymap.Matches(msg.String(), a.keymap.Back) {
				return a.changeView(messages.ViewEditor)
			}
			a.historyView, cmd = a.historyView.Update(msg)
			return a, cmd
		case messages.ViewHelp:
			if keymap.Matches(msg.String(), a.keymap.Back) || keymap.Matches(msg.String(), a.keymap.Help) {
				return a.changeView(messages.ViewEditor)
			}
		}
		return a, nil

	case messages.ViewChanged:
		return a.changeView(msg.View)

	case messages.LoadRequested:
		a.currentView = messages.ViewEditor
		a.prompt.Blur()
		req := a.session.BeginLoad(msg.Raw)
		a.status.SetState(status.StateLoading)
		return a, tea.Batch(a.sync(), a.run(req))

	case messages.RequestCompleted:
		return a, a.complete(msg.Completion)

	case messages.ActionFailed:
		a.showError(msg.Err)
		return a, nil

	case messages.HistoryLoaded, messages.HistoryCleared:
		a.historyView, cmd = a.historyView.Update(msg)
		return a, cmd

	case messages.SettingsReloaded:
		return a, a.reload(msg)

	case messages.Quit:
		return a, tea.Quit
	}

	switch a.currentView {
	case messages.ViewEditor:
		a.editor, cmd = a.editor.Update(msg)
	case messages.ViewLoad:
		a.prompt, cmd = a.prompt.Update(msg)
	case messages.ViewHistory, messages.ViewHelp:
	}
	return a, cmd
}

// updateEditor routes a key in the editor view. Action keys win over text
// input; everything else reaches the text area.
func (a *App) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), a.keymap.Help):
		return a.changeView(messages.ViewHelp)
	case keymap.Matches(msg.String(), a.keymap.Load):
		return a.changeView(messages.ViewLoad)
	case keymap.Matches(msg.String(), a.keymap.History):
		return a.changeView(messages.ViewHistory)
	}

	req, matched, err := a.actions.DispatchKey(a.ctx, msg.String())
	if matched {
		if err != nil {
			if !errors.Is(err, domain.ErrActionDisabled) {
				a.showError(err)
			}
			return a, a.sync()
		}
		if req != nil {
			a.status.SetState(status.StateSaving)
			return a, tea.Batch(a.sync(), a.run(req))
		}
		a.status.Clear(a.session.State().Saved)
		return a, a.sync()
	}

	if s := a.status.State(); s == status.StateError || s == status.StateInfo {
		a.status.Clear(a.session.State().Saved)
	}
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

// changeView switches the active view and runs its initialisation.
func (a *App) changeView(view messages.ViewType) (tea.Model, tea.Cmd) {
	a.currentView = view
	switch view {
	case messages.ViewEditor:
		a.prompt.Blur()
		a.editor.Focus()
	case messages.ViewLoad:
		a.editor.Blur()
		a.prompt.Reset()
		return a, a.prompt.Focus()
	case messages.ViewHistory:
		a.editor.Blur()
		return a, a.historyView.Init()
	case messages.ViewHelp:
		a.editor.Blur()
	}
	return a, nil
}

// run performs a store request off the UI goroutine.
func (a *App) run(req driving.Request) tea.Cmd {
	ctx := a.ctx
	return func() tea.Msg {
		return messages.RequestCompleted{Completion: req(ctx)}
	}
}

// complete applies a finished request. Completions for documents that are
// no longer active are dropped.
func (a *App) complete(c domain.Completion) tea.Cmd {
	err := a.session.Complete(c)
	if errors.Is(err, domain.ErrStaleCompletion) {
		return nil
	}

	a.status.Clear(a.session.State().Saved)
	if err != nil && c.Operation == domain.OperationLoad {
		a.showError(err)
	}
	return a.sync()
}

// reload applies settings read after a configuration change.
func (a *App) reload(msg messages.SettingsReloaded) tea.Cmd {
	switch {
	case msg.Err != nil:
		a.showError(fmt.Errorf("reloading settings: %w", msg.Err))
	case msg.Settings != nil:
		if r, ok := a.session.(settingsReceiver); ok {
			r.SetSettings(*msg.Settings)
		}
		a.status.SetState(status.StateInfo)
		a.status.SetMessage("Settings reloaded")
	}
	return tea.Batch(a.sync(), a.waitReload)
}

func (a *App) notifyReload() {
	select {
	case a.reloads <- struct{}{}:
	default:
	}
}

// waitReload blocks until the watcher reports a change.
func (a *App) waitReload() tea.Msg {
	select {
	case <-a.ctx.Done():
		return nil
	case <-a.reloads:
	}
	s, err := a.ports.Settings.Get()
	return messages.SettingsReloaded{Settings: s, Err: err}
}

func (a *App) showError(err error) {
	a.status.SetState(status.StateError)
	a.status.SetMessage(err.Error())
}

// sync pushes session state into the widgets. It returns a command when
// the window title changed.
func (a *App) sync() tea.Cmd {
	state := a.session.State()

	keymap.SetEnabled(a.bindings, a.presenter.enabled)
	table := a.actions.Actions()
	for i := range a.bindings {
		if a.bindings[i].Binding.Enabled() && !table[i].Enabled() {
			a.bindings[i].Binding.SetEnabled(false)
		}
	}

	a.editor.SetReadOnly(state.Saved || state.Busy)
	a.status.SetPath(state.Path)
	a.status.SetActions(keymap.EnabledBindings(a.bindings))

	if msg, level, ok := a.presenter.takeMessage(); ok {
		a.status.SetMessage(msg)
		if level == driven.MessageError {
			a.status.SetState(status.StateError)
		} else {
			a.status.SetState(status.StateInfo)
		}
	}

	if title, ok := a.presenter.takeTitle(); ok {
		return tea.SetWindowTitle(title)
	}
	return nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewLoad:
		return a.viewLoad()
	case messages.ViewHistory:
		return a.historyView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewEditor:
	}
	return a.viewEditor()
}

func (a *App) viewEditor() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render(a.session.State().Title))
	b.WriteString("\n")
	b.WriteString(a.editor.View())
	b.WriteString("\n")
	b.WriteString(a.status.View())
	return b.String()
}

func (a *App) viewLoad() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Load document"))
	b.WriteString("\n\n")
	b.WriteString(a.prompt.View())
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[enter] load  [esc] back"))
	return b.String()
}

func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	b.WriteString(a.styles.Normal.Render("Actions:"))
	b.WriteString("\n")
	for _, act := range a.actions.Actions() {
		b.WriteString(fmt.Sprintf("  %-10s %s\n", act.ShortcutDescription, act.Label))
	}

	for _, row := range a.keymap.FullHelp() {
		b.WriteString("\n")
		for _, k := range row {
			h := k.Help()
			b.WriteString(fmt.Sprintf("  %-10s %s\n", h.Key, h.Desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("[esc] back"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && a.ctx.Err() != nil {
		return nil
	}
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// State returns the session snapshot.
func (a *App) State() domain.SessionState {
	return a.session.State()
}

// Status returns the status bar.
func (a *App) Status() *status.Bar {
	return a.status
}

// Editor returns the editor component.
func (a *App) Editor() *editor.Editor {
	return a.editor
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.editor.SetDimensions(width, height-3)
	a.prompt.SetWidth(width)
	a.status.SetWidth(width)
	a.historyView.SetDimensions(width, height)
}

// presenter buffers session output until the next sync. Session calls
// happen on the UI goroutine, so no locking is needed.
type presenter struct {
	title      string
	titleDirty bool
	message    string
	level      driven.MessageLevel
	hasMessage bool
	enabled    []domain.ActionName
}

// Ensure presenter implements the interface.
var _ driven.Presenter = (*presenter)(nil)

func (p *presenter) SetTitle(title string) {
	if title != p.title {
		p.title = title
		p.titleDirty = true
	}
}

func (p *presenter) ShowMessage(msg string, level driven.MessageLevel) {
	p.message = msg
	p.level = level
	p.hasMessage = true
}

func (p *presenter) ConfigureKey(enabled []domain.ActionName) {
	p.enabled = enabled
}

func (p *presenter) takeTitle() (string, bool) {
	if !p.titleDirty {
		return "", false
	}
	p.titleDirty = false
	return p.title, true
}

func (p *presenter) takeMessage() (string, driven.MessageLevel, bool) {
	if !p.hasMessage {
		return "", "", false
	}
	p.hasMessage = false
	return p.message, p.level, true
}
