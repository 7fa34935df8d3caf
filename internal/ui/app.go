package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"wgtui/internal/peer"
)

// StatusLine is the one-line message shown in the footer in place of the key help.
type StatusLine struct {
	Text string
	Err  bool
}

// AppModel is the root model: the peer table, the log list, which of the two
// has focus, the open modal (nil when none) and the footer status.
//
// HandleKey reduces one key press to completion, including any provider write
// it triggers, so every key observes the state left by the previous one.
type AppModel struct {
	Peers        *SelectableList[peer.Peer]
	Logs         *SelectableList[peer.LogEntry]
	Focus        *FocusManager
	Modal        Modal
	Status       StatusLine
	ShowFullHelp bool
	Keys         keyMap

	// Title is shown in the header after the application name.
	Title         string
	Width, Height int

	Provider peer.Provider
	Events   peer.EventSource
	// CallTimeout bounds each provider call; zero means only ctx bounds it.
	CallTimeout time.Duration

	ctx         context.Context
	generateKey func() (peer.KeyPair, error)
}

// navigable is the cursor surface shared by the peer table and the log list.
type navigable interface {
	SelectFirst()
	SelectLast()
	SelectNext()
	SelectPrevious()
	ClearSelection()
}

// DefaultCallTimeout bounds a single provider call made by NewAppModel models.
const DefaultCallTimeout = 15 * time.Second

// NewAppModel creates the root model. provider must be non-nil; events may be nil.
// ctx and CallTimeout bound every provider call made from the model.
func NewAppModel(ctx context.Context, provider peer.Provider, events peer.EventSource) *AppModel {
	m := &AppModel{
		Peers:       NewSelectableList[peer.Peer](nil),
		Logs:        NewSelectableList[peer.LogEntry](nil),
		Focus:       NewFocusManager(FocusPeers, FocusLogs),
		Keys:        DefaultKeyMap(),
		Provider:    provider,
		Events:      events,
		CallTimeout: DefaultCallTimeout,
		ctx:         ctx,
		generateKey: peer.GenerateKeyPair,
	}
	m.Focus.OnChange = m.onFocusChange
	return m
}

// Load fetches peers and events synchronously and applies them.
func (m *AppModel) Load() {
	m.Apply(loadPeers(m.ctx, m.CallTimeout, m.Provider))
	m.Apply(loadLogs(m.ctx, m.CallTimeout, m.Events))
}

// HandleKey applies one key press and reports whether the program should exit.
func (m *AppModel) HandleKey(msg tea.KeyMsg) (exit bool) {
	if key.Matches(msg, m.Keys.ForceQuit) {
		return true
	}
	if m.Modal != nil {
		m.Apply(m.Modal.HandleKey(msg))
		return false
	}
	return m.handleMainKey(msg)
}

// Apply handles a non-key message: load results, window size and modal requests.
// Unknown messages are ignored.
func (m *AppModel) Apply(msg tea.Msg) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
	case PeersLoadedMsg:
		if msg.Err != nil {
			m.setError(msg.Err)
			return
		}
		m.Peers.ReplaceItems(msg.Peers)
		if m.Focus.Current != FocusPeers {
			m.Peers.ClearSelection()
		}
	case LogsLoadedMsg:
		if msg.Err != nil {
			m.setError(msg.Err)
			return
		}
		m.Logs.ReplaceItems(msg.Logs)
		if m.Focus.Current != FocusLogs {
			m.Logs.ClearSelection()
		}
	case DismissModalMsg:
		m.Modal = nil
	case SubmitPeerMsg:
		m.submit(msg.Form)
	case DeletePeerMsg:
		m.deletePeer(msg)
	case GenerateKeyMsg:
		m.fillGeneratedKey()
	}
}

func (m *AppModel) handleMainKey(msg tea.KeyMsg) bool {
	if !key.Matches(msg, m.Keys.Help) {
		m.Status = StatusLine{}
	}
	current := m.surface(m.Focus.Current)
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return true
	case key.Matches(msg, m.Keys.SwitchFocus):
		if msg.Type == tea.KeyShiftTab {
			m.Focus.Prev()
		} else {
			m.Focus.Next()
		}
	case key.Matches(msg, m.Keys.Top):
		current.SelectFirst()
	case key.Matches(msg, m.Keys.Bottom):
		current.SelectLast()
	case key.Matches(msg, m.Keys.Down):
		current.SelectNext()
	case key.Matches(msg, m.Keys.Up):
		current.SelectPrevious()
	case key.Matches(msg, m.Keys.Refresh):
		m.refresh()
	case key.Matches(msg, m.Keys.Help):
		m.ShowFullHelp = !m.ShowFullHelp
	case m.Focus.Current != FocusPeers:
		// Peer actions only apply to the table.
	case key.Matches(msg, m.Keys.Add):
		m.Modal = NewCreatePeerModal()
	case key.Matches(msg, m.Keys.Edit):
		if p, ok := m.Peers.SelectedItem(); ok {
			i, _ := m.Peers.Selected()
			m.Modal = NewEditPeerModal(p, i)
		}
	case key.Matches(msg, m.Keys.Delete):
		if p, ok := m.Peers.SelectedItem(); ok {
			i, _ := m.Peers.Selected()
			m.Modal = NewDeletePeerModal(p, i)
		}
	}
	return false
}

func (m *AppModel) surface(f Focus) navigable {
	if f == FocusLogs {
		return m.Logs
	}
	return m.Peers
}

// onFocusChange moves the only visible cursor to the newly focused surface.
func (m *AppModel) onFocusChange(from, to Focus) {
	m.surface(from).ClearSelection()
	m.surface(to).SelectFirst()
}

func (m *AppModel) refresh() {
	m.Load()
	if !m.Status.Err {
		m.setStatus("Loaded %d peers, %d events", m.Peers.Len(), m.Logs.Len())
	}
}

// submit applies a create or edit form. On failure the modal stays open with the form intact.
func (m *AppModel) submit(f *FieldForm) {
	if err := f.Check(); err != nil {
		m.setError(err)
		return
	}
	p := f.ToPeer()
	switch f.Mode {
	case FormCreate:
		ctx, cancel := withTimeout(m.ctx, m.CallTimeout)
		err := m.Provider.Add(ctx, p)
		cancel()
		if err != nil {
			m.setError(err)
			return
		}
		m.Peers.Append(p)
		if _, ok := m.Peers.Selected(); !ok && m.Focus.Current == FocusPeers {
			m.Peers.SelectLast()
		}
		m.Modal = nil
		m.setStatus("Added peer %s", p.Label())
	case FormEdit:
		idx, current, err := m.resolve("update", f.Source, f.SourceIndex)
		if err != nil {
			m.setError(err)
			return
		}
		ctx, cancel := withTimeout(m.ctx, m.CallTimeout)
		err = m.Provider.Update(ctx, current, p)
		cancel()
		if err != nil {
			m.setError(err)
			return
		}
		m.Peers.Set(idx, p)
		m.Modal = nil
		m.setStatus("Updated peer %s", p.Label())
	}
	m.reloadLogs()
}

func (m *AppModel) deletePeer(req DeletePeerMsg) {
	idx, current, err := m.resolve("remove", &req.Target, req.Index)
	if err != nil {
		m.setError(err)
		return
	}
	ctx, cancel := withTimeout(m.ctx, m.CallTimeout)
	err = m.Provider.Remove(ctx, current)
	cancel()
	if err != nil {
		m.setError(err)
		return
	}
	m.Peers.RemoveAt(idx)
	m.Modal = nil
	m.setStatus("Removed peer %s", current.Label())
	m.reloadLogs()
}

// resolve finds the row now holding the peer a modal captured when it opened.
// Peers are matched by public key; a keyless peer must still sit at its old row.
func (m *AppModel) resolve(op string, src *peer.Peer, index int) (int, peer.Peer, error) {
	idx := -1
	if src != nil && src.PublicKey != "" {
		idx = m.Peers.IndexFunc(func(p peer.Peer) bool { return p.PublicKey == src.PublicKey })
	} else if src != nil && index >= 0 && index < m.Peers.Len() && m.Peers.Items()[index] == *src {
		idx = index
	}
	if idx < 0 {
		return -1, peer.Peer{}, peer.NewProviderError(op, src,
			fmt.Errorf("%w: peer changed since it was selected", peer.ErrConflict))
	}
	return idx, m.Peers.Items()[idx], nil
}

// reloadLogs picks up events produced by a write. Failures only reach the log file.
func (m *AppModel) reloadLogs() {
	msg := loadLogs(m.ctx, m.CallTimeout, m.Events)
	if msg.Err != nil {
		return
	}
	m.Apply(msg)
}

func (m *AppModel) fillGeneratedKey() {
	cm, ok := m.Modal.(*CreatePeerModal)
	if !ok {
		return
	}
	kp, err := m.generateKey()
	if err != nil {
		m.setError(fmt.Errorf("generate key: %w", err))
		return
	}
	cm.Form.SetValue(FieldPublicKey, kp.Public)
	m.setStatus("Private key: %s", kp.Private)
}

func (m *AppModel) setStatus(format string, args ...any) {
	m.Status = StatusLine{Text: fmt.Sprintf(format, args...)}
}

func (m *AppModel) setError(err error) {
	log.Printf("error: %v", err)
	m.Status = StatusLine{Text: err.Error(), Err: true}
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(
		loadPeersCmd(a.ctx, a.CallTimeout, a.Provider),
		loadLogsCmd(a.ctx, a.CallTimeout, a.Events),
	)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if a.HandleKey(msg) {
			return a, tea.Quit
		}
		return a, nil
	}
	a.Apply(msg)
	return a, nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.AppModel.View()
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Run drives m in the alternate screen until the user quits or ctx is done.
func Run(ctx context.Context, m *AppModel, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(m.AsTeaModel(), opts...).Run()
	return err
}
