// Package app wires the navigation machine to the Bubble Tea screen router.
package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/allyquest/internal/catalog"
	"github.com/abhisek/allyquest/internal/config"
	"github.com/abhisek/allyquest/internal/identity"
	"github.com/abhisek/allyquest/internal/kv"
	"github.com/abhisek/allyquest/internal/nav"
	"github.com/abhisek/allyquest/internal/notes"
	"github.com/abhisek/allyquest/internal/progress"
	"github.com/abhisek/allyquest/internal/router"
	"github.com/abhisek/allyquest/internal/screen"
	"github.com/abhisek/allyquest/internal/screens/celebrate"
	"github.com/abhisek/allyquest/internal/screens/namegate"
	"github.com/abhisek/allyquest/internal/screens/stage"
	"github.com/abhisek/allyquest/internal/screens/stagemap"
	"github.com/abhisek/allyquest/internal/screens/welcome"
	"github.com/abhisek/allyquest/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Store   kv.Store
	Catalog *catalog.Catalog
	Timing  config.TimingConfig
	Logger  *zap.Logger
	// Changes delivers keys rewritten by other processes. Optional.
	Changes <-chan string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctx     context.Context
	machine *nav.Machine
	notes   *notes.Store
	router  *router.Router
	timing  config.TimingConfig
	logger  *zap.Logger
	changes <-chan string
	width   int
	height  int
}

func newAppModel(ctx context.Context, opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	tracker := progress.NewTracker(ctx, opts.Store, logger)
	ident := identity.NewStore(ctx, opts.Store, logger)
	m := AppModel{
		ctx:     ctx,
		machine: nav.New(opts.Catalog, tracker, ident, nav.WithLogger(logger)),
		notes:   notes.NewStore(opts.Store, logger),
		timing:  opts.Timing,
		logger:  logger,
		changes: opts.Changes,
	}

	if opts.Timing.Splash > 0 {
		m.router = router.New(welcome.New(opts.Timing.Splash))
	} else {
		m.router = router.New(m.screenForState())
		if m.machine.ShouldCelebrate() {
			m.router.Push(celebrate.New(tracker.TotalStars()))
		}
	}
	return m
}

// screenForState builds the screen matching the machine's current state.
func (m AppModel) screenForState() screen.Screen {
	st := m.machine.State()
	switch st.Kind {
	case nav.NameGate:
		return namegate.New(m.machine.Identity().Name())
	case nav.Stage:
		desc, _ := m.machine.Catalog().Stage(st.StageID)
		return stage.New(desc, st.SessionID, stage.Deps{
			Catalog: m.machine.Catalog(),
			Notes:   m.notes,
			Author:  m.machine.Identity().Name(),
			Timing:  m.timing,
		})
	default:
		return stagemap.New(m.machine.Catalog(), m.machine.Tracker())
	}
}

// show resets the router to the state's screen and pushes the celebration
// overlay when it is due.
func (m AppModel) show() tea.Cmd {
	cmd := m.router.Reset(m.screenForState())
	if m.machine.ShouldCelebrate() {
		return tea.Batch(cmd, m.router.Push(celebrate.New(m.machine.Tracker().TotalStars())))
	}
	return cmd
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.waitForChange())
}

// waitForChange blocks on the next store change notification.
func (m AppModel) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		key, ok := <-ch
		if !ok {
			return nil
		}
		return nav.StoreChangedMsg{Key: key}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case nav.StartMsg:
		return m, m.show()

	case nav.SubmitNameMsg:
		if m.machine.SubmitName(m.ctx, msg.Name) {
			return m, m.show()
		}
		return m, nil

	case nav.EditNameMsg:
		if m.machine.EditIdentity() {
			return m, m.show()
		}
		return m, nil

	case nav.SelectStageMsg:
		if _, ok := m.machine.SelectStage(msg.StageID); ok {
			return m, m.show()
		}
		return m, nil

	case nav.StageCompleteMsg:
		m.machine.CompleteStage(m.ctx, msg.SessionID, msg.Stars)
		return m, nil

	case nav.ReturnToMapMsg:
		if m.machine.ReturnToMap(msg.SessionID) {
			return m, m.show()
		}
		return m, nil

	case nav.BackMsg:
		if p := msg.Pending; p != nil {
			m.machine.CompleteStage(m.ctx, p.SessionID, p.Stars)
		}
		if m.machine.Back() {
			return m, m.show()
		}
		return m, nil

	case nav.StoreChangedMsg:
		m.logger.Debug("store changed", zap.String("key", msg.Key))
		return m, tea.Batch(m.router.Update(msg), m.waitForChange())
	}

	return m, m.router.Update(msg)
}

func (m AppModel) header(title string) string {
	info := layout.HeaderInfo{Total: m.machine.Catalog().Len()}
	if m.machine.State().Kind != nav.NameGate {
		t := m.machine.Tracker()
		info.Name = m.machine.Identity().Name()
		info.Stars = t.TotalStars()
		info.Completed = t.CompletedCount()
	}
	return layout.RenderHeader(title, info, m.width)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	var hints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if p, ok := active.(screen.KeyHintProvider); ok {
			hints = p.KeyHints()
		}
	}
	if hints == nil {
		hints = []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	header := m.header(title)
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(ctx, opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
