// Package nav is the top-level navigation state machine: name gate, stage
// map, and one active stage session at a time.
package nav

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/allyquest/internal/catalog"
	"github.com/abhisek/allyquest/internal/identity"
	"github.com/abhisek/allyquest/internal/progress"
)

// Kind tags the active state.
type Kind int

const (
	NameGate Kind = iota
	Map
	Stage
)

func (k Kind) String() string {
	switch k {
	case NameGate:
		return "name-gate"
	case Map:
		return "map"
	case Stage:
		return "stage"
	default:
		return "unknown"
	}
}

// State is the current navigation state. StageID and SessionID are set only
// when Kind is Stage.
type State struct {
	Kind      Kind
	StageID   int
	SessionID string
}

// Machine owns navigation transitions. It is not safe for concurrent use;
// the TUI event loop is its only caller.
type Machine struct {
	catalog  *catalog.Catalog
	tracker  *progress.Tracker
	identity *identity.Store
	logger   *zap.Logger
	newID    func() string

	state      State
	credited   bool
	celebrated bool
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Machine) { m.logger = l }
}

// WithSessionIDs overrides session id generation.
func WithSessionIDs(f func() string) Option {
	return func(m *Machine) { m.newID = f }
}

// New creates a machine starting at the name gate when no name is stored,
// otherwise at the map.
func New(cat *catalog.Catalog, tracker *progress.Tracker, ident *identity.Store, opts ...Option) *Machine {
	m := &Machine{
		catalog:  cat,
		tracker:  tracker,
		identity: ident,
		logger:   zap.NewNop(),
		newID:    uuid.NewString,
	}
	for _, o := range opts {
		o(m)
	}
	if ident.HasName() {
		m.state = State{Kind: Map}
	} else {
		m.state = State{Kind: NameGate}
	}
	return m
}

func (m *Machine) State() State               { return m.state }
func (m *Machine) Catalog() *catalog.Catalog  { return m.catalog }
func (m *Machine) Tracker() *progress.Tracker { return m.tracker }
func (m *Machine) Identity() *identity.Store  { return m.identity }

// SubmitName saves a trimmed non-empty name and moves to the map.
func (m *Machine) SubmitName(ctx context.Context, name string) bool {
	if m.state.Kind != NameGate {
		return false
	}
	if !m.identity.SetName(ctx, name) {
		return false
	}
	m.state = State{Kind: Map}
	m.logger.Debug("name submitted")
	return true
}

// SelectStage opens a new session for an unlocked stage.
func (m *Machine) SelectStage(stageID int) (State, bool) {
	if m.state.Kind != Map {
		return m.state, false
	}
	if _, ok := m.catalog.Stage(stageID); !ok || !m.tracker.IsUnlocked(stageID) {
		return m.state, false
	}
	m.state = State{Kind: Stage, StageID: stageID, SessionID: m.newID()}
	m.credited = false
	m.logger.Debug("stage opened",
		zap.Int("stage", stageID),
		zap.String("session", m.state.SessionID))
	return m.state, true
}

// CompleteStage records the rating for the active session. Only the first
// report for a session counts; reports for any other session are ignored.
func (m *Machine) CompleteStage(ctx context.Context, sessionID string, stars int) bool {
	if !m.inSession(sessionID) || m.credited {
		return false
	}
	if stars < 1 || stars > 3 {
		m.logger.Warn("rating out of range", zap.Int("stars", stars))
		return false
	}
	m.tracker.CompleteStage(ctx, m.state.StageID, stars)
	m.credited = true
	m.logger.Info("stage completed",
		zap.Int("stage", m.state.StageID),
		zap.Int("stars", stars))
	return true
}

// ReturnToMap performs the deferred return after a completion. It does
// nothing unless sessionID is still the active session.
func (m *Machine) ReturnToMap(sessionID string) bool {
	if !m.inSession(sessionID) {
		return false
	}
	m.state = State{Kind: Map}
	return true
}

// Back leaves a stage without credit, or cancels a name edit when a name is
// already stored.
func (m *Machine) Back() bool {
	switch m.state.Kind {
	case Stage:
		m.logger.Debug("stage abandoned", zap.String("session", m.state.SessionID))
		m.state = State{Kind: Map}
		return true
	case NameGate:
		if m.identity.HasName() {
			m.state = State{Kind: Map}
			return true
		}
	}
	return false
}

// EditIdentity returns to the name gate from the map.
func (m *Machine) EditIdentity() bool {
	if m.state.Kind != Map {
		return false
	}
	m.state = State{Kind: NameGate}
	return true
}

// ShouldCelebrate reports true the first time the map is shown with every
// stage complete. It rearms if the condition is lost.
func (m *Machine) ShouldCelebrate() bool {
	if !m.tracker.AllComplete(m.catalog.Len()) {
		m.celebrated = false
		return false
	}
	if m.state.Kind != Map || m.celebrated {
		return false
	}
	m.celebrated = true
	return true
}

func (m *Machine) inSession(sessionID string) bool {
	return m.state.Kind == Stage && sessionID != "" && m.state.SessionID == sessionID
}
