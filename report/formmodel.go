package report

import (
	"context"
	"sync"

	"fieldreport/common"
)

// FormModel binds a FormState to the effect executor for one screen
// instance. Dispatch applies the reducer and runs the requested effects
// sequentially; a failed pending-reason fetch is tolerated silently (the
// dropdown stays empty, the form is not blocked). Close marks the screen
// as unmounted so late effect results are discarded instead of mutating
// disposed state.
type FormModel struct {
	mu sync.Mutex

	state          FormState
	pendingReasons []string
	closed         bool

	username string
	password string
}

func NewFormModel(workItemID, username, password string) *FormModel {
	return &FormModel{
		state:    FormState{WorkItemID: workItemID},
		username: username,
		password: password,
	}
}

func (m *FormModel) State() FormState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *FormModel) PendingReasons() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pendingReasons
}

func (m *FormModel) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}

func (m *FormModel) Dispatch(ctx context.Context, a Action) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	next, effects := Apply(m.state, a)
	m.state = next
	username, password := m.username, m.password
	m.mu.Unlock()

	for _, effect := range effects {
		switch effect {
		case EffectFetchPendingReasons:
			reasons, err := FetchPendingReasonsFunc(ctx, username, password)
			if err != nil {
				common.Log.Warnf("pending reason fetch failed: %v", err)
				reasons = nil
			}
			m.mu.Lock()
			if !m.closed {
				m.pendingReasons = reasons
			}
			m.mu.Unlock()
		}
	}
}
