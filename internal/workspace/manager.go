package workspace

import (
	"errors"
	"fmt"
)

// Canonical workspace names. The training workspace runs the domestic
// rule set, production the ERP one; the two never share state.
const (
	NameTraining   = "training"
	NameProduction = "production"
)

// ErrWorkspaceNotFound indicates an unknown workspace name.
var ErrWorkspaceNotFound = errors.New("workspace: not found")

// Manager holds the isolated workspaces.
type Manager struct {
	workspaces map[string]*Workspace
}

// NewManager registers the given workspaces by name.
func NewManager(workspaces ...*Workspace) *Manager {
	m := &Manager{workspaces: make(map[string]*Workspace, len(workspaces))}
	for _, ws := range workspaces {
		m.workspaces[ws.Name()] = ws
	}
	return m
}

// Get resolves a workspace by name.
func (m *Manager) Get(name string) (*Workspace, error) {
	ws, ok := m.workspaces[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWorkspaceNotFound, name)
	}
	return ws, nil
}

// Names lists registered workspace names.
func (m *Manager) Names() []string {
	out := make([]string, 0, len(m.workspaces))
	for name := range m.workspaces {
		out = append(out, name)
	}
	return out
}
