package tui

import (
	"sync"

	"github.com/jsamuelsen11/go-todo-list/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-list/internal/ports"
)

// Screen is the terminal's ports.View. The controller writes into it from
// command goroutines and the bubbletea model reads it when drawing.
type Screen struct {
	mu    sync.Mutex
	state screenState
}

type screenState struct {
	listing   ports.Listing
	sidebar   ports.Sidebar
	modal     *todo.Todo
	modalOpen bool
	alert     string
}

var _ ports.View = (*Screen)(nil)

// NewScreen returns an empty screen.
func NewScreen() *Screen {
	return &Screen{}
}

// RenderTodos stores the header and list.
func (s *Screen) RenderTodos(listing ports.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.listing = listing
}

// RenderGroups stores the sidebar.
func (s *Screen) RenderGroups(sidebar ports.Sidebar) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.sidebar = sidebar
}

// RenderModal opens the form for td, or a blank form when td is nil.
func (s *Screen) RenderModal(td *todo.Todo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if td != nil {
		cp := *td
		td = &cp
	}
	s.state.modal = td
	s.state.modalOpen = true
}

// HideModal closes the form.
func (s *Screen) HideModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.modal = nil
	s.state.modalOpen = false
}

// Alert sets the status line message.
func (s *Screen) Alert(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.alert = msg
}

func (s *Screen) clearAlert() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.alert = ""
}

func (s *Screen) snapshot() screenState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
