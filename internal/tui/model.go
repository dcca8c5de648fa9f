package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	evdev "github.com/gvalkov/golang-evdev"
)

// wheelStep is the scroll delta of one wheel notch.
const wheelStep = 15

// model feeds terminal events to the backend and draws the scene.
type model struct {
	b *Backend
}

func (m *model) Init() tea.Cmd {
	return tea.SetWindowTitle("tinytile")
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	b := m.b
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		m.key(msg)
	case tea.MouseMsg:
		m.mouse(msg)
	}

	b.reapDemos()
	if b.Terminated() {
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) key(msg tea.KeyMsg) {
	b := m.b
	switch msg.Type {
	case tea.KeyCtrlC:
		b.Terminate()
		return
	case tea.KeyCtrlN:
		if !msg.Alt {
			b.openDemo()
			return
		}
	}
	for _, s := range strokes(b.keymap, msg) {
		b.Key(b.keyboard, s.code, s.pressed)
	}
}

func (m *model) mouse(msg tea.MouseMsg) {
	b := m.b
	rows := max(1, b.rows-1)
	if msg.Y >= rows {
		return
	}
	b.MoveAbsolute(b.pointer, (float64(msg.X)+0.5)/float64(b.cols), (float64(msg.Y)+0.5)/float64(rows))

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Action == tea.MouseActionPress {
			b.Scroll(b.pointer, -wheelStep)
		}
		return
	case tea.MouseButtonWheelDown:
		if msg.Action == tea.MouseActionPress {
			b.Scroll(b.pointer, wheelStep)
		}
		return
	}

	button, ok := mouseButtons[msg.Button]
	if !ok {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		// the terminal reports Alt with the click, not as a key
		if msg.Alt {
			b.Key(b.keyboard, evdev.KEY_LEFTALT, true)
		}
		b.Button(b.pointer, button, true)
		if msg.Alt {
			b.Key(b.keyboard, evdev.KEY_LEFTALT, false)
		}
	case tea.MouseActionRelease:
		b.Button(b.pointer, button, false)
	}
}

func (m *model) View() string {
	return m.b.render()
}
