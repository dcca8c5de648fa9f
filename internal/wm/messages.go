package wm

import (
	"strings"
	"time"

	"github.com/godalming123/tinytile/internal/notify"
)

const helpHint = "?  Use the alt + h keybinding for more help"

// ClientsListText lists the mapped views in cycle order and marks the
// focused one.
func (s *Server) ClientsListText() string {
	views := s.views.All()
	if len(views) == 0 {
		return "No clients open"
	}
	var b strings.Builder
	b.WriteString("Clients:")
	for _, v := range views {
		if v == s.focused {
			b.WriteString("\n -> ")
		} else {
			b.WriteString("\n    ")
		}
		b.WriteString(v.Title())
	}
	return b.String()
}

// HelloText is the status message toggled by tapping Alt.
func (s *Server) HelloText() string {
	return "⏳️ " + s.now().Format(time.ANSIC) + "\n" + helpHint
}

func (s *Server) showClientsList() {
	s.message(s.ClientsListText(), notify.ClientsList)
}

func (s *Server) showHello() {
	s.message(s.HelloText(), notify.Hello)
}

func (s *Server) message(text string, typ notify.Type) {
	if err := s.overlay.Show(text, typ); err != nil {
		s.log.Warn("could not show message", "type", typ, "err", err)
	}
}
