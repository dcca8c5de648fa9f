package wm

import "github.com/godalming123/tinytile/internal/output"

// NewOutput enables a monitor with its preferred mode and adds it to the
// right of the layout. A monitor whose mode cannot be committed is ignored.
func (s *Server) NewOutput(dev OutputDevice) {
	if _, ok := s.outputs[dev]; ok {
		return
	}
	if mode, ok := dev.PreferredMode(); ok {
		dev.SetMode(mode)
		dev.Enable(true)
		if err := dev.Commit(); err != nil {
			s.log.Warn("could not commit output", "name", dev.Name(), "err", err)
			return
		}
	}

	scale := dev.Scale()
	if scale <= 0 {
		scale = 1
	}
	w, h := dev.Size()
	o := &output.Output{
		Name:   dev.Name(),
		Width:  int(float64(w) / scale),
		Height: int(float64(h) / scale),
		Scale:  scale,
	}
	s.outputs[dev] = o
	s.layout.Add(o)
	if err := s.pointer.LoadTheme(s.cfg.Cursor.Theme, s.cfg.Cursor.Size, scale); err != nil {
		s.log.Warn("could not load cursor theme", "theme", s.cfg.Cursor.Theme, "scale", scale, "err", err)
	}
	s.log.Info("new output", "output", o.String(), "scale", scale)
}

// OutputDestroyed removes a monitor from the layout.
func (s *Server) OutputDestroyed(dev OutputDevice) {
	o, ok := s.outputs[dev]
	if !ok {
		return
	}
	delete(s.outputs, dev)
	s.layout.Remove(o)
}
