package wm

// RequestSetCursor uses a client-provided cursor image, but only from the
// client that has pointer focus.
func (s *Server) RequestSetCursor(req SetCursorRequest) {
	focused := s.seat.PointerFocusClient()
	if focused == nil || req.Client == nil || focused.ID() != req.Client.ID() {
		return
	}
	s.pointer.SetSurface(req.Surface, req.HotspotX, req.HotspotY)
}

// RequestSetSelection always honours the client.
func (s *Server) RequestSetSelection(req SelectionRequest) {
	s.seat.SetSelection(req.Source, req.Serial)
}

// RequestStartDrag starts a drag when the serial matches a pointer grab,
// and destroys the source otherwise.
func (s *Server) RequestStartDrag(req StartDragRequest) {
	if s.seat.ValidatePointerGrabSerial(req.Origin, req.Serial) {
		s.seat.StartPointerDrag(req.Drag, req.Serial)
		return
	}
	s.log.Debug("rejected drag with an invalid serial", "serial", req.Serial)
	if src := req.Drag.Source(); src != nil {
		src.Destroy()
	}
}

// StartDrag shows the drag icon, if any, under the cursor.
func (s *Server) StartDrag(d Drag) {
	icon := d.Icon()
	if icon == nil {
		return
	}
	if s.dragIcon != nil {
		s.scene.RemoveDragIcon(s.dragIcon)
	}
	s.dragIcon = icon
	s.dragNode = s.scene.AddDragIcon(icon)
	s.updateDragIconPosition()
}

// DragIconDestroyed removes the icon's scene node.
func (s *Server) DragIconDestroyed(icon DragIcon) {
	if s.dragIcon == nil || s.dragIcon != icon {
		return
	}
	s.scene.RemoveDragIcon(icon)
	s.dragIcon = nil
	s.dragNode = nil
}

func (s *Server) updateDragIconPosition() {
	if s.dragIcon == nil || s.dragNode == nil || s.seat.Drag() == nil {
		return
	}
	cx, cy := s.pointer.Position()
	ox, oy := s.dragIcon.Offset()
	s.dragNode.SetPosition(int(cx)+ox, int(cy)+oy)
}
