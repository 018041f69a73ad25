package game

// try commits candidate as the new cursor unless it clips.
func (e *Engine) try(candidate Piece) error {
	if e.matrix.IsClipping(candidate) {
		return ErrBlocked
	}
	*e.cursor = candidate
	return nil
}

// Move shifts the cursor one column left or right. Without a cursor it does
// nothing. A blocked move returns ErrBlocked and leaves the cursor untouched.
func (e *Engine) Move(dir Direction) error {
	if e.cursor == nil || e.over {
		return nil
	}
	return e.try(e.cursor.Shifted(dir.delta()))
}

// Rotate turns the cursor once. No wall kicks are attempted: a rotation that
// collides returns ErrBlocked and leaves the cursor untouched.
func (e *Engine) Rotate(s Spin) error {
	if e.cursor == nil || e.over {
		return nil
	}
	return e.try(e.cursor.Rotated(s))
}

// TickDown applies one step of gravity. If the cursor is resting on the
// floor or the stack it returns ErrBlocked; the caller decides whether to lock.
func (e *Engine) TickDown() error {
	if e.cursor == nil || e.over {
		return nil
	}
	return e.try(e.cursor.Shifted(down))
}

// CursorHasHitBottom reports whether the cursor cannot fall any further.
func (e *Engine) CursorHasHitBottom() bool {
	if e.cursor == nil {
		return false
	}
	return e.matrix.IsClipping(e.cursor.Shifted(down))
}

// dropped returns p moved down as far as it can go. The floor bounds the loop.
func (e *Engine) dropped(p Piece) Piece {
	for {
		next := p.Shifted(down)
		if e.matrix.IsClipping(next) {
			return p
		}
		p = next
	}
}

// Ghost returns where the cursor would land on a hard drop.
func (e *Engine) Ghost() (Piece, bool) {
	if e.cursor == nil {
		return Piece{}, false
	}
	return e.dropped(*e.cursor), true
}

// HardDrop drops the cursor to its resting position and locks it. If the
// piece comes to rest partly above the ceiling the game ends with ErrTopOut.
func (e *Engine) HardDrop() error {
	if e.cursor == nil || e.over {
		return nil
	}
	landed := e.dropped(*e.cursor)
	if !e.matrix.IsPlaceable(landed) {
		e.over = true
		e.cursor = nil
		e.log.Debug().Stringer("kind", landed.Kind).Msg("top out on drop")
		return ErrTopOut
	}
	*e.cursor = landed
	e.Lock()
	return nil
}
