package domain

// PlayerByUid returns the player with the given uid, or nil.
func (s *Session) PlayerByUid(uid string) *Player {
	for i := range s.Players {
		if s.Players[i].Uid == uid {
			return &s.Players[i]
		}
	}
	return nil
}

// CurrentPlayer returns the player whose turn it is.
func (s *Session) CurrentPlayer() *Player {
	return &s.Players[s.CurrentPlayerIndex]
}

// IsPlayerTurn reports whether uid holds the current turn.
func (s *Session) IsPlayerTurn(uid string) bool {
	return s.CurrentPlayer().Uid == uid
}

// IsEliminated reports whether uid has no influence left. Unknown players
// count as eliminated.
func (s *Session) IsEliminated(uid string) bool {
	p := s.PlayerByUid(uid)
	return p == nil || !p.Alive()
}

// AlivePlayers returns the players that still hold influence, in seat order.
func (s *Session) AlivePlayers() []*Player {
	var alive []*Player
	for i := range s.Players {
		if s.Players[i].Alive() {
			alive = append(alive, &s.Players[i])
		}
	}
	return alive
}

// NextPlayerIndex returns the index of the next alive player after the
// current one, cycling in seat order.
func (s *Session) NextPlayerIndex() int {
	next := (s.CurrentPlayerIndex + 1) % len(s.Players)
	for attempts := 0; attempts < len(s.Players); attempts++ {
		if s.Players[next].Alive() {
			break
		}
		next = (next + 1) % len(s.Players)
	}
	return next
}

// IsOver reports whether at most one player remains alive.
func (s *Session) IsOver() bool {
	return len(s.AlivePlayers()) <= 1
}

// Winner returns the last player standing, or nil while the game is live.
func (s *Session) Winner() *Player {
	alive := s.AlivePlayers()
	if len(alive) == 1 {
		return alive[0]
	}
	return nil
}

// HasPendingDecision reports whether any waiting state is open.
func (s *Session) HasPendingDecision() bool {
	return s.PendingAction != nil || s.PendingReveal != nil || s.PendingExchange != nil
}

// TotalCards counts deck cards plus every slot in every hand, revealed or
// not. It must equal DeckSize for the session's whole lifetime.
func (s *Session) TotalCards() int {
	n := len(s.Deck)
	if s.PendingExchange != nil {
		n += len(s.PendingExchange.DrawnCards)
	}
	for i := range s.Players {
		n += len(s.Players[i].Cards)
	}
	return n
}
