package app

import (
	"context"
	"errors"

	"coup/internal/domain"
	"coup/internal/ports"
)

// Session codes skip ambiguous characters so they survive being read aloud.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 6

func (s *Service) newSessionCode() string {
	code := make([]byte, codeLength)
	for i := range code {
		code[i] = codeAlphabet[s.rng.Intn(len(codeAlphabet))]
	}
	return string(code)
}

// CreateSession opens a new lobby with the creator as host and returns it.
func (s *Service) CreateSession(ctx context.Context, hostUid, hostUserName string) (*domain.Session, error) {
	for attempt := 0; attempt < 10; attempt++ {
		code := s.newSessionCode()
		if _, err := s.store.Load(ctx, code); err == nil {
			continue // code collision, try again
		} else if !errors.Is(err, ports.ErrSessionNotFound) {
			return nil, err
		}
		sess := &domain.Session{
			Code:    code,
			Status:  domain.StatusWaiting,
			HostUid: hostUid,
			Players: []domain.Player{{Uid: hostUid, UserName: hostUserName}},
		}
		if err := s.store.Save(ctx, sess); err != nil {
			return nil, err
		}
		return sess, nil
	}
	return nil, errors.New("could not allocate a unique session code")
}

// JoinSession adds a player to an open lobby.
func (s *Service) JoinSession(ctx context.Context, code, uid, userName string) error {
	unlock := s.lockSession(code)
	defer unlock()

	sess, err := s.load(ctx, code)
	if err != nil {
		return err
	}
	if sess.Status != domain.StatusWaiting {
		return ErrSessionNotWaiting
	}
	if sess.PlayerByUid(uid) != nil {
		return ErrAlreadyJoined
	}
	if len(sess.Players) >= s.cfg.MaxPlayers {
		return ErrSessionFull
	}

	sess.Players = append(sess.Players, domain.Player{Uid: uid, UserName: userName})
	if err := s.store.Save(ctx, sess); err != nil {
		return err
	}

	s.emit(ctx, code, EventPlayerJoined, PlayerJoinedPayload{PlayerUid: uid, UserName: userName})
	return nil
}

// StartSession deals cards, funds every player and opens the first turn. Only
// the host may start, and only once.
func (s *Service) StartSession(ctx context.Context, code, uid string) error {
	unlock := s.lockSession(code)
	defer unlock()

	sess, err := s.load(ctx, code)
	if err != nil {
		return err
	}
	if sess.Status != domain.StatusWaiting {
		return ErrSessionNotWaiting
	}
	if sess.HostUid != uid {
		return ErrNotHost
	}
	if len(sess.Players) < s.cfg.MinPlayers {
		return ErrTooFewPlayers
	}

	deck := domain.NewDeck()
	domain.Shuffle(s.rng, deck)
	hands, rest, err := domain.Deal(deck, len(sess.Players))
	if err != nil {
		return err
	}

	for i := range sess.Players {
		p := &sess.Players[i]
		p.Coins = domain.StartingCoins
		p.Cards = make([]domain.CardSlot, 0, domain.CardsPerPlayer)
		for _, role := range hands[i] {
			p.Cards = append(p.Cards, domain.CardSlot{Role: role})
		}
	}
	sess.Deck = rest
	sess.Status = domain.StatusInProgress
	sess.CurrentPlayerIndex = 0
	s.appendHistory(sess, "start", uid, "", "Game started with %d players", len(sess.Players))

	if err := s.store.Save(ctx, sess); err != nil {
		return err
	}

	s.emit(ctx, code, EventGameStarted, GameStartedPayload{
		Code:             code,
		CurrentPlayerUid: sess.CurrentPlayer().Uid,
	})
	s.emit(ctx, code, EventTurnStarted, TurnStartedPayload{
		CurrentPlayerUid:      sess.CurrentPlayer().Uid,
		CurrentPlayerUserName: sess.CurrentPlayer().UserName,
		MustCoup:              sess.CurrentPlayer().Coins >= domain.MustCoupAt,
	})
	return nil
}
