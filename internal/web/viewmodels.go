package web

import (
	"errors"

	"skazmor/internal/game"
	"skazmor/internal/history"
)

var (
	errNoSession = errors.New("no game session")
	errBadIntent = errors.New("malformed intent")
	errBadLimit  = errors.New("limit must be a non-negative integer")
)

// GameView is the body of every game endpoint.
type GameView struct {
	Seed  int64          `json:"seed"`
	State game.GameState `json:"state"`
	// CardsLeft is the number of cards still in the deck.
	CardsLeft int `json:"cardsLeft"`
}

func newGameView(seed int64, st game.GameState) GameView {
	return GameView{Seed: seed, State: st, CardsLeft: len(st.Deck)}
}

// HistoryView lists finished runs, newest first.
type HistoryView struct {
	Runs []history.Run `json:"runs"`
}

func newHistoryView(runs []history.Run) HistoryView {
	if runs == nil {
		runs = []history.Run{}
	}
	return HistoryView{Runs: runs}
}

type errorView struct {
	Error string `json:"error"`
}
