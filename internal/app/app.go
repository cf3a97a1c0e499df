// Package app wires the terminal, the game recorder and the session
// bookkeeping into a complete interactive run.
package app

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/bonusly-poker/internal/chips"
	"github.com/lox/bonusly-poker/internal/config"
	"github.com/lox/bonusly-poker/internal/game"
	"github.com/lox/bonusly-poker/internal/prompt"
	"github.com/lox/bonusly-poker/internal/session"
)

// Saver persists a finished session.
type Saver interface {
	Write(path string, s *session.Session) error
}

// App drives a complete evening: repeated games, then the cross-game
// settlement and an optional save.
type App struct {
	term    *prompt.Terminal
	logger  *log.Logger
	preset  *config.Preset
	saver   Saver
	outPath string
	sess    *session.Session
}

// New returns an app for one session. preset supplies any pre-configured
// players, roles and denominations; outPath is where the session log is
// offered to be saved.
func New(term *prompt.Terminal, logger *log.Logger, preset *config.Preset, saver Saver, outPath string) *App {
	return &App{
		term:    term,
		logger:  logger.WithPrefix("session"),
		preset:  preset,
		saver:   saver,
		outPath: outPath,
		sess:    session.New(),
	}
}

// Session exposes the running session, mainly for inspection after Run.
func (a *App) Session() *session.Session {
	return a.sess
}

// Run plays games until the table stops, then settles up.
func (a *App) Run() error {
	a.term.Banner()
	a.logger.Info("Session started", "session", a.sess.ID)

	for {
		g, err := a.playGame()
		if err != nil {
			return err
		}
		a.sess.AddGame(g)

		again, err := a.term.ReadYesNo("Play another game?")
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}

	return a.wrapUp()
}

func (a *App) playGame() (*game.Game, error) {
	players, err := a.tablePlayers()
	if err != nil {
		return nil, err
	}

	names := make([]string, len(players))
	participants := make([]*game.Participant, len(players))
	minStack := players[0].Stack
	for i, p := range players {
		names[i] = p.Name
		participants[i] = game.NewParticipant(p.Name, p.Stack)
		if p.Stack < minStack {
			minStack = p.Stack
		}
	}

	scale, err := chips.ForLowestStack(minStack, a.preset.Table.Denominations)
	if err != nil {
		return nil, err
	}
	a.term.SetScale(scale)
	a.term.Emit(fmt.Sprintf("One chip unit is %d Bonusly (%s).", scale.BaseUnit, scale.Note))

	roles, err := a.term.CollectRoles(names, game.Roles{
		Dealer:     a.preset.Table.Dealer,
		SmallBlind: a.preset.Table.SmallBlind,
		BigBlind:   a.preset.Table.BigBlind,
	})
	if err != nil {
		return nil, err
	}

	g, err := game.NewGame(participants, roles)
	if err != nil {
		return nil, err
	}
	a.logger.Info("Game started", "players", len(participants), "dealer", roles.Dealer)

	rec := game.NewRecorder(g, a.term, a.term)
	for {
		if err := rec.RecordRound(); err != nil {
			return nil, err
		}
		more, err := a.term.ReadYesNo("Record another round?")
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}

	if err := a.declareWinner(g); err != nil {
		return nil, err
	}
	a.term.GameSummary(g)
	a.logger.Info("Game finished", "winner", g.Winner, "pot", g.Pot)
	return g, nil
}

// tablePlayers resolves this game's seating: the remembered table when the
// group keeps playing, the preset on the first game, prompts otherwise.
func (a *App) tablePlayers() ([]session.PlayerConfig, error) {
	if cached := a.sess.Players(); cached != nil {
		keep, err := a.term.ReadYesNo("Same table as last game?")
		if err != nil {
			return nil, err
		}
		if keep {
			return cached, nil
		}
	} else if len(a.preset.Players) >= 2 {
		players := make([]session.PlayerConfig, 0, len(a.preset.Players))
		for _, p := range a.preset.Players {
			players = append(players, session.PlayerConfig{Name: p.Name, Stack: p.Stack})
		}
		a.sess.SetPlayers(players)
		return players, nil
	}

	players, err := a.term.CollectPlayers()
	if err != nil {
		return nil, err
	}
	a.sess.SetPlayers(players)
	return players, nil
}

func (a *App) declareWinner(g *game.Game) error {
	for {
		name, err := a.term.ReadLine("Who won the pot? ")
		if err != nil {
			return err
		}
		err = g.SetWinner(name)
		if err == nil {
			return nil
		}
		if errors.Is(err, game.ErrUnknownPlayer) {
			a.term.Emit(fmt.Sprintf("%q is not at the table. Enter one of the players.", name))
			continue
		}
		return err
	}
}

func (a *App) wrapUp() error {
	transfers, err := session.Settle(a.sess.Totals())
	if err != nil {
		return fmt.Errorf("settling session: %w", err)
	}
	a.term.SessionSummary(a.sess.OrderedTotals(), transfers)

	save, err := a.term.ReadYesNo(fmt.Sprintf("Save the session log to %s?", a.outPath))
	if err != nil {
		return err
	}
	if save {
		if err := a.saver.Write(a.outPath, a.sess); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
		a.term.Emit(fmt.Sprintf("Saved to %s.", a.outPath))
		a.logger.Info("Session saved", "path", a.outPath, "games", len(a.sess.Games()))
	}
	return nil
}
