package main

import (
	"fmt"

	"github.com/lox/bonusly-poker/internal/export"
	"github.com/lox/bonusly-poker/internal/tui"
)

// HistoryCmd is the root command for reviewing saved sessions.
type HistoryCmd struct {
	Render HistoryRenderCmd `cmd:"render" help:"Print a saved session to stdout"`
	Browse HistoryBrowseCmd `cmd:"browse" help:"Page through a saved session interactively"`
}

// HistoryRenderCmd prints every page of a session file.
type HistoryRenderCmd struct {
	File string `arg:"" name:"file" help:"Path to a saved session file"`
}

func (cmd HistoryRenderCmd) Run() error {
	env, err := export.Load(cmd.File)
	if err != nil {
		return err
	}

	styles := tui.DefaultStyles()
	fmt.Print(tui.RenderOverview(env, styles))
	for i := range env.Games {
		fmt.Println()
		fmt.Println(sectionStyle.Render(fmt.Sprintf(" Game %d of %d ", i+1, len(env.Games))))
		fmt.Print(tui.RenderGame(env, i, styles))
	}
	return nil
}

// HistoryBrowseCmd opens the session browser.
type HistoryBrowseCmd struct {
	File string `arg:"" name:"file" help:"Path to a saved session file"`
}

func (cmd HistoryBrowseCmd) Run() error {
	env, err := export.Load(cmd.File)
	if err != nil {
		return err
	}
	return tui.Run(env)
}
