package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/bonusly-poker/cmd/bonusly-poker/shared"
	"github.com/lox/bonusly-poker/internal/export"
	"github.com/lox/bonusly-poker/internal/session"
)

var sectionStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

// SettleCmd combines the totals of several saved sessions into one plan.
type SettleCmd struct {
	Files []string `arg:"" name:"files" help:"Session files to settle together"`
}

func (c *SettleCmd) Run() error {
	ctx := shared.SetupSignalHandler()

	envs, err := export.LoadAll(ctx, c.Files)
	if err != nil {
		return err
	}

	totals := export.MergeTotals(envs)
	transfers, err := session.Settle(totals)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println(sectionStyle.Render(fmt.Sprintf(" Totals across %d sessions ", len(envs))))
	for _, name := range names {
		fmt.Printf("  %s: %+d Bonusly\n", name, totals[name])
	}
	fmt.Println()
	if len(transfers) == 0 {
		fmt.Println("Everyone is even. Nothing to settle.")
		return nil
	}
	fmt.Println(sectionStyle.Render(" Suggested settlement "))
	for _, tr := range transfers {
		fmt.Printf("  %s pays %s %d Bonusly\n", tr.From, tr.To, tr.Amount)
	}
	return nil
}
