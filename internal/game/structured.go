package game

// Structured forms mirror game state under stable field names so saved
// sessions stay readable by other tools. Building one never mutates the
// source; building twice from the same state yields identical values.

type StructuredCommitment struct {
	Round  int `json:"round"`
	Amount int `json:"amount"`
}

type StructuredAction struct {
	Round  int    `json:"round"`
	Action string `json:"action"`
}

type StructuredParticipant struct {
	Name            string                 `json:"name"`
	StartingBalance int                    `json:"startingBalance"`
	CurrentBalance  int                    `json:"currentBalance"`
	Commitments     []StructuredCommitment `json:"commitments"`
	Actions         []StructuredAction     `json:"actions"`
	TotalCommitted  int                    `json:"totalCommitted"`
}

type StructuredRoles struct {
	Dealer     string `json:"dealer"`
	SmallBlind string `json:"smallBlind"`
	BigBlind   string `json:"bigBlind"`
}

type StructuredHistoryEntry struct {
	Round    int    `json:"round"`
	Player   string `json:"player"`
	Action   string `json:"action"`
	Amount   int    `json:"amount"`
	PotAfter int    `json:"potAfter"`
}

type StructuredGame struct {
	Participants    []StructuredParticipant  `json:"participants"`
	RoleAssignments StructuredRoles          `json:"roleAssignments"`
	Pot             int                      `json:"pot"`
	Round           int                      `json:"round"`
	History         []StructuredHistoryEntry `json:"history"`
	Winner          *string                  `json:"winner"`
	NetResults      map[string]int           `json:"netResults"`
}

// Structured converts the participant for export.
func (p *Participant) Structured() StructuredParticipant {
	out := StructuredParticipant{
		Name:            p.Name,
		StartingBalance: p.StartingBalance,
		CurrentBalance:  p.CurrentBalance(),
		Commitments:     make([]StructuredCommitment, 0, len(p.Commitments)),
		Actions:         make([]StructuredAction, 0, len(p.Actions)),
		TotalCommitted:  p.TotalCommitted(),
	}
	for _, c := range p.Commitments {
		out.Commitments = append(out.Commitments, StructuredCommitment{Round: c.Round, Amount: c.Amount})
	}
	for _, a := range p.Actions {
		out.Actions = append(out.Actions, StructuredAction{Round: a.Round, Action: a.Kind.String()})
	}
	return out
}

// Structured converts the game for export.
func (g *Game) Structured() StructuredGame {
	out := StructuredGame{
		Participants: make([]StructuredParticipant, 0, len(g.Participants)),
		RoleAssignments: StructuredRoles{
			Dealer:     g.Roles.Dealer,
			SmallBlind: g.Roles.SmallBlind,
			BigBlind:   g.Roles.BigBlind,
		},
		Pot:        g.Pot,
		Round:      g.CurrentRound,
		History:    make([]StructuredHistoryEntry, 0, len(g.History)),
		NetResults: make(map[string]int, len(g.NetResults)),
	}
	for _, p := range g.Participants {
		out.Participants = append(out.Participants, p.Structured())
	}
	for _, h := range g.History {
		out.History = append(out.History, StructuredHistoryEntry{
			Round:    h.Round,
			Player:   h.Player,
			Action:   h.Action.String(),
			Amount:   h.Amount,
			PotAfter: h.PotAfter,
		})
	}
	if g.Winner != "" {
		winner := g.Winner
		out.Winner = &winner
	}
	for name, net := range g.NetResults {
		out.NetResults[name] = net
	}
	return out
}
