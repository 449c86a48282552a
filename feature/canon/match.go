package canon

// Match is one complete session of four players.
type Match struct {
	ID      int64         `json:"id"`
	Players [Seats]Player `json:"players"`
	Games   []Game        `json:"games"`
}

// Player is the final standing of one seat.
type Player struct {
	Name   string  `json:"name"`
	Score  int     `json:"score"`
	Income float64 `json:"income"`
	Rank   int     `json:"rank"`
}

// Game is one hand of play.
type Game struct {
	BeginningScores    [Seats]int        `json:"beginningScores"`
	Round              int               `json:"round"`
	DealerKeepingCount int               `json:"dealerKeepingCount"`
	Bets               int               `json:"bets"`
	Dora               []Instance        `json:"dora"`
	HiddenDora         []Instance        `json:"hiddenDora,omitempty"`
	DealtTiles         [Seats][]Instance `json:"dealtTiles"`
	Events             []EventItem       `json:"events"`
	Results            []GameResult      `json:"gameResults"`
}

// Dealer returns the seat that deals this hand.
func (g *Game) Dealer() int {
	return g.Round % Seats
}

// DropUnconfirmedRiichi clears the riichi flag of the final discard when an opponent
// won on it: the declaration never completed, so the flag must stay unset.
func (g *Game) DropUnconfirmedRiichi() {
	if len(g.Events) == 0 {
		return
	}
	last := &g.Events[len(g.Events)-1]
	if last.Kind != EventDiscard || !last.Riichi {
		return
	}
	for _, r := range g.Results {
		if r.Kind == ResultWin && r.From != nil && *r.From == last.Seat {
			last.Riichi = false
			return
		}
	}
}
