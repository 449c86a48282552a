package canon

import (
	"encoding/json"
	"fmt"
)

// ResultKind discriminates GameResult values.
type ResultKind string

const (
	ResultWin  ResultKind = "win"
	ResultDraw ResultKind = "draw"
)

// DrawReason is the canonical reason a hand ended without a winner.
type DrawReason string

const (
	DrawExhaustive    DrawReason = "exhaustive"
	DrawNineTerminals DrawReason = "nine_terminals"
	DrawFourRiichi    DrawReason = "four_riichi"
	DrawTripleRon     DrawReason = "triple_ron"
	DrawFourKongs     DrawReason = "four_kongs"
	DrawFourWinds     DrawReason = "four_winds"
	DrawNagashiMangan DrawReason = "nagashi_mangan"
)

// DrawReasons lists every canonical draw reason.
var DrawReasons = []DrawReason{
	DrawExhaustive, DrawNineTerminals, DrawFourRiichi, DrawTripleRon,
	DrawFourKongs, DrawFourWinds, DrawNagashiMangan,
}

// YakuDoubles pairs a yaku with the doubles (han) it scored.
type YakuDoubles struct {
	YakuID  int `json:"yakuId"`
	Doubles int `json:"doubles"`
}

// GameResult is either a win or a draw.
//
// For wins, From is nil on a self-draw and Pao is nil unless a seat is liable for the
// hand. Points holds the recorded fu.
type GameResult struct {
	Kind        ResultKind
	ScoreDeltas [Seats]int

	Winner   int
	From     *int
	Pao      *int
	WinScore int
	Points   int
	Yaku     []YakuDoubles

	Reason DrawReason
}

// SeatRef returns a pointer to seat, for the optional seat fields of a win.
func SeatRef(seat int) *int {
	return &seat
}

// IsSelfDraw reports whether a win was by self-draw.
func (r GameResult) IsSelfDraw() bool {
	return r.Kind == ResultWin && r.From == nil
}

// Doubles returns the total doubles of a win.
func (r GameResult) Doubles() int {
	total := 0
	for _, y := range r.Yaku {
		total += y.Doubles
	}
	return total
}

// DeltaSum returns the sum of the score deltas.
func (r GameResult) DeltaSum() int {
	sum := 0
	for _, d := range r.ScoreDeltas {
		sum += d
	}
	return sum
}

type resultJSON struct {
	ResultKind      ResultKind     `json:"resultKind"`
	ScoreIncrements [Seats]int     `json:"scoreIncrements"`
	Player          *int           `json:"player,omitempty"`
	From            *int           `json:"from,omitempty"`
	Pao             *int           `json:"pao,omitempty"`
	WinScore        *int           `json:"winScore,omitempty"`
	Points          *int           `json:"points,omitempty"`
	YakuList        *[]YakuDoubles `json:"yakuList,omitempty"`
	DrawKind        DrawReason     `json:"drawKind,omitempty"`
}

// MarshalJSON emits only the fields of the result kind.
func (r GameResult) MarshalJSON() ([]byte, error) {
	out := resultJSON{ResultKind: r.Kind, ScoreIncrements: r.ScoreDeltas}
	switch r.Kind {
	case ResultWin:
		winner, winScore, points := r.Winner, r.WinScore, r.Points
		out.Player, out.From, out.Pao = &winner, r.From, r.Pao
		out.WinScore, out.Points = &winScore, &points
		yaku := r.Yaku
		if yaku == nil {
			yaku = []YakuDoubles{}
		}
		out.YakuList = &yaku
	case ResultDraw:
		out.DrawKind = r.Reason
	default:
		return nil, fmt.Errorf("unknown result kind %q", r.Kind)
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the layout produced by MarshalJSON.
func (r *GameResult) UnmarshalJSON(data []byte) error {
	var in resultJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*r = GameResult{Kind: in.ResultKind, ScoreDeltas: in.ScoreIncrements, From: in.From, Pao: in.Pao, Reason: in.DrawKind}
	if in.YakuList != nil {
		r.Yaku = *in.YakuList
	}
	if in.Player != nil {
		r.Winner = *in.Player
	}
	if in.WinScore != nil {
		r.WinScore = *in.WinScore
	}
	if in.Points != nil {
		r.Points = *in.Points
	}
	return nil
}
