package mjson

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"match-canon/core/utils"
	"match-canon/feature/canon"
)

const winMarker = "和了"

var (
	fuPattern          = regexp.MustCompile(`^(\d+)符(\d+)飜`)
	dealerTsumoPattern = regexp.MustCompile(`(\d+)点∀$`)
	tsumoPattern       = regexp.MustCompile(`(\d+)-(\d+)点$`)
	ronPattern         = regexp.MustCompile(`(\d+)点$`)
	yakumanPattern     = regexp.MustCompile(`^([^(]+)\(役満\)$`)
	yakuPattern        = regexp.MustCompile(`^([^(]+)\((\d+)飜\)$`)
)

var drawNames = map[string]canon.DrawReason{
	"流局":   canon.DrawExhaustive,
	"全員聴牌": canon.DrawExhaustive,
	"全員不聴": canon.DrawExhaustive,
	"九種九牌": canon.DrawNineTerminals,
	"四家立直": canon.DrawFourRiichi,
	"三家和了": canon.DrawTripleRon,
	"四槓散了": canon.DrawFourKongs,
	"四風連打": canon.DrawFourWinds,
	"流し満貫": canon.DrawNagashiMangan,
}

// CappedFu returns the fu recorded for a capped win of the given doubles, whose string
// carries no fu of its own. Only 3, 4 and 5 doubles have a dedicated value.
func CappedFu(doubles int) int {
	switch doubles {
	case 3:
		return 70
	case 4:
		return 40
	case 5:
		return 2000
	default:
		return 20
	}
}

// parseResults decodes the result entry of a game: a win (two for a double ron) or a draw.
func parseResults(raw json.RawMessage) ([]canon.GameResult, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil || len(parts) == 0 {
		return nil, fmt.Errorf("result entry: %w", canon.ErrUnrecognizedResult)
	}
	var name string
	if err := json.Unmarshal(parts[0], &name); err != nil {
		return nil, fmt.Errorf("result name %s: %w", parts[0], canon.ErrUnrecognizedResult)
	}

	if name != winMarker {
		reason, ok := drawNames[name]
		if !ok {
			return nil, fmt.Errorf("draw %q: %w", name, canon.ErrUnrecognizedResult)
		}
		r := canon.GameResult{Kind: canon.ResultDraw, Reason: reason}
		if len(parts) > 1 {
			deltas, err := parseDeltas(parts[1])
			if err != nil {
				return nil, err
			}
			r.ScoreDeltas = deltas
		}
		return []canon.GameResult{r}, nil
	}

	if len(parts) != 3 && len(parts) != 5 {
		return nil, fmt.Errorf("win entry with %d parts: %w", len(parts), canon.ErrUnrecognizedResult)
	}
	results := make([]canon.GameResult, 0, 2)
	for i := 1; i < len(parts); i += 2 {
		r, err := parseWin(parts[i], parts[i+1])
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

func parseDeltas(raw json.RawMessage) ([canon.Seats]int, error) {
	var out [canon.Seats]int
	var deltas []int
	if err := json.Unmarshal(raw, &deltas); err != nil || len(deltas) != canon.Seats {
		return out, fmt.Errorf("score changes %s: %w", raw, canon.ErrUnrecognizedResult)
	}
	copy(out[:], deltas)
	return out, nil
}

// parseWin decodes [who, from, pao, winString, yaku...].
func parseWin(rawDeltas, rawInfo json.RawMessage) (canon.GameResult, error) {
	deltas, err := parseDeltas(rawDeltas)
	if err != nil {
		return canon.GameResult{}, err
	}
	var info []any
	if err := json.Unmarshal(rawInfo, &info); err != nil || len(info) < 4 {
		return canon.GameResult{}, fmt.Errorf("win info %s: %w", rawInfo, canon.ErrUnrecognizedResult)
	}
	var seats [3]int
	for i := range seats {
		v, ok := utils.ToInt(info[i])
		if !ok || v < 0 || v >= canon.Seats {
			return canon.GameResult{}, fmt.Errorf("win info seat %v: %w", info[i], canon.ErrUnrecognizedResult)
		}
		seats[i] = v
	}
	who, from, pao := seats[0], seats[1], seats[2]

	r := canon.GameResult{Kind: canon.ResultWin, ScoreDeltas: deltas, Winner: who}
	if from != who {
		r.From = canon.SeatRef(from)
	}
	if pao != who {
		r.Pao = canon.SeatRef(pao)
	}

	r.Yaku = make([]canon.YakuDoubles, 0, len(info)-4)
	for _, v := range info[4:] {
		y, err := parseYaku(utils.ToString(v))
		if err != nil {
			return canon.GameResult{}, err
		}
		if y.Doubles == 0 {
			continue
		}
		r.Yaku = append(r.Yaku, y)
	}

	r.Points, r.WinScore, err = parseWinString(utils.ToString(info[3]), r.Doubles())
	if err != nil {
		return canon.GameResult{}, err
	}
	return r, nil
}

func parseYaku(s string) (canon.YakuDoubles, error) {
	if m := yakumanPattern.FindStringSubmatch(s); m != nil {
		id, ok := canon.YakuByName(m[1])
		if !ok {
			return canon.YakuDoubles{}, fmt.Errorf("yaku %q: %w", s, canon.ErrUnrecognizedResult)
		}
		return canon.YakuDoubles{YakuID: id, Doubles: canon.Yakuman}, nil
	}
	if m := yakuPattern.FindStringSubmatch(s); m != nil {
		id, ok := canon.YakuByName(m[1])
		if !ok {
			return canon.YakuDoubles{}, fmt.Errorf("yaku %q: %w", s, canon.ErrUnrecognizedResult)
		}
		doubles, _ := strconv.Atoi(m[2])
		return canon.YakuDoubles{YakuID: id, Doubles: doubles}, nil
	}
	return canon.YakuDoubles{}, fmt.Errorf("yaku %q: %w", s, canon.ErrUnrecognizedResult)
}

// parseWinString returns the fu and the score of a win string such as "30符2飜2000点",
// "満貫4000点∀" or "跳満3000-6000点".
func parseWinString(s string, doubles int) (points, winScore int, err error) {
	if m := fuPattern.FindStringSubmatch(s); m != nil {
		points, _ = strconv.Atoi(m[1])
	} else {
		points = CappedFu(doubles)
	}

	if m := dealerTsumoPattern.FindStringSubmatch(s); m != nil {
		each, _ := strconv.Atoi(m[1])
		return points, 3 * each, nil
	}
	if m := tsumoPattern.FindStringSubmatch(s); m != nil {
		child, _ := strconv.Atoi(m[1])
		dealer, _ := strconv.Atoi(m[2])
		return points, 2*child + dealer, nil
	}
	if m := ronPattern.FindStringSubmatch(s); m != nil {
		total, _ := strconv.Atoi(m[1])
		return points, total, nil
	}
	return 0, 0, fmt.Errorf("win string %q: %w", s, canon.ErrUnrecognizedResult)
}
