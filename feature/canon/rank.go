package canon

import "sort"

// tieBreak keeps earlier seats ahead on equal scores.
const tieBreak = 0.1

// Ranks returns the 0-based placing of each seat. Equal scores are ordered by seat.
func Ranks(scores [Seats]int) [Seats]int {
	adjusted := make([]float64, Seats)
	order := make([]int, Seats)
	for i, sc := range scores {
		adjusted[i] = float64(sc) - tieBreak*float64(i)
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return adjusted[order[a]] > adjusted[order[b]]
	})

	var ranks [Seats]int
	for rank, seat := range order {
		ranks[seat] = rank
	}
	return ranks
}

// RankPlayers builds the Player records of a match from its final standings.
func RankPlayers(names [Seats]string, scores [Seats]int, incomes [Seats]float64) [Seats]Player {
	ranks := Ranks(scores)
	var players [Seats]Player
	for i := range players {
		players[i] = Player{
			Name:   names[i],
			Score:  scores[i],
			Income: incomes[i],
			Rank:   ranks[i],
		}
	}
	return players
}
