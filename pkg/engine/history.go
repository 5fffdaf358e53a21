package engine

import . "github.com/hienduc/JiangGo/pkg/common"

const historyMax = 1 << 14

type historyService struct {
	mainHistory [2 * 90 * 90]int16
}

func (h *historyService) ReadTotal(side bool, m Move) int {
	return int(h.mainHistory[sideFromToIndex(side, m)])
}

func (h *historyService) Update(side bool, quietsSearched []Move, bestMove Move, depth int) {
	var bonus = Min(depth*depth, 400)
	for _, m := range quietsSearched {
		var good = m == bestMove
		updateHistory(&h.mainHistory[sideFromToIndex(side, m)], bonus, good)
		if good {
			break
		}
	}
}

// Exponential moving average
func updateHistory(v *int16, bonus int, good bool) {
	var newVal int
	if good {
		newVal = historyMax
	} else {
		newVal = -historyMax
	}
	*v += int16((newVal - int(*v)) * bonus / 512)
}

func (h *historyService) Clear() {
	for i := range h.mainHistory {
		h.mainHistory[i] = 0
	}
}

func sideFromToIndex(side bool, move Move) int {
	var result = move.From()*90 + move.To()
	if side {
		result += 90 * 90
	}
	return result
}
