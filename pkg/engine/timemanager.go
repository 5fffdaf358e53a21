package engine

import (
	"context"
	"time"

	. "github.com/hienduc/JiangGo/pkg/common"
)

type timeManager struct {
	ctx       context.Context
	cancel    context.CancelFunc
	start     time.Time
	limits    LimitsType
	softLimit time.Duration
}

// Playing styles. The hard deadline never moves; the style only changes
// how much of the soft budget an iteration is allowed to consume.
const (
	StyleSolid  = "solid"
	StyleNormal = "normal"
	StyleRisky  = "risky"
)

func newTimeManager(ctx context.Context, start time.Time,
	limits LimitsType, p *Position, style string) *timeManager {

	var tm = &timeManager{
		start:  start,
		limits: limits,
	}

	var hardLimit time.Duration
	if limits.MoveTime > 0 {
		hardLimit = time.Duration(limits.MoveTime) * time.Millisecond
	} else if limits.RedTime > 0 || limits.BlackTime > 0 {
		var main, inc time.Duration
		if p.RedMove {
			main = time.Duration(limits.RedTime) * time.Millisecond
			inc = time.Duration(limits.RedIncrement) * time.Millisecond
		} else {
			main = time.Duration(limits.BlackTime) * time.Millisecond
			inc = time.Duration(limits.BlackIncrement) * time.Millisecond
		}
		tm.softLimit, hardLimit = calcLimits(main, inc, limits.MovesToGo)
		tm.softLimit = styleSoftLimit(tm.softLimit, style)
	}

	if hardLimit != 0 {
		tm.ctx, tm.cancel = context.WithDeadline(ctx, start.Add(hardLimit))
	} else {
		tm.ctx, tm.cancel = context.WithCancel(ctx)
	}
	return tm
}

func (tm *timeManager) IsDone() bool {
	return tm.ctx.Err() != nil
}

func (tm *timeManager) OnNodesChanged(nodes int) {
	if tm.limits.Nodes > 0 && nodes >= tm.limits.Nodes {
		tm.cancel()
	}
}

func (tm *timeManager) OnIterationComplete(line mainLine) {
	if tm.limits.Infinite {
		return
	}
	if tm.limits.Depth != 0 && line.depth >= tm.limits.Depth {
		tm.cancel()
		return
	}
	if line.score >= winIn(line.depth-5) ||
		line.score <= lossIn(line.depth-5) {
		tm.cancel()
		return
	}
	if tm.softLimit != 0 &&
		time.Since(tm.start) >= tm.softLimit {
		tm.cancel()
		return
	}
}

func (tm *timeManager) Close() {
	tm.cancel()
}

func calcLimits(main, inc time.Duration, moves int) (soft, hard time.Duration) {
	const (
		DefaultMovesToGo = 40
		MoveOverhead     = 300 * time.Millisecond
		MinTimeLimit     = 1 * time.Millisecond
	)

	main -= MoveOverhead
	if main < MinTimeLimit {
		main = MinTimeLimit
	}

	if moves == 0 {
		var ideal = main/35 + inc/2
		soft = ideal * 7 / 10
		hard = ideal * 21 / 10
	} else {
		moves = Min(moves, DefaultMovesToGo)
		soft = (main/time.Duration(moves+1) + inc) * 7 / 10
		hard = (main/time.Duration(moves+1) + inc) * 21 / 10
	}

	hard = limitDuration(hard, MinTimeLimit, main)
	soft = limitDuration(soft, MinTimeLimit, main)

	return
}

func styleSoftLimit(soft time.Duration, style string) time.Duration {
	switch style {
	case StyleSolid:
		return soft * 8 / 10
	case StyleRisky:
		return soft * 13 / 10
	}
	return soft
}

func limitDuration(v, min, max time.Duration) time.Duration {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
