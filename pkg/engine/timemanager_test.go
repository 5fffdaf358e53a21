package engine

import (
	"testing"
	"time"
)

func TestCalcLimits(t *testing.T) {
	var soft, hard = calcLimits(3*time.Minute, 2*time.Second, 0)
	if soft <= 0 || hard <= 0 || soft > hard {
		t.Errorf("soft %v hard %v", soft, hard)
	}
	if hard > 3*time.Minute {
		t.Errorf("hard limit %v exceeds remaining time", hard)
	}

	soft, hard = calcLimits(10*time.Second, 0, 30)
	if soft <= 0 || soft > hard {
		t.Errorf("soft %v hard %v", soft, hard)
	}
}

func TestStyleSoftLimit(t *testing.T) {
	const soft = time.Second
	if got := styleSoftLimit(soft, StyleNormal); got != soft {
		t.Errorf("normal: %v", got)
	}
	if got := styleSoftLimit(soft, StyleSolid); got >= soft {
		t.Errorf("solid should spend less than %v, got %v", soft, got)
	}
	if got := styleSoftLimit(soft, StyleRisky); got <= soft {
		t.Errorf("risky should spend more than %v, got %v", soft, got)
	}
	// Unknown styles fall back to the plain budget.
	if got := styleSoftLimit(soft, ""); got != soft {
		t.Errorf("empty style: %v", got)
	}
}
