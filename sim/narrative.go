package sim

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/survival/regime"
)

// bigMoveFrac is the fraction of prior equity beyond which a trading day's
// swing earns flavor text.
const bigMoveFrac = 0.05

type dayStory struct {
	day        int
	from, to   regime.Regime
	mode       Mode
	side       Side
	size, lev  float64
	trading    bool
	liquidated bool
	prior      float64
	delta      float64
}

// narrate builds the single log line for a resolved day: regime movement,
// the action taken, the signed equity change, and conditional flavor.
func narrate(s dayStory) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Day %d: %s %s", s.day, regimePhrase(s.from, s.to), actionPhrase(s))

	pct := 0.0
	if s.prior > 0 {
		pct = s.delta / s.prior * 100
	}
	fmt.Fprintf(&b, " P&L %s (%+.2f%%).", money(s.delta), pct)

	switch {
	case s.liquidated:
		b.WriteString(" Liquidated: the position was force-closed and the margin is gone.")
	case s.trading && s.delta > bigMoveFrac*s.prior:
		b.WriteString(" A big win.")
	case s.trading && s.delta < -bigMoveFrac*s.prior:
		b.WriteString(" A brutal drawdown.")
	case !s.trading:
		b.WriteString(" Cash quietly compounds.")
	}

	return b.String()
}

func regimePhrase(from, to regime.Regime) string {
	if from == to {
		return fmt.Sprintf("The %s market holds.", to)
	}
	return fmt.Sprintf("The market turns from %s to %s.", from, to)
}

func actionPhrase(s dayStory) string {
	switch {
	case s.mode == Study:
		return "You hit the books."
	case s.mode == Rest:
		return "You take a rest day."
	case s.trading:
		return fmt.Sprintf("You go %s %.0f%% at %.1fx.",
			strings.ToUpper(s.side.String()), s.size*100, s.lev)
	}
	return "You stay flat."
}

func money(x float64) string {
	if x < 0 {
		return fmt.Sprintf("-$%.2f", -x)
	}
	return fmt.Sprintf("+$%.2f", x)
}

// prependLog puts the day's narrative line on top of the log, with the
// optional diary note directly beneath it, and trims to LogCap.
func prependLog(log []string, line, note string) []string {
	head := make([]string, 0, 2)
	head = append(head, line)
	if note != "" {
		head = append(head, note)
	}

	out := append(head, log...)
	if len(out) > LogCap {
		out = out[:LogCap]
	}
	return out
}
