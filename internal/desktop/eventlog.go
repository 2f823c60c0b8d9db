package desktop

import (
	"fmt"
	"io"

	"blockpong/internal/game"
)

// LogEvents writes one line per block hit, score and court shrink to w.
func LogEvents(bus *game.EventBus, w io.Writer) {
	bus.Subscribe(game.EventBlockHit, func(e game.Event) {
		fmt.Fprintf(w, "block %s hit at (%.2f, %.2f)\n", game.BlockKind(e.Data), e.X, e.Y)
	})
	bus.Subscribe(game.EventScore, func(e game.Event) {
		fmt.Fprintf(w, "point to %s\n", game.Side(e.Data))
	})
	bus.Subscribe(game.EventCourtShrink, func(e game.Event) {
		fmt.Fprintf(w, "court shrinks\n")
	})
}
