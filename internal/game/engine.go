// internal/game/engine.go
//
// Core game engine for a single memory deal.
// Responsibilities:
//   - Build a shuffled deck laid out row-major on the canvas.
//   - Expose cards under a click and resolve pairs.
//   - Track score, tries and the win banner.
//
// Notes:
//   - A click scans every card; each card under the point that is neither
//     exposed nor matched is turned, and resolution runs after each one.
//   - A mismatched pair stays face up until a third card is exposed.

package game

import "math/rand/v2"

// New validates cfg and deals the first deck.
func New(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		cfg:          cfg,
		cardW:        cfg.CardWidth(),
		cardH:        cfg.CardHeight(),
		Scoreboard:   newScoreboard(cfg.FrameWidth),
		Notification: newNotification(cfg.FrameWidth, cfg.FrameHeight),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = newRand()
	}
	g.buildDeck(cfg.NumPairs)
	return g, nil
}

// Config returns the board configuration.
func (g *Game) Config() Config { return g.cfg }

// Cards returns the deck in row-major order.
func (g *Game) Cards() []*Card { return g.cards }

// Exposed returns the face-up cards awaiting resolution, oldest first.
func (g *Game) Exposed() []*Card { return g.exposed }

// Won reports whether every pair has been matched.
func (g *Game) Won() bool { return g.Scoreboard.Score == g.cfg.NumPairs }

func newRand() *rand.Rand { return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) }

// Reseed replaces the shuffle source for later deals; nil picks a fresh
// random one. The current deck is left as it is.
func (g *Game) Reseed(r *rand.Rand) {
	if r == nil {
		r = newRand()
	}
	g.rng = r
}

// Reset clears the scoreboard, the exposed queue and the banner, then deals
// a new deck.
func (g *Game) Reset() {
	g.Scoreboard.Reset()
	g.exposed = nil
	g.Notification.SetText("")
	g.Notification.Hide()
	g.buildDeck(g.cfg.NumPairs)
}

// buildDeck shuffles 2N labels and assigns them to grid cells row-major.
func (g *Game) buildDeck(numPairs int) {
	labels := make([]int, numPairs*2)
	for i := range labels {
		labels[i] = i
	}
	g.rng.Shuffle(len(labels), func(i, j int) {
		labels[i], labels[j] = labels[j], labels[i]
	})

	gutter := g.cfg.CardGutter
	g.cards = make([]*Card, len(labels))
	for i, label := range labels {
		col := float64(i % g.cfg.CardsPerRow)
		row := float64(i / g.cfg.CardsPerRow)
		g.cards[i] = &Card{
			Pair: label % numPairs,
			Bounds: Rect{
				Left:   g.cardW*col + gutter*col + gutter,
				Top:    g.cardH*row + gutter*row + gutter + g.cfg.ScoreboardHeight,
				Width:  g.cardW,
				Height: g.cardH,
			},
		}
	}
}

// Click exposes every eligible card under p and resolves pairs.
//
// Tries is incremented once when the click exposed at least one card and
// either left exactly two cards face up or resolved a match.
func (g *Game) Click(p Point) ClickResult {
	var res ClickResult
	for _, c := range g.cards {
		if c.Exposed || c.Matched || !c.HitTest(p) {
			continue
		}
		res.Exposed++
		c.Exposed = true
		g.exposed = append(g.exposed, c)
		if g.resolve() {
			res.Matched = true
		}
	}
	if res.Exposed > 0 && (len(g.exposed) == 2 || res.Matched) {
		g.Scoreboard.Tries++
		res.Counted = true
	}
	res.Won = g.Won()
	return res
}

// resolve checks the exposed queue after a card is turned and reports
// whether a pair was matched.
func (g *Game) resolve() bool {
	matched := false
	switch n := len(g.exposed); {
	case n == 2:
		a, b := g.exposed[0], g.exposed[1]
		if a.Pair == b.Pair {
			a.Matched, b.Matched = true, true
			g.Scoreboard.Score++
			g.exposed = nil
			matched = true
		}
	case n > 2:
		g.exposed[0].Exposed = false
		g.exposed[1].Exposed = false
		g.exposed = append([]*Card(nil), g.exposed[2:]...)
	}
	if g.Won() {
		g.Notification.SetText(WinText)
		g.Notification.Show()
	}
	return matched
}

// Draw renders the deck, then the scoreboard, then the banner.
func (g *Game) Draw(cv Canvas) {
	for _, c := range g.cards {
		c.Draw(cv)
	}
	g.Scoreboard.Draw(cv)
	g.Notification.Draw(cv)
}

// Bind wires g into a frame: draw and click handlers plus a Reset button.
// Observers are told about every click after the game has handled it.
func Bind(f Frame, g *Game, observers ...func(Point, ClickResult)) {
	f.SetDrawHandler(g.Draw)
	f.SetClickHandler(func(p Point) {
		res := g.Click(p)
		for _, obs := range observers {
			obs(p, res)
		}
	})
	f.AddButton("Reset", g.Reset)
}
