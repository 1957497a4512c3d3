// internal/viewmodel/view.go
//
// JSON snapshot of a game for API clients.
// Face-down cards never carry their pair.

package viewmodel

import (
	"github.com/robalobadob/memory/internal/game"
)

// Card states as exposed to clients.
const (
	StateHidden  = "hidden"
	StateExposed = "exposed"
	StateMatched = "matched"
)

// CardView is one card as a client sees it.
type CardView struct {
	Index  int       `json:"index"`
	State  string    `json:"state"`
	Pair   *int      `json:"pair,omitempty"` // only for face-up cards
	Bounds game.Rect `json:"bounds"`
}

// NotificationView is the banner state.
type NotificationView struct {
	Text    string `json:"text"`
	Visible bool   `json:"visible"`
}

// GameView is the full game snapshot returned by the API.
type GameView struct {
	Cards        []CardView       `json:"cards"`
	Exposed      []int            `json:"exposed"` // deck indices, oldest first
	Score        int              `json:"score"`
	Tries        int              `json:"tries"`
	Pairs        int              `json:"pairs"`
	CardsPerRow  int              `json:"cardsPerRow"`
	Won          bool             `json:"won"`
	Notification NotificationView `json:"notification"`
}

// NewGameView snapshots g. Face-down cards never reveal their pair.
func NewGameView(g *game.Game) GameView {
	if g == nil {
		return GameView{Cards: []CardView{}, Exposed: []int{}}
	}

	cards := g.Cards()
	index := make(map[*game.Card]int, len(cards))
	views := make([]CardView, len(cards))
	for i, c := range cards {
		index[c] = i
		v := CardView{Index: i, State: StateHidden, Bounds: c.Bounds}
		if c.Exposed {
			v.State = StateExposed
			if c.Matched {
				v.State = StateMatched
			}
			p := c.Pair
			v.Pair = &p
		}
		views[i] = v
	}

	exposed := make([]int, 0, len(g.Exposed()))
	for _, c := range g.Exposed() {
		exposed = append(exposed, index[c])
	}

	cfg := g.Config()
	return GameView{
		Cards:       views,
		Exposed:     exposed,
		Score:       g.Scoreboard.Score,
		Tries:       g.Scoreboard.Tries,
		Pairs:       cfg.NumPairs,
		CardsPerRow: cfg.CardsPerRow,
		Won:         g.Won(),
		Notification: NotificationView{
			Text:    g.Notification.Text(),
			Visible: g.Notification.Visible(),
		},
	}
}
