// internal/game/notification.go
//
// Win banner drawn over the board.

package game

const bannerFontSize = 80

// WinText is shown once every pair is matched.
const WinText = "You won!"

// Notification is a centred banner that can be toggled on and off.
type Notification struct {
	text    string
	visible bool

	width, height float64
}

func newNotification(width, height float64) *Notification {
	return &Notification{width: width, height: height}
}

// SetText replaces the banner text without changing visibility.
func (n *Notification) SetText(s string) { n.text = s }

// Text returns the banner text.
func (n *Notification) Text() string { return n.text }

// Show makes the banner visible.
func (n *Notification) Show() { n.visible = true }

// Hide hides the banner; its text is kept.
func (n *Notification) Hide() { n.visible = false }

// Visible reports whether the banner is drawn.
func (n *Notification) Visible() bool { return n.visible }

// Draw renders the banner centred on the frame; hidden banners draw nothing.
func (n *Notification) Draw(cv Canvas) {
	if !n.visible {
		return
	}
	w := cv.TextWidth(n.text, bannerFontSize, FontSerif)
	pos := Point{
		X: (n.width - w) / 2,
		Y: (n.height + bannerFontSize) / 2,
	}
	cv.DrawText(n.text, pos, bannerFontSize, ColorBanner, FontSerif)
}
