package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget colors (shares buttonBg, buttonHoverBg, accentColor, textPrimary, textSecondary with panel.go)
var (
	widgetBg      = color.RGBA{48, 52, 58, 255}
	widgetBorder  = color.RGBA{68, 72, 78, 255}
	widgetHoverBg = color.RGBA{65, 70, 78, 255}
	checkboxCheck = color.RGBA{76, 175, 120, 255}
	hoverText     = color.RGBA{240, 240, 245, 255}
)

// Widgets are laid out in logical pixels and drawn scaled by UIScale.
func scaleF(v int) float32 {
	return float32(float64(v) * UIScale)
}

func scaleD(v int) float64 {
	return float64(v) * UIScale
}

func scaleI(v int) int {
	return int(float64(v) * UIScale)
}

// Checkbox is a toggleable checkbox widget.
type Checkbox struct {
	X, Y    int
	Label   string
	Checked bool
	hovered bool
}

// NewCheckbox creates a new checkbox.
func NewCheckbox(x, y int, label string, checked bool) *Checkbox {
	return &Checkbox{
		X:       x,
		Y:       y,
		Label:   label,
		Checked: checked,
	}
}

// Update toggles the checkbox when its row is clicked.
func (cb *Checkbox) Update(input *InputHandler) bool {
	cb.hovered = input.IsInBounds(cb.X, cb.Y, 240, 24)

	if input.IsLeftJustPressed() && cb.hovered {
		cb.Checked = !cb.Checked
		return true
	}
	return false
}

// Draw renders the checkbox.
func (cb *Checkbox) Draw(screen *ebiten.Image) {
	boxX, boxY, boxSize := scaleF(cb.X), scaleF(cb.Y), scaleF(20)

	bgColor := widgetBg
	if cb.hovered {
		bgColor = widgetHoverBg
	}
	vector.DrawFilledRect(screen, boxX, boxY, boxSize, boxSize, bgColor, false)

	borderC := widgetBorder
	if cb.hovered {
		borderC = accentColor
	} else if cb.Checked {
		borderC = checkboxCheck
	}
	vector.StrokeRect(screen, boxX, boxY, boxSize, boxSize, scaleF(2), borderC, false)

	if cb.Checked {
		s := float32(UIScale)
		vector.StrokeLine(screen, boxX+4*s, boxY+10*s, boxX+8*s, boxY+14*s, 2*s, checkboxCheck, false)
		vector.StrokeLine(screen, boxX+8*s, boxY+14*s, boxX+16*s, boxY+6*s, 2*s, checkboxCheck, false)
	}

	textColor := textSecondary
	if cb.Checked {
		textColor = textPrimary
	} else if cb.hovered {
		textColor = hoverText
	}
	drawTextAt(screen, cb.Label, GetScaledFace(defaultFontSize), cb.X+30, cb.Y+10, textColor, alignMiddle)
}

// ModalButton is a button for modal dialogs.
type ModalButton struct {
	X, Y, W, H int
	Label      string
	Primary    bool
	OnClick    func()
	hovered    bool
	pressed    bool
}

// NewModalButton creates a new modal button.
func NewModalButton(x, y, w, h int, label string, primary bool, onClick func()) *ModalButton {
	return &ModalButton{
		X: x, Y: y, W: w, H: h,
		Label:   label,
		Primary: primary,
		OnClick: onClick,
	}
}

// IsHovered returns true if the button is hovered.
func (mb *ModalButton) IsHovered() bool {
	return mb.hovered
}

// Update handles modal button input.
func (mb *ModalButton) Update(input *InputHandler) bool {
	mb.hovered = input.IsInBounds(mb.X, mb.Y, mb.W, mb.H)
	mb.pressed = input.IsLeftPressed() && mb.hovered

	if input.IsLeftJustPressed() && mb.hovered && mb.OnClick != nil {
		mb.OnClick()
		return true
	}
	return false
}

// Draw renders the modal button.
func (mb *ModalButton) Draw(screen *ebiten.Image) {
	var bgColor, borderC color.RGBA
	if mb.Primary {
		bgColor, borderC = accentColor, accentPressed
		if mb.pressed {
			bgColor = accentPressed
		} else if mb.hovered {
			bgColor = accentHover
			borderC = color.RGBA{116, 215, 160, 255}
		}
	} else {
		bgColor, borderC = buttonBg, widgetBorder
		if mb.pressed {
			bgColor = buttonPressedBg
		} else if mb.hovered {
			bgColor = buttonHoverBg
			borderC = accentColor
		}
	}

	x, y, w, h := scaleF(mb.X), scaleF(mb.Y), scaleF(mb.W), scaleF(mb.H)
	vector.DrawFilledRect(screen, x, y, w, h, bgColor, false)
	vector.StrokeRect(screen, x, y, w, h, 1, borderC, false)

	drawTextAt(screen, mb.Label, GetScaledFace(defaultFontSize), mb.X+mb.W/2, mb.Y+mb.H/2, textPrimary, alignCenter)
}

// DrawDivider draws a horizontal divider line.
func DrawDivider(screen *ebiten.Image, x, y, w int) {
	vector.DrawFilledRect(screen, scaleF(x), scaleF(y), scaleF(w), scaleF(1), dividerColor, false)
}

// textAlign positions text relative to the anchor point passed to drawTextAt.
type textAlign int

const (
	alignTopLeft textAlign = iota // anchor is the top-left corner
	alignMiddle                   // anchor is the left edge, vertically centred
	alignCenter                   // anchor is the centre
)

// drawTextAt draws s with its anchor at logical coordinates (x, y).
func drawTextAt(screen *ebiten.Image, s string, face *text.GoTextFace, x, y int, c color.Color, align textAlign) {
	if face == nil {
		return
	}
	w, h := MeasureText(s, face)
	px, py := scaleD(x), scaleD(y)
	switch align {
	case alignMiddle:
		py -= h / 2
	case alignCenter:
		px -= w / 2
		py -= h / 2
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(px, py)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
