package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessboard/internal/board"
)

// Panel dimensions
const (
	PanelPadding    = 20
	SectionSpacing  = 28
	ButtonHeight    = 40
	CollapsedWidth  = 20
	CollapseButtonW = 16
	CollapseButtonH = 48
	SectionLabelH   = 20
	TrayPieceSize   = 26
	TrayRowHeight   = 30
)

// Panel colors
var (
	panelBg         = color.RGBA{38, 40, 45, 255}    // Dark background
	sectionBg       = color.RGBA{48, 52, 58, 255}    // Slightly lighter section
	buttonBg        = color.RGBA{50, 54, 60, 255}    // Button background (darker)
	buttonHoverBg   = color.RGBA{65, 70, 78, 255}    // Button hover (brighter)
	buttonPressedBg = color.RGBA{40, 44, 50, 255}    // Button pressed (darker)
	buttonBorder    = color.RGBA{70, 75, 82, 255}    // Subtle button border
	accentColor     = color.RGBA{76, 175, 120, 255}  // Green accent
	accentHover     = color.RGBA{96, 195, 140, 255}  // Lighter green on hover
	accentPressed   = color.RGBA{56, 155, 100, 255}  // Darker green on press
	textPrimary     = color.RGBA{240, 240, 245, 255} // Primary text
	textSecondary   = color.RGBA{160, 165, 175, 255} // Secondary text
	textMuted       = color.RGBA{120, 125, 135, 255} // Muted text
	dividerColor    = color.RGBA{60, 65, 72, 255}    // Divider line
	statusCheck     = color.RGBA{255, 120, 110, 255} // Red for check
	statusGameOver  = color.RGBA{255, 200, 80, 255}  // Yellow for game over
	swatchWhite     = color.RGBA{240, 236, 226, 255}
	swatchBlack     = color.RGBA{30, 30, 30, 255}
)

// Button represents a clickable UI element.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	hovered    bool
	pressed    bool
}

func (b *Button) contains(mx, my int) bool {
	return mx >= b.X && mx < b.X+b.W && my >= b.Y && my < b.Y+b.H
}

// Panel is the side panel with the turn indicator, controls, captured
// pieces and statistics.
type Panel struct {
	game      *Game
	collapsed bool

	collapseBtn *Button
	restartBtn  *Button
	settingsBtn *Button
}

// NewPanel creates a new panel for the given game.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g}
	p.createButtons()
	return p
}

// createButtons lays out the panel buttons for the current board size.
func (p *Panel) createButtons() {
	tabY := (ScreenHeight - CollapseButtonH) / 2
	tabX := BoardSize
	if p.collapsed {
		tabX = BoardSize + 2
	}
	p.collapseBtn = &Button{
		X: tabX, Y: tabY,
		W: CollapseButtonW, H: CollapseButtonH,
		OnClick: p.toggleCollapse,
	}

	contentX := BoardSize + PanelPadding
	contentW := PanelWidth - PanelPadding*2

	restartY := PanelPadding + 48
	p.restartBtn = &Button{
		X: contentX, Y: restartY,
		W: contentW, H: ButtonHeight,
		Label:   "Restart",
		OnClick: p.game.RestartAction,
	}

	p.settingsBtn = &Button{
		X: contentX, Y: restartY + ButtonHeight + 8,
		W: contentW, H: ButtonHeight - 6,
		Label:   "Settings",
		OnClick: p.game.ShowSettings,
	}
}

// HandleInput processes input for the panel. Returns true if input was handled.
func (p *Panel) HandleInput(input *InputHandler) bool {
	mx, my := input.MousePosition()

	p.collapseBtn.hovered = p.collapseBtn.contains(mx, my)
	p.collapseBtn.pressed = input.IsLeftPressed() && p.collapseBtn.hovered
	if input.IsLeftJustPressed() && p.collapseBtn.hovered {
		p.collapseBtn.OnClick()
		return true
	}

	if p.collapsed {
		return false
	}

	for _, btn := range []*Button{p.restartBtn, p.settingsBtn} {
		btn.hovered = btn.contains(mx, my)
		btn.pressed = input.IsLeftPressed() && btn.hovered
	}

	if input.IsLeftJustPressed() {
		for _, btn := range []*Button{p.restartBtn, p.settingsBtn} {
			if btn.hovered {
				btn.OnClick()
				return true
			}
		}
	}

	// swallow clicks on the panel background
	return input.IsLeftJustPressed() && mx >= BoardSize
}

// AnyButtonHovered returns true if any button in the panel is hovered.
func (p *Panel) AnyButtonHovered() bool {
	if p.collapseBtn.hovered {
		return true
	}
	if p.collapsed {
		return false
	}
	return p.restartBtn.hovered || p.settingsBtn.hovered
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image, r *Renderer) {
	panelX := scaleF(BoardSize)

	if p.collapsed {
		vector.DrawFilledRect(screen, panelX, 0, scaleF(CollapsedWidth), scaleF(ScreenHeight), panelBg, false)
		p.drawCollapseButton(screen, true)
		return
	}

	vector.DrawFilledRect(screen, panelX, 0, scaleF(PanelWidth), scaleF(ScreenHeight), panelBg, false)
	p.drawCollapseButton(screen, false)

	p.drawTurnHeader(screen)
	p.drawPrimaryButton(screen, p.restartBtn)
	p.drawSecondaryButton(screen, p.settingsBtn)

	y := p.settingsBtn.Y + p.settingsBtn.H + SectionSpacing
	y = p.drawCaptured(screen, r, y)
	p.drawStats(screen, y+SectionSpacing)

	p.drawStatusBar(screen)
}

// drawTurnHeader shows a swatch and the name of the side to move.
func (p *Panel) drawTurnHeader(screen *ebiten.Image) {
	x, y := BoardSize+PanelPadding, PanelPadding
	side := p.game.SideToMove()

	swatch := swatchWhite
	if side == board.Black {
		swatch = swatchBlack
	}
	vector.DrawFilledRect(screen, scaleF(x), scaleF(y+2), scaleF(20), scaleF(20), swatch, false)
	vector.StrokeRect(screen, scaleF(x), scaleF(y+2), scaleF(20), scaleF(20), scaleF(1), buttonBorder, false)

	label := side.String() + " to move"
	if p.game.GameOver() {
		label = "Game over"
	}
	drawTextAt(screen, label, GetScaledBoldFace(headerFontSize), x+32, y+12, textPrimary, alignMiddle)
}

func (p *Panel) drawCollapseButton(screen *ebiten.Image, expand bool) {
	btn := p.collapseBtn

	bgColor := panelBg
	if btn.hovered {
		bgColor = sectionBg
	}
	vector.DrawFilledRect(screen, scaleF(btn.X), scaleF(btn.Y), scaleF(btn.W), scaleF(btn.H), bgColor, false)

	arrow := "‹"
	if expand {
		arrow = "›"
	}
	textC := textMuted
	if btn.hovered {
		textC = textPrimary
	}
	drawTextAt(screen, arrow, GetScaledFace(defaultFontSize), btn.X+btn.W/2, btn.Y+btn.H/2, textC, alignCenter)
}

func (p *Panel) drawPrimaryButton(screen *ebiten.Image, btn *Button) {
	bgColor := accentColor
	if btn.pressed {
		bgColor = accentPressed
	} else if btn.hovered {
		bgColor = accentHover
	}
	x, y, w, h := scaleF(btn.X), scaleF(btn.Y), scaleF(btn.W), scaleF(btn.H)
	vector.DrawFilledRect(screen, x, y, w, h, bgColor, false)

	borderC := accentPressed
	if btn.hovered {
		borderC = color.RGBA{116, 215, 160, 255}
	}
	vector.StrokeRect(screen, x, y, w, h, 1, borderC, false)

	drawTextAt(screen, btn.Label, GetScaledFace(defaultFontSize), btn.X+btn.W/2, btn.Y+btn.H/2, textPrimary, alignCenter)
}

func (p *Panel) drawSecondaryButton(screen *ebiten.Image, btn *Button) {
	bgColor := buttonBg
	if btn.pressed {
		bgColor = buttonPressedBg
	} else if btn.hovered {
		bgColor = buttonHoverBg
	}
	x, y, w, h := scaleF(btn.X), scaleF(btn.Y), scaleF(btn.W), scaleF(btn.H)
	vector.DrawFilledRect(screen, x, y, w, h, bgColor, false)

	borderC := buttonBorder
	if btn.hovered {
		borderC = accentColor
	}
	vector.StrokeRect(screen, x, y, w, h, 1, borderC, false)

	drawTextAt(screen, btn.Label, GetScaledFace(defaultFontSize), btn.X+btn.W/2, btn.Y+btn.H/2, textSecondary, alignCenter)
}

func (p *Panel) drawSectionLabel(screen *ebiten.Image, label string, y int) {
	drawTextAt(screen, label, GetScaledFace(defaultFontSize), BoardSize+PanelPadding, y, textMuted, alignTopLeft)
}

// drawCaptured draws one tray per side and returns the y below them.
func (p *Panel) drawCaptured(screen *ebiten.Image, r *Renderer, y int) int {
	p.drawSectionLabel(screen, "Captured", y)
	y += SectionLabelH + 4

	trays := p.game.Captured()
	x := BoardSize + PanelPadding
	maxPerRow := (PanelWidth - PanelPadding*2 - 70) / (TrayPieceSize - 8)

	for _, side := range []board.Side{board.White, board.Black} {
		drawTextAt(screen, side.String(), GetScaledFace(defaultFontSize), x, y+TrayRowHeight/2, textSecondary, alignMiddle)

		tray := trays[side]
		for i, piece := range tray {
			if i >= maxPerRow {
				break
			}
			px := x + 54 + i*(TrayPieceSize-8)
			r.Sprites().DrawPiece(screen, piece, scaleD(px), scaleD(y+2), scaleD(TrayPieceSize), 1)
		}

		if diff := trays.Material(side) - trays.Material(side.Other()); diff > 0 {
			drawTextAt(screen, fmt.Sprintf("+%d", diff), GetScaledFace(defaultFontSize),
				BoardSize+PanelWidth-PanelPadding-24, y+TrayRowHeight/2, accentColor, alignMiddle)
		}
		y += TrayRowHeight
	}
	return y
}

func (p *Panel) drawStats(screen *ebiten.Image, y int) {
	stats := p.game.Stats()
	if stats == nil {
		return
	}
	p.drawSectionLabel(screen, "Statistics", y)
	y += SectionLabelH + 4

	x := BoardSize + PanelPadding
	rows := []struct {
		label string
		value int
	}{
		{"White wins", stats.WhiteWins},
		{"Black wins", stats.BlackWins},
		{"Games played", stats.GamesPlayed},
	}
	face := GetScaledFace(defaultFontSize)
	for _, row := range rows {
		drawTextAt(screen, row.label, face, x, y, textSecondary, alignTopLeft)
		drawTextAt(screen, fmt.Sprint(row.value), face, x+150, y, textPrimary, alignTopLeft)
		y += 22
	}
}

func (p *Panel) drawStatusBar(screen *ebiten.Image) {
	statusY := ScreenHeight - 60
	x := BoardSize + PanelPadding

	DrawDivider(screen, x, statusY-10, PanelWidth-PanelPadding*2)

	var statusText string
	statusColor := textPrimary
	switch {
	case p.game.GameOver():
		statusText = p.game.GameResult()
		statusColor = statusGameOver
	case p.game.InCheck():
		statusText = p.game.SideToMove().String() + " is in check"
		statusColor = statusCheck
	default:
		statusText = fmt.Sprintf("Move %d", p.game.Ply()/2+1)
	}
	drawTextAt(screen, statusText, GetScaledFace(defaultFontSize), x, statusY+8, statusColor, alignTopLeft)
}

// Collapsed returns whether the panel is collapsed.
func (p *Panel) Collapsed() bool {
	return p.collapsed
}

// toggleCollapse toggles the panel collapsed state and resizes the window.
func (p *Panel) toggleCollapse() {
	p.collapsed = !p.collapsed
	p.createButtons()

	if p.collapsed {
		ebiten.SetWindowSize(BoardSize+CollapsedWidth, ScreenHeight)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	}
}
