package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessboard/internal/storage"
)

// Settings modal dimensions
const (
	SettingsWidth  = 340
	SettingsHeight = 240
	SettingsPadX   = 24
	SettingsPadY   = 20
)

// Settings modal colors
var (
	modalOverlay = color.RGBA{0, 0, 0, 180}
	modalBg      = color.RGBA{38, 40, 45, 255}
	modalHeader  = color.RGBA{48, 52, 58, 255}
	modalBorder  = color.RGBA{58, 62, 68, 255}
)

// SettingsModal edits the sound and highlight preferences.
type SettingsModal struct {
	visible bool
	x, y    int

	soundCheckbox     *Checkbox
	highlightCheckbox *Checkbox
	saveBtn           *ModalButton
	cancelBtn         *ModalButton

	onSave func(prefs storage.UserPreferences)
	prefs  storage.UserPreferences
}

// NewSettingsModal creates a new settings modal.
func NewSettingsModal() *SettingsModal {
	sm := &SettingsModal{}
	sm.layout()
	return sm
}

// layout centres the modal on screen and places its widgets.
func (sm *SettingsModal) layout() {
	sm.x = (ScreenWidth - SettingsWidth) / 2
	sm.y = (ScreenHeight - SettingsHeight) / 2

	contentX := sm.x + SettingsPadX
	sm.soundCheckbox = NewCheckbox(contentX, sm.y+80, "Sound effects", true)
	sm.highlightCheckbox = NewCheckbox(contentX, sm.y+116, "Show legal moves", true)

	btnW, btnH, spacing := 100, 38, 12
	btnY := sm.y + SettingsHeight - SettingsPadY - btnH
	sm.cancelBtn = NewModalButton(sm.x+SettingsWidth-SettingsPadX-btnW*2-spacing, btnY, btnW, btnH, "Cancel", false, sm.Hide)
	sm.saveBtn = NewModalButton(sm.x+SettingsWidth-SettingsPadX-btnW, btnY, btnW, btnH, "Save", true, sm.handleSave)
}

// Show opens the modal with the current preferences.
func (sm *SettingsModal) Show(prefs storage.UserPreferences, onSave func(storage.UserPreferences)) {
	sm.layout()
	sm.visible = true
	sm.prefs = prefs
	sm.onSave = onSave
	sm.soundCheckbox.Checked = prefs.SoundEnabled
	sm.highlightCheckbox.Checked = prefs.ShowHighlights
}

// Hide closes the settings modal without saving.
func (sm *SettingsModal) Hide() {
	sm.visible = false
}

// IsVisible returns true if the modal is visible.
func (sm *SettingsModal) IsVisible() bool {
	return sm.visible
}

func (sm *SettingsModal) handleSave() {
	prefs := sm.prefs
	prefs.SoundEnabled = sm.soundCheckbox.Checked
	prefs.ShowHighlights = sm.highlightCheckbox.Checked
	if sm.onSave != nil {
		sm.onSave(prefs)
	}
	sm.Hide()
}

// Update handles input for the settings modal. The modal consumes all input.
func (sm *SettingsModal) Update(input *InputHandler) bool {
	if !sm.visible {
		return false
	}

	if IsKeyJustPressed(ebiten.KeyEscape) {
		sm.Hide()
		return true
	}
	if IsKeyJustPressed(ebiten.KeyEnter) {
		sm.handleSave()
		return true
	}

	sm.soundCheckbox.Update(input)
	sm.highlightCheckbox.Update(input)
	sm.saveBtn.Update(input)
	sm.cancelBtn.Update(input)
	return true
}

// AnyButtonHovered returns true if any control in the modal is hovered.
func (sm *SettingsModal) AnyButtonHovered() bool {
	if !sm.visible {
		return false
	}
	return sm.saveBtn.IsHovered() || sm.cancelBtn.IsHovered() ||
		sm.soundCheckbox.hovered || sm.highlightCheckbox.hovered
}

// Draw renders the settings modal.
func (sm *SettingsModal) Draw(screen *ebiten.Image) {
	if !sm.visible {
		return
	}

	vector.DrawFilledRect(screen, 0, 0, scaleF(ScreenWidth), scaleF(ScreenHeight), modalOverlay, false)

	x, y, w, h := scaleF(sm.x), scaleF(sm.y), scaleF(SettingsWidth), scaleF(SettingsHeight)
	vector.DrawFilledRect(screen, x, y, w, h, modalBg, false)
	vector.StrokeRect(screen, x, y, w, h, scaleF(2), modalBorder, false)
	vector.DrawFilledRect(screen, x, y, w, scaleF(44), modalHeader, false)

	drawTextAt(screen, "Settings", GetScaledBoldFace(titleFontSize), sm.x+SettingsWidth/2, sm.y+22, textPrimary, alignCenter)
	drawTextAt(screen, "Preferences", GetScaledFace(defaultFontSize), sm.x+SettingsPadX, sm.y+56, textMuted, alignTopLeft)

	sm.soundCheckbox.Draw(screen)
	sm.highlightCheckbox.Draw(screen)
	sm.saveBtn.Draw(screen)
	sm.cancelBtn.Draw(screen)
}
