package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessboard/internal/board"
)

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastSuccess
)

// Toast represents a notification message.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// ToastManager keeps a short stack of notifications.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{maxStack: 3}
}

// Show displays a new toast notification, dropping the oldest beyond maxStack.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: time.Now(),
		Duration:  duration,
	})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	now := time.Now()
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

// Draw renders all active toasts centred over the board.
func (tm *ToastManager) Draw(screen *ebiten.Image) {
	face := GetScaledFace(defaultFontSize)
	if face == nil {
		return
	}

	y := scaleD(50)
	for _, t := range tm.toasts {
		alpha := fade(time.Since(t.StartTime).Seconds(), t.Duration.Seconds(), 0.2)

		var bg color.RGBA
		fg := color.RGBA{255, 255, 255, uint8(255 * alpha)}
		switch t.Type {
		case ToastWarning:
			bg = color.RGBA{180, 140, 20, uint8(220 * alpha)}
			fg = color.RGBA{40, 30, 0, uint8(255 * alpha)}
		case ToastSuccess:
			bg = color.RGBA{50, 150, 50, uint8(220 * alpha)}
		default:
			bg = color.RGBA{50, 100, 150, uint8(220 * alpha)}
		}

		w, h := MeasureText(t.Message, face)
		pad := scaleD(12)
		boxW, boxH := w+pad*2, h+pad*2
		x := scaleD(BoardSize)/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bg, false)
		drawTextAt(screen, t.Message, face, int((x+pad)/UIScale), int((y+pad)/UIScale), fg, alignTopLeft)

		y += boxH + scaleD(8)
	}
}

// fade ramps alpha in over the first edge seconds and out over the last.
func fade(elapsed, duration, edge float64) float64 {
	switch {
	case elapsed < edge:
		return elapsed / edge
	case elapsed > duration-edge:
		return math.Max(0, (duration-elapsed)/edge)
	}
	return 1
}

// ShakeAnimation wobbles the piece on a cell.
type ShakeAnimation struct {
	Cell      board.Pos
	StartTime time.Time
	Duration  time.Duration
	Intensity float64
}

// FlashAnimation tints a cell and fades out.
type FlashAnimation struct {
	Cell      board.Pos
	StartTime time.Time
	Duration  time.Duration
	Color     color.RGBA
}

// AnimationManager manages visual animations.
type AnimationManager struct {
	shakes  []*ShakeAnimation
	flashes []*FlashAnimation
}

// NewAnimationManager creates a new animation manager.
func NewAnimationManager() *AnimationManager {
	return &AnimationManager{}
}

// StartShake begins a shake animation on a cell.
func (am *AnimationManager) StartShake(p board.Pos) {
	am.shakes = append(am.shakes, &ShakeAnimation{
		Cell:      p,
		StartTime: time.Now(),
		Duration:  300 * time.Millisecond,
		Intensity: 8.0,
	})
}

// StartFlash begins a flash animation on a cell.
func (am *AnimationManager) StartFlash(p board.Pos, c color.RGBA) {
	am.flashes = append(am.flashes, &FlashAnimation{
		Cell:      p,
		StartTime: time.Now(),
		Duration:  400 * time.Millisecond,
		Color:     c,
	})
}

// Update removes expired animations.
func (am *AnimationManager) Update() {
	now := time.Now()

	shakes := am.shakes[:0]
	for _, s := range am.shakes {
		if now.Sub(s.StartTime) < s.Duration {
			shakes = append(shakes, s)
		}
	}
	am.shakes = shakes

	flashes := am.flashes[:0]
	for _, f := range am.flashes {
		if now.Sub(f.StartTime) < f.Duration {
			flashes = append(flashes, f)
		}
	}
	am.flashes = flashes
}

// ShakeOffset returns the current horizontal shake offset for a cell.
func (am *AnimationManager) ShakeOffset(p board.Pos) float64 {
	if am == nil {
		return 0
	}
	for _, s := range am.shakes {
		if s.Cell != p {
			continue
		}
		progress := time.Since(s.StartTime).Seconds() / s.Duration.Seconds()
		if progress >= 1.0 {
			return 0
		}
		// damped sine
		return s.Intensity * math.Exp(-5*progress) * math.Sin(40*progress)
	}
	return 0
}

// DrawFlashes renders all active flash overlays.
func (am *AnimationManager) DrawFlashes(screen *ebiten.Image, r *Renderer, b *board.Board) {
	for _, f := range am.flashes {
		progress := time.Since(f.StartTime).Seconds() / f.Duration.Seconds()
		if progress >= 1.0 {
			continue
		}
		c := f.Color
		c.A = uint8(float64(c.A) * (1 - progress))
		r.fillCell(screen, b, f.Cell, c)
	}
}

// FeedbackManager coordinates toasts, animations and sound.
type FeedbackManager struct {
	toasts     *ToastManager
	animations *AnimationManager
	audio      *AudioManager
}

// NewFeedbackManager creates a new feedback manager.
func NewFeedbackManager() *FeedbackManager {
	return &FeedbackManager{
		toasts:     NewToastManager(),
		animations: NewAnimationManager(),
		audio:      NewAudioManager(),
	}
}

// Update updates all feedback systems.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()
	fm.animations.Update()
}

// Draw renders all feedback overlays.
func (fm *FeedbackManager) Draw(screen *ebiten.Image, r *Renderer, b *board.Board) {
	fm.animations.DrawFlashes(screen, r, b)
	fm.toasts.Draw(screen)
}

// Animations returns the animation manager for renderer integration.
func (fm *FeedbackManager) Animations() *AnimationManager {
	return fm.animations
}

// OnNotYourTurn handles a click on a piece of the side not to move.
func (fm *FeedbackManager) OnNotYourTurn(p board.Pos, toMove board.Side) {
	fm.toasts.Show(toMove.String()+" to move", ToastWarning, 2*time.Second)
	fm.animations.StartShake(p)
	fm.audio.Play(SoundInvalid)
}

// OnMoveMade plays the sound for a completed turn.
func (fm *FeedbackManager) OnMoveMade(capture, castling bool) {
	switch {
	case castling:
		fm.audio.Play(SoundCastle)
	case capture:
		fm.audio.Play(SoundCapture)
	default:
		fm.audio.Play(SoundMove)
	}
}

// OnCapture flashes the cell a piece was taken on.
func (fm *FeedbackManager) OnCapture(p board.Pos) {
	fm.animations.StartFlash(p, color.RGBA{255, 170, 60, 160})
}

// OnPromotion handles a pawn becoming kind.
func (fm *FeedbackManager) OnPromotion(p board.Pos, kind board.Kind) {
	fm.toasts.Show("Promoted to "+kind.String(), ToastInfo, 2*time.Second)
	fm.animations.StartFlash(p, color.RGBA{120, 200, 255, 160})
	fm.audio.Play(SoundPromote)
}

// OnCheck handles a check event.
func (fm *FeedbackManager) OnCheck(king board.Pos) {
	fm.toasts.Show("Check!", ToastWarning, 2*time.Second)
	fm.animations.StartFlash(king, color.RGBA{255, 80, 80, 150})
	fm.audio.Play(SoundCheck)
}

// OnCheckmate handles a checkmate event.
func (fm *FeedbackManager) OnCheckmate(winner board.Side) {
	fm.toasts.Show("Checkmate! "+winner.String()+" wins!", ToastSuccess, 5*time.Second)
	fm.audio.Play(SoundGameEnd)
}

// OnNewGame announces a restart.
func (fm *FeedbackManager) OnNewGame() {
	fm.toasts.Show("New game", ToastInfo, 1500*time.Millisecond)
}

// OnResumed announces a game restored from storage.
func (fm *FeedbackManager) OnResumed() {
	fm.toasts.Show("Resumed unfinished game", ToastInfo, 2*time.Second)
}

// Audio returns the audio manager for settings access.
func (fm *FeedbackManager) Audio() *AudioManager {
	return fm.audio
}
