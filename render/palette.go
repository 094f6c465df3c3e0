package render

import "github.com/gdamore/tcell/v2"

// Palette is one colour theme
type Palette struct {
	Name string

	Sky        tcell.Color
	Ground     tcell.Color
	LaneLine   tcell.Color
	Text       tcell.Color
	Dim        tcell.Color
	Accent     tcell.Color
	Danger     tcell.Color
	Good       tcell.Color
	Player     tcell.Color
	PlayerCoat tcell.Color
	DashGlow   tcell.Color
	Phone      tcell.Color
	CaseFiles  tcell.Color
	Hammer     tcell.Color
	Gun        tcell.Color
	Bullet     tcell.Color
	Dust       tcell.Color
	Hit        tcell.Color
	Popup      tcell.Color
	Overlay    tcell.Color

	Confetti [6]tcell.Color
	Sparks   [4]tcell.Color
}

var (
	Day = Palette{
		Name:       "day",
		Sky:        tcell.NewRGBColor(135, 206, 235),
		Ground:     tcell.NewRGBColor(196, 164, 120),
		LaneLine:   tcell.NewRGBColor(240, 230, 200),
		Text:       tcell.NewRGBColor(20, 20, 30),
		Dim:        tcell.NewRGBColor(90, 90, 110),
		Accent:     tcell.NewRGBColor(0, 90, 200),
		Danger:     tcell.NewRGBColor(200, 30, 30),
		Good:       tcell.NewRGBColor(20, 150, 60),
		Player:     tcell.NewRGBColor(250, 220, 180),
		PlayerCoat: tcell.NewRGBColor(60, 60, 140),
		DashGlow:   tcell.NewRGBColor(0, 220, 255),
		Phone:      tcell.NewRGBColor(30, 30, 30),
		CaseFiles:  tcell.NewRGBColor(150, 100, 40),
		Hammer:     tcell.NewRGBColor(110, 70, 40),
		Gun:        tcell.NewRGBColor(60, 60, 60),
		Bullet:     tcell.NewRGBColor(255, 200, 0),
		Dust:       tcell.NewRGBColor(170, 150, 120),
		Hit:        tcell.NewRGBColor(255, 80, 0),
		Popup:      tcell.NewRGBColor(255, 215, 0),
		Overlay:    tcell.NewRGBColor(20, 20, 40),
		Confetti: [6]tcell.Color{
			tcell.NewRGBColor(255, 0, 0), tcell.NewRGBColor(255, 165, 0), tcell.NewRGBColor(255, 255, 0),
			tcell.NewRGBColor(0, 200, 0), tcell.NewRGBColor(0, 120, 255), tcell.NewRGBColor(200, 0, 255),
		},
		Sparks: [4]tcell.Color{
			tcell.NewRGBColor(255, 255, 255), tcell.NewRGBColor(255, 240, 120),
			tcell.NewRGBColor(120, 255, 255), tcell.NewRGBColor(255, 180, 60),
		},
	}

	Night = Palette{
		Name:       "night",
		Sky:        tcell.NewRGBColor(15, 15, 40),
		Ground:     tcell.NewRGBColor(40, 35, 45),
		LaneLine:   tcell.NewRGBColor(80, 80, 120),
		Text:       tcell.NewRGBColor(230, 230, 240),
		Dim:        tcell.NewRGBColor(130, 130, 160),
		Accent:     tcell.NewRGBColor(120, 180, 255),
		Danger:     tcell.NewRGBColor(255, 80, 80),
		Good:       tcell.NewRGBColor(90, 230, 120),
		Player:     tcell.NewRGBColor(240, 210, 170),
		PlayerCoat: tcell.NewRGBColor(110, 110, 220),
		DashGlow:   tcell.NewRGBColor(0, 255, 255),
		Phone:      tcell.NewRGBColor(200, 200, 200),
		CaseFiles:  tcell.NewRGBColor(200, 150, 80),
		Hammer:     tcell.NewRGBColor(170, 120, 80),
		Gun:        tcell.NewRGBColor(170, 170, 170),
		Bullet:     tcell.NewRGBColor(255, 230, 60),
		Dust:       tcell.NewRGBColor(90, 80, 90),
		Hit:        tcell.NewRGBColor(255, 120, 40),
		Popup:      tcell.NewRGBColor(255, 230, 90),
		Overlay:    tcell.NewRGBColor(0, 0, 0),
		Confetti: [6]tcell.Color{
			tcell.NewRGBColor(255, 90, 90), tcell.NewRGBColor(255, 190, 80), tcell.NewRGBColor(255, 255, 120),
			tcell.NewRGBColor(90, 255, 120), tcell.NewRGBColor(90, 170, 255), tcell.NewRGBColor(220, 120, 255),
		},
		Sparks: [4]tcell.Color{
			tcell.NewRGBColor(255, 255, 255), tcell.NewRGBColor(255, 250, 170),
			tcell.NewRGBColor(170, 255, 255), tcell.NewRGBColor(255, 200, 110),
		},
	}
)

// Toggle returns the other theme
func (p *Palette) Toggle() *Palette {
	if p == &Night {
		return &Day
	}
	return &Night
}

// Style returns fg on the sky background
func (p *Palette) Style(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(p.Sky)
}
