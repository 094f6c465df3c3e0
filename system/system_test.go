package system

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/laaame/component"
	"github.com/lixenwraith/laaame/constant"
	"github.com/lixenwraith/laaame/engine"
	"github.com/lixenwraith/laaame/event"
	"github.com/lixenwraith/laaame/store"
	"github.com/lixenwraith/laaame/vmath"
)

const testSeed = 20240611

// clearSystem removes every spawned entity so a run can only end by reaching the target
type clearSystem struct{}

func (sys *clearSystem) Name() string  { return "clear" }
func (sys *clearSystem) Priority() int { return 75 }
func (sys *clearSystem) Update(s *engine.Session, dt time.Duration) {
	s.Obstacles = s.Obstacles[:0]
	s.Projectiles = s.Projectiles[:0]
	s.Collectibles = s.Collectibles[:0]
}

type loudSource struct{ level float32 }

func (f *loudSource) Read(dst []float32) int {
	for i := range dst {
		dst[i] = f.level
	}
	return len(dst)
}

func (f *loudSource) Close() error { return nil }

func startGame(t *testing.T, opts ...engine.Option) *engine.Game {
	t.Helper()
	g := engine.NewGame(append([]engine.Option{engine.WithSeed(testSeed)}, opts...)...)
	if err := g.Start("easy"); err != nil {
		t.Fatalf("start: %v", err)
	}
	g.Effects()
	return g
}

func effectSounds(evs []event.GameEvent) []event.Sound {
	var out []event.Sound
	for _, e := range evs {
		if e.Type == event.EventSound {
			out = append(out, e.Payload.(event.Sound))
		}
	}
	return out
}

func TestEasyRunWinsAtTarget(t *testing.T) {
	st := store.NewMemory()
	sys := append(Default(), &clearSystem{})
	g := startGame(t, engine.WithStore(st), engine.WithSystems(sys...))

	for i := 0; i < 2000 && g.Phase() == engine.PhaseRunning; i++ {
		g.Tick(16 * time.Millisecond)
	}

	if g.Phase() != engine.PhaseWon {
		t.Fatalf("phase = %s, want won", g.Phase())
	}
	out, ok := g.Outcome()
	if !ok {
		t.Fatal("no outcome recorded")
	}
	if out.Score != 333 || out.Best != 333 || !out.NewBest {
		t.Errorf("outcome score=%d best=%d new=%v", out.Score, out.Best, out.NewBest)
	}
	if out.Unlocked != "medium" {
		t.Errorf("unlocked = %q, want medium", out.Unlocked)
	}

	best := map[string]int{}
	if found, err := st.Load(engine.KeyBestScores, &best); err != nil || !found {
		t.Fatalf("best scores not persisted: found=%v err=%v", found, err)
	}
	if best["easy"] != 333 {
		t.Errorf("persisted best = %d", best["easy"])
	}

	var unlocked []string
	if _, err := st.Load(engine.KeyUnlocked, &unlocked); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(unlocked, []string{"easy", "medium"}) {
		t.Errorf("persisted unlocks = %v", unlocked)
	}
}

func TestDashProtectsThenExpires(t *testing.T) {
	g := startGame(t, engine.WithSystems(NewDashSystem(), NewCollisionSystem()))
	s := g.Session()

	if !g.Handle(event.GameEvent{Type: event.EventDash}) || !s.Dash.Dashing() {
		t.Fatal("dash did not activate")
	}

	onPlayer := func() component.Obstacle {
		return component.Obstacle{Kind: component.KindCaseFiles, Lane: s.Player.Lane, X: s.Player.X, Y: s.Player.Y}
	}

	step := 10 * time.Millisecond
	for elapsed := step; elapsed <= 600*time.Millisecond; elapsed += step {
		switch elapsed {
		case 200 * time.Millisecond:
			s.Obstacles = append(s.Obstacles, onPlayer())
		case 210 * time.Millisecond:
			s.Obstacles = s.Obstacles[:0]
		case 600 * time.Millisecond:
			s.Obstacles = append(s.Obstacles, onPlayer())
		}
		g.Tick(step)

		if elapsed < 600*time.Millisecond && g.Phase() != engine.PhaseRunning {
			t.Fatalf("run ended at %v while dash should protect", elapsed)
		}
	}

	if g.Phase() != engine.PhaseLost {
		t.Fatalf("phase = %s after dash expired, want lost", g.Phase())
	}
}

func TestNoCollisionWhileDashing(t *testing.T) {
	g := startGame(t, engine.WithSystems(NewDashSystem(), NewCollisionSystem()))
	s := g.Session()
	g.Handle(event.GameEvent{Type: event.EventDash})

	p := s.Player
	s.Obstacles = append(s.Obstacles, component.Obstacle{Kind: component.KindHammer, X: p.X, Y: p.Y})
	s.Projectiles = append(s.Projectiles, component.Projectile{X: p.X, Y: p.Y, W: 12, H: 4, Speed: 1})

	for s.Dash.Dashing() {
		g.Tick(20 * time.Millisecond)
		if s.Dash.Dashing() && g.Phase() != engine.PhaseRunning {
			t.Fatal("collision resolved during dash")
		}
	}
	if g.Phase() != engine.PhaseLost || !s.Obstacles[0].Hit {
		t.Errorf("phase = %s after dash ended over an obstacle", g.Phase())
	}
}

// patternSource alternates loud and silent stretches with seeded noise
type patternSource struct {
	rng   *vmath.FastRand
	reads int
}

func newPatternSource(seed uint64) *patternSource {
	return &patternSource{rng: vmath.NewFastRand(seed)}
}

func (p *patternSource) Read(dst []float32) int {
	amp := float32(0)
	if (p.reads/60)%2 == 0 {
		amp = 0.1
	}
	p.reads++
	for i := range dst {
		sign := float32(1)
		if i%2 == 1 {
			sign = -1
		}
		dst[i] = sign*amp + float32(p.rng.Float64()-0.5)*0.002
	}
	return len(dst)
}

func (p *patternSource) Close() error { return nil }

// recordRun ticks g for n frames and copies every snapshot
func recordRun(g *engine.Game, n int, script func(int)) []engine.Snapshot {
	frames := make([]engine.Snapshot, 0, n)
	for i := 0; i < n; i++ {
		if script != nil {
			script(i)
		}
		g.Tick(16 * time.Millisecond)
		var snap engine.Snapshot
		g.Snapshot(&snap)
		snap.Outcome.RunID = uuid.Nil
		frames = append(frames, snap)
	}
	return frames
}

func compareRuns(t *testing.T, a, b []engine.Snapshot) {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("run lengths %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !reflect.DeepEqual(a[i].Player, b[i].Player) {
			t.Fatalf("player diverges at tick %d: %+v vs %+v", i, a[i].Player, b[i].Player)
		}
		if !reflect.DeepEqual(a[i], b[i]) {
			t.Fatalf("snapshot diverges at tick %d", i)
		}
	}
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() ([]engine.Snapshot, engine.Outcome, bool) {
		g := startGame(t, engine.WithSystems(Default()...))
		frames := recordRun(g, 1500, func(i int) {
			switch i {
			case 40:
				g.Handle(event.GameEvent{Type: event.EventLaneUp})
			case 90:
				g.Handle(event.GameEvent{Type: event.EventDash})
			case 200:
				g.Handle(event.GameEvent{Type: event.EventLaneDown})
				g.Handle(event.GameEvent{Type: event.EventLaneDown})
			}
		})
		out, ok := g.Outcome()
		out.RunID = uuid.Nil
		return frames, out, ok
	}

	fa, oa, oka := run()
	fb, ob, okb := run()

	compareRuns(t, fa, fb)
	if oka != okb || !reflect.DeepEqual(oa, ob) {
		t.Errorf("outcomes differ: %+v vs %+v", oa, ob)
	}
	spawned := false
	for _, f := range fa {
		if len(f.Obstacles) > 0 {
			spawned = true
			break
		}
	}
	if !spawned {
		t.Error("no obstacles spawned; the comparison covered an empty field")
	}
}

func TestSameSeedSameVoiceRun(t *testing.T) {
	run := func() []engine.Snapshot {
		g := engine.NewGame(
			engine.WithSeed(testSeed),
			engine.WithSystems(Default()...),
			engine.WithCaptureOpener(func() (engine.AmplitudeSource, error) {
				return newPatternSource(testSeed), nil
			}),
		)
		if err := g.SetControlMode(engine.ModeVoice); err != nil {
			t.Fatalf("voice: %v", err)
		}
		if err := g.Start("easy"); err != nil {
			t.Fatalf("start: %v", err)
		}
		g.Effects()
		return recordRun(g, 600, nil)
	}

	fa := run()
	fb := run()
	compareRuns(t, fa, fb)

	moved := false
	for _, f := range fa {
		if f.Player.Lane != fa[0].Player.Lane {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("voice pattern never changed lane")
	}
	if !fa[0].Voice {
		t.Error("run not under voice control")
	}
}

func TestScoreNeverDecreasesWhileRunning(t *testing.T) {
	g := startGame(t, engine.WithSystems(Default()...))
	s := g.Session()

	prev := 0
	for i := 0; i < 3000 && g.Phase() == engine.PhaseRunning; i++ {
		g.Tick(16 * time.Millisecond)
		if g.Phase() != engine.PhaseRunning {
			break
		}
		if cur := s.FloorScore(); cur < prev {
			t.Fatalf("score fell from %d to %d at tick %d", prev, cur, i)
		} else {
			prev = cur
		}
	}
}

func TestLaneStaysInBounds(t *testing.T) {
	g := startGame(t, engine.WithSystems(NewPlayerSystem()))
	s := g.Session()

	for i := 0; i < 5; i++ {
		g.Handle(event.GameEvent{Type: event.EventLaneUp})
		g.Tick(16 * time.Millisecond)
	}
	if s.Player.Lane != 0 {
		t.Errorf("lane = %d after repeated up, want 0", s.Player.Lane)
	}
	for i := 0; i < 5; i++ {
		g.Handle(event.GameEvent{Type: event.EventLaneDown})
	}
	if s.Player.Lane != constant.LaneCount-1 {
		t.Errorf("lane = %d after repeated down", s.Player.Lane)
	}
	if s.Player.TargetY != s.Layout.Center(constant.LaneCount-1) {
		t.Errorf("target y %.1f not at bottom lane center", s.Player.TargetY)
	}
}

func TestPlayerConvergesOnLane(t *testing.T) {
	g := startGame(t, engine.WithSystems(NewPlayerSystem()))
	s := g.Session()
	g.Handle(event.GameEvent{Type: event.EventLaneUp})

	prev := s.Player.Y - s.Player.TargetY
	for i := 0; i < 60; i++ {
		g.Tick(16 * time.Millisecond)
		gap := s.Player.Y - s.Player.TargetY
		if gap < 0 || gap > prev {
			t.Fatalf("tick %d: gap %.3f after %.3f", i, gap, prev)
		}
		prev = gap
	}
	if prev > 1 {
		t.Errorf("player y %.2f has not reached %.2f", s.Player.Y, s.Player.TargetY)
	}
}

func TestVoiceStepsOneLaneAtATime(t *testing.T) {
	opener := func() (engine.AmplitudeSource, error) { return &loudSource{level: 0.5}, nil }
	g := engine.NewGame(
		engine.WithSeed(testSeed),
		engine.WithSystems(NewVoiceSystem()),
		engine.WithCaptureOpener(opener),
	)
	if err := g.SetControlMode(engine.ModeVoice); err != nil {
		t.Fatal(err)
	}
	if err := g.Start("easy"); err != nil {
		t.Fatal(err)
	}
	s := g.Session()
	g.Handle(event.GameEvent{Type: event.EventLaneDown})
	if s.Player.Lane != 2 {
		t.Fatalf("keyboard step in voice mode: lane %d", s.Player.Lane)
	}

	step := 10 * time.Millisecond
	lane, lastChange := s.Player.Lane, 0
	for i := 1; i <= 60; i++ {
		g.Tick(step)
		if s.Player.Lane == lane {
			continue
		}
		if lane-s.Player.Lane != 1 {
			t.Fatalf("tick %d jumped from lane %d to %d", i, lane, s.Player.Lane)
		}
		if lastChange > 0 && time.Duration(i-lastChange)*step < constant.MicLaneSettle {
			t.Fatalf("steps %d ticks apart, faster than settle", i-lastChange)
		}
		lane, lastChange = s.Player.Lane, i
	}
	if lane != 0 {
		t.Errorf("lane = %d after sustained loud input, want 0", lane)
	}
}

func TestPickupAwardsBonus(t *testing.T) {
	g := startGame(t, engine.WithSystems(NewCollisionSystem()))
	s := g.Session()
	p := s.Player
	s.Collectibles = append(s.Collectibles, component.Collectible{Lane: p.Lane, X: p.X, Y: p.Y})

	g.Tick(10 * time.Millisecond)

	if len(s.Collectibles) != 0 {
		t.Fatal("pickup not consumed")
	}
	if s.FloorScore() != constant.PickupBonus {
		t.Errorf("score = %d", s.FloorScore())
	}
	if s.PhoneHold != constant.PhoneHoldDuration {
		t.Errorf("phone hold = %v", s.PhoneHold)
	}
	if len(s.Popups) != 1 || s.Popups[0].Text != "+500" {
		t.Errorf("popups = %+v", s.Popups)
	}
	if got := len(s.Particles); got != 12 {
		t.Errorf("sparkles = %d, want 12", got)
	}

	evs := g.Effects()
	if snd := effectSounds(evs); len(snd) != 1 || snd[0] != event.SoundPickup {
		t.Errorf("sounds = %v", snd)
	}
	if text, ok := s.Narrator.Text(); !ok || text != "Better Call Saul!" {
		t.Errorf("phrase = %q visible=%v", text, ok)
	}
}

func TestShooterFiresInsideField(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		fires bool
	}{
		{"inside", constant.FieldWidth - 200, true},
		{"at edge", constant.FieldWidth, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := startGame(t, engine.WithSystems(NewMotionSystem()))
			s := g.Session()
			s.Obstacles = append(s.Obstacles, component.Obstacle{
				Kind: component.KindGun, Lane: 1, X: tt.x, Y: s.Layout.Center(1), ShootIn: 5 * time.Millisecond,
			})

			g.Tick(10 * time.Millisecond)

			if got := len(s.Projectiles) == 1; got != tt.fires {
				t.Fatalf("fired = %v, want %v", got, tt.fires)
			}
			if !tt.fires {
				return
			}
			shot := s.Projectiles[0]
			if shot.Speed != s.Speed*constant.ProjectileSpeedFactor {
				t.Errorf("projectile speed %.2f", shot.Speed)
			}
			travel := shot.Speed * (10 * time.Millisecond).Seconds() * constant.UnitsPerSpeed
			if want := s.Obstacles[0].X - constant.ProjectileMuzzleOffset - travel; math.Abs(shot.X-want) > 1e-9 {
				t.Errorf("projectile x %.2f", shot.X)
			}
			reload := s.Obstacles[0].ShootIn
			if reload < constant.ReloadMin || reload >= constant.ReloadMin+constant.ReloadSpan {
				t.Errorf("reload %v outside band", reload)
			}
			if snd := effectSounds(g.Effects()); len(snd) != 1 || snd[0] != event.SoundGun {
				t.Errorf("sounds = %v", snd)
			}
		})
	}
}

func TestDodgeBonusOnExit(t *testing.T) {
	tests := []struct {
		name  string
		hit   bool
		bonus int
	}{
		{"unhit", false, constant.DodgeBonus},
		{"hit", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := startGame(t, engine.WithSystems(NewMotionSystem()))
			s := g.Session()
			w := component.Kinds[component.KindCaseFiles].Width
			s.Obstacles = append(s.Obstacles, component.Obstacle{Kind: component.KindCaseFiles, X: -w + 1, Hit: tt.hit})

			g.Tick(10 * time.Millisecond)

			if len(s.Obstacles) != 0 {
				t.Fatal("obstacle not removed past the left edge")
			}
			if s.FloorScore() != tt.bonus {
				t.Errorf("score = %d, want %d", s.FloorScore(), tt.bonus)
			}
			if tt.bonus > 0 && (len(s.Popups) != 1 || s.Popups[0].X != 80) {
				t.Errorf("popups = %+v", s.Popups)
			}
		})
	}
}

func TestProjectileHitLoses(t *testing.T) {
	g := startGame(t, engine.WithSystems(NewCollisionSystem()))
	s := g.Session()
	p := s.Player
	s.Projectiles = append(s.Projectiles, component.Projectile{X: p.X, Y: p.Y, W: 12, H: 4, Speed: 10})

	g.Tick(10 * time.Millisecond)

	if g.Phase() != engine.PhaseLost {
		t.Fatalf("phase = %s", g.Phase())
	}
	if len(s.Projectiles) != 0 {
		t.Error("projectile not consumed")
	}
	out, _ := g.Outcome()
	if out.Deaths != 1 {
		t.Errorf("deaths = %d", out.Deaths)
	}
}

func TestTypedPhraseWinsAfterDelay(t *testing.T) {
	g := startGame(t, engine.WithSystems(NewScoreSystem()))
	for _, r := range "SaulGoodman" {
		g.Handle(event.GameEvent{Type: event.EventTyped, Payload: r})
	}
	s := g.Session()
	if s.WinIn != constant.TypedWinDelay {
		t.Fatalf("win delay = %v", s.WinIn)
	}

	step := 10 * time.Millisecond
	ticks := int(constant.TypedWinDelay / step)
	for i := 1; i < ticks; i++ {
		g.Tick(step)
		if g.Phase() != engine.PhaseRunning {
			t.Fatalf("won early at tick %d", i)
		}
	}
	g.Tick(step)
	if g.Phase() != engine.PhaseWon {
		t.Fatalf("phase = %s, want won", g.Phase())
	}
	if out, _ := g.Outcome(); out.Score != s.Tier.Target {
		t.Errorf("score = %d, want target", out.Score)
	}
}

func TestSpawnPlacesObstacleInLane(t *testing.T) {
	g := startGame(t, engine.WithSystems(NewSpawnSystem()))
	s := g.Session()

	g.Tick(10 * time.Millisecond)

	if len(s.Obstacles) != 1 {
		t.Fatalf("obstacles = %d, want 1 on first tick", len(s.Obstacles))
	}
	o := s.Obstacles[0]
	d := o.Kind.Descriptor()
	if o.X != s.Width+d.Width || o.Y != s.Layout.Center(o.Lane) {
		t.Errorf("obstacle at (%.1f, %.1f) lane %d", o.X, o.Y, o.Lane)
	}
	if d.Shoots != (o.ShootIn > 0) {
		t.Errorf("shoot timer %v for %s", o.ShootIn, o.Kind)
	}
	lo := time.Duration(float64(s.Tier.SpawnInterval) * constant.SpawnJitterMin)
	hi := time.Duration(float64(s.Tier.SpawnInterval) * (constant.SpawnJitterMin + constant.SpawnJitterSpan))
	if s.SpawnIn < lo || s.SpawnIn > hi {
		t.Errorf("next spawn %v outside [%v, %v]", s.SpawnIn, lo, hi)
	}
}

func TestDefaultOrder(t *testing.T) {
	sys := Default()
	for i := 1; i < len(sys); i++ {
		if sys[i-1].Priority() >= sys[i].Priority() {
			t.Errorf("%s (%d) not before %s (%d)", sys[i-1].Name(), sys[i-1].Priority(), sys[i].Name(), sys[i].Priority())
		}
	}
}
