package loop

import (
	"math/rand"
	"testing"
	"time"

	"github.com/tomz197/shoot/internal/object"
)

func TestGameRestartsOnTap(t *testing.T) {
	hud := &recordingHUD{}
	presenter := &recordingPresenter{}
	g := NewGame(Options{HUD: hud, Presenter: presenter, Rand: rand.New(rand.NewSource(2))})
	first := g.Session()
	first.spawner = object.NewEnemySpawner(0)
	first.world.Spawn(object.NewEnemyAt(first.world.NextID(), first.Screen(), 300, 0.2))

	now := 10 * time.Second
	for i := 0; i < 30; i++ {
		g.Update(now)
		now += frame
	}
	if g.State() != GameStateGameOver {
		t.Fatalf("state = %v, want game over", g.State())
	}

	// Frames without a tap stay on the game-over screen.
	g.Update(now)
	if g.Session() != first {
		t.Fatal("session replaced without a tap")
	}

	g.Tap(10, 10)
	g.Update(now + frame)
	if g.Session() == first {
		t.Fatal("tap during game over should start a new session")
	}
	if g.State() != GameStateActive || g.Session().Score() != 0 {
		t.Fatalf("new session state=%v score=%d", g.State(), g.Session().Score())
	}
	if g.Games() != 2 {
		t.Fatalf("games = %d, want 2", g.Games())
	}
	if hud.last() != "Score: 0" {
		t.Fatalf("HUD = %q after restart", hud.last())
	}

	want := []Scene{SceneGame, SceneGameOver, SceneGame}
	if len(presenter.scenes) != len(want) {
		t.Fatalf("presented %v, want %v", presenter.scenes, want)
	}
	for i := range want {
		if presenter.scenes[i] != want[i] {
			t.Fatalf("presented %v, want %v", presenter.scenes, want)
		}
	}
}

func TestGameTapWhileActiveFires(t *testing.T) {
	g := NewGame(Options{Rand: rand.New(rand.NewSource(4))})
	g.Session().spawner = object.NewEnemySpawner(0)
	g.Tap(0, 0)
	g.Update(10 * time.Second)
	if n := g.Session().Count(object.KindBullet); n != 1 {
		t.Fatalf("bullets = %d, want 1", n)
	}
}
