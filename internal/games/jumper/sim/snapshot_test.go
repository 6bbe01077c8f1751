package sim

import (
	"encoding/json"
	"testing"

	"github.com/vovakirdan/sky-jumper/internal/config"
)

func TestSnapshotFields(t *testing.T) {
	s := newPlaying(t, config.DefaultJumperConfig(), 428202)
	snap := s.Snapshot()

	if snap.Version != SnapshotVersion || snap.Mode != "playing" || snap.Seed != 428202 {
		t.Errorf("header = %d %s %d", snap.Version, snap.Mode, snap.Seed)
	}
	if len(s.Platforms()) <= snapshotPlatforms || len(snap.Platforms) != snapshotPlatforms {
		t.Errorf("snapshot lists %d of %d platforms", len(snap.Platforms), len(s.Platforms()))
	}

	data, err := snap.JSON()
	if err != nil {
		t.Fatal(err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{
		"version", "mode", "note", "seed", "tick", "player", "platforms", "particles",
		"collectibles", "enemies", "gusts", "combo", "jetpack", "shield", "score", "best",
	} {
		if _, ok := fields[key]; !ok {
			t.Errorf("snapshot JSON lacks %q", key)
		}
	}
}

func TestSnapshotRounding(t *testing.T) {
	s := stage(t, quietConfig())
	s.player.X = 12.345
	s.player.VY = -593.26
	s.platforms[0].X = 185.05
	s.score.Score = 41.9

	snap := s.Snapshot()
	if snap.Player.X != 12.3 || snap.Player.VY != -593.3 {
		t.Errorf("player = %+v", snap.Player)
	}
	if snap.Platforms[0].X != 185.1 {
		t.Errorf("platform x = %v, expected 185.1", snap.Platforms[0].X)
	}
	if snap.Score != 41 {
		t.Errorf("score = %d, expected 41", snap.Score)
	}
}

func TestSnapshotSpringAvailability(t *testing.T) {
	s := stage(t, quietConfig())
	s.platforms[0].HasSpring = true
	if !s.Snapshot().Platforms[0].Spring {
		t.Fatal("unused spring not reported")
	}
	dropOnto(s)
	if ev := s.Step(tick, Input{}); ev.SpringJumps != 1 {
		t.Fatalf("spring jumps = %d", ev.SpringJumps)
	}
	if s.Snapshot().Platforms[0].Spring {
		t.Error("used spring still reported")
	}
}
