package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return s
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	store := isolate(t)
	m := NewSessionModel(testConfig(5), Options{Store: store})

	if view := m.View(); !strings.Contains(view, "Sky Jumper Classic") {
		t.Fatalf("menu does not list the classic ruleset:\n%s", view)
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.game == nil {
		t.Fatalf("enter did not open a game (screen %d)", m.screen)
	}
	if id := m.game.game.ID(); id != "jumper_classic" {
		t.Errorf("opened %q, expected jumper_classic", id)
	}

	m = sendSession(t, m, runeKey('b'))
	if m.screen != screenMenu || m.game != nil {
		t.Errorf("b on the title screen did not return to the menu (screen %d)", m.screen)
	}
}

func TestSessionScoreboard(t *testing.T) {
	store := isolate(t)
	if _, err := store.SaveScore("jumper", 321); err != nil {
		t.Fatal(err)
	}
	m := NewSessionModel(testConfig(5), Options{Store: store})

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("tab did not open the scoreboard (screen %d)", m.screen)
	}
	if view := m.View(); !strings.Contains(view, "321") {
		t.Errorf("scoreboard does not show the saved score:\n%s", view)
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("esc did not return to the menu (screen %d)", m.screen)
	}
}

func TestSessionQuit(t *testing.T) {
	store := isolate(t)
	m := NewSessionModel(testConfig(5), Options{Store: store})

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil || !next.(SessionModel).quitting {
		t.Error("q did not quit the session")
	}
}

func TestMenuShowsBest(t *testing.T) {
	store := isolate(t)
	if err := store.Best("best_score").SaveBest(12345); err != nil {
		t.Fatal(err)
	}
	menu := NewMenuModel(store, testConfig(1))
	if view := menu.View(); !strings.Contains(view, "12,345") {
		t.Errorf("menu does not show the stored best:\n%s", view)
	}
}
