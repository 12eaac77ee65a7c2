package cli

import (
	"encoding/json"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/tshape/pkg/sample"
	"github.com/matzehuels/tshape/pkg/skills"
)

func TestSummaryCommand(t *testing.T) {
	out, err := runCLI(t, "summary", "--breakdown", "--raw")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	for _, want := range []string{"Domain", "Technical", "Personal", "Raw data", sample.SkillsName} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output should contain %q", want)
		}
	}
}

func TestSummaryCommandJSON(t *testing.T) {
	out, err := runCLI(t, "summary", "--json")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	var got struct {
		Summary []skills.CategorySummary `json:"summary"`
		Skills  []skills.Record          `json:"skills"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(got.Summary) != 3 {
		t.Errorf("got %d categories, want 3", len(got.Summary))
	}
	if got.Skills != nil {
		t.Error("raw records are only included with --raw")
	}
}

func TestConfigShow(t *testing.T) {
	out, err := runCLI(t, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, want := range []string{"[layout]", "[render]", "[server]", `addr = ":8080"`} {
		if !strings.Contains(out, want) {
			t.Errorf("config output should contain %q:\n%s", want, out)
		}
	}
}

func TestInvalidConfigFails(t *testing.T) {
	cfg := writeConfig(t, "[render]\nstyle = \"crayon\"\n")
	if _, err := runCLI(t, "--config", cfg, "config", "validate"); err == nil {
		t.Error("an invalid style should fail config loading")
	}
}

func TestTargetText(t *testing.T) {
	tests := []struct {
		r    skills.Record
		want string
	}{
		{skills.Record{Level: 3}, "-"},
		{skills.Record{Level: 3, Target: skills.Float(3)}, "3"},
		{skills.Record{Level: 3, Target: skills.Float(5)}, "5 (+2)"},
		{skills.Record{Level: 3, Target: skills.Float(2.5)}, "2.5 (-0.5)"},
	}
	for _, tt := range tests {
		if got := targetText(tt.r); got != tt.want {
			t.Errorf("targetText(%+v) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

// =============================================================================
// Browser
// =============================================================================

func browseCatalog() []skills.Record {
	return []skills.Record{
		{Category: "Domain", Skill: "Forecasting", Level: 4, Target: skills.Float(6)},
		{Category: "Domain", Skill: "Pricing", Level: 2},
		{Category: "Technical", Skill: "Go", Level: 5, Target: skills.Float(5)},
		{Category: "Personal", Skill: "Mentoring", Level: 3, Target: skills.Float(4)},
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m browseModel, keys ...string) browseModel {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(browseModel)
	}
	return m
}

func TestBrowseTabs(t *testing.T) {
	m := newBrowseModel(browseCatalog(), skills.DefaultCategoryOrder, "test", false)

	if got := m.groups[m.active].Category; got != "Domain" {
		t.Fatalf("first tab = %q, want Domain", got)
	}
	m = update(m, "right")
	if got := m.groups[m.active].Category; got != "Technical" {
		t.Errorf("after right: %q, want Technical", got)
	}
	m = update(m, "left", "left")
	if got := m.groups[m.active].Category; got != "Personal" {
		t.Errorf("left wraps around: %q, want Personal", got)
	}
}

func TestBrowseTargetToggle(t *testing.T) {
	m := newBrowseModel(browseCatalog(), skills.DefaultCategoryOrder, "test", false)

	if n := len(m.visible()); n != 2 {
		t.Fatalf("all Domain skills: got %d, want 2", n)
	}
	m = update(m, "t")
	got := m.visible()
	if len(got) != 1 || got[0].Skill != "Forecasting" {
		t.Errorf("growth view = %v, want only Forecasting", got)
	}

	// A target equal to the level is not growth.
	m = update(m, "right")
	if n := len(m.visible()); n != 0 {
		t.Errorf("Technical growth view: got %d, want 0", n)
	}
	if !strings.Contains(m.View(), "No skills marked for growth") {
		t.Error("empty growth view should say so")
	}
}

func TestBrowseView(t *testing.T) {
	m := newBrowseModel(browseCatalog(), skills.DefaultCategoryOrder, "catalog.csv", false)
	view := m.View()

	for _, want := range []string{"catalog.csv", "Domain (2)", "Technical (1)", "Forecasting", "Pricing", "6 (+2)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Mentoring") {
		t.Error("only the active category is listed")
	}
}

func TestBrowseCursorStaysInRange(t *testing.T) {
	m := newBrowseModel(browseCatalog(), skills.DefaultCategoryOrder, "test", false)
	m = update(m, "down", "down", "down")
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1 (last Domain skill)", m.cursor)
	}
	m = update(m, "right")
	if m.cursor != 0 {
		t.Errorf("switching tabs resets the cursor, got %d", m.cursor)
	}
}

func TestBrowseQuit(t *testing.T) {
	m := newBrowseModel(browseCatalog(), skills.DefaultCategoryOrder, "test", false)
	if _, cmd := m.Update(key("q")); cmd == nil {
		t.Error("q should quit")
	}
}

func TestBrowseEmptyCatalog(t *testing.T) {
	m := newBrowseModel(nil, skills.DefaultCategoryOrder, "test", false)
	m = update(m, "right", "t", "down")
	if !strings.Contains(m.View(), "empty") {
		t.Error("empty catalog should be reported")
	}
}
