// ABOUTME: Tests for the install-skill command.
// ABOUTME: Validates skill installation, directory creation, and file content.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestSkillInstallWritesFile runs installSkill against a temp home.
func TestSkillInstallWritesFile(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	skillSkipConfirm = true
	defer func() { skillSkipConfirm = false }()

	if err := installSkill(); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	skillPath := filepath.Join(tmpHome, ".claude", "skills", "fitdash", "SKILL.md")
	data, err := os.ReadFile(skillPath)
	if err != nil {
		t.Fatalf("Skill file not created: %v", err)
	}

	embedded, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill: %v", err)
	}
	if string(data) != string(embedded) {
		t.Error("Installed skill does not match embedded content")
	}
}

// TestSkillInstallOverwritesExisting verifies stale content is replaced.
func TestSkillInstallOverwritesExisting(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	skillDir := filepath.Join(tmpHome, ".claude", "skills", "fitdash")
	skillPath := filepath.Join(skillDir, "SKILL.md")
	if err := os.MkdirAll(skillDir, 0755); err != nil {
		t.Fatalf("Failed to create skill directory: %v", err)
	}
	if err := os.WriteFile(skillPath, []byte("# Old Skill\nThis is stale content."), 0644); err != nil {
		t.Fatalf("Failed to write old skill file: %v", err)
	}

	skillSkipConfirm = true
	defer func() { skillSkipConfirm = false }()

	if err := installSkill(); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	data, err := os.ReadFile(skillPath)
	if err != nil {
		t.Fatalf("Failed to read skill file: %v", err)
	}
	if strings.Contains(string(data), "stale content") {
		t.Error("Old content should have been replaced")
	}
	if !strings.Contains(string(data), "name: fitdash") {
		t.Error("Expected new content to contain 'name: fitdash'")
	}
}

// TestSkillContentMarkers checks the embedded skill names every tool.
func TestSkillContentMarkers(t *testing.T) {
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill/SKILL.md: %v", err)
	}
	contentStr := string(content)

	if !strings.HasPrefix(contentStr, "---") {
		t.Error("Expected SKILL.md to start with YAML frontmatter (---)")
	}

	expectedMarkers := []string{
		"name: fitdash",
		"description:",
		"## When to use fitdash",
		"## Exercise kinds",
		"mcp__fitdash__add_exercise",
		"mcp__fitdash__list_exercises",
		"mcp__fitdash__remove_exercise",
		"mcp__fitdash__log_food",
		"mcp__fitdash__list_food_log",
		"mcp__fitdash__search_food",
		"mcp__fitdash__set_sleep",
		"mcp__fitdash__set_body_weight",
		"mcp__fitdash__get_trends",
		"mcp__fitdash__get_progress",
		"mcp__fitdash__get_level",
		"mcp__fitdash__calorie_target",
		"mcp__fitdash__reset_day",
	}
	for _, marker := range expectedMarkers {
		if !strings.Contains(contentStr, marker) {
			t.Errorf("Expected SKILL.md to contain %q", marker)
		}
	}
}

func TestInstallSkillCmdExists(t *testing.T) {
	found := false
	for _, c := range rootCmd.Commands() {
		if c.Use == "install-skill" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected install-skill command to be registered")
	}
	if installSkillCmd.Flags().Lookup("yes") == nil {
		t.Error("Expected --yes flag on install-skill")
	}
}
