package main

import "testing"

func TestRootCommandName(t *testing.T) {
	if rootCmd.Use != "when" {
		t.Fatalf("expected root command name when, got %q", rootCmd.Use)
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"add", "list", "show", "edit", "reschedule", "done", "undone", "toggle", "delete", "search", "clash", "within", "parse", "help"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil {
			t.Fatalf("find %s: %v", name, err)
		}
		if cmd.Name() != name {
			t.Fatalf("expected command %s, got %s", name, cmd.Name())
		}
	}
}

func TestCommandAliases(t *testing.T) {
	aliases := map[string]string{
		"ls":     "list",
		"rm":     "delete",
		"move":   "reschedule",
		"reopen": "undone",
	}
	for alias, name := range aliases {
		cmd, _, err := rootCmd.Find([]string{alias})
		if err != nil {
			t.Fatalf("find %s: %v", alias, err)
		}
		if cmd.Name() != name {
			t.Fatalf("expected %s to resolve to %s, got %s", alias, name, cmd.Name())
		}
	}
}
