package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunMigrationsRejectsUnknownCommand(t *testing.T) {
	tests := []struct {
		name    string
		command string
	}{
		{name: "misspelled_command", command: "upp"},
		{name: "unsupported_command", command: "redo"},
		{name: "empty_command", command: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// The dispatch rejects unknown commands before touching the
			// database, so no connection is needed.
			err := runMigrations(nil, tc.command, slog.Default())
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "unknown migration command")
			assert.Contains(t, err.Error(), "want up, down, or status")
		})
	}
}
