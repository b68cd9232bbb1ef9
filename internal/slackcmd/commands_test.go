package slackcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantArgs []string
	}{
		{
			name:     "Should default to help on empty input",
			text:     "   ",
			wantType: CmdHelp,
		},
		{
			name:     "Should parse add with mention",
			text:     "add <@U123456789>",
			wantType: CmdAdd,
			wantArgs: []string{"<@U123456789>"},
		},
		{
			name:     "Should accept rm alias",
			text:     "rm <@U123456789>",
			wantType: CmdRemove,
			wantArgs: []string{"<@U123456789>"},
		},
		{
			name:     "Should parse skip with multi-word label",
			text:     "skip saturday GENERAL CLEANING",
			wantType: CmdSkip,
			wantArgs: []string{"saturday", "GENERAL", "CLEANING"},
		},
		{
			name:     "Should parse config",
			text:     "config time 17:30",
			wantType: CmdConfig,
			wantArgs: []string{"time", "17:30"},
		},
		{
			name:     "Should fall back to help on unknown command",
			text:     "frobnicate now",
			wantType: CmdHelp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			if tt.wantArgs != nil {
				assert.Equal(t, tt.wantArgs, cmd.Args)
			}
		})
	}
}
