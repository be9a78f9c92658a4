// Package handler provides flag parsing utilities
package handler

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/roster/internal/cli"
)

// FlagParser provides common flag extraction patterns. Every error it
// returns is a *cli.UsageError.
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseID extracts a required positive id from a flag
func (p *FlagParser) ParseID(flagName string) (int, error) {
	if !p.cmd.Flags().Changed(flagName) {
		return 0, cli.Usagef("--%s is required", flagName)
	}
	id, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, cli.Usagef("failed to parse %s flag: %v", flagName, err)
	}
	if id <= 0 {
		return 0, cli.Usagef("--%s must be greater than 0", flagName)
	}
	return id, nil
}

// ParseOptionalID extracts an id that may be omitted. Zero means absent.
func (p *FlagParser) ParseOptionalID(flagName string) (int, error) {
	if !p.cmd.Flags().Changed(flagName) {
		return 0, nil
	}
	return p.ParseID(flagName)
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", cli.Usagef("failed to parse %s flag: %v", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", cli.Usagef("--%s is required", flagName)
	}
	return value, nil
}

// ParseBool extracts a boolean flag
func (p *FlagParser) ParseBool(flagName string) (bool, error) {
	value, err := p.cmd.Flags().GetBool(flagName)
	if err != nil {
		return false, cli.Usagef("failed to parse %s flag: %v", flagName, err)
	}
	return value, nil
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.ParseBool("json")
	if err != nil {
		return false, false, err
	}
	quietMode, err = p.ParseBool("quiet")
	if err != nil {
		return false, false, err
	}
	return jsonOutput, quietMode, nil
}
