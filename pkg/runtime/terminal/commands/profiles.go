package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/de-tools/time-atlas/pkg/services/config"
)

type ProfilesCmd struct {
	registry config.Registry
	output   io.Writer
}

// NewProfilesCmd lists the upstream API profiles found in the
// credentials file.
func NewProfilesCmd(registry config.Registry, output io.Writer) *cobra.Command {
	pc := &ProfilesCmd{registry: registry, output: output}
	return &cobra.Command{
		Use:   "profiles",
		Short: "List configured upstream API profiles",
		RunE:  pc.run,
	}
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	profiles, err := pc.registry.GetProfiles(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	for _, profile := range profiles {
		fmt.Fprintln(pc.output, profile)
	}
	return nil
}
