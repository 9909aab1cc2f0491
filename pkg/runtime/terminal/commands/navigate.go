package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/de-tools/time-atlas/pkg/adapters"
	"github.com/de-tools/time-atlas/pkg/models/api"
	"github.com/de-tools/time-atlas/pkg/models/domain"
	"github.com/de-tools/time-atlas/pkg/services/daterange"
)

type NavigateCmd struct {
	from   string
	to     string
	nav    *daterange.Navigator
	output io.Writer
}

// NewNavigateCmd classifies a range and prints the previous/next
// periods of the same granularity.
func NewNavigateCmd(nav *daterange.Navigator, output io.Writer) *cobra.Command {
	nc := &NavigateCmd{nav: nav, output: output}
	cmd := &cobra.Command{
		Use:   "navigate",
		Short: "Classify a date range and compute its neighbouring periods",
		RunE:  nc.run,
	}

	cmd.Flags().StringVar(&nc.from, "from", "", "Range start (yyyy-MM-dd)")
	cmd.Flags().StringVar(&nc.to, "to", "", "Range end (yyyy-MM-dd)")

	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (nc *NavigateCmd) run(_ *cobra.Command, _ []string) error {
	rng, err := domain.ParseDateRange(nc.from, nc.to)
	if err != nil {
		return err
	}

	interval := daterange.Classify(rng)
	result := api.Navigation{
		Range:    adapters.MapDateRangeDomainToApi(rng),
		Interval: interval.String(),
		Previous: adapters.MapDateRangeDomainToApi(nc.nav.Shift(rng, interval, false)),
		Next:     adapters.MapDateRangeDomainToApi(nc.nav.Shift(rng, interval, true)),
	}

	enc := json.NewEncoder(nc.output)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode navigation: %w", err)
	}
	return nil
}
