package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/de-tools/time-atlas/pkg/models/domain"
	"github.com/de-tools/time-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/time-atlas/pkg/services/report"
)

type ReportCmd struct {
	from     string
	to       string
	asJSON   bool
	ctrl     report.Controller
	reporter *export.Reporter
}

func NewReportCmd(ctrl report.Controller, reporter *export.Reporter) *cobra.Command {
	rc := &ReportCmd{ctrl: ctrl, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate spent and planned hours for a date range",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.from, "from", "", "Range start (yyyy-MM-dd)")
	cmd.Flags().StringVar(&rc.to, "to", "", "Range end (yyyy-MM-dd)")
	cmd.Flags().BoolVar(&rc.asJSON, "json", false, "Emit the report as JSON")

	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	rng, err := domain.ParseDateRange(rc.from, rc.to)
	if err != nil {
		return err
	}

	result, err := rc.ctrl.GetReport(ctx, rng)
	if err != nil {
		return fmt.Errorf("failed to build report for %s: %w", rng, err)
	}

	if rc.asJSON {
		return rc.reporter.HandleJSON(result)
	}
	return rc.reporter.Handle(result)
}
