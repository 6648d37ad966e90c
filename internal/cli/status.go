package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/runcat/internal/config"
	"github.com/watchfire-io/runcat/internal/engine"
	"github.com/watchfire-io/runcat/internal/logger"
	"github.com/watchfire-io/runcat/internal/sampler"
)

var statusInterval time.Duration

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print one load sample and the resulting frame interval",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().DurationVar(&statusInterval, "interval", time.Second, "Time between warm-up and the sample")
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s := sampler.New(sampler.DefaultConfig(), logger.New("[sampler]"))
	s.WarmUp(ctx)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(statusInterval):
	}
	sample := s.Sample(ctx)

	store, err := config.DefaultSettingsStore()
	if err != nil {
		return err
	}
	prefs, err := store.Load()
	if err != nil {
		fmt.Println(styleWarning.Render("Warning: ") + err.Error())
	}

	printField("CPU", fmt.Sprintf("%.1f%%", sample.CPUPercent))
	printField("RAM", fmt.Sprintf("%.1f%%", sample.RAMPercent))
	printField("Storage", fmt.Sprintf("%.1f%% used", sample.DiskUsedPercent))
	printField("Frame", fmt.Sprintf("%s at %s", engine.FrameInterval(sample.CPUPercent, prefs.FrameRateCap), prefs.FrameRateCap))

	if running, inst, err := config.IsInstanceRunning(); err == nil && running {
		fmt.Println(styleHint.Render(fmt.Sprintf("runcat is running (PID %d)", inst.PID)))
	}
	return nil
}
