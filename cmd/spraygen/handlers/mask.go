package handlers

import (
	"fmt"
	"time"

	"github.com/concave-dev/spraygen/cmd/spraygen/config"
	"github.com/concave-dev/spraygen/cmd/spraygen/display"
	"github.com/concave-dev/spraygen/cmd/spraygen/utils"
	"github.com/concave-dev/spraygen/internal/logging"
	"github.com/concave-dev/spraygen/internal/mask"
	"github.com/spf13/cobra"
)

// HandleMask handles the mask command. With --count it prints the number of
// candidates on stdout and generates nothing.
func HandleMask(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	started := time.Now()

	pattern, err := parseMask(args[0], config.Mask.StrictMask)
	if err != nil {
		return err
	}

	count := pattern.Count()
	if config.Mask.Count {
		fmt.Fprintln(cmd.OutOrStdout(), count)
		logging.Info("Mask %s yields %s candidates of length %d", pattern, utils.FormatCount(count), pattern.Len())
		return nil
	}

	logging.Info("Expanding mask %s (%s candidates)", pattern, utils.FormatCount(count))

	sinkName, written, err := writeCandidates(config.Mask.Output, mask.Limit(pattern.Expand(), config.Mask.Limit))
	if err != nil {
		return err
	}

	logging.Success("Generated %d candidates into %s", written, sinkName)
	finish(cmd, started, display.Summary{
		Command:   "mask",
		Mask:      pattern.String(),
		Written:   written,
		Truncated: config.Mask.Limit > 0 && uint64(written) < count,
		Output:    sinkName,
	})
	return nil
}
