package main

import (
	"context"
	"os"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/spf13/cobra"

	"mandelbrot/config"
	"mandelbrot/mandelbrot"
	"mandelbrot/misc"
)

const imagePath = "image.png"

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mandelbrot [-s size] [-i iterations] [-r red] [-g green] [-b blue] [--rounded]",
		Short: "Render the Mandelbrot set to " + imagePath,
		// Arguments are scanned by config.Parse so that malformed values fall
		// back to defaults instead of aborting.
		DisableFlagParsing: true,
		RunE:               runCmd,
	}

	return cmd
}

func runCmd(cmd *cobra.Command, args []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	logger := bslogger.NewLogger("Main", bslogger.Normal, nil)

	c := config.Parse(args, cmd.OutOrStdout())
	m := mandelbrot.NewMandelbrot(c.Settings())
	img := m.Render()

	misc.CheckError(misc.SavePNG(imagePath, img), logger, misc.Fatal)
	logger.Infof("Saved image to %s", imagePath)

	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
