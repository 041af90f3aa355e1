package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/esimov/seamcarve"
	"github.com/esimov/seamcarve/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┌─┐┌─┐┌─┐┌┬┐┌─┐┌─┐┬─┐┬  ┬┌─┐
└─┐├┤ ├─┤│││├─┤│  ├┬┘└┐┌┘├┤
└─┘└─┘┴ ┴┴ ┴┴ ┴└─┘┴└─ └┘ └─┘

Content aware pixel map resizer.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	source       = flag.String("in", "", "Source pixel map, directory or - for stdin (prompted when empty)")
	destination  = flag.String("out", "", "Destination file or directory, - for stdout (derived from the source when empty)")
	width        = flag.Int("width", 0, "Source width (read from the file header when 0)")
	height       = flag.Int("height", 0, "Source height (read from the file header when 0)")
	targetWidth  = flag.Int("tw", 0, "Target width (unchanged when 0)")
	targetHeight = flag.Int("th", 0, "Target height (unchanged when 0)")
	export       = flag.String("export", "", "Also save the carved image to this file (.ppm, .png, .jpg, .bmp)")
	debug        = flag.String("debug", "", "Save the source image with the removed seams marked to this file")
	seamColor    = flag.String("color", seamcarve.DefaultSeamColor, "Seam color used by the debug output")
	workers      = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	proc := &seamcarve.Processor{
		Width:     *width,
		Height:    *height,
		NewWidth:  *targetWidth,
		NewHeight: *targetHeight,
		SeamColor: *seamColor,
	}
	op := &seamcarve.Ops{
		Src:     *source,
		Dst:     *destination,
		Export:  *export,
		Debug:   *debug,
		Workers: *workers,
	}

	if op.Src == "" {
		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		in, err := prompt(os.Stdin, os.Stdout, interactive)
		if err != nil {
			fatal(err)
		}
		op.Src = in.filename
		proc.Width, proc.Height = in.width, in.height
		proc.NewWidth, proc.NewHeight = in.targetWidth, in.targetHeight
	} else if proc.Width > 0 && proc.Height > 0 {
		nw, nh := proc.NewWidth, proc.NewHeight
		if nw == 0 {
			nw = proc.Width
		}
		if nh == 0 {
			nh = proc.Height
		}
		if err := seamcarve.ValidateDimensions(proc.Width, proc.Height, nw, nh); err != nil {
			fatal(err)
		}
	}

	if op.Dst != seamcarve.PipeName {
		spinnerText := fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ SEAMCARVE", utils.StatusMessage),
			utils.DecorateText("is carving the image...", utils.DefaultMessage))
		proc.Spinner = utils.NewSpinner(spinnerText, time.Millisecond*200, true)
	}

	if err := proc.Execute(op); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	log.Fatalf("%s%s",
		utils.DecorateText(fmt.Sprintf("Error: %v", err), utils.ErrorMessage),
		utils.DefaultColor,
	)
}
