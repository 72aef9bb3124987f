package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/greyseam/carve"
	"github.com/greyseam/carve/utils"
	"golang.org/x/term"
)

const helpBanner = `
┌─┐┌─┐┬─┐┬  ┬┌─┐
│  ├─┤├┬┘└┐┌┘├┤
└─┘┴ ┴┴└─ └┘ └─┘

Content aware greyscale raster carving.
    Version: %s

Usage: carve [flags] <raster file> <vertical seams> <horizontal seams>

`

// usageExitCode is returned on malformed invocations, as opposed to
// runtime failures which exit with 1.
const usageExitCode = 2

// Version indicates the current build version.
var Version string

var (
	// Flags
	debug = flag.Bool("debug", false, "Print the energy and cumulative energy maps")
	quiet = flag.Bool("quiet", false, "Suppress the input map display and the progress indicator")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 3 {
		fmt.Fprintln(os.Stderr, utils.DecorateText("error: invalid command-line arguments", utils.ErrorMessage))
		flag.Usage()
		os.Exit(usageExitCode)
	}

	src := flag.Arg(0)
	vseams := parseSeamCount(flag.Arg(1), "vertical")
	hseams := parseSeamCount(flag.Arg(2), "horizontal")

	img, _, err := carve.Load(src)
	if err != nil {
		log.Fatalf("%s %s",
			utils.DecorateText("Failed to load the source raster:", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	if !*quiet {
		fmt.Printf("Image map for %q:\n", src)
		img.Fprint(os.Stdout)
		fmt.Println()
	}
	if *debug {
		carve.DebugMaps(os.Stdout, img)
		fmt.Println()
	}

	proc := &carve.Processor{
		VerticalSeams:   vseams,
		HorizontalSeams: hseams,
		Debug:           *debug,
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ CARVE", utils.StatusMessage),
		utils.DecorateText("⇢ removing the lowest energy seams...", utils.DefaultMessage))
	isTerm := term.IsTerminal(int(os.Stderr.Fd()))
	spinner := utils.NewSpinner(spinnerText, time.Millisecond*80, isTerm && !*quiet)

	now := time.Now()
	spinner.Start()

	res, err := carve.Carve(proc, img)
	spinner.Stop()
	if err != nil {
		log.Fatalf("%s %s",
			utils.DecorateText("Failed to carve the raster:", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	fmt.Println("Seam-carved image:")
	res.Fprint(os.Stdout)

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// parseSeamCount parses a positional seam count argument. A value
// which is not a non-negative integer is a usage error.
func parseSeamCount(arg, axis string) int {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		fmt.Fprintln(os.Stderr, utils.DecorateText(
			fmt.Sprintf("error: the %s seam count must be a non-negative integer, got %q", axis, arg),
			utils.ErrorMessage,
		))
		flag.Usage()
		os.Exit(usageExitCode)
	}
	return n
}
