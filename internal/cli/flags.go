package cli

import (
	"flag"
	"time"
)

// Flags holds all command line flags
type Flags struct {
	Version     *bool
	Json        *bool
	Verbose     *bool
	Quiet       *bool
	StopOnError *bool
	Debounce    *time.Duration
}

// GlobalFlags holds the parsed command line flags
var GlobalFlags *Flags

// InitFlags initializes all command line flags on fs
func InitFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		Version:     fs.Bool("version", false, "Show version information"),
		Json:        fs.Bool("json", false, "Output results in JSON format"),
		Verbose:     fs.Bool("verbose", false, "Enable debug logging"),
		Quiet:       fs.Bool("quiet", false, "Suppress the operation log on stderr"),
		StopOnError: fs.Bool("stop-on-error", false, "Stop batch evaluation at the first failed calculation"),
		Debounce:    fs.Duration("debounce", 200*time.Millisecond, "Delay before re-evaluating a changed batch file"),
	}
}

// ParseFlags parses command line flags with custom usage
func ParseFlags(usage func()) {
	if GlobalFlags == nil {
		GlobalFlags = InitFlags(flag.CommandLine)
	}
	flag.Usage = usage
	flag.Parse()
}
