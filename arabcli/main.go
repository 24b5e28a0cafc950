/*
Command arabcli simulates text displays with Arabic text handlers.

Displays are created and edited interactively, ticks of the host's update
loop and typing animations are triggered by commands. After each command
the state of all displays is printed.

	arabcli [-trace Debug|Info|Error] [-mode continuous|once|manual] [-delay seconds]
	        [-step milliseconds] [-logical] [-native]
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chzyer/readline"
	"github.com/npillmayer/arabtext/attach"
	"github.com/npillmayer/arabtext/config"
	"github.com/npillmayer/arabtext/detector"
	"github.com/npillmayer/arabtext/presentation"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'arabtext.detector'
func tracer() tracing.Trace {
	return tracing.Select("arabtext.detector")
}

var traceKeys = []string{
	"arabtext.detector",
	"arabtext.shaping",
	"arabtext.attach",
	"arabtext.config",
	"arabtext.ranges",
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = "Error"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	mode := flag.String("mode", "", "Processing mode [continuous|once|manual]")
	delay := flag.Float64("delay", -1, "Startup delay in seconds")
	step := flag.Int("step", 16, "Milliseconds per tick")
	logical := flag.Bool("logical", false, "Output presentation forms in logical order")
	native := flag.Bool("native", false, "Use Arabic-Indic digits")
	flag.Parse()
	pterm.Info.Println("Welcome to the Arabic text handler CLI")
	//
	hconf, err := handlerConfig(*mode, *delay, *native)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}
	level, err := traceLevel(*tlevel)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(5)
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up REPL
	repl, err := readline.New("ar > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	shaper := &presentation.Shaper{KeepLogicalOrder: *logical}
	factory := attach.NewFactory(shaper, time.Duration(*step)*time.Millisecond, hconf)
	intp := &Intp{
		repl:     repl,
		scene:    &attach.MemoryScene{},
		registry: attach.NewRegistry(factory, attach.DefaultMaxAge),
	}
	pterm.Info.Println("Quit with <ctrl>D, type 'help' for a list of commands")
	intp.REPL() // go into interactive mode
}

func handlerConfig(mode string, delay float64, native bool) (detector.Config, error) {
	conf := config.FromEnvironment()
	if mode != "" {
		m, err := detector.ParseMode(mode)
		if err != nil {
			return detector.Config{}, err
		}
		conf.Mode = m
	}
	if delay >= 0 {
		conf.StartupDelaySeconds = delay
	}
	if native {
		conf.UseNativeDigits = true
	}
	return conf.Handler()
}

func traceLevel(name string) (tracing.TraceLevel, error) {
	switch name {
	case "Debug":
		return tracing.LevelDebug, nil
	case "Info":
		return tracing.LevelInfo, nil
	case "Error":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("invalid trace level: %s", name)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
