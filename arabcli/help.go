package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, cmd Command) (bool, error) {
	help(cmd.name)
	return false, nil
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	switch strings.ToLower(topic) {
	case "mode", "modes":
		pterm.Info.Println("Processing modes")
		pterm.Println(`
	continuous   check for changes at every tick, after the startup delay
	once         process when the display is created and when the mode is set
	manual       process on 'force' only
	`)
	case "type", "typing":
		pterm.Info.Println("Typing effect")
		pterm.Println(`
	'type <name> <text>' reveals <text> one character per tick, as a typing
	animation would. Shaping is deferred until the last character has been
	revealed and happens exactly once.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	add <name> [text]       create a display
	remove <name>           remove a display
	set <name> <text>       change the text of a display
	type <name> <text>      reveal text with a typing animation
	tick [n]                let n ticks pass (default 1)
	force <name>            process the raw text of a display
	reset <name>            reset the handler of a display
	mode <name> <mode>      set the processing mode (see 'help mode')
	pause <name>            pause change detection
	resume <name>           resume change detection
	show                    print all displays
	help [mode|type]        print help
	quit                    leave
	`)
	}
}
