package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/npillmayer/arabtext/attach"
	"github.com/npillmayer/arabtext/detector"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	scene    *attach.MemoryScene
	registry *attach.Registry
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Command is a parsed input line: an operator, optionally followed by the
// name of a display and a text argument.
type Command struct {
	op   string
	name string
	arg  string
}

func parseCommand(line string) (Command, error) {
	fields := strings.SplitN(line, " ", 3)
	cmd := Command{op: strings.ToLower(fields[0])}
	if len(fields) > 1 {
		cmd.name = fields[1]
	}
	if len(fields) > 2 {
		cmd.arg = fields[2]
	}
	if _, ok := commandFn[cmd.op]; !ok {
		return cmd, fmt.Errorf("unknown command: %s", cmd.op)
	}
	return cmd, nil
}

var commandFn map[string]func(*Intp, Command) (bool, error)

func init() {
	commandFn = map[string]func(*Intp, Command) (bool, error){
		"add":    addOp,
		"remove": removeOp,
		"set":    setOp,
		"type":   typeOp,
		"tick":   tickOp,
		"force":  handlerOp((*detector.Handler).ForceProcess),
		"reset":  handlerOp((*detector.Handler).Reset),
		"pause":  handlerOp((*detector.Handler).PauseProcessing),
		"resume": handlerOp((*detector.Handler).ResumeProcessing),
		"mode":   modeOp,
		"show":   showOp,
		"help":   helpOp,
		"quit":   quitOp,
	}
}

func (intp *Intp) execute(cmd Command) (bool, error) {
	tracer().Debugf("cmd = %+v", cmd)
	quit, err := commandFn[cmd.op](intp, cmd)
	if err != nil || quit {
		return quit, err
	}
	if cmd.op != "show" && cmd.op != "help" {
		intp.print()
	}
	return false, nil
}

var errNoName = errors.New("command needs the name of a display")

func (intp *Intp) display(name string) (*attach.TextDisplay, error) {
	if name == "" {
		return nil, errNoName
	}
	td, ok := intp.scene.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("no display named %q", name)
	}
	return td, nil
}

func (intp *Intp) handler(name string) (*detector.Handler, error) {
	td, err := intp.display(name)
	if err != nil {
		return nil, err
	}
	h, ok := intp.registry.Handler(td.ID())
	if !ok {
		return nil, fmt.Errorf("display %q has no handler", name)
	}
	return h, nil
}

func addOp(intp *Intp, cmd Command) (bool, error) {
	if cmd.name == "" {
		return false, errNoName
	}
	if _, ok := intp.scene.Lookup(cmd.name); ok {
		return false, fmt.Errorf("display %q exists", cmd.name)
	}
	intp.scene.Add(cmd.name, cmd.arg)
	intp.registry.HierarchyChanged(intp.scene)
	return false, nil
}

func removeOp(intp *Intp, cmd Command) (bool, error) {
	if !intp.scene.Remove(cmd.name) {
		return false, fmt.Errorf("no display named %q", cmd.name)
	}
	intp.registry.HierarchyChanged(intp.scene)
	return false, nil
}

func setOp(intp *Intp, cmd Command) (bool, error) {
	td, err := intp.display(cmd.name)
	if err != nil {
		return false, err
	}
	td.SetText(cmd.arg)
	return false, nil
}

// typeOp reveals text one character per tick.
func typeOp(intp *Intp, cmd Command) (bool, error) {
	h, err := intp.handler(cmd.name)
	if err != nil {
		return false, err
	}
	h.StartTypingEffect()
	for i := range cmd.arg {
		_, size := utf8.DecodeRuneInString(cmd.arg[i:])
		h.SetTextWithoutProcessing(cmd.arg[:i+size])
		intp.registry.TickAll()
	}
	h.EndTypingEffect()
	return false, nil
}

func tickOp(intp *Intp, cmd Command) (bool, error) {
	n := 1
	if cmd.name != "" {
		var err error
		if n, err = strconv.Atoi(cmd.name); err != nil || n < 1 {
			return false, fmt.Errorf("not a tick count: %s", cmd.name)
		}
	}
	for i := 0; i < n; i++ {
		intp.registry.TickAll()
	}
	return false, nil
}

func handlerOp(f func(*detector.Handler)) func(*Intp, Command) (bool, error) {
	return func(intp *Intp, cmd Command) (bool, error) {
		h, err := intp.handler(cmd.name)
		if err != nil {
			return false, err
		}
		f(h)
		return false, nil
	}
}

func modeOp(intp *Intp, cmd Command) (bool, error) {
	h, err := intp.handler(cmd.name)
	if err != nil {
		return false, err
	}
	m, err := detector.ParseMode(cmd.arg)
	if err != nil {
		return false, err
	}
	h.SetProcessingMode(m)
	return false, nil
}

func showOp(intp *Intp, cmd Command) (bool, error) {
	intp.print()
	return false, nil
}

func quitOp(intp *Intp, cmd Command) (bool, error) {
	return true, nil
}

// print renders a table of all displays and the state of their handlers.
func (intp *Intp) print() {
	displays := intp.scene.TextDisplays()
	if len(displays) == 0 {
		pterm.Println("no displays")
		return
	}
	data := [][]string{
		{"ID", "Name", "Display", "Raw", "Mode", "Passes", "Outcome", "State", "Error"},
	}
	for _, td := range displays {
		row := []string{strconv.Itoa(td.ID()), td.Name, td.Text()}
		h, ok := intp.registry.Handler(td.ID())
		if !ok {
			data = append(data, append(row, "", "", "", "", "no handler", ""))
			continue
		}
		s := h.Snapshot()
		outcome := ""
		if s.Passes > 0 {
			outcome = s.LastOutcome.String()
		}
		data = append(data, append(row,
			s.RawText,
			s.Mode.String(),
			strconv.Itoa(s.Passes),
			outcome,
			stateFlags(s),
			s.LastError,
		))
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func stateFlags(s detector.State) string {
	var flags []string
	if !s.StartupComplete {
		flags = append(flags, "starting")
	}
	if s.TypingInProgress {
		flags = append(flags, fmt.Sprintf("typing(%q)", s.PendingTypedText))
	}
	if s.Paused {
		flags = append(flags, "paused")
	}
	return strings.Join(flags, " ")
}
