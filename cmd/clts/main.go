/*
Command clts is an interactive shell for transcription systems.

Every line entered is either a command or a sequence of graphemes. Graphemes
are parsed by the current transcription system and listed together with
their canonical form and feature name.

	clts > tːʰ kˡ ao
	clts > name aspirated voiceless velar plosive consonant
	clts > translate:asjp ts a
	clts > classes:sca tʰ a
	clts > help

Command line flags select the transcription system (-system), the trace
level (-trace) and an external inventory folder (-data).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/clts/core"
	"github.com/npillmayer/clts/core/locate/inventories"
	"github.com/npillmayer/clts/sound"
	"github.com/npillmayer/clts/soundclass"
	"github.com/npillmayer/clts/transdata"
	"github.com/npillmayer/clts/ts"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'clts.cli'.
func tracer() tracing.Trace {
	return tracing.Select("clts.cli")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	sysname := flag.String("system", ts.DefaultSystem, "Transcription system to use")
	data := flag.String("data", "", "Folder with inventory data (default: bundled data)")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.clts.ts":        *tlevel,
		"trace.clts.inventory": *tlevel,
		"trace.clts.cli":       *tlevel,
		inventories.DataKey:    *data,
		ts.SystemKey:           *sysname,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to the transcription system CLI") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up REPL
	repl, err := readline.New("clts > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, conf: conf}
	//
	// load transcription system to use
	if err := intp.loadSystem(*sysname); err != nil { // system name provided by flag
		core.UserError(err)
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                             // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	conf     testconfig.Conf
	registry *ts.Registry
	system   *ts.System
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
			pterm.Error.Println(err.Error())
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Command is a parsed input line.
type Command struct {
	code   int
	option string // e.g., target system in "translate:asjp"
	arg    string
}

const (
	QUIT int = iota
	HELP
	PARSE
	NAME
	TRANSLATE
	CLASSES
	DATA
	COMPLETE
	INFO
	SYSTEM
	DUMP
)

var commands = map[string]int{
	"quit":      QUIT,
	"help":      HELP,
	"name":      NAME,
	"translate": TRANSLATE,
	"classes":   CLASSES,
	"data":      DATA,
	"complete":  COMPLETE,
	"info":      INFO,
	"system":    SYSTEM,
	"dump":      DUMP,
}

// parseCommand splits a line into command word, option and argument. Lines
// not starting with a command word are graphemes to parse.
func parseCommand(line string) (*Command, error) {
	word, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	name, option, _ := strings.Cut(word, ":")
	code, ok := commands[strings.ToLower(name)]
	if !ok {
		return &Command{code: PARSE, arg: strings.TrimSpace(line)}, nil
	}
	cmd := &Command{code: code, option: option, arg: strings.TrimSpace(arg)}
	switch code {
	case NAME, INFO:
		if cmd.arg == "" {
			return nil, fmt.Errorf("%s needs an argument", name)
		}
	case TRANSLATE, CLASSES, DATA:
		if cmd.option == "" {
			return nil, fmt.Errorf("%s needs an option, e.g. %s:<id>", name, name)
		}
	}
	tracer().Debugf("parse command = %v", cmd)
	return cmd, nil
}

func (intp *Intp) execute(cmd *Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help()
	case PARSE:
		intp.showSymbols(intp.system.Symbols(cmd.arg))
	case NAME:
		sym, err := intp.system.FromName(cmd.arg)
		if err != nil {
			if errors.Is(err, ts.ErrUnknownFeature) {
				return false, fmt.Errorf("%s", core.UserMessage(err))
			}
			return false, err
		}
		intp.showSymbols([]sound.Symbol{sym})
	case TRANSLATE:
		target, err := intp.registry.System(cmd.option)
		if err != nil {
			return false, err
		}
		pterm.Printfln("%s → %s: %s", intp.system.ID(), target.ID(),
			intp.system.Translate(cmd.arg, target))
	case CLASSES:
		sc, err := soundclass.Open(intp.conf, cmd.option, intp.system)
		if err != nil {
			return false, err
		}
		pterm.Printfln("%s: %s", sc.Model(), strings.Join(sc.Classes(cmd.arg), " "))
	case DATA:
		td, err := transdata.Open(intp.conf, cmd.option, intp.system)
		if err != nil {
			return false, err
		}
		for _, sym := range intp.system.Symbols(cmd.arg) {
			g, err := td.Resolve(sym)
			if err != nil {
				g = ts.Untranslatable
			}
			pterm.Printfln("%s: %s", intp.system.Render(sym), g)
		}
	case COMPLETE:
		pterm.Printfln("%v", intp.system.Complete(cmd.arg))
	case INFO:
		for _, g := range ts.Split(cmd.arg) {
			pterm.Printfln("%s  %s  %s", g, sound.Codepoints(g), sound.UnicodeNames(g))
		}
	case SYSTEM:
		if cmd.arg == "" {
			pterm.Printfln("current system is %s, available: %v", intp.system.ID(),
				intp.registry.Systems())
			break
		}
		return false, intp.loadSystem(cmd.arg)
	case DUMP:
		intp.system.LogSymbolList()
		intp.registry.LogSystemList()
	}
	return false, nil
}

func (intp *Intp) loadSystem(id string) (err error) {
	if intp.registry == nil {
		intp.registry = ts.NewRegistry(inventories.Locate(intp.conf))
	}
	sys, err := intp.registry.System(id)
	if err != nil {
		return err
	}
	intp.system = sys
	pterm.Printfln("using transcription system %s with %d symbols", sys.ID(), sys.Len())
	return nil
}

func (intp *Intp) showSymbols(syms []sound.Symbol) {
	table := pterm.TableData{
		{"Input", "Canonical", "Category", "Name", "Flags"},
	}
	for _, sym := range syms {
		table = append(table, []string{
			sym.Origin(),
			intp.system.Render(sym),
			sym.Category().String(),
			sym.Name(),
			flags(sym),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(table).Render(); err != nil {
		tracer().Errorf(err.Error())
	}
}

func flags(sym sound.Symbol) string {
	var ff []string
	if sound.IsGenerated(sym) {
		ff = append(ff, "generated")
	}
	if sound.IsAlias(sym) {
		ff = append(ff, "alias")
	}
	if a, ok := sound.Attributes(sym); ok && a.Normalized {
		ff = append(ff, "normalized")
	}
	if s := sound.StressOf(sym); s != "" {
		ff = append(ff, s)
	}
	return strings.Join(ff, ",")
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	<graphemes>               parse graphemes, separated by blanks
	name <features> <type>    find sound for a feature name
	translate:<id> <text>     translate text to transcription system <id>
	classes:<model> <text>    sound classes (sca, dolgo, cv, asjp, prosody, color)
	data:<id> <text>          graphemes in transcription data <id>, e.g. phoible
	complete <prefix>         list graphemes starting with prefix
	info <graphemes>          Unicode code points and character names
	system [<id>]             show or switch the transcription system
	dump                      write the symbol registry to the trace
	quit                      leave the CLI
	`)
}
