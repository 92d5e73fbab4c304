// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdChat
	CmdAsk
	CmdTopics
	CmdConfig
	CmdVersion
	CmdHelp
)

// String returns the command name as typed on the command line.
func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdChat:
		return "chat"
	case CmdAsk:
		return "ask"
	case CmdTopics:
		return "topics"
	case CmdConfig:
		return "config"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	ConfigPath    string
	KnowledgePath string
	DelayMs       int
	DelaySet      bool
	Quiet         bool
	Verbose       bool
	NoColor       bool

	// Command-specific
	Query      string
	Subcommand string
	Force      bool

	// Raw args (remaining after flag parsing)
	Raw []string

	// Errors collects flag problems found while parsing.
	Errors []string
}

const usageText = `smartchat - a small keyword chat bot for the terminal

Usage:
  smartchat                    Start the chat window (default)
  smartchat tui                Start the chat window
  smartchat chat               Line-by-line chat in the current terminal
  smartchat ask "question"     Ask a single question and print the reply
  smartchat topics             List the keywords the bot knows
  smartchat config [show|init|path|knowledge]
                               Show, create or locate the config file,
                               or print the topics as a knowledge file
  smartchat version            Show version information
  smartchat help               Show this help

Global Flags:
  --config PATH       Use this config file instead of ~/.smartchat/config.toml
  --knowledge PATH    Load topics from a TOML knowledge file
  --delay MS          Typing delay in milliseconds (0 replies at once)
  -q, --quiet         Print only bot replies
  -v, --verbose       Debug logging
  --no-color          Disable colours
  --force             Let 'config init' overwrite an existing file

In a conversation:
  search <topic>      Simulated web lookup
  time                Current time
  help                What the bot knows
  bye                 Say goodbye (ends 'smartchat chat')

Environment:
  SMARTCHAT_HOME, SMARTCHAT_TYPING_DELAY_MS, SMARTCHAT_KNOWLEDGE_FILE,
  SMARTCHAT_LOG_LEVEL, SMARTCHAT_LOG_FILE, SMARTCHAT_THEME, NO_COLOR

Examples:
  smartchat ask "what is oop"
  smartchat ask search golang generics
  smartchat --delay 0 chat
  smartchat --knowledge ./topics.toml topics

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "smartchat version %s\n", Version)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Build date: %s\n", BuildDate)
}

// Parse parses os.Args and returns the command and args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses argv (without the program name). A first word that is not
// a command is treated as a question: "smartchat hello there" asks
// "hello there".
func ParseArgs(argv []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	rest := remaining[1:]
	parsedArgs.Raw = rest

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs

	case "chat", "repl":
		return CmdChat, parsedArgs

	case "ask":
		parsedArgs.Query = strings.Join(rest, " ")
		return CmdAsk, parsedArgs

	case "topics", "keywords":
		return CmdTopics, parsedArgs

	case "config":
		parseConfigArgs(&parsedArgs, rest)
		return CmdConfig, parsedArgs

	case "version", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		parsedArgs.Raw = remaining
		parsedArgs.Query = strings.Join(remaining, " ")
		return CmdAsk, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining
// args. Everything after "--" is passed through untouched.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	parsedArgs := Args{}

	value := func(i *int, name string) (string, bool) {
		if *i+1 < len(args) {
			*i++
			return args[*i], true
		}
		parsedArgs.Errors = append(parsedArgs.Errors, name+" requires a value")
		return "", false
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			remaining = append(remaining, args[i+1:]...)
			break
		}

		name, inline, hasInline := strings.Cut(arg, "=")
		if !strings.HasPrefix(arg, "--") {
			name, hasInline = arg, false
		}

		switch name {
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "-v", "--verbose":
			parsedArgs.Verbose = true
		case "--no-color":
			parsedArgs.NoColor = true
		case "--force":
			parsedArgs.Force = true
		case "--config":
			if hasInline {
				parsedArgs.ConfigPath = inline
			} else if v, ok := value(&i, name); ok {
				parsedArgs.ConfigPath = v
			}
		case "--knowledge":
			if hasInline {
				parsedArgs.KnowledgePath = inline
			} else if v, ok := value(&i, name); ok {
				parsedArgs.KnowledgePath = v
			}
		case "--delay":
			v := inline
			ok := hasInline
			if !hasInline {
				v, ok = value(&i, name)
			}
			if !ok {
				continue
			}
			ms, err := strconv.Atoi(v)
			if err != nil || ms < 0 {
				parsedArgs.Errors = append(parsedArgs.Errors, fmt.Sprintf("--delay: %q is not a non-negative number of milliseconds", v))
				continue
			}
			parsedArgs.DelayMs = ms
			parsedArgs.DelaySet = true
		default:
			remaining = append(remaining, arg)
		}
	}

	return remaining, parsedArgs
}

// parseConfigArgs parses config command specific arguments.
func parseConfigArgs(args *Args, remaining []string) {
	args.Subcommand = "show"
	if len(remaining) > 0 {
		args.Subcommand = strings.ToLower(remaining[0])
	}
}

// =============================================================================
// COMMAND HANDLERS
// =============================================================================

// exit reports err on stderr and exits with its code.
func exit(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error:")+" "+err.Error())
	os.Exit(GetExitCode(err))
}

// HandleAsk handles the "ask" command.
func HandleAsk(args Args) {
	exit(withEnv(args, SinkForLineMode, func(env *Env) error {
		return RunAsk(os.Stdout, env, args.Query)
	}))
}

// HandleChat handles the "chat" command.
func HandleChat(args Args) {
	exit(withEnv(args, SinkForLineMode, func(env *Env) error {
		if err := RequiresTTY("chat"); err != nil {
			return RunChat(os.Stdout, env, NewLineReader(os.Stdin))
		}
		in := NewChatCLI()
		defer in.Close()
		return RunChat(os.Stdout, env, in)
	}))
}

// HandleTopics handles the "topics" command.
func HandleTopics(args Args) {
	exit(withEnv(args, SinkForLineMode, func(env *Env) error {
		return RunTopics(os.Stdout, env, GetTerminalWidth())
	}))
}

// HandleConfig handles the "config" command.
func HandleConfig(args Args) {
	exit(RunConfig(os.Stdout, args))
}

// HandleVersion handles the "version" command.
func HandleVersion() {
	PrintVersion(os.Stdout)
}

// HandleHelp handles the "help" command.
func HandleHelp() {
	PrintUsage(os.Stdout)
}
