package cli

import (
	"errors"
	"fmt"
	"strings"
)

type Command string

const (
	CommandToggle  Command = "toggle"
	CommandSet     Command = "set"
	CommandNext    Command = "next"
	CommandDevices Command = "devices"
	CommandStatus  Command = "status"
	CommandDoctor  Command = "doctor"
	CommandVersion Command = "version"
	CommandHelp    Command = "help"
)

var validCommands = map[Command]struct{}{
	CommandToggle:  {},
	CommandSet:     {},
	CommandNext:    {},
	CommandDevices: {},
	CommandStatus:  {},
	CommandDoctor:  {},
	CommandVersion: {},
	CommandHelp:    {},
}

type Parsed struct {
	Command    Command
	Filter     string
	ConfigPath string
	NoNotify   bool
	ShowHelp   bool
}

// Parse maps argv to a command. No arguments means toggle.
func Parse(args []string) (Parsed, error) {
	parsed := Parsed{Command: CommandToggle}
	seenCommand := false

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch arg {
		case "-h", "--help":
			parsed.ShowHelp = true
			parsed.Command = CommandHelp
		case "--version":
			// Help wins over --version regardless of flag order.
			if !parsed.ShowHelp {
				parsed.Command = CommandVersion
			}
		case "--config":
			i++
			if i >= len(args) {
				return Parsed{}, errors.New("--config requires a path")
			}
			parsed.ConfigPath = args[i]
		case "--no-notify":
			parsed.NoNotify = true
		default:
			if strings.HasPrefix(arg, "-") {
				return Parsed{}, fmt.Errorf("unknown flag: %s", arg)
			}
			if seenCommand {
				return Parsed{}, fmt.Errorf("unexpected argument %q", arg)
			}

			cmd := Command(arg)
			if _, ok := validCommands[cmd]; !ok {
				return Parsed{}, fmt.Errorf("unknown command: %s", arg)
			}

			parsed.Command = cmd
			parsed.ShowHelp = cmd == CommandHelp
			seenCommand = true

			if cmd == CommandSet {
				i++
				if i >= len(args) || strings.HasPrefix(args[i], "-") {
					return Parsed{}, errors.New("set requires a device name filter")
				}
				parsed.Filter = args[i]
			}
		}
	}

	return parsed, nil
}

func HelpText(binaryName string) string {
	return fmt.Sprintf(`Usage:
  %[1]s [--config PATH] [--no-notify] [command]

Commands:
  toggle      Flip the default sink between the two configured devices (default)
  set NAME    Switch to the first sink whose name matches NAME
  next        Switch to the next sink in server order
  devices     List output sinks and active playback streams
  status      Print the current default sink
  doctor      Run configuration and environment checks
  version     Print version information
  help        Show this help

Flags:
  --config PATH   Config file path (default: $XDG_CONFIG_HOME/sinkswitch/config.conf)
  --no-notify     Skip the desktop notification
  -h, --help      Show help
  --version       Show version
`, binaryName)
}
