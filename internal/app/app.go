package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rbright/sinkswitch/internal/audio"
	"github.com/rbright/sinkswitch/internal/cli"
	"github.com/rbright/sinkswitch/internal/config"
	"github.com/rbright/sinkswitch/internal/doctor"
	"github.com/rbright/sinkswitch/internal/logging"
	"github.com/rbright/sinkswitch/internal/notify"
	"github.com/rbright/sinkswitch/internal/toggle"
	"github.com/rbright/sinkswitch/internal/version"
)

// Notifier is the desktop-notification surface the runner depends on.
type Notifier interface {
	DeviceChanged(label, icon string) error
	NoMatch(filter string) error
}

// Runner executes one CLI invocation. Controller and Notifier are nil in
// production and injected by tests.
type Runner struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Controller audio.Controller
	Notifier   Notifier
}

func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	r := Runner{Stdout: stdout, Stderr: stderr}
	return r.Execute(ctx, args)
}

func (r Runner) Execute(ctx context.Context, args []string) int {
	parsed, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n\n", err)
		fmt.Fprint(r.Stderr, cli.HelpText("sinkswitch"))
		return 2
	}

	if parsed.ShowHelp {
		fmt.Fprint(r.Stdout, cli.HelpText("sinkswitch"))
		return 0
	}

	if parsed.Command == cli.CommandVersion {
		fmt.Fprintln(r.Stdout, version.String())
		return 0
	}

	logRuntime, err := logging.New()
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: setup logging: %v\n", err)
		return 1
	}
	defer func() { _ = logRuntime.Close() }()

	logger := r.Logger
	if logger == nil {
		logger = logRuntime.Logger
	}

	cfgLoaded, err := config.Load(parsed.ConfigPath)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("load config failed", "error", err.Error())
		return 1
	}
	for _, w := range cfgLoaded.Warnings {
		msg := w.Message
		if w.Line > 0 {
			msg = fmt.Sprintf("line %d: %s", w.Line, w.Message)
		}
		fmt.Fprintf(r.Stderr, "warning: %s\n", msg)
		logger.Warn("config warning", "line", w.Line, "message", w.Message)
	}

	logger.Info("command start",
		"command", parsed.Command,
		"config", cfgLoaded.Path,
		"log", logRuntime.Path,
	)

	switch parsed.Command {
	case cli.CommandDoctor:
		report := doctor.Run(ctx, cfgLoaded)
		fmt.Fprintln(r.Stdout, report.String())
		if report.OK() {
			return 0
		}
		return 1
	case cli.CommandDevices:
		return r.commandDevices(ctx)
	case cli.CommandStatus:
		return r.commandStatus(ctx)
	case cli.CommandToggle, cli.CommandSet, cli.CommandNext:
		return r.commandSwitch(ctx, parsed, cfgLoaded.Config, logger)
	default:
		fmt.Fprintf(r.Stderr, "error: unsupported command %q\n", parsed.Command)
		return 2
	}
}

// commandSwitch handles the three routing-change commands.
func (r Runner) commandSwitch(ctx context.Context, parsed cli.Parsed, cfg config.Config, logger *slog.Logger) int {
	ctl, closeCtl, err := r.controller()
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("audio subsystem unavailable", "error", err.Error())
		return 1
	}
	defer closeCtl()

	toggler := toggle.New(ctl, cfg, logger)

	var result toggle.Result
	switch parsed.Command {
	case cli.CommandSet:
		result, err = toggler.SetByFilter(ctx, parsed.Filter)
	case cli.CommandNext:
		result, err = toggler.Next(ctx)
	default:
		result, err = toggler.Toggle(ctx)
	}

	if err != nil {
		if parsed.Command == cli.CommandSet && toggle.IsNoMatch(err) && !parsed.NoNotify {
			// A failed name match still raises a notification, like the
			// routing change would have; its failure is equally cosmetic.
			if notifyErr := r.notifier(cfg).NoMatch(parsed.Filter); notifyErr != nil {
				logger.Warn("notification failed", "error", notifyErr.Error())
			}
		}
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("switch failed", "command", parsed.Command, "error", err.Error())
		return 1
	}

	logger.Info("default sink changed",
		"from", result.Previous.Name,
		"to", result.Target.Name,
		"label", result.Label,
		"moved_streams", result.MovedStreams,
	)
	fmt.Fprintf(r.Stdout, "default sink: %s\n", result.Label)

	if !parsed.NoNotify {
		// Routing is already applied; a notification failure must not
		// surface in the exit code.
		if notifyErr := r.notifier(cfg).DeviceChanged(result.Label, result.Icon); notifyErr != nil {
			logger.Warn("notification failed", "error", notifyErr.Error())
		}
	}

	return 0
}

func (r Runner) commandDevices(ctx context.Context) int {
	ctl, closeCtl, err := r.controller()
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}
	defer closeCtl()

	sinks, err := ctl.Sinks(ctx)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}
	if len(sinks) == 0 {
		fmt.Fprintln(r.Stdout, "no sinks found")
		return 1
	}

	for _, sink := range sinks {
		defaultMark := " "
		if sink.Default {
			defaultMark = "*"
		}
		availability := "yes"
		if !sink.Available {
			availability = "no"
		}
		fmt.Fprintf(
			r.Stdout,
			"%s sink=%d | name=%s | description=%q | state=%s | available=%s\n",
			defaultMark,
			sink.Index,
			sink.Name,
			sink.Description,
			sink.State,
			availability,
		)
	}

	streams, err := ctl.PlaybackStreams(ctx)
	if err != nil {
		fmt.Fprintf(r.Stderr, "warning: list playback streams: %v\n", err)
		return 0
	}
	for _, stream := range streams {
		fmt.Fprintf(r.Stdout, "  stream=%d | application=%q | sink=%d\n", stream.Index, stream.Application, stream.SinkIndex)
	}

	return 0
}

func (r Runner) commandStatus(ctx context.Context) int {
	ctl, closeCtl, err := r.controller()
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}
	defer closeCtl()

	sink, err := ctl.DefaultSink(ctx)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprintf(r.Stdout, "default sink: %s (%s)\n", sink.Description, sink.Name)
	return 0
}

// controller returns the injected controller or connects a live Pulse client.
func (r Runner) controller() (audio.Controller, func(), error) {
	if r.Controller != nil {
		return r.Controller, func() {}, nil
	}
	client, err := audio.Connect()
	if err != nil {
		return nil, nil, err
	}
	return client, client.Close, nil
}

// notifier returns the injected notifier or a desktop notifier from config.
func (r Runner) notifier(cfg config.Config) Notifier {
	if r.Notifier != nil {
		return r.Notifier
	}
	return notify.NewDesktop(cfg.Notify)
}
