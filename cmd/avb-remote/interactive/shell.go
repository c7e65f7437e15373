// Package interactive provides the interactive command-line interface
// for the avb-remote console.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/avbridge/avbridge-go/pkg/device"
	"github.com/avbridge/avbridge-go/pkg/remote"
	"github.com/avbridge/avbridge-go/pkg/roster"
	"github.com/avbridge/avbridge-go/pkg/trace"
	"github.com/chzyer/readline"
)

// Shell handles interactive mode for avb-remote.
type Shell struct {
	sessions []*session
	current  *session
	rl       *readline.Instance
}

// session pairs a roster name with the remote driving that device.
type session struct {
	name   string
	remote *remote.AdvancedRemote
}

// New creates a new interactive shell with one remote per roster entry.
// The first entry is selected initially.
func New(entries []roster.Entry) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "remote> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	sh := &Shell{rl: rl}
	for _, entry := range entries {
		sh.sessions = append(sh.sessions, &session{
			name:   entry.Name,
			remote: remote.NewAdvanced(entry.Device),
		})
	}
	if len(sh.sessions) > 0 {
		sh.current = sh.sessions[0]
	}

	return sh, nil
}

// SetTraceLogger attaches l to every remote managed by the shell.
func (s *Shell) SetTraceLogger(l trace.Logger) {
	for _, sess := range s.sessions {
		sess.remote.SetTraceLogger(l)
	}
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Stderr returns a writer that properly coordinates with the readline input.
func (s *Shell) Stderr() io.Writer {
	return s.rl.Stderr()
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "devices", "d":
			s.cmdDevices()

		case "use", "u":
			s.cmdUse(args)

		case "power", "p":
			s.cmdPower()

		case "up":
			s.cmdUp()

		case "down":
			s.cmdDown()

		case "mute", "m":
			s.cmdMute()

		case "set":
			s.cmdSet(args)

		case "status":
			s.cmdStatus()

		case "quit", "exit", "q":
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			cancel()
			return

		default:
			fmt.Fprintf(s.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.rl.Stdout(), `
Remote Console Commands:
  Devices:
    devices            - List devices and their state
    use <name>         - Select the device to control
    status             - Show the selected device in detail

  Control:
    power              - Toggle power on the selected device
    up                 - Volume up (+10)
    down               - Volume down (-10)
    mute               - Mute (volume to 0)
    set <volume>       - Set the device volume directly (bypasses the remote)

  General:
    help               - Show this help
    quit               - Exit the console`)
}

// cmdDevices lists the managed devices and their state.
func (s *Shell) cmdDevices() {
	if len(s.sessions) == 0 {
		fmt.Fprintln(s.rl.Stdout(), "No devices configured")
		return
	}

	fmt.Fprintf(s.rl.Stdout(), "\nDevices (%d):\n", len(s.sessions))
	fmt.Fprintln(s.rl.Stdout(), "-------------------------------------------")
	for _, sess := range s.sessions {
		marker := " "
		if sess == s.current {
			marker = "*"
		}
		dev := sess.remote.Device()
		fmt.Fprintf(s.rl.Stdout(), "%s %-16s %-6s power=%-3s volume=%d\n",
			marker, sess.name, kindOf(dev), powerLabel(dev.IsEnabled()), dev.Volume())
	}
	fmt.Fprintln(s.rl.Stdout())
}

// cmdUse selects the device to control.
func (s *Shell) cmdUse(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: use <name>")
		fmt.Fprintln(s.rl.Stdout(), "  Use 'devices' to list device names")
		return
	}

	name := args[0]

	// Try exact match first
	sess := s.findSession(name)
	if sess == nil {
		// Try partial match
		for _, candidate := range s.sessions {
			if strings.Contains(candidate.name, name) {
				sess = candidate
				break
			}
		}
	}

	if sess == nil {
		fmt.Fprintf(s.rl.Stdout(), "Device not found: %s\n", name)
		return
	}

	s.current = sess
	fmt.Fprintf(s.rl.Stdout(), "Using %s\n", sess.name)
}

// cmdPower toggles power on the selected device.
func (s *Shell) cmdPower() {
	sess := s.requireCurrent()
	if sess == nil {
		return
	}

	sess.remote.TogglePower()
	fmt.Fprintf(s.rl.Stdout(), "%s power %s\n", sess.name, powerLabel(sess.remote.Device().IsEnabled()))
}

// cmdUp raises the volume by one step.
func (s *Shell) cmdUp() {
	sess := s.requireCurrent()
	if sess == nil {
		return
	}

	sess.remote.VolumeUp()
	fmt.Fprintf(s.rl.Stdout(), "%s volume %d\n", sess.name, sess.remote.Device().Volume())
}

// cmdDown lowers the volume by one step.
func (s *Shell) cmdDown() {
	sess := s.requireCurrent()
	if sess == nil {
		return
	}

	sess.remote.VolumeDown()
	fmt.Fprintf(s.rl.Stdout(), "%s volume %d\n", sess.name, sess.remote.Device().Volume())
}

// cmdMute mutes the selected device.
func (s *Shell) cmdMute() {
	sess := s.requireCurrent()
	if sess == nil {
		return
	}

	sess.remote.Mute()
	fmt.Fprintf(s.rl.Stdout(), "%s muted\n", sess.name)
}

// cmdSet writes the volume on the device directly, bypassing the remote.
func (s *Shell) cmdSet(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: set <volume>")
		return
	}

	sess := s.requireCurrent()
	if sess == nil {
		return
	}

	level, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Invalid volume: %v\n", err)
		return
	}

	sess.remote.Device().SetVolume(level)
	fmt.Fprintf(s.rl.Stdout(), "%s volume %d\n", sess.name, sess.remote.Device().Volume())
}

// cmdStatus shows the selected device in detail.
func (s *Shell) cmdStatus() {
	sess := s.requireCurrent()
	if sess == nil {
		return
	}

	dev := sess.remote.Device()
	fmt.Fprintln(s.rl.Stdout(), "\nDevice Status")
	fmt.Fprintln(s.rl.Stdout(), "-------------------------------------------")
	fmt.Fprintf(s.rl.Stdout(), "  Name:       %s\n", sess.name)
	fmt.Fprintf(s.rl.Stdout(), "  Kind:       %s\n", kindOf(dev))
	fmt.Fprintf(s.rl.Stdout(), "  Power:      %s\n", powerLabel(dev.IsEnabled()))
	fmt.Fprintf(s.rl.Stdout(), "  Volume:     %d\n", dev.Volume())
	fmt.Fprintf(s.rl.Stdout(), "  Session ID: %s\n", sess.remote.SessionID())
	fmt.Fprintln(s.rl.Stdout())
}

// findSession returns the session with the exact name, or nil.
func (s *Shell) findSession(name string) *session {
	for _, sess := range s.sessions {
		if sess.name == name {
			return sess
		}
	}
	return nil
}

// requireCurrent returns the selected session, printing a hint when none is.
func (s *Shell) requireCurrent() *session {
	if s.current == nil {
		fmt.Fprintln(s.rl.Stdout(), "No device selected (use 'devices' to list, 'use <name>' to select)")
		return nil
	}
	return s.current
}

// kindOf returns the display label for a device.
func kindOf(dev device.Device) string {
	if k, ok := dev.(interface{ Kind() string }); ok {
		return k.Kind()
	}
	return "device"
}

func powerLabel(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
