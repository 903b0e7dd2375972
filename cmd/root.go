package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/app"
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/receiver"
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/render"
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/sink"
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/state"
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/vfd"
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/web"
)

var (
	// Input source flags (mutually exclusive).
	udpMode    bool
	serialPort string
	demoMode   bool

	udpPort  int
	baudRate int

	// Presentation flags.
	sinkName string
	fbDevice string
	scale    int
	fps      int

	// Monitoring and logging flags.
	listenAddr string
	logFile    string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "vfd-satellite",
	Short: "VFD satellite display for the dashboard computer",
	Long: fmt.Sprintf(`Satellite display unit (device id %d) rendering vehicle telemetry
on a %dx%d vacuum-fluorescent panel.

Telemetry arrives as newline-delimited JSON over UDP (development) or
the RS485 bus (production). Without an input flag the built-in demo
driving cycle is generated.

Input modes:
  UDP:    --udp [--port 5110]
  Serial: --serial /dev/ttyUSB0 [--baudrate 115200]
  Demo:   --demo

Sinks:
  window  desktop window (development, default)
  fbdev   Linux framebuffer device (production)
  null    discard frames (headless, use with --listen)`,
		state.DeviceID, vfd.Width, vfd.Height),
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().BoolVar(&udpMode, "udp", false, "receive telemetry over UDP")
	rootCmd.Flags().IntVar(&udpPort, "port", 5110, "UDP port to listen on")
	rootCmd.Flags().StringVar(&serialPort, "serial", "", "receive telemetry from this serial device")
	rootCmd.Flags().IntVar(&baudRate, "baudrate", 115200, "serial baud rate")
	rootCmd.Flags().BoolVar(&demoMode, "demo", false, "generate a simulated driving cycle")

	rootCmd.Flags().StringVar(&sinkName, "sink", "window", "presentation sink: window, fbdev or null")
	rootCmd.Flags().StringVar(&fbDevice, "fb-device", "/dev/fb0", "framebuffer device for the fbdev sink")
	rootCmd.Flags().IntVar(&scale, "scale", 2, "window pixel scale factor")
	rootCmd.Flags().IntVar(&fps, "fps", 60, "target frame rate")

	rootCmd.Flags().StringVar(&listenAddr, "listen", "", "HTTP monitor listen address (empty disables)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")

	rootCmd.MarkFlagsMutuallyExclusive("udp", "serial", "demo")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := buildLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	recv, err := buildReceiver(logger)
	if err != nil {
		return err
	}

	snk, err := buildSink(logger)
	if err != nil {
		return err
	}

	st := state.New()
	rend := render.New(st, recv, snk, logger)

	var monitor *web.Server
	if listenAddr != "" {
		monitor = web.NewServer(listenAddr, rend, logger)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof("app", "starting, sink=%s fps=%d", sinkName, fps)
	return app.New(recv, rend, snk, monitor, fps, logger).Run(ctx)
}

func buildLogger() (app.Logger, func(), error) {
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return app.NewFileLogger(f), func() { _ = f.Close() }, nil
	}
	if verbose {
		return app.NewFileLogger(os.Stderr), func() {}, nil
	}
	return app.NoopLogger{}, func() {}, nil
}

func buildReceiver(logger app.Logger) (receiver.Receiver, error) {
	switch {
	case serialPort != "":
		return receiver.NewSerial(serialPort, baudRate, logger), nil
	case udpMode:
		return receiver.NewUDP(udpPort, logger), nil
	case demoMode:
		return receiver.NewDemo(logger), nil
	default:
		logger.Infof("app", "no input specified, using demo mode")
		return receiver.NewDemo(logger), nil
	}
}

func buildSink(logger app.Logger) (render.Sink, error) {
	switch sinkName {
	case "window":
		return sink.NewWindow(scale, logger), nil
	case "fbdev":
		return sink.NewFBDev(fbDevice, logger), nil
	case "null":
		return sink.Null{}, nil
	default:
		return nil, fmt.Errorf("unknown sink %q (want window, fbdev or null)", sinkName)
	}
}
