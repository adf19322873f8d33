package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/engine"
	"github.com/tartampluch/go-clock/internal/raster"
	"github.com/tartampluch/go-clock/internal/server"
	"github.com/tartampluch/go-clock/internal/ui"
)

// main delegates to runMain so deferred calls run before os.Exit.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle and maps failures to exit codes.
func runMain() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := &cli{}
	defer c.close()

	if err := c.rootCmd().ExecuteContext(ctx); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}
	return config.ExitCodeSuccess
}

// cli holds the parsed flags and the state shared by every command.
type cli struct {
	debug       bool
	showVersion bool
	configPath  string

	logCloser io.Closer
	settings  config.File
	style     engine.Style
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               config.BinaryName,
		Short:             config.DescRoot,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.prepare,
		RunE:              c.runWindow,
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&c.debug, config.FlagDebug, false, config.FlagDescDebug)
	pf.StringVar(&c.configPath, config.FlagConfig, "", config.FlagDescConfig)
	root.Flags().BoolVar(&c.showVersion, config.FlagVersion, false, config.FlagDescVersion)

	root.AddCommand(c.snapshotCmd(), c.serveCmd())
	return root
}

// prepare sets up logging and loads the style file before any command runs.
func (c *cli) prepare(cmd *cobra.Command, _ []string) error {
	if c.showVersion {
		return nil
	}

	c.logCloser = setupLogging(c.debug)
	logStartupInfo()

	path := c.configPath
	if path == "" {
		path = defaultConfigPath()
	}

	settings, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	style, err := engine.StyleFromFile(settings)
	if err != nil {
		return err
	}

	c.settings = settings
	c.style = style
	return nil
}

func (c *cli) close() {
	if c.logCloser != nil {
		_ = c.logCloser.Close() // Best effort close
	}
}

// runWindow opens the desktop clock and blocks until its window closes.
func (c *cli) runWindow(cmd *cobra.Command, _ []string) error {
	if c.showVersion {
		printVersion(cmd.OutOrStdout())
		return nil
	}

	ctx := cmd.Context()
	a := app.NewWithID(config.AppID)
	gui := ui.NewClockApp(a, ctx, c.settings, c.style, clockwork.NewRealClock())

	go func() {
		<-ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
		a.Quit()
	}()

	gui.Run()
	gui.Shutdown()

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return nil
}

func (c *cli) snapshotCmd() *cobra.Command {
	var (
		output  string
		size    int
		digital bool
	)

	cmd := &cobra.Command{
		Use:   config.CmdSnapshot,
		Short: config.DescSnapshot,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if size == 0 {
				size = c.settings.SnapshotSize
			}
			mode := engine.ModeFor(c.settings.Analog() && !digital)
			return writeSnapshot(output, size, c.settings, c.style, mode, clockwork.NewRealClock())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&output, config.FlagOutput, config.FlagShortOutput, config.DefaultOutput, config.FlagDescOutput)
	f.IntVar(&size, config.FlagSize, 0, config.FlagDescSize)
	f.BoolVar(&digital, config.FlagDigital, false, config.FlagDescDigital)
	return cmd
}

// writeSnapshot renders one frame at the current time and stores it as PNG.
func writeSnapshot(path string, size int, settings config.File, style engine.Style, mode engine.DisplayMode, clk clockwork.Clock) error {
	if size <= 0 {
		return fmt.Errorf("%s: %d", config.ErrSizeInvalid, size)
	}
	bg, err := config.ParseColor(settings.BackgroundColor)
	if err != nil {
		return err
	}

	ts := engine.NewTimeSampler(clk).Sample()
	canvas, err := raster.Snapshot(size, bg, style, mode, ts)
	if err != nil {
		return err
	}
	defer func() { _ = canvas.Close() }()
	data, err := canvas.PNG()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, config.FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}

	slog.Info(config.MsgSnapshotSaved,
		config.LogKeyComponent, config.CompMain,
		config.LogKeyPath, path,
		config.LogKeyMode, mode.String(),
		config.LogKeySizeBytes, len(data),
	)
	return nil
}

func (c *cli) serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   config.CmdServe,
		Short: config.DescServe,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if port == "" {
				port = c.settings.ServerPort
			}
			bg, err := config.ParseColor(c.settings.BackgroundColor)
			if err != nil {
				return err
			}

			srv := server.NewFaceServer(port, c.settings.SnapshotSize, bg, c.style,
				engine.ModeFor(c.settings.Analog()), clockwork.NewRealClock())
			if err := srv.Start(cmd.Context()); err != nil {
				return err
			}

			slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
			return nil
		},
	}

	cmd.Flags().StringVar(&port, config.FlagPort, "", config.FlagDescPort)
	return cmd
}

// printVersion outputs the build information.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, config.MsgVersionOutput,
		config.AppName,
		config.Version,
		config.Commit,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyCommit, config.Commit),
			slog.String(config.LogKeyDate, config.Date),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger to write JSON to stdout
// and to a log file in the user's cache directory.
func setupLogging(debugMode bool) io.Closer {
	writers := []io.Writer{os.Stdout}
	var logFile *os.File

	if logPath, err := appDir(os.UserCacheDir, config.ErrCacheDir); err == nil {
		logPath = filepath.Join(logPath, config.LogFileName)
		// O_TRUNC resets logs on restart.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts)))

	if logFile == nil {
		return nil
	}
	return logFile
}

// defaultConfigPath points at the style file in the user's config directory.
// An empty result makes LoadFile fall back to the built-in defaults.
func defaultConfigPath() string {
	dir, err := appDir(os.UserConfigDir, config.ErrConfigDir)
	if err != nil {
		slog.Debug(err.Error(), config.LogKeyComponent, config.CompMain)
		return ""
	}
	return filepath.Join(dir, config.ConfigFileName)
}

// appDir returns the per-application subdirectory of base, creating it if needed.
func appDir(base func() (string, error), errMsg string) (string, error) {
	root, err := base()
	if err != nil {
		return "", fmt.Errorf("%s: %w", errMsg, err)
	}

	dir := filepath.Join(root, config.AppID)
	if err := os.MkdirAll(dir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}
	return dir, nil
}
