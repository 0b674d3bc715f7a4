package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-scroller/internal/audio"
	"github.com/vovakirdan/tui-scroller/internal/core"
	"github.com/vovakirdan/tui-scroller/internal/games/scroller"
	"github.com/vovakirdan/tui-scroller/internal/platform/classic"
	"github.com/vovakirdan/tui-scroller/internal/platform/tui"
)

var (
	flagClassic bool
	flagSound   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of ASCII Scroller.

Controls:
  Space/W/Up - Jump
  A/D        - Move left/right
  S/Down     - Hold position
  Enter      - Continue
  P          - Pause
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Extra lives, slower start
  normal - The stock game
  hard   - Fewer lives, faster start
  fixed  - Levels still count up, but the world never speeds up

Examples:
  scroller play
  scroller play --difficulty easy
  scroller play --classic
  scroller play --sound --log-file ./scroller.log
  scroller play --config ./my-scroller.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagClassic, "classic", false, "Use the classic poll-driven terminal frontend")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(io.Discard, "scroller")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := gameCfg.Runtime(width, height, flagSeed)

	store, err := openStore(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening score storage: %v\n", err)
		os.Exit(1)
	}

	session := scroller.NewSession(gameCfg, rt, store, scroller.WithLogger(logger.WithPrefix("session")))

	var sink scroller.EventSink
	if flagSound {
		if sm := startSound(logger); sm != nil {
			defer sm.Cleanup()
			sink = sm
		}
	}

	runErr := runFrontend(session, rt, sink, logger)

	// Close store before potential exit
	if err := store.Close(); err != nil {
		logger.Warn("cannot close score storage", "err", err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// startSound opens the audio device. It returns nil when sound is unavailable.
func startSound(logger *log.Logger) *audio.SoundManager {
	sm, err := audio.NewSoundManager(audio.DefaultConfig())
	if err != nil {
		logger.Warn("sound disabled", "err", err)
		return nil
	}
	if err := sm.Initialize(); err != nil {
		logger.Warn("sound disabled", "err", err)
		return nil
	}
	return sm
}

func runFrontend(session *scroller.Session, rt core.RuntimeConfig, sink scroller.EventSink, logger *log.Logger) error {
	if flagClassic {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		opts := []classic.DriverOption{classic.WithLogger(logger.WithPrefix("classic"))}
		if sink != nil {
			opts = append(opts, classic.WithEventSink(sink))
		}
		return classic.Play(ctx, session, rt.TickInterval(), opts...)
	}

	opts := []tui.ModelOption{
		tui.WithLogger(logger.WithPrefix("tui")),
		tui.WithScreenshotDir(tui.DefaultScreenshotDir()),
	}
	if sink != nil {
		opts = append(opts, tui.WithEventSink(sink))
	}
	return tui.Run(session, rt, opts...)
}
