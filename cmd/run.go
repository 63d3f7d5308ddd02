package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/app"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/catalog"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/game"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/speech"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load word catalog: %w", err)
	}

	speaker := buildSpeaker(cmd, st)

	session, err := game.NewSession(ctx, cat, st, speaker)
	if err != nil {
		return fmt.Errorf("restore progress: %w", err)
	}

	return app.Run(session)
}

// buildSpeaker assembles the pronunciation pipeline. A missing TTS key is
// not fatal: the game falls back to bundled clips and cached audio.
func buildSpeaker(cmd *cobra.Command, st *store.Store) *speech.Speaker {
	ctx := cmd.Context()

	cacheDir, err := speech.DefaultCacheDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Speech cache unavailable:", err)
		cacheDir = ""
	}

	var synth speech.Synthesizer
	cfg, ok := resolveSpeechConfig()
	if !ok {
		fmt.Fprintln(os.Stderr, "No TTS provider configured; using bundled clips only.")
	} else if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "TTS provider misconfigured:", err)
	} else {
		synth, err = speech.NewSynthesizer(ctx, cfg, st)
		if err != nil {
			fmt.Fprintln(os.Stderr, "TTS provider unavailable:", err)
			synth = nil
		}
	}

	return speech.NewSpeaker(resolveClipDir(), cacheDir, synth)
}

// resolveSpeechConfig prefers an explicit SPELLBEE_TTS_PROVIDER setting,
// then falls back to probing the standard API key env vars.
func resolveSpeechConfig() (speech.Config, bool) {
	if os.Getenv("SPELLBEE_TTS_PROVIDER") != "" {
		return speech.ConfigFromEnv(), true
	}
	return speech.DiscoverConfig()
}

// resolveClipDir locates bundled pronunciation clips: SPELLBEE_CLIPS env
// var first, then a clips/ directory next to the binary.
func resolveClipDir() string {
	if p := os.Getenv("SPELLBEE_CLIPS"); p != "" {
		return p
	}
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	p := filepath.Join(filepath.Dir(exe), "clips")
	if info, err := os.Stat(p); err == nil && info.IsDir() {
		return p
	}
	return ""
}
