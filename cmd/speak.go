package cmd

import (
	"fmt"

	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/speech"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/store"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/tiles"
	"github.com/spf13/cobra"
)

// speakCmd pronounces a word from the command line, which is handy for
// checking TTS credentials and the audio player without starting the game.
var speakCmd = &cobra.Command{
	Use:   "speak <word>",
	Short: "Pronounce a word using the configured TTS provider",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		word := tiles.Clean(args[0])
		if word == "" {
			return fmt.Errorf("%q contains no letters", args[0])
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		cfg, ok := resolveSpeechConfig()
		if !ok {
			return fmt.Errorf("no TTS provider configured; set SPELLBEE_TTS_PROVIDER or an API key env var")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		synth, err := speech.NewSynthesizer(cmd.Context(), cfg, st)
		if err != nil {
			return err
		}

		cacheDir, err := speech.DefaultCacheDir()
		if err != nil {
			return err
		}

		speaker := speech.NewSpeaker(resolveClipDir(), cacheDir, synth)
		if err := speaker.Speak(cmd.Context(), word, ""); err != nil {
			return fmt.Errorf("speak %q: %w", word, err)
		}
		fmt.Printf("Spoke %q via %s.\n", word, cfg.Provider)
		return nil
	},
}
