package speech

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNoPlayer indicates no usable audio player binary was found on PATH.
var ErrNoPlayer = errors.New("no audio player found (tried mpv, ffplay, afplay, aplay)")

// playerCandidates are probed in order. Args keep the players quiet and
// make them exit when the clip ends.
var playerCandidates = []struct {
	name string
	args []string
}{
	{"mpv", []string{"--no-video", "--really-quiet"}},
	{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
	{"afplay", nil},
	{"aplay", []string{"-q"}},
}

// Speaker pronounces catalog words. Lookup order: bundled clip, cached
// synthesis, fresh synthesis. A nil Synthesizer limits the Speaker to
// clips and cache.
type Speaker struct {
	clipDir  string
	cacheDir string
	synth    Synthesizer

	// Injection points for tests.
	lookPath func(string) (string, error)
	run      func(ctx context.Context, name string, args ...string) error
}

// NewSpeaker creates a Speaker. clipDir holds the bundled pronunciation
// clips; cacheDir receives synthesized audio so each word is only paid
// for once.
func NewSpeaker(clipDir, cacheDir string, synth Synthesizer) *Speaker {
	return &Speaker{
		clipDir:  clipDir,
		cacheDir: cacheDir,
		synth:    synth,
		lookPath: exec.LookPath,
		run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
	}
}

// DefaultCacheDir resolves the synthesis cache directory under the
// user's XDG cache home.
func DefaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(base, "spellbee", "speech"), nil
}

// Speak pronounces the word, preferring the bundled clip over synthesis.
func (s *Speaker) Speak(ctx context.Context, word, clip string) error {
	if s.clipDir != "" && clip != "" {
		p := filepath.Join(s.clipDir, clip)
		if fileExists(p) {
			return s.play(ctx, p)
		}
	}

	if p, ok := s.cached(word); ok {
		return s.play(ctx, p)
	}

	if s.synth == nil {
		return &ErrProviderUnavailable{Err: errors.New("no synthesizer configured")}
	}

	audio, err := s.synth.Synthesize(ctx, word)
	if err != nil {
		return err
	}

	p, err := s.cache(word, audio)
	if err != nil {
		return err
	}
	return s.play(ctx, p)
}

// cached returns the path of a previously synthesized clip, if any.
func (s *Speaker) cached(word string) (string, bool) {
	if s.cacheDir == "" {
		return "", false
	}
	for _, format := range []string{"mp3", "wav"} {
		p := filepath.Join(s.cacheDir, cacheName(word, format))
		if fileExists(p) {
			return p, true
		}
	}
	return "", false
}

// cache writes synthesized audio to the cache and returns its path.
func (s *Speaker) cache(word string, audio *Audio) (string, error) {
	if err := os.MkdirAll(s.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}
	p := filepath.Join(s.cacheDir, cacheName(word, audio.Format))
	if err := os.WriteFile(p, audio.Data, 0o644); err != nil {
		return "", fmt.Errorf("write cache: %w", err)
	}
	return p, nil
}

// play hands the file to the first available external player.
func (s *Speaker) play(ctx context.Context, path string) error {
	for _, c := range playerCandidates {
		bin, err := s.lookPath(c.name)
		if err != nil {
			continue
		}
		args := append(append([]string(nil), c.args...), path)
		if err := s.run(ctx, bin, args...); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
		return nil
	}
	return ErrNoPlayer
}

func cacheName(word, format string) string {
	return strings.ToLower(word) + "." + format
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
