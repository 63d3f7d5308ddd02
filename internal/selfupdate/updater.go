package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

var errNoBinary = errors.New("archive does not contain the spellbee binary")

const binaryName = "spellbee"

// UpdateInput selects what to update to. An empty TargetVersion means
// whatever the latest release is.
type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

// Update replaces the running binary with the release build for the
// target tag, verifying the archive against the release's checksums.txt
// before anything touches disk. report receives one human-readable line
// per step.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, report func(string)) error {
	if report == nil {
		report = func(string) {}
	}
	if input.CurrentVersion == "(devel)" {
		return ErrDevBuild
	}

	tag := input.TargetVersion
	if tag == "" {
		report("Checking for the latest release...")
		res, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
		if err != nil {
			return fmt.Errorf("check releases: %w", err)
		}
		if !res.UpdateAvailable {
			return ErrAlreadyLatest
		}
		tag = res.LatestVersion
	}

	asset, err := assetName()
	if err != nil {
		return err
	}

	report(fmt.Sprintf("Downloading %s (%s)...", tag, asset))
	archive, err := c.fetch(ctx, c.releaseFileURL(tag, asset))
	if err != nil {
		return fmt.Errorf("download %s: %w", asset, err)
	}

	report("Verifying checksum...")
	sums, err := c.fetch(ctx, c.releaseFileURL(tag, "checksums.txt"))
	if err != nil {
		return fmt.Errorf("download checksums.txt: %w", err)
	}
	want, err := checksumFor(sums, asset)
	if err != nil {
		return err
	}
	if got := hashHex(archive); got != want {
		return fmt.Errorf("%w: %s hashes to %s, release lists %s", ErrChecksum, asset, got, want)
	}

	report("Unpacking...")
	binary, err := unpack(archive)
	if err != nil {
		return fmt.Errorf("unpack %s: %w", asset, err)
	}

	report("Installing...")
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("locate running binary: %w", err)
	}
	if err := install(binary, target); err != nil {
		return fmt.Errorf("install: %w", err)
	}

	report("Updated to " + tag + ".")
	return nil
}

// Release archives follow goreleaser naming, spellbee_<OS>_<arch>, with
// Darwin shipping a single universal binary.
func assetName() (string, error) {
	return assetNameFor(runtime.GOOS, runtime.GOARCH)
}

var releaseArch = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
	"386":   "i386",
}

func assetNameFor(goos, goarch string) (string, error) {
	if goos == "darwin" {
		return binaryName + "_Darwin_all.tar.gz", nil
	}
	arch, ok := releaseArch[goarch]
	if !ok {
		return "", fmt.Errorf("no release build for architecture %s", goarch)
	}
	switch goos {
	case "linux":
		return binaryName + "_Linux_" + arch + ".tar.gz", nil
	case "windows":
		return binaryName + "_Windows_" + arch + ".zip", nil
	}
	return "", fmt.Errorf("no release build for %s", goos)
}

func (c *Checker) releaseFileURL(tag, name string) string {
	return fmt.Sprintf("%s/%s/%s/releases/download/%s/%s",
		strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo, tag, name)
}

func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// checksumFor finds the sha256 hex for name in a goreleaser checksums.txt
// ("<hex>  <filename>" per line).
func checksumFor(sums []byte, name string) (string, error) {
	sc := bufio.NewScanner(bytes.NewReader(sums))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 2 && fields[1] == name {
			return fields[0], nil
		}
	}
	return "", fmt.Errorf("checksums.txt has no entry for %s", name)
}

func hashHex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// unpack pulls the spellbee binary out of a release archive. Zip archives
// are recognized by their magic bytes; everything else is read as tar.gz.
func unpack(archive []byte) ([]byte, error) {
	if bytes.HasPrefix(archive, []byte("PK")) {
		return unpackZip(archive)
	}
	return unpackTarGz(archive)
}

func unpackTarGz(archive []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, err
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil, errNoBinary
		}
		if err != nil {
			return nil, err
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == binaryName {
			return io.ReadAll(tr)
		}
	}
}

func unpackZip(archive []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, err
	}
	for _, f := range zr.File {
		if filepath.Base(f.Name) != binaryName+".exe" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, errNoBinary
}

// install stages the new binary next to target and renames it into
// place, keeping the original file mode. The staged copy is re-read
// before the rename so a corrupt write never replaces a working install.
func install(binary []byte, target string) error {
	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	staged, err := os.CreateTemp(filepath.Dir(target), "."+binaryName+"-staged-*")
	if err != nil {
		return err
	}
	stagedPath := staged.Name()
	defer func() { _ = os.Remove(stagedPath) }()

	_, werr := staged.Write(binary)
	if cerr := staged.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return werr
	}

	onDisk, err := os.ReadFile(stagedPath)
	if err != nil {
		return err
	}
	if !bytes.Equal(onDisk, binary) {
		return fmt.Errorf("%w: staged file differs from download", ErrChecksum)
	}

	if err := os.Chmod(stagedPath, info.Mode()); err != nil {
		return err
	}
	return os.Rename(stagedPath, target)
}
