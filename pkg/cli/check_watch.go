package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kyora-dev/agentos-check/pkg/console"
	"github.com/kyora-dev/agentos-check/pkg/fileutil"
	"github.com/kyora-dev/agentos-check/pkg/logger"
	"github.com/kyora-dev/agentos-check/pkg/manifest"
	"github.com/kyora-dev/agentos-check/pkg/validation"
)

var watchLog = logger.New("cli:check_watch")

// debounceDelay coalesces editor write bursts into one re-run.
const debounceDelay = 200 * time.Millisecond

// watchAndCheck runs validation once, then re-runs it whenever the manifest
// or a directory containing a declared artifact changes. It blocks until the
// process is terminated. Watch setup failure degrades to the single run's
// outcome with a warning rather than aborting.
func watchAndCheck(out io.Writer, rootDir, manifestPath string) error {
	summary, err := runCheck(out, rootDir, manifestPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
	}

	watcher, werr := fsnotify.NewWatcher()
	if werr != nil {
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage(
			fmt.Sprintf("cannot watch for changes: %v", werr)))
		if err != nil {
			return err
		}
		if !summary.Passed() {
			return ErrValidationFailed
		}
		return nil
	}
	defer watcher.Close()

	watched := make(map[string]bool)
	addWatches(watcher, watched, rootDir, manifestPath)

	fmt.Fprintln(out)
	fmt.Fprintln(out, console.FormatInfoMessage("Watching for changes... (ctrl-c to stop)"))

	var debounce *time.Timer
	rerun := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			watchLog.Printf("Filesystem event: %s", event)
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case rerun <- struct{}{}:
				default:
				}
			})
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, console.FormatWarningMessage(
				fmt.Sprintf("watch error: %v", werr)))
		case <-rerun:
			fmt.Fprintln(out)
			if _, err := runCheck(out, rootDir, manifestPath); err != nil {
				// Manifest became unloadable; keep watching so a fix
				// triggers another run.
				fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			}
			addWatches(watcher, watched, rootDir, manifestPath)
		}
	}
}

// addWatches registers the manifest's directory and the parent directory of
// every declared artifact. Directories are watched rather than files so that
// create/rename events for missing artifacts are seen too. Already-watched
// and nonexistent directories are skipped.
func addWatches(watcher *fsnotify.Watcher, watched map[string]bool, rootDir, manifestPath string) {
	dirs := []string{filepath.Dir(manifestPath)}

	if m, err := manifest.Load(manifestPath); err == nil {
		root := fileutil.NewRoot(rootDir)
		for _, unit := range validation.Collect(m, validation.DefaultRequirements()) {
			dirs = append(dirs, filepath.Dir(root.Resolve(unit.Path)))
		}
	}

	for _, dir := range dirs {
		if watched[dir] || !fileutil.DirExists(dir) {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			watchLog.Printf("Failed to watch %s: %v", dir, err)
			continue
		}
		watched[dir] = true
		watchLog.Printf("Watching directory: %s", dir)
	}
}
