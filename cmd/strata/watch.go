package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/strata/pkg/core"
	"github.com/aretw0/strata/pkg/git"
	"github.com/aretw0/strata/pkg/store"
	"github.com/aretw0/strata/pkg/watch"
)

var (
	watchDebounce time.Duration
	watchInterval time.Duration
	watchIgnore   []string
	watchCommit   bool
	watchAuthor   string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Capture versions automatically as tracked files change",
	Long: `Watch the directories of all tracked documents and record a new
version for each settled change. With --commit, every captured version is
followed by a git commit of the tracked file and the state file.

The daemon is an ordinary store caller: a concurrent strata invocation
against the same store is last-writer-wins.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()
		logger := slog.Default()

		var client *git.Client
		if watchCommit {
			if !git.IsInstalled() {
				fatal("cannot enable --commit", fmt.Errorf("git is not installed"))
			}
			client = git.NewClient(st.Root(), logger)
			if !client.IsRepo() {
				fatal("cannot enable --commit", fmt.Errorf("%s is not a git repository", st.Root()))
			}
		}

		if !cmd.Flags().Changed("debounce") {
			watchDebounce = viper.GetDuration("watch.debounce")
		}
		if !cmd.Flags().Changed("interval") {
			watchInterval = viper.GetDuration("watch.interval")
		}
		ignore := append(viper.GetStringSlice("watch.ignore"), watchIgnore...)

		w := watch.New(watch.Config{
			Store:    st,
			Logger:   logger,
			Debounce: watchDebounce,
			Interval: watchInterval,
			Ignore:   ignore,
			Metadata: buildMetadata("", watchAuthor),
			OnVersion: func(path string, v core.Version) {
				fmt.Printf("Recorded %s version %d\n", path, v.Number)
				if client != nil {
					commitCapture(client, st, path, v)
				}
			},
			OnError: func(err error) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			},
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := w.Start(ctx); err != nil {
			fatal("failed to start watcher", err)
		}

		fmt.Println("Watching for changes. Press Ctrl-C to stop.")
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := w.Stop(shutdownCtx); err != nil {
			fatal("failed to stop watcher", err)
		}
	},
}

// commitCapture commits a captured version: the tracked file plus the
// state file, under the process-safety lock.
func commitCapture(client *git.Client, st *store.Store, path string, v core.Version) {
	unlock, err := client.Lock()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to acquire git lock: %v\n", err)
		return
	}
	defer unlock()

	statePath := filepath.Join(store.DefaultSystemDir, store.StateFileName)
	if err := client.Add(path, statePath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: git add failed: %v\n", err)
		return
	}

	msg := git.FormatCommitMessage(git.CommitTypeDocs, "strata",
		fmt.Sprintf("capture %s v%d", path, v.Number), "")
	if err := client.Commit(msg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: git commit failed: %v\n", err)
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 50*time.Millisecond, "Quiet period before a change is captured")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "Periodic full rescan interval (0 disables)")
	watchCmd.Flags().StringSliceVar(&watchIgnore, "ignore", nil, "Doublestar patterns of paths to ignore")
	watchCmd.Flags().BoolVar(&watchCommit, "commit", false, "Commit each captured version to git")
	watchCmd.Flags().StringVarP(&watchAuthor, "author", "a", "", "Author recorded on captured versions")
}
