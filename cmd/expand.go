package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoverse/macrex"
)

var (
	rulesPath string
	watchMode bool
)

var expandCmd = &cobra.Command{
	Use:   "expand <input...>",
	Short: "Expand input items through a YAML rule set",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if rulesPath == "" {
			fmt.Println("error: Please provide a rule set with --rules")
			os.Exit(1)
		}

		if err := runExpand(args); err != nil {
			logger.Error("expand failed", zap.Error(err))
			if !watchMode {
				os.Exit(1)
			}
		}

		if watchMode {
			if err := watchRules(args); err != nil {
				logger.Error("watch failed", zap.Error(err))
				os.Exit(1)
			}
		}
	},
}

func runExpand(input []string) error {
	exp, err := macrex.LoadRuleSet(rulesPath)
	if err != nil {
		return fmt.Errorf("loading rule set %s: %w", rulesPath, err)
	}

	result, err := exp.Expand(input)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

// watchRules re-runs the expansion whenever the rule file is written, so a
// rule set can be edited with live feedback.
func watchRules(input []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(rulesPath); err != nil {
		return fmt.Errorf("watching %s: %w", rulesPath, err)
	}
	logger.Info("watching rule set", zap.String("path", rulesPath))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				// wait for a while after file change to consider multiple changes as one
				time.Sleep(100 * time.Millisecond)
				if err := runExpand(input); err != nil {
					logger.Error("expand failed", zap.Error(err))
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", zap.Error(err))
		}
	}
}

func init() {
	expandCmd.Flags().StringVar(&rulesPath, "rules", "", "Path to the YAML rule set")
	expandCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Re-run when the rule set file changes")
}
