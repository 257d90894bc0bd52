package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lvim-tech/qb/pkg/browser"
	"github.com/lvim-tech/qb/pkg/config"
	"github.com/lvim-tech/qb/pkg/launch"
	"github.com/lvim-tech/qb/pkg/menu"
	"github.com/lvim-tech/qb/pkg/profile"
	"github.com/lvim-tech/qb/pkg/utils"
)

const version = "0.1.0"

var (
	flagBrowser  string
	flagTheme    string
	flagBasePath string
)

func main() {
	root := &cobra.Command{
		Use:     "qb",
		Short:   "Pick a browser profile with rofi and launch the browser",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVar(&flagBrowser, "browser", "", "browser to use (firefox, zen-browser, brave)")
	root.Flags().StringVar(&flagTheme, "rofi-theme", "", "rofi theme file")
	root.Flags().StringVar(&flagBasePath, "profile-base-path", "", "profile search path")

	if err := root.Execute(); err != nil {
		utils.Errorf("%v", err)
		utils.ShowErrorNotification("qb", err.Error())
		os.Exit(1)
	}
}

func run() error {
	// Config comes first so debug tracing covers the resolution chain
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	utils.SetDebug(cfg.Debug)

	kind, err := browser.Resolve(flagBrowser)
	if err != nil {
		return err
	}
	utils.Debugf("using browser %s", kind)

	overrides := cfg.ForBrowser(kind.String())

	// Precedence: flag > config file > built-in default
	basePath := kind.DefaultProfilePath()
	if overrides.ProfileSearchPath != "" {
		basePath = overrides.ProfileSearchPath
	}
	if flagBasePath != "" {
		basePath = utils.ExpandPath(flagBasePath)
	}

	theme := overrides.RofiTheme
	if flagTheme != "" {
		theme = utils.ExpandPath(flagTheme)
	}

	profiles, err := profile.List(basePath)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		return fmt.Errorf("no profiles found in %s", basePath)
	}

	choice, err := menu.NewRofi(theme).Show(profiles, "profile")
	if err != nil {
		if menu.IsCancelled(err) {
			utils.Infof("no profile selected")
			return nil
		}
		return err
	}

	// State may have changed while the menu was open
	profileDir, err := filepath.Abs(filepath.Join(basePath, choice))
	if err != nil {
		return err
	}
	if !utils.IsDirectory(profileDir) {
		return fmt.Errorf("selected profile no longer exists: %s", profileDir)
	}

	command := launch.Command(kind, overrides.BrowserCommand)
	if err := launch.Run(command, kind, profileDir); err != nil {
		return err
	}

	utils.Infof("launched %s with profile %s", command, choice)
	os.Exit(0)
	return nil
}
