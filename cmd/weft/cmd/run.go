package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/go-drift/weft/pkg/config"
	"github.com/go-drift/weft/pkg/errors"
	"github.com/go-drift/weft/pkg/layout"
	"github.com/go-drift/weft/pkg/runtime"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the application in the terminal",
	Long: `Run loads the templates of the project and runs the demo components
in the terminal.

Templates are read from the directory configured in weft.yaml (default:
templates/). Each *.yaml file defines the template of the same name. When the
directory has no templates, the built-in demo templates are used.

Settings can be overridden with flags or WEFT_* environment variables:
  WEFT_TICK_RATE=100ms weft run
  weft run --watch --root home`,
	RunE: runRun,
}

func init() {
	flags := runCmd.Flags()
	flags.Duration("tick-rate", 0, "time between ticks (default from weft.yaml or 50ms)")
	flags.Bool("mouse", false, "enable mouse events")
	flags.Bool("watch", false, "reload templates when their files change")
	flags.String("root", "", "name of the root template")
	for _, name := range []string{"tick-rate", "mouse", "watch", "root"} {
		_ = settings.BindPFlag(name, flags.Lookup(name))
	}
}

func resolveConfig() (*config.Resolved, error) {
	dir := settings.GetString("dir")
	if dir == "" {
		root, err := config.FindProjectRoot()
		if err != nil {
			if dir, err = os.Getwd(); err != nil {
				return nil, err
			}
		} else {
			dir = root
		}
	}
	cfg, err := config.Resolve(dir)
	if err != nil {
		return nil, err
	}

	if settings.IsSet("tick-rate") {
		cfg.TickRate = settings.GetDuration("tick-rate")
	}
	if settings.IsSet("verbose") {
		cfg.Verbose = settings.GetBool("verbose")
	}
	if settings.IsSet("mouse") {
		cfg.Mouse = settings.GetBool("mouse")
	}
	if settings.IsSet("watch") {
		cfg.Watch = settings.GetBool("watch")
	}
	if root := settings.GetString("root"); root != "" {
		cfg.RootTemplate = root
	}
	return cfg, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	errors.SetHandler(&errors.LogHandler{Verbose: cfg.Verbose})

	viewport, err := layout.DetectViewport(os.Stdout)
	if err != nil {
		viewport = layout.NewViewport(layout.DefaultViewportSize)
	}

	rt := runtime.New(runtime.Options{
		Viewport: viewport,
		Verbose:  cfg.Verbose,
	})
	defer rt.Close()
	registerDemo(rt)

	watched, err := loadTemplates(rt, cfg)
	if err != nil {
		return err
	}
	if err := loadRoot(rt, cfg.RootTemplate); err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(runtime.NewModel(rt, runtime.DefaultKeyMap(), cfg.TickRate), opts...)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if cfg.Watch && watched {
		go func() {
			defer errors.Recover("templates.Watch")
			err := rt.Templates().Watch(ctx, func(path string) {
				program.Send(runtime.ReloadMsg{Path: path})
			})
			if err != nil {
				errors.Report(&errors.RuntimeError{
					Op:        "templates.Watch",
					Kind:      errors.KindTemplate,
					Err:       err,
					Component: -1,
					Timestamp: time.Now(),
				})
			}
		}()
	}

	_, err = program.Run()
	return err
}

// loadRoot loads the root template. A contract violation raised while
// mounting is reported and returned as an error; other panics propagate.
func loadRoot(rt *runtime.Runtime, name string) (err error) {
	defer errors.RecoverWithCallback("runtime.Load", func(violation *errors.ContractError, r any) {
		if violation == nil {
			panic(r)
		}
		err = fmt.Errorf("failed to load %q: %w", name, violation)
	})
	if err := rt.Load(name); err != nil {
		return fmt.Errorf("failed to load %q: %w", name, err)
	}
	return nil
}

// loadTemplates inserts the project's template files, falling back to the
// built-in demo. It reports whether any file templates were loaded.
func loadTemplates(rt *runtime.Runtime, cfg *config.Resolved) (bool, error) {
	files, err := cfg.TemplateFiles()
	if err != nil {
		return false, err
	}
	if len(files) == 0 {
		return false, insertDemoTemplates(rt)
	}
	for name, path := range files {
		if _, err := rt.Templates().InsertFile(name, path); err != nil {
			return false, err
		}
	}
	return true, nil
}
