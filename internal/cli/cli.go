// Package cli implements the arc2bookmarks command-line interface.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/takak2166/arc2bookmarks/internal/buildinfo"
	"github.com/takak2166/arc2bookmarks/internal/config"
	"github.com/takak2166/arc2bookmarks/internal/converter"
	"github.com/takak2166/arc2bookmarks/internal/errors"
	"github.com/takak2166/arc2bookmarks/internal/logger"
	"github.com/takak2166/arc2bookmarks/internal/netscape"
	"github.com/takak2166/arc2bookmarks/internal/parser"
	"github.com/takak2166/arc2bookmarks/internal/storage"
)

const importInstructions = `
To import these bookmarks:
1. In Chrome: Open Bookmarks Manager (⌘⇧B) -> Click three dots -> Import bookmarks
2. In Firefox: Open Library (⌘⇧B) -> Import and Backup -> Import Bookmarks from HTML
`

// CLI holds the writer status messages are printed to
type CLI struct {
	out   io.Writer
	store storage.Store
}

// New creates a CLI printing status messages to out
func New(out io.Writer) *CLI {
	return &CLI{out: out, store: storage.NewFileStore()}
}

// RootCommand creates the arc2bookmarks command
func (c *CLI) RootCommand() *cobra.Command {
	var (
		configFile string
		flags      config.Config
	)

	root := &cobra.Command{
		Use:   "arc2bookmarks",
		Short: "Convert Arc browser sidebar data to a Netscape bookmark file",
		Long: `arc2bookmarks reads Arc's StorableSidebar.json and writes every saved tab
as a Netscape Bookmark HTML file that Chrome, Firefox, Safari and Edge can import.`,
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(configFile, flags)
		},
	}
	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.out)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return c.fail(errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid arguments"))
	})

	root.Flags().StringVarP(&flags.Source, "input", "i", "", "path to StorableSidebar.json (default: beside the program, else Arc's data directory)")
	root.Flags().StringVarP(&flags.Output, "output", "o", "", "path of the bookmark file to write (default \""+config.DefaultOutput+"\")")
	root.Flags().StringVar(&flags.FolderTitle, "title", "", "title of the top-level bookmark folder (default \""+netscape.DefaultFolderTitle+"\")")
	root.Flags().StringVar(&flags.LogLevel, "log-level", "", "log level: debug, info, warn, error (default \"info\")")
	root.Flags().StringVar(&configFile, "config", "", "optional TOML config file")

	return root
}

func (c *CLI) run(configFile string, flags config.Config) error {
	cfg, err := config.Load(configFile, flags)
	if err != nil {
		return c.fail(err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return c.fail(errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid log level %q", cfg.LogLevel))
	}

	conv := converter.New(c.store, parser.New(), netscape.Options{FolderTitle: cfg.FolderTitle})
	result, err := conv.Convert(cfg.Source, cfg.Output)
	if err != nil {
		logger.Error("Conversion failed", err, map[string]interface{}{
			"source": cfg.Source,
		})
		return c.fail(err)
	}

	fmt.Fprintf(c.out, "Successfully converted %d bookmarks to %s\n", result.Count, result.Output)
	fmt.Fprint(c.out, importInstructions)
	return nil
}

func (c *CLI) fail(err error) error {
	fmt.Fprintf(c.out, "Error: %s\n", errors.UserMessage(err))
	fmt.Fprintln(c.out, "Conversion failed")
	return err
}
