package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ensigniasec/candidate-controls/internal/catalog"
	"github.com/ensigniasec/candidate-controls/internal/controlbar"
	"github.com/ensigniasec/candidate-controls/internal/storage"
	"github.com/ensigniasec/candidate-controls/internal/tui"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	prefsFile      = storage.DefaultPath
	verbose        bool
	candidateCount int
	renderSort     string
	renderView     string
	renderWidth    int
	renderOpen     bool
	catalogFormat  string

	rootCmd = &cobra.Command{
		Use:   "candidate-controls",
		Short: "Sort and view controls for a candidate list, in the terminal.",
		Long: `Renders the candidate list control bar: a count badge, a grouped sort-order dropdown with a description of the selected order, and a list/grid view toggle. ` +
			`Sort and view preferences are kept in a small JSON file between runs.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr to avoid polluting stdout, especially for render/catalog output.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.PersistentFlags().StringVar(&prefsFile, "prefs-file", storage.DefaultPath, "Path to the preferences file")

	tuiCmd.Flags().IntVarP(&candidateCount, "count", "n", 0, "Number of candidates shown in the badge")

	renderCmd.Flags().StringVar(&renderSort, "sort", "", "Sort identifier to show (defaults to the stored preference)")
	renderCmd.Flags().StringVar(&renderView, "view", "", "View mode to show: list or grid (defaults to the stored preference)")
	renderCmd.Flags().IntVarP(&candidateCount, "count", "n", 0, "Number of candidates shown in the badge")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "Render width; 0 packs the view toggle next to the badge")
	renderCmd.Flags().BoolVar(&renderOpen, "open", false, "Render with the sort dropdown expanded")

	catalogCmd.Flags().StringVarP(&catalogFormat, "format", "f", "text", "Output format: text, yaml or json")

	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsResetCmd)

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(prefsCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the interactive control bar",
	Long:  "Run the control bar interactively. Sort and view changes are saved to the preferences file as they happen.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewOrExistingStorage(prefsFile)
		if err != nil {
			return fmt.Errorf("opening preferences: %w", err)
		}
		return tui.Run(cmd.Context(), st, candidateCount)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print a single render of the control bar",
	Long:  "Print the control bar once for the given sort, view and count, falling back to stored preferences for anything not given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage(prefsFile)
		if err != nil {
			return fmt.Errorf("opening preferences: %w", err)
		}
		sortBy := st.Data.SortBy
		if renderSort != "" {
			sortBy = renderSort
		}
		view := st.Data.ViewMode
		if renderView != "" {
			view = renderView
		}
		mode, err := controlbar.ParseViewMode(view)
		if err != nil {
			return err
		}

		c := controlbar.New(controlbar.Props{
			SortBy:         sortBy,
			ViewMode:       mode,
			CandidateCount: candidateCount,
		}).SetWidth(renderWidth)
		if renderOpen {
			c = c.Expanded()
		}
		fmt.Fprintln(cmd.OutOrStdout(), c.View())
		return nil
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the available sort orders",
	Long:  "List every sort order grouped as in the dropdown, with its identifier and description.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := catalog.Validate(); err != nil {
			return err
		}
		return printCatalog(cmd.OutOrStdout(), catalogFormat)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Inspect or reset stored sort and view preferences",
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show stored preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage(prefsFile)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "file:      %s\n", st.Path)
		fmt.Fprintf(out, "sort_by:   %s\n", st.Data.SortBy)
		if _, ok := catalog.Lookup(st.Data.SortBy); !ok {
			fmt.Fprintln(out, "           (not in catalog)")
		}
		fmt.Fprintf(out, "view_mode: %s\n", st.Data.ViewMode)
		return nil
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset stored preferences to defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage(prefsFile)
		if err != nil {
			return err
		}
		if err := st.Reset(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Preferences reset")
		return nil
	},
}

func main() {
	Execute()
}
