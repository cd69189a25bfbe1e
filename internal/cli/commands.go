package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/redirmap/internal/version"
	"github.com/arthur-debert/redirmap/pkg/config"
	"github.com/arthur-debert/redirmap/pkg/content"
	"github.com/arthur-debert/redirmap/pkg/errors"
	"github.com/arthur-debert/redirmap/pkg/filesystem"
	"github.com/arthur-debert/redirmap/pkg/locales"
	"github.com/arthur-debert/redirmap/pkg/logging"
	"github.com/arthur-debert/redirmap/pkg/paths"
	"github.com/arthur-debert/redirmap/pkg/redirects"
	"github.com/arthur-debert/redirmap/pkg/resolver"
	"github.com/arthur-debert/redirmap/pkg/style"
	"github.com/arthur-debert/redirmap/pkg/types"
	"github.com/arthur-debert/redirmap/pkg/urls"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		rootDir   string
		formatStr string
	)

	rootCmd := &cobra.Command{
		Use:     "redirmap",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			// Show help but return an error to indicate incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", MsgFlagRoot)
	rootCmd.PersistentFlags().StringVar(&formatStr, "format", "auto", MsgFlagFormat)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "tables",
		Title: "TABLE COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Add all commands
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newFixCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// session bundles everything a table command needs: the resolved
// configuration, the paths under the content root, the table store,
// and the resolver answering lookups against it.
type session struct {
	cfg      *config.Config
	paths    paths.Paths
	store    *redirects.Store
	resolver *resolver.Resolver
	format   style.Format
}

// initSession wires the command machinery together. The --root flag
// wins over the config file's content_root, which wins over discovery.
func initSession(cmd *cobra.Command) (*session, error) {
	flags := cmd.Root().PersistentFlags()
	rootDir, _ := flags.GetString("root")

	p, err := paths.New(rootDir)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	cfg, err := config.Load(p.ConfigFilePath())
	if err != nil {
		return nil, err
	}

	if rootDir == "" && cfg.ContentRoot != "" {
		if p, err = paths.New(cfg.ContentRoot); err != nil {
			return nil, fmt.Errorf(MsgErrInitPaths, err)
		}
	}

	if p.UsedFallback() {
		fmt.Fprintf(os.Stderr, MsgFallbackWarning, p.ContentRoot())
	}
	if err := checkContentRoot(p); err != nil {
		return nil, err
	}

	fsys := filesystem.NewOS()
	locator, err := content.NewLocatorSize(fsys, p.ContentRoot(), cfg.Cache.LocateSize)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitLocator, err)
	}

	// The resolver answers the store's already-redirected checks, so
	// it reads through a plain load-only store of its own.
	res := resolver.New(redirects.NewStore(fsys, p, locator, nil))
	store := redirects.NewStore(fsys, p, locator, res)

	formatStr, _ := flags.GetString("format")
	f, err := style.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:      cfg,
		paths:    p,
		store:    store,
		resolver: res,
		format:   style.ResolveFormat(f, cfg.Output.Color, os.Stdout),
	}, nil
}

// checkContentRoot rejects content roots that are not directories on disk.
// Discovery only ever yields existing directories, so a failure here means
// --root, content_root, or CONTENT_ROOT points somewhere stale.
func checkContentRoot(p paths.Paths) error {
	info, err := os.Stat(p.ContentRoot())
	switch {
	case os.IsNotExist(err):
		return errors.Newf(errors.ErrRootNotFound, MsgErrRootMissing, p.ContentRoot())
	case err != nil:
		return errors.Wrapf(err, errors.ErrFileAccess, MsgErrRootAccess, p.ContentRoot())
	case !info.IsDir():
		return errors.Newf(errors.ErrRootNotFound, MsgErrRootNotDir, p.ContentRoot())
	}
	return nil
}

// selectLocales turns command arguments into canonical locale codes.
// Without arguments the config subset applies, and without that, every
// locale that has a table on disk.
func (s *session) selectLocales(args []string) ([]string, error) {
	if len(args) == 0 {
		if len(s.cfg.Locales) > 0 {
			return s.cfg.ActiveLocales(), nil
		}
		return s.store.LocalesWithTables(), nil
	}

	out := make([]string, 0, len(args))
	for _, arg := range args {
		canon, ok := locales.Canonical(arg)
		if !ok {
			return nil, errors.Newf(errors.ErrLocaleUnknown, MsgErrLocaleFlag, arg)
		}
		out = append(out, canon)
	}
	return out, nil
}

// canonicalLocaleOf derives the canonical locale from a document URL.
func canonicalLocaleOf(u string) (string, error) {
	raw, _, err := urls.ParseDocURL(u)
	if err != nil {
		return "", fmt.Errorf(MsgErrDeriveLocale, u, err)
	}
	canon, _ := locales.Canonical(raw)
	return canon, nil
}

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add <from-url> <to-url>",
		Short:   MsgAddShort,
		Long:    MsgAddLong,
		Example: MsgAddExample,
		Args:    cobra.ExactArgs(2),
		GroupID: "tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := initSession(cmd)
			if err != nil {
				return err
			}

			locale, _ := cmd.Flags().GetString("locale")
			fix, _ := cmd.Flags().GetBool("fix")
			from, to := args[0], args[1]

			if locale == "" {
				if locale, err = canonicalLocaleOf(from); err != nil {
					return err
				}
			} else {
				canon, ok := locales.Canonical(locale)
				if !ok {
					return errors.Newf(errors.ErrLocaleUnknown, MsgErrLocaleFlag, locale)
				}
				locale = canon
			}

			log.Info().
				Str("locale", locale).
				Str("from", from).
				Str("to", to).
				Bool("fix", fix).
				Msg("Adding redirect")

			result, err := s.store.Add(locale, []types.Pair{{From: from, To: to}}, fix)
			if err != nil {
				return err
			}

			return printAddResults(s.format, []*types.AddResult{result})
		},
	}

	cmd.Flags().String("locale", "", MsgFlagLocale)
	cmd.Flags().Bool("fix", false, MsgFlagFix)

	return cmd
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "import <file>",
		Short:   MsgImportShort,
		Long:    MsgImportLong,
		Example: MsgImportExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := initSession(cmd)
			if err != nil {
				return err
			}

			localeFlag, _ := cmd.Flags().GetString("locale")
			fix, _ := cmd.Flags().GetBool("fix")

			pairs, err := readImportFile(args[0])
			if err != nil {
				return err
			}

			groups := map[string][]types.Pair{}
			if localeFlag != "" {
				canon, ok := locales.Canonical(localeFlag)
				if !ok {
					return errors.Newf(errors.ErrLocaleUnknown, MsgErrLocaleFlag, localeFlag)
				}
				groups[canon] = pairs
			} else {
				for _, pair := range pairs {
					locale, err := canonicalLocaleOf(pair.From)
					if err != nil {
						return err
					}
					groups[locale] = append(groups[locale], pair)
				}
			}

			log.Info().
				Str("file", args[0]).
				Int("pairs", len(pairs)).
				Int("locales", len(groups)).
				Bool("fix", fix).
				Msg("Importing redirects")

			var results []*types.AddResult
			for _, locale := range locales.All() {
				group := groups[locale]
				if len(group) == 0 {
					continue
				}
				result, err := s.store.Add(locale, group, fix)
				if err != nil {
					return err
				}
				results = append(results, result)
			}

			return printAddResults(s.format, results)
		},
	}

	cmd.Flags().String("locale", "", MsgFlagLocale)
	cmd.Flags().Bool("fix", false, MsgFlagFix)

	return cmd
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "resolve <url>...",
		Short:   MsgResolveShort,
		Long:    MsgResolveLong,
		Example: MsgResolveExample,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := initSession(cmd)
			if err != nil {
				return err
			}

			resolutions := make([]resolution, 0, len(args))
			for _, u := range args {
				target := s.resolver.Resolve(u)
				resolutions = append(resolutions, resolution{
					URL:        u,
					Target:     target,
					Redirected: target != u,
				})
			}

			return printResolutions(s.format, resolutions)
		},
	}
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate [locale...]",
		Short:   MsgValidateShort,
		Long:    MsgValidateLong,
		Example: MsgValidateExample,
		GroupID: "tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := initSession(cmd)
			if err != nil {
				return err
			}

			strict, _ := cmd.Flags().GetBool("strict")
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")

			if from != "" || to != "" {
				if len(args) > 0 {
					return errors.New(errors.ErrInvalidInput, MsgErrFromAndTable)
				}
				return validateURLs(s, from, to)
			}

			locs, err := s.selectLocales(args)
			if err != nil {
				return err
			}

			results := make([]*types.ValidateResult, 0, len(locs))
			for _, locale := range locs {
				results = append(results, s.store.ValidateLocale(locale, strict))
			}

			failed, err := printValidateResults(s.format, results)
			if err != nil {
				return err
			}
			if failed > 0 {
				return errors.Newf(errors.ErrInvalidInput, MsgErrValidation, failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().Bool("strict", false, MsgFlagStrict)
	cmd.Flags().String("from", "", MsgFlagFrom)
	cmd.Flags().String("to", "", MsgFlagTo)

	return cmd
}

// validateURLs checks single URLs against the source or target rules.
func validateURLs(s *session, from, to string) error {
	checks := make([]urlCheck, 0, 2)
	if from != "" {
		checks = append(checks, urlCheck{URL: from, Rule: "from", Err: s.store.ValidateSource(from)})
	}
	if to != "" {
		checks = append(checks, urlCheck{URL: to, Rule: "to", Err: s.store.ValidateTarget(to)})
	}

	failed, err := printURLChecks(s.format, checks)
	if err != nil {
		return err
	}
	if failed > 0 {
		return errors.Newf(errors.ErrInvalidInput, MsgErrURLValidation, failed, len(checks))
	}
	return nil
}

func newFixCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "fix [locale...]",
		Short:   MsgFixShort,
		Long:    MsgFixLong,
		Example: MsgFixExample,
		GroupID: "tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := initSession(cmd)
			if err != nil {
				return err
			}

			locs, err := s.selectLocales(args)
			if err != nil {
				return err
			}
			if len(locs) == 0 {
				fmt.Println(MsgNoTables)
				return nil
			}

			log.Info().Strs("locales", locs).Bool("dry_run", dryRun).Msg("Fixing redirect tables")

			results := make([]*types.FixResult, 0, len(locs))
			for _, locale := range locs {
				result, err := s.store.Fix(locale, dryRun)
				if err != nil {
					return err
				}
				results = append(results, result)
			}

			if err := printFixResults(s.format, results); err != nil {
				return err
			}
			if dryRun && s.format != style.FormatJSON {
				fmt.Println(MsgDryRunNotice)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list [locale...]",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := initSession(cmd)
			if err != nil {
				return err
			}

			locs, err := s.selectLocales(args)
			if err != nil {
				return err
			}
			if len(locs) == 0 {
				fmt.Println(MsgNoTables)
				return nil
			}

			listings := make([]listing, 0, len(locs))
			for _, locale := range locs {
				pairs, err := s.store.Load(locale)
				if err != nil {
					return err
				}
				listings = append(listings, listing{
					Locale:    locale,
					TablePath: s.store.TablePath(locale),
					Pairs:     pairs,
				})
			}

			return printListings(s.format, listings)
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")
			content := config.GenerateConfigContent()

			if !write {
				fmt.Print(content)
				return nil
			}

			rootDir, _ := cmd.Root().PersistentFlags().GetString("root")
			p, err := paths.New(rootDir)
			if err != nil {
				return fmt.Errorf(MsgErrInitPaths, err)
			}
			if p.UsedFallback() {
				fmt.Fprintf(os.Stderr, MsgFallbackWarning, p.ContentRoot())
			}
			if err := checkContentRoot(p); err != nil {
				return err
			}

			path := p.ConfigFilePath()
			if _, err := os.Stat(path); err == nil {
				return errors.Newf(errors.ErrFileAccess, MsgErrConfigExists, path)
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return fmt.Errorf(MsgErrWriteConfig, path, err)
			}

			fmt.Printf(MsgConfigWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolP("write", "w", false, MsgFlagWrite)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("redirmap version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
