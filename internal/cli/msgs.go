package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Manage per-locale URL redirect tables for a documentation corpus"
	MsgAddShort        = "Add a redirect to a locale's table"
	MsgImportShort     = "Merge redirects from a file into the tables"
	MsgResolveShort    = "Resolve URLs through the redirect tables"
	MsgValidateShort   = "Validate redirect tables or single URLs"
	MsgFixShort        = "Repair redirect tables in place"
	MsgListShort       = "List the redirects of one or more locales"
	MsgGenConfigShort  = "Generate a default configuration file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigWritten   = "Wrote %s\n"
	MsgNoTables        = "No redirect tables found."
	MsgResolveItem     = "%s\n"
	MsgResolveItemTerm = "%s -> %s\n"
	MsgDryRunNotice    = "\nDRY RUN MODE - No changes were made"

	// Error messages
	MsgErrInitPaths     = "failed to initialize paths: %w"
	MsgErrInitLocator   = "failed to initialize document locator: %w"
	MsgErrRootMissing   = "content root does not exist: %s"
	MsgErrRootNotDir    = "content root is not a directory: %s"
	MsgErrRootAccess    = "cannot access content root %s"
	MsgErrReadImport    = "failed to read import file %s: %w"
	MsgErrConfigExists  = "%s already exists, remove it first"
	MsgErrValidation    = "validation failed for %d of %d locales"
	MsgErrURLValidation = "validation failed for %d of %d URLs"
	MsgErrLocaleFlag    = "unknown locale %q"
	MsgErrDeriveLocale  = "cannot derive locale from %s: %w"
	MsgErrFromAndTable  = "--from and --to cannot be combined with locale arguments"
	MsgErrWriteConfig   = "failed to write %s: %w"
	MsgErrEncodeResults = "failed to encode results: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot    = "Content root directory (overrides discovery and config)"
	MsgFlagFormat  = "Output format: auto, term, text, or json"
	MsgFlagLocale  = "Locale to operate on (derived from the from-URL when empty)"
	MsgFlagFix     = "Repair the existing table before merging"
	MsgFlagStrict  = "Also verify documents behind sources, targets, and slugs"
	MsgFlagFrom    = "Validate a single URL as a redirect source"
	MsgFlagTo      = "Validate a single URL as a redirect target"
	MsgFlagWrite   = "Write the config next to the tables instead of stdout"
	MsgFlagDryRun  = "Preview repairs without writing the table"

	// Warnings
	MsgFallbackWarning = "Warning: no content root configured, using current directory: %s\n"
)

// Long messages and examples
const (
	MsgRootLong = `redirmap maintains the _redirects.txt tables of a multi-locale
documentation corpus. Each locale directory carries one table mapping
moved URLs to their current location; redirmap keeps those tables
canonical: decoded, deduplicated, flattened, cycle-free, and sorted.

The content root is discovered from --root, the CONTENT_ROOT
environment variable, the enclosing git repository, or the current
directory, in that order. A .redirmap.toml at the root and REDIRMAP_*
environment variables adjust behavior.`

	MsgAddLong = `Add validates a single redirect and merges it into the locale's
table. The from-URL must be a document URL inside the corpus; the
to-URL may be another document, a bare locale root, or an external
https URL. Existing redirects that the new entry supersedes or
invalidates are dropped, and chains through the new entry are
flattened before the table is written back.`
	MsgAddExample = `  redirmap add /en-US/docs/Web/XHR /en-US/docs/Web/API/Fetch
  redirmap add --fix /fr/docs/Web/Old /fr/docs/Web/New`

	MsgImportLong = `Import reads redirect pairs from a file and merges them into the
tables, grouped by the locale of each from-URL unless --locale pins
one. Tab-separated files use the table format itself; files ending in
.toml hold an array of [[redirect]] entries with from and to keys.`
	MsgImportExample = `  redirmap import moves.txt
  redirmap import --locale fr renames.toml`

	MsgResolveLong = `Resolve looks each URL up in the redirect tables and prints where it
leads. Lookup is case-insensitive, applies legacy locale rewrites such
as /en/ for /en-US/, and returns the input unchanged when no redirect
matches. Only a single hop is taken: tables are flattened, so one hop
is always enough.`
	MsgResolveExample = `  redirmap resolve /en-US/docs/Web/XHR
  redirmap resolve /cn/docs/Web/API /kr/`

	MsgValidateLong = `Validate checks that each locale's table parses, contains only
well-formed decoded URLs, holds no duplicate sources or cycles, and is
byte-for-byte canonical. With --strict it also verifies that sources
do not shadow existing documents, internal targets exist, and target
slugs match the documents' front matter. A missing table is valid.

With --from or --to, validate checks a single URL against the source
or target rules instead of reading tables.`
	MsgValidateExample = `  redirmap validate
  redirmap validate --strict en-US fr
  redirmap validate --from /en-US/docs/Web/Gone
  redirmap validate --to https://example.com/`

	MsgFixLong = `Fix rewrites each locale's table into canonical form: unparseable
rows and encoded URLs are dropped, chains are flattened, cycles are
removed, orphaned entries whose source points at an existing document
are discarded, and the result is sorted and deduplicated. The table
file is only touched when its content changes. With --dry-run the
diff is printed but nothing is written.`
	MsgFixExample = `  redirmap fix
  redirmap fix en-US
  redirmap fix --dry-run en-US`

	MsgListLong = `List prints the redirects of the selected locales in table order.
Text output is valid table format and can be piped back into import;
JSON output carries one object per locale.`
	MsgListExample = `  redirmap list en-US
  redirmap list --format json`

	MsgGenConfigLong = `Genconfig prints a commented default configuration. With --write the
content is placed at .redirmap.toml under the content root instead,
unless that file already exists.`
	MsgGenConfigExample = `  redirmap genconfig
  redirmap genconfig --write`

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(redirmap completion bash)
  # To load completions for each session, execute once:
  $ redirmap completion bash > /etc/bash_completion.d/redirmap

Zsh:
  $ redirmap completion zsh > "${fpath[1]}/_redirmap"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ redirmap completion fish | source
  # To load completions for each session, execute once:
  $ redirmap completion fish > ~/.config/fish/completions/redirmap.fish

PowerShell:
  PS> redirmap completion powershell | Out-String | Invoke-Expression`
)
