package content

import "strings"

// folderReplacer rewrites slug characters that cannot appear in directory
// names. The double-colon form must be listed before the single colon so
// Namespace::Method slugs fold as one token.
var folderReplacer = strings.NewReplacer(
	"*", "_star_",
	"::", "_doublecolon_",
	":", "_colon_",
	"?", "_question_",
)

// SlugToFolder converts a document slug to its on-disk folder path,
// relative to the locale directory. Folders are always lowercase, which is
// what makes document lookup case-insensitive.
func SlugToFolder(slug string) string {
	return strings.ToLower(folderReplacer.Replace(slug))
}
