package timestamp

import (
	"path/filepath"
	"regexp"
	"time"
)

// folderPattern pairs a regexp against a single path component with the
// time.Parse layout that decodes it. Patterns are tried in priority
// order: full date beats year-month beats bare year.
type folderPattern struct {
	re     *regexp.Regexp
	layout string
}

var folderPatterns = []folderPattern{
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), "2006-01-02"},
	{regexp.MustCompile(`^\d{4}_\d{2}_\d{2}$`), "2006_01_02"},
	{regexp.MustCompile(`^\d{8}$`), "20060102"},
	{regexp.MustCompile(`^\d{4}-\d{2}$`), "2006-01"},
	{regexp.MustCompile(`^\d{6}$`), "200601"},
	{regexp.MustCompile(`^Photos from \d{4}$`), "Photos from 2006"},
	{regexp.MustCompile(`^\d{4}$`), "2006"},
}

// resolveFromFolderName walks the directory path of mediaPath upward,
// component by component, and returns the instant encoded by the deepest
// (closest to the file) component that matches one of folderPatterns. An
// out-of-range date (e.g. "2019-13-45") fails to parse and is treated as
// no match for that component, not clamped.
func resolveFromFolderName(mediaPath string) (ResolvedDate, bool) {
	dir := filepath.Dir(mediaPath)

	for {
		component := filepath.Base(dir)

		for _, p := range folderPatterns {
			if !p.re.MatchString(component) {
				continue
			}
			if instant, err := time.ParseInLocation(p.layout, component, time.Local); err == nil {
				return ResolvedDate{Instant: instant, Provenance: FolderName}, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ResolvedDate{}, false
}
