package output

import (
	"fmt"
	"strings"

	"github.com/investcalc/calculators/internal/domain"
)

// GenerateReport writes the report in the named format to dir and returns the file path.
// The format "all" writes console, csv and html files.
func GenerateReport(report *domain.PlanReport, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, name := range []string{"console", "csv", "html"} {
			path, err := WriteFormatted(GetFormatterByName(name), report, dir)
			if err != nil {
				return files, err
			}
			files = append(files, path)
		}
		return files, nil
	}
	f := GetFormatterByName(format)
	if f == nil {
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	path, err := WriteFormatted(f, report, dir)
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// Render formats the report in memory, for printing to stdout.
func Render(report *domain.PlanReport, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return f.Format(report)
}
