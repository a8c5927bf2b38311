// Package export writes API search results as CSV or XLSX.
package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"apicatalog/internal/domain"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat maps a format name to a Format. An empty name selects CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedExport, s)
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// columns defines the header row shared by every format.
var columns = []string{
	"ID",
	"Name",
	"Description",
	"Version",
	"Lifecycle State",
	"Visibility",
	"Views",
	"Groups",
	"Labels",
	"Picture",
	"Deployed At",
	"Created At",
	"Updated At",
	"Definition",
}

func apiToRow(api *domain.Api) []string {
	if api == nil {
		return make([]string, len(columns))
	}
	return []string{
		api.ID,
		api.Name,
		api.Description,
		api.Version,
		string(api.LifecycleState),
		string(api.Visibility),
		strings.Join(api.Views, ", "),
		strings.Join(api.Groups, ", "),
		strings.Join(api.Labels, ", "),
		api.Picture,
		formatTime(api.DeployedAt),
		formatTime(api.CreatedAt),
		formatTime(api.UpdatedAt),
		api.Definition,
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "apis"
	}
	return s
}

// BuildFilename returns {sanitized_name}_{YYYY-MM-DD}.{format}.
func BuildFilename(name string, format Format, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(name), now.Format("2006-01-02"), format)
}
