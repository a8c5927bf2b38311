package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"apicatalog/internal/domain"
	"apicatalog/internal/export"
)

func sampleApis() []*domain.Api {
	created := time.Date(2016, time.February, 11, 0, 0, 0, 0, time.UTC)
	return []*domain.Api{
		{
			ID:             "api-to-findById",
			Name:           "api-to-findById",
			Version:        "1",
			LifecycleState: domain.LifecycleStateStopped,
			Visibility:     domain.VisibilityPublic,
			Labels:         []string{"label 1", "label 2"},
			CreatedAt:      &created,
		},
		{ID: "grouped-api", Groups: []string{"api-group"}},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    export.Format
		wantErr bool
	}{
		{"", export.FormatCSV, false},
		{"csv", export.FormatCSV, false},
		{" XLSX ", export.FormatXLSX, false},
		{"pdf", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := export.ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUnsupportedExport)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.FormatCSV, "APIs", sampleApis()))

	data := buf.Bytes()
	require.True(t, bytes.HasPrefix(data, export.BOM))

	records, err := csv.NewReader(bytes.NewReader(data[len(export.BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "ID", records[0][0])
	assert.Equal(t, "api-to-findById", records[1][0])
	assert.Equal(t, "stopped", records[1][4])
	assert.Equal(t, "public", records[1][5])
	assert.Equal(t, "label 1, label 2", records[1][8])
	assert.Equal(t, "2016-02-11T00:00:00Z", records[1][11])
	assert.Equal(t, "api-group", records[2][7])
	assert.Empty(t, records[2][11])
}

func TestWrite_XLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.FormatXLSX, "APIs", sampleApis()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("APIs")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Lifecycle State", rows[0][4])
	assert.Equal(t, "api-to-findById", rows[1][0])
	assert.Equal(t, "grouped-api", rows[2][0])
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := export.Write(&buf, export.Format("pdf"), "APIs", nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedExport)
	assert.Zero(t, buf.Len())
}

func TestFormat_ContentType(t *testing.T) {
	assert.Equal(t, "text/csv; charset=utf-8", export.FormatCSV.ContentType())
	assert.Contains(t, export.FormatXLSX.ContentType(), "spreadsheetml")
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "my_apis_v1", export.SanitizeFilename("my apis / v1"))
	assert.Equal(t, "apis", export.SanitizeFilename("///"))
}

func TestBuildFilename(t *testing.T) {
	now := time.Date(2016, time.November, 13, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "catalog_2016-11-13.xlsx", export.BuildFilename("catalog", export.FormatXLSX, now))
}
