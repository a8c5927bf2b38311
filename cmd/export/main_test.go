package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"apicatalog/internal/config"
	"apicatalog/internal/domain"
	"apicatalog/internal/service"
)

var testExportCfg = config.ExportConfig{SheetName: "APIs", MaxRows: 100}

func TestRunExport_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "public.csv")
	opts := &exportOptions{vis: "PUBLIC", format: "csv", output: path}
	var out bytes.Buffer

	err := runExport(context.Background(), zerolog.Nop(), testExportCfg, opts, &out)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "api-to-findById")
	assert.Contains(t, string(data), "grouped-api")
	assert.NotContains(t, string(data), "api-to-delete")
	assert.Contains(t, out.String(), "2 APIs written to")
}

func TestRunExport_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v1.xlsx")
	opts := &exportOptions{input: exportInput("1"), format: "xlsx", output: path}

	err := runExport(context.Background(), zerolog.Nop(), testExportCfg, opts, &bytes.Buffer{})
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("APIs")
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "api-to-findById", rows[1][0])
}

func TestRunExport_MaxRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v1.csv")
	opts := &exportOptions{input: exportInput("1"), format: "csv", output: path}
	var out bytes.Buffer

	err := runExport(context.Background(), zerolog.Nop(), config.ExportConfig{SheetName: "APIs", MaxRows: 1}, opts, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "1 APIs written to")
}

func TestRunExport_UnsupportedFormat(t *testing.T) {
	opts := &exportOptions{format: "pdf", output: filepath.Join(t.TempDir(), "x.pdf")}

	err := runExport(context.Background(), zerolog.Nop(), testExportCfg, opts, &bytes.Buffer{})
	assert.ErrorIs(t, err, domain.ErrUnsupportedExport)
}

func TestRunExport_InvalidState(t *testing.T) {
	opts := &exportOptions{state: "paused", format: "csv", output: filepath.Join(t.TempDir(), "x.csv")}

	err := runExport(context.Background(), zerolog.Nop(), testExportCfg, opts, &bytes.Buffer{})
	assert.ErrorIs(t, err, domain.ErrInvalidCriteria)
}

func TestRootCmd_Flags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grouped.csv")
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--groups", "api-group,unknown", "-o", path})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "grouped-api")
	assert.Contains(t, out.String(), "1 APIs written to")
}

func exportInput(version string) service.SearchApisInput {
	return service.SearchApisInput{Version: version}
}
