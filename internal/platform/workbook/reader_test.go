package workbook

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Thông tin NV"))
	require.NoError(t, f.SetSheetRow("Thông tin NV", "A1", &[]any{"STT", "Họ tên", "Số tài khoản"}))
	require.NoError(t, f.SetSheetRow("Thông tin NV", "A3", &[]any{1, "Nguyễn Văn A", "0012345"}))
	require.NoError(t, f.SetCellValue("Thông tin NV", "E3", 4500000.5))

	_, err := f.NewSheet("Lương T3")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Lương T3", "B2", "HỌ TÊN"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadKeepsSheetOrderAndCellTypes(t *testing.T) {
	sheets, err := NewReader().Read(buildWorkbook(t))
	require.NoError(t, err)
	require.Len(t, sheets, 2)

	info := sheets[0]
	assert.Equal(t, "Thông tin NV", info.Name)
	require.Len(t, info.Rows, 3)
	assert.Equal(t, []any{"STT", "Họ tên", "Số tài khoản"}, info.Rows[0])
	assert.Empty(t, info.Rows[1])

	row := info.Rows[2]
	require.Len(t, row, 5)
	assert.Equal(t, float64(1), row[0])
	assert.Equal(t, "Nguyễn Văn A", row[1])
	assert.Equal(t, "0012345", row[2])
	assert.Nil(t, row[3])
	assert.Equal(t, 4500000.5, row[4])

	salary := sheets[1]
	assert.Equal(t, "Lương T3", salary.Name)
	require.Len(t, salary.Rows, 2)
	assert.Equal(t, []any{nil, "HỌ TÊN"}, salary.Rows[1])
}

func TestReadRejectsGarbage(t *testing.T) {
	_, err := NewReader().Read(strings.NewReader("not a workbook"))
	assert.Error(t, err)
}
