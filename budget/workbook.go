// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package budget

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ReadSheet returns the raw cell values of the first sheet of the
// workbook at path. Numbers are returned unformatted.
func ReadSheet(path string) ([][]string, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}
	rows, err := wb.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// ReadWorkbook extracts the ward totals from the first sheet of the
// workbook at path.
func (f *Forecast) ReadWorkbook(path string) error {
	rows, err := ReadSheet(path)
	if err != nil {
		return err
	}
	f.Logger.Debug("read workbook", zap.String("path", path), zap.Int("rows", len(rows)))
	f.ParseRows(rows)
	return nil
}
