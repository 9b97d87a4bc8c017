package httpadapter

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jny0444/crowdfund/internal/core/domain"
)

const donorSheetName = "Donors"

var donorColumns = []string{"Address", "Amount", "Refundable", "First contribution"}

// buildDonorWorkbook renders donor records into a single sheet workbook.
func buildDonorWorkbook(campaignID int64, donors []domain.Donor) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", donorSheetName); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeDonorSheet(f, donorSheetName, donors); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetDocProps(&excelize.DocProperties{Title: fmt.Sprintf("Campaign %d donors", campaignID)}); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// writeDonorSheet fills sheet with a header row and one row per donor.
// Amounts are written as text since base unit values overflow float64.
func writeDonorSheet(f *excelize.File, sheet string, donors []domain.Donor) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	for i, col := range donorColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err = f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
	}
	if err = f.SetCellStyle(sheet, "A1", "D1", headerStyle); err != nil {
		return err
	}
	for _, w := range []struct {
		from, to string
		width    float64
	}{{"A", "A", 46}, {"B", "C", 28}, {"D", "D", 24}} {
		if err = f.SetColWidth(sheet, w.from, w.to, w.width); err != nil {
			return err
		}
	}

	for i, d := range donors {
		row := i + 2
		values := []string{d.Address.String(), d.Amount.String(), d.Refundable.String(), d.FirstAt.UTC().Format(time.RFC3339)}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return err
			}
			if err = f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("row %d: %w", row, err)
			}
		}
	}
	return nil
}

// handleExportDonors streams the donor list of a campaign as an xlsx file.
func (h *Handler) handleExportDonors(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	donors, err := h.svc.ListDonors(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}
	f, err := buildDonorWorkbook(id, donors)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("build workbook: %w", err), nil)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="campaign-%d-donors.xlsx"`, id))
	if err = f.Write(w); err != nil {
		h.logger.Error("write workbook error", slog.Any("error", err))
	}
}
