package service

import (
	"time"

	"github.com/labstack/gommon/log"
	"github.com/xuri/excelize/v2"

	"github.com/MauriicioRibotta/RuralJMSolution/internal/contract"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/infrastructure/aws/storage"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/utils/apierror"
)

const reportSheetName = "Planilla de Admisión"

// ReportFileName is the fixed download name of the jury report.
const ReportFileName = "Listado_Jurado.xlsx"

// The last four columns (Peso, CE, Obs. Admisión, Aprobado) stay empty for
// the jury to fill in by hand on show day.
var reportColumns = []struct {
	header string
	width  float64
}{
	{"Lote", 8},
	{"Catálogo", 10},
	{"RP", 15},
	{"Nombre", 30},
	{"Raza", 15},
	{"Sexo", 10},
	{"Categoría", 20},
	{"Expositor", 30},
	{"Peso (Kg)", 15},
	{"CE (cm)", 10},
	{"Obs. Admisión", 30},
	{"Aprobado", 10},
}

type DefaultReportService struct {
	Storage storage.S3Client // nil disables archival
}

func NewReportService(s3 storage.S3Client) *DefaultReportService {
	return &DefaultReportService{Storage: s3}
}

// GenerateJuryReport renders one worksheet, one row per animal, in the given
// input order. Ordering is the caller's responsibility.
func (s *DefaultReportService) GenerateJuryReport(animals []*contract.AnimalResponse) ([]byte, apierror.ErrorResponse) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheetName); err != nil {
		log.Errorf("failed to name report sheet: %v", err)
		return nil, apierror.InternalServerError
	}

	if err := writeReportHeader(f); err != nil {
		log.Errorf("failed to write report header: %v", err)
		return nil, apierror.InternalServerError
	}

	if err := writeReportRows(f, animals); err != nil {
		log.Errorf("failed to write report rows: %v", err)
		return nil, apierror.InternalServerError
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Errorf("failed to serialize report: %v", err)
		return nil, apierror.InternalServerError
	}

	data := buf.Bytes()
	if s.Storage != nil {
		archived := make([]byte, len(data))
		copy(archived, data)
		go s.archiveReport(archived)
	}
	return data, nil
}

// archiveReport keeps a timestamped copy of the export. Best effort: a
// failure is logged and the HTTP response is unaffected.
func (s *DefaultReportService) archiveReport(data []byte) {
	name := "Listado_Jurado_" + time.Now().UTC().Format("20060102_150405") + ".xlsx"
	if _, err := s.Storage.UploadFile(data, name); err != nil {
		log.Errorf("failed to archive report %s: %v", name, err)
	}
}

func writeReportHeader(f *excelize.File) error {
	for i, col := range reportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(reportSheetName, cell, col.header); err != nil {
			return err
		}

		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(reportSheetName, name, name, col.width); err != nil {
			return err
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Family: "Arial", Size: 12, Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1F4E78"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(reportColumns), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(reportSheetName, "A1", last, style)
}

func writeReportRows(f *excelize.File, animals []*contract.AnimalResponse) error {
	if len(animals) == 0 {
		return nil
	}

	for i, animal := range animals {
		row := i + 2
		values := []any{
			intCell(animal.LoteNro),
			intCell(animal.OrdenCatalogo),
			animal.RP,
			strCell(animal.Nombre),
			animal.RazaNombre,
			animal.Sexo,
			strCell(animal.Categoria),
			animal.ExpositorNombreCabana,
		}

		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(reportSheetName, cell, value); err != nil {
				return err
			}
		}
	}

	thin := excelize.Border{Style: 1, Color: "000000"}
	style, err := f.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "top", Style: thin.Style, Color: thin.Color},
			{Type: "left", Style: thin.Style, Color: thin.Color},
			{Type: "bottom", Style: thin.Style, Color: thin.Color},
			{Type: "right", Style: thin.Style, Color: thin.Color},
		},
	})
	if err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(reportColumns), len(animals)+1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(reportSheetName, "A2", last, style)
}

func strCell(s *string) any {
	if s == nil {
		return ""
	}
	return *s
}

func intCell(n *int) any {
	if n == nil {
		return ""
	}
	return *n
}
