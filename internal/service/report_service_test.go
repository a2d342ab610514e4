package service

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/MauriicioRibotta/RuralJMSolution/internal/contract"
)

type fakeReportStorage struct {
	uploaded chan string
}

func (f *fakeReportStorage) UploadFile(data []byte, filename string) (string, error) {
	f.uploaded <- filename
	return "reports/" + filename, nil
}

func intp(n int) *int { return &n }

func reportAnimal(i int) *contract.AnimalResponse {
	return &contract.AnimalResponse{
		ID:                    "animal-" + strconv.Itoa(i),
		RP:                    "RP-" + strconv.Itoa(i),
		Nombre:                strp("Animal " + strconv.Itoa(i)),
		Sexo:                  contract.SexoMacho,
		LoteNro:               intp(i),
		OrdenCatalogo:         intp(i * 10),
		Categoria:             strp("Ternero"),
		RazaNombre:            "Angus",
		ExpositorNombreCabana: "La Esperanza",
	}
}

func TestReportService_EmptyReportHasOnlyHeader(t *testing.T) {
	svc := NewReportService(nil)

	data, apierr := svc.GenerateJuryReport(nil)
	if apierr != nil {
		t.Fatalf("GenerateJuryReport returned error: %v", apierr)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("generated file does not open: %v", err)
	}
	defer f.Close()

	if name := f.GetSheetName(0); name != "Planilla de Admisión" {
		t.Fatalf("expected sheet 'Planilla de Admisión', got %q", name)
	}

	rows, err := f.GetRows("Planilla de Admisión")
	if err != nil {
		t.Fatalf("GetRows error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected a single header row, got %d rows", len(rows))
	}

	want := []string{
		"Lote", "Catálogo", "RP", "Nombre", "Raza", "Sexo", "Categoría",
		"Expositor", "Peso (Kg)", "CE (cm)", "Obs. Admisión", "Aprobado",
	}
	if len(rows[0]) != len(want) {
		t.Fatalf("expected %d header cells, got %d", len(want), len(rows[0]))
	}
	for i, header := range want {
		if rows[0][i] != header {
			t.Fatalf("header %d: expected %q, got %q", i, header, rows[0][i])
		}
	}
}

func TestReportService_OneRowPerAnimalInInputOrder(t *testing.T) {
	svc := NewReportService(nil)

	animals := []*contract.AnimalResponse{reportAnimal(1), reportAnimal(2), reportAnimal(3)}
	data, apierr := svc.GenerateJuryReport(animals)
	if apierr != nil {
		t.Fatalf("GenerateJuryReport returned error: %v", apierr)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("generated file does not open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Planilla de Admisión")
	if err != nil {
		t.Fatalf("GetRows error: %v", err)
	}
	if len(rows) != len(animals)+1 {
		t.Fatalf("expected %d rows, got %d", len(animals)+1, len(rows))
	}

	for i := range animals {
		cell := "C" + strconv.Itoa(i+2)
		rp, err := f.GetCellValue("Planilla de Admisión", cell)
		if err != nil {
			t.Fatalf("GetCellValue %s error: %v", cell, err)
		}
		if rp != "RP-"+strconv.Itoa(i+1) {
			t.Fatalf("cell %s: expected rp of animal %d, got %q", cell, i+1, rp)
		}
	}

	lote, _ := f.GetCellValue("Planilla de Admisión", "A2")
	if lote != "1" {
		t.Fatalf("expected lote 1 in A2, got %q", lote)
	}
	cabana, _ := f.GetCellValue("Planilla de Admisión", "H2")
	if cabana != "La Esperanza" {
		t.Fatalf("expected cabaña in H2, got %q", cabana)
	}

	// Judging columns stay blank for the jury to fill in on paper.
	for _, cell := range []string{"I2", "J2", "K2", "L2"} {
		v, _ := f.GetCellValue("Planilla de Admisión", cell)
		if v != "" {
			t.Fatalf("expected empty judging cell %s, got %q", cell, v)
		}
	}
}

func TestReportService_OptionalFieldsRenderEmpty(t *testing.T) {
	svc := NewReportService(nil)

	bare := &contract.AnimalResponse{
		RP:                    "RP-9",
		Sexo:                  contract.SexoHembra,
		RazaNombre:            "Hereford",
		ExpositorNombreCabana: "El Ombú",
	}
	data, apierr := svc.GenerateJuryReport([]*contract.AnimalResponse{bare})
	if apierr != nil {
		t.Fatalf("GenerateJuryReport returned error: %v", apierr)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("generated file does not open: %v", err)
	}
	defer f.Close()

	for _, cell := range []string{"A2", "B2", "D2", "G2"} {
		v, _ := f.GetCellValue("Planilla de Admisión", cell)
		if v != "" {
			t.Fatalf("expected empty cell %s for missing field, got %q", cell, v)
		}
	}
	sexo, _ := f.GetCellValue("Planilla de Admisión", "F2")
	if sexo != contract.SexoHembra {
		t.Fatalf("expected sexo in F2, got %q", sexo)
	}
}

func TestReportService_ArchivesCopyWhenStorageConfigured(t *testing.T) {
	fake := &fakeReportStorage{uploaded: make(chan string, 1)}
	svc := NewReportService(fake)

	if _, apierr := svc.GenerateJuryReport([]*contract.AnimalResponse{reportAnimal(1)}); apierr != nil {
		t.Fatalf("GenerateJuryReport returned error: %v", apierr)
	}

	select {
	case name := <-fake.uploaded:
		if len(name) == 0 {
			t.Fatalf("expected a timestamped archive name")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("expected an archive upload")
	}
}
