package contacts

import (
	"reflect"
	"testing"

	"github.com/dgallion1/onboard/internal/domain"
	"github.com/xuri/excelize/v2"
)

func TestParse_CSV(t *testing.T) {
	input := "Full Name,Job Title,Dept,E-mail,Phone Number,Notes\n" +
		"Ada Obi, HR Business Partner ,People,ada@example.com,+234 800 000,ignored\n" +
		",No name,,,,\n" +
		"Tunde Bello,IT Support\n"

	got, err := Parse([]byte(input), "contacts.CSV")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []domain.Contact{
		{Name: "Ada Obi", Title: "HR Business Partner", Department: "People", Email: "ada@example.com", Phone: "+234 800 000"},
		{Name: "Tunde Bello", Title: "IT Support"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestParse_EmptyCSV(t *testing.T) {
	got, err := Parse(nil, "empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", got)
	}
}

func TestParse_XLSX(t *testing.T) {
	f := excelize.NewFile()
	rows := [][]string{
		{"Name", "Role", "Location"},
		{"Chidi Eze", "Onboarding Buddy", "Lagos"},
	}
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write xlsx: %v", err)
	}

	got, err := Parse(buf.Bytes(), "contacts.xlsx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []domain.Contact{{Name: "Chidi Eze", Title: "Onboarding Buddy", Location: "Lagos"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := Parse([]byte("x"), "contacts.txt"); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if _, err := Parse([]byte("not a workbook"), "contacts.xlsx"); err == nil {
		t.Error("expected error for corrupt workbook")
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported("a.CSV") || !IsSupported("b.xlsx") || IsSupported("c.xls") {
		t.Error("unexpected IsSupported result")
	}
}
