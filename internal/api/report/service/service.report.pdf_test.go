package reportsvc

import (
	"testing"
)

func TestSanitizePassportNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"№ 29 - 27 Тн", "29-27"},
		{"№ 9 - 55 Тн", "9-55"},
		{"№ 12 - 50 Тн", "12-50"},
		{"ABC_123", "ABC_123"},
		{"", ""},
		{"№№№", ""},
		{"ковш/9\\55", "955"},
	}

	for _, tc := range cases {
		got := SanitizePassportNumber(tc.in)
		if got != tc.want {
			t.Errorf("SanitizePassportNumber(%q): ожидалось %q, получено %q", tc.in, tc.want, got)
		}
	}
}

func TestPDFFileName(t *testing.T) {
	got := PDFFileName("№ 29 - 27 Тн")
	want := "report-29-27.pdf"
	if got != want {
		t.Errorf("имя файла: ожидалось %q, получено %q", want, got)
	}

	if PDFFileName("") != "report-.pdf" {
		t.Errorf("пустой номер должен давать report-.pdf, получено %q", PDFFileName(""))
	}
}
