package reportsvc

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"ladle_passport/internal/common"
	"ladle_passport/internal/logger"
)

// PDFRenderer печатает HTML-документ в PDF.
type PDFRenderer interface {
	PDF(html string) ([]byte, error)
}

var passportNumberSanitizer = regexp.MustCompile(`[^a-zA-Z0-9\-_]`)

// SanitizePassportNumber убирает из номера паспорта все символы,
// кроме латиницы, цифр, дефиса и подчёркивания, затем заменяет '№' на 'N'.
func SanitizePassportNumber(number string) string {
	cleaned := passportNumberSanitizer.ReplaceAllString(number, "")
	return strings.ReplaceAll(cleaned, "№", "N")
}

// PDFFileName строит имя файла PDF из номера паспорта промковша.
func PDFFileName(passportNumber string) string {
	return "report-" + SanitizePassportNumber(passportNumber) + ".pdf"
}

// ExportPDF печатает отчёт в PDF и возвращает содержимое и имя файла.
func (s *ReportService) ExportPDF(ctx context.Context, reportID int64, renderer PDFRenderer) ([]byte, string, error) {
	report, err := s.FindByReportID(ctx, reportID)
	if err != nil {
		return nil, "", err
	}

	html, err := BuildPassportHTML(report, s.location)
	if err != nil {
		return nil, "", err
	}

	data, err := renderer.PDF(html)
	if err != nil {
		logger.WithFields(map[string]interface{}{"report_id": reportID}).WithError(err).Error("Генерация PDF не удалась")
		var appErr *common.Error
		if errors.As(err, &appErr) {
			return nil, "", err
		}
		return nil, "", common.ErrRender
	}

	return data, PDFFileName(report.LadlePassportNumber), nil
}
