package reportsvc

import (
	"strings"
	"testing"
	"time"

	reportmodels "ladle_passport/internal/api/report/models"
)

// fullReport возвращает полностью заполненный отчёт с фиксированными датами.
func fullReport() reportmodels.Report {
	return reportmodels.Report{
		ReportID:            42,
		LadlePassportNumber: "№ 29 - 27 Тн",
		ArrivalDate:         time.Date(2026, time.March, 5, 8, 15, 0, 0, time.UTC),
		OperatorName:        "Иванов И.И.",

		MeltNumber:         78342,
		MeltUnrs:           2,
		MeltLadleStability: 15,
		MeltStartDateTime:  time.Date(2026, time.March, 5, 21, 40, 0, 0, time.UTC),
		MeltEndDateTime:    time.Date(2026, time.March, 6, 1, 5, 0, 0, time.UTC),

		Mixtures:             "Dalgun, партия 117",
		TorcretingDate:       time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
		AssemblyHandoverDate: time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),

		ThermalBlockDistance:   120,
		ThermalBlockProtrusion: 40,
		ThermalBlockCondition:  "удовлетворительное",

		DoserCupType:              "Пуянг",
		DoserCupInstaller:         "Петров П.П.",
		StopperMonoblockType:      "IFGL",
		StopperMonoblockInstaller: "Сидоров С.С.",
		Valve1:                    "№ 14",
		Valve2:                    "№ 7",
		Turbostop:                 "АО «БКО»",

		HeatingStartDateTime:    time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC),
		HeatingDuration:         "8 часов",
		PouringHandoverDateTime: time.Date(2026, time.March, 5, 20, 30, 0, 0, time.UTC),

		Pour1MeltNumber:     78342,
		Pour1Unrs:           2,
		Pour1LadleStability: 15,
		Pour1SeriesPosition: "3",
		Pour1StartDateTime:  time.Date(2026, time.March, 5, 21, 40, 0, 0, time.UTC),
		Pour1EndDateTime:    time.Date(2026, time.March, 5, 23, 10, 0, 0, time.UTC),

		Pour2MeltNumber:     78349,
		Pour2LadleStability: 16,
		Pour2StartDateTime:  time.Date(2026, time.March, 6, 4, 0, 0, 0, time.UTC),
		Pour2EndDateTime:    time.Date(2026, time.March, 6, 5, 30, 0, 0, time.UTC),

		TorcretingRemarks: "без замечаний",
	}
}

func TestBuildPassportHTMLDeterministic(t *testing.T) {
	report := fullReport()

	first, err := BuildPassportHTML(report, time.UTC)
	if err != nil {
		t.Fatalf("формирование документа не удалось: %v", err)
	}
	second, err := BuildPassportHTML(report, time.UTC)
	if err != nil {
		t.Fatalf("повторное формирование документа не удалось: %v", err)
	}

	if first != second {
		t.Error("один и тот же отчёт должен давать байт-в-байт одинаковый документ")
	}
}

func TestBuildPassportHTMLHeader(t *testing.T) {
	html, err := BuildPassportHTML(fullReport(), time.UTC)
	if err != nil {
		t.Fatalf("формирование документа не удалось: %v", err)
	}

	if !strings.Contains(html, "Паспорт промковша № 29 - 27 Тн") {
		t.Error("в заголовке должен быть номер паспорта")
	}
	if !strings.Contains(html, "Отчет по промковшу № № 29 - 27 Тн") {
		t.Error("в title должен подставляться номер паспорта")
	}
	if !strings.Contains(html, "на плавку № 78342 УНРС: 2") {
		t.Error("при заполненном номере плавки должна быть строка о плавке")
	}
	if !strings.Contains(html, `<html lang="ru">`) {
		t.Error("документ должен быть с lang=ru")
	}
}

func TestBuildPassportHTMLNoMeltBlock(t *testing.T) {
	report := fullReport()
	report.MeltNumber = 0

	html, err := BuildPassportHTML(report, time.UTC)
	if err != nil {
		t.Fatalf("формирование документа не удалось: %v", err)
	}

	if strings.Contains(html, "на плавку №") {
		t.Error("без номера плавки строки о плавке быть не должно")
	}
}

func TestBuildPassportHTMLTurbostop(t *testing.T) {
	withTurbostop, err := BuildPassportHTML(fullReport(), time.UTC)
	if err != nil {
		t.Fatalf("формирование документа не удалось: %v", err)
	}
	if !strings.Contains(withTurbostop, "Турбостоп:") {
		t.Error("при заполненном турбостопе должна быть строка про него")
	}
	if !strings.Contains(withTurbostop, "АО «БКО»") {
		t.Error("значение турбостопа должно попадать в документ")
	}

	report := fullReport()
	report.Turbostop = ""
	withoutTurbostop, err := BuildPassportHTML(report, time.UTC)
	if err != nil {
		t.Fatalf("формирование документа не удалось: %v", err)
	}
	if strings.Contains(withoutTurbostop, "Турбостоп:") {
		t.Error("при пустом турбостопе строки быть не должно")
	}
}

func TestBuildPassportHTMLPlaceholders(t *testing.T) {
	report := fullReport()
	report.ThermalBlockCondition = ""
	report.TorcretingRemarks = ""
	report.AssemblyRemarks = ""
	report.HeatingRemarks = ""
	report.PouringRemarks = ""

	html, err := BuildPassportHTML(report, time.UTC)
	if err != nil {
		t.Fatalf("формирование документа не удалось: %v", err)
	}

	if !strings.Contains(html, "нет данных") {
		t.Error("пустое состояние термоблока должно заменяться на «нет данных»")
	}
	for _, label := range []string{"По торкретированию:", "По сборке:", "По разогреву:", "По разливке:"} {
		idx := strings.Index(html, label)
		if idx < 0 {
			t.Errorf("в документе нет строки замечаний %q", label)
			continue
		}
		tail := html[idx:]
		if !strings.Contains(tail[:strings.Index(tail, "</p>")], "нет") {
			t.Errorf("пустое замечание %q должно заменяться на «нет»", label)
		}
	}
}

func TestBuildPassportHTMLDateFormats(t *testing.T) {
	html, err := BuildPassportHTML(fullReport(), time.UTC)
	if err != nil {
		t.Fatalf("формирование документа не удалось: %v", err)
	}

	// Прибытие и разогрев: dd.MM.yy HH:mm
	if !strings.Contains(html, "05.03.26 08:15") {
		t.Error("дата прибытия должна быть в формате dd.MM.yy HH:mm")
	}
	if !strings.Contains(html, "05.03.26 12:00") {
		t.Error("постановка на разогрев должна быть в формате dd.MM.yy HH:mm")
	}

	// Торкретирование и сборка: dd.MM.yyyy
	if !strings.Contains(html, "04.03.2026") {
		t.Error("дата торкретирования должна быть в формате dd.MM.yyyy")
	}

	// Плавка и разливка: dd/MM/yy HH:mm
	if !strings.Contains(html, "05/03/26 21:40") {
		t.Error("начало плавки должно быть в формате dd/MM/yy HH:mm")
	}
	if !strings.Contains(html, "05/03/26 20:30") {
		t.Error("передача на разливку должна быть в формате dd/MM/yy HH:mm")
	}
	if !strings.Contains(html, "06/03/26 04:00") {
		t.Error("начало второй разливки должно быть в формате dd/MM/yy HH:mm")
	}
}

func TestBuildPassportHTMLTimezoneConversion(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)
	html, err := BuildPassportHTML(fullReport(), msk)
	if err != nil {
		t.Fatalf("формирование документа не удалось: %v", err)
	}

	// 08:15 UTC -> 11:15 MSK
	if !strings.Contains(html, "05.03.26 11:15") {
		t.Error("даты должны переводиться в часовой пояс сервиса")
	}
}
