package reportsvc

import (
	"strings"
	"text/template"
	"time"

	reportmodels "ladle_passport/internal/api/report/models"
	"ladle_passport/internal/common"
)

// Форматы дат паспорта промковша.
const (
	layoutDateTime      = "02.01.06 15:04"
	layoutDateOnly      = "02.01.2006"
	layoutDateTimeSlash = "02/01/06 15:04"
)

// passportView — подготовленные данные для шаблона паспорта.
// Все даты уже отформатированы, подстановки детерминированы.
type passportView struct {
	LadlePassportNumber string
	HasMeltNumber       bool
	MeltNumber          int
	MeltUnrs            int
	MeltStart           string
	MeltLadleStability  int

	ArrivalDate string

	TorcretingDate       string
	Mixtures             string
	AssemblyHandoverDate string

	ThermalBlockDistance   int
	ThermalBlockProtrusion int
	ThermalBlockCondition  string

	DoserCupType              string
	DoserCupInstaller         string
	StopperMonoblockType      string
	StopperMonoblockInstaller string
	Valve1                    string
	Valve2                    string
	HasTurbostop              bool
	Turbostop                 string

	PouringHandover string

	HeatingStart    string
	HeatingDuration string
	OperatorName    string

	Pour1MeltNumber     int
	Pour1Unrs           int
	Pour1Start          string
	Pour1End            string
	Pour1SeriesPosition string
	Pour1LadleStability int

	Pour2MeltNumber     int
	Pour2Start          string
	Pour2End            string
	Pour2LadleStability int

	TorcretingRemarks string
	AssemblyRemarks   string
	HeatingRemarks    string
	PouringRemarks    string
}

var passportTemplate = template.Must(template.New("passport").Parse(`<!DOCTYPE html>
<html lang="ru">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Отчет по промковшу № {{.LadlePassportNumber}}</title>
    <style>
        body { font-family: 'Arial', sans-serif; margin-left: 20px; font-size: 14px; }
        .text-center { text-align: center; }
        .mb-6 { margin-bottom: 1.5rem; }
        .text-xl { font-size: 1.25rem; }
        .font-bold { font-weight: 700; }
        .uppercase { text-transform: uppercase; }
        .text-sm { font-size: 0.875rem; }
        .mt-2 { margin-top: 0.5rem; }
        .mb-3 { margin-bottom: 0.75rem; }
        .font-medium { font-weight: 500; }
        .text-base { font-size: 1rem; }
        .border-b-2 { border-bottom-width: 2px; }
        .border-black { border-color: #000; }
        .pb-1 { padding-bottom: 0.25rem; }
        .tracking-wide { letter-spacing: 0.025em; }
        .grid { display: grid; }
        .grid-cols-1 { grid-template-columns: repeat(1, minmax(0, 1fr)); }
        .md\:grid-cols-2 { grid-template-columns: repeat(2, minmax(0, 1fr)); }
        .gap-x-6 { column-gap: 1.5rem; }
        .gap-y-4 { row-gap: 1rem; }
        .font-semibold { font-weight: 600; }
        .mb-2 { margin-bottom: 0.5rem; }
        .text-xs { font-size: 0.75rem; }
        .space-y-1 > :not([hidden]) ~ :not([hidden]) { margin-top: 0.25rem; }
        .pt-2 { padding-top: 0.5rem; }
        .border-l-2 { border-left-width: 2px; }
        .border-gray-400 { border-color: #9ca3af; }
        .pl-2 { padding-left: 0.5rem; }
        .py-1 { padding-top: 0.25rem; padding-bottom: 0.25rem; }
        .space-y-3 > :not([hidden]) ~ :not([hidden]) { margin-top: 0.75rem; }
        .mt-4 { margin-top: 1rem; }
        .border-t-2 { border-top-width: 2px; }
        .pt-3 { padding-top: 0.75rem; }
        .gap-x-4 { column-gap: 1rem; }
    </style>
</head>
<body>
  <div class="font-sans text-sm p-2 bg-white">
    <div class="text-center mb-6">
      <h1 class="text-xl font-bold uppercase">
        Паспорт промковша {{.LadlePassportNumber}}
      </h1>
      {{if .HasMeltNumber}}<p class="text-sm mt-2">
        на плавку № {{.MeltNumber}} УНРС: {{.MeltUnrs}} начало:
        {{.MeltStart}}
        Стойкость ПК {{.MeltLadleStability}}
      </p>{{end}}
    </div>

    <p class="mb-3">
      <span class="font-medium">Прибытие на участок:</span>
      {{.ArrivalDate}}
    </p>

    <div>
      <h2 class="text-base font-bold uppercase mb-3 border-b-2 border-black pb-1 tracking-wide">
        ТОРКРЕТИРОВАНИЕ И СБОРКА ПК
      </h2>
      <div class="grid grid-cols-1 md:grid-cols-2 gap-x-6 gap-y-4">
        <div>
          <h3 class="font-semibold uppercase mb-2 text-sm">
            ТОРКРЕТИРОВАНИЕ
          </h3>
          <div class="space-y-1 text-xs">
            <p>
              <span class="font-medium">Дата:</span>
              {{.TorcretingDate}}
            </p>
            <p>
              <span class="font-medium">Смеси(наимен,партия):</span>
              {{.Mixtures}}
            </p>
            <p>
              <span class="font-medium">Отдано на сборку:</span>
              {{.AssemblyHandoverDate}}
            </p>
            <h4 class="font-semibold uppercase pt-2 pb-1 text-sm">
              РАСПОЛОЖЕНИЕ ТЕРМОБЛОКОВ
            </h4>
            <p>
              <span class="font-medium">Расстояние от днища(мм):</span>
              {{.ThermalBlockDistance}}
            </p>
            <p>
              <span class="font-medium">Длина выступ.части(мм):</span>
              {{.ThermalBlockProtrusion}}
            </p>
            <p>
              <span class="font-medium">Состояние термоблока:</span>
              {{.ThermalBlockCondition}}
            </p>
          </div>
        </div>

        <div>
          <h3 class="font-semibold uppercase mb-2 text-sm">СБОРКА</h3>
          <div class="space-y-1 text-xs">
            <p>
              <span class="font-medium">Стаканы-дозаторы:</span>
              {{.DoserCupType}}
            </p>
            <p>
              <span class="font-medium">Установщик стаканов:</span>
              {{.DoserCupInstaller}}
            </p>
            <p>
              <span class="font-medium">Стопор-моноблок:</span>
              {{.StopperMonoblockType}}
            </p>
            <p>
              <span class="font-medium">Установщик стопора:</span>
              {{.StopperMonoblockInstaller}}
            </p>
            <p>
              <span class="font-medium">Затвор №1:</span> {{.Valve1}}
            </p>
            <p>
              <span class="font-medium">Затвор №2:</span> {{.Valve2}}
            </p>
            {{if .HasTurbostop}}<p>
              <span class="font-medium">Турбостоп:</span>
              {{.Turbostop}}
            </p>{{end}}
          </div>
        </div>
      </div>
    </div>

    <div>
      <h2 class="text-base font-bold uppercase mb-2 border-b-2 border-black pb-1 tracking-wide">
        РАЗЛИВКА
      </h2>
      <p class="mb-3 text-xs">
        <span class="font-medium">Отдано на разливку:</span>
        {{.PouringHandover}}
      </p>

      <div class="grid grid-cols-1 md:grid-cols-2 gap-x-6 gap-y-4">
        <div>
          <h3 class="font-semibold uppercase mb-2 text-sm">
            ПОДГОТОВКА К РАЗЛИВКЕ
          </h3>
          <div class="space-y-1 text-xs">
            <p>
              <span class="font-medium">Постановка на разогрев:</span>
              {{.HeatingStart}}
            </p>
            <p>
              <span class="font-medium">Длительность разогрева:</span>
              {{.HeatingDuration}}
            </p>
            <p>
              <span class="font-medium">Оператор ГПУ:</span>
              {{.OperatorName}}
            </p>
          </div>
        </div>

        <div>
          <h3 class="font-semibold uppercase mb-2 mt-4 text-sm">
            РАЗЛИВКА (Начало)
          </h3>
          <div class="space-y-3 text-xs">
            <div class="border-l-2 border-gray-400 pl-2 py-1">
              <p>
                <span class="font-medium">
                  Плавка № {{.Pour1MeltNumber}}
                </span>
                УНРС: {{.Pour1Unrs}}
              </p>
              <p>
                <span class="font-medium">Начало:</span>
                {{.Pour1Start}}
              </p>
              <p>
                <span class="font-medium">Окончание:</span>
                {{.Pour1End}}
              </p>
              <p>
                <span class="font-medium">№ пл.в серии:</span>
                {{.Pour1SeriesPosition}}
              </p>
              <p>
                <span class="font-medium">Стойкость ПК:</span>
                {{.Pour1LadleStability}}
              </p>
            </div>
          </div>

          <h3 class="font-semibold uppercase mb-2 mt-4 text-sm">
            РАЗЛИВКА (Окончание)
          </h3>
          <div class="space-y-3 text-xs">
            <div class="border-l-2 border-gray-400 pl-2 py-1">
              <p>
                <span class="font-medium">
                  Плавка № {{.Pour2MeltNumber}}
                </span>
              </p>
              <p>
                <span class="font-medium">Разлито (Начало):</span>
                {{.Pour2Start}}
              </p>
              <p>
                <span class="font-medium">Окончание:</span>
                {{.Pour2End}}
              </p>
              <p>
                <span class="font-medium">Стойкость ПК:</span>
                {{.Pour2LadleStability}}
              </p>
            </div>
          </div>
        </div>
      </div>
    </div>

    <div class="border-t-2 border-black pt-3">
      <h2 class="text-base font-bold uppercase mb-2 tracking-wide">
        ЗАМЕЧАНИЯ
      </h2>
      <div class="grid grid-cols-1 md:grid-cols-2 gap-x-4 text-xs">
        <p>
          <span class="font-medium">По торкретированию:</span>
          {{.TorcretingRemarks}}
        </p>
        <p>
          <span class="font-medium">По сборке:</span>
          {{.AssemblyRemarks}}
        </p>
        <p>
          <span class="font-medium">По разогреву:</span>
          {{.HeatingRemarks}}
        </p>
        <p>
          <span class="font-medium">По разливке:</span>
          {{.PouringRemarks}}
        </p>
      </div>
    </div>
  </div>
</body>
</html>
`))

// orDefault возвращает value либо подстановку, если value пуста.
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// BuildPassportHTML формирует HTML паспорта промковша.
// Результат детерминирован: один и тот же отчёт даёт байт-в-байт
// одинаковый документ.
func BuildPassportHTML(report reportmodels.Report, loc *time.Location) (string, error) {
	if loc == nil {
		loc = time.Local
	}

	formatDateTime := func(t time.Time) string { return t.In(loc).Format(layoutDateTime) }
	formatDateOnly := func(t time.Time) string { return t.In(loc).Format(layoutDateOnly) }
	formatSlash := func(t time.Time) string { return t.In(loc).Format(layoutDateTimeSlash) }

	view := passportView{
		LadlePassportNumber: report.LadlePassportNumber,
		HasMeltNumber:       report.MeltNumber != 0,
		MeltNumber:          report.MeltNumber,
		MeltUnrs:            report.MeltUnrs,
		MeltStart:           formatSlash(report.MeltStartDateTime),
		MeltLadleStability:  report.MeltLadleStability,

		ArrivalDate: formatDateTime(report.ArrivalDate),

		TorcretingDate:       formatDateOnly(report.TorcretingDate),
		Mixtures:             report.Mixtures,
		AssemblyHandoverDate: formatDateOnly(report.AssemblyHandoverDate),

		ThermalBlockDistance:   report.ThermalBlockDistance,
		ThermalBlockProtrusion: report.ThermalBlockProtrusion,
		ThermalBlockCondition:  orDefault(report.ThermalBlockCondition, "нет данных"),

		DoserCupType:              report.DoserCupType,
		DoserCupInstaller:         report.DoserCupInstaller,
		StopperMonoblockType:      report.StopperMonoblockType,
		StopperMonoblockInstaller: report.StopperMonoblockInstaller,
		Valve1:                    report.Valve1,
		Valve2:                    report.Valve2,
		HasTurbostop:              report.Turbostop != "",
		Turbostop:                 report.Turbostop,

		PouringHandover: formatSlash(report.PouringHandoverDateTime),

		HeatingStart:    formatDateTime(report.HeatingStartDateTime),
		HeatingDuration: report.HeatingDuration,
		OperatorName:    report.OperatorName,

		Pour1MeltNumber:     report.Pour1MeltNumber,
		Pour1Unrs:           report.Pour1Unrs,
		Pour1Start:          formatSlash(report.Pour1StartDateTime),
		Pour1End:            formatSlash(report.Pour1EndDateTime),
		Pour1SeriesPosition: report.Pour1SeriesPosition,
		Pour1LadleStability: report.Pour1LadleStability,

		Pour2MeltNumber:     report.Pour2MeltNumber,
		Pour2Start:          formatSlash(report.Pour2StartDateTime),
		Pour2End:            formatSlash(report.Pour2EndDateTime),
		Pour2LadleStability: report.Pour2LadleStability,

		TorcretingRemarks: orDefault(report.TorcretingRemarks, "нет"),
		AssemblyRemarks:   orDefault(report.AssemblyRemarks, "нет"),
		HeatingRemarks:    orDefault(report.HeatingRemarks, "нет"),
		PouringRemarks:    orDefault(report.PouringRemarks, "нет"),
	}

	var builder strings.Builder
	if err := passportTemplate.Execute(&builder, view); err != nil {
		return "", common.NewError(
			common.ErrCodeRender,
			"Не удалось сформировать документ паспорта",
			common.StatusInternalServerError,
			err.Error(),
		)
	}

	return builder.String(), nil
}
