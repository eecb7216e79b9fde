// Package reportmodels — модели модуля отчётов по промковшам.
package reportmodels

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report — сменный отчёт по подготовке и разливке промковша.
// Поля сгруппированы по секциям бумажного паспорта:
// торкретирование и сборка, термоблоки, сборка, подготовка к разливке,
// разливка (начало/окончание), замечания.
type Report struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ReportID int64              `json:"reportId" bson:"reportId" index:"unique"`
	AuthorID primitive.ObjectID `json:"authorId,omitempty" bson:"authorId,omitempty"`

	// Шапка
	LadlePassportNumber string    `json:"ladlePassportNumber" bson:"ladlePassportNumber"`
	ArrivalDate         time.Time `json:"arrivalDate" bson:"arrivalDate"`
	OperatorName        string    `json:"operatorName" bson:"operatorName"`

	// Плавка
	MeltNumber         int       `json:"meltNumber" bson:"meltNumber"`
	MeltUnrs           int       `json:"meltUnrs" bson:"meltUnrs"`
	MeltLadleStability int       `json:"meltLadleStability" bson:"meltLadleStability"`
	MeltStartDateTime  time.Time `json:"meltStartDateTime" bson:"meltStartDateTime"`
	MeltEndDateTime    time.Time `json:"meltEndDateTime" bson:"meltEndDateTime"`

	// Торкретирование и сборка ПК
	Mixtures             string    `json:"mixtures" bson:"mixtures"`
	TorcretingDate       time.Time `json:"torcretingDate" bson:"torcretingDate"`
	AssemblyHandoverDate time.Time `json:"assemblyHandoverDate" bson:"assemblyHandoverDate"`

	// Расположение термоблоков
	ThermalBlockDistance   int    `json:"thermalBlockDistance" bson:"thermalBlockDistance"`
	ThermalBlockProtrusion int    `json:"thermalBlockProtrusion" bson:"thermalBlockProtrusion"`
	ThermalBlockCondition  string `json:"thermalBlockCondition" bson:"thermalBlockCondition"`

	// Сборка
	DoserCupType              string `json:"doserCupType" bson:"doserCupType"`
	DoserCupInstaller         string `json:"doserCupInstaller" bson:"doserCupInstaller"`
	StopperMonoblockType      string `json:"stopperMonoblockType" bson:"stopperMonoblockType"`
	StopperMonoblockInstaller string `json:"stopperMonoblockInstaller" bson:"stopperMonoblockInstaller"`
	Valve1                    string `json:"valve1" bson:"valve1"`
	Valve2                    string `json:"valve2" bson:"valve2"`
	Turbostop                 string `json:"turbostop" bson:"turbostop"`

	// Подготовка к разливке
	HeatingStartDateTime    time.Time `json:"heatingStartDateTime" bson:"heatingStartDateTime"`
	HeatingDuration         string    `json:"heatingDuration" bson:"heatingDuration"`
	PouringHandoverDateTime time.Time `json:"pouringHandoverDateTime" bson:"pouringHandoverDateTime"`

	// Разливка (Начало)
	Pour1MeltNumber     int       `json:"pour1MeltNumber" bson:"pour1MeltNumber"`
	Pour1Unrs           int       `json:"pour1Unrs" bson:"pour1Unrs"`
	Pour1LadleStability int       `json:"pour1LadleStability" bson:"pour1LadleStability"`
	Pour1SeriesPosition string    `json:"pour1SeriesPosition" bson:"pour1SeriesPosition"`
	Pour1StartDateTime  time.Time `json:"pour1StartDateTime" bson:"pour1StartDateTime"`
	Pour1EndDateTime    time.Time `json:"pour1EndDateTime" bson:"pour1EndDateTime"`

	// Разливка (Окончание)
	Pour2MeltNumber     int       `json:"pour2MeltNumber" bson:"pour2MeltNumber"`
	Pour2LadleStability int       `json:"pour2LadleStability" bson:"pour2LadleStability"`
	Pour2StartDateTime  time.Time `json:"pour2StartDateTime" bson:"pour2StartDateTime"`
	Pour2EndDateTime    time.Time `json:"pour2EndDateTime" bson:"pour2EndDateTime"`

	// Замечания
	TorcretingRemarks string `json:"torcretingRemarks" bson:"torcretingRemarks"`
	AssemblyRemarks   string `json:"assemblyRemarks" bson:"assemblyRemarks"`
	HeatingRemarks    string `json:"heatingRemarks" bson:"heatingRemarks"`
	PouringRemarks    string `json:"pouringRemarks" bson:"pouringRemarks"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// Counter — счётчик целочисленных идентификаторов отчётов.
type Counter struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// ReportSummary — сокращённое представление отчёта для списка.
type ReportSummary struct {
	ReportID                int64     `json:"id" bson:"reportId"`
	LadlePassportNumber     string    `json:"ladlePassportNumber" bson:"ladlePassportNumber"`
	ArrivalDate             time.Time `json:"arrivalDate" bson:"arrivalDate"`
	PouringHandoverDateTime time.Time `json:"pouringHandoverDateTime" bson:"pouringHandoverDateTime"`
	OperatorName            string    `json:"operatorName" bson:"operatorName"`
	MeltNumber              int       `json:"meltNumber" bson:"meltNumber"`
	MeltUnrs                int       `json:"meltUnrs" bson:"meltUnrs"`
	MeltStartDateTime       time.Time `json:"meltStartDateTime" bson:"meltStartDateTime"`
	MeltLadleStability      int       `json:"meltLadleStability" bson:"meltLadleStability"`
}
