// Package reportdto — входные структуры модуля отчётов.
package reportdto

import (
	"time"
)

// ReportCreateInput — данные создания отчёта по промковшу.
// Даты принимаются в формате RFC3339.
type ReportCreateInput struct {
	LadlePassportNumber string    `json:"ladlePassportNumber" validate:"required"`
	ArrivalDate         time.Time `json:"arrivalDate" validate:"required"`
	OperatorName        string    `json:"operatorName" validate:"required"`

	MeltNumber         int       `json:"meltNumber"`
	MeltUnrs           int       `json:"meltUnrs"`
	MeltLadleStability int       `json:"meltLadleStability"`
	MeltStartDateTime  time.Time `json:"meltStartDateTime"`
	MeltEndDateTime    time.Time `json:"meltEndDateTime"`

	Mixtures             string    `json:"mixtures"`
	TorcretingDate       time.Time `json:"torcretingDate"`
	AssemblyHandoverDate time.Time `json:"assemblyHandoverDate"`

	ThermalBlockDistance   int    `json:"thermalBlockDistance"`
	ThermalBlockProtrusion int    `json:"thermalBlockProtrusion"`
	ThermalBlockCondition  string `json:"thermalBlockCondition"`

	DoserCupType              string `json:"doserCupType"`
	DoserCupInstaller         string `json:"doserCupInstaller"`
	StopperMonoblockType      string `json:"stopperMonoblockType"`
	StopperMonoblockInstaller string `json:"stopperMonoblockInstaller"`
	Valve1                    string `json:"valve1"`
	Valve2                    string `json:"valve2"`
	Turbostop                 string `json:"turbostop"`

	HeatingStartDateTime    time.Time `json:"heatingStartDateTime"`
	HeatingDuration         string    `json:"heatingDuration"`
	PouringHandoverDateTime time.Time `json:"pouringHandoverDateTime"`

	Pour1MeltNumber     int       `json:"pour1MeltNumber"`
	Pour1Unrs           int       `json:"pour1Unrs"`
	Pour1LadleStability int       `json:"pour1LadleStability"`
	Pour1SeriesPosition string    `json:"pour1SeriesPosition"`
	Pour1StartDateTime  time.Time `json:"pour1StartDateTime"`
	Pour1EndDateTime    time.Time `json:"pour1EndDateTime"`

	Pour2MeltNumber     int       `json:"pour2MeltNumber"`
	Pour2LadleStability int       `json:"pour2LadleStability"`
	Pour2StartDateTime  time.Time `json:"pour2StartDateTime"`
	Pour2EndDateTime    time.Time `json:"pour2EndDateTime"`

	TorcretingRemarks string `json:"torcretingRemarks"`
	AssemblyRemarks   string `json:"assemblyRemarks"`
	HeatingRemarks    string `json:"heatingRemarks"`
	PouringRemarks    string `json:"pouringRemarks"`
}
