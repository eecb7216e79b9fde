// Package reportsvc — бизнес-логика модуля отчётов по промковшам.
package reportsvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "ladle_passport/internal/api/base/service"
	reportdto "ladle_passport/internal/api/report/dto"
	reportmodels "ladle_passport/internal/api/report/models"
	"ladle_passport/internal/common"
	"ladle_passport/internal/global"
	"ladle_passport/internal/logger"
)

// Имя документа-счётчика для целочисленных номеров отчётов.
const reportCounterID = "reportId"

// ReportService — сервис отчётов по промковшам.
type ReportService struct {
	*basesvc.BaseServiceMongoImpl[reportmodels.Report]
	counters *mongo.Collection
	location *time.Location
}

// NewReportService создаёт новый ReportService.
func NewReportService() (*ReportService, error) {
	reportsCol, exists := global.RegistryCollections.Get(global.MongoDB_ColNames.Reports)
	if !exists {
		return nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			"Коллекция отчётов не зарегистрирована",
			common.StatusInternalServerError,
			nil,
		)
	}
	countersCol, exists := global.RegistryCollections.Get(global.MongoDB_ColNames.Counters)
	if !exists {
		return nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			"Коллекция счётчиков не зарегистрирована",
			common.StatusInternalServerError,
			nil,
		)
	}

	location := time.Local
	if global.MongoDB_ServerConfig != nil && global.MongoDB_ServerConfig.TimeZone != "" {
		loc, err := time.LoadLocation(global.MongoDB_ServerConfig.TimeZone)
		if err != nil {
			logger.GetAppLogger().WithError(err).Warnf("Не удалось загрузить часовой пояс %q, используется локальный", global.MongoDB_ServerConfig.TimeZone)
		} else {
			location = loc
		}
	}

	return &ReportService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[reportmodels.Report](reportsCol),
		counters:             countersCol,
		location:             location,
	}, nil
}

// Location возвращает часовой пояс сервиса (для форматирования дат).
func (s *ReportService) Location() *time.Location {
	return s.location
}

// nextReportID атомарно выдаёт следующий номер отчёта.
func (s *ReportService) nextReportID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter reportmodels.Counter
	err := s.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": reportCounterID},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}

	return counter.Seq, nil
}

// Create создаёт новый отчёт с очередным номером и автором.
func (s *ReportService) Create(ctx context.Context, input *reportdto.ReportCreateInput, authorID primitive.ObjectID) (reportmodels.Report, error) {
	var zero reportmodels.Report

	reportID, err := s.nextReportID(ctx)
	if err != nil {
		return zero, err
	}

	report := reportmodels.Report{
		ReportID: reportID,
		AuthorID: authorID,

		LadlePassportNumber: input.LadlePassportNumber,
		ArrivalDate:         input.ArrivalDate,
		OperatorName:        input.OperatorName,

		MeltNumber:         input.MeltNumber,
		MeltUnrs:           input.MeltUnrs,
		MeltLadleStability: input.MeltLadleStability,
		MeltStartDateTime:  input.MeltStartDateTime,
		MeltEndDateTime:    input.MeltEndDateTime,

		Mixtures:             input.Mixtures,
		TorcretingDate:       input.TorcretingDate,
		AssemblyHandoverDate: input.AssemblyHandoverDate,

		ThermalBlockDistance:   input.ThermalBlockDistance,
		ThermalBlockProtrusion: input.ThermalBlockProtrusion,
		ThermalBlockCondition:  input.ThermalBlockCondition,

		DoserCupType:              input.DoserCupType,
		DoserCupInstaller:         input.DoserCupInstaller,
		StopperMonoblockType:      input.StopperMonoblockType,
		StopperMonoblockInstaller: input.StopperMonoblockInstaller,
		Valve1:                    input.Valve1,
		Valve2:                    input.Valve2,
		Turbostop:                 input.Turbostop,

		HeatingStartDateTime:    input.HeatingStartDateTime,
		HeatingDuration:         input.HeatingDuration,
		PouringHandoverDateTime: input.PouringHandoverDateTime,

		Pour1MeltNumber:     input.Pour1MeltNumber,
		Pour1Unrs:           input.Pour1Unrs,
		Pour1LadleStability: input.Pour1LadleStability,
		Pour1SeriesPosition: input.Pour1SeriesPosition,
		Pour1StartDateTime:  input.Pour1StartDateTime,
		Pour1EndDateTime:    input.Pour1EndDateTime,

		Pour2MeltNumber:     input.Pour2MeltNumber,
		Pour2LadleStability: input.Pour2LadleStability,
		Pour2StartDateTime:  input.Pour2StartDateTime,
		Pour2EndDateTime:    input.Pour2EndDateTime,

		TorcretingRemarks: input.TorcretingRemarks,
		AssemblyRemarks:   input.AssemblyRemarks,
		HeatingRemarks:    input.HeatingRemarks,
		PouringRemarks:    input.PouringRemarks,
	}

	return s.InsertOne(ctx, report)
}

// FindByReportID ищет отчёт по целочисленному номеру.
func (s *ReportService) FindByReportID(ctx context.Context, reportID int64) (reportmodels.Report, error) {
	return s.FindOne(ctx, bson.M{"reportId": reportID}, nil)
}

// DeleteByReportID удаляет отчёт по целочисленному номеру
// и возвращает удалённый документ.
func (s *ReportService) DeleteByReportID(ctx context.Context, reportID int64) (reportmodels.Report, error) {
	return s.FindOneAndDelete(ctx, bson.M{"reportId": reportID})
}

// List возвращает страницу сокращённых отчётов и общее число совпадений.
func (s *ReportService) List(ctx context.Context, params ListParams) ([]reportmodels.ReportSummary, int64, error) {
	filter := BuildFilter(params, time.Now().In(s.location))

	total, err := s.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSkip(params.Offset).
		SetLimit(params.Limit).
		SetSort(bson.D{{Key: params.SortBy, Value: params.sortValue()}}).
		SetProjection(summaryProjection())

	cursor, err := s.Collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	summaries := []reportmodels.ReportSummary{}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, 0, common.ConvertMongoError(err)
	}

	return summaries, total, nil
}

// summaryProjection ограничивает выборку полями списка.
func summaryProjection() bson.D {
	return bson.D{
		{Key: "reportId", Value: 1},
		{Key: "ladlePassportNumber", Value: 1},
		{Key: "arrivalDate", Value: 1},
		{Key: "pouringHandoverDateTime", Value: 1},
		{Key: "operatorName", Value: 1},
		{Key: "meltNumber", Value: 1},
		{Key: "meltUnrs", Value: 1},
		{Key: "meltStartDateTime", Value: 1},
		{Key: "meltLadleStability", Value: 1},
	}
}
