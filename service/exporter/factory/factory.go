package factory

import (
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/service/exporter"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/service/exporter/csv"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/service/exporter/xlsx"
)

type LeaderboardExporterType string

const (
	CSVLeaderboardExporter  LeaderboardExporterType = "csv"
	XLSXLeaderboardExporter LeaderboardExporterType = "xlsx"
)

type LeaderboardExporterFactory struct {
	factory map[LeaderboardExporterType]exporter.LeaderboardExporter
	log     loggerv2.Logger
}

func NewLeaderboardExporterFactory(log loggerv2.Logger) *LeaderboardExporterFactory {
	return &LeaderboardExporterFactory{
		factory: map[LeaderboardExporterType]exporter.LeaderboardExporter{
			CSVLeaderboardExporter:  csv.NewCSVLeaderboardExporter(log),
			XLSXLeaderboardExporter: xlsx.NewXLSXLeaderboardExporter(log),
		},
		log: log,
	}
}

func (f *LeaderboardExporterFactory) GetLeaderboardExporter(exporterType LeaderboardExporterType) exporter.LeaderboardExporter {
	if exp, exists := f.factory[exporterType]; exists {
		return exp
	}
	return nil
}
