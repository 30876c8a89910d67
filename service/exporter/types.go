package exporter

import (
	"context"
	"io"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
)

type LeaderboardExporter interface {
	Export(ctx context.Context, leaderboard *model.GetLeaderboardResponse, writer io.Writer) error
}
