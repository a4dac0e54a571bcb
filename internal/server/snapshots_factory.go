package server

import (
	"cricket-bingo-service/internal/config"
	"cricket-bingo-service/internal/snapshots"
)

type snapshotComponents struct {
	store  snapshots.Store
	writer *snapshots.Writer
}

func buildSnapshots(cfg config.Config) snapshotComponents {
	basePath := cfg.Snapshots.Dir
	return snapshotComponents{
		store:  snapshots.NewFSStore(basePath),
		writer: snapshots.NewWriter(basePath, cfg.Snapshots.RetentionDays),
	}
}
