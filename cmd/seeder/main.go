// cmd/seeder/main.go
//
// Writes the built-in sample drafts and calendar events into the JSON
// stores, replacing whatever is there. Development helper only.
package main

import (
	"github.com/l27labs/dca-engine/internal/config"
	"github.com/l27labs/dca-engine/internal/logging"
	"github.com/l27labs/dca-engine/internal/model"
	"github.com/l27labs/dca-engine/internal/store"
)

func main() {
	logger := logging.NewLoggerWithService("dca-seeder")
	config.LoadEnv(logger)

	fileStore := store.New(config.GetEnv("DATA_DIR", "data"), logger)

	drafts := model.SampleDrafts()
	events := model.SampleEvents()
	fileStore.Save(store.DraftsKey, drafts)
	fileStore.Save(store.EventsKey, events)

	logger.WithField("drafts", len(drafts)).WithField("events", len(events)).Info("sample data seeded")
}
