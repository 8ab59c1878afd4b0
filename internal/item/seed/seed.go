// Package seed loads the event's item catalogue into a store.
package seed

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"trade-custody/internal/item"
	"trade-custody/internal/item/repository"
)

type seedItem struct {
	ID     int64  `mapstructure:"id"`
	Title  string `mapstructure:"title"`
	Status string `mapstructure:"status"`
}

// LoadFile reads the items list from a YAML or JSON file and upserts each
// entry. It returns the number of items written.
func LoadFile(ctx context.Context, repo repository.ItemRepository, path string) (int, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var items []seedItem
	if err := v.UnmarshalKey("items", &items); err != nil {
		return 0, fmt.Errorf("decode seed file: %w", err)
	}

	for i, it := range items {
		status := item.Status(it.Status)
		if status == "" {
			status = item.StatusPending
		}
		if it.ID <= 0 {
			return i, fmt.Errorf("seed item %d: id must be positive", i)
		}
		if !status.IsValid() {
			return i, fmt.Errorf("seed item %d: unknown status %q", it.ID, it.Status)
		}
		if err := repo.UpsertItem(ctx, repository.UpsertItemOptions{
			ID:     it.ID,
			Title:  it.Title,
			Status: status,
		}); err != nil {
			return i, fmt.Errorf("seed item %d: %w", it.ID, err)
		}
	}
	return len(items), nil
}
