package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tubevault/tubevault/catalog"
	"github.com/tubevault/tubevault/storage"
	"github.com/tubevault/tubevault/video"
	"github.com/tubevault/tubevault/where"
)

// savedRecords reads the saved catalog without touching the network.
func savedRecords() []*video.Record {
	snapshot, ok := storage.New[catalog.Snapshot](where.Catalog(), 0).Load().Get()
	if !ok {
		return nil
	}
	return snapshot.Videos
}

func completionCategories(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return video.Categories(savedRecords()), cobra.ShellCompDirectiveNoFileComp
}

func completionVideoIDs(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	return lo.Map(savedRecords(), func(r *video.Record, _ int) string {
		return r.ID + "\t" + r.Title
	}), cobra.ShellCompDirectiveNoFileComp
}
