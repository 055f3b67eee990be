package cmd

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/guregu/null/v6"
	"github.com/spf13/cobra"

	"github.com/beanbocchi/ossclient/internal/model"
	"github.com/beanbocchi/ossclient/pkg/fileutil"
	"github.com/beanbocchi/ossclient/pkg/response"
	"github.com/beanbocchi/ossclient/pkg/validator"
)

type listEntry struct {
	Key  string        `json:"key"`
	Kind fileutil.Kind `json:"kind"`
	URL  string        `json:"url"`
}

func newListCommand(a *app) *cobra.Command {
	var (
		prefix  string
		page    int32
		limit   int32
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List objects, optionally under a prefix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := model.PaginationParams{Limit: limit}
			if page > 0 {
				params.Page = null.Int32From(page)
			}
			if err := validator.Validate(&params); err != nil {
				return err
			}

			c, err := a.client()
			if err != nil {
				return err
			}

			var urls []string
			if prefix == "" {
				urls, err = c.ListAll(cmd.Context())
			} else {
				urls, err = c.ListByPrefix(cmd.Context(), prefix)
			}
			if err != nil {
				return err
			}

			entries := make([]listEntry, len(urls))
			for i, u := range urls {
				key := fileutil.ExtractObjectKey(u)
				entries[i] = listEntry{Key: key, Kind: fileutil.Classify(key), URL: u}
			}
			result := model.Paginate(entries, params)

			out := cmd.OutOrStdout()
			if jsonOut {
				body, err := sonic.ConfigStd.MarshalIndent(response.PaginationResponse[listEntry]{
					Data: result.Data,
					PageMeta: response.PageMeta{
						Limit:    result.PageParams.GetLimit(),
						Total:    result.Total,
						Page:     result.PageParams.Page,
						NextPage: result.NextPage(),
					},
				}, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(body))
				return nil
			}

			for _, e := range result.Data {
				fmt.Fprintf(out, "%-6s %s\n", e.Kind, e.Key)
			}
			if next := result.NextPage(); next.Valid {
				fmt.Fprintf(out, "-- page %d, %d objects total, next: --page %d\n",
					result.PageParams.Page.Int32, result.Total.Int64, next.Int32)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "only list keys starting with prefix")
	cmd.Flags().Int32Var(&page, "page", 1, "page number")
	cmd.Flags().Int32Var(&limit, "limit", 50, "objects per page (max 1000)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print JSON")
	return cmd
}
