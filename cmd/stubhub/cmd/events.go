package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/stubhub/pkg/stubhub"
)

func eventsCmd() *cobra.Command {
	eventsRoot := &cobra.Command{
		Use:   "events",
		Short: "Search the catalog and inspect events",
	}

	eventsRoot.AddCommand(
		eventsSearchCmd(),
		eventsMetadataCmd(),
		eventsIntegratedCmd(),
	)

	return eventsRoot
}

func eventsSearchCmd() *cobra.Command {
	var (
		s        stubhub.EventSearch
		from, to string
	)

	cmd := &cobra.Command{
		Use:     "search <query>",
		Short:   "Search active events",
		Example: `  stubhub events search "home team" --from 2025-04-01 --to 2025-04-30`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s.Query = args[0]

			var err error
			if s.From, err = parseDate(from); err != nil {
				return err
			}
			if s.To, err = parseDate(to); err != nil {
				return err
			}

			ctx := cmd.Context()
			return withSession(ctx, func(a *app) error {
				page, err := a.client.SearchEvents(ctx, s)
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(page)
				}
				if len(page.Events) == 0 {
					fmt.Println("No events found.")
					return nil
				}
				fmt.Printf("Showing %d of %d events\n\n", len(page.Events), page.NumFound)
				return printEventsTable(page.Events)
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first event day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last event day (YYYY-MM-DD)")
	cmd.Flags().IntVar(&s.Start, "start", 0, "result offset")
	cmd.Flags().IntVar(&s.Limit, "limit", 0, "number of results (default 10)")

	return cmd
}

func eventsMetadataCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "metadata <event-id>",
		Short:   "Show the traits and delivery types listings for an event may use",
		Example: `  stubhub events metadata 9001`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withSession(ctx, func(a *app) error {
				md, err := a.client.Metadata(ctx, args[0])
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(md)
				}
				return printEventMetadata(md)
			})
		},
	}
}

func eventsIntegratedCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "integrated <event-id>",
		Short:   "Report whether an event is integrated with the primary ticketer",
		Example: `  stubhub events integrated 9001`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withSession(ctx, func(a *app) error {
				ok, err := a.client.IsEventIntegrated(ctx, args[0])
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(map[string]bool{"integrated": ok})
				}
				fmt.Println(ok)
				return nil
			})
		},
	}
}
