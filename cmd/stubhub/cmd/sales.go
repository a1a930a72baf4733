package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/stubhub/internal/store"
	"github.com/donaldgifford/stubhub/pkg/stubhub"
)

func salesCmd() *cobra.Command {
	var (
		listingIDs []string
		status     string
		start      int
		rows       int
		local      bool
		since      string
		orderBy    string
	)

	cmd := &cobra.Command{
		Use:   "sales",
		Short: "List the seller's sales, newest first",
		Long: "List the seller's sales, newest first. With --local the query runs\n" +
			"against the PostgreSQL mirror kept by `stubhub serve` or `stubhub sync`.",
		Example: `  # Confirmed sales of two listings
  stubhub sales --listing 123 --listing 456 --status confirmed

  # Mirrored sales since March, largest payout first
  stubhub sales --local --since 2025-03-01 --order-by payout`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids, err := parseListingIDs(listingIDs)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if local {
				q := &store.SalesQuery{Limit: rows, Offset: start, OrderBy: orderBy}
				if status != "" {
					q.Status = &status
				}
				if len(ids) == 1 {
					id := int64(ids[0])
					q.ListingID = &id
				} else if len(ids) > 1 {
					return errors.New("--local accepts at most one --listing")
				}
				if since != "" {
					t, err := parseDate(since)
					if err != nil {
						return err
					}
					q.Since = &t
				}
				return withApp(ctx, func(a *app) error {
					if a.pg == nil {
						return errors.New("--local needs sync.sales enabled with a database configured")
					}
					records, total, err := a.pg.ListSales(ctx, q)
					if err != nil {
						return err
					}
					if jsonOutput() {
						return outputJSON(map[string]any{"total": total, "sales": records})
					}
					fmt.Printf("Showing %d of %d mirrored sales\n\n", len(records), total)
					return printSaleRecordsTable(records)
				})
			}

			f := stubhub.SalesFilter{
				ListingIDs: ids,
				Status:     strings.ToUpper(status),
				Start:      start,
				Rows:       rows,
			}
			return withSession(ctx, func(a *app) error {
				page, err := a.client.Sales(ctx, f)
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(page)
				}
				if len(page.Sales) == 0 {
					fmt.Println("No sales found.")
					return nil
				}
				fmt.Printf("Showing %d of %d sales\n\n", len(page.Sales), page.NumFound)
				return printSalesTable(page.Sales)
			})
		},
	}
	cmd.Flags().StringArrayVar(&listingIDs, "listing", nil, "listing id filter (repeatable)")
	cmd.Flags().StringVar(&status, "status", "", "sale status filter")
	cmd.Flags().IntVar(&start, "start", 0, "result offset")
	cmd.Flags().IntVar(&rows, "rows", 0, "number of results")
	cmd.Flags().BoolVar(&local, "local", false, "query the local sales mirror")
	cmd.Flags().StringVar(&since, "since", "", "with --local, sales on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "with --local, sort order (sale_date, payout)")

	return cmd
}

func priceCmd() *cobra.Command {
	var (
		listing string
		p       stubhub.PriceRequest
		mode    string
	)

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Convert between display and listing prices",
		Long: "Ask the pricing engine for the listing price behind a buyer-facing\n" +
			"display price (--mode listing), or the reverse (--mode display).",
		Example: `  stubhub price --event 9001 --amount 150 --mode listing
  stubhub price --listing 123123 --amount 120 --mode display`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if p.Mode, err = parsePriceMode(mode); err != nil {
				return err
			}
			if listing != "" {
				if p.ListingID, err = parseListingID(listing); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			return withSession(ctx, func(a *app) error {
				m, err := a.client.GetPrice(ctx, p)
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(m)
				}
				if m == nil {
					fmt.Println("No price returned.")
					return nil
				}
				fmt.Printf("%.2f %s\n", m.Amount, m.Currency)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&listing, "listing", "", "listing id")
	cmd.Flags().StringVar(&p.EventID, "event", "", "event id")
	cmd.Flags().Float64Var(&p.Amount, "amount", 0, "amount to convert (required)")
	cmd.Flags().StringVar(&mode, "mode", "listing", "price to return (listing, display)")
	cobra.CheckErr(cmd.MarkFlagRequired("amount"))

	return cmd
}
