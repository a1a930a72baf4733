package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/stubhub/pkg/stubhub"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Create, inspect, edit and delete listings",
	}

	listingsRoot.AddCommand(
		listingsCreateCmd(),
		listingsGetCmd(),
		listingsListCmd(),
		listingsUpdateCmd(),
		listingsDeleteCmd(),
	)

	return listingsRoot
}

func listingsCreateCmd() *cobra.Command {
	var (
		p        stubhub.CreateListingParams
		split    string
		inhand   string
		barcodes []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a listing",
		Example: `  # Reserved seating, never leave a single ticket
  stubhub listings create --event 9001 --quantity 5 --section "Section A" \
    --rows 14 --seats 2,3,4,5,6 --price 123.25 --split no_singles

  # Attach barcodes at creation
  stubhub listings create --event 9001 --quantity 2 --price 80 \
    --barcode 14:2:ABC123 --barcode 14:3:ABC124`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if p.SplitOption, err = stubhub.ParseSplitOption(split); err != nil {
				return err
			}
			if p.InhandDate, err = parseDate(inhand); err != nil {
				return err
			}
			if p.Tickets, err = parseBarcodes(barcodes); err != nil {
				return err
			}

			ctx := cmd.Context()
			return withSession(ctx, func(a *app) error {
				id, err := a.client.CreateListing(ctx, p)
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(map[string]stubhub.ListingID{"id": id})
				}
				fmt.Printf("Created listing %s\n", id)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&p.EventID, "event", "", "event id (required)")
	cmd.Flags().IntVar(&p.Quantity, "quantity", 0, "number of tickets (required)")
	cmd.Flags().Float64Var(&p.PricePerTicket, "price", 0, "price per ticket in USD (required)")
	cmd.Flags().StringVar(&p.Seats, "seats", "", "comma-separated seat numbers")
	cmd.Flags().StringVar(&p.Section, "section", "", "section name")
	cmd.Flags().StringVar(&p.Rows, "rows", "", "row or rows")
	cmd.Flags().StringVar(&p.DeliveryOption, "delivery", "", "delivery option (e.g. PDF, BARCODE, UPS)")
	cmd.Flags().StringSliceVar(&p.Traits, "trait", nil, "ticket trait id (repeatable)")
	cmd.Flags().StringVar(&inhand, "inhand", "", "in-hand date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&p.InternalNotes, "notes", "", "internal notes")
	cmd.Flags().StringVar(&split, "split", "none", "split option: no_singles, none or a multiple")
	cmd.Flags().StringArrayVar(&barcodes, "barcode", nil, "row:seat:barcode (repeatable)")
	cobra.CheckErr(cmd.MarkFlagRequired("event"))
	cobra.CheckErr(cmd.MarkFlagRequired("quantity"))
	cobra.CheckErr(cmd.MarkFlagRequired("price"))

	return cmd
}

func listingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <listing-id>",
		Short:   "Show listing details",
		Example: `  stubhub listings get 123123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseListingID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return withSession(ctx, func(a *app) error {
				l, err := a.client.GetListing(ctx, id)
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(l)
				}
				return printListingDetail(l)
			})
		},
	}
}

func listingsListCmd() *cobra.Command {
	var (
		f      stubhub.ListingsFilter
		status string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the seller's listings",
		Example: `  stubhub listings list
  stubhub listings list --status inactive --rows 50`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f.Status = stubhub.ListingStatus(strings.ToUpper(status))

			ctx := cmd.Context()
			return withSession(ctx, func(a *app) error {
				page, err := a.client.GetListings(ctx, f)
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(page)
				}
				if len(page.Listings) == 0 {
					fmt.Println("No listings found.")
					return nil
				}
				fmt.Printf("Showing %d of %d listings\n\n", len(page.Listings), page.NumFound)
				return printListingsTable(page.Listings)
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", "active", "listing status (active, inactive)")
	cmd.Flags().IntVar(&f.Start, "start", 0, "result offset")
	cmd.Flags().IntVar(&f.Rows, "rows", 0, "number of results")

	return cmd
}

func listingsUpdateCmd() *cobra.Command {
	var (
		quantity int
		seats    string
		price    float64
		delivery string
		traits   []string
		inhand   string
		notes    string
		split    string
	)

	cmd := &cobra.Command{
		Use:   "update <listing-id>",
		Short: "Change fields of a listing",
		Long:  "Change fields of a listing. Only the flags given are sent.",
		Example: `  stubhub listings update 123123 --price 99.50
  stubhub listings update 123123 --notes ""`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseListingID(args[0])
			if err != nil {
				return err
			}

			var p stubhub.UpdateListingParams
			flags := cmd.Flags()
			if flags.Changed("quantity") {
				p.Quantity = &quantity
			}
			if flags.Changed("seats") {
				p.Seats = &seats
			}
			if flags.Changed("price") {
				p.PricePerTicket = &price
			}
			if flags.Changed("delivery") {
				p.DeliveryOption = &delivery
			}
			if flags.Changed("trait") {
				p.Traits = traits
			}
			if flags.Changed("notes") {
				p.InternalNotes = &notes
			}
			if flags.Changed("inhand") {
				d, err := parseDate(inhand)
				if err != nil {
					return err
				}
				p.InhandDate = &d
			}
			if flags.Changed("split") {
				o, err := stubhub.ParseSplitOption(split)
				if err != nil {
					return err
				}
				p.SplitOption = &o
			}

			ctx := cmd.Context()
			return withSession(ctx, func(a *app) error {
				got, err := a.client.UpdateListing(ctx, id, p)
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(map[string]stubhub.ListingID{"id": got})
				}
				fmt.Printf("Updated listing %s\n", got)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&quantity, "quantity", 0, "number of tickets")
	cmd.Flags().StringVar(&seats, "seats", "", "comma-separated seat numbers")
	cmd.Flags().Float64Var(&price, "price", 0, "price per ticket in USD")
	cmd.Flags().StringVar(&delivery, "delivery", "", "delivery option")
	cmd.Flags().StringSliceVar(&traits, "trait", nil, "ticket trait id (repeatable)")
	cmd.Flags().StringVar(&inhand, "inhand", "", "in-hand date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&notes, "notes", "", "internal notes")
	cmd.Flags().StringVar(&split, "split", "", "split option: no_singles, none or a multiple")

	return cmd
}

func listingsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <listing-id>",
		Short:   "Delete a listing",
		Example: `  stubhub listings delete 123123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseListingID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return withSession(ctx, func(a *app) error {
				got, err := a.client.DeleteListing(ctx, id)
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(map[string]stubhub.ListingID{"id": got})
				}
				fmt.Printf("Deleted listing %s\n", got)
				return nil
			})
		},
	}
}
