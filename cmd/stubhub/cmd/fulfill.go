package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/stubhub/pkg/stubhub"
)

func fulfillCmd() *cobra.Command {
	fulfillRoot := &cobra.Command{
		Use:   "fulfill",
		Short: "Deliver tickets for listings and orders",
	}

	fulfillRoot.AddCommand(
		predeliverCmd(),
		predeliverBarcodesCmd(),
		deliverCmd(),
		deliverBarcodesCmd(),
		airbillCmd(),
	)

	return fulfillRoot
}

func predeliverCmd() *cobra.Command {
	var seat, row, file string

	cmd := &cobra.Command{
		Use:     "predeliver <listing-id>",
		Short:   "Upload a PDF ticket for one seat of a listing",
		Example: `  stubhub fulfill predeliver 123123 --row 14 --seat 2 --file ticket-2.pdf`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseListingID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return withSession(ctx, func(a *app) error {
				if err := a.client.Predeliver(ctx, id, seat, row, file); err != nil {
					return err
				}
				fmt.Printf("Uploaded %s for listing %s seat %s\n", file, id, seat)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&seat, "seat", "", "seat number (required)")
	cmd.Flags().StringVar(&row, "row", "", "row")
	cmd.Flags().StringVar(&file, "file", "", "ticket file (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("seat"))
	cobra.CheckErr(cmd.MarkFlagRequired("file"))

	return cmd
}

func predeliverBarcodesCmd() *cobra.Command {
	var barcodes []string

	cmd := &cobra.Command{
		Use:     "predeliver-barcodes <listing-id>",
		Short:   "Attach barcodes to a listing before it sells",
		Example: `  stubhub fulfill predeliver-barcodes 123123 --barcode 14:2:ABC123 --barcode 14:3:ABC124`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseListingID(args[0])
			if err != nil {
				return err
			}
			seats, err := parseBarcodes(barcodes)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return withSession(ctx, func(a *app) error {
				if err := a.client.PredeliverBarcodes(ctx, id, seats); err != nil {
					return err
				}
				fmt.Printf("Attached %d barcodes to listing %s\n", len(seats), id)
				return nil
			})
		},
	}
	cmd.Flags().StringArrayVar(&barcodes, "barcode", nil, "row:seat:barcode (repeatable, required)")
	cobra.CheckErr(cmd.MarkFlagRequired("barcode"))

	return cmd
}

func deliverCmd() *cobra.Command {
	var tickets []string

	cmd := &cobra.Command{
		Use:   "deliver <order-id>",
		Short: "Upload PDF tickets for a sold order",
		Example: `  stubhub fulfill deliver 55501 \
    --ticket 14:2:./tickets/seat-2.pdf --ticket 14:3:./tickets/seat-3.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files := make([]stubhub.TicketFile, 0, len(tickets))
			for _, s := range tickets {
				tf, err := parseTicketFile(s)
				if err != nil {
					return err
				}
				files = append(files, tf)
			}

			ctx := cmd.Context()
			return withSession(ctx, func(a *app) error {
				if err := a.client.Deliver(ctx, args[0], files); err != nil {
					return err
				}
				fmt.Printf("Delivered %d tickets for order %s\n", len(files), args[0])
				return nil
			})
		},
	}
	cmd.Flags().StringArrayVar(&tickets, "ticket", nil, "row:seat:path (repeatable, required)")
	cobra.CheckErr(cmd.MarkFlagRequired("ticket"))

	return cmd
}

func deliverBarcodesCmd() *cobra.Command {
	var barcodes []string

	cmd := &cobra.Command{
		Use:     "deliver-barcodes <order-id>",
		Short:   "Deliver barcodes for a sold order",
		Example: `  stubhub fulfill deliver-barcodes 55501 --barcode 14:2:ABC123:BARCODE`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seats, err := parseBarcodes(barcodes)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return withSession(ctx, func(a *app) error {
				if err := a.client.DeliverBarcodes(ctx, args[0], seats); err != nil {
					return err
				}
				fmt.Printf("Delivered %d barcodes for order %s\n", len(seats), args[0])
				return nil
			})
		},
	}
	cmd.Flags().StringArrayVar(&barcodes, "barcode", nil, "row:seat:barcode[:type] (repeatable, required)")
	cobra.CheckErr(cmd.MarkFlagRequired("barcode"))

	return cmd
}

func airbillCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:     "airbill <order-id>",
		Short:   "Generate the shipping label for an order",
		Example: `  stubhub fulfill airbill 55501 --out label.pdf`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withSession(ctx, func(a *app) error {
				bill, err := a.client.GetAirbill(ctx, args[0])
				if err != nil {
					return err
				}
				if out != "" {
					if len(bill.PDF) == 0 {
						return errors.New("airbill response carried no label")
					}
					if err := os.WriteFile(out, bill.PDF, 0o600); err != nil {
						return fmt.Errorf("writing label: %w", err)
					}
				}
				if jsonOutput() {
					return outputJSON(map[string]string{
						"trackingNumber": bill.TrackingNumber,
						"labelFile":      out,
					})
				}
				fmt.Printf("Tracking number: %s\n", bill.TrackingNumber)
				if out != "" {
					fmt.Printf("Label written to %s\n", out)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write the label PDF to this file")

	return cmd
}
