package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"invoicer/internal/invoice"
	"invoicer/internal/layout"
	"invoicer/internal/logger"
)

var renderCmd = &cobra.Command{
	Use:   "render [number]",
	Short: "Render an invoice as a PDF document",
	Long: `Render a stored invoice as a paginated PDF document.

Line items flow across as many pages as needed, with the column header
repeated on every page that holds items; the totals block is never split
across a page boundary. With --max-pages the render fails instead of
exceeding the cap (0 means unlimited).`,
	Example: `  # Render to <number>.pdf in the current directory
  invoicer render AC076

  # Render to a chosen path, capped at 5 pages
  invoicer render AC076 -o /tmp/acme-august.pdf --max-pages 5`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("output", "o", "", "Output file path (default: <number>.pdf)")
	renderCmd.Flags().Int("max-pages", 0, "Fail if the document would exceed this many pages (0 = unlimited)")
}

func runRender(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("render")

	number := args[0]
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = number + ".pdf"
	}
	maxPages, _ := cmd.Flags().GetInt("max-pages")

	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	inv, err := s.Invoice(number)
	if err != nil {
		return err
	}
	inv.Company = cfg.Company()

	geom := layout.A4()
	geom.MaxPages = maxPages
	svc, err := invoice.NewService(geom)
	if err != nil {
		return err
	}

	if err := svc.RenderFile(inv, outputPath); err != nil {
		log.Error().
			Err(err).
			Str("invoice", number).
			Msg("Render failed")
		return err
	}
	fmt.Printf("PDF generated: %s\n", outputPath)
	return nil
}
