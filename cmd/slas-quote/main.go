// Command slas-quote drives the calculator controller from a terminal: the
// flags fill the form, the quote goes to the pricing service and the rendered
// breakdown is printed.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"slas-calculator/internal/calculator"
	"slas-calculator/internal/config"
	"slas-calculator/internal/logging"
	"slas-calculator/internal/quoteclient"
	"slas-calculator/internal/ui"
)

var (
	income        string
	arl           bool
	riskLevel     string
	ccf           bool
	ccfPercentage string
	quoteURL      string
	timeout       time.Duration
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "slas-quote",
	Short: "Quote monthly social security contributions for an independent worker",
	Long: `Fills the calculator form from flags, validates it the same way the web
page does and asks the pricing service for the contribution breakdown.`,
	Example:      `  slas-quote --income 3000000 --arl --risk-level I --ccf --ccf-percentage 2`,
	SilenceUsage: true,
	RunE:         runQuote,
}

func init() {
	cfg := config.ClientFromEnv()

	rootCmd.Flags().StringVar(&income, "income", "", "monthly income in COP")
	rootCmd.Flags().BoolVar(&arl, "arl", false, "contribute to occupational risk insurance")
	rootCmd.Flags().StringVar(&riskLevel, "risk-level", "", "ARL risk level (I to V)")
	rootCmd.Flags().BoolVar(&ccf, "ccf", false, "contribute to a family compensation fund")
	rootCmd.Flags().StringVar(&ccfPercentage, "ccf-percentage", "", "CCF percentage (0.6 or 2)")
	rootCmd.Flags().StringVar(&quoteURL, "url", cfg.QuoteURL, "pricing service base URL")
	rootCmd.Flags().DurationVar(&timeout, "timeout", cfg.Timeout, "quote request timeout")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func runQuote(cmd *cobra.Command, _ []string) error {
	level := config.ClientFromEnv().LogLevel
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	page := ui.NewPage()
	client := quoteclient.New(quoteURL, quoteclient.WithTimeout(timeout), quoteclient.WithLogger(logger))
	ctrl := calculator.New(page, client, calculator.WithLogger(logger))

	page.SetValue(ui.IncomeInput, income)
	page.SetChecked(ui.ARLCheckbox, arl)
	ctrl.ToggleRiskLevel()
	page.SetValue(ui.RiskLevelInput, riskLevel)
	page.SetChecked(ui.CCFCheckbox, ccf)
	ctrl.ToggleCCFPercentage()
	page.SetValue(ui.CCFPercentageInput, ccfPercentage)

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	state, err := ctrl.Submit(ctx, nil)
	logger.Debug("submission finished",
		zap.String("quote_url", client.URL()),
		zap.Stringer("state", state))
	if err != nil {
		return errors.New(page.Element(ui.ErrorMessage).Text)
	}

	printBreakdown(cmd, page)
	return nil
}

var breakdown = []struct {
	label string
	row   ui.ElementID
	value ui.ElementID
}{
	{"IBC", "", ui.IBCValue},
	{"Salud", "", ui.HealthValue},
	{"Pensión", "", ui.PensionValue},
	{"FSP", "", ui.SolidarityValue},
	{"ARL", ui.ARLRow, ui.ARLValue},
	{"CCF", ui.CCFRow, ui.CCFValue},
	{"Total", "", ui.TotalValue},
}

func printBreakdown(cmd *cobra.Command, page *ui.Page) {
	out := cmd.OutOrStdout()
	for _, line := range breakdown {
		if line.row != "" && !page.Visible(line.row) {
			continue
		}
		fmt.Fprintf(out, "%-8s %s\n", line.label, page.Element(line.value).Text)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
