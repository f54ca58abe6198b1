package cmd

import (
	"fmt"
	"log"

	"github.com/licitia/licitia/internal/logger"
	"github.com/licitia/licitia/internal/pricing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Quote the PLUS and PRO services for given assets and process value",
	Run: func(cmd *cobra.Command, _ []string) {
		quote(cmd)
	},
}

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().Int64P("assets", "a", 0, "bidder assets in COP (0 if not informed)")
	quoteCmd.Flags().Float64P("process-value", "v", 0, "process value in COP")
	quoteCmd.Flags().Int("annexes", 0, "number of annex files (PRO)")
	quoteCmd.Flags().String("user-type", string(pricing.UserRegular), "user type for social discount: productor, economia_popular, asociacion or regular")
	quoteCmd.Flags().String("service", "both", "service to quote: plus, pro or both")
}

func quote(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	assets, _ := cmd.Flags().GetInt64("assets")
	processValue, _ := cmd.Flags().GetFloat64("process-value")
	annexes, _ := cmd.Flags().GetInt("annexes")
	userTypeFlag, _ := cmd.Flags().GetString("user-type")
	service, _ := cmd.Flags().GetString("service")

	if processValue <= 0 {
		logger.Fatal("process value is required", zap.String("hint", "set the --process-value flag"))
	}

	user := configuredUserType(&Config{Pricing: &PricingConfig{UserType: userTypeFlag}})

	switch service {
	case "plus":
		mustPrintQuote(logger, pricing.Plus(assets, int64(processValue), user))
	case "pro":
		mustPrintQuote(logger, pricing.Pro(assets, int64(processValue), annexes, user))
	case "both":
		mustPrintQuote(logger, pricing.Plus(assets, int64(processValue), user))
		mustPrintQuote(logger, pricing.Pro(assets, int64(processValue), annexes, user))
	default:
		logger.Fatal("invalid service", zap.String("service", service))
	}
}

func mustPrintQuote(logger *zap.Logger, q pricing.Quote) {
	if err := printQuote(q); err != nil {
		logger.Fatal(fmt.Sprintf("printing %s quote", q.Service), zap.Error(err))
	}
}
