package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/licitia/licitia/internal/analysis"
	"github.com/licitia/licitia/internal/docsource"
	"github.com/licitia/licitia/internal/logger"
	"github.com/licitia/licitia/internal/pricing"
	"github.com/licitia/licitia/internal/report"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShowReport = "Show WhatsApp report"
	PromptQuotePlus  = "Quote PLUS service"
	PromptQuotePro   = "Quote PRO service"
	PromptDumpResult = "Dump result to file"
	PromptExit       = "Exit"
)

var errExit = errors.New("exit requested")

var actionPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowReport, PromptQuotePlus, PromptQuotePro, PromptDumpResult, PromptExit},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the fitness analysis over the three tender documents",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("certificate", "c", "", "path to the chamber-of-commerce certificate text")
	analyzeCmd.Flags().StringP("rut", "r", "", "path to the RUT text")
	analyzeCmd.Flags().StringP("notice", "n", "", "path to the tender notice text")
	analyzeCmd.Flags().Float64P("process-value", "v", 0, "process value in COP. Extracted from the notice when unset.")
	analyzeCmd.Flags().BoolP("auto-approve", "y", false, "print the result and exit without the action menu")
	analyzeCmd.Flags().Bool("basic", false, "run the degraded basic analysis instead of the full pipeline")

	viper.BindPFlag("process-value", analyzeCmd.Flags().Lookup("process-value"))
}

// analyze is the main command for the cli.
func analyze(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting licitia", zap.String("version", version))

	certText := loadDocument(cmd, logger, "certificate", "certificado de cámara de comercio", config)
	rutText := loadDocument(cmd, logger, "rut", "RUT", config)
	noticeText := loadDocument(cmd, logger, "notice", "aviso de convocatoria", config)

	var processValue *float64
	if v := viper.GetFloat64("process-value"); v > 0 {
		processValue = &v
	}

	pipeline := buildPipeline(cmd, logger)

	result := pipeline.Analyze(certText, rutText, noticeText, processValue)

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatal("encoding result", zap.Error(err))
	}
	fmt.Println(string(pretty))

	if cmd.Flag("auto-approve").Value.String() == "true" || viper.GetBool("json") {
		return
	}

	for {
		_, action, err := actionPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, result, config, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

// buildPipeline selects the analysis strategy once, up front. Both
// strategies honor the same result contract.
func buildPipeline(cmd *cobra.Command, logger *zap.Logger) analysis.Pipeline {
	if cmd.Flag("basic").Value.String() == "true" {
		logger.Info("running in basic mode", zap.String("reason", "requested via flag"))
		return analysis.NewBasic(logger)
	}
	return analysis.NewFull(logger)
}

// loadDocument resolves one document's text from the flag or the config
// file. Analysis cannot run on a partial document set, so failures are
// fatal here, before the pipeline starts.
func loadDocument(cmd *cobra.Command, logger *zap.Logger, flag, name string, config *Config) string {
	path := cmd.Flag(flag).Value.String()
	if path == "" && config != nil && config.Documents != nil {
		switch flag {
		case "certificate":
			path = config.Documents.Certificate
		case "rut":
			path = config.Documents.RUT
		case "notice":
			path = config.Documents.Notice
		}
	}

	text, err := docsource.Load(docsource.Source{Name: name, File: path})
	if err != nil {
		logger.Fatal("loading document",
			zap.Error(err),
			zap.String("hint", fmt.Sprintf("set the --%s flag or the documents.%s key in the configuration file", flag, flag)),
		)
	}

	return text
}

func handleAction(action string, result *analysis.Result, config *Config, logger *zap.Logger) error {
	switch action {
	case PromptShowReport:
		fmt.Println(report.WhatsAppMessage(result))
		return nil
	case PromptQuotePlus:
		assets, processValue := quoteInputs(result)
		return printQuote(pricing.Plus(assets, processValue, configuredUserType(config)))
	case PromptQuotePro:
		assets, processValue := quoteInputs(result)
		annexes := 0
		if config != nil && config.Pricing != nil {
			annexes = config.Pricing.Annexes
		}
		return printQuote(pricing.Pro(assets, processValue, annexes, configuredUserType(config)))
	case PromptDumpResult:
		filename, err := dumpResult(result)
		if err != nil {
			return fmt.Errorf("dump result to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// quoteInputs feeds the pricing calculator from the analysis result: the
// extracted assets and the resolved process value.
func quoteInputs(result *analysis.Result) (int64, int64) {
	var assets, processValue int64
	if f := result.ExtractedFields; f != nil {
		if f.Assets != nil {
			assets = int64(*f.Assets)
		}
		if f.ProcessValue != nil {
			processValue = int64(*f.ProcessValue)
		}
	}
	return assets, processValue
}

func configuredUserType(config *Config) pricing.UserType {
	if config == nil || config.Pricing == nil {
		return pricing.UserRegular
	}

	switch pricing.UserType(strings.TrimSpace(strings.ToLower(config.Pricing.UserType))) {
	case pricing.UserProductor:
		return pricing.UserProductor
	case pricing.UserEconomiaPopular:
		return pricing.UserEconomiaPopular
	case pricing.UserAsociacion:
		return pricing.UserAsociacion
	default:
		return pricing.UserRegular
	}
}

func printQuote(q pricing.Quote) error {
	pretty, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding quote: %w", err)
	}
	fmt.Println(string(pretty))
	return nil
}

func dumpResult(result *analysis.Result) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}

	f, err := os.CreateTemp("", app+"-result-*.json")
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return "", err
	}

	return f.Name(), nil
}
