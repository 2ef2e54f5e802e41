package main

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"projection-engine/internal/config"
	"projection-engine/internal/engine"
	"projection-engine/internal/handler"
	"projection-engine/internal/logger"
	"projection-engine/internal/model"
	"projection-engine/internal/predictions"
	"projection-engine/internal/render"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "projection-engine",
		Short: "Long-horizon asset price projection",
		Long: `projection-engine solves a decaying growth schedule that reaches a predicted
price, then simulates a holding that is sold down to cover an annual expense
or a fixed yearly percentage.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("predictions", "", "Predictions file (.csv, .yaml, .json); overrides PREDICTIONS_PATH")

	rootCmd.AddCommand(
		newServeCmd(),
		newProjectCmd(),
		newPredictionsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type app struct {
	cfg     *config.Config
	log     *zap.SugaredLogger
	catalog *predictions.Store
	engine  *engine.Engine
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.ParseEnv()
	if err != nil {
		return nil, err
	}
	if path, _ := cmd.Flags().GetString("predictions"); path != "" {
		cfg.PredictionsPath = path
		cfg.PredictionsURL = ""
	}

	log := logger.New(cfg.Env)

	catalog, err := predictions.Load(cmd.Context(), cfg.PredictionsPath, cfg.PredictionsURL)
	if err != nil {
		return nil, fmt.Errorf("load predictions: %w", err)
	}

	return &app{
		cfg:     cfg,
		log:     log,
		catalog: catalog,
		engine:  engine.New(catalog, cfg.Solver(), cfg.Defaults()),
	}, nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve projections over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.log.Sync()

			h := handler.New(a.engine, a.log)
			a.log.Infow("Projection engine starting", "port", a.cfg.Port, "predictions", a.catalog.Len())
			if err := fasthttp.ListenAndServe(":"+a.cfg.Port, h.Handle); err != nil {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		},
	}
}

func newProjectCmd() *cobra.Command {
	var (
		name        string
		holding     float64
		salary      float64
		startYear   int
		sellPercent float64
		percentage  bool
		asJSON      bool
		plain       bool
		width       int
	)
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Compute the yearly ledger and summary for a prediction",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.log.Sync()

			if name == "" {
				names := a.catalog.Names()
				if len(names) == 0 {
					return fmt.Errorf("no predictions loaded")
				}
				name = names[0]
			}
			params := model.SimulationParameters{
				HoldingQuantity:     holding,
				AnnualExpense:       salary,
				LiquidationFraction: sellPercent / 100,
				UsePercentageMode:   percentage,
			}
			if cmd.Flags().Changed("start-year") {
				params.LiquidationStartYear = &startYear
			}

			pred, err := a.engine.Resolve(&model.ProjectionRequest{Prediction: name})
			if err != nil {
				return err
			}
			calc, err := a.engine.Calculate(pred, params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(calc)
			case plain:
				_, err = fmt.Fprint(out, render.Markdown(calc))
				return err
			}
			styled, err := render.Terminal(render.Markdown(calc), width)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, styled)
			return err
		},
	}
	cmd.Flags().StringVar(&name, "prediction", "", "Prediction name (default: first loaded)")
	cmd.Flags().Float64Var(&holding, "holding", 1, "Quantity of the asset held")
	cmd.Flags().Float64Var(&salary, "salary", 120000, "Annual expense covered by selling")
	cmd.Flags().IntVar(&startYear, "start-year", 0, "First year to sell (no selling when unset)")
	cmd.Flags().Float64Var(&sellPercent, "sell-percent", 5, "Percent of the holding sold each year in percentage mode")
	cmd.Flags().BoolVar(&percentage, "percentage", false, "Sell a percentage instead of covering the salary")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&plain, "plain", false, "Output raw markdown")
	cmd.Flags().IntVar(&width, "width", 160, "Terminal width for styled output")
	return cmd
}

func newPredictionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "predictions",
		Short: "List the loaded predictions",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.log.Sync()

			out := cmd.OutOrStdout()
			for _, p := range a.catalog.All() {
				fmt.Fprintf(out, "%-24s %d  %s\n", p.Name, p.Year, render.Money(p.TargetPrice))
			}
			return nil
		},
	}
}
