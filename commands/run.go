package commands

import (
	"fmt"
	"path/filepath"

	"github.com/olivere/elastic"
	"github.com/spf13/cobra"

	"github.com/warp/payroll-engine/csvdata"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/payslip"
	"github.com/warp/payroll-engine/sink"
	"github.com/warp/payroll-engine/store"
	"github.com/warp/payroll-engine/store/sqlite"
)

func newRunCmd(config *Config) *cobra.Command {
	var (
		dataDir    string
		outPath    string
		breakdown  bool
		dbPath     string
		payslipDir string
		esURL      string
		esIndex    string
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Executes one payroll run",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := config.Log

			if outPath == "" {
				outPath = filepath.Join(dataDir, sink.DefaultOutputFile)
			}

			csvSink := sink.NewCSV(outPath, log)
			csvSink.Breakdown = breakdown
			sinks := []payroll.Sink{csvSink}

			if esURL != "" {
				client, err := elastic.NewClient(
					elastic.SetSniff(false),
					elastic.SetURL(esURL),
				)
				if err != nil {
					return fmt.Errorf("connect to elasticsearch: %w", err)
				}
				sinks = append(sinks, sink.NewElastic(client, esIndex, log))
			}

			loader := csvdata.NewLoader(dataDir, log)
			runner := payroll.NewRunner(loader, sinks, log)

			report, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}

			if dbPath != "" {
				st, err := sqlite.New(dbPath)
				if err != nil {
					return err
				}
				defer st.Close()

				rec := store.RunRecord{
					ID:          report.ID,
					StartedAt:   report.StartedAt,
					CompletedAt: report.CompletedAt,
					ResultCount: len(report.Results),
				}
				if err := st.SaveRun(cmd.Context(), rec, report.Results); err != nil {
					return fmt.Errorf("persist run: %w", err)
				}
			}

			if payslipDir != "" {
				generator := payslip.NewGenerator(payslipDir)
				paths, err := generator.GenerateAll(report.Results, report.Employees)
				if err != nil {
					return err
				}
				log.WithField("payslips", len(paths)).Info("payslips generated")
			}

			fmt.Printf("Payroll run %s completed with %d results\n",
				report.ID, len(report.Results))
			return nil
		},
	}

	runCmd.Flags().StringVar(&dataDir, "data", "data", "input data directory")
	runCmd.Flags().StringVar(&outPath, "out", "", "results file path (default <data>/"+sink.DefaultOutputFile+")")
	runCmd.Flags().BoolVar(&breakdown, "breakdown", false, "include base/overtime/deduction columns")
	runCmd.Flags().StringVar(&dbPath, "db", "", "also persist the run to this SQLite database")
	runCmd.Flags().StringVar(&payslipDir, "payslip-dir", "", "also render payslip PDFs into this directory")
	runCmd.Flags().StringVar(&esURL, "es-url", "", "also index results into Elasticsearch at this URL")
	runCmd.Flags().StringVar(&esIndex, "es-index", sink.DefaultIndex, "Elasticsearch index name")

	return runCmd
}
