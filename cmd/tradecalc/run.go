package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/ChicagoDave/tradecalc/pkg/evaluate"
	"github.com/ChicagoDave/tradecalc/pkg/export"
	"github.com/ChicagoDave/tradecalc/pkg/job"
	"github.com/ChicagoDave/tradecalc/pkg/nec"
)

var errInvalidJob = errors.New("job has validation errors")

func runJob(out io.Writer, projectPath, xlsxPath string, asJSON bool) error {
	j, err := job.LoadProject(projectPath)
	if err != nil {
		return fmt.Errorf("loading job: %w", err)
	}

	res, report := evaluate.Run(j)
	logger.Info("job evaluated",
		zap.String("run_id", res.RunID),
		zap.String("project", projectPath),
		zap.String("summary", report.Summary))

	if xlsxPath != "" {
		if err := export.WriteResults(xlsxPath, res); err != nil {
			return fmt.Errorf("writing results workbook: %w", err)
		}
		logger.Debug("results workbook written", zap.String("path", xlsxPath))
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]any{
			"results":    res,
			"validation": report,
		}); err != nil {
			return err
		}
	} else {
		printResults(out, res)
		fmt.Fprintln(out)
		printValidationReport(out, report)
	}

	if !report.Valid {
		return errInvalidJob
	}
	return nil
}

func runTables(out io.Writer, xlsxPath string, asJSON bool) error {
	ref := nec.Tables()

	if xlsxPath != "" {
		if err := export.WriteTables(xlsxPath, ref); err != nil {
			return fmt.Errorf("writing tables workbook: %w", err)
		}
		logger.Debug("tables workbook written", zap.String("path", xlsxPath))
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(ref)
	}
	printTables(out, ref)
	return nil
}
