package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
	passwordUseCase "github.com/allisson/fibrohash/internal/password/usecase"
)

// RunAudit builds and prints the security report for a password. When outputPath is
// set the report is also saved there as JSON. The report holds only the masked password.
func RunAudit(
	ctx context.Context,
	reportUseCase passwordUseCase.ReportUseCase,
	logger *slog.Logger,
	writer io.Writer,
	password string,
	format string,
	outputPath string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("auditing password")

	report, err := reportUseCase.Report(ctx, password)
	if err != nil {
		return fmt.Errorf("failed to build security report: %w", err)
	}

	if format == "json" {
		if err := writeJSON(writer, report); err != nil {
			return err
		}
	} else {
		outputReportText(writer, report)
	}

	if outputPath != "" {
		if err := saveReport(outputPath, report); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(writer, "Security report saved to %s\n", outputPath)
	}

	logger.Info("password audited",
		slog.String("report_id", report.ID.String()),
		slog.Int("security_score", report.Audit.SecurityScore),
		slog.String("rating", report.Summary.Rating),
	)

	return nil
}

// saveReport writes report to path as indented JSON, readable by the owner only.
func saveReport(path string, report *passwordDomain.SecurityReport) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to save security report: %w", err)
	}
	if err := writeJSON(f, report); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to save security report: %w", err)
	}
	return nil
}

// outputReportText renders a security report for humans.
func outputReportText(w io.Writer, report *passwordDomain.SecurityReport) {
	audit := report.Audit

	_, _ = fmt.Fprintf(w, "Report ID: %s\n", report.ID)
	_, _ = fmt.Fprintf(w, "Generated At: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	_, _ = fmt.Fprintf(w, "Password: %s\n", report.MaskedPassword)
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "Security Score: %d/100 (%s)\n", audit.SecurityScore, report.Summary.Rating)
	_, _ = fmt.Fprintf(w, "Length: %d\n", audit.Length)
	_, _ = fmt.Fprintf(w, "Theoretical Entropy: %.2f bits\n", audit.TheoreticalEntropyBits)
	_, _ = fmt.Fprintf(w, "Actual Entropy: %.2f bits\n", audit.ActualEntropyBits)
	_, _ = fmt.Fprintf(w, "Diversity Score: %.2f\n", audit.DiversityScore)
	_, _ = fmt.Fprintf(w, "Repetition Ratio: %.2f\n", audit.RepetitionRatio)
	_, _ = fmt.Fprintf(w, "Character Classes: upper=%d lower=%d digit=%d symbol=%d other=%d\n",
		audit.ClassCounts.Upper,
		audit.ClassCounts.Lower,
		audit.ClassCounts.Digit,
		audit.ClassCounts.Symbol,
		audit.ClassCounts.Other,
	)

	if len(audit.Patterns) > 0 {
		_, _ = fmt.Fprintln(w, "Detected Patterns:")
		for _, p := range audit.Patterns {
			_, _ = fmt.Fprintf(w, "  - %s %q at %d (%s)\n", p.Kind, p.Value, p.Position, p.Severity)
		}
	}

	_, _ = fmt.Fprintln(w)
	if report.Validation.Valid {
		_, _ = fmt.Fprintln(w, "Policy: PASS")
	} else {
		_, _ = fmt.Fprintln(w, "Policy: FAIL")
		outputViolationsText(w, report.Validation.Violations)
	}

	outputList(w, "Strengths", report.Summary.Strengths)
	outputList(w, "Weaknesses", report.Summary.Weaknesses)
	outputList(w, "Recommendations", report.Summary.Recommendations)

	c := report.Summary.Compliance
	_, _ = fmt.Fprintln(w, "Compliance:")
	_, _ = fmt.Fprintf(w, "  NIST Basic: %s\n", yesNo(c.NISTBasic))
	_, _ = fmt.Fprintf(w, "  NIST Enhanced: %s\n", yesNo(c.NISTEnhanced))
	_, _ = fmt.Fprintf(w, "  PCI DSS: %s\n", yesNo(c.PCIDSS))
	_, _ = fmt.Fprintf(w, "  ISO 27001: %s\n", yesNo(c.ISO27001))
	_, _ = fmt.Fprintf(w, "  Enterprise Minimum: %s\n", yesNo(c.EnterpriseMinimum))
}

func outputViolationsText(w io.Writer, violations []passwordDomain.PolicyViolation) {
	for _, v := range violations {
		_, _ = fmt.Fprintf(w, "  - [%s] %s\n", v.Kind, v.Detail)
	}
}

func outputList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "%s:\n", title)
	_, _ = fmt.Fprintf(w, "  - %s\n", strings.Join(items, "\n  - "))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
