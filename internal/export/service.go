// Package export produces XLSX workbooks from the record store for the
// agency's spreadsheet-centric review workflow.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/licagency/policy-tracker/gen/ent"
	"github.com/licagency/policy-tracker/gen/ent/customer"
	"github.com/licagency/policy-tracker/gen/ent/insurancepolicy"
	"github.com/licagency/policy-tracker/gen/ent/premiumrecord"
)

// Service is a tiny façade over the Ent client that produces XLSX bytes.
type Service struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewService(entc *ent.Client, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{ent: entc, logger: logger}
}

// ExportXLSX returns a workbook with Customers, Policies, and
// PremiumRecords sheets covering the whole store.
func (s *Service) ExportXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()

	if err := s.writeCustomers(ctx, f); err != nil {
		return nil, err
	}
	if err := s.writePolicies(ctx, f); err != nil {
		return nil, err
	}
	if err := s.writePremiumRecords(ctx, f); err != nil {
		return nil, err
	}

	// The default sheet excelize creates is replaced by Customers.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		s.logger.Warn("could not remove default sheet", "error", err)
	}
	if idx, _ := f.GetSheetIndex("Customers"); idx != -1 {
		f.SetActiveSheet(idx)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	s.logger.Info("export complete", "bytes", buf.Len(), "duration", time.Since(start))
	return buf.Bytes(), nil
}

func newSheet(f *excelize.File, name string, headers []string) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(name, cell, h); err != nil {
			return err
		}
	}
	return nil
}

func writeCell(f *excelize.File, sheet string, col, row int, v any) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	_ = f.SetCellValue(sheet, cell, v)
}

func (s *Service) writeCustomers(ctx context.Context, f *excelize.File) error {
	const sheet = "Customers"
	rows, err := s.ent.Customer.Query().Order(customer.ByName()).All(ctx)
	if err != nil {
		return fmt.Errorf("query customers: %w", err)
	}
	if err := newSheet(f, sheet, []string{
		"Name", "Phone", "Email", "Address", "Extraction Method", "First Seen", "Last Seen",
	}); err != nil {
		return err
	}
	for i, c := range rows {
		r := i + 2
		writeCell(f, sheet, 1, r, c.Name)
		writeCell(f, sheet, 2, r, strOrEmpty(c.Phone))
		writeCell(f, sheet, 3, r, strOrEmpty(c.Email))
		writeCell(f, sheet, 4, r, strOrEmpty(c.Address))
		writeCell(f, sheet, 5, r, c.ExtractionMethod)
		writeCell(f, sheet, 6, r, c.CreatedAt)
		writeCell(f, sheet, 7, r, c.UpdatedAt)
	}
	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "D", 22)
	return nil
}

func (s *Service) writePolicies(ctx context.Context, f *excelize.File) error {
	const sheet = "Policies"
	rows, err := s.ent.InsurancePolicy.Query().
		Order(insurancepolicy.ByPolicyNumber()).
		WithCustomer().
		All(ctx)
	if err != nil {
		return fmt.Errorf("query policies: %w", err)
	}
	if err := newSheet(f, sheet, []string{
		"Policy Number", "Customer", "Plan", "Commencement", "Mode",
		"FUP Date", "Premium", "Sum Assured", "Agent Code", "Status",
	}); err != nil {
		return err
	}
	for i, p := range rows {
		r := i + 2
		writeCell(f, sheet, 1, r, p.PolicyNumber)
		name := ""
		if p.Edges.Customer != nil {
			name = p.Edges.Customer.Name
		}
		writeCell(f, sheet, 2, r, name)
		writeCell(f, sheet, 3, r, strOrEmpty(p.PlanName))
		writeCell(f, sheet, 4, r, strOrEmpty(p.DateOfCommencement))
		writeCell(f, sheet, 5, r, strOrEmpty(p.PaymentPeriod))
		writeCell(f, sheet, 6, r, strOrEmpty(p.CurrentFupDate))
		writeCell(f, sheet, 7, r, floatOrEmpty(p.PremiumAmount))
		writeCell(f, sheet, 8, r, floatOrEmpty(p.SumAssured))
		writeCell(f, sheet, 9, r, strOrEmpty(p.AgentCode))
		writeCell(f, sheet, 10, r, p.Status)
	}
	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "B", 28)
	_ = f.SetColWidth(sheet, "C", "J", 14)
	return nil
}

func (s *Service) writePremiumRecords(ctx context.Context, f *excelize.File) error {
	const sheet = "PremiumRecords"
	rows, err := s.ent.PremiumRecord.Query().
		Order(premiumrecord.ByPolicyNumber(), premiumrecord.ByDueDate()).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query premium records: %w", err)
	}
	if err := newSheet(f, sheet, []string{
		"Policy Number", "Due Date", "Premium", "GST", "Total",
		"Due Count", "Est. Commission", "Agent Code", "Source Document", "Document Date",
	}); err != nil {
		return err
	}
	for i, p := range rows {
		r := i + 2
		writeCell(f, sheet, 1, r, p.PolicyNumber)
		writeCell(f, sheet, 2, r, strOrEmpty(p.DueDate))
		writeCell(f, sheet, 3, r, floatOrEmpty(p.PremiumAmount))
		writeCell(f, sheet, 4, r, floatOrEmpty(p.GstAmount))
		writeCell(f, sheet, 5, r, floatOrEmpty(p.TotalAmount))
		if p.DueCount != nil {
			writeCell(f, sheet, 6, r, *p.DueCount)
		}
		writeCell(f, sheet, 7, r, floatOrEmpty(p.EstimatedCommission))
		writeCell(f, sheet, 8, r, strOrEmpty(p.AgentCode))
		writeCell(f, sheet, 9, r, p.SourceDocument)
		writeCell(f, sheet, 10, r, strOrEmpty(p.DocumentDate))
	}
	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "I", "I", 40)
	return nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func floatOrEmpty(p *float64) any {
	if p == nil {
		return ""
	}
	return *p
}
