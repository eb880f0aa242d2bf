package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/feasibility-api/internal/domain"
	"github.com/vfg2006/feasibility-api/pkg/currency"
	"github.com/xuri/excelize/v2"
)

const (
	baseFileName = "Analisis_Kelayakan_Investasi"
	ContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	SheetSummary       = "Input & Summary"
	SheetProfitAndLoss = "Profit & Loss"
	SheetCashFlow      = "Cash Flow"
	SheetCogs          = "COGS"
)

// Table é uma planilha já formatada: cada célula é texto pronto para exibição
// ou um inteiro
type Table struct {
	Name string
	Rows [][]interface{}
}

// FileName retorna o nome do arquivo de exportação, com o cliente quando informado
func FileName(customerName string) string {
	slug := slugify(customerName)
	if slug == "" {
		return baseFileName + ".xlsx"
	}
	return fmt.Sprintf("%s_%s.xlsx", baseFileName, slug)
}

// BuildTables monta as planilhas de resumo, resultado, fluxo de caixa e COGS
func BuildTables(inputs domain.FinancialInputs, results *domain.CalculationResults, assumptions domain.Assumptions) []Table {
	return []Table{
		summaryTable(inputs, results, assumptions),
		profitAndLossTable(results.YearlyProjections),
		cashFlowTable(results.CashFlowProjections),
		cogsTable(results.CogsProjections),
	}
}

func summaryTable(inputs domain.FinancialInputs, results *domain.CalculationResults, assumptions domain.Assumptions) Table {
	viability := "Tidak Layak"
	if results.IsViable {
		viability = "Layak"
	}

	rows := [][]interface{}{
		{"Parameter", "Nilai"},
		{"Nama Pelanggan", inputs.CustomerName},
		{"Biaya Investasi (BOQ)", currency.FormatCurrency(inputs.InvestmentCost)},
		{"Pendapatan per Bulan", currency.FormatCurrency(inputs.MonthlyRevenue)},
		{"Periode (Bulan)", inputs.ContractPeriod},
		{"Biaya OTC", currency.FormatCurrency(inputs.OTCCost)},
		{"WACC", currency.FormatPercentage(assumptions.WACC * 100)},
		{"Tax", currency.FormatPercentage(assumptions.TaxRate * 100)},
		{"", ""},
		{"Hasil Perhitungan", ""},
		{"Total Revenue", currency.FormatCurrency(results.TotalRevenue)},
		{"OTC Revenue", currency.FormatCurrency(results.OTCRevenue)},
		{"Monthly Total", currency.FormatCurrency(results.MonthlyTotal)},
		{"Cost IBL", currency.FormatCurrency(results.CostIBL)},
		{"Cost OBL", currency.FormatCurrency(results.CostOBL)},
		{"Total OPEX", currency.FormatCurrency(results.TotalOpex)},
		{"NPV", currency.FormatCurrency(results.NPV)},
		{"IRR", currency.FormatPercentage(results.IRR)},
		{"Payback Period", fmt.Sprintf("%d tahun %d bulan", results.PaybackPeriod.Years, results.PaybackPeriod.Months)},
		{"Kelayakan", viability},
	}

	if results.IRRFailure != "" {
		rows = append(rows, []interface{}{"Catatan IRR", results.IRRFailure})
	}
	if results.PaybackFailure != "" {
		rows = append(rows, []interface{}{"Catatan Payback", results.PaybackFailure})
	}

	return Table{Name: SheetSummary, Rows: rows}
}

// seriesRow monta uma linha "rótulo, total, valores por período"
func seriesRow(label string, values []decimal.Decimal, withTotal bool) []interface{} {
	row := make([]interface{}, 0, len(values)+2)
	row = append(row, label)

	if withTotal {
		row = append(row, currency.FormatCurrency(decimal.Sum(decimal.Zero, values...)))
	} else {
		row = append(row, "")
	}

	for _, v := range values {
		row = append(row, currency.FormatCurrency(v))
	}
	return row
}

func header(periods int) []interface{} {
	row := []interface{}{"Label", "Jumlah"}
	for i := 0; i < periods; i++ {
		row = append(row, fmt.Sprintf("Tahun ke-%d", i))
	}
	return row
}

func profitAndLossTable(yearly []domain.YearlyProjection) Table {
	column := func(get func(domain.YearlyProjection) decimal.Decimal) []decimal.Decimal {
		values := make([]decimal.Decimal, len(yearly))
		for i, y := range yearly {
			values[i] = get(y)
		}
		return values
	}

	return Table{
		Name: SheetProfitAndLoss,
		Rows: [][]interface{}{
			header(len(yearly)),
			seriesRow("Revenue", column(func(y domain.YearlyProjection) decimal.Decimal { return y.Revenue }), true),
			seriesRow("Bad Debt", column(func(y domain.YearlyProjection) decimal.Decimal { return y.BadDebt }), true),
			seriesRow("OPEX", column(func(y domain.YearlyProjection) decimal.Decimal { return y.Opex }), true),
			seriesRow("EBITDA", column(func(y domain.YearlyProjection) decimal.Decimal { return y.EBITDA }), true),
			seriesRow("Depresiasi", column(func(y domain.YearlyProjection) decimal.Decimal { return y.Depreciation }), true),
			seriesRow("EBIT", column(func(y domain.YearlyProjection) decimal.Decimal { return y.EBIT }), true),
			seriesRow("Pajak", column(func(y domain.YearlyProjection) decimal.Decimal { return y.Tax }), true),
			seriesRow("Net Income", column(func(y domain.YearlyProjection) decimal.Decimal { return y.NetIncome }), true),
		},
	}
}

func cashFlowTable(cashFlows []domain.CashFlowProjection) Table {
	column := func(get func(domain.CashFlowProjection) decimal.Decimal) []decimal.Decimal {
		values := make([]decimal.Decimal, len(cashFlows))
		for i, cf := range cashFlows {
			values[i] = get(cf)
		}
		return values
	}

	return Table{
		Name: SheetCashFlow,
		Rows: [][]interface{}{
			header(len(cashFlows)),
			seriesRow("Net Income", column(func(cf domain.CashFlowProjection) decimal.Decimal { return cf.NetIncome }), true),
			seriesRow("Add Back Depresiasi", column(func(cf domain.CashFlowProjection) decimal.Decimal { return cf.AddBackDepreciation }), true),
			seriesRow("TOTAL CASH INFLOW", column(func(cf domain.CashFlowProjection) decimal.Decimal { return cf.TotalCashInflow }), true),
			seriesRow("CAPEX", column(func(cf domain.CashFlowProjection) decimal.Decimal { return cf.Capex }), true),
			seriesRow("Net Cash Flow", column(func(cf domain.CashFlowProjection) decimal.Decimal { return cf.NetCashFlow }), true),
			// acumulado não tem total
			seriesRow("Cum Cash Flow", column(func(cf domain.CashFlowProjection) decimal.Decimal { return cf.CumulativeCashFlow }), false),
		},
	}
}

func cogsTable(cogs []domain.CogsProjection) Table {
	column := func(get func(domain.CogsProjection) decimal.Decimal) []decimal.Decimal {
		values := make([]decimal.Decimal, len(cogs))
		for i, c := range cogs {
			values[i] = get(c)
		}
		return values
	}

	return Table{
		Name: SheetCogs,
		Rows: [][]interface{}{
			header(len(cogs)),
			seriesRow("OTC COGS", column(func(c domain.CogsProjection) decimal.Decimal { return c.OTCCogs }), true),
			seriesRow("Monthly COGS", column(func(c domain.CogsProjection) decimal.Decimal { return c.MonthlyCogs }), true),
			seriesRow("Total COGS", column(func(c domain.CogsProjection) decimal.Decimal { return c.TotalCogs }), true),
		},
	}
}

// WriteXLSX grava as planilhas em um único arquivo xlsx, na ordem recebida
func WriteXLSX(w io.Writer, tables []Table) error {
	if len(tables) == 0 {
		return errors.New("export: nenhuma planilha para gravar")
	}

	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("export: erro ao criar estilo: %w", err)
	}

	for i, table := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", table.Name); err != nil {
				return fmt.Errorf("export: erro ao renomear planilha %q: %w", table.Name, err)
			}
		} else if _, err := f.NewSheet(table.Name); err != nil {
			return fmt.Errorf("export: erro ao criar planilha %q: %w", table.Name, err)
		}

		for r, row := range table.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return err
			}
			values := row
			if err := f.SetSheetRow(table.Name, cell, &values); err != nil {
				return fmt.Errorf("export: erro ao gravar linha %d de %q: %w", r+1, table.Name, err)
			}
		}

		if err := f.SetRowStyle(table.Name, 1, 1, bold); err != nil {
			return err
		}
		if err := f.SetColWidth(table.Name, "A", "A", 24); err != nil {
			return err
		}
		if err := f.SetColWidth(table.Name, "B", "I", 18); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)

	return f.Write(w)
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteRune('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
