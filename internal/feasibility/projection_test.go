package feasibility

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/feasibility-api/internal/domain"
)

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual),
		append([]interface{}{"esperado %s, obtido %s", expected, actual.String()}, msgAndArgs...)...)
}

func newInputs(investment, monthly int64, months int) domain.FinancialInputs {
	return domain.FinancialInputs{
		CustomerName:   "PT Nusantara Data",
		InvestmentCost: decimal.NewFromInt(investment),
		MonthlyRevenue: decimal.NewFromInt(monthly),
		ContractPeriod: months,
		OTCCost:        decimal.Zero,
	}
}

func TestProject_ReferenceScenario(t *testing.T) {
	p := Project(newInputs(600_000_000, 50_000_000, 24), domain.DefaultAssumptions())

	assertDecimal(t, "125000000", p.OTCRevenue)
	assertDecimal(t, "1200000000", p.MonthlyTotal)
	assertDecimal(t, "1325000000", p.TotalRevenue)
	assertDecimal(t, "87500000", p.OTCCogs)
	assertDecimal(t, "840000000", p.MonthlyCogs)
	assertDecimal(t, "927500000", p.TotalCogs)
	assertDecimal(t, "397500000", p.MarketingCost)
	assertDecimal(t, "120000000", p.OperationalCost)
	assertDecimal(t, "517500000", p.TotalOpex)
	assertDecimal(t, "100000000", p.AnnualDepreciation)

	require.Len(t, p.Yearly, 7)
	require.Len(t, p.Cogs, 7)

	expected := []struct {
		revenue, badDebt, opex, ebitda, depreciation, ebit, tax, netIncome string
	}{
		{"125000000", "6250000", "0", "118750000", "0", "118750000", "13062500", "105687500"},
		{"600000000", "30000000", "86250000", "483750000", "100000000", "383750000", "42212500", "341537500"},
		{"600000000", "30000000", "86250000", "483750000", "100000000", "383750000", "42212500", "341537500"},
		{"0", "0", "86250000", "-86250000", "100000000", "-186250000", "-20487500", "-165762500"},
		{"0", "0", "86250000", "-86250000", "100000000", "-186250000", "-20487500", "-165762500"},
		{"0", "0", "86250000", "-86250000", "100000000", "-186250000", "-20487500", "-165762500"},
		{"0", "0", "86250000", "-86250000", "100000000", "-186250000", "-20487500", "-165762500"},
	}

	for year, e := range expected {
		y := p.Yearly[year]
		assert.Equal(t, year, y.Year)
		assertDecimal(t, e.revenue, y.Revenue, "revenue ano %d", year)
		assertDecimal(t, e.badDebt, y.BadDebt, "bad debt ano %d", year)
		assertDecimal(t, e.opex, y.Opex, "opex ano %d", year)
		assertDecimal(t, e.ebitda, y.EBITDA, "ebitda ano %d", year)
		assertDecimal(t, e.depreciation, y.Depreciation, "depreciação ano %d", year)
		assertDecimal(t, e.ebit, y.EBIT, "ebit ano %d", year)
		assertDecimal(t, e.tax, y.Tax, "imposto ano %d", year)
		assertDecimal(t, e.netIncome, y.NetIncome, "lucro líquido ano %d", year)
	}

	expectedCogs := [][2]string{
		{"87500000", "0"},
		{"0", "420000000"},
		{"0", "420000000"},
		{"0", "0"},
		{"0", "0"},
		{"0", "0"},
		{"0", "0"},
	}
	for year, e := range expectedCogs {
		c := p.Cogs[year]
		assertDecimal(t, e[0], c.OTCCogs, "otc cogs ano %d", year)
		assertDecimal(t, e[1], c.MonthlyCogs, "monthly cogs ano %d", year)
		assert.True(t, c.OTCCogs.Add(c.MonthlyCogs).Equal(c.TotalCogs))
	}
}

func TestProject_RevenueRecognition(t *testing.T) {
	tests := []struct {
		name     string
		months   int
		expected []string
	}{
		{
			name:     "Último ano parcial recebe apenas o valor restante do contrato",
			months:   18,
			expected: []string{"125000000", "600000000", "300000000", "0", "0", "0", "0"},
		},
		{
			name:     "Contrato menor que um ano",
			months:   6,
			expected: []string{"125000000", "300000000", "0", "0", "0", "0", "0"},
		},
		{
			name:     "Contrato exatamente igual ao horizonte",
			months:   72,
			expected: []string{"125000000", "600000000", "600000000", "600000000", "600000000", "600000000", "600000000"},
		},
		{
			name:     "Contrato maior que o horizonte é truncado no período 6",
			months:   100,
			expected: []string{"125000000", "600000000", "600000000", "600000000", "600000000", "600000000", "600000000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Project(newInputs(600_000_000, 50_000_000, tt.months), domain.DefaultAssumptions())
			require.Len(t, p.Yearly, len(tt.expected))
			for year, revenue := range tt.expected {
				assertDecimal(t, revenue, p.Yearly[year].Revenue, "ano %d", year)
			}
		})
	}
}

// Limitação conhecida: valor de contrato além do horizonte não é reconhecido.
func TestProject_LongContractResidualIsNotRecognized(t *testing.T) {
	p := Project(newInputs(600_000_000, 50_000_000, 100), domain.DefaultAssumptions())

	recognized := decimal.Zero
	for _, y := range p.Yearly {
		recognized = recognized.Add(y.Revenue)
	}

	assertDecimal(t, "5125000000", p.TotalRevenue)
	assertDecimal(t, "3725000000", recognized)
	assertDecimal(t, "1400000000", p.TotalRevenue.Sub(recognized))
}

// Opex é um custo fixo distribuído de forma linear, mesmo em períodos sem receita.
func TestProject_OpexIsFlatAcrossRecurringPeriods(t *testing.T) {
	p := Project(newInputs(600_000_000, 50_000_000, 12), domain.DefaultAssumptions())

	// total revenue = 125M + 600M = 725M; marketing 217,5M; operacional 120M
	assertDecimal(t, "337500000", p.TotalOpex)
	assertDecimal(t, "0", p.Yearly[0].Opex)
	for year := 1; year < len(p.Yearly); year++ {
		assertDecimal(t, "56250000", p.Yearly[year].Opex, "ano %d", year)
	}
	assertDecimal(t, "0", p.Yearly[2].Revenue)
}

func TestProject_UsesAssumptionSet(t *testing.T) {
	assumptions := domain.DefaultAssumptions()
	assumptions.DepreciationPeriods = 4
	assumptions.OTCMultiplier = 1
	assumptions.TaxRate = 0

	p := Project(newInputs(400_000_000, 10_000_000, 12), assumptions)

	require.Len(t, p.Yearly, 5)
	assertDecimal(t, "10000000", p.OTCRevenue)
	assertDecimal(t, "100000000", p.AnnualDepreciation)
	for _, y := range p.Yearly {
		assert.True(t, y.Tax.IsZero())
		assert.True(t, y.EBIT.Equal(y.NetIncome))
	}
}
