package simfin

import "maps"

// Statement type codes.
const (
	StatementProfitLoss   = "pl"
	StatementBalanceSheet = "bs"
	StatementCashFlow     = "cf"
)

var statementTypes = []string{StatementProfitLoss, StatementBalanceSheet, StatementCashFlow}

// fixedPeriodTypes are the period codes accepted verbatim. Trailing twelve
// month codes (TTM, TTM-1, TTM-1.5, ...) are matched by pattern instead.
var fixedPeriodTypes = []string{"Q1", "Q2", "Q3", "Q4", "H1", "H2", "9M", "FY"}

// periodTypes is what PeriodTypes reports: the fixed codes plus plain TTM.
var periodTypes = append(append([]string(nil), fixedPeriodTypes...), "TTM")

// indicators maps indicator codes to descriptions. The first number is the
// category: 0 company info, 1 income statement, 2 balance sheet,
// 3 cash flow, 4 derived ratios.
//
// The codes follow the SimFin v1 scheme but the table is not an official
// copy of the SimFin indicator list; descriptions may differ from what the
// ratios endpoint reports in indicatorName.
var indicators = map[string]string{
	"0-1":  "Market Capitalisation",
	"0-2":  "Enterprise Value",
	"0-3":  "Common Shares Outstanding",
	"0-4":  "Average Shares Outstanding, Basic",
	"0-5":  "Average Shares Outstanding, Diluted",
	"0-6":  "Share Price",
	"0-7":  "Dividends per Share",
	"0-8":  "Book Value per Share",
	"0-9":  "Free Cash Flow per Share",
	"0-10": "Earnings per Share, Basic",
	"0-11": "Earnings per Share, Diluted",
	"0-12": "Sales per Share",
	"0-13": "Fiscal Year End Month",
	"0-14": "Number of Employees",
	"0-15": "Sector Code",
	"0-16": "Industry Code",

	"1-1":  "Revenues",
	"1-2":  "Cost of Goods Sold",
	"1-3":  "Gross Profit",
	"1-4":  "Selling, General & Administrative Expenses",
	"1-5":  "Research & Development",
	"1-6":  "Operating Expenses",
	"1-7":  "EBITDA",
	"1-8":  "Depreciation & Amortisation",
	"1-9":  "EBIT",
	"1-10": "Operating Income",
	"1-11": "Interest Expense, Net",
	"1-12": "Non-Operating Income",
	"1-13": "Pretax Income",
	"1-14": "Income Taxes",
	"1-15": "Income from Continuing Operations",
	"1-16": "Net Income",

	"2-1":  "Cash & Cash Equivalents",
	"2-2":  "Accounts Receivable",
	"2-3":  "Inventories",
	"2-4":  "Total Current Assets",
	"2-5":  "Property, Plant & Equipment, Net",
	"2-6":  "Goodwill",
	"2-7":  "Intangible Assets",
	"2-8":  "Total Noncurrent Assets",
	"2-9":  "Total Assets",
	"2-10": "Accounts Payable",
	"2-11": "Short Term Debt",
	"2-12": "Total Current Liabilities",
	"2-13": "Long Term Debt",
	"2-14": "Total Noncurrent Liabilities",
	"2-15": "Total Liabilities",
	"2-16": "Total Equity",

	"3-1":  "Net Income from Continuing Operations",
	"3-2":  "Depreciation & Amortisation",
	"3-3":  "Change in Working Capital",
	"3-4":  "Cash from Operating Activities",
	"3-5":  "Capital Expenditures",
	"3-6":  "Acquisitions",
	"3-7":  "Cash from Investing Activities",
	"3-8":  "Dividends Paid",
	"3-9":  "Repurchase of Common Equity",
	"3-10": "Net Issuance of Debt",
	"3-11": "Cash from Financing Activities",
	"3-12": "Net Change in Cash",
	"3-13": "Free Cash Flow",
	"3-14": "Stock-Based Compensation",
	"3-15": "Effect of Foreign Exchange Rates",
	"3-16": "Other Operating Activities",

	"4-1":  "Gross Margin",
	"4-2":  "Operating Margin",
	"4-3":  "EBITDA Margin",
	"4-4":  "Net Profit Margin",
	"4-5":  "Return on Equity",
	"4-6":  "Return on Assets",
	"4-7":  "Return on Invested Capital",
	"4-8":  "Current Ratio",
	"4-9":  "Quick Ratio",
	"4-10": "Debt to Equity Ratio",
	"4-11": "Liabilities to Equity Ratio",
	"4-12": "Price to Earnings Ratio",
	"4-13": "Price to Book Value",
	"4-14": "Price to Sales Ratio",
	"4-15": "Enterprise Value to EBITDA",
	"4-16": "Dividend Yield",
}

// FinancialIndicators returns the indicator catalog keyed by code. The
// descriptions are informational and not an official SimFin copy.
// The returned map is a copy and may be modified freely.
func FinancialIndicators() map[string]string {
	return maps.Clone(indicators)
}

// StatementTypes returns the statement type codes: pl, bs, cf.
func StatementTypes() []string {
	return append([]string(nil), statementTypes...)
}

// PeriodTypes returns the reporting period codes.
func PeriodTypes() []string {
	return append([]string(nil), periodTypes...)
}
