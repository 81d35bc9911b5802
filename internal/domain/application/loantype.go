package application

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrUnknownLoanType = errors.New("unknown loan type")

// LoanType bounds what an applicant may request and which account types may
// apply for it.
type LoanType struct {
	Code           string
	Name           string
	MinAmount      decimal.Decimal
	MaxAmount      decimal.Decimal
	MinTermMonths  int
	MaxTermMonths  int
	DefaultRatePct decimal.Decimal
	AccountTypes   []string
	RequiredDocs   []string
}

var loanTypes = map[string]LoanType{
	"personal": {
		Code:           "personal",
		Name:           "Personal loan",
		MinAmount:      decimal.NewFromInt(500),
		MaxAmount:      decimal.NewFromInt(50_000),
		MinTermMonths:  3,
		MaxTermMonths:  72,
		DefaultRatePct: decimal.NewFromFloat(9.5),
		AccountTypes:   []string{"personal", "premium"},
		RequiredDocs:   []string{"identity", "income_statement"},
	},
	"vehicle": {
		Code:           "vehicle",
		Name:           "Vehicle loan",
		MinAmount:      decimal.NewFromInt(2_000),
		MaxAmount:      decimal.NewFromInt(150_000),
		MinTermMonths:  12,
		MaxTermMonths:  84,
		DefaultRatePct: decimal.NewFromFloat(6.0),
		AccountTypes:   []string{"personal", "premium", "business"},
		RequiredDocs:   []string{"identity", "income_statement", "purchase_order"},
	},
	"business": {
		Code:           "business",
		Name:           "Business loan",
		MinAmount:      decimal.NewFromInt(10_000),
		MaxAmount:      decimal.NewFromInt(1_000_000),
		MinTermMonths:  6,
		MaxTermMonths:  120,
		DefaultRatePct: decimal.NewFromFloat(7.25),
		AccountTypes:   []string{"business"},
		RequiredDocs:   []string{"identity", "balance_sheet", "tax_return"},
	},
}

func LoanTypeByCode(code string) (LoanType, error) {
	lt, ok := loanTypes[code]
	if !ok {
		return LoanType{}, ErrUnknownLoanType
	}
	return lt, nil
}

func (lt LoanType) AmountInBounds(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(lt.MinAmount) && amount.LessThanOrEqual(lt.MaxAmount)
}

func (lt LoanType) TermInBounds(months int) bool {
	return months >= lt.MinTermMonths && months <= lt.MaxTermMonths
}

func (lt LoanType) AllowsAccountType(accountType string) bool {
	for _, at := range lt.AccountTypes {
		if at == accountType {
			return true
		}
	}
	return false
}
