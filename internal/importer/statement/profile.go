package statement

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSingle means one signed column where negatives are spend.
	amountSingle amountMode = iota
	// amountSplit means separate debit and credit columns.
	amountSplit
)

// Profile describes the column layout of a statement export format.
// Supporting another accounting tool is just another Profile entry.
type Profile struct {
	Name          string
	PaymentMethod string
	DateCol       string
	DescCol       string
	CategoryCol   string // optional; empty means the format carries no category
	AmountMode    amountMode
	AmountCol     string // used when AmountMode == amountSingle
	DebitCol      string // used when AmountMode == amountSplit
	CreditCol     string // used when AmountMode == amountSplit
}

// requiredCols returns the column names that must be present for this
// profile to match. The category column is never required.
func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

// profiles is the ordered list of export formats to try during
// auto-detection. More specific profiles come first to avoid false
// matches.
var profiles = []Profile{
	{
		Name:          "card",
		PaymentMethod: "Credit Card",
		DateCol:       "Date",
		DescCol:       "Description",
		AmountMode:    amountSplit,
		DebitCol:      "Debit",
		CreditCol:     "Credit",
	},
	{
		Name:          "ledger",
		PaymentMethod: "Bank Transfer",
		DateCol:       "Date",
		DescCol:       "Description",
		CategoryCol:   "Category",
		AmountMode:    amountSingle,
		AmountCol:     "Amount",
	},
}
