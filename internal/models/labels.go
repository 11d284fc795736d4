package models

// The reference application persisted its Indonesian UI labels directly.
// Here the labels are a presentation concern only: storage holds the enum
// tags, and these helpers translate at the boundary.

const (
	labelIncome  = "Pemasukan"
	labelExpense = "Pengeluaran"
	labelBank    = "Rekening"
	labelCash    = "Cash"
)

// Label returns the display label for k, or the raw tag if unknown.
func (k Kind) Label() string {
	switch k {
	case KindIncome:
		return labelIncome
	case KindExpense:
		return labelExpense
	}
	return string(k)
}

// Label returns the display label for a, or the raw tag if unknown.
func (a Account) Label() string {
	switch a {
	case AccountBank:
		return labelBank
	case AccountCash:
		return labelCash
	}
	return string(a)
}

// ParseKindLabel maps a display label back to its kind. It also accepts the
// internal tag so API clients may send either form.
func ParseKindLabel(s string) (Kind, bool) {
	switch s {
	case labelIncome, string(KindIncome):
		return KindIncome, true
	case labelExpense, string(KindExpense):
		return KindExpense, true
	}
	return "", false
}

// ParseAccountLabel maps a display label back to its account. It also accepts
// the internal tag.
func ParseAccountLabel(s string) (Account, bool) {
	switch s {
	case labelBank, string(AccountBank):
		return AccountBank, true
	case labelCash, string(AccountCash):
		return AccountCash, true
	}
	return "", false
}
