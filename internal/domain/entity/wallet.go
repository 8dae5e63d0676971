package entity

// Currency is one of the four wallet denominations.
type Currency string

const (
	// CurrencyTC is the copper tibar.
	CurrencyTC Currency = "TC"
	// CurrencyTS is the silver tibar, the unit every log value is expressed in.
	CurrencyTS Currency = "TS"
	// CurrencyTO is the gold tibar.
	CurrencyTO Currency = "TO"
	// CurrencyLO is the gold bar used for domain-scale transactions.
	CurrencyLO Currency = "LO"
)

// Currencies lists every denomination from lowest to highest.
var Currencies = []Currency{CurrencyTC, CurrencyTS, CurrencyTO, CurrencyLO}

// copperUnits holds each denomination's worth in TC. Keeping the ladder integral
// avoids accumulating 0.1 rounding error in conversions.
var copperUnits = map[Currency]float64{
	CurrencyTC: 1,
	CurrencyTS: 10,
	CurrencyTO: 100,
	CurrencyLO: 10000,
}

// IsValid reports whether c is a known denomination.
func (c Currency) IsValid() bool {
	_, ok := copperUnits[c]

	return ok
}

// Rate returns the worth of one unit of c in TS (TC=0.1, TS=1, TO=10, LO=1000).
func (c Currency) Rate() float64 {
	return copperUnits[c] / copperUnits[CurrencyTS]
}

// ToTS converts amount of c into its TS equivalent.
func ToTS(amount float64, c Currency) float64 {
	return amount * copperUnits[c] / copperUnits[CurrencyTS]
}

// Exchange returns how many units of to are worth amount units of from, unfloored.
func Exchange(amount float64, from, to Currency) float64 {
	return amount * copperUnits[from] / copperUnits[to]
}

// Wallet holds one balance per denomination.
type Wallet struct {
	TC float64 `json:"TC"`
	TS float64 `json:"TS"`
	TO float64 `json:"TO"`
	LO float64 `json:"LO"`
}

// Get returns the balance held in c.
func (w *Wallet) Get(c Currency) float64 {
	switch c {
	case CurrencyTC:
		return w.TC
	case CurrencyTS:
		return w.TS
	case CurrencyTO:
		return w.TO
	case CurrencyLO:
		return w.LO
	default:
		return 0
	}
}

// Add adds delta to the balance held in c. Unknown denominations are ignored.
func (w *Wallet) Add(c Currency, delta float64) {
	switch c {
	case CurrencyTC:
		w.TC += delta
	case CurrencyTS:
		w.TS += delta
	case CurrencyTO:
		w.TO += delta
	case CurrencyLO:
		w.LO += delta
	}
}

// Has reports whether the wallet holds at least amount of c.
func (w *Wallet) Has(c Currency, amount float64) bool {
	return w.Get(c) >= amount
}

// TotalTS returns the wallet's whole worth in TS.
func (w *Wallet) TotalTS() float64 {
	var total float64
	for _, c := range Currencies {
		total += ToTS(w.Get(c), c)
	}

	return total
}
