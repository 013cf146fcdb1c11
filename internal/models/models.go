package models

// Every persisted record carries a Key assigned by the record store on
// creation. An empty Key means the entity has not been persisted yet.

// User - whoever is signed in to the dashboard
type User struct {
	Key          string `json:"key,omitempty"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"` // field name kept for compatibility with existing records
	Role         string `json:"role"`     // 'admin', 'manager', 'staff'
}

// MenuItem - a sellable dish or drink with its remaining stock
type MenuItem struct {
	Key          string  `json:"key,omitempty"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	AvailableQty int     `json:"available_qty"`
	Category     string  `json:"category"`
}

// OrderItem - one line of an order, embedded in the order record.
// Name and Price are snapshots taken at order time.
type OrderItem struct {
	MenuItemKey string  `json:"menu_item_key"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Order - a customer's order for one calendar day
type Order struct {
	Key          string      `json:"key,omitempty"`
	Date         string      `json:"date"` // yyyy-MM-dd
	CustomerName string      `json:"customer_name"`
	Items        []OrderItem `json:"items"`
	TotalPrice   float64     `json:"total_price"`
	IsPaid       bool        `json:"is_paid"`
}

// ExpenseType is the closed set of expense categories
type ExpenseType string

const (
	ExpenseRent         ExpenseType = "rent"
	ExpenseFoodSupplies ExpenseType = "food_supplies"
	ExpenseDrinks       ExpenseType = "drinks"
	ExpenseWages        ExpenseType = "wages"
	ExpenseElectricity  ExpenseType = "electricity"
	ExpenseWater        ExpenseType = "water"
	ExpenseGas          ExpenseType = "gas"
	ExpenseMaintenance  ExpenseType = "maintenance"
	ExpenseOther        ExpenseType = "other"
)

// Expense - money going out
type Expense struct {
	Key         string      `json:"key,omitempty"`
	Date        string      `json:"date"`
	Type        ExpenseType `json:"type"`
	Amount      float64     `json:"amount"`
	Description string      `json:"description"`
}

// Debt - running ledger for a customer who eats on credit.
// Remaining should equal TotalDebt - Paid; the settlement rules maintain
// this by convention, the store never enforces it.
type Debt struct {
	Key          string  `json:"key,omitempty"`
	CustomerName string  `json:"customer_name"`
	TotalDebt    float64 `json:"total_debt"`
	Paid         float64 `json:"paid"`
	Remaining    float64 `json:"remaining"`
	LastUpdated  string  `json:"last_updated"`
}

// NoteCategory is the closed set of operational note categories
type NoteCategory string

const (
	NoteComplaint    NoteCategory = "complaint"
	NoteWaste        NoteCategory = "waste"
	NoteFoodReturned NoteCategory = "food_returned"
	NoteObservation  NoteCategory = "observation"
	NoteOther        NoteCategory = "other"
)

// Note - a free-text operational note
type Note struct {
	Key         string       `json:"key,omitempty"`
	Date        string       `json:"date"`
	Description string       `json:"description"`
	Category    NoteCategory `json:"category"`
}

// AILogType tags what kind of advice a stored AI suggestion was
type AILogType string

const (
	AILogMarketAnalysis       AILogType = "market_analysis"
	AILogFinancialBehavior    AILogType = "financial_behavior"
	AILogInvestmentSuggestion AILogType = "investment_suggestion"
	AILogChat                 AILogType = "chat"
	AILogGeneral              AILogType = "general"
)

// AILog - an AI suggestion kept for later review
type AILog struct {
	Key        string    `json:"key,omitempty"`
	Type       AILogType `json:"type"`
	Suggestion string    `json:"suggestion"`
	CreatedAt  string    `json:"created_at"`
}

// DashboardStats is derived from the current orders, expenses and debts.
// It is recomputed after every committed mutation and never persisted.
type DashboardStats struct {
	TotalSalesToday    float64 `json:"totalSalesToday"`
	TotalExpensesToday float64 `json:"totalExpensesToday"`
	NetProfit          float64 `json:"netProfit"`
	AvailableCash      float64 `json:"availableCash"`
	TotalDebts         float64 `json:"totalDebts"`
	UnpaidDebts        float64 `json:"unpaidDebts"`
}
