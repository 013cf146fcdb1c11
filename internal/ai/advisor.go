package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"go-resto-manager/internal/models"
)

// UnavailableMessage is what callers get instead of an error when the
// model endpoint fails. The advisor never propagates provider failures.
const UnavailableMessage = "AI service is currently unavailable. Please check your API key configuration."

// SuggestionLog is where successful suggestions are archived. The real
// implementation is the ai_logs store collection.
type SuggestionLog interface {
	Create(ctx context.Context, item models.AILog) (models.AILog, error)
}

// ChatContext enumerates the dashboard figures the chat assistant may
// reference. Nothing else about the restaurant reaches the model.
type ChatContext struct {
	TotalSalesToday    float64 `json:"totalSalesToday"`
	TotalExpensesToday float64 `json:"totalExpensesToday"`
	NetProfit          float64 `json:"netProfit"`
	AvailableCash      float64 `json:"availableCash"`
	TotalDebts         float64 `json:"totalDebts"`
	UnpaidDebts        float64 `json:"unpaidDebts"`
}

// Advisor turns restaurant data into narrative business insights via the
// configured model provider.
type Advisor struct {
	provider Provider
	logs     SuggestionLog // may be nil when the store is not configured
	now      func() time.Time
}

func NewAdvisor(provider Provider, logs SuggestionLog) *Advisor {
	return &Advisor{provider: provider, logs: logs, now: time.Now}
}

// AnalyzeMarket reviews recent sales against the menu for demand trends.
func (a *Advisor) AnalyzeMarket(ctx context.Context, orders []models.Order, menu []models.MenuItem, expenses []models.Expense) string {
	type saleLine struct {
		Date  string   `json:"date"`
		Items []string `json:"items"`
		Total float64  `json:"total"`
	}
	var sales []saleLine
	for _, o := range lastN(orders, 30) {
		names := make([]string, len(o.Items))
		for i, item := range o.Items {
			names[i] = item.Name
		}
		sales = append(sales, saleLine{Date: o.Date, Items: names, Total: o.TotalPrice})
	}

	type menuLine struct {
		Name     string  `json:"name"`
		Category string  `json:"category"`
		Price    float64 `json:"price"`
	}
	menuSummary := make([]menuLine, len(menu))
	for i, m := range menu {
		menuSummary[i] = menuLine{Name: m.Name, Category: m.Category, Price: m.Price}
	}

	prompt := fmt.Sprintf(`As a restaurant business analyst, analyze this sales data and provide market insights:

Sales Data: %s
Menu Items: %s
Recent Expenses: %s

Provide:
1. Demand trends (which items are selling well/poorly)
2. Seasonal patterns or market changes
3. Recommendations for menu adjustments
4. Pricing optimization suggestions

Keep it concise and actionable.`, jsonOf(sales), jsonOf(menuSummary), jsonOf(lastN(expenses, 10)))

	return a.ask(ctx, models.AILogMarketAnalysis, 0.7,
		"You are an expert restaurant business analyst specializing in market trends and demand forecasting.",
		prompt)
}

// AnalyzeFinances reviews spending patterns and margins.
func (a *Advisor) AnalyzeFinances(ctx context.Context, orders []models.Order, expenses []models.Expense, debts []models.Debt) string {
	var totalRevenue, totalExpenses, totalDebts float64
	for _, o := range orders {
		totalRevenue += o.TotalPrice
	}
	for _, e := range expenses {
		totalExpenses += e.Amount
	}
	for _, d := range debts {
		totalDebts += d.Remaining
	}

	margin := 0.0
	if totalRevenue > 0 {
		margin = (totalRevenue - totalExpenses) / totalRevenue * 100
	}

	var lines []string
	for _, e := range lastN(expenses, 20) {
		lines = append(lines, fmt.Sprintf("%s: %.0f", e.Type, e.Amount))
	}

	prompt := fmt.Sprintf(`Analyze this restaurant's financial behavior:

Total Revenue: %.0f
Total Expenses: %.0f
Profit Margin: %.2f%%
Outstanding Debts: %.0f

Expense Breakdown:
%s

Provide:
1. Spending pattern analysis
2. Cost optimization opportunities
3. Profit margin improvement strategies
4. Cash flow management advice

Be specific and actionable.`, totalRevenue, totalExpenses, margin, totalDebts, strings.Join(lines, "\n"))

	return a.ask(ctx, models.AILogFinancialBehavior, 0.7,
		"You are a financial advisor specializing in restaurant operations and cost optimization.",
		prompt)
}

// SuggestInvestments proposes what to do with the cash on hand.
func (a *Advisor) SuggestInvestments(ctx context.Context, availableCash float64, orders []models.Order, menu []models.MenuItem) string {
	avgSale := 0.0
	if len(orders) > 0 {
		var total float64
		for _, o := range orders {
			total += o.TotalPrice
		}
		avgSale = total / float64(len(orders))
	}

	top := make([]models.MenuItem, len(menu))
	copy(top, menu)
	sort.Slice(top, func(i, j int) bool { return top[i].AvailableQty > top[j].AvailableQty })

	var topNames []string
	for i, m := range top {
		if i == 5 {
			break
		}
		topNames = append(topNames, m.Name)
	}

	prompt := fmt.Sprintf(`Provide investment recommendations for this restaurant:

Available Cash: %.0f
Average Daily Sales: %.2f
Top Selling Items: %s

Suggest:
1. Smart investment opportunities (equipment, marketing, expansion)
2. Inventory optimization strategies
3. New revenue streams (delivery, catering, new products)
4. Risk assessment for each suggestion

Consider the available budget and provide realistic, actionable advice.`, availableCash, avgSale, strings.Join(topNames, ", "))

	return a.ask(ctx, models.AILogInvestmentSuggestion, 0.7,
		"You are a business growth consultant specializing in restaurant expansion and investment strategies.",
		prompt)
}

// Chat answers a free-form question grounded in the current dashboard.
func (a *Advisor) Chat(ctx context.Context, userMessage string, dash ChatContext) string {
	prompt := fmt.Sprintf(`Current restaurant context:
- Total Sales Today: %.0f
- Total Expenses Today: %.0f
- Net Profit: %.0f
- Available Cash: %.0f
- Total Debts: %.0f
- Outstanding Debts: %.0f

User question: %s`,
		dash.TotalSalesToday, dash.TotalExpensesToday, dash.NetProfit,
		dash.AvailableCash, dash.TotalDebts, dash.UnpaidDebts, userMessage)

	return a.ask(ctx, models.AILogChat, 0.7,
		"You are a helpful AI assistant for restaurant management. Provide clear, concise answers based on the restaurant data. Be friendly and professional.",
		prompt)
}

// WeeklySummary writes the week's performance review.
func (a *Advisor) WeeklySummary(ctx context.Context, orders []models.Order, expenses []models.Expense, notes []models.Note) string {
	var revenue, spent float64
	for _, o := range orders {
		revenue += o.TotalPrice
	}
	for _, e := range expenses {
		spent += e.Amount
	}

	var issues []string
	for _, n := range lastN(notes, 10) {
		issues = append(issues, fmt.Sprintf("- %s: %s", n.Category, n.Description))
	}

	prompt := fmt.Sprintf(`Generate a weekly performance summary for this restaurant:

Orders This Week: %d
Total Revenue: %.0f
Total Expenses: %.0f

Notable Issues:
%s

Provide:
1. Performance highlights
2. Areas of concern
3. Improvement recommendations
4. Next week's focus areas

Keep it concise and actionable.`, len(orders), revenue, spent, strings.Join(issues, "\n"))

	return a.ask(ctx, models.AILogGeneral, 0.7,
		"You are a restaurant operations manager providing weekly performance reviews.",
		prompt)
}

// AnalyzeLowStock prioritizes reordering for items running out.
func (a *Advisor) AnalyzeLowStock(ctx context.Context, lowStock []models.MenuItem) string {
	if len(lowStock) == 0 {
		return "All items are well-stocked!"
	}

	var lines []string
	for _, item := range lowStock {
		lines = append(lines, fmt.Sprintf("- %s: %d remaining (Category: %s)", item.Name, item.AvailableQty, item.Category))
	}

	prompt := fmt.Sprintf(`These menu items are running low on stock:

%s

Provide:
1. Reorder priority recommendations
2. Suggested reorder quantities
3. Alternative menu suggestions if items run out
4. Impact assessment on operations`, strings.Join(lines, "\n"))

	return a.ask(ctx, models.AILogGeneral, 0.5,
		"You are an inventory management specialist for restaurants.",
		prompt)
}

// ask runs one completion. Failures are logged and replaced with the
// fixed unavailability message; successes are archived to the suggestion
// log when one is wired.
func (a *Advisor) ask(ctx context.Context, logType models.AILogType, temperature float64, system, user string) string {
	a.provider.SetTemperature(temperature)

	reply, err := a.provider.Complete(ctx, []Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	})
	if err != nil {
		log.Println("AI completion failed:", err)
		return UnavailableMessage
	}

	if a.logs != nil {
		_, err := a.logs.Create(ctx, models.AILog{
			Type:       logType,
			Suggestion: reply,
			CreatedAt:  a.now().Format(time.RFC3339),
		})
		if err != nil {
			log.Println("failed to archive AI suggestion:", err)
		}
	}
	return reply
}

func jsonOf(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

// lastN keeps the most recent n entries of a chronological list.
func lastN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}
