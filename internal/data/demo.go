package data

import (
	"go-resto-manager/internal/models"
	"go-resto-manager/internal/stats"
)

// SeedDemo installs the demonstration dataset. It runs when the record
// store is not configured, and a later Refresh only overwrites a collection
// the store actually has records for.
func (c *Coordinator) SeedDemo() {
	now := c.now()
	today := stats.Today(now)
	yesterday := stats.Today(now.AddDate(0, 0, -1))
	twoDaysAgo := stats.Today(now.AddDate(0, 0, -2))

	c.mu.Lock()
	defer c.mu.Unlock()

	c.menu = []models.MenuItem{
		{Key: "menu_1", Name: "Chicken Curry", Price: 15000, AvailableQty: 25, Category: "Main Course"},
		{Key: "menu_2", Name: "Beef Stew", Price: 18000, AvailableQty: 20, Category: "Main Course"},
		{Key: "menu_3", Name: "Fish & Chips", Price: 20000, AvailableQty: 15, Category: "Main Course"},
		{Key: "menu_4", Name: "Vegetable Rice", Price: 10000, AvailableQty: 30, Category: "Main Course"},
		{Key: "menu_5", Name: "Chapati", Price: 2000, AvailableQty: 50, Category: "Sides"},
		{Key: "menu_6", Name: "Beans (Foul)", Price: 8000, AvailableQty: 8, Category: "Main Course"},
		{Key: "menu_7", Name: "Orange Juice", Price: 5000, AvailableQty: 40, Category: "Beverages"},
		{Key: "menu_8", Name: "Soda", Price: 3000, AvailableQty: 60, Category: "Beverages"},
		{Key: "menu_9", Name: "Coffee", Price: 4000, AvailableQty: 35, Category: "Beverages"},
		{Key: "menu_10", Name: "Samosa", Price: 2500, AvailableQty: 45, Category: "Snacks"},
	}

	c.orders = []models.Order{
		{
			Key: "order_1", Date: today, CustomerName: "John Doe",
			Items: []models.OrderItem{
				{MenuItemKey: "menu_1", Name: "Chicken Curry", Quantity: 2, Price: 15000},
				{MenuItemKey: "menu_7", Name: "Orange Juice", Quantity: 2, Price: 5000},
			},
			TotalPrice: 40000, IsPaid: true,
		},
		{
			Key: "order_2", Date: today, CustomerName: "Jane Smith",
			Items: []models.OrderItem{
				{MenuItemKey: "menu_3", Name: "Fish & Chips", Quantity: 1, Price: 20000},
				{MenuItemKey: "menu_8", Name: "Soda", Quantity: 1, Price: 3000},
			},
			TotalPrice: 23000, IsPaid: true,
		},
		{
			Key: "order_3", Date: today, CustomerName: "Ahmed Hassan",
			Items: []models.OrderItem{
				{MenuItemKey: "menu_2", Name: "Beef Stew", Quantity: 3, Price: 18000},
				{MenuItemKey: "menu_5", Name: "Chapati", Quantity: 6, Price: 2000},
			},
			TotalPrice: 66000, IsPaid: false,
		},
		{
			Key: "order_4", Date: yesterday, CustomerName: "Mary Johnson",
			Items: []models.OrderItem{
				{MenuItemKey: "menu_4", Name: "Vegetable Rice", Quantity: 2, Price: 10000},
				{MenuItemKey: "menu_9", Name: "Coffee", Quantity: 2, Price: 4000},
			},
			TotalPrice: 28000, IsPaid: true,
		},
		{
			Key: "order_5", Date: yesterday, CustomerName: "Peter Brown",
			Items: []models.OrderItem{
				{MenuItemKey: "menu_1", Name: "Chicken Curry", Quantity: 1, Price: 15000},
				{MenuItemKey: "menu_10", Name: "Samosa", Quantity: 4, Price: 2500},
			},
			TotalPrice: 25000, IsPaid: true,
		},
	}

	c.expenses = []models.Expense{
		{Key: "exp_1", Date: today, Type: models.ExpenseFoodSupplies, Amount: 50000, Description: "Vegetables and meat from market"},
		{Key: "exp_2", Date: today, Type: models.ExpenseDrinks, Amount: 30000, Description: "Beverages stock refill"},
		{Key: "exp_3", Date: yesterday, Type: models.ExpenseElectricity, Amount: 45000, Description: "Monthly electricity bill"},
		{Key: "exp_4", Date: yesterday, Type: models.ExpenseWages, Amount: 120000, Description: "Staff salaries - weekly"},
		{Key: "exp_5", Date: twoDaysAgo, Type: models.ExpenseGas, Amount: 25000, Description: "Cooking gas refill"},
		{Key: "exp_6", Date: twoDaysAgo, Type: models.ExpenseMaintenance, Amount: 15000, Description: "Kitchen equipment repair"},
	}

	c.debts = []models.Debt{
		{Key: "debt_1", CustomerName: "Ahmed Hassan", TotalDebt: 66000, Paid: 0, Remaining: 66000, LastUpdated: today},
		{Key: "debt_2", CustomerName: "Sarah Wilson", TotalDebt: 45000, Paid: 20000, Remaining: 25000, LastUpdated: yesterday},
	}

	c.notes = []models.Note{
		{Key: "note_1", Date: today, Description: "Customer complained about beans being cold", Category: models.NoteComplaint},
		{Key: "note_2", Date: today, Description: "Wasted 2kg of vegetables due to spoilage", Category: models.NoteWaste},
		{Key: "note_3", Date: yesterday, Description: "Customer returned fish dish - overcooked", Category: models.NoteFoodReturned},
		{Key: "note_4", Date: yesterday, Description: "Peak hours: 12pm-2pm and 7pm-9pm", Category: models.NoteObservation},
	}

	c.recompute()
}
