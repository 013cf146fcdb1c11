package models

// EntryDate implementations let dated records flow through the generic
// date-range filter in the stats package.

func (o Order) EntryDate() string   { return o.Date }
func (e Expense) EntryDate() string { return e.Date }
func (n Note) EntryDate() string    { return n.Date }
