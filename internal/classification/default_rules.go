package classification

import "github.com/Veraticus/snacker/internal/model"

// DefaultRules returns keyword rules for the default categories.
func DefaultRules() []Rule {
	return []Rule{
		// Income
		{
			Name:       "Payroll",
			CategoryID: "salary",
			Type:       model.TypeIncome,
			Regex:      `\b(PAYROLL|SALARY|WAGES|DIRECT\s*DEP|DIRECTDEP)\b`,
			Priority:   100,
		},
		{
			Name:       "Freelance Platform",
			CategoryID: "freelance",
			Type:       model.TypeIncome,
			Regex:      `\b(UPWORK|FIVERR|FREELANCE|INVOICE|PAYONEER)\b`,
			Priority:   90,
		},
		{
			Name:       "Interest and Dividends",
			CategoryID: "investment",
			Type:       model.TypeIncome,
			Regex:      `\b(INTEREST|INT\s*EARNED|DIVIDENDS?|CAPITAL\s*GAIN)\b`,
			Priority:   90,
		},
		{
			Name:       "Gift Received",
			CategoryID: "gift_income",
			Type:       model.TypeIncome,
			Regex:      `\b(GIFT|PADALA)\b`,
			Priority:   50,
		},

		// Expenses
		{
			Name:       "Rent and Mortgage",
			CategoryID: "housing",
			Type:       model.TypeExpense,
			Regex:      `\b(RENT|MORTGAGE|CONDO\s*DUES|HOA)\b`,
			Priority:   95,
		},
		{
			Name:       "Utilities",
			CategoryID: "utilities",
			Type:       model.TypeExpense,
			Regex:      `\b(MERALCO|MAYNILAD|MANILA\s*WATER|ELECTRIC|WATER\s*BILL|PLDT|GLOBE|SMART|CONVERGE|INTERNET|COMCAST|VERIZON)\b`,
			Priority:   90,
		},
		{
			Name:       "Transport",
			CategoryID: "transport",
			Type:       model.TypeExpense,
			Regex:      `\b(GRAB|UBER|LYFT|ANGKAS|PETRON|SHELL|CALTEX|GAS\s*STATION|PARKING|TOLL|AUTOSWEEP|EASYTRIP|LRT|MRT|BEEP)\b`,
			Priority:   85,
		},
		{
			Name:       "Travel",
			CategoryID: "travel_expense",
			Type:       model.TypeExpense,
			Regex:      `\b(AIRLINES?|AIRWAYS|CEBU\s*PAC|PAL\s|AIRBNB|HOTEL|AGODA|BOOKING\.COM|EXPEDIA)\b`,
			Priority:   85,
		},
		{
			Name:       "Health",
			CategoryID: "health",
			Type:       model.TypeExpense,
			Regex:      `\b(PHARMACY|MERCURY\s*DRUG|WATSONS|HOSPITAL|CLINIC|DENTAL|MEDICAL|CVS|WALGREENS)\b`,
			Priority:   80,
		},
		{
			Name:       "Education",
			CategoryID: "education",
			Type:       model.TypeExpense,
			Regex:      `\b(TUITION|SCHOOL|UNIVERSITY|COLLEGE|COURSERA|UDEMY|BOOKSTORE|NATIONAL\s*BOOK)\b`,
			Priority:   80,
		},
		{
			Name:       "Entertainment",
			CategoryID: "entertainment",
			Type:       model.TypeExpense,
			Regex:      `\b(NETFLIX|SPOTIFY|DISNEY|HBO|YOUTUBE|STEAM|CINEMA|MOVIES?|CONCERT|TICKETNET)\b`,
			Priority:   75,
		},
		{
			Name:       "Food and Drinks",
			CategoryID: "food",
			Type:       model.TypeExpense,
			Regex:      `\b(JOLLIBEE|MCDONALD'?S|STARBUCKS|RESTAURANT|CAFE|COFFEE|BAKERY|GRILL|PIZZA|FOODPANDA|GRABFOOD|GROCERY|SUPERMARKET|PUREGOLD|WHOLE\s*FOODS|MARKET)\b`,
			Priority:   70,
		},
		{
			Name:       "Shopping",
			CategoryID: "shopping",
			Type:       model.TypeExpense,
			Regex:      `\b(AMAZON|LAZADA|SHOPEE|SM\s*STORE|UNIQLO|TARGET|WALMART|IKEA|MALL)\b`,
			Priority:   60,
		},
	}
}
