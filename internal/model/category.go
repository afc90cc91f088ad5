package model

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxCategoryNameLength bounds category display names.
const MaxCategoryNameLength = 50

// ErrNameTooLong is the ErrInvalidName raised for names over the limit.
var ErrNameTooLong = fmt.Errorf("%w: name too long", ErrInvalidName)

// Category is a named, typed label attachable to transactions.
type Category struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Type TransactionType `json:"type"`
	Icon Icon            `json:"icon"`
}

// Validate checks a category as entered by the user.
func (c Category) Validate() error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("%w: category name is required", ErrInvalidName)
	}
	if utf8.RuneCountInString(name) > MaxCategoryNameLength {
		return fmt.Errorf("%w (max %d characters)", ErrNameTooLong, MaxCategoryNameLength)
	}
	if !c.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, c.Type)
	}
	return nil
}

// DefaultCategories returns the seeded category set, income first.
func DefaultCategories() []Category {
	return []Category{
		{ID: "salary", Name: "Salary", Type: TypeIncome, Icon: IconBriefcase},
		{ID: "freelance", Name: "Freelance", Type: TypeIncome, Icon: IconLaptop},
		{ID: "investment", Name: "Investment", Type: TypeIncome, Icon: IconTrendingUp},
		{ID: "gift_income", Name: "Gift", Type: TypeIncome, Icon: IconGift},
		{ID: "other_income", Name: "Other", Type: TypeIncome, Icon: IconPlusCircle},

		{ID: "food", Name: "Food & Drinks", Type: TypeExpense, Icon: IconUtensils},
		{ID: "housing", Name: "Housing", Type: TypeExpense, Icon: IconHome},
		{ID: "transport", Name: "Transport", Type: TypeExpense, Icon: IconCar},
		{ID: "utilities", Name: "Utilities", Type: TypeExpense, Icon: IconLightbulb},
		{ID: "health", Name: "Health", Type: TypeExpense, Icon: IconHeartPulse},
		{ID: "entertainment", Name: "Entertainment", Type: TypeExpense, Icon: IconTicket},
		{ID: "shopping", Name: "Shopping", Type: TypeExpense, Icon: IconShoppingCart},
		{ID: "education", Name: "Education", Type: TypeExpense, Icon: IconBookOpen},
		{ID: "travel_expense", Name: "Travel", Type: TypeExpense, Icon: IconPlane},
		{ID: "gift_expense", Name: "Gift", Type: TypeExpense, Icon: IconGift},
		{ID: "other_expense", Name: "Other", Type: TypeExpense, Icon: IconPlusCircle},
	}
}

// Default category IDs used outside the seed list.
const (
	CategoryOtherIncome  = "other_income"
	CategoryOtherExpense = "other_expense"
)

// FindCategory returns the category with the given ID.
func FindCategory(categories []Category, id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
