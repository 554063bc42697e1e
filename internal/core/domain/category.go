package domain

// Category is a catalog entry: stable identifier plus display metadata.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// CategoryOther is the identifier used for the fallback display entry.
const CategoryOther = "other"

// CategoryCatalog is an immutable, ordered lookup table of categories.
type CategoryCatalog struct {
	ordered []Category
	byID    map[string]int
}

// NewCategoryCatalog builds a catalog; later duplicates of an ID are ignored.
func NewCategoryCatalog(categories ...Category) *CategoryCatalog {
	c := &CategoryCatalog{byID: make(map[string]int, len(categories))}
	for _, cat := range categories {
		if _, dup := c.byID[cat.ID]; dup {
			continue
		}
		c.byID[cat.ID] = len(c.ordered)
		c.ordered = append(c.ordered, cat)
	}
	return c
}

// DefaultCatalog is the fixed household category list shared by every aggregator.
var DefaultCatalog = NewCategoryCatalog(
	Category{ID: "groceries", Name: "Groceries", Icon: "🛒"},
	Category{ID: "dining", Name: "Dining", Icon: "🍽️"},
	Category{ID: "rent", Name: "Rent", Icon: "🏠"},
	Category{ID: "utilities", Name: "Utilities", Icon: "💡"},
	Category{ID: "transport", Name: "Transport", Icon: "🚗"},
	Category{ID: "entertainment", Name: "Entertainment", Icon: "🎬"},
	Category{ID: "shopping", Name: "Shopping", Icon: "🛍️"},
	Category{ID: "health", Name: "Health", Icon: "💊"},
	Category{ID: "travel", Name: "Travel", Icon: "✈️"},
	Category{ID: CategoryOther, Name: "Other", Icon: "📦"},
)

// All returns the catalog entries in display order.
func (c *CategoryCatalog) All() []Category {
	out := make([]Category, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Lookup finds a category by ID.
func (c *CategoryCatalog) Lookup(id string) (Category, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Category{}, false
	}
	return c.ordered[idx], true
}

// Display returns metadata for id. Unknown IDs keep their identifier but get
// the generic "other" name and icon.
func (c *CategoryCatalog) Display(id string) Category {
	if cat, ok := c.Lookup(id); ok {
		return cat
	}
	fallback := Category{Name: "Other", Icon: "📦"}
	if other, ok := c.Lookup(CategoryOther); ok {
		fallback = other
	}
	fallback.ID = id
	return fallback
}

// Contains reports whether id is a catalog identifier.
func (c *CategoryCatalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}
