package finance

// Category is a predefined transaction category.
type Category struct {
	ID    string
	Name  string
	Icon  string
	Color string
	Type  TransactionType
}

// The catalog mirrors the categories the mobile client offers. Note "Otros"
// appears once per type.
var (
	ExpenseCategories = []Category{
		{ID: "1", Name: "Comida", Icon: "🍔", Color: "#FF6B6B", Type: Expense},
		{ID: "2", Name: "Transporte", Icon: "🚗", Color: "#4ECDC4", Type: Expense},
		{ID: "3", Name: "Entretenimiento", Icon: "🎬", Color: "#45B7D1", Type: Expense},
		{ID: "4", Name: "Vivienda", Icon: "🏠", Color: "#96CEB4", Type: Expense},
		{ID: "5", Name: "Salud", Icon: "💊", Color: "#DDA15E", Type: Expense},
		{ID: "6", Name: "Educación", Icon: "📚", Color: "#BC6C25", Type: Expense},
		{ID: "7", Name: "Compras", Icon: "🛍️", Color: "#E63946", Type: Expense},
		{ID: "8", Name: "Servicios", Icon: "💡", Color: "#457B9D", Type: Expense},
		{ID: "9", Name: "Otros", Icon: "📦", Color: "#8D99AE", Type: Expense},
	}

	IncomeCategories = []Category{
		{ID: "10", Name: "Salario", Icon: "💼", Color: "#06D6A0", Type: Income},
		{ID: "11", Name: "Freelance", Icon: "💻", Color: "#118AB2", Type: Income},
		{ID: "12", Name: "Inversiones", Icon: "📈", Color: "#073B4C", Type: Income},
		{ID: "13", Name: "Regalo", Icon: "🎁", Color: "#EF476F", Type: Income},
		{ID: "14", Name: "Otros", Icon: "💰", Color: "#FFD166", Type: Income},
	}
)

// GoalColors are the predefined savings goal colors, hex value to display name.
var GoalColors = []struct {
	Hex  string
	Name string
}{
	{"#7C3AED", "Púrpura"},
	{"#3B82F6", "Azul"},
	{"#10B981", "Verde"},
	{"#F59E0B", "Naranja"},
	{"#EF4444", "Rojo"},
	{"#EC4899", "Rosa"},
	{"#8B5CF6", "Violeta"},
	{"#14B8A6", "Turquesa"},
	{"#F97316", "Naranja Oscuro"},
	{"#06B6D4", "Cyan"},
}

// DefaultGoalColor is applied when a goal is created without a color.
const DefaultGoalColor = "#7C3AED"

// AllCategories returns the expense catalog followed by the income catalog.
func AllCategories() []Category {
	all := make([]Category, 0, len(ExpenseCategories)+len(IncomeCategories))
	all = append(all, ExpenseCategories...)
	all = append(all, IncomeCategories...)
	return all
}

// CategoriesByType returns the catalog for one transaction type.
func CategoriesByType(typ TransactionType) []Category {
	if typ == Expense {
		return ExpenseCategories
	}
	return IncomeCategories
}

// CategoryByName finds a category by display name. The first match wins, so
// "Otros" resolves to the expense entry.
func CategoryByName(name string) (Category, bool) {
	for _, c := range AllCategories() {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}
