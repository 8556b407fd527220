package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/cruzjeff225/GastoApp/internal/finance"
)

// Category is the API model for a predefined category.
type Category struct {
	ID    string `json:"id" doc:"Category ID"`
	Name  string `json:"name" doc:"Display name"`
	Icon  string `json:"icon" doc:"Emoji icon"`
	Color string `json:"color" doc:"Hex display color"`
	Type  string `json:"type" doc:"INCOME or EXPENSE"`
}

// GoalColor is the API model for a predefined savings goal color.
type GoalColor struct {
	Hex  string `json:"hex" doc:"Hex color value"`
	Name string `json:"name" doc:"Display name"`
}

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct {
	Type string `query:"type" doc:"Restrict to one transaction type, INCOME or EXPENSE"`
	Name string `query:"name" doc:"Return only the category with this display name"`
}

// ListCategoriesResponseBody is the response body for listing categories.
type ListCategoriesResponseBody struct {
	Categories []Category  `json:"categories" doc:"Predefined categories"`
	GoalColors []GoalColor `json:"goalColors" doc:"Predefined savings goal colors"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

// Handler handles GET /v1/categories. The catalog is static, so there is no
// service behind it.
type Handler struct{}

// NewHandler creates a new category Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Register registers the categories endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Description: "Returns the predefined category catalog and goal color palette, optionally filtered by transaction type or category name.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	var catalog []finance.Category
	switch finance.TransactionType(input.Type) {
	case "":
		catalog = finance.AllCategories()
	case finance.Income, finance.Expense:
		catalog = finance.CategoriesByType(finance.TransactionType(input.Type))
	default:
		return nil, huma.NewError(http.StatusBadRequest, "type must be INCOME or EXPENSE")
	}

	if input.Name != "" {
		c, ok := finance.CategoryByName(input.Name)
		if !ok {
			return nil, huma.NewError(http.StatusNotFound, "unknown category name")
		}
		catalog = []finance.Category{c}
	}

	resp := ListCategoriesResponseBody{
		Categories: make([]Category, len(catalog)),
		GoalColors: make([]GoalColor, len(finance.GoalColors)),
	}
	for i, c := range catalog {
		resp.Categories[i] = Category{
			ID:    c.ID,
			Name:  c.Name,
			Icon:  c.Icon,
			Color: c.Color,
			Type:  string(c.Type),
		}
	}
	for i, gc := range finance.GoalColors {
		resp.GoalColors[i] = GoalColor{Hex: gc.Hex, Name: gc.Name}
	}

	return &ListCategoriesOutput{Body: resp}, nil
}
