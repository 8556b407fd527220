package category

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"

	"github.com/cruzjeff225/GastoApp/internal/finance"
)

func newTestAPI(t *testing.T) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler().Register(api)
	return api
}

func TestHTTP_ListCategories_All(t *testing.T) {
	resp := newTestAPI(t).Get("/v1/categories")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListCategoriesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Categories, len(finance.ExpenseCategories)+len(finance.IncomeCategories))
	assert.Len(t, body.GoalColors, len(finance.GoalColors))
	assert.Equal(t, finance.DefaultGoalColor, body.GoalColors[0].Hex)
}

func TestHTTP_ListCategories_ExpenseOnly(t *testing.T) {
	resp := newTestAPI(t).Get("/v1/categories?type=EXPENSE")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListCategoriesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Categories, len(finance.ExpenseCategories))
	for _, c := range body.Categories {
		assert.Equal(t, "EXPENSE", c.Type)
	}
}

func TestHTTP_ListCategories_IncomeOnly(t *testing.T) {
	resp := newTestAPI(t).Get("/v1/categories?type=INCOME")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListCategoriesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Categories, len(finance.IncomeCategories))
}

func TestHTTP_ListCategories_UnknownType(t *testing.T) {
	resp := newTestAPI(t).Get("/v1/categories?type=TRANSFER")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_ListCategories_ByName(t *testing.T) {
	resp := newTestAPI(t).Get("/v1/categories?name=Salario")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListCategoriesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Categories, 1)
	assert.Equal(t, "Salario", body.Categories[0].Name)
	assert.Equal(t, "INCOME", body.Categories[0].Type)
}

func TestHTTP_ListCategories_UnknownName(t *testing.T) {
	resp := newTestAPI(t).Get("/v1/categories?name=Mascotas")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
