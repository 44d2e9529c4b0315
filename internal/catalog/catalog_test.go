package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"tavolo/internal/domain"
	"tavolo/internal/ledger"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testRestaurant() *domain.Restaurant {
	return &domain.Restaurant{
		Name: "Trattoria da Mario",
		Menus: []domain.Menu{
			{
				ID: "menu-1",
				Sections: []domain.MenuSection{
					{
						ID:   "sec-1",
						Name: "Primi",
						Items: []domain.MenuItem{
							{ID: "a", Name: "Carbonara", Category: "Primo", Price: price("10")},
							{ID: "b", Name: "Amatriciana", Category: "Primo", Price: price("5")},
						},
					},
					{
						ID:   "sec-2",
						Name: "Dolci",
						Items: []domain.MenuItem{
							{ID: "c", Name: "Tiramisù", Category: "Dolce", Price: price("7")},
						},
					},
				},
			},
			{
				ID: "menu-2",
				Sections: []domain.MenuSection{
					{
						ID:   "sec-3",
						Name: "Bevande",
						Items: []domain.MenuItem{
							{ID: "d", Name: "Acqua", Category: "Bevanda", Price: price("2.50")},
							{ID: "e", Name: "Caffè", Category: "Bevanda", Price: price("1.50")},
						},
					},
				},
			},
		},
	}
}

func TestFlatten_PreservesDepthFirstOrder(t *testing.T) {
	items := Flatten(testRestaurant())

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids)
}

func TestFlatten_NilAndEmptyTrees(t *testing.T) {
	assert.Empty(t, Flatten(nil))
	assert.Empty(t, Flatten(&domain.Restaurant{Name: "Vuoto"}))
}

func TestCategories_FirstSeenOrderWithoutDuplicates(t *testing.T) {
	categories := Categories(testRestaurant(), "")
	assert.Equal(t, []string{"Primo", "Dolce", "Bevanda"}, categories)
}

func TestCategories_WithFilter(t *testing.T) {
	r := testRestaurant()

	assert.Equal(t, []string{"Dolce"}, Categories(r, "Dolce"))
	assert.Empty(t, Categories(r, "Secondo"))
	assert.Empty(t, Categories(nil, "Primo"))
}

func TestVisibleItems_FilterBehavior(t *testing.T) {
	r := testRestaurant()

	assert.Len(t, VisibleItems(r, ""), 5)

	primi := VisibleItems(r, "Primo")
	assert.Len(t, primi, 2)
	assert.Equal(t, "a", primi[0].ID)
	assert.Equal(t, "b", primi[1].ID)

	assert.Empty(t, VisibleItems(r, "Secondo"))
}

func TestTotal_PrimiScenario(t *testing.T) {
	r := testRestaurant()
	l := ledger.New()

	assert.Equal(t, "0", Total(r, l).String())

	l.Apply("a", 2)
	assert.Equal(t, "20", Total(r, l).String())

	l.Apply("a", -5)
	assert.Equal(t, 0, l.Get("a"))
	assert.Equal(t, "0", Total(r, l).String())

	l.Apply("b", 1)
	assert.Equal(t, "5", Total(r, l).String())
}

func TestTotal_IsLinear(t *testing.T) {
	r := testRestaurant()
	l := ledger.New()
	l.Apply("a", 1)
	l.Apply("c", 2)
	l.Apply("d", 3)

	single := Total(r, l)

	l.Apply("a", 1)
	l.Apply("c", 2)
	l.Apply("d", 3)

	doubled := Total(r, l)
	assert.Equal(t, single.Mul(decimal.NewFromInt(2)).String(), doubled.String())

	l.Reset()
	assert.Equal(t, "0", Total(r, l).String())
}

func TestTotal_EmptyTree(t *testing.T) {
	l := ledger.New()
	l.Apply("ghost", 3)
	assert.Equal(t, "0", Total(nil, l).String())
}
