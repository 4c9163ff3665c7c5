package kassa

import (
	"fmt"
	"strings"
)

// MenuItem is one catalog entry. The catalog only seeds line items; once a
// sale is recorded the line item keeps its own copy of name and price, so
// later catalog edits never rewrite history.
type MenuItem struct {
	ID       string
	Name     string
	Price    int64
	Category string
}

// Menu categories, in display order.
const (
	MenuFood   = "food"
	MenuDrinks = "drinks"
	MenuAddons = "addons"
)

// MenuCategories maps a category id to its display name.
var MenuCategories = []struct{ ID, Name string }{
	{MenuFood, "Еда"},
	{MenuDrinks, "Напитки"},
	{MenuAddons, "Добавки"},
}

// MenuItems is the fixed catalog, prices in whole rubles.
var MenuItems = []MenuItem{
	{ID: "sh_classic", Name: "Шаурма", Price: 300, Category: MenuFood},
	{ID: "sh_xl", Name: "Шаурма XL", Price: 400, Category: MenuFood},
	{ID: "dn_big", Name: "Дёнер Большой", Price: 310, Category: MenuFood},
	{ID: "dn_small", Name: "Дёнер Малый", Price: 160, Category: MenuFood},

	{ID: "dr_tea", Name: "Чай", Price: 45, Category: MenuDrinks},
	{ID: "dr_coffee", Name: "Кофе", Price: 50, Category: MenuDrinks},
	{ID: "dr_coffee3in1", Name: "Кофе 3в1", Price: 50, Category: MenuDrinks},

	{ID: "add_cheese", Name: "Сыр", Price: 35, Category: MenuAddons},
	{ID: "add_mushroom", Name: "Грибы", Price: 35, Category: MenuAddons},
	{ID: "add_ham", Name: "Ветчина", Price: 35, Category: MenuAddons},
}

// FindMenuItem looks a catalog entry up by id.
func FindMenuItem(id string) (MenuItem, bool) {
	for _, item := range MenuItems {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}

// MenuLine converts a catalog entry into a sale line with the given
// quantity, copying name and price at the moment of sale.
func (m MenuItem) MenuLine(quantity int64) LineItem {
	return LineItem{
		ID:       m.ID,
		Name:     m.Name,
		Price:    m.Price,
		Quantity: quantity,
		Category: m.Category,
	}
}

// CustomLine builds a free-form line item that is not on the menu.
func CustomLine(name string, price, quantity int64) LineItem {
	return LineItem{
		ID:       "custom_" + strings.ToLower(strings.ReplaceAll(name, " ", "_")),
		Name:     name,
		Price:    price,
		Quantity: quantity,
		Custom:   true,
	}
}

// MenuPrompt renders the catalog as the compact "id: name (priceр)" list
// handed to the assistant.
func MenuPrompt() string {
	lines := make([]string, len(MenuItems))
	for i, item := range MenuItems {
		lines[i] = fmt.Sprintf("%s: %s (%dр)", item.ID, item.Name, item.Price)
	}
	return strings.Join(lines, ", ")
}
