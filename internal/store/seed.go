package store

import "github.com/onlinedrinkshop/backend/internal/model"

// Seed data for the demo catalog. The shop has no persistence; these
// literals are the whole inventory for the lifetime of the process.

const (
	teaImage      = "https://images.pexels.com/photos/1638280/pexels-photo-1638280.jpeg"
	coffeeImage   = "https://images.pexels.com/photos/302899/pexels-photo-302899.jpeg"
	smoothieImage = "https://images.pexels.com/photos/1092730/pexels-photo-1092730.jpeg"
)

func seedCategories() []model.Category {
	return []model.Category{
		{ID: 1, Name: "Tea", Description: "Traditional and modern tea varieties", ImageURL: teaImage},
		{ID: 2, Name: "Coffee", Description: "Premium coffee drinks", ImageURL: coffeeImage},
		{ID: 3, Name: "Fruit Tea", Description: "Fresh fruit-infused teas", ImageURL: teaImage},
		{ID: 4, Name: "Milk Tea", Description: "Creamy milk tea selections", ImageURL: teaImage},
		{ID: 5, Name: "Smoothies", Description: "Fresh fruit smoothies", ImageURL: smoothieImage},
	}
}

func seedDrinks() []model.Drink {
	return []model.Drink{
		// Tea
		{ID: 1, Name: "Classic Black Tea", Description: "Traditional black tea with rich flavor", Price: 15, CategoryID: 1, ImageURL: teaImage, IsPopular: true},
		{ID: 2, Name: "Green Tea", Description: "Fresh and light green tea", Price: 12, CategoryID: 1, ImageURL: teaImage},
		{ID: 3, Name: "Oolong Tea", Description: "Semi-fermented tea with complex taste", Price: 18, CategoryID: 1, ImageURL: teaImage},
		// Coffee
		{ID: 4, Name: "Americano", Description: "Classic black coffee", Price: 20, CategoryID: 2, ImageURL: coffeeImage},
		{ID: 5, Name: "Cappuccino", Description: "Espresso with steamed milk foam", Price: 25, CategoryID: 2, ImageURL: coffeeImage, IsPopular: true},
		{ID: 6, Name: "Latte", Description: "Smooth espresso with steamed milk", Price: 28, CategoryID: 2, ImageURL: coffeeImage},
		// Fruit Tea
		{ID: 7, Name: "Passion Fruit Tea", Description: "Refreshing passion fruit tea", Price: 22, CategoryID: 3, ImageURL: teaImage, IsPopular: true},
		{ID: 8, Name: "Lemon Tea", Description: "Zesty lemon-infused tea", Price: 18, CategoryID: 3, ImageURL: teaImage},
		{ID: 9, Name: "Peach Tea", Description: "Sweet peach flavored tea", Price: 20, CategoryID: 3, ImageURL: teaImage},
		// Milk Tea
		{ID: 10, Name: "Classic Milk Tea", Description: "Traditional milk tea", Price: 25, CategoryID: 4, ImageURL: teaImage, IsPopular: true},
		{ID: 11, Name: "Taro Milk Tea", Description: "Creamy taro flavored milk tea", Price: 28, CategoryID: 4, ImageURL: teaImage},
		{ID: 12, Name: "Matcha Milk Tea", Description: "Japanese matcha with milk", Price: 30, CategoryID: 4, ImageURL: teaImage},
		// Smoothies
		{ID: 13, Name: "Mango Smoothie", Description: "Fresh mango smoothie", Price: 32, CategoryID: 5, ImageURL: smoothieImage},
		{ID: 14, Name: "Berry Smoothie", Description: "Mixed berry smoothie", Price: 30, CategoryID: 5, ImageURL: smoothieImage},
		{ID: 15, Name: "Banana Smoothie", Description: "Creamy banana smoothie", Price: 28, CategoryID: 5, ImageURL: smoothieImage},
	}
}

func seedToppings() []model.Topping {
	return []model.Topping{
		{ID: 1, Name: "Pearls", Price: 5},
		{ID: 2, Name: "Jelly", Price: 3},
		{ID: 3, Name: "Pudding", Price: 4},
		{ID: 4, Name: "Red Bean", Price: 4},
		{ID: 5, Name: "Coconut", Price: 3},
		{ID: 6, Name: "Aloe Vera", Price: 4},
	}
}
