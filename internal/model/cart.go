package model

// Sweetness is the requested sugar level for a drink.
type Sweetness string

// Ice is the requested ice level for a drink.
type Ice string

const (
	SweetnessNoSugar    Sweetness = "NO_SUGAR"
	SweetnessLessSweet  Sweetness = "LESS_SWEET"
	SweetnessNormal     Sweetness = "NORMAL"
	SweetnessExtraSweet Sweetness = "EXTRA_SWEET"

	IceNone   Ice = "NO_ICE"
	IceLess   Ice = "LESS_ICE"
	IceNormal Ice = "NORMAL"
	IceExtra  Ice = "EXTRA_ICE"
)

// ParseSweetness maps a request value onto a known sweetness level. An
// empty value falls back to NORMAL; unknown values are rejected.
func ParseSweetness(s string) (Sweetness, bool) {
	switch Sweetness(s) {
	case "":
		return SweetnessNormal, true
	case SweetnessNoSugar, SweetnessLessSweet, SweetnessNormal, SweetnessExtraSweet:
		return Sweetness(s), true
	}
	return "", false
}

// ParseIce maps a request value onto a known ice level. An empty value
// falls back to NORMAL; unknown values are rejected.
func ParseIce(s string) (Ice, bool) {
	switch Ice(s) {
	case "":
		return IceNormal, true
	case IceNone, IceLess, IceNormal, IceExtra:
		return Ice(s), true
	}
	return "", false
}

// Customization is the user's chosen sweetness, ice and toppings for one
// cart line. It is a value object: two customizations with the same fields
// are interchangeable, and identical lines are still never merged in the
// cart.
type Customization struct {
	Sweetness Sweetness `json:"sweetness"`
	Ice       Ice       `json:"ice"`
	Toppings  []Topping `json:"toppings"`
}

// Clone returns a deep copy so that cart rows and order snapshots never
// share topping slices.
func (c Customization) Clone() Customization {
	out := c
	if len(c.Toppings) > 0 {
		out.Toppings = make([]Topping, len(c.Toppings))
		copy(out.Toppings, c.Toppings)
	}
	return out
}

// CartItem is one line of the cart. The drink and customization are stored
// by value so later catalog edits cannot change a line after the fact.
//
// Fields:
//  ID            – line identifier, unique within the session.
//  Drink         – the drink as it was when added.
//  Customization – sweetness/ice/toppings chosen by the user.
//  Quantity      – always >= 1; setting it to zero removes the line.
type CartItem struct {
	ID            uint64        `json:"id"`
	Drink         Drink         `json:"drink"`
	Customization Customization `json:"customization"`
	Quantity      int           `json:"quantity"`
}

// TotalPrice is (drink price + sum of topping prices) * quantity.
func (i CartItem) TotalPrice() int {
	price := i.Drink.Price
	for _, t := range i.Customization.Toppings {
		price += t.Price
	}
	return price * i.Quantity
}

// Clone returns a deep copy of the line.
func (i CartItem) Clone() CartItem {
	out := i
	out.Customization = i.Customization.Clone()
	return out
}

// CloneItems deep-copies a slice of cart lines. Used wherever lines cross
// a store boundary (cart snapshots, order snapshots, reorder restores).
func CloneItems(items []CartItem) []CartItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]CartItem, len(items))
	for n, it := range items {
		out[n] = it.Clone()
	}
	return out
}
