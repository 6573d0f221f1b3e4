package models

// Item is the request/response payload for the item endpoints.
//
// Items are request-scoped: they are constructed from the request
// body on create/update and never stored. Description is optional;
// Tax defaults to 0.0 when omitted and is otherwise unconstrained.
// Price is a pointer so that a missing price is distinguishable from
// an explicit zero.
type Item struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Tax         float64  `json:"tax"`
}

// PriceValue returns the item price, or 0 when unset.
func (i *Item) PriceValue() float64 {
	if i.Price == nil {
		return 0
	}
	return *i.Price
}
