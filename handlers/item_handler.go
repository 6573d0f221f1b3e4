package handlers

import (
	"fmt"
	"net/http"

	"github.com/HAMZAOUI-AMENY/devops-api/app"
	"github.com/HAMZAOUI-AMENY/devops-api/services"
	"go.uber.org/zap"
)

// itemResponse is the payload returned by GET /items/{item_id}
type itemResponse struct {
	ItemID int     `json:"item_id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}

// pricedItemResponse is the payload returned by create/update
type pricedItemResponse struct {
	ItemID     *int    `json:"item_id,omitempty"`
	Name       string  `json:"name"`
	TotalPrice float64 `json:"total_price"`
}

// deleteResponse is the payload returned by DELETE /items/{item_id}
type deleteResponse struct {
	Status string `json:"status"`
	ItemID int    `json:"item_id"`
}

// ReadItem handles GET /items/{item_id}.
// Returns a deterministic synthetic record where price = item_id * 10.
func ReadItem(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := parseIntParam(r, "item_id")
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}

		deps.Logger.Info("item requested", zap.Int("item_id", itemID))

		if itemID < 0 {
			HandleServiceError(w, services.NewInvalidInputError("Invalid item ID"), deps.Logger)
			return
		}

		respondOK(w, itemResponse{
			ItemID: itemID,
			Name:   fmt.Sprintf("Item %d", itemID),
			Price:  float64(itemID * 10),
		}, deps.Logger)
	}
}

// CreateItem handles POST /items/
func CreateItem(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := decodeItem(r)
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}

		totalPrice := deps.Pricing.TotalPrice(item.PriceValue(), item.Tax)

		deps.Logger.Info("item created",
			zap.String("name", item.Name),
			zap.Float64("total_price", totalPrice))

		respondOK(w, pricedItemResponse{
			Name:       item.Name,
			TotalPrice: totalPrice,
		}, deps.Logger)
	}
}

// UpdateItem handles PUT /items/{item_id}
func UpdateItem(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := parseIntParam(r, "item_id")
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}

		item, err := decodeItem(r)
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}

		deps.Logger.Info("updating item",
			zap.Int("item_id", itemID),
			zap.String("name", item.Name))

		if itemID < 0 {
			HandleServiceError(w, services.NewInvalidInputError("Invalid item ID"), deps.Logger)
			return
		}

		totalPrice := deps.Pricing.TotalPrice(item.PriceValue(), item.Tax)

		respondOK(w, pricedItemResponse{
			ItemID:     &itemID,
			Name:       item.Name,
			TotalPrice: totalPrice,
		}, deps.Logger)
	}
}

// DeleteItem handles DELETE /items/{item_id}
func DeleteItem(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := parseIntParam(r, "item_id")
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}

		deps.Logger.Warn("deleting item", zap.Int("item_id", itemID))

		if itemID < 0 {
			HandleServiceError(w, services.NewInvalidInputError("Invalid item ID"), deps.Logger)
			return
		}

		respondOK(w, deleteResponse{
			Status: "deleted",
			ItemID: itemID,
		}, deps.Logger)
	}
}
