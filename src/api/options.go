package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/FAMH/Collection-Gateway/src/models"
)

// scalarList decodes an option-list endpoint that answers with an array of
// scalars. Years arrive as JSON numbers, everything else as strings; both
// normalize to strings because facet filters compare string-coerced values.
func (c *Client) scalarList(ctx context.Context, path string) ([]string, error) {
	data, err := c.do(ctx, http.MethodGet, path, nil, nil, nil, "")
	if err != nil {
		return nil, err
	}
	var raw []json.Number
	if err := json.Unmarshal(data, &raw); err != nil {
		var asStrings []string
		if err := json.Unmarshal(data, &asStrings); err != nil {
			return nil, err
		}
		return asStrings, nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		out = append(out, v.String())
	}
	return out, nil
}

func (c *Client) Mediums(ctx context.Context) ([]string, error) {
	return c.scalarList(ctx, "/mediums")
}

func (c *Client) CreationYears(ctx context.Context) ([]string, error) {
	return c.scalarList(ctx, "/creation-years")
}

func (c *Client) Nationalities(ctx context.Context) ([]string, error) {
	return c.scalarList(ctx, "/nationalities")
}

func (c *Client) ArtworkConditions(ctx context.Context) ([]string, error) {
	return c.scalarList(ctx, "/artworkconditions")
}

func (c *Client) GiftShopItems(ctx context.Context) ([]models.GiftShopItem, error) {
	data, err := c.do(ctx, http.MethodGet, "/giftshopitemsreport", nil, nil, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeList[models.GiftShopItem](data, nil)
}

func (c *Client) GiftShopCategories(ctx context.Context) ([]models.GiftShopCategory, error) {
	data, err := c.do(ctx, http.MethodGet, "/giftshopcategories", nil, nil, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeList[models.GiftShopCategory](data, nil)
}

func (c *Client) PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	data, err := c.do(ctx, http.MethodGet, "/paymentmethods", nil, nil, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeList[models.PaymentMethod](data, nil)
}
