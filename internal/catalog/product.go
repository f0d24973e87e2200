package catalog

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/jerseyfront/jerseyfront/pkg/errors"
)

// ProductID identifies a product within one loaded catalog snapshot. The
// upstream API serves ids as JSON numbers or strings interchangeably;
// both normalize to the same identifier here.
type ProductID string

func (id *ProductID) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*id = ProductID(strings.TrimSpace(asString))
		return nil
	}
	var asNumber json.Number
	if err := json.Unmarshal(data, &asNumber); err != nil {
		return err
	}
	*id = ProductID(asNumber.String())
	return nil
}

// ParseProductID validates an id taken from a URL segment or payload.
func ParseProductID(raw string) (ProductID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	return ProductID(trimmed), nil
}

// Product is one catalog record. All text attributes are optional; image
// references are already resolved to absolute URLs.
type Product struct {
	ID          ProductID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Brand       string          `json:"brand"`
	Size        string          `json:"size"`
	State       string          `json:"state"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
}

// PrimaryImage returns the first image reference, or "".
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// wireProduct mirrors the upstream JSON shape. Images arrive as one
// comma-joined string rather than a native list.
type wireProduct struct {
	ID          ProductID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Brand       string          `json:"brand"`
	Size        string          `json:"size"`
	State       string          `json:"state"`
	Price       decimal.Decimal `json:"price"`
	Images      string          `json:"images"`
}

func (w wireProduct) toProduct(imageBase string) Product {
	refs := splitImageList(w.Images)
	images := make([]string, 0, len(refs))
	for _, ref := range refs {
		images = append(images, resolveImageURL(imageBase, ref))
	}

	price := w.Price
	if price.IsNegative() {
		price = decimal.Zero
	}

	return Product{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Brand:       w.Brand,
		Size:        w.Size,
		State:       w.State,
		Price:       price,
		Images:      images,
	}
}

// splitImageList tolerates the upstream quirk of a string-encoded list,
// including stray brackets and quotes around individual entries.
func splitImageList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	refs := make([]string, 0, len(parts))
	for _, part := range parts {
		ref := strings.Trim(strings.TrimSpace(part), `[]"'`)
		if ref == "" {
			continue
		}
		refs = append(refs, ref)
	}
	return refs
}

func resolveImageURL(base, ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if base == "" {
		return ref
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(ref, "/")
}
