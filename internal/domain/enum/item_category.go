package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ItemCategory tells whether an invoice item is part of the tax base.
// It is persisted in the boolean column is_tax_deposit.
type ItemCategory int

const (
	ItemCategoryRegular    ItemCategory = 0
	ItemCategoryTaxDeposit ItemCategory = 1
)

func (c ItemCategory) String() string {
	names := [...]string{"Regular", "TaxDeposit"}
	if int(c) < 0 || int(c) >= len(names) {
		return "Regular"
	}
	return names[c]
}

// IsTaxDeposit reports whether the item was already withheld or deposited elsewhere.
func (c ItemCategory) IsTaxDeposit() bool {
	return c == ItemCategoryTaxDeposit
}

func (c ItemCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ItemCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		switch str {
		case "TaxDeposit":
			*c = ItemCategoryTaxDeposit
		default:
			*c = ItemCategoryRegular
		}
		return nil
	}

	var flag bool
	if err := json.Unmarshal(data, &flag); err == nil {
		*c = categoryFromFlag(flag)
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return err
	}
	*c = ItemCategory(i)
	return nil
}

// Value stores the category as the legacy is_tax_deposit flag.
func (c ItemCategory) Value() (driver.Value, error) {
	return c == ItemCategoryTaxDeposit, nil
}

// Scan reads the is_tax_deposit flag. NULL is treated as a regular item.
func (c *ItemCategory) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*c = ItemCategoryRegular
	case bool:
		*c = categoryFromFlag(v)
	case int64:
		*c = categoryFromFlag(v != 0)
	case int:
		*c = categoryFromFlag(v != 0)
	case []byte:
		return c.scanString(string(v))
	case string:
		return c.scanString(v)
	default:
		return fmt.Errorf("enum: cannot scan %T into ItemCategory", value)
	}
	return nil
}

func (c *ItemCategory) scanString(s string) error {
	switch s {
	case "t", "true", "TRUE", "1":
		*c = ItemCategoryTaxDeposit
	case "f", "false", "FALSE", "0", "":
		*c = ItemCategoryRegular
	default:
		return fmt.Errorf("enum: invalid is_tax_deposit value %q", s)
	}
	return nil
}

func categoryFromFlag(flag bool) ItemCategory {
	if flag {
		return ItemCategoryTaxDeposit
	}
	return ItemCategoryRegular
}
