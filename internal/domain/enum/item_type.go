package enum

// ItemType distinguishes the two inventory lines a sale or transfer can touch
type ItemType string

const (
	ItemTypePhone     ItemType = "phone"
	ItemTypeAccessory ItemType = "accessory"
)

// Valid reports whether the item type is one of the known values
func (t ItemType) Valid() bool {
	return t == ItemTypePhone || t == ItemTypeAccessory
}
