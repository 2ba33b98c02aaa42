package types

type InventoryConfig struct {
	Roots     []string
	Recursive bool
	Extension string
}
