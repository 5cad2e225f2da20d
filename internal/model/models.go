package model

// All lists the tables owned by the catalog, in creation order.
func All() []interface{} {
	return []interface{}{
		&Category{},
		&Product{},
		&User{},
	}
}
