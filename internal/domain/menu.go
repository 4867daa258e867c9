package domain

// MenuItem is one entry of the read-only menu catalog.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	Price       Money
	Image       string

	Veg          bool
	Bestseller   bool
	Customizable bool
}

// MenuCategory groups menu items for browsing.
type MenuCategory struct {
	ID   string
	Name string
	Icon string
}

// Outlet is a physical restaurant location.
type Outlet struct {
	ID           string
	Name         string
	Address      string
	Phone        string
	OpeningHours string
	Lat          float64
	Lng          float64
}

// Restaurant is the top-level restaurant metadata.
type Restaurant struct {
	Name    string
	Tagline string
	Logo    string
	Outlets []Outlet
}
