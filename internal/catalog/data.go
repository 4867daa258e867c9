package catalog

import (
	"golang.org/x/text/currency"

	"github.com/hashtagbbq/tableside/internal/domain"
)

var inr = currency.MustParseISO("INR")

// rupees builds a price from whole rupees, stored as paise.
func rupees(amount int64) domain.Money {
	return domain.Money{Amount: amount * 100, Currency: inr}
}

// Default returns the Hashtag BBQ catalog.
func Default() *Catalog {
	return New(hashtagBBQ, hashtagCategories, hashtagMenu)
}

var hashtagBBQ = domain.Restaurant{
	Name:    "Hashtag BBQ",
	Tagline: "Authentic BBQ & Grills",
	Logo:    "https://customer-assets.emergentagent.com/job_trc-cafe/artifacts/nlk4e25b_logo.png",
	Outlets: []domain.Outlet{
		{
			ID:           "1",
			Name:         "Hashtag BBQ (Chandkheda)",
			Address:      "Shop 12, Chandkheda Circle, Ahmedabad - 382424, Gujarat",
			Phone:        "+91-9876543210",
			OpeningHours: "11:00 AM - 11:00 PM",
			Lat:          23.1125,
			Lng:          72.6156,
		},
	},
}

var hashtagCategories = []domain.MenuCategory{
	{ID: "veg-starters", Name: "Veg Starters", Icon: "🥗"},
	{ID: "non-veg-starters", Name: "Non-Veg Starters", Icon: "🍗"},
	{ID: "bbq-platters", Name: "BBQ Platters", Icon: "🍖"},
	{ID: "tandoori-specials", Name: "Tandoori Specials", Icon: "🔥"},
	{ID: "breads", Name: "Breads", Icon: "🫓"},
	{ID: "rice-biryani", Name: "Rice & Biryani", Icon: "🍚"},
	{ID: "beverages", Name: "Beverages", Icon: "🥤"},
	{ID: "desserts", Name: "Desserts", Icon: "🍨"},
}

var hashtagMenu = map[string][]domain.MenuItem{
	"veg-starters": {
		{
			ID:           "vs1",
			Name:         "Paneer Tikka",
			Description:  "Cottage cheese cubes marinated in spices and grilled to perfection",
			Price:        rupees(240),
			Image:        "https://images.unsplash.com/photo-1567188040759-fb8a883dc6d8?w=400",
			Veg:          true,
			Bestseller:   true,
			Customizable: true,
		},
		{
			ID:           "vs2",
			Name:         "Mushroom Tikka",
			Description:  "Fresh mushrooms marinated in tandoori spices",
			Price:        rupees(220),
			Image:        "https://images.unsplash.com/photo-1516714435131-44d6b64dc6a2?w=400",
			Veg:          true,
			Customizable: true,
		},
		{
			ID:          "vs3",
			Name:        "Veg Seekh Kebab",
			Description: "Minced vegetables with aromatic spices shaped and grilled",
			Price:       rupees(200),
			Image:       "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398?w=400",
			Veg:         true,
		},
		{
			ID:           "vs4",
			Name:         "Hara Bhara Kebab",
			Description:  "Green vegetable patties with spinach and peas",
			Price:        rupees(210),
			Image:        "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=400",
			Veg:          true,
			Customizable: true,
		},
	},
	"non-veg-starters": {
		{
			ID:           "nvs1",
			Name:         "Chicken Tikka",
			Description:  "Boneless chicken pieces marinated and char-grilled",
			Price:        rupees(280),
			Image:        "https://images.unsplash.com/photo-1599487488170-d11ec9c172f0?w=400",
			Bestseller:   true,
			Customizable: true,
		},
		{
			ID:           "nvs2",
			Name:         "Chicken Seekh Kebab",
			Description:  "Minced chicken with spices grilled on skewers",
			Price:        rupees(260),
			Image:        "https://images.unsplash.com/photo-1603360946369-dc9bb6258143?w=400",
			Customizable: true,
		},
		{
			ID:          "nvs3",
			Name:        "Chicken Wings",
			Description: "Spicy grilled chicken wings with BBQ sauce",
			Price:       rupees(290),
			Image:       "https://images.unsplash.com/photo-1608039755401-742074f0548d?w=400",
			Bestseller:  true,
		},
		{
			ID:           "nvs4",
			Name:         "Mutton Seekh Kebab",
			Description:  "Minced mutton with aromatic spices",
			Price:        rupees(320),
			Image:        "https://images.unsplash.com/photo-1529692236671-f1f6cf9683ba?w=400",
			Customizable: true,
		},
		{
			ID:           "nvs5",
			Name:         "Fish Tikka",
			Description:  "Boneless fish marinated in tandoori masala",
			Price:        rupees(340),
			Image:        "https://images.unsplash.com/photo-1580959375944-2c89eb3a33d5?w=400",
			Customizable: true,
		},
	},
	"bbq-platters": {
		{
			ID:          "bbq1",
			Name:        "Veg BBQ Platter",
			Description: "Assorted veg kebabs - Paneer tikka, mushroom, seekh kebab",
			Price:       rupees(380),
			Image:       "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=400",
			Veg:         true,
			Bestseller:  true,
		},
		{
			ID:          "bbq2",
			Name:        "Chicken BBQ Platter",
			Description: "Mix of chicken tikka, seekh kebab and wings",
			Price:       rupees(400),
			Image:       "https://images.unsplash.com/photo-1544025162-d76694265947?w=400",
			Bestseller:  true,
		},
		{
			ID:          "bbq3",
			Name:        "Mixed Grill Platter",
			Description: "Combo of chicken and mutton kebabs",
			Price:       rupees(400),
			Image:       "https://images.unsplash.com/photo-1598103442097-8b74394b95c6?w=400",
			Bestseller:  true,
		},
	},
	"tandoori-specials": {
		{
			ID:          "ts1",
			Name:        "Tandoori Chicken (Half)",
			Description: "Classic tandoori chicken marinated overnight",
			Price:       rupees(280),
			Image:       "https://images.unsplash.com/photo-1610057099443-fde8c4d50f91?w=400",
			Bestseller:  true,
		},
		{
			ID:           "ts2",
			Name:         "Tandoori Paneer",
			Description:  "Whole paneer marinated in tandoori spices",
			Price:        rupees(260),
			Image:        "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?w=400",
			Veg:          true,
			Customizable: true,
		},
		{
			ID:          "ts3",
			Name:        "Tandoori Fish",
			Description: "Pomfret fish marinated in Indian spices",
			Price:       rupees(380),
			Image:       "https://images.unsplash.com/photo-1534422298391-e4f8c172dddb?w=400",
		},
	},
	"breads": {
		{
			ID:          "br1",
			Name:        "Butter Naan",
			Description: "Soft tandoori naan brushed with butter",
			Price:       rupees(50),
			Image:       "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=400",
			Veg:         true,
		},
		{
			ID:          "br2",
			Name:        "Garlic Naan",
			Description: "Naan topped with garlic and coriander",
			Price:       rupees(60),
			Image:       "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400",
			Veg:         true,
			Bestseller:  true,
		},
		{
			ID:          "br3",
			Name:        "Tandoori Roti",
			Description: "Whole wheat bread from tandoor",
			Price:       rupees(30),
			Image:       "https://images.unsplash.com/photo-1606491956689-2ea866880c84?w=400",
			Veg:         true,
		},
		{
			ID:           "br4",
			Name:         "Stuffed Kulcha",
			Description:  "Naan stuffed with spiced potatoes",
			Price:        rupees(70),
			Image:        "https://images.unsplash.com/photo-1619895092538-128341789043?w=400",
			Veg:          true,
			Customizable: true,
		},
	},
	"rice-biryani": {
		{
			ID:          "rb1",
			Name:        "Veg Biryani",
			Description: "Fragrant basmati rice with mixed vegetables",
			Price:       rupees(220),
			Image:       "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8?w=400",
			Veg:         true,
			Bestseller:  true,
		},
		{
			ID:          "rb2",
			Name:        "Chicken Biryani",
			Description: "Aromatic biryani with tender chicken pieces",
			Price:       rupees(280),
			Image:       "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8?w=400",
			Bestseller:  true,
		},
		{
			ID:          "rb3",
			Name:        "Mutton Biryani",
			Description: "Rich biryani with succulent mutton",
			Price:       rupees(340),
			Image:       "https://images.unsplash.com/photo-1589302168068-964664d93dc0?w=400",
		},
		{
			ID:          "rb4",
			Name:        "Jeera Rice",
			Description: "Basmati rice tempered with cumin",
			Price:       rupees(150),
			Image:       "https://images.unsplash.com/photo-1516684732162-798a0062be99?w=400",
			Veg:         true,
		},
	},
	"beverages": {
		{
			ID:           "bv1",
			Name:         "Fresh Lime Soda",
			Description:  "Refreshing lime with soda",
			Price:        rupees(60),
			Image:        "https://images.unsplash.com/photo-1556881286-fc6915169721?w=400",
			Veg:          true,
			Customizable: true,
		},
		{
			ID:          "bv2",
			Name:        "Masala Chaas",
			Description: "Spiced buttermilk",
			Price:       rupees(50),
			Image:       "https://images.unsplash.com/photo-1587226801073-7a0f30536b20?w=400",
			Veg:         true,
		},
		{
			ID:           "bv3",
			Name:         "Cold Coffee",
			Description:  "Chilled coffee with ice cream",
			Price:        rupees(80),
			Image:        "https://images.unsplash.com/photo-1517487881594-2787fef5ebf7?w=400",
			Veg:          true,
			Customizable: true,
		},
		{
			ID:           "bv4",
			Name:         "Soft Drinks",
			Description:  "Coke / Pepsi / Sprite",
			Price:        rupees(40),
			Image:        "https://images.unsplash.com/photo-1581006852262-e4307cf6283a?w=400",
			Veg:          true,
			Customizable: true,
		},
	},
	"desserts": {
		{
			ID:          "ds1",
			Name:        "Gulab Jamun (2 Pcs)",
			Description: "Traditional Indian sweet in sugar syrup",
			Price:       rupees(80),
			Image:       "https://images.unsplash.com/photo-1571167530149-c6c0e0a775f5?w=400",
			Veg:         true,
			Bestseller:  true,
		},
		{
			ID:          "ds2",
			Name:        "Rasmalai (2 Pcs)",
			Description: "Soft cottage cheese in sweetened milk",
			Price:       rupees(90),
			Image:       "https://images.unsplash.com/photo-1585759071429-3b0bb19eb310?w=400",
			Veg:         true,
		},
		{
			ID:           "ds3",
			Name:         "Ice Cream",
			Description:  "Vanilla / Chocolate / Strawberry",
			Price:        rupees(70),
			Image:        "https://images.unsplash.com/photo-1563805042-7684c019e1cb?w=400",
			Veg:          true,
			Customizable: true,
		},
	},
}
