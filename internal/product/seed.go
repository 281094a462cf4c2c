package product

// DefaultCatalog returns the football shop's starting inventory. It seeds the
// JSON store on first boot so a fresh deployment has something to sell.
func DefaultCatalog() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Manchester United Home Jersey 2024",
			Description: "Official home jersey for the current season.",
			Details:     "Available in S, M, L, XL. 100% Polyester. Authentic patch included.",
			Price:       1299,
			Category:    "jerseys",
			Image:       "/images/products/manutd-jersey.jpg",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			HasSizes:    true,
			Stock:       15,
			Rating:      4.8,
			Reviews:     127,
		},
		{
			ID:          2,
			Name:        "Real Madrid Away Jersey 2024",
			Description: "Limited edition away jersey featuring sleek design.",
			Details:     "Customizable with name and number. Climacool ventilation.",
			Price:       1299,
			Category:    "jerseys",
			Image:       "/images/products/realmadrid-jersey.jpg",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			HasSizes:    true,
			Stock:       22,
			Rating:      4.6,
			Reviews:     98,
		},
		{
			ID:          3,
			Name:        "Barcelona Third Jersey 2024",
			Description: "Special edition third jersey with unique design.",
			Details:     "Regular fit. Premium edition. Official licensed product.",
			Price:       1299,
			Category:    "jerseys",
			Image:       "/images/products/barcelona-jersey.jpg",
			Sizes:       []string{"S", "M", "L", "XL"},
			HasSizes:    true,
			Stock:       0,
			Rating:      4.5,
			Reviews:     67,
		},
		{
			ID:          4,
			Name:        "Argentina National Jersey",
			Description: "Official Argentina national team jersey.",
			Details:     "Messi edition. Lightweight fabric. Moisture wicking.",
			Price:       1299,
			Category:    "jerseys",
			Image:       "/images/products/argentina-jersey.jpg",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			HasSizes:    true,
			Stock:       30,
			Rating:      4.9,
			Reviews:     211,
		},
		{
			ID:          5,
			Name:        "Nike Phantom GX Elite Boots",
			Description: "Premium football boots with innovative grip technology.",
			Details:     "Textured finish for better ball control. Dynamic Fit collar.",
			Price:       4999,
			Category:    "boots",
			Image:       "/images/products/nike-phantom-boots.jpg",
			Sizes:       []string{"6", "7", "8", "9", "10", "11"},
			HasSizes:    true,
			Stock:       8,
			Rating:      4.9,
			Reviews:     89,
		},
		{
			ID:          6,
			Name:        "Adidas Predator Elite Boots",
			Description: "Professional grade boots with enhanced grip and control.",
			Details:     "Hybridtouch upper for perfect fit. Controlskin technology.",
			Price:       4999,
			Category:    "boots",
			Image:       "/images/products/adidas-predator-boots.jpg",
			Sizes:       []string{"6", "7", "8", "9", "10", "11"},
			HasSizes:    true,
			Stock:       12,
			Rating:      4.7,
			Reviews:     74,
		},
		{
			ID:          7,
			Name:        "Puma Future Ultimate Boots",
			Description: "Advanced boots with adaptive fit technology.",
			Details:     "FUZIONFIT+ compression band. Dynamic Motion System outsole.",
			Price:       4999,
			Category:    "boots",
			Image:       "/images/products/puma-future-boots.jpg",
			Sizes:       []string{"6", "7", "8", "9", "10"},
			HasSizes:    true,
			Stock:       6,
			Rating:      4.4,
			Reviews:     41,
		},
		{
			ID:          8,
			Name:        "Adidas Champions League Ball",
			Description: "Official Champions League match ball.",
			Details:     "Butylene bladder for best air retention. All-weather use. Size 5.",
			Price:       1999,
			Category:    "balls",
			Image:       "/images/products/adidas-champions-ball.jpg",
			Stock:       25,
			Rating:      4.7,
			Reviews:     203,
		},
		{
			ID:          9,
			Name:        "Nike Premier League Flight Ball",
			Description: "Official Premier League match ball.",
			Details:     "Aerow Trac grooves for accurate flight. All conditions ball.",
			Price:       1999,
			Category:    "balls",
			Image:       "/images/products/nike-premier-ball.jpg",
			Stock:       19,
			Rating:      4.6,
			Reviews:     148,
		},
		{
			ID:          10,
			Name:        "Puma Official Match Ball",
			Description: "FIFA approved professional match ball.",
			Details:     "Low-absorption exterior. 32-panel design for reduced drag.",
			Price:       1999,
			Category:    "balls",
			Image:       "/images/products/puma-match-ball.jpg",
			Stock:       14,
			Rating:      4.3,
			Reviews:     62,
		},
		{
			ID:          11,
			Name:        "Football Shin Guards",
			Description: "Professional shin guards with ankle protection.",
			Details:     "Lightweight polymer shell. Comfortable foam backing.",
			Price:       599,
			Category:    "accessories",
			Image:       "/images/products/shin-guards.jpg",
			Stock:       42,
			Rating:      4.6,
			Reviews:     156,
		},
		{
			ID:          12,
			Name:        "Goalkeeper Gloves",
			Description: "Professional goalkeeper gloves with latex palm.",
			Details:     "Negative cut. Finger protection spines. All-weather grip.",
			Price:       1499,
			Category:    "accessories",
			Image:       "/images/products/goalkeeper-gloves.jpg",
			Sizes:       []string{"S", "M", "L", "XL"},
			HasSizes:    true,
			Stock:       18,
			Rating:      4.8,
			Reviews:     94,
		},
		{
			ID:          13,
			Name:        "Football Socks",
			Description: "Professional football socks with cushioning.",
			Details:     "Moisture-wicking. Cushioned sole. Ankle support.",
			Price:       499,
			Category:    "accessories",
			Image:       "/images/products/football-socks.jpg",
			Stock:       60,
			Rating:      4.2,
			Reviews:     38,
		},
		{
			ID:          14,
			Name:        "Training Cones (Set of 10)",
			Description: "Bright orange training cones for practice.",
			Details:     "Durable plastic. Stackable design. Bright color for visibility.",
			Price:       799,
			Category:    "accessories",
			Image:       "/images/products/training-cones.jpg",
			Stock:       35,
			Rating:      4.4,
			Reviews:     51,
		},
	}
}
