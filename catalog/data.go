package catalog

import "github.com/cartelroasters/storefront/models"

var branchData = []models.Branch{
	{
		ID:           "khalifa",
		Name:         "CARTEL Khalifa City",
		Address:      "5 Al Almas 2 St, Khalifa City, SW18, Abu Dhabi",
		Coordinates:  models.Coordinates{Lat: 24.4239, Lng: 54.5728},
		Theme:        "warm",
		Description:  "A sanctuary of specialty coffee with warm tones and minimalist vibes.",
		Specialty:    "Signature Blends",
		WorkingHours: "7:00 AM - 12:00 AM",
	},
	{
		ID:           "alqana",
		Name:         "CARTEL Al Qana",
		Address:      "Al Qana Walk, Rabdan Area, Abu Dhabi",
		Coordinates:  models.Coordinates{Lat: 24.4175, Lng: 54.4920},
		Theme:        "aquatic",
		Description:  "Waterfront luxury inspired by the deep ocean.",
		Specialty:    "Single Origin",
		WorkingHours: "7:00 AM - 12:00 AM",
	},
	{
		ID:           "albateen",
		Name:         "CARTEL Al Bateen",
		Address:      "469 Al Khaleej Al Arabi St, Al Khalidiyah, W17 02, Abu Dhabi",
		Coordinates:  models.Coordinates{Lat: 24.4590, Lng: 54.3418},
		Theme:        "luxury",
		Description:  "A premium lounge for your evening coffee.",
		Specialty:    "Late Night Coffee",
		WorkingHours: "7:00 AM - 1:00 AM",
	},
	{
		ID:           "marina",
		Name:         "CARTEL Marina",
		Address:      "38 Mohammed Bin Mejren Al Marar St, Al Kasir, Al Marina, Abu Dhabi",
		Coordinates:  models.Coordinates{Lat: 24.4764, Lng: 54.3211},
		Theme:        "nautical",
		Description:  "WE KNOW OUR NOTES.",
		Specialty:    "BENSE EXPERTS",
		WorkingHours: "6:00 PM - 1:00 AM",
	},
	{
		ID:           "mirdif",
		Name:         "CARTEL Dubai Mirdif",
		Address:      "35 60C St, Mirdif, Dubai",
		Coordinates:  models.Coordinates{Lat: 25.2269, Lng: 55.4168},
		Theme:        "urban",
		Description:  "Modern industrial urban chic with neon accents.",
		Specialty:    "Urban Blends",
		Image:        "https://iili.io/fy9C8Bt.jpg",
		WorkingHours: "8:00 AM - 12:00 AM",
	},
}

// Shared espresso bean board. Selecting a bean replaces the drink's
// base price.
var espressoBeanVariants = []models.Variant{
	{ID: "bean_classic", Name: "The Classic (Nicaragua)", Price: 0, Notes: "Velvety milk chocolate, sugar cane sweetness, and a finish of candied peanuts."},
	{ID: "bean_modern", Name: "The Modern (Coconutella)", Price: 5, Notes: "Vibrant coconut cream layered with milk chocolate and rich toffee caramel."},
	{ID: "bean_fruity", Name: "The Fruity (Kenya Gichatha)", Price: 1, Notes: "Blackcurrants, blackberries & raisins."},
	{ID: "bean_decaf", Name: "The Decaf (Sweet Dream)", Price: 0, Notes: "Indulgent passion fruit cheesecake notes with milk chocolate and deep molasses."},
}

// milkGroup returns the standard milk board under an item-specific
// group id; some drinks carry their own id for the same option set.
func milkGroup(id string) models.ModifierGroup {
	return models.ModifierGroup{
		ID:    id,
		Title: "Milk Choice",
		Options: []models.ModifierOption{
			{ID: "milk_std", Name: "Standard", Price: 0},
			{ID: "milk_alm", Name: "Almond Milk", Price: 5},
			{ID: "milk_oat", Name: "Oat Milk", Price: 5},
			{ID: "milk_coc", Name: "Coconut Milk", Price: 5},
			{ID: "milk_lf", Name: "Lactose Free", Price: 2},
		},
	}
}

var milkChoiceGroup = milkGroup("milk_choice")

var teaAddOnsGroup = models.ModifierGroup{
	ID:    "tea_add",
	Title: "Add-ons",
	Options: []models.ModifierOption{
		{ID: "opt_std", Name: "Standard", Price: 0},
		{ID: "opt_mint", Name: "Mint leaves", Price: 0},
		{ID: "opt_honey", Name: "Honey", Price: 2},
		{ID: "opt_lemon", Name: "Lemon slice", Price: 0},
	},
}

// The Earl Grey board is the same set under its own option ids.
var earlGreyAddOnsGroup = models.ModifierGroup{
	ID:    "tea_add_eg",
	Title: "Add-ons",
	Options: []models.ModifierOption{
		{ID: "opt_std_eg", Name: "Standard", Price: 0},
		{ID: "opt_mint_eg", Name: "Mint leaves", Price: 0},
		{ID: "opt_honey_eg", Name: "Honey", Price: 2},
		{ID: "opt_lemon_eg", Name: "Lemon slice", Price: 0},
	},
}

var highlyRecommendCategory = models.MenuCategory{
	ID:    "highly-recommend",
	Title: "HIGHLY recommend",
	Items: []models.MenuItem{
		{ID: "bw6", Name: "CARTEL Banana, Dates & Yogurt", Ingredients: "Earl Grey Chia, fresh banana, sweet dates, creamy yogurt.", Price: "38", Image: "https://iili.io/q2j9Vwu.png", Calories: 350},
		{ID: "bw7", Name: "CARTEL Matcha Chia Pudding", Ingredients: "Premium Matcha infused chia pudding, coconut milk, seasonal toppings.", Price: "38", Image: "https://iili.io/q2hpnov.png", Calories: 330},
		{ID: "bw2", Name: "CARTEL Overnight Oats", Ingredients: "Oats are soaked in oat milk with mixed berry compote, peanut butter, and cashew nuts.", Price: "42", Image: "https://iili.io/fvyqMn1.jpg", Calories: 380},
		{ID: "d_decon_cheese", Name: "Deconstructed Cheese Cake", Ingredients: "A light and creamy eggless yogurt vanilla cheesecake served deconstructed, layered with crunchy almond crumble, with mixed berries compote", Price: "39.20", Image: "https://iili.io/q2hets4.png", Calories: 380},
		{ID: "sig8", Name: "CARTEL Tanzanian Hot Chocolate", Ingredients: "Single origin Tanzanian cacao, rich and velvety steamed milk. Marshmallow, chocolate stick", Price: "32", Image: "https://iili.io/q2u8XqB.jpg", Calories: 290},
		{ID: "sig3", Name: "CARTEL Matcha Cloud", Ingredients: "matcha cream, matcha dust, coconut water", Price: "38", Image: "https://iili.io/q2ugtIa.png", Calories: 220},
	},
}

var dessertsCategory = models.MenuCategory{
	ID:    "desserts",
	Title: "Dessert",
	Items: []models.MenuItem{
		{ID: "d_san_seb", Name: "CARTEL Crust San Sebastian", Ingredients: "Basque-style burnt cheesecake, creamy center, caramelized exterior", Price: "39.20", Image: "https://iili.io/q2hnbp4.png", Calories: 600},
		{ID: "umali", Name: "CARTEL UM ALI", Ingredients: "", Price: "39.20", Image: "https://iili.io/q2hAbKN.png", Calories: 450},
		{ID: "MUHALABIYA", Name: "CARTEL MUHALABIYA", Ingredients: "Our silky-smooth Muhalabiya is infused with delicate floral notes and topped with a cloud of premium Ghazl el Banat (Arabic cotton candy). Finished with a vibrant sprinkle of crushed pistachios and dried rose petals, every spoonful offers a perfect balance of creamy, airy, and crunchy textures.", Price: "39.20", Image: "https://iili.io/q2iSCcx.png", Calories: 260},
		{ID: "d_rasp_mad", Name: "Raspberry Madeleine (1 piece)", Ingredients: "Classic French butter cake with fresh raspberries", Price: "15", Image: "https://iili.io/q2hjx4t.jpg", Calories: 180},
		{ID: "d_choc_chip", Name: "Chocolate Chip Cookie", Ingredients: "Chewy cookie loaded with premium chocolate chunks", Price: "16", Image: "https://iili.io/q2ubl7j.jpg", Calories: 320},
		{ID: "d_snickers", Name: "CARTEL Snickers", Ingredients: "Peanuts, caramel, and nougat coated in milk chocolate", Price: "39.20", Image: "https://iili.io/q2hTJNj.png", Calories: 450},
		{ID: "d_aseeda", Name: "CARTEL ASEEDA", Ingredients: "Modern twist on traditional Aseeda, saffron, cardamom, date molasses, roasted nuts", Price: "43", Image: "https://i.postimg.cc/cLJWz07y/asseda.jpg", Calories: 460},
		{ID: "d_decon_cheese", Name: "Deconstructed Cheese Cake", Ingredients: "A light and creamy eggless yogurt vanilla cheesecake served deconstructed, layered with crunchy almond crumble, with mixed berries compote", Price: "39.20", Image: "https://iili.io/q2hets4.png", Calories: 380},
		{ID: "d_vanilla_pud", Name: "Vanilla Pudding", Ingredients: "Silky smooth vanilla custard, Madagascar vanilla bean, sweet cream", Price: "39.20", Image: "https://i.postimg.cc/d0kYq6S8/vanilla_pudding.jpg", Calories: 380},
		{ID: "d_banana_pud", Name: "Banana Pudding", Ingredients: "Layers of vanilla wafers, fresh bananas, creamy vanilla pudding, whipped cream", Price: "38", Image: "https://iili.io/q2uy95b.jpg", Calories: 420},
		{ID: "d_1000", Name: "1000 Layers (Mille Fuille)", Ingredients: "Crispy layers of puff pastry with caramel sauce and vanilla cream", Price: "39.20", Image: "https://iili.io/q2ATUt2.png", Calories: 440},
		{ID: "d_sticky_date", Name: "CARTEL STICKY DATE", Ingredients: "Warm, treacle-infused date cake, house-made candied pecans, and London Dairy Vanilla Ice Cream. Rich, velvety, and classic", Price: "39.20", Image: "https://iili.io/q2PPbjV.png", Calories: 310},
		{ID: "d_fudge_cookie", Name: "Chocolate Fudge Cookie", Ingredients: "Rich and fudgy dark chocolate cookie", Price: "21", Image: "https://iili.io/q2i9bwX.png", Calories: 340},
	},
}

var filterCategory = models.MenuCategory{
	ID:    "filter",
	Title: "Filter Coffee",
	Items: []models.MenuItem{
		{ID: "fil_kenya_kirimara", Name: "Kirimara AA", Origin: "Kenya", Farm: "Kirimara Estate", TastingNotes: "Bright acidity with notes of wild cherry, brown sugar, and raisins.", Ingredients: "Pour-over brewing method (V60/Chemex) to highlight clarity and aroma.", Price: "46", Image: "https://iili.io/qKemkeS.png", Tags: []string{"Seasonal Rotation"}, Calories: 5},
		{ID: "fil_col_mish", Name: "Mish Mish", Origin: "Colombia", Farm: "Finca El Paraiso", TastingNotes: "Intense apricot and peach notes with a creamy body.", Ingredients: "Pour-over brewing method (V60/Chemex).", Price: "57", Image: "https://iili.io/qKkHXu2.png", Tags: []string{"Staff Pick"}, Calories: 5},
		{ID: "fil_costa_canet", Name: "Canet Chopin", Origin: "Costa Rica", Farm: "Canet Musician Series", TastingNotes: "Cacao, fig compote, honey, cherry", Ingredients: "Pour-over brewing method (V60/Chemex).", Price: "57", Image: "https://iili.io/qKkdOdb.png", Calories: 5},
		{ID: "fil_col_sidra", Name: "Bourbon Sidra", Origin: "Colombia", Farm: "Finca La Palma", TastingNotes: "Exotic tropical fruits, red apple, and a wine-like acidity.", Ingredients: "Pour-over brewing method (V60/Chemex).", Price: "46", Image: "https://iili.io/qKk3AKX.png", Calories: 5},
		{ID: "fil_panama_gesha", Name: "Gesha Cordillera", Origin: "Panama", Farm: "Volcan Baru", TastingNotes: "Jasmine, bergamot, and sweet mandarin with a tea-like body.", Ingredients: "Pour-over brewing method (V60/Chemex).", Price: "65", Image: "https://iili.io/qKeQ4ja.png", Tags: []string{"Premium"}, Calories: 5},
		{ID: "fil_decaf", Name: "Sweet Dreams Decaf", Origin: "Colombia", Farm: "Various Smallholders", TastingNotes: "Passion fruit cheesecake, milk chocolate, molasses", Ingredients: "Pour-over brewing method (V60/Chemex).", Price: "38", Image: "https://iili.io/qKkqSTJ.png", Calories: 5},
		{ID: "fil_eth_cb", Name: "Ethiopia Cold Brew", Origin: "Ethiopia", TastingNotes: "Apricot, Honey, Pear", Ingredients: "Slow-steeped cold water extraction for 12+ hours.", Price: "38", Image: "https://iili.io/fUAAQ07.png", Calories: 10},
		{ID: "fil_col_cb", Name: "Colombia Cold Brew", Origin: "Colombia", TastingNotes: "Hazelnut, Orange, Molasses", Ingredients: "Slow-steeped cold water extraction for 12+ hours.", Price: "38", Image: "https://iili.io/qKYaxff.png", Calories: 10},
		{ID: "fil_ken_cb", Name: "Kenya Cold Brew", Origin: "Kenya", TastingNotes: "Wild Cherry, Brown Sugar, Raisins", Ingredients: "Slow-steeped cold water extraction for 12+ hours.", Price: "38", Image: "https://iili.io/f8yS6jj.jpg", Calories: 10},
	},
}

var filterTapsCategory = models.MenuCategory{
	ID:    "filter-taps",
	Title: "Filter Taps Kegerator",
	Items: []models.MenuItem{
		{ID: "tap_col_straw", Name: "Colombia Strawberry", Ingredients: "Filter coffee on tap", Price: "36", Image: "https://iili.io/qKka1vj.png", Calories: 5},
		{ID: "tap_cuban", Name: "Cuban Cigar", Ingredients: "Filter coffee on tap", Price: "41", Image: "https://iili.io/qKkRw5Q.png", Calories: 5},
		{ID: "tap_eth_rog", Name: "Ethiopia Rogisha", Ingredients: "Filter coffee on tap", Price: "41", Image: "https://iili.io/qKkcmJa.png", Calories: 5},
	},
}

var espressoCategory = models.MenuCategory{
	ID:          "espresso",
	Title:       "Espresso",
	Description: "Our espresso selection features four distinct profiles:\n\n• The Classic (Nicaragua): Velvety milk chocolate, sugar cane sweetness.\n• The Modern (Coconutella): Vibrant coconut cream, milk chocolate.\n• The Fruity (Kenya Gichatha): Blackcurrants, blackberries & raisins.\n• The Decaf (Sweet Dream): Passion fruit cheesecake notes.",
	Items: []models.MenuItem{
		{ID: "esp1", Name: "CARTEL Espresso", Ingredients: "", Price: "24", Image: "https://iili.io/fUCfVDl.jpg", Calories: 5, Variants: espressoBeanVariants},
		{ID: "esp_cap", Name: "CARTEL Cappuccino", Ingredients: "", Price: "28", Image: "https://iili.io/q2uiIPj.jpg", Calories: 120, DisableTemperature: true, Variants: espressoBeanVariants, Customizations: []models.ModifierGroup{milkChoiceGroup}},
		{ID: "esp2", Name: "CARTEL Latte", Ingredients: "", Price: "27", Image: "https://iili.io/fUCZ079.png", Calories: 140, Variants: espressoBeanVariants, Customizations: []models.ModifierGroup{milkChoiceGroup}},
		{ID: "esp3", Name: "CARTEL Macchiato", Ingredients: "", Price: "26", Image: "https://iili.io/q2usfqJ.jpg", Calories: 30, Variants: espressoBeanVariants},
		{ID: "esp4", Name: "CARTEL Cortado", Ingredients: "", Price: "26", Image: "https://iili.io/q2uiNDX.jpg", Calories: 80, DisableTemperature: true, Variants: espressoBeanVariants, Customizations: []models.ModifierGroup{milkChoiceGroup}},
		{ID: "esp5", Name: "CARTEL Piccolo", Ingredients: "", Price: "25", Image: "https://iili.io/q2uQQWX.jpg", Calories: 60, DisableTemperature: true, Variants: espressoBeanVariants, Customizations: []models.ModifierGroup{milkChoiceGroup}},
		{ID: "esp6", Name: "CARTEL Flat White", Ingredients: "", Price: "27", Image: "https://iili.io/q2usTzX.jpg", Calories: 130, DisableTemperature: true, Variants: espressoBeanVariants, Customizations: []models.ModifierGroup{milkChoiceGroup}},
		{ID: "esp7", Name: "CARTEL Americano", Ingredients: "", Price: "25", Image: "https://iili.io/q2u6jgp.jpg", Calories: 5, Variants: espressoBeanVariants},
		{ID: "esp8", Name: "CARTEL Spanish Piccolo", Ingredients: "", Price: "28", Image: "https://iili.io/q2usMXe.jpg", Calories: 90, DisableTemperature: true, Variants: espressoBeanVariants, Customizations: []models.ModifierGroup{milkChoiceGroup}},
		{ID: "esp9", Name: "CARTEL Spanish Latte", Ingredients: "", Price: "32", Image: "https://iili.io/q2uLKT7.jpg", Calories: 220, Variants: espressoBeanVariants, Customizations: []models.ModifierGroup{milkChoiceGroup}},
		{ID: "esp10", Name: "CARTEL Spanish Cortado", Ingredients: "", Price: "29", Image: "https://iili.io/q2usMXe.jpg", Calories: 140, DisableTemperature: true, Variants: espressoBeanVariants, Customizations: []models.ModifierGroup{milkChoiceGroup}},
		{ID: "esp11", Name: "CARTEL Babyccino", Ingredients: "", Price: "11", Image: "https://iili.io/q2uPvaV.jpg", Calories: 90},
	},
}

var healthyBowlsCategory = models.MenuCategory{
	ID:    "healthy-bowls",
	Title: "Healthy Bowls",
	Items: []models.MenuItem{
		{ID: "bw1", Name: "CARTEL Acai Bowl", Ingredients: "Açaí berry, peanut butter, mango, kiwi, granola, dragon fruit, banana, strawberries, blueberries, passion fruit.", Price: "48", Image: "https://iili.io/fvyuItf.jpg", Calories: 450},
		{ID: "bw2", Name: "CARTEL Overnight Oats", Ingredients: "Oats are soaked in oat milk with mixed berry compote, peanut butter, and cashew nuts.", Price: "42", Image: "https://iili.io/fvyqMn1.jpg", Calories: 380},
		{ID: "bw3", Name: "CARTEL Chia Pudding", Ingredients: "Coconut chia pudding, Greek yogurt, strawberries, blackberries, raspberries, blueberries, mixed berry compote, sesame toile, whipped chocolate shaved dark chocolate, honey", Price: "38", Image: "https://iili.io/fvyC2gs.jpg", Calories: 320},
		{ID: "bw4", Name: "CARTEL Exotic Sunrise", Ingredients: "Coconut yogurt, homemade granola, passion fruit, mango slices, exotic gel, and lime zest.", Price: "42", Image: "https://iili.io/fvyol0F.jpg", Calories: 360},
		{ID: "bw5", Name: "CARTEL Apple Cinnamon Muesli", Ingredients: "Cinnamon yogurt, granola, apple crumble, soft caramel, berry compote, honeycomb, raspberries, blueberries, blackberries, apple crisp, mixed nuts, and organic honey drizzle", Price: "42", Image: "https://iili.io/fvyxG49.jpg", Calories: 410},
		{ID: "bw6", Name: "CARTEL Banana, Dates & Yogurt", Ingredients: "Earl Grey Chia, fresh banana, sweet dates, creamy yogurt.", Price: "38", Image: "https://iili.io/q2j9Vwu.png", Calories: 350},
		{ID: "bw7", Name: "CARTEL Matcha Chia Pudding", Ingredients: "Premium Matcha infused chia pudding, coconut milk, seasonal toppings.", Price: "38", Image: "https://iili.io/q2hpnov.png", Calories: 330},
	},
}

var signatureDrinksCategory = models.MenuCategory{
	ID:    "signature-drinks",
	Title: "Signature Drinks",
	Items: []models.MenuItem{
		{ID: "sig1", Name: "CARTEL RUSH HOUR", Ingredients: "", Price: "33", Image: "https://iili.io/q2urMyF.jpg", Calories: 180, DisableTemperature: true, Customizations: []models.ModifierGroup{{
			ID:    "rh_sweet",
			Title: "Sweetness",
			Options: []models.ModifierOption{
				{ID: "rh_std", Name: "Standard", Price: 0},
				{ID: "rh_xtra", Name: "Extra Sweet", Price: 2},
			},
		}}},
		{ID: "sig8", Name: "CARTEL Tanzanian Hot Chocolate", Ingredients: "Single origin Tanzanian cacao, rich and velvety steamed milk. Marshmallow, chocolate stick", Price: "32", Image: "https://iili.io/q2u8XqB.jpg", Calories: 290},
		{ID: "sig3", Name: "CARTEL Matcha Cloud", Ingredients: "matcha cream, matcha dust, coconut water", Price: "38", Image: "https://iili.io/q2ugtIa.png", Calories: 220},
		{ID: "sig_gt", Name: "CARTEL Organic Green Tea", Ingredients: "", Price: "24", Image: "https://iili.io/fUrxg0F.png", Calories: 5, Customizations: []models.ModifierGroup{teaAddOnsGroup}},
		{ID: "sig_eg", Name: "CARTEL Earl Grey Tea", Ingredients: "", Price: "24", Image: "https://iili.io/fUrCzo7.png", Calories: 5, Customizations: []models.ModifierGroup{earlGreyAddOnsGroup}},
		{ID: "sig2", Name: "CARTEL Matcha Latte", Ingredients: "Premium Matcha green tea. choose your milk.", Price: "28", Image: "https://iili.io/q2utJ3J.jpg", Calories: 180, Variants: []models.Variant{
			{ID: "m_lf", Name: "Lactose Free", Price: 35, Notes: "Easy on digestion"},
			{ID: "m_ff", Name: "Full Fat", Price: 33, Notes: "Creamy and rich"},
			{ID: "m_low", Name: "Low Fat", Price: 33, Notes: "Light and balanced"},
			{ID: "m_coc", Name: "Coconut Milk", Price: 38, Notes: "Sweet tropical notes"},
			{ID: "m_oat", Name: "Oat Milk", Price: 38, Notes: "Plant-based favorite"},
			{ID: "m_alm", Name: "Almond Milk", Price: 38, Notes: "Nutty and light"},
		}},
		{ID: "sig5", Name: "CARTEL Matcha Shake", Ingredients: "", Price: "40", Image: "https://iili.io/q2ugGzG.jpg", Calories: 320, DisableTemperature: true, Customizations: []models.ModifierGroup{milkGroup("ms_milk")}},
		{ID: "sig6", Name: "CARTEL Espresso Shake", Ingredients: "Double shot espresso blended with vanilla ice cream, your favorite milk.", Price: "40", Image: "https://iili.io/q2uUQV4.jpg", Calories: 310, DisableTemperature: true, Variants: espressoBeanVariants, Customizations: []models.ModifierGroup{milkGroup("es_milk")}},
		{ID: "sig7", Name: "CARTEL Baby Shark", Ingredients: "", Price: "26", Image: "https://iili.io/q2uUxn4.jpg", Calories: 240},
	},
}

var bakeryCategory = models.MenuCategory{
	ID:    "from-our-bakery",
	Title: "From Our Bakery",
	Items: []models.MenuItem{
		{ID: "fob_zaatar", Name: "Zaatar & Labneh Muffin", Ingredients: "Flaky croissant dough muffin filled with tangy fresh labneh, topped with aromatic organic zaatar, olive oil, and a pinch of sea salt.", Price: "22", Image: "https://i.postimg.cc/1znQ9BYK/zaatar_labnieh.jpg", Calories: 340},
		{ID: "fob_burrata", Name: "Burrata Pizza", Ingredients: "Crisp round croissant base layered with rich tomato sauce, creamy fresh burrata, and basil, finished with chili flakes, smoked salt, and organic olive oil.", Price: "26", Image: "https://i.postimg.cc/y8NKGshd/buratta_pizza.jpg", Calories: 410},
		{ID: "fob_turkey", Name: "Turkey & Cheese Danish", Ingredients: "Buttery Danish croissant dough wrapped around savory smoked turkey and sharp cheddar, encrusted with mixed sesame seeds.", Price: "20", Image: "https://i.postimg.cc/PqpjtyFZ/turkey_danish.jpg", Calories: 310},
		{ID: "fob_potato", Name: "Potato Truffle", Ingredients: "Savory round croissant filled with caramelized onions and creamy potato dauphinois, topped with melted Comté cheese, truffle oil, smoked salt, and fresh chives.", Price: "26", Image: "https://iili.io/q2u4YAX.jpg", Calories: 380},
		{ID: "fob_almond", Name: "Almond Croissant", Ingredients: "Golden croissant filled with rich almond frangipane, topped with toasted almond flakes and a dusting of icing sugar.", Price: "22", Image: "https://i.postimg.cc/QdMDzhgZ/almond.png", Calories: 380},
		{ID: "fob_choc", Name: "Chocolate Croissant", Ingredients: "Classic buttery croissant filled with premium Valrhona chocolate batons.", Price: "17", Image: "https://iili.io/q2A7dsp.png", Calories: 320},
		{ID: "fob_blackforest", Name: "Black Forest", Ingredients: "A decadent pastry filled with tart dark cherry compote and a light, whipped white chocolate ganache, finished with chocolate shavings.", Price: "28", Image: "https://iili.io/q2h5ddP.png", Calories: 440},
		{ID: "fob_cardamom", Name: "Cardamom Bun", Ingredients: "Cruffin-shaped croissant dough knotted with aromatic cardamom spice, baked to a golden crisp, and tossed in vanilla sugar for a buttery, spiced finish.", Price: "22", Image: "https://iili.io/q2AKLIn.png", Calories: 280},
	},
}

// baseMenu is the full seed including the promotional
// "HIGHLY recommend" rail. The assistant's menu serialization uses it.
var baseMenu = []models.MenuCategory{
	highlyRecommendCategory,
	dessertsCategory,
	filterCategory,
	filterTapsCategory,
	espressoCategory,
	healthyBowlsCategory,
	signatureDrinksCategory,
	bakeryCategory,
}

// standardMenu is what branches actually serve: the fixed display
// order, without the promotional rail (its items all appear in their
// home categories).
var standardMenu = []models.MenuCategory{
	dessertsCategory,
	filterCategory,
	filterTapsCategory,
	espressoCategory,
	healthyBowlsCategory,
	signatureDrinksCategory,
	bakeryCategory,
}

// Every branch currently serves the standard menu. Catalogs are
// logically independent per branch even when structurally identical;
// the per-branch inventory overlay is what actually diverges.
var branchMenus = map[string][]models.MenuCategory{
	"khalifa":  standardMenu,
	"alqana":   standardMenu,
	"albateen": standardMenu,
	"marina":   standardMenu,
	"mirdif":   standardMenu,
}
