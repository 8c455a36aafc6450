package catalog

import "github.com/shopspring/decimal"

var zl = decimal.NewFromInt

// EventTypes lists the kinds of events the company caters.
var EventTypes = []EventType{
	{ID: "wedding", Name: "Wesele", Icon: "Heart"},
	{ID: "corporate", Name: "Konferencja", Icon: "Presentation"},
	{ID: "birthday", Name: "Urodziny", Icon: "Gift"},
	{ID: "business", Name: "Spotkanie firmowe", Icon: "Briefcase"},
	{ID: "party", Name: "Impreza", Icon: "Music"},
	{ID: "other", Name: "Inne", Icon: "CalendarDays"},
}

var Categories = []Category{
	{ID: "patery", Name: "Patery", Description: "Gotowe kompozycje na każdą okazję", Icon: "Salad"},
	{ID: "mini", Name: "Mini", Description: "Małe przekąski z wieloma wariantami", Icon: "Cookie"},
	{ID: "zestawy", Name: "Zestawy", Description: "Pełne menu do konfiguracji", Icon: "UtensilsCrossed"},
}

// Products is the full sellable catalog. It is populated once and never
// mutated, so concurrent reads need no synchronization.
var Products = []Product{
	&SimpleProduct{
		ID:              "patera-serow",
		Name:            "Patera Serów Europejskich",
		Description:     "Dla 7-8 osób. W środku znajdziesz 32 pyszności.",
		LongDescription: "Wyselekcjonowane sery z najlepszych europejskich serowarni. Idealna na eleganckie przyjęcia i spotkania biznesowe. Podawana na łupkowej desce z dodatkami.",
		Contents: []string{
			"Brie francuski 150g",
			"Camembert z ziołami 150g",
			"Gouda długo dojrzewająca 200g",
			"Roquefort 100g",
			"Winogrona 200g",
			"Orzechy włoskie 100g",
			"Miód akacjowy 50ml",
		},
		Allergens:    []string{"mleko", "orzechy"},
		PricePerUnit: zl(450),
		UnitLabel:    "szt.",
		MinQuantity:  1,
		Icon:         "🧀",
		Category:     "patery",
	},
	&SimpleProduct{
		ID:              "patera-wedlin",
		Name:            "Patera Wędlin Premium",
		Description:     "Dla 8-10 osób. Wyselekcjonowane wędliny z całej Europy.",
		LongDescription: "Ręcznie krojone wędliny najwyższej jakości z renomowanych wytwórni. Szynka parmeńska dojrzewająca 24 miesiące, autentyczne chorizo i bresaola.",
		Contents: []string{
			"Szynka parmeńska 24-miesięczna 200g",
			"Salami Milano 150g",
			"Chorizo Iberico 150g",
			"Bresaola 100g",
			"Oliwki Kalamata 150g",
			"Grissini 12 szt.",
		},
		Allergens:    []string{"gluten"},
		PricePerUnit: zl(520),
		UnitLabel:    "szt.",
		MinQuantity:  1,
		Icon:         "🥓",
		Category:     "patery",
	},
	&SimpleProduct{
		ID:              "patera-owocow-morza",
		Name:            "Patera Owoców Morza",
		Description:     "Dla 6-8 osób. Świeże owoce morza na lodzie.",
		LongDescription: "Świeże owoce morza serwowane na kruszonym lodzie. Krewetki tygrysie, premium łosoś wędzony i tuńczyk sashimi grade. Udekorowane kaparami i świeżym koperkiem.",
		Contents: []string{
			"Krewetki tygrysie 300g",
			"Łosoś wędzony 200g",
			"Tuńczyk sashimi 150g",
			"Kawior czerwony 50g",
			"Kapary 50g",
			"Cytryna i koperek",
		},
		Allergens:    []string{"ryby", "skorupiaki"},
		PricePerUnit: zl(680),
		UnitLabel:    "szt.",
		MinQuantity:  1,
		Icon:         "🦐",
		Category:     "patery",
	},
	&SimpleProduct{
		ID:              "patera-antipasto",
		Name:            "Antipasto Włoskie",
		Description:     "Dla 6-8 osób. Smak słonecznej Italii.",
		LongDescription: "Kompozycja włoskich przysmaków rodem z Toskanii. Suszone pomidory w oliwie extra virgin, mozzarella di bufala z certyfikatem DOP i świeżo pieczona focaccia z rozmarynem.",
		Contents: []string{
			"Suszone pomidory w oliwie 150g",
			"Oliwki mix 200g",
			"Marynowane karczochy 150g",
			"Mozzarella di Bufala 250g",
			"Papryka grillowana 150g",
			"Focaccia z rozmarynem",
		},
		Allergens:    []string{"mleko", "gluten"},
		PricePerUnit: zl(380),
		UnitLabel:    "szt.",
		MinQuantity:  1,
		Icon:         "🫒",
		Category:     "patery",
	},
	&ExpandableProduct{
		ID:              "tacos",
		Name:            "Meksykańskie Tacos",
		Description:     "Cena bazowa: 18,00 zł/szt.",
		LongDescription: "Autentyczne meksykańskie tacos na świeżych tortillach kukurydzianych. Wybierz spośród różnych nadzień - od klasycznego kurczaka al pastor po wegańskie opcje z grzybami.",
		BasePrice:       zl(18),
		MinQuantity:     8,
		Icon:            "🌮",
		Category:        "mini",
		Variants: []Variant{
			{
				ID:          "tacos-kurczak",
				Name:        "Tacos z szarpanym kurczakiem Al Pastor",
				Description: "grillowany ananas z miętą / salsa Pico De Gallo",
				Price:       zl(18),
				Allergens:   []string{"gluten"},
				DietaryTags: []string{},
			},
			{
				ID:          "tacos-wieprzowina",
				Name:        "Tacos z szarpaną wieprzowiną w sosie adobo",
				Description: "salsa mexicana / crema / marynowana cebulka",
				Price:       zl(18),
				Allergens:   []string{"gluten", "mleko"},
				DietaryTags: []string{},
			},
			{
				ID:          "tacos-vege",
				Name:        "Tacos vege z boczniakiem Chipotle",
				Description: "Guacamole / Salsa Pico De Gallo",
				Price:       zl(18),
				Allergens:   []string{"gluten"},
				DietaryTags: []string{"Vege"},
			},
			{
				ID:          "tacos-krewetki",
				Name:        "Tacos z krewetkami w tempurze",
				Description: "guacamole / jalapeno / marynowana cebulka",
				Price:       zl(22),
				Allergens:   []string{"gluten", "skorupiaki"},
				DietaryTags: []string{"Krewetki"},
			},
		},
	},
	&ExpandableProduct{
		ID:              "mini-burgery",
		Name:            "Mini Burgery",
		Description:     "Cena bazowa: 15,00 zł/szt.",
		LongDescription: "Soczyste mini burgery idealne na imprezy. Ręcznie formowane kotlety z najlepszej wołowiny, świeże bułki brioche i domowe sosy.",
		BasePrice:       zl(15),
		MinQuantity:     10,
		Icon:            "🍔",
		Category:        "mini",
		Variants: []Variant{
			{
				ID:          "burger-klasyczny",
				Name:        "Mini Burger Klasyczny",
				Description: "wołowina / cheddar / pikle / sos burgerowy",
				Price:       zl(15),
				Allergens:   []string{"gluten", "mleko"},
				DietaryTags: []string{},
			},
			{
				ID:          "burger-pulled-pork",
				Name:        "Mini Burger z Pulled Pork",
				Description: "szarpana wieprzowina / colesław / sos BBQ",
				Price:       zl(16),
				Allergens:   []string{"gluten"},
				DietaryTags: []string{},
			},
			{
				ID:          "burger-vege",
				Name:        "Mini Burger Vege",
				Description: "kotlet z batatów / rukola / hummus",
				Price:       zl(15),
				Allergens:   []string{"gluten", "sezam"},
				DietaryTags: []string{"Vege"},
			},
		},
	},
	&ExpandableProduct{
		ID:              "sushi",
		Name:            "Sushi Selection",
		Description:     "Cena bazowa: 8,00 zł/szt.",
		LongDescription: "Świeże sushi przygotowywane przez naszych sushi masterów. Premium ryż, najświeższe ryby i owoce morza. Idealne na eleganckie przyjęcia.",
		BasePrice:       zl(8),
		MinQuantity:     16,
		Icon:            "🍣",
		Category:        "mini",
		Variants: []Variant{
			{
				ID:          "sushi-sake",
				Name:        "Nigiri Sake (łosoś)",
				Description: "świeży łosoś na ryżu sushi",
				Price:       zl(8),
				Allergens:   []string{"ryby", "gluten"},
				DietaryTags: []string{},
			},
			{
				ID:          "sushi-maguro",
				Name:        "Nigiri Maguro (tuńczyk)",
				Description: "świeży tuńczyk na ryżu sushi",
				Price:       zl(10),
				Allergens:   []string{"ryby", "gluten"},
				DietaryTags: []string{},
			},
			{
				ID:          "sushi-california",
				Name:        "California Roll (6 szt.)",
				Description: "krab / awokado / ogórek / tobiko",
				Price:       zl(28),
				Allergens:   []string{"skorupiaki", "gluten"},
				DietaryTags: []string{},
			},
			{
				ID:          "sushi-vege-roll",
				Name:        "Vege Roll (6 szt.)",
				Description: "awokado / ogórek / marchewka / tofu",
				Price:       zl(24),
				Allergens:   []string{"soja", "gluten"},
				DietaryTags: []string{"Vege"},
			},
		},
	},
	&ConfigurableProduct{
		ID:              "zestaw-1",
		Name:            "Zestaw nr 1",
		Description:     "Minimalne zamówienie z jednego rodzaju to 12 sztuk.",
		LongDescription: "Klasyczny zestaw cateringowy idealny na spotkania firmowe, konferencje i uroczystości rodzinne. Wybierz dania główne, dodatki i sałatki według własnych preferencji.",
		PricePerPerson:  zl(70),
		MinPersons:      12,
		Icon:            "🍽️",
		Category:        "zestawy",
		OptionGroups: []OptionGroup{
			{
				ID:            "miesa",
				Name:          "Mięsiwa i ryby",
				MinSelections: 2,
				MaxSelections: 6,
				Options: []GroupOption{
					{ID: "roladki-indyk", Name: "Roladki z indyka ze szpinakiem suszonymi pomidorami i mozarellą", Allergens: []string{"mleko"}},
					{ID: "schabowy", Name: "Staropolski schabowy", Allergens: []string{"gluten", "jaja"}},
					{ID: "pulpeciki", Name: "Pulpeciki wołowo-wieprzowe w sosie grzybowym", Allergens: []string{"gluten"}},
					{ID: "karkowka", Name: "Karkówka w sosie własnym", Allergens: []string{}},
					{ID: "kurczak-panko", Name: "Filet z kurczaka w panko", Allergens: []string{"gluten"}},
					{ID: "dorsz", Name: "Dorsz w sosie cytrusowym", Allergens: []string{"ryby"}},
				},
			},
			{
				ID:            "dodatki",
				Name:          "Dodatki",
				MinSelections: 2,
				MaxSelections: 4,
				Options: []GroupOption{
					{ID: "ziemniaki", Name: "Ziemniaki opiekane z rozmarynem", Allergens: []string{}},
					{ID: "ryz", Name: "Ryż z warzywami", Allergens: []string{}},
					{ID: "kasza", Name: "Kasza gryczana", Allergens: []string{}},
					{ID: "puree", Name: "Puree ziemniaczane", Allergens: []string{"mleko"}},
				},
			},
			{
				ID:            "salatki",
				Name:          "Sałatki",
				MinSelections: 1,
				MaxSelections: 3,
				Options: []GroupOption{
					{ID: "mizeria", Name: "Mizeria", Allergens: []string{"mleko"}},
					{ID: "surowka-marchew", Name: "Surówka z marchewki", Allergens: []string{}},
					{ID: "salatka-grecka", Name: "Sałatka grecka", Allergens: []string{"mleko"}},
					{ID: "coleslaw", Name: "Colesław", Allergens: []string{"jaja"}},
				},
			},
		},
	},
	&ConfigurableProduct{
		ID:              "zestaw-2",
		Name:            "Zestaw nr 2 Premium",
		Description:     "Menu premium z wykwintnymi daniami. Minimum 15 osób.",
		LongDescription: "Wykwintne menu premium dla wymagających gości. Polędwica wołowa, kaczka konfitowana, świeży łosoś - dania godne najlepszych restauracji.",
		PricePerPerson:  zl(95),
		MinPersons:      15,
		Icon:            "👨‍🍳",
		Category:        "zestawy",
		OptionGroups: []OptionGroup{
			{
				ID:            "dania-glowne",
				Name:          "Dania główne",
				MinSelections: 2,
				MaxSelections: 4,
				Options: []GroupOption{
					{ID: "poledwica", Name: "Polędwica wołowa z sosem z zielonym pieprzem", Allergens: []string{"mleko"}},
					{ID: "kaczka", Name: "Kaczka konfitowana z jabłkami", Allergens: []string{}},
					{ID: "losos-grillowany", Name: "Łosoś grillowany z masłem czosnkowym", Allergens: []string{"ryby", "mleko"}},
					{ID: "risotto-truflowe", Name: "Risotto z truflami (vege)", Allergens: []string{"mleko"}},
				},
			},
			{
				ID:            "przystawki",
				Name:          "Przystawki",
				MinSelections: 2,
				MaxSelections: 3,
				Options: []GroupOption{
					{ID: "carpaccio", Name: "Carpaccio z polędwicy", Allergens: []string{"mleko"}},
					{ID: "tatar-losos", Name: "Tatar z łososia z awokado", Allergens: []string{"ryby"}},
					{ID: "bruschetta", Name: "Bruschetta z pomidorami", Allergens: []string{"gluten"}},
				},
			},
			{
				ID:            "desery-premium",
				Name:          "Desery",
				MinSelections: 1,
				MaxSelections: 2,
				Options: []GroupOption{
					{ID: "creme-brulee", Name: "Crème brûlée", Allergens: []string{"mleko", "jaja"}},
					{ID: "fondant", Name: "Fondant czekoladowy", Allergens: []string{"mleko", "jaja", "gluten"}},
					{ID: "panna-cotta", Name: "Panna cotta z malinami", Allergens: []string{"mleko"}},
				},
			},
		},
	},
	&ConfigurableProduct{
		ID:              "zestaw-3",
		Name:            "Zestaw Wegetariański",
		Description:     "Pełne menu bez mięsa. Minimum 10 osób.",
		LongDescription: "Kolorowe i pełne smaku menu wegetariańskie. Curry, falafel, lasagne warzywna i świeże sałatki - udowadniamy, że bez mięsa może być pysznie!",
		PricePerPerson:  zl(60),
		MinPersons:      10,
		Icon:            "🥗",
		Category:        "zestawy",
		OptionGroups: []OptionGroup{
			{
				ID:            "dania-vege",
				Name:          "Dania główne",
				MinSelections: 2,
				MaxSelections: 4,
				Options: []GroupOption{
					{ID: "curry-vege", Name: "Curry warzywne z mlekiem kokosowym", Allergens: []string{}},
					{ID: "lasagne-vege", Name: "Lasagne z warzywami", Allergens: []string{"mleko", "gluten"}},
					{ID: "falafel-talerz", Name: "Talerz falafel z hummusem", Allergens: []string{"sezam"}},
					{ID: "stir-fry", Name: "Stir-fry z tofu", Allergens: []string{"soja", "gluten"}},
				},
			},
			{
				ID:            "dodatki-vege",
				Name:          "Dodatki",
				MinSelections: 2,
				MaxSelections: 3,
				Options: []GroupOption{
					{ID: "ryz-jasminowy", Name: "Ryż jaśminowy", Allergens: []string{}},
					{ID: "kuskus", Name: "Kuskus z warzywami", Allergens: []string{"gluten"}},
					{ID: "grillowane-warzywa", Name: "Grillowane warzywa", Allergens: []string{}},
				},
			},
			{
				ID:            "salatki-vege",
				Name:          "Sałatki",
				MinSelections: 1,
				MaxSelections: 2,
				Options: []GroupOption{
					{ID: "quinoa-bowl", Name: "Quinoa bowl", Allergens: []string{}},
					{ID: "tabouleh", Name: "Tabouleh", Allergens: []string{"gluten"}},
					{ID: "caprese", Name: "Caprese", Allergens: []string{"mleko"}},
				},
			},
		},
	},
}
