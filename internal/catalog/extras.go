package catalog

// ExtraItems lists the standalone add-on services.
var ExtraItems = []ExtraItem{
	{
		ID:              "wniesienie",
		Name:            "Wniesienie na salę",
		Description:     "Wniesiemy catering na wskazane piętro",
		LongDescription: "Nasz profesjonalny personel wniesie wszystkie produkty cateringowe na wskazane przez Ciebie piętro lub salę. Cena obejmuje wniesienie, rozstawienie i przygotowanie bufetu do serwowania.",
		Price:           zl(150),
		UnitLabel:       "event",
		Icon:            "📦",
		Contents: []string{
			"Wniesienie na wskazane piętro",
			"Rozstawienie na stołach",
			"Przygotowanie bufetu",
			"Dekoracja podstawowa",
		},
	},
	{
		ID:              "dekoracja-stolu",
		Name:            "Dekoracja stołu",
		Description:     "Profesjonalna dekoracja stołów cateringowych",
		LongDescription: "Dekorujemy stoły kwiatami, świecami i elegancką zastawą. Wszystko w wybranej przez Ciebie kolorystyce. Nasi dekoratorzy stworzą niepowtarzalną atmosferę.",
		Price:           zl(200),
		UnitLabel:       "event",
		Icon:            "🌸",
		Contents: []string{
			"Kompozycje kwiatowe",
			"Świece dekoracyjne",
			"Eleganckie serwetki",
			"Obrusy w wybranym kolorze",
			"Drobne akcesoria dekoracyjne",
		},
	},
	{
		ID:              "led-swiece",
		Name:            "Świece LED",
		Description:     "Atmosferyczne oświetlenie LED",
		LongDescription: "Zestaw eleganckich świec LED, które stworzą niepowtarzalny klimat na Twoim wydarzeniu. Bezpieczne, bezwonne i długotrwałe - idealne do sal, gdzie ogień jest zabroniony.",
		Price:           zl(80),
		UnitLabel:       "zestaw",
		Icon:            "🕯️",
		Contents: []string{
			"12 świec LED różnej wysokości",
			"Baterie w zestawie",
			"Pilot do sterowania",
			"Tryb migotania płomienia",
		},
	},
	{
		ID:              "naczynia-podgrzewacze",
		Name:            "Podgrzewacze na naczynia",
		Description:     "Utrzymaj potrawy ciepłe przez całe wydarzenie",
		LongDescription: "Profesjonalne podgrzewacze bufetowe ze świecami podgrzewającymi. Utrzymują idealną temperaturę dań przez wiele godzin. Niezbędne przy daniach gorących.",
		Price:           zl(120),
		UnitLabel:       "zestaw",
		Icon:            "🔥",
		Contents: []string{
			"6 podgrzewaczy stalowych",
			"Świece podgrzewające (4h)",
			"Pokrywki szklane",
			"Podstawki ochronne",
		},
	},
	{
		ID:              "odbiorcatering",
		Name:            "Odbiór resztek",
		Description:     "Przyjdziemy i zabierzemy wszystko po imprezie",
		LongDescription: "Po zakończeniu wydarzenia przyjedziemy i zabierzemy wszystkie naczynia, resztki jedzenia i śmieci. Ty cieszysz się imprezą, a my zajmiemy się sprzątaniem!",
		Price:           zl(100),
		UnitLabel:       "event",
		Icon:            "🚚",
		Contents: []string{
			"Odbiór naczyń i zastawy",
			"Zabierzenie resztek jedzenia",
			"Podstawowe sprzątanie stołów",
			"Wywóz śmieci cateringowych",
		},
	},
}

// PackagingOptions are mutually exclusive; exactly one must be chosen before
// the extras step can be passed.
var PackagingOptions = []PackagingOption{
	{
		ID:              "jednorazowa",
		Name:            "Zastawa jednorazowa",
		Description:     "Ekologiczna zastawa jednorazowa w cenie",
		LongDescription: "Wysokiej jakości ekologiczna zastawa jednorazowa wykonana z materiałów biodegradowalnych. Idealna dla osób ceniących wygodę i ekologię. Nie musisz się martwić o zwrot naczyń.",
		Price:           zl(0),
		PriceLabel:      "W cenie",
		Icon:            "🍃",
		Contents: []string{
			"Talerze papierowe premium",
			"Sztućce drewniane",
			"Kubki ekologiczne",
			"Serwetki papierowe",
			"Materiały biodegradowalne",
		},
	},
	{
		ID:                  "porcelana",
		Name:                "Zastawa porcelanowa",
		Description:         "Elegancka porcelana z obsługą zwrotu",
		LongDescription:     "Elegancka biała porcelana idealna na formalne wydarzenia. W cenie usługi zwrotu - przyjedziemy i zabierzemy naczynia po imprezie. Nadaje się do zmywarki.",
		Price:               zl(25),
		PriceLabel:          "25 zł/os.",
		RequiresPersonCount: true,
		Icon:                "🍽️",
		Contents: []string{
			"Talerz płytki porcelanowy",
			"Talerz deserowy",
			"Sztućce stalowe (nóż, widelec, łyżka)",
			"Kieliszek do wina",
			"Szklanka do wody",
			"Serwetka materiałowa",
			"Odbiór po imprezie w cenie",
		},
	},
	{
		ID:                  "premium",
		Name:                "Zastawa premium",
		Description:         "Ekskluzywna porcelana i kryształowe szkło",
		LongDescription:     "Luksusowa zastawa ze złotym wykończeniem i kryształowymi kieliszkami. Idealna na wesela, gale i ekskluzywne przyjęcia. Biała rękawiczka obsługi w standardzie.",
		Price:               zl(45),
		PriceLabel:          "45 zł/os.",
		RequiresPersonCount: true,
		Icon:                "✨",
		Contents: []string{
			"Talerz ze złotym rantem",
			"Talerz deserowy premium",
			"Sztućce posrebrzane",
			"Kieliszki kryształowe (wino, szampan)",
			"Szklanka kryształowa",
			"Serwetka jedwabna",
			"Podkładka dekoracyjna",
			"Obsługa white glove",
		},
	},
}

var WaiterServiceOptions = []WaiterServiceOption{
	{
		ID:              "basic",
		Name:            "Obsługa Basic",
		Description:     "1 kelner na 4 godziny",
		LongDescription: "Podstawowa obsługa kelnerska idealna na mniejsze eventy i spotkania firmowe. Kelner serwuje dania, dba o porządek na stołach i uzupełnia bufet.",
		Duration:        "4h",
		Price:           zl(350),
		Icon:            "👤",
		Contents: []string{
			"1 profesjonalny kelner",
			"4 godziny obsługi",
			"Serwowanie dań i napojów",
			"Dbanie o porządek na stołach",
			"Uzupełnianie bufetu",
		},
	},
	{
		ID:              "standard",
		Name:            "Obsługa Standard",
		Description:     "1 kelner na 8 godzin",
		LongDescription: "Pełna obsługa kelnerska na cały event. Kelner zadba o serwis, bufet i komfort gości przez całe wydarzenie - od przyjazdu do pożegnania ostatniego gościa.",
		Duration:        "8h",
		Price:           zl(600),
		Icon:            "👥",
		Contents: []string{
			"1 profesjonalny kelner",
			"8 godzin obsługi",
			"Pełny serwis stolików",
			"Obsługa bufetu i barku",
			"Pomoc przy dekoracji stołów",
			"Sprzątanie podczas eventu",
		},
	},
	{
		ID:              "premium",
		Name:            "Obsługa Premium",
		Description:     "1 kelner na 12 godzin + koordynator",
		LongDescription: "Kompleksowa obsługa premium z dedykowanym koordynatorem. Pełen serwis VIP, obsługa gości specjalnych i koordynacja całego cateringu. Idealna na wesela i gale.",
		Duration:        "12h",
		Price:           zl(950),
		Icon:            "🌟",
		Contents: []string{
			"1 profesjonalny kelner",
			"Dedykowany koordynator",
			"12 godzin obsługi",
			"Serwis VIP dla gości honorowych",
			"Koordynacja całego cateringu",
			"Obsługa white glove",
			"Pomoc przy logistyce eventu",
		},
	},
}

var PaymentMethods = []PaymentMethod{
	{ID: "online", Name: "Płatność online", Description: "Szybka płatność kartą lub przelewem", Icon: "💳"},
	{ID: "gotowka", Name: "Gotówka", Description: "Płatność przy odbiorze", Icon: "💵"},
	{ID: "oferta", Name: "Oferta", Description: "Otrzymasz szczegółową ofertę mailem", Icon: "📧"},
	{ID: "proforma", Name: "Faktura proforma", Description: "Płatność na podstawie proformy", Icon: "📄"},
}
