package recipes

// Seed returns the built-in Italian catalog used when no other source is configured.
func Seed() []Recipe {
	return []Recipe{
		{
			ID:          "1",
			Title:       "Carbonara Classica",
			Rating:      4.8,
			Time:        25,
			Difficulty:  "medium",
			Ingredients: []string{"spaghetti", "uova", "parmigiano", "guanciale", "pepe nero"},
			Instructions: []string{
				"Metti a bollire abbondante acqua salata per la pasta",
				"Taglia il guanciale a cubetti e rosola in padella senza olio",
				"In una ciotola sbatti le uova con il parmigiano grattugiato",
				"Cuoci gli spaghetti al dente e scolali",
				"Unisci la pasta al guanciale nella padella",
				"Spegni il fuoco e aggiungi il composto di uova mescolando velocemente",
				"Servi subito con pepe nero macinato fresco",
			},
			Category:       "Primi Piatti",
			Servings:       4,
			Calories:       420,
			Cost:           "medium",
			Healthiness:    6,
			DishType:       "Pasta",
			Allergens:      []string{"glutine", "uova", "latticini"},
			Sustainability: 5,
			Diet:           []string{},
			NutritionalInfo: &NutritionalInfo{
				Protein: 18,
				Carbs:   45,
				Fat:     15,
				Fiber:   3,
			},
		},
		{
			ID:           "2",
			Title:        "Risotto ai Funghi",
			Rating:       4.7,
			Time:         45,
			Difficulty:   "medium",
			Ingredients:  []string{"riso carnaroli", "funghi porcini", "parmigiano", "brodo vegetale", "cipolla", "vino bianco"},
			Instructions: []string{"Soffriggi la cipolla", "Tosta il riso", "Aggiungi brodo gradualmente", "Manteca con parmigiano"},
			Category:     "Secondi Piatti",
			Servings:     4,
			Calories:     380,
		},
		{
			ID:           "3",
			Title:        "Pizza Margherita",
			Rating:       4.9,
			Time:         90,
			Difficulty:   "medium",
			Ingredients:  []string{"farina", "pomodoro", "mozzarella", "basilico", "olio", "lievito"},
			Instructions: []string{"Prepara impasto", "Lascia lievitare", "Stendi e condisci", "Cuoci in forno"},
			Category:     "Primi Piatti",
			Servings:     4,
			Calories:     350,
		},
		{
			ID:           "4",
			Title:        "Tiramisù",
			Rating:       4.8,
			Time:         30,
			Difficulty:   "easy",
			Ingredients:  []string{"mascarpone", "caffè", "savoiardi", "uova", "zucchero", "cacao"},
			Instructions: []string{"Prepara crema al mascarpone", "Inzuppa savoiardi", "Componi a strati"},
			Category:     "Dolci",
			Servings:     6,
			Calories:     450,
		},
		{
			ID:           "5",
			Title:        "Pasta al Pomodoro",
			Rating:       4.4,
			Time:         20,
			Difficulty:   "easy",
			Ingredients:  []string{"pasta", "pomodoro", "basilico", "aglio", "olio"},
			Instructions: []string{"Cuoci la pasta", "Prepara sugo semplice", "Manteca e servi"},
			Category:     "Primi Piatti",
			Servings:     4,
			Calories:     300,
		},
		{
			ID:           "6",
			Title:        "Insalata Caprese",
			Rating:       4.6,
			Time:         10,
			Difficulty:   "easy",
			Ingredients:  []string{"pomodoro", "mozzarella", "basilico", "olio extravergine"},
			Instructions: []string{"Affetta pomodoro e mozzarella", "Alterna le fette nel piatto", "Completa con basilico e olio"},
			Category:     "Antipasti",
			Servings:     2,
			Calories:     260,
			Cost:         "low",
			Healthiness:  8,
			Diet:         []string{"vegetariana", "senza glutine"},
		},
		{
			ID:           "7",
			Title:        "Spaghetti Aglio, Olio e Peperoncino",
			Rating:       4.5,
			Time:         15,
			Difficulty:   "easy",
			Ingredients:  []string{"spaghetti", "aglio", "olio extravergine", "peperoncino", "prezzemolo"},
			Instructions: []string{"Cuoci gli spaghetti", "Soffriggi aglio e peperoncino nell'olio", "Salta la pasta e aggiungi prezzemolo"},
			Category:     "Primi Piatti",
			Servings:     2,
			Calories:     410,
			Cost:         "low",
		},
		{
			ID:           "8",
			Title:        "Pollo al Limone",
			Rating:       4.3,
			Time:         35,
			Difficulty:   "easy",
			Ingredients:  []string{"petto di pollo", "limone", "farina", "burro", "prezzemolo"},
			Instructions: []string{"Infarina il pollo", "Rosola nel burro", "Sfuma con succo di limone"},
			Category:     "Secondi Piatti",
			Servings:     4,
			Calories:     320,
		},
		{
			ID:           "9",
			Title:        "Gnocchi al Gorgonzola",
			Rating:       4.5,
			Time:         20,
			Difficulty:   "easy",
			Ingredients:  []string{"gnocchi", "gorgonzola", "panna", "noci"},
			Instructions: []string{"Sciogli il gorgonzola nella panna", "Cuoci gli gnocchi", "Condisci e completa con noci"},
			Category:     "Primi Piatti",
			Servings:     3,
			Calories:     520,
			Allergens:    []string{"latticini", "frutta a guscio", "glutine"},
		},
	}
}
