package recipes

// Recipe is a catalog entry. Only ID, Title, Time and Ingredients take part
// in matching; the remaining fields are carried through to clients as-is.
type Recipe struct {
	ID              string           `json:"id" validate:"required"`
	Title           string           `json:"title" validate:"required"`
	Rating          float64          `json:"rating" validate:"gte=0,lte=5"`
	Time            int              `json:"time" validate:"gt=0"`
	Difficulty      string           `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
	Ingredients     []string         `json:"ingredients" validate:"dive,required"`
	Instructions    []string         `json:"instructions"`
	Image           string           `json:"image,omitempty"`
	Category        string           `json:"category,omitempty"`
	Servings        int              `json:"servings,omitempty" validate:"gte=0"`
	Calories        int              `json:"calories,omitempty" validate:"gte=0"`
	IsFavorite      bool             `json:"isFavorite"`
	Cost            string           `json:"cost,omitempty" validate:"omitempty,oneof=low medium high"`
	Healthiness     int              `json:"healthiness,omitempty" validate:"omitempty,min=1,max=10"`
	DishType        string           `json:"dishType,omitempty"`
	Allergens       []string         `json:"allergens,omitempty"`
	Sustainability  int              `json:"sustainability,omitempty" validate:"omitempty,min=1,max=10"`
	Diet            []string         `json:"diet,omitempty"`
	NutritionalInfo *NutritionalInfo `json:"nutritionalInfo,omitempty"`
}

type NutritionalInfo struct {
	Protein float64 `json:"protein,omitempty"`
	Carbs   float64 `json:"carbs,omitempty"`
	Fat     float64 `json:"fat,omitempty"`
	Fiber   float64 `json:"fiber,omitempty"`
}

// Clone returns a deep copy so callers can annotate without touching the catalog.
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = cloneStrings(r.Ingredients)
	out.Instructions = cloneStrings(r.Instructions)
	out.Allergens = cloneStrings(r.Allergens)
	out.Diet = cloneStrings(r.Diet)
	if r.NutritionalInfo != nil {
		info := *r.NutritionalInfo
		out.NutritionalInfo = &info
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
