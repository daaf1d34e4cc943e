package foodb

// BuiltinVersion is the dataset revision string for the embedded database.
const BuiltinVersion = "builtin-1"

// BuiltinEntries returns a fresh copy of the embedded food database. Nutrient
// values are per 100 g; serving sizes carry the weight of one natural unit of
// the food (a slice, a cup, a medium fruit) so count-style quantities resolve
// to sensible gram amounts.
func BuiltinEntries() []Entry {
	src := builtinEntries
	out := make([]Entry, len(src))
	for i, e := range src {
		e.Aliases = append([]string(nil), e.Aliases...)
		out[i] = e
	}
	return out
}

var builtinEntries = []Entry{
	{
		DisplayName: "White Rice", CanonicalName: "rice",
		Aliases:         []string{"white rice", "steamed rice"},
		CaloriesPer100g: 130, ProteinPer100g: 2.7, CarbsPer100g: 28, FatPer100g: 0.3,
		ServingSizeG: 150, ServingDescription: "1 cup cooked (150 g)",
	},
	{
		DisplayName: "Brown Rice", CanonicalName: "brown rice",
		CaloriesPer100g: 112, ProteinPer100g: 2.6, CarbsPer100g: 23.5, FatPer100g: 0.9,
		ServingSizeG: 150, ServingDescription: "1 cup cooked (150 g)",
	},
	{
		DisplayName: "Toast", CanonicalName: "toast",
		CaloriesPer100g: 280, ProteinPer100g: 9, CarbsPer100g: 49, FatPer100g: 4,
		ServingSizeG: 28, ServingDescription: "1 slice (28 g)",
	},
	{
		DisplayName: "White Bread", CanonicalName: "bread",
		Aliases:         []string{"white bread"},
		CaloriesPer100g: 265, ProteinPer100g: 9, CarbsPer100g: 49, FatPer100g: 3.2,
		ServingSizeG: 28, ServingDescription: "1 slice (28 g)",
	},
	{
		DisplayName: "Whole Wheat Bread", CanonicalName: "whole wheat bread",
		Aliases:         []string{"wheat bread", "brown bread"},
		CaloriesPer100g: 247, ProteinPer100g: 13, CarbsPer100g: 41, FatPer100g: 3.4,
		ServingSizeG: 28, ServingDescription: "1 slice (28 g)",
	},
	{
		DisplayName: "Pasta", CanonicalName: "pasta",
		Aliases:         []string{"spaghetti", "noodles"},
		CaloriesPer100g: 131, ProteinPer100g: 5, CarbsPer100g: 25, FatPer100g: 1.1,
		ServingSizeG: 140, ServingDescription: "1 cup cooked (140 g)",
	},
	{
		DisplayName: "Oatmeal", CanonicalName: "oatmeal",
		Aliases:         []string{"oats", "porridge"},
		CaloriesPer100g: 71, ProteinPer100g: 2.5, CarbsPer100g: 12, FatPer100g: 1.5,
		ServingSizeG: 240, ServingDescription: "1 bowl cooked (240 g)",
	},
	{
		DisplayName: "Breakfast Cereal", CanonicalName: "cereal",
		Aliases:         []string{"cornflakes"},
		CaloriesPer100g: 379, ProteinPer100g: 8, CarbsPer100g: 84, FatPer100g: 2.7,
		ServingSizeG: 40, ServingDescription: "1 bowl dry (40 g)",
	},
	{
		DisplayName: "Egg", CanonicalName: "egg",
		Aliases:         []string{"omelette", "omelet"},
		CaloriesPer100g: 155, ProteinPer100g: 13, CarbsPer100g: 1.1, FatPer100g: 11,
		ServingSizeG: 50, ServingDescription: "1 large egg (50 g)",
	},
	{
		DisplayName: "Chicken Breast", CanonicalName: "chicken breast",
		Aliases:         []string{"chicken"},
		CaloriesPer100g: 165, ProteinPer100g: 31, CarbsPer100g: 0, FatPer100g: 3.6,
		ServingSizeG: 120, ServingDescription: "1 breast (120 g)",
	},
	{
		DisplayName: "Salmon", CanonicalName: "salmon",
		CaloriesPer100g: 208, ProteinPer100g: 20, CarbsPer100g: 0, FatPer100g: 13,
		ServingSizeG: 100, ServingDescription: "1 fillet (100 g)",
	},
	{
		DisplayName: "Beef", CanonicalName: "beef",
		Aliases:         []string{"steak"},
		CaloriesPer100g: 250, ProteinPer100g: 26, CarbsPer100g: 0, FatPer100g: 15,
		ServingSizeG: 100, ServingDescription: "1 portion (100 g)",
	},
	{
		DisplayName: "Tofu", CanonicalName: "tofu",
		CaloriesPer100g: 76, ProteinPer100g: 8, CarbsPer100g: 1.9, FatPer100g: 4.8,
		ServingSizeG: 100, ServingDescription: "1 portion (100 g)",
	},
	{
		DisplayName: "Greek Yogurt", CanonicalName: "greek yogurt",
		Aliases:         []string{"yogurt", "yoghurt", "curd"},
		CaloriesPer100g: 59, ProteinPer100g: 10, CarbsPer100g: 3.6, FatPer100g: 0.4,
		ServingSizeG: 170, ServingDescription: "1 container (170 g)",
	},
	{
		DisplayName: "Milk", CanonicalName: "milk",
		CaloriesPer100g: 61, ProteinPer100g: 3.2, CarbsPer100g: 4.8, FatPer100g: 3.3,
		ServingSizeG: 240, ServingDescription: "1 glass (240 g)",
	},
	{
		DisplayName: "Cheddar Cheese", CanonicalName: "cheese",
		Aliases:         []string{"cheddar"},
		CaloriesPer100g: 403, ProteinPer100g: 25, CarbsPer100g: 1.3, FatPer100g: 33,
		ServingSizeG: 28, ServingDescription: "1 slice (28 g)",
	},
	{
		DisplayName: "Banana", CanonicalName: "banana",
		CaloriesPer100g: 89, ProteinPer100g: 1.1, CarbsPer100g: 23, FatPer100g: 0.3,
		ServingSizeG: 118, ServingDescription: "1 medium (118 g)",
	},
	{
		DisplayName: "Apple", CanonicalName: "apple",
		CaloriesPer100g: 52, ProteinPer100g: 0.3, CarbsPer100g: 14, FatPer100g: 0.2,
		ServingSizeG: 182, ServingDescription: "1 medium (182 g)",
	},
	{
		DisplayName: "Orange", CanonicalName: "orange",
		CaloriesPer100g: 47, ProteinPer100g: 0.9, CarbsPer100g: 12, FatPer100g: 0.1,
		ServingSizeG: 131, ServingDescription: "1 medium (131 g)",
	},
	{
		DisplayName: "Blueberries", CanonicalName: "blueberries",
		CaloriesPer100g: 57, ProteinPer100g: 0.7, CarbsPer100g: 14.5, FatPer100g: 0.3,
		ServingSizeG: 148, ServingDescription: "1 cup (148 g)",
	},
	{
		DisplayName: "Strawberries", CanonicalName: "strawberries",
		CaloriesPer100g: 32, ProteinPer100g: 0.7, CarbsPer100g: 7.7, FatPer100g: 0.3,
		ServingSizeG: 152, ServingDescription: "1 cup (152 g)",
	},
	{
		DisplayName: "Broccoli", CanonicalName: "broccoli",
		CaloriesPer100g: 34, ProteinPer100g: 2.8, CarbsPer100g: 7, FatPer100g: 0.4,
		ServingSizeG: 91, ServingDescription: "1 cup (91 g)",
	},
	{
		DisplayName: "Spinach", CanonicalName: "spinach",
		CaloriesPer100g: 23, ProteinPer100g: 2.9, CarbsPer100g: 3.6, FatPer100g: 0.4,
		ServingSizeG: 30, ServingDescription: "1 cup (30 g)",
	},
	{
		DisplayName: "Carrot", CanonicalName: "carrot",
		CaloriesPer100g: 41, ProteinPer100g: 0.9, CarbsPer100g: 10, FatPer100g: 0.2,
		ServingSizeG: 61, ServingDescription: "1 medium (61 g)",
	},
	{
		DisplayName: "Tomato", CanonicalName: "tomato",
		CaloriesPer100g: 18, ProteinPer100g: 0.9, CarbsPer100g: 3.9, FatPer100g: 0.2,
		ServingSizeG: 123, ServingDescription: "1 medium (123 g)",
	},
	{
		DisplayName: "Cucumber", CanonicalName: "cucumber",
		CaloriesPer100g: 15, ProteinPer100g: 0.7, CarbsPer100g: 3.6, FatPer100g: 0.1,
		ServingSizeG: 100, ServingDescription: "1/3 cucumber (100 g)",
	},
	{
		DisplayName: "Potato", CanonicalName: "potato",
		CaloriesPer100g: 77, ProteinPer100g: 2, CarbsPer100g: 17, FatPer100g: 0.1,
		ServingSizeG: 173, ServingDescription: "1 medium (173 g)",
	},
	{
		DisplayName: "Sweet Potato", CanonicalName: "sweet potato",
		CaloriesPer100g: 86, ProteinPer100g: 1.6, CarbsPer100g: 20, FatPer100g: 0.1,
		ServingSizeG: 130, ServingDescription: "1 medium (130 g)",
	},
	{
		DisplayName: "Avocado", CanonicalName: "avocado",
		CaloriesPer100g: 160, ProteinPer100g: 2, CarbsPer100g: 8.5, FatPer100g: 14.7,
		ServingSizeG: 100, ServingDescription: "1/2 fruit (100 g)",
	},
	{
		DisplayName: "Almonds", CanonicalName: "almonds",
		CaloriesPer100g: 579, ProteinPer100g: 21, CarbsPer100g: 22, FatPer100g: 50,
		ServingSizeG: 28, ServingDescription: "1 handful (28 g)",
	},
	{
		DisplayName: "Peanut Butter", CanonicalName: "peanut butter",
		Aliases:         []string{"peanutbutter"},
		CaloriesPer100g: 588, ProteinPer100g: 25, CarbsPer100g: 20, FatPer100g: 50,
		ServingSizeG: 32, ServingDescription: "2 tbsp (32 g)",
	},
	{
		DisplayName: "Olive Oil", CanonicalName: "olive oil",
		CaloriesPer100g: 884, ProteinPer100g: 0, CarbsPer100g: 0, FatPer100g: 100,
		ServingSizeG: 14, ServingDescription: "1 tbsp (14 g)",
	},
	{
		DisplayName: "Butter", CanonicalName: "butter",
		CaloriesPer100g: 717, ProteinPer100g: 0.9, CarbsPer100g: 0.1, FatPer100g: 81,
		ServingSizeG: 14, ServingDescription: "1 tbsp (14 g)",
	},
	{
		DisplayName: "Idli", CanonicalName: "idli",
		Aliases:         []string{"idly"},
		CaloriesPer100g: 146, ProteinPer100g: 4, CarbsPer100g: 30, FatPer100g: 0.4,
		ServingSizeG: 39, ServingDescription: "1 idli (39 g)",
	},
	{
		DisplayName: "Dal", CanonicalName: "dal",
		Aliases:         []string{"daal", "dhal", "lentils"},
		CaloriesPer100g: 116, ProteinPer100g: 9, CarbsPer100g: 20, FatPer100g: 0.4,
		ServingSizeG: 198, ServingDescription: "1 cup cooked (198 g)",
	},
	{
		DisplayName: "Chapati", CanonicalName: "chapati",
		Aliases:         []string{"roti", "chapathi"},
		CaloriesPer100g: 297, ProteinPer100g: 11, CarbsPer100g: 46, FatPer100g: 7.5,
		ServingSizeG: 40, ServingDescription: "1 chapati (40 g)",
	},
	{
		DisplayName: "Coconut Chutney", CanonicalName: "coconut chutney",
		Aliases:         []string{"chutney"},
		CaloriesPer100g: 180, ProteinPer100g: 3, CarbsPer100g: 8, FatPer100g: 15,
		ServingSizeG: 30, ServingDescription: "2 tbsp (30 g)",
	},
	{
		DisplayName: "Orange Juice", CanonicalName: "orange juice",
		Aliases:         []string{"oj"},
		CaloriesPer100g: 45, ProteinPer100g: 0.7, CarbsPer100g: 10.4, FatPer100g: 0.2,
		ServingSizeG: 240, ServingDescription: "1 glass (240 g)",
	},
}
