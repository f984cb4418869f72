package refdata

import "strings"

// CategoryPair is the (specific label, parent group) a raw category maps to.
type CategoryPair struct {
	Category string `json:"category" toml:"category"`
	Group    string `json:"group" toml:"group"`
}

// UnknownPair is returned on every lookup miss. Both halves are populated so
// a record can never end up with a half-mapped pair.
var UnknownPair = CategoryPair{Category: "Unknown", Group: "Unknown"}

// Table maps a lower-cased raw category term onto its canonical pair.
type Table map[string]CategoryPair

// Lookup resolves a raw term case-insensitively. The second return reports
// whether the term was actually in the table, so callers can count unmapped
// rates instead of only seeing the default.
func (t Table) Lookup(raw string) (CategoryPair, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if pair, ok := t[key]; ok {
		return pair, true
	}
	return UnknownPair, false
}

// ProductCategories returns the product category table: raw RASFF term to
// (specific category, product group).
func ProductCategories() Table {
	return Table{
		"alcoholic beverages":                                  {"Alcoholic Beverages", "Beverages"},
		"animal by-products":                                   {"Animal By-products", "Animal Products"},
		"bivalve molluscs and products thereof":                {"Bivalve Molluscs", "Seafood"},
		"cephalopods and products thereof":                     {"Cephalopods", "Seafood"},
		"cereals and bakery products":                          {"Cereals and Bakery Products", "Grains and Bakery"},
		"cocoa and cocoa preparations, coffee and tea":         {"Cocoa, Coffee, and Tea", "Beverages"},
		"compound feeds":                                       {"Compound Feeds", "Animal Feed"},
		"confectionery":                                        {"Confectionery", "Grains and Bakery"},
		"crustaceans and products thereof":                     {"Crustaceans", "Seafood"},
		"dietetic foods, food supplements and fortified foods": {"Dietetic Foods and Supplements", "Specialty Foods"},
		"eggs and egg products":                                {"Eggs and Egg Products", "Animal Products"},
		"fats and oils":                                        {"Fats and Oils", "Fats and Oils"},
		"feed additives":                                       {"Feed Additives", "Animal Feed"},
		"feed materials":                                       {"Feed Materials", "Animal Feed"},
		"feed premixtures":                                     {"Feed Premixtures", "Animal Feed"},
		"fish and fish products":                               {"Fish and Fish Products", "Seafood"},
		"food additives and flavourings":                       {"Food Additives and Flavourings", "Additives"},
		"food contact materials":                               {"Food Contact Materials", "Packaging"},
		"fruits and vegetables":                                {"Fruits and Vegetables", "Fruits and Vegetables"},
		"gastropods":                                           {"Gastropods", "Seafood"},
		"herbs and spices":                                     {"Herbs and Spices", "Spices"},
		"honey and royal jelly":                                {"Honey and Royal Jelly", "Specialty Foods"},
		"ices and desserts":                                    {"Ices and Desserts", "Grains and Bakery"},
		"live animals":                                         {"Live Animals", "Animal Products"},
		"meat and meat products (other than poultry)":          {"Meat (Non-Poultry)", "Meat Products"},
		"milk and milk products":                               {"Milk and Milk Products", "Dairy"},
		"natural mineral waters":                               {"Natural Mineral Waters", "Beverages"},
		"non-alcoholic beverages":                              {"Non-Alcoholic Beverages", "Beverages"},
		"nuts, nut products and seeds":                         {"Nuts and Seeds", "Seeds and Nuts"},
		"other food product / mixed":                           {"Mixed Food Products", "Other"},
		"pet food":                                             {"Pet Food", "Animal Feed"},
		"plant protection products":                            {"Plant Protection Products", "Additives"},
		"poultry meat and poultry meat products":               {"Poultry Meat", "Meat Products"},
		"prepared dishes and snacks":                           {"Prepared Dishes and Snacks", "Prepared Foods"},
		"soups, broths, sauces and condiments":                 {"Soups, Broths, Sauces", "Prepared Foods"},
		"water for human consumption (other)":                  {"Water (Human Consumption)", "Beverages"},
		"wine":                                                 {"Wine", "Beverages"},
	}
}

// HazardCategories returns the hazard category table: raw RASFF term to
// (specific hazard, hazard group).
func HazardCategories() Table {
	return Table{
		"gmo / novel food":                      {"GMO / Novel Food", "Food Composition"},
		"tses":                                  {"Transmissible Spongiform Encephalopathies (TSEs)", "Biological Hazard"},
		"adulteration / fraud":                  {"Adulteration / Fraud", "Food Fraud"},
		"allergens":                             {"Allergens", "Biological Hazard"},
		"biological contaminants":               {"Biological Contaminants", "Biological Hazard"},
		"biotoxins (other)":                     {"Biotoxins", "Biological Hazard"},
		"chemical contamination (other)":        {"Chemical Contamination", "Chemical Hazard"},
		"composition":                           {"Composition", "Food Composition"},
		"environmental pollutants":              {"Environmental Pollutants", "Chemical Hazard"},
		"feed additives":                        {"Feed Additives", "Chemical Hazard"},
		"food additives and flavourings":        {"Food Additives and Flavourings", "Additives"},
		"foreign bodies":                        {"Foreign Bodies", "Physical Hazard"},
		"genetically modified":                  {"Genetically Modified", "Food Composition"},
		"heavy metals":                          {"Heavy Metals", "Chemical Hazard"},
		"industrial contaminants":               {"Industrial Contaminants", "Chemical Hazard"},
		"labelling absent/incomplete/incorrect": {"Labelling Issues", "Food Fraud"},
		"migration":                             {"Migration", "Chemical Hazard"},
		"mycotoxins":                            {"Mycotoxins", "Biological Hazard"},
		"natural toxins (other)":                {"Natural Toxins", "Biological Hazard"},
		"non-pathogenic micro-organisms":        {"Non-Pathogenic Micro-organisms", "Biological Hazard"},
		"not determined (other)":                {"Not Determined", "Other"},
		"novel food":                            {"Novel Food", "Food Composition"},
		"organoleptic aspects":                  {"Organoleptic Aspects", "Other"},
		"packaging defective / incorrect":       {"Packaging Issues", "Physical Hazard"},
		"parasitic infestation":                 {"Parasitic Infestation", "Biological Hazard"},
		"pathogenic micro-organisms":            {"Pathogenic Micro-organisms", "Biological Hazard"},
		"pesticide residues":                    {"Pesticide Residues", "Pesticide Hazard"},
		"poor or insufficient controls":         {"Insufficient Controls", "Food Fraud"},
		"radiation":                             {"Radiation", "Physical Hazard"},
		"residues of veterinary medicinal":      {"Veterinary Medicinal Residues", "Chemical Hazard"},
	}
}

// ProductCategoryFR maps raw RASFF product category terms to their French
// display labels, used by export/display surfaces.
func ProductCategoryFR() map[string]string {
	return map[string]string{
		"alcoholic beverages":                                  "Boissons alcoolisées",
		"animal by-products":                                   "Sous-produits animaux",
		"bivalve molluscs and products thereof":                "Mollusques bivalves et leurs produits",
		"cephalopods and products thereof":                     "Céphalopodes et leurs produits",
		"cereals and bakery products":                          "Céréales et produits de boulangerie",
		"cocoa and cocoa preparations, coffee and tea":         "Cacao et préparations de cacao, café et thé",
		"compound feeds":                                       "Aliments composés",
		"confectionery":                                        "Confiserie",
		"crustaceans and products thereof":                     "Crustacés et leurs produits",
		"dietetic foods, food supplements and fortified foods": "Aliments diététiques, compléments alimentaires et aliments enrichis",
		"eggs and egg products":                                "Œufs et produits à base d'œufs",
		"fats and oils":                                        "Graisses et huiles",
		"feed additives":                                       "Additifs pour l'alimentation animale",
		"feed materials":                                       "Matières premières pour aliments",
		"feed premixtures":                                     "Prémélanges pour aliments",
		"fish and fish products":                               "Poissons et produits à base de poissons",
		"food additives and flavourings":                       "Additifs alimentaires et arômes",
		"food contact materials":                               "Matériaux en contact avec les aliments",
		"fruits and vegetables":                                "Fruits et légumes",
		"gastropods":                                           "Gastéropodes",
		"herbs and spices":                                     "Herbes et épices",
		"honey and royal jelly":                                "Miel et gelée royale",
		"ices and desserts":                                    "Glaces et desserts",
		"live animals":                                         "Animaux vivants",
		"meat and meat products (other than poultry)":          "Viande et produits carnés (autres que volaille)",
		"milk and milk products":                               "Lait et produits laitiers",
		"natural mineral waters":                               "Eaux minérales naturelles",
		"non-alcoholic beverages":                              "Boissons non alcoolisées",
		"nuts, nut products and seeds":                         "Noix, produits à base de noix et graines",
		"other food product / mixed":                           "Autres produits alimentaires / mixtes",
		"pet food":                                             "Aliments pour animaux de compagnie",
		"plant protection products":                            "Produits de protection des plantes",
		"poultry meat and poultry meat products":               "Viande de volaille et produits à base de viande de volaille",
		"prepared dishes and snacks":                           "Plats préparés et snacks",
		"soups, broths, sauces and condiments":                 "Soupes, bouillons, sauces et condiments",
		"water for human consumption (other)":                  "Eau pour la consommation humaine (autres)",
		"wine":                                                 "Vin",
	}
}
