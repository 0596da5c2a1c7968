package survey

// Factor is one measurable sub-topic within an area of the engagement
// taxonomy.
type Factor struct {
	ID         string
	AreaID     string
	AreaNamePL string
	AreaNameEN string
	NamePL     string
	NameEN     string

	// Synonyms are alternative phrasings the static header mapper accepts
	// in addition to the factor names.
	Synonyms []string
}

// Taxonomy maps factor IDs to their definitions.
type Taxonomy map[string]Factor

// DefaultTaxonomy is the fixed engagement/satisfaction taxonomy the survey
// templates are built around.
func DefaultTaxonomy() Taxonomy {
	factors := []Factor{
		{
			ID: "base_salary", AreaID: "compensation",
			AreaNamePL: "Wynagrodzenie i benefity", AreaNameEN: "Compensation and Benefits",
			NamePL: "Wynagrodzenie zasadnicze", NameEN: "Base Salary",
			Synonyms: []string{"Ocena wynagrodzenia", "Płaca zasadnicza"},
		},
		{
			ID: "benefits", AreaID: "compensation",
			AreaNamePL: "Wynagrodzenie i benefity", AreaNameEN: "Compensation and Benefits",
			NamePL: "Benefity", NameEN: "Benefits",
			Synonyms: []string{"Świadczenia pozapłacowe"},
		},
		{
			ID: "recognition", AreaID: "recognition",
			AreaNamePL: "Uznanie i docenianie", AreaNameEN: "Recognition and Appreciation",
			NamePL: "Uznanie i docenianie", NameEN: "Recognition and Appreciation",
			Synonyms: []string{"Docenianie pracy", "Uznanie"},
		},
		{
			ID: "feedback", AreaID: "recognition",
			AreaNamePL: "Uznanie i docenianie", AreaNameEN: "Recognition and Appreciation",
			NamePL: "Informacja zwrotna", NameEN: "Feedback",
			Synonyms: []string{"Feedback od przełożonego"},
		},
		{
			ID: "work_environment", AreaID: "environment",
			AreaNamePL: "Środowisko pracy i kultura", AreaNameEN: "Work Environment and Culture",
			NamePL: "Środowisko pracy", NameEN: "Work Environment",
			Synonyms: []string{"Warunki pracy"},
		},
		{
			ID: "culture", AreaID: "environment",
			AreaNamePL: "Środowisko pracy i kultura", AreaNameEN: "Work Environment and Culture",
			NamePL: "Kultura organizacyjna", NameEN: "Organizational Culture",
		},
		{
			ID: "teamwork", AreaID: "environment",
			AreaNamePL: "Środowisko pracy i kultura", AreaNameEN: "Work Environment and Culture",
			NamePL: "Współpraca w zespole", NameEN: "Teamwork",
			Synonyms: []string{"Atmosfera w zespole"},
		},
		{
			ID: "growth", AreaID: "development",
			AreaNamePL: "Rozwój i szkolenia", AreaNameEN: "Growth and Development",
			NamePL: "Możliwości rozwoju", NameEN: "Growth Opportunities",
			Synonyms: []string{"Rozwój zawodowy"},
		},
		{
			ID: "training", AreaID: "development",
			AreaNamePL: "Rozwój i szkolenia", AreaNameEN: "Growth and Development",
			NamePL: "Szkolenia", NameEN: "Training",
		},
		{
			ID: "communication", AreaID: "communication",
			AreaNamePL: "Komunikacja", AreaNameEN: "Communication",
			NamePL: "Komunikacja wewnętrzna", NameEN: "Internal Communication",
			Synonyms: []string{"Przepływ informacji"},
		},
		{
			ID: "leadership", AreaID: "leadership",
			AreaNamePL: "Przywództwo", AreaNameEN: "Leadership",
			NamePL: "Jakość przywództwa", NameEN: "Leadership Quality",
			Synonyms: []string{"Ocena przełożonego"},
		},
		{
			ID: "work_life_balance", AreaID: "balance",
			AreaNamePL: "Równowaga praca-życie", AreaNameEN: "Work-Life Balance",
			NamePL: "Równowaga praca-życie", NameEN: "Work-Life Balance",
			Synonyms: []string{"Work-life balance", "Balans praca-życie"},
		},
	}

	taxonomy := make(Taxonomy, len(factors))
	for _, f := range factors {
		taxonomy[f.ID] = f
	}
	return taxonomy
}
