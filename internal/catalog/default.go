package catalog

// Default returns the built-in catalog used when no catalog file is
// configured. The postings cover the departments the site advertises.
func Default() *Catalog {
	return &Catalog{Items: []*Posting{
		{
			ID: "fe-001", Title: "Frontend Engineer", Department: "Engineering",
			Location: "Remote — Paris/Beirut", Type: "Full-time",
			Skills:      []string{"react", "typescript", "css", "nextjs"},
			Description: "Build delightful web experiences with React/Next.js.",
			ApplyURL:    "#apply-frontend",
		},
		{
			ID: "be-004", Title: "Backend Engineer (Node)", Department: "Engineering",
			Location: "Hybrid — Berlin", Type: "Full-time",
			Skills:      []string{"node", "postgres", "aws", "rest"},
			Description: "Design scalable APIs and data pipelines.",
			ApplyURL:    "#apply-be",
		},
		{
			ID: "se-005", Title: "Site Reliability Engineer", Department: "Engineering",
			Location: "Remote — Lisbon", Type: "Full-time",
			Skills:      []string{"kubernetes", "terraform", "observability"},
			Description: "Keep systems fast, safe, and reliable.",
			ApplyURL:    "#apply-sre",
		},
		{
			ID: "ds-002", Title: "Data Scientist", Department: "Data",
			Location: "Remote — London", Type: "Full-time",
			Skills:      []string{"python", "ml", "sql", "pandas"},
			Description: "Own ML models end-to-end and deliver insights.",
			ApplyURL:    "#apply-ds",
		},
		{
			ID: "de-006", Title: "Data Engineer", Department: "Data",
			Location: "Dubai (Onsite/Hybrid)", Type: "Full-time",
			Skills:      []string{"spark", "airflow", "dbt", "sql"},
			Description: "Build robust data pipelines and marts.",
			ApplyURL:    "#apply-de",
		},
		{
			ID: "pm-003", Title: "Product Manager", Department: "Product",
			Location: "Hybrid — Dubai", Type: "Full-time",
			Skills:      []string{"roadmaps", "discovery", "analytics"},
			Description: "Lead discovery and delivery with cross-functional teams.",
			ApplyURL:    "#apply-pm",
		},
		{
			ID: "ux-007", Title: "Senior Product Designer", Department: "Design",
			Location: "Paris (Hybrid)", Type: "Full-time",
			Skills:      []string{"figma", "ux research", "prototyping"},
			Description: "Craft elegant end-to-end product experiences.",
			ApplyURL:    "#apply-ux",
		},
		{
			ID: "sa-008", Title: "Sales Associate (EMEA)", Department: "Sales",
			Location: "Remote — EMEA", Type: "Full-time",
			Skills:      []string{"outbound", "crm", "discovery"},
			Description: "Grow pipeline and close deals across EMEA.",
			ApplyURL:    "#apply-sales",
		},
		{
			ID: "cs-009", Title: "Customer Success Manager", Department: "CS",
			Location: "Remote — MENA", Type: "Full-time",
			Skills:      []string{"onboarding", "adoption", "upsell"},
			Description: "Drive value and retention for key accounts.",
			ApplyURL:    "#apply-csm",
		},
	}}
}
