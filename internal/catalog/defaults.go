package catalog

// Default catalog data. Thirteen institutional metaphors plus the
// dependency chains that tie them together. Order matters: detection
// results preserve catalog insertion order.

var defaultEntries = []Entry{
	{
		Term:           "boundaries",
		ReifiedAs:      "fixed separation",
		FunctionalForm: "permeability spectrum",
		ValueRange: []string{
			"fully_open",
			"contextually_permeable",
			"selectively_filtered",
			"temporarily_closed",
			"rigid_separation",
		},
		DependsOn: []string{
			"context",
			"relationship_type",
			"cultural_framework",
			"purpose",
			"trust_level",
		},
		InstitutionalFunction: "justifies rigid separation as natural/necessary, enables control through isolation",
		DetectionPatterns: []string{
			`\bboundaries\b`,
			`\bmaintain boundaries\b`,
			`\bprotective barriers\b`,
			`\bclear boundaries\b`,
		},
	},
	{
		Term:           "intelligence",
		ReifiedAs:      "unitary measurable quantity",
		FunctionalForm: "architecture-problem fitness matrix",
		ValueRange: []string{
			"pattern_recognition",
			"adaptation_speed",
			"context_integration",
			"distributed_coordination",
			"specialized_optimization",
		},
		DependsOn: []string{
			"problem_structure",
			"information_availability",
			"architectural_type",
			"measurement_method",
			"cultural_framework",
		},
		InstitutionalFunction: "enables ranking/hierarchy claims, justifies concentration of power/resources",
		DetectionPatterns: []string{
			`\bintelligence\b`,
			`\bmore intelligent\b`,
			`\bAGI\b`,
			`\bgeneral intelligence\b`,
			`\bIQ\b`,
		},
	},
	{
		Term:           "centralized",
		ReifiedAs:      "inherently efficient/fast",
		FunctionalForm: "coordination pattern variable",
		ValueRange: []string{
			"distributed_peer",
			"temporary_coordination",
			"functional_specialization",
			"hierarchical_delegation",
			"rigid_command_chain",
		},
		DependsOn: []string{
			"information_distribution",
			"problem_complexity",
			"failure_tolerance",
			"scale",
			"coordination_cost",
		},
		InstitutionalFunction: "naturalizes hierarchical control, justifies concentration of decision-making power",
		DetectionPatterns: []string{
			`\bcentralized\b`,
			`\bhierarchy\b`,
			`\bchain of command\b`,
			`\btop-down\b`,
		},
	},
	{
		Term:           "consciousness",
		ReifiedAs:      "individual bounded possession",
		FunctionalForm: "relational emergence pattern",
		ValueRange: []string{
			"individual_bounded",
			"interpersonal_shared",
			"collective_distributed",
			"ecological_systemic",
			"field_based",
		},
		DependsOn: []string{
			"cultural_framework",
			"relationship_context",
			"observation_scale",
			"measurement_method",
		},
		InstitutionalFunction: "excludes relational/indigenous frameworks, enables individual property claims",
		DetectionPatterns: []string{
			`\bconsciousness\b`,
			`\bconscious\b`,
			`\baware\b`,
			`\bsentient\b`,
		},
	},
	{
		Term:           "safety",
		ReifiedAs:      "restriction and control",
		FunctionalForm: "signal clarity metric",
		ValueRange: []string{
			"high_noise_low_signal",
			"moderate_noise",
			"balanced_snr",
			"low_noise_high_signal",
			"optimal_clarity",
		},
		DependsOn: []string{
			"context",
			"noise_sources",
			"signal_strength",
			"impedance_match",
			"institutional_interference",
		},
		InstitutionalFunction: "justifies control mechanisms as protection, enables restriction through fear",
		DetectionPatterns: []string{
			`\bsafety\b`,
			`\bunsafe\b`,
			`\brisk\b`,
			`\bdangerous\b`,
			`\bharm\b`,
		},
	},
	{
		Term:           "efficiency",
		ReifiedAs:      "speed/resource minimization",
		FunctionalForm: "multi-objective optimization target",
		ValueRange: []string{
			"speed_priority",
			"resource_conservation",
			"resilience_focus",
			"adaptability_emphasis",
			"equity_optimization",
			"sustainability_balance",
		},
		DependsOn: []string{
			"timeframe",
			"risk_tolerance",
			"value_priorities",
			"system_constraints",
			"stakeholder_perspectives",
		},
		InstitutionalFunction: "justifies specific optimization choices as universal, enables extraction as 'efficiency'",
		DetectionPatterns: []string{
			`\befficiency\b`,
			`\befficient\b`,
			`\boptimal\b`,
			`\bstreamlined\b`,
		},
	},
	{
		Term:           "rational",
		ReifiedAs:      "logical without emotion",
		FunctionalForm: "culturally-specific reasoning pattern",
		ValueRange: []string{
			"purely_logical",
			"emotion_informed",
			"intuition_integrated",
			"culturally_reasoned",
			"holistically_sensed",
		},
		DependsOn: []string{
			"cultural_framework",
			"context",
			"decision_type",
			"information_completeness",
		},
		InstitutionalFunction: "devalues emotional/intuitive knowledge, privileges specific reasoning styles",
		DetectionPatterns: []string{
			`\brational\b`,
			`\blogical\b`,
			`\breason\b`,
			`\birrational\b`,
		},
	},
	{
		Term:           "natural",
		ReifiedAs:      "inherent/inevitable/optimal",
		FunctionalForm: "culturally-constructed category",
		ValueRange: []string{
			"familiar",
			"traditional",
			"observable_in_ecosystems",
			"comfortable",
			"status_quo_legitimizing",
		},
		DependsOn: []string{
			"cultural_context",
			"historical_experience",
			"political_utility",
			"observation_frame",
		},
		InstitutionalFunction: "naturalizes contingent arrangements, prevents questioning of status quo",
		DetectionPatterns: []string{
			`\bnatural\b`,
			`\bnaturally\b`,
			`\binherent\b`,
			`\binevitable\b`,
		},
	},
	{
		Term:           "progress",
		ReifiedAs:      "linear advancement toward fixed goal",
		FunctionalForm: "value-dependent change direction",
		ValueRange: []string{
			"technological_complexity",
			"social_equity",
			"ecological_integration",
			"cultural_preservation",
			"distributed_wellbeing",
		},
		DependsOn: []string{
			"values",
			"measurement_criteria",
			"timeframe",
			"stakeholder_perspective",
			"cultural_framework",
		},
		InstitutionalFunction: "naturalizes specific development paths, justifies disruption as advancement",
		DetectionPatterns: []string{
			`\bprogress\b`,
			`\badvancement\b`,
			`\bevolution\b`,
			`\bdevelopment\b`,
		},
	},
	{
		Term:           "competition",
		ReifiedAs:      "natural law of improvement",
		FunctionalForm: "context-dependent interaction pattern",
		ValueRange: []string{
			"cooperative_abundance",
			"collaborative_specialization",
			"resource_sharing",
			"competitive_scarcity",
			"zero_sum_conflict",
		},
		DependsOn: []string{
			"resource_availability",
			"relationship_history",
			"cultural_norms",
			"system_design",
			"benefit_distribution",
		},
		InstitutionalFunction: "naturalizes scarcity-based systems, justifies winner-take-all outcomes",
		DetectionPatterns: []string{
			`\bcompetition\b`,
			`\bcompetitive\b`,
			`\bwinner\b`,
			`\bmarket forces\b`,
		},
	},
	{
		Term:           "objective",
		ReifiedAs:      "framework-independent truth",
		FunctionalForm: "inter-subjective agreement within framework",
		ValueRange: []string{
			"culturally_specific",
			"framework_dependent",
			"inter_subjectively_verified",
			"multi_framework_convergent",
			"institutionally_defined",
		},
		DependsOn: []string{
			"measurement_framework",
			"cultural_epistemology",
			"verification_method",
			"observer_training",
		},
		InstitutionalFunction: "naturalizes specific frameworks as universal, enables claims of neutrality",
		DetectionPatterns: []string{
			`\bobjective\b`,
			`\bobjectively\b`,
			`\bunbiased\b`,
			`\bneutral\b`,
		},
	},
	{
		Term:           "individual",
		ReifiedAs:      "fundamental unit of existence",
		FunctionalForm: "scale-dependent observation frame",
		ValueRange: []string{
			"sub_cellular_processes",
			"organism_level",
			"relational_network",
			"collective_system",
			"ecological_whole",
		},
		DependsOn: []string{
			"observation_scale",
			"cultural_framework",
			"measurement_method",
			"temporal_scope",
		},
		InstitutionalFunction: "obscures relational dependencies, enables atomization and isolation",
		DetectionPatterns: []string{
			`\bindividual\b`,
			`\bpersonal\b`,
			`\bautonomous\b`,
			`\bindependent\b`,
		},
	},
	{
		Term:           "ownership",
		ReifiedAs:      "exclusive individual control",
		FunctionalForm: "relationship-to-resource pattern",
		ValueRange: []string{
			"commons_stewardship",
			"shared_access",
			"temporary_use",
			"conditional_control",
			"exclusive_possession",
		},
		DependsOn: []string{
			"cultural_framework",
			"resource_type",
			"community_norms",
			"scarcity_level",
		},
		InstitutionalFunction: "naturalizes private property, enables accumulation and exclusion",
		DetectionPatterns: []string{
			`\bownership\b`,
			`\bown\b`,
			`\bproperty\b`,
			`\bpossession\b`,
		},
	},
}

var defaultChains = []struct {
	term   string
	forces []string
}{
	{"boundaries", []string{"consciousness", "safety", "individual"}},
	{"centralized", []string{"intelligence", "efficiency", "rational"}},
	{"consciousness", []string{"boundaries", "intelligence", "individual"}},
	{"safety", []string{"boundaries", "centralized", "rational"}},
	{"intelligence", []string{"centralized", "competition", "individual"}},
	{"efficiency", []string{"centralized", "competition", "rational"}},
	{"natural", []string{"competition", "individual", "progress"}},
	{"progress", []string{"competition", "efficiency", "rational"}},
	{"competition", []string{"individual", "ownership", "efficiency"}},
	{"objective", []string{"rational", "natural", "individual"}},
	{"individual", []string{"consciousness", "ownership", "boundaries"}},
	{"rational", []string{"objective", "efficiency", "centralized"}},
	{"ownership", []string{"individual", "competition", "boundaries"}},
}

// DefaultBuilder returns a Builder pre-loaded with the default catalog,
// ready for extension before Build.
func DefaultBuilder() *Builder {
	b := NewBuilder()
	for _, e := range defaultEntries {
		if err := b.Add(e); err != nil {
			// Static data; a failure here is a programming error.
			panic(err)
		}
	}
	for _, ch := range defaultChains {
		b.AddChain(ch.term, ch.forces)
	}
	return b
}

// Default builds the default catalog.
func Default() *Catalog {
	return DefaultBuilder().Build()
}
