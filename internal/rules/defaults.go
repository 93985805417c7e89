package rules

import "sourcescore/internal/domain"

// Default returns a fresh copy of the built-in tables.
func Default() *Rules {
	return &Rules{
		Labels: LabelRules{
			Scores: map[domain.RatingLabel]int{
				domain.LabelGenerallyReliable:   85,
				domain.LabelReliable:            80,
				domain.LabelMixed:               60,
				domain.LabelGenerallyUnreliable: 35,
				domain.LabelUnreliable:          25,
				domain.LabelDeprecated:          15,
				domain.LabelBlacklisted:         0,
				domain.LabelContextDependent:    65,
				domain.LabelUnknown:             50,
			},
			Unrecognized:    50,
			AncestorPenalty: 5,
		},
		Domains: []DomainRule{
			{
				Name:     "academic",
				Contains: []string{".edu", ".ac.", "university", "college"},
				Delta:    domain.FactorSet{EditorialControl: 15, Expertise: 10, FactChecking: 10},
			},
			{
				Name:     "government",
				Contains: []string{".gov."},
				Suffixes: []string{".gov"},
				Delta:    domain.FactorSet{EditorialControl: 10, Transparency: 10, Expertise: 5},
			},
			{
				Name: "major_news",
				Contains: []string{
					"nytimes.com", "washingtonpost.com", "bbc.co.uk", "reuters.com",
					"ap.org", "npr.org", "theguardian.com", "wsj.com",
				},
				Delta: domain.FactorSet{EditorialControl: 10, FactChecking: 8, Independence: 5},
			},
			{
				Name: "academic_publisher",
				Contains: []string{
					"springer.com", "elsevier.com", "wiley.com", "cambridge.org",
					"oxford.com", "jstor.org", "pubmed.gov",
				},
				Delta: domain.FactorSet{EditorialControl: 15, Expertise: 15, FactChecking: 10},
			},
			{
				Name: "social_platform",
				Contains: []string{
					"twitter.com", "facebook.com", "instagram.com", "tiktok.com",
					"reddit.com", "youtube.com", "medium.com",
				},
				Delta: domain.FactorSet{EditorialControl: -15, FactChecking: -10, Independence: -5},
			},
			{
				Name:     "personal_site",
				Contains: []string{"blog", "personal"},
				Delta:    domain.FactorSet{EditorialControl: -8, FactChecking: -5},
			},
		},
		TypeBonus: defaultTypeBonus(),
		Metadata: MetadataRules{
			AuthorBonusEach: 2,
			AuthorBonusCap:  8,
			PublisherTerms:  []string{"university", "academic"},
			PublisherDelta:  domain.FactorSet{Expertise: 8, EditorialControl: 5},
			DOIDelta:        domain.FactorSet{EditorialControl: 10, Transparency: 5},
		},
		// The age>=20 tier never fires: age>=10 is tested first. Kept so the
		// numeric output stays identical for existing callers.
		Recency: []RecencyTier{
			{Op: "le", Age: 2, Delta: 5},
			{Op: "le", Age: 5, Delta: 2},
			{Op: "ge", Age: 10, Delta: -2},
			{Op: "ge", Age: 20, Delta: -5},
		},
		Context: ContextRules{
			MedicalTerms:     []string{"medical", "health", "disease", "treatment", "drug"},
			MedicalJournal:   10,
			MedicalNews:      -5,
			StatisticalTerms: []string{"statistics", "data", "study", "research", "percent"},
			StatisticalFit:   8,
			StatisticalWeb:   -5,
			CurrentTerms:     []string{"recent", "current", "today"},
			CurrentYearSpan:  2,
			CurrentMaxAge:    1,
			CurrentFit:       8,
		},
		Aggregate: AggregateRules{
			Ceiling:     90,
			Compression: 0.3,
			Min:         0,
			Max:         100,
		},
	}
}

func defaultTypeBonus() map[domain.CitationType]int {
	return map[domain.CitationType]int{
		domain.CitationTypeArticleJournal:   15,
		domain.CitationTypeBook:             10,
		domain.CitationTypeChapter:          8,
		domain.CitationTypeArticleNewspaper: 5,
		domain.CitationTypeWebpage:          -5,
		domain.CitationTypePostWeblog:       -10,

		domain.CitationTypeOther:                 0,
		domain.CitationTypeArticle:               0,
		domain.CitationTypeArticleMagazine:       0,
		domain.CitationTypeBill:                  0,
		domain.CitationTypeBroadcast:             0,
		domain.CitationTypeClassic:               0,
		domain.CitationTypeCollection:            0,
		domain.CitationTypeDataset:               0,
		domain.CitationTypeDocument:              0,
		domain.CitationTypeEntry:                 0,
		domain.CitationTypeEntryDictionary:       0,
		domain.CitationTypeEntryEncyclopedia:     0,
		domain.CitationTypeEvent:                 0,
		domain.CitationTypeFigure:                0,
		domain.CitationTypeGraphic:               0,
		domain.CitationTypeHearing:               0,
		domain.CitationTypeInterview:             0,
		domain.CitationTypeLegalCase:             0,
		domain.CitationTypeLegislation:           0,
		domain.CitationTypeManuscript:            0,
		domain.CitationTypeMap:                   0,
		domain.CitationTypeMotionPicture:         0,
		domain.CitationTypeMusicalScore:          0,
		domain.CitationTypePamphlet:              0,
		domain.CitationTypePaperConference:       0,
		domain.CitationTypePatent:                0,
		domain.CitationTypePerformance:           0,
		domain.CitationTypePeriodical:            0,
		domain.CitationTypePersonalCommunication: 0,
		domain.CitationTypePost:                  0,
		domain.CitationTypeRegulation:            0,
		domain.CitationTypeReport:                0,
		domain.CitationTypeReview:                0,
		domain.CitationTypeReviewBook:            0,
		domain.CitationTypeSoftware:              0,
		domain.CitationTypeSong:                  0,
		domain.CitationTypeSpeech:                0,
		domain.CitationTypeStandard:              0,
		domain.CitationTypeThesis:                0,
		domain.CitationTypeTreaty:                0,
	}
}
