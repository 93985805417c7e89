package domain

import "strings"

// CitationType is the CSL item type of a cited work. The set is closed;
// unrecognized tags decode to CitationTypeOther.
type CitationType string

const (
	CitationTypeOther                 CitationType = ""
	CitationTypeArticle               CitationType = "article"
	CitationTypeArticleJournal        CitationType = "article-journal"
	CitationTypeArticleMagazine       CitationType = "article-magazine"
	CitationTypeArticleNewspaper      CitationType = "article-newspaper"
	CitationTypeBill                  CitationType = "bill"
	CitationTypeBook                  CitationType = "book"
	CitationTypeBroadcast             CitationType = "broadcast"
	CitationTypeChapter               CitationType = "chapter"
	CitationTypeClassic               CitationType = "classic"
	CitationTypeCollection            CitationType = "collection"
	CitationTypeDataset               CitationType = "dataset"
	CitationTypeDocument              CitationType = "document"
	CitationTypeEntry                 CitationType = "entry"
	CitationTypeEntryDictionary       CitationType = "entry-dictionary"
	CitationTypeEntryEncyclopedia     CitationType = "entry-encyclopedia"
	CitationTypeEvent                 CitationType = "event"
	CitationTypeFigure                CitationType = "figure"
	CitationTypeGraphic               CitationType = "graphic"
	CitationTypeHearing               CitationType = "hearing"
	CitationTypeInterview             CitationType = "interview"
	CitationTypeLegalCase             CitationType = "legal_case"
	CitationTypeLegislation           CitationType = "legislation"
	CitationTypeManuscript            CitationType = "manuscript"
	CitationTypeMap                   CitationType = "map"
	CitationTypeMotionPicture         CitationType = "motion_picture"
	CitationTypeMusicalScore          CitationType = "musical_score"
	CitationTypePamphlet              CitationType = "pamphlet"
	CitationTypePaperConference       CitationType = "paper-conference"
	CitationTypePatent                CitationType = "patent"
	CitationTypePerformance           CitationType = "performance"
	CitationTypePeriodical            CitationType = "periodical"
	CitationTypePersonalCommunication CitationType = "personal_communication"
	CitationTypePost                  CitationType = "post"
	CitationTypePostWeblog            CitationType = "post-weblog"
	CitationTypeRegulation            CitationType = "regulation"
	CitationTypeReport                CitationType = "report"
	CitationTypeReview                CitationType = "review"
	CitationTypeReviewBook            CitationType = "review-book"
	CitationTypeSoftware              CitationType = "software"
	CitationTypeSong                  CitationType = "song"
	CitationTypeSpeech                CitationType = "speech"
	CitationTypeStandard              CitationType = "standard"
	CitationTypeThesis                CitationType = "thesis"
	CitationTypeTreaty                CitationType = "treaty"
	CitationTypeWebpage               CitationType = "webpage"
)

// CitationTypes lists every CitationType, CitationTypeOther included.
var CitationTypes = []CitationType{
	CitationTypeOther,
	CitationTypeArticle,
	CitationTypeArticleJournal,
	CitationTypeArticleMagazine,
	CitationTypeArticleNewspaper,
	CitationTypeBill,
	CitationTypeBook,
	CitationTypeBroadcast,
	CitationTypeChapter,
	CitationTypeClassic,
	CitationTypeCollection,
	CitationTypeDataset,
	CitationTypeDocument,
	CitationTypeEntry,
	CitationTypeEntryDictionary,
	CitationTypeEntryEncyclopedia,
	CitationTypeEvent,
	CitationTypeFigure,
	CitationTypeGraphic,
	CitationTypeHearing,
	CitationTypeInterview,
	CitationTypeLegalCase,
	CitationTypeLegislation,
	CitationTypeManuscript,
	CitationTypeMap,
	CitationTypeMotionPicture,
	CitationTypeMusicalScore,
	CitationTypePamphlet,
	CitationTypePaperConference,
	CitationTypePatent,
	CitationTypePerformance,
	CitationTypePeriodical,
	CitationTypePersonalCommunication,
	CitationTypePost,
	CitationTypePostWeblog,
	CitationTypeRegulation,
	CitationTypeReport,
	CitationTypeReview,
	CitationTypeReviewBook,
	CitationTypeSoftware,
	CitationTypeSong,
	CitationTypeSpeech,
	CitationTypeStandard,
	CitationTypeThesis,
	CitationTypeTreaty,
	CitationTypeWebpage,
}

// ParseCitationType returns the CitationType for a CSL type tag. Tags are
// matched exactly, as CSL defines them.
func ParseCitationType(tag string) CitationType {
	for _, t := range CitationTypes {
		if t != CitationTypeOther && string(t) == tag {
			return t
		}
	}
	return CitationTypeOther
}

// IsJournal reports whether the work is a journal article.
func (t CitationType) IsJournal() bool { return t == CitationTypeArticleJournal }

// IsNews reports whether the type tag names a news item.
func (t CitationType) IsNews() bool { return strings.Contains(string(t), "news") }

// Author is a CSL name. Plain-string authors land in Literal.
type Author struct {
	Family  string
	Given   string
	Literal string
}

// IssuedDate is a CSL issue date; only Year is required.
type IssuedDate struct {
	Year  int
	Month int
	Day   int
}

// CitationMetadata is normalized citation data supplied by the citation
// provider. The engine treats it as validated input.
type CitationMetadata struct {
	Type      CitationType
	Authors   []Author
	Publisher string
	DOI       string
	Issued    *IssuedDate
	URL       string
}
