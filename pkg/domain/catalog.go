package domain

import "strings"

// Subject is an O-Level subject a document belongs to.
type Subject string

// Subjects offered in the Sri Lankan G.C.E. O-Level examination.
const (
	SubjectMathematics       Subject = "mathematics"
	SubjectScience           Subject = "science"
	SubjectEnglish           Subject = "english"
	SubjectSinhala           Subject = "sinhala"
	SubjectTamil             Subject = "tamil"
	SubjectHistory           Subject = "history"
	SubjectBuddhism          Subject = "buddhism"
	SubjectCatholicism       Subject = "catholicism"
	SubjectChristianity      Subject = "christianity"
	SubjectHinduism          Subject = "hinduism"
	SubjectIslam             Subject = "islam"
	SubjectGeography         Subject = "geography"
	SubjectCivicEducation    Subject = "civic_education"
	SubjectBusiness          Subject = "business_accounting"
	SubjectICT               Subject = "ict"
	SubjectHealth            Subject = "health_pe"
	SubjectArt               Subject = "art"
	SubjectMusic             Subject = "music"
	SubjectDancing           Subject = "dancing"
	SubjectDrama             Subject = "drama_theatre"
	SubjectAgriculture       Subject = "agriculture"
	SubjectHomeEconomics     Subject = "home_economics"
	SubjectDesignTechnology  Subject = "design_technology"
	SubjectEnglishLiterature Subject = "english_literature"
	SubjectSinhalaLiterature Subject = "sinhala_literature"
	SubjectTamilLiterature   Subject = "tamil_literature"
	SubjectOther             Subject = "other"
)

// SubjectInfo pairs a subject with its display name.
type SubjectInfo struct {
	Subject Subject `json:"id"`
	Name    string  `json:"name"`
}

// Catalog lists every subject in display order.
var Catalog = []SubjectInfo{ //nolint: gochecknoglobals
	{SubjectMathematics, "Mathematics"},
	{SubjectScience, "Science"},
	{SubjectEnglish, "English"},
	{SubjectSinhala, "Sinhala Language & Literature"},
	{SubjectTamil, "Tamil Language & Literature"},
	{SubjectHistory, "History"},
	{SubjectBuddhism, "Buddhism"},
	{SubjectCatholicism, "Catholicism"},
	{SubjectChristianity, "Christianity"},
	{SubjectHinduism, "Hinduism"},
	{SubjectIslam, "Islam"},
	{SubjectGeography, "Geography"},
	{SubjectCivicEducation, "Civic Education"},
	{SubjectBusiness, "Business & Accounting Studies"},
	{SubjectICT, "Information & Communication Technology"},
	{SubjectHealth, "Health & Physical Education"},
	{SubjectArt, "Art"},
	{SubjectMusic, "Music"},
	{SubjectDancing, "Dancing"},
	{SubjectDrama, "Drama & Theatre"},
	{SubjectAgriculture, "Agriculture & Food Technology"},
	{SubjectHomeEconomics, "Home Economics"},
	{SubjectDesignTechnology, "Design & Technology"},
	{SubjectEnglishLiterature, "Appreciation of English Literary Texts"},
	{SubjectSinhalaLiterature, "Appreciation of Sinhala Literary Texts"},
	{SubjectTamilLiterature, "Appreciation of Tamil Literary Texts"},
	{SubjectOther, "Other"},
}

// subjectAliases maps loose spellings (as produced by people and language
// models) onto subjects.
var subjectAliases = map[string]Subject{ //nolint: gochecknoglobals
	"maths":                   SubjectMathematics,
	"math":                    SubjectMathematics,
	"ganithaya":               SubjectMathematics,
	"english language":        SubjectEnglish,
	"sinhala language":        SubjectSinhala,
	"tamil language":          SubjectTamil,
	"civics":                  SubjectCivicEducation,
	"citizenship education":   SubjectCivicEducation,
	"commerce":                SubjectBusiness,
	"accounting":              SubjectBusiness,
	"business studies":        SubjectBusiness,
	"information technology":  SubjectICT,
	"it":                      SubjectICT,
	"health":                  SubjectHealth,
	"physical education":      SubjectHealth,
	"drama":                   SubjectDrama,
	"agriculture and food":    SubjectAgriculture,
	"english literature":      SubjectEnglishLiterature,
	"sinhala literature":      SubjectSinhalaLiterature,
	"tamil literature":        SubjectTamilLiterature,
	"catholic":                SubjectCatholicism,
	"christian":               SubjectChristianity,
	"islam religion":          SubjectIslam,
	"design and technology":   SubjectDesignTechnology,
	"home science":            SubjectHomeEconomics,
	"business & accounting":   SubjectBusiness,
	"health & physical":       SubjectHealth,
	"drama and theatre":       SubjectDrama,
	"business and accounting": SubjectBusiness,
}

// normalizeKey lower-cases s and folds separators into single spaces.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)

	return strings.Join(strings.Fields(s), " ")
}

// ParseSubject resolves s to a known subject. Ids, display names and common
// aliases are accepted, case-insensitively.
func ParseSubject(s string) (Subject, bool) {
	key := normalizeKey(s)
	if key == "" {
		return "", false
	}
	for _, info := range Catalog {
		if key == normalizeKey(string(info.Subject)) || key == normalizeKey(info.Name) {
			return info.Subject, true
		}
	}
	if sub, ok := subjectAliases[key]; ok {
		return sub, true
	}

	return "", false
}

// Medium is the instructional language of a document.
type Medium string

const (
	MediumSinhala Medium = "sinhala"
	MediumEnglish Medium = "english"
	MediumTamil   Medium = "tamil"
)

// Media lists every medium.
var Media = []Medium{MediumSinhala, MediumEnglish, MediumTamil} //nolint: gochecknoglobals

// ParseMedium resolves s to a medium, accepting "Sinhala medium" style input.
func ParseMedium(s string) (Medium, bool) {
	key := strings.TrimSuffix(normalizeKey(s), " medium")
	for _, m := range Media {
		if key == string(m) {
			return m, true
		}
	}

	return "", false
}

// DocType classifies what kind of material a document is.
type DocType string

const (
	DocTypePastPaper  DocType = "past_paper"
	DocTypeModelPaper DocType = "model_paper"
	DocTypeNotes      DocType = "notes"
	DocTypeBook       DocType = "book"
	DocTypeOther      DocType = "other"
)

// DocTypes lists every document type.
var DocTypes = []DocType{ //nolint: gochecknoglobals
	DocTypePastPaper, DocTypeModelPaper, DocTypeNotes, DocTypeBook, DocTypeOther,
}

var docTypeAliases = map[string]DocType{ //nolint: gochecknoglobals
	"past paper":     DocTypePastPaper,
	"pastpaper":      DocTypePastPaper,
	"exam paper":     DocTypePastPaper,
	"model paper":    DocTypeModelPaper,
	"term test":      DocTypeModelPaper,
	"practice paper": DocTypeModelPaper,
	"note":           DocTypeNotes,
	"short notes":    DocTypeNotes,
	"textbook":       DocTypeBook,
	"text book":      DocTypeBook,
}

// ParseDocType resolves s to a document type.
func ParseDocType(s string) (DocType, bool) {
	key := normalizeKey(s)
	for _, t := range DocTypes {
		if key == normalizeKey(string(t)) {
			return t, true
		}
	}
	if t, ok := docTypeAliases[key]; ok {
		return t, true
	}

	return "", false
}
