package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/smartmatch/internal/types"
)

// The heuristic tables below are empirically chosen vocabularies, kept as
// data so tests can exercise each rule independently.

// sectionHeaders is the fixed vocabulary of section-header phrases. A line
// equal to one of these (possibly after decoration stripping) is a header and
// is never emitted as content.
var sectionHeaders = map[string]bool{
	"contact":                 true,
	"professional summary":    true,
	"summary":                 true,
	"objective":               true,
	"skills":                  true,
	"technical skills":        true,
	"core skills":             true,
	"core competencies":       true,
	"technologies":            true,
	"experience":              true,
	"work experience":         true,
	"professional experience": true,
	"employment":              true,
	"education":               true,
	"academic background":     true,
	"qualifications":          true,
	"projects":                true,
	"certifications":          true,
	"achievements":            true,
	"awards":                  true,
}

// namePatterns match "Capitalized Word, Capitalized Word[, Capitalized Word]"
// shapes used to spot the candidate's name near the top of a document.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+$`),
	regexp.MustCompile(`^[A-Z][a-z]+ [A-Z]\. [A-Z][a-z]+$`),
	regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+ [A-Z][a-z]+$`),
}

var (
	emailRe        = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe        = regexp.MustCompile(`\b(?:\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}\b`)
	profileURLRe   = regexp.MustCompile(`(?:linkedin\.com/in/|github\.com/)[\w-]+`)
	contactLabelRe = regexp.MustCompile(`\b(?:email|phone|tel|mobile|cell|linkedin|github):\s*`)
)

var (
	jobTitleRe   = regexp.MustCompile(`\b(?:data scientist|software engineer|analyst|developer|manager|consultant|specialist|coordinator|director)\b`)
	companyRe    = regexp.MustCompile(`\b(?:company|corp|corporation|inc|ltd|llc|university|institute)\b`)
	actionVerbRe = regexp.MustCompile(`\b(?:built|developed|managed|led|created|designed|implemented|analyzed|collaborated|automated)\b`)
	dateRangeRe  = regexp.MustCompile(`\d{4}\s*[-–]\s*(?:\d{4}|present|current)`)
	tenureRe     = regexp.MustCompile(`\b(?:years?|months?)\s+(?:of\s+)?(?:experience|work)`)
)

var (
	institutionRe = regexp.MustCompile(`\b(?:university|college|school|institute|academy)\b`)
	degreeRe      = regexp.MustCompile(`\b(?:bachelor|master|phd|doctorate|degree|diploma|certificate)\b`)
	degreeAbbrRe  = regexp.MustCompile(`\b(?:b\.s|b\.a|m\.s|m\.a|ph\.d|bs|ba|ms|ma)\b`)
	studyFieldRe  = regexp.MustCompile(`\b(?:computer science|engineering|mathematics|business|mba)\b`)
)

// techKeywordRes is the fixed technology/tool vocabulary for the skills rule.
var techKeywordRes = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:python|java|javascript|typescript|sql|html|css|react|angular|node|django|flask)\b`),
	regexp.MustCompile(`\b(?:machine learning|data science|artificial intelligence|deep learning|nlp)\b`),
	regexp.MustCompile(`\b(?:pandas|numpy|scikit-learn|tensorflow|pytorch|matplotlib|seaborn)\b`),
	regexp.MustCompile(`\b(?:aws|azure|gcp|docker|kubernetes|git|jenkins)\b`),
	regexp.MustCompile(`\b(?:excel|powerbi|tableau|stata|r|matlab|sas|spss)\b`),
}

// nameWindow and titleWindow bound the positional heuristics: name shapes are
// only trusted near the top of the document, bare job titles within the first
// few lines of content.
const (
	nameWindow  = 5
	titleWindow = 10
)

// lineContext carries a candidate line through the classification cascade.
type lineContext struct {
	text  string
	lower string
	index int
}

// categoryDiscard marks lines that match a rule but must not be emitted
// (headers, name lines).
const categoryDiscard = types.SectionCategory("")

// classifierRule is one predicate+label pair in the ordered cascade.
type classifierRule struct {
	name     string
	category types.SectionCategory
	matches  func(c lineContext) bool
}

// classifierRules is the fixed-priority cascade: first match wins. Keeping
// the order visible here (rather than nested conditionals) makes the priority
// auditable and each rule independently testable.
func classifierRules() []classifierRule {
	return []classifierRule{
		{
			name:     "section-header",
			category: categoryDiscard,
			matches:  isHeaderLine,
		},
		{
			name:     "candidate-name",
			category: categoryDiscard,
			matches:  isNameLine,
		},
		{
			name:     "contact",
			category: types.CategoryContact,
			matches: func(c lineContext) bool {
				return emailRe.MatchString(c.lower) ||
					phoneRe.MatchString(c.lower) ||
					profileURLRe.MatchString(c.lower) ||
					contactLabelRe.MatchString(c.lower)
			},
		},
		{
			name:     "experience",
			category: types.CategoryExperience,
			matches: func(c lineContext) bool {
				if dateRangeRe.MatchString(c.lower) ||
					companyRe.MatchString(c.lower) ||
					actionVerbRe.MatchString(c.lower) ||
					tenureRe.MatchString(c.lower) {
					return true
				}
				// Bare title-like phrasing is only trusted near the top,
				// where the current-role line typically sits.
				return c.index < titleWindow && jobTitleRe.MatchString(c.lower)
			},
		},
		{
			name:     "education",
			category: types.CategoryEducation,
			matches: func(c lineContext) bool {
				return institutionRe.MatchString(c.lower) ||
					degreeRe.MatchString(c.lower) ||
					degreeAbbrRe.MatchString(c.lower) ||
					studyFieldRe.MatchString(c.lower)
			},
		},
		{
			name:     "skills",
			category: types.CategorySkills,
			matches: func(c lineContext) bool {
				for _, re := range techKeywordRes {
					if re.MatchString(c.lower) {
						return true
					}
				}
				return false
			},
		},
		{
			name:     "other",
			category: types.CategoryOther,
			matches: func(c lineContext) bool {
				return len(strings.Fields(c.text)) >= 3
			},
		},
	}
}

// isHeaderVocabulary reports whether a lowered line equals a header phrase,
// directly or once decorations are stripped.
func isHeaderVocabulary(lower string) bool {
	if sectionHeaders[lower] {
		return true
	}
	return sectionHeaders[stripDecorations(lower)]
}

// isHeaderLine catches exact header-vocabulary lines plus short standalone
// headers that carry a header phrase and no recognizable content.
func isHeaderLine(c lineContext) bool {
	if isHeaderVocabulary(c.lower) {
		return true
	}
	if len(c.text) >= 30 {
		return false
	}
	containsHeader := false
	for header := range sectionHeaders {
		if strings.Contains(c.lower, header) {
			containsHeader = true
			break
		}
	}
	if !containsHeader {
		return false
	}
	return !hasContentSignal(c)
}

// isNameLine applies the name-shape heuristic within the top-of-document
// window, rejecting lines that carry any domain keyword.
func isNameLine(c lineContext) bool {
	if c.index >= nameWindow {
		return false
	}
	shaped := false
	for _, re := range namePatterns {
		if re.MatchString(c.text) {
			shaped = true
			break
		}
	}
	if !shaped {
		return false
	}
	return !hasContentSignal(c)
}

// hasContentSignal reports whether any contact/experience/education/skills
// pattern fires on the line.
func hasContentSignal(c lineContext) bool {
	if emailRe.MatchString(c.lower) || phoneRe.MatchString(c.lower) ||
		profileURLRe.MatchString(c.lower) || contactLabelRe.MatchString(c.lower) {
		return true
	}
	if dateRangeRe.MatchString(c.lower) || companyRe.MatchString(c.lower) ||
		actionVerbRe.MatchString(c.lower) || tenureRe.MatchString(c.lower) ||
		jobTitleRe.MatchString(c.lower) {
		return true
	}
	if institutionRe.MatchString(c.lower) || degreeRe.MatchString(c.lower) ||
		degreeAbbrRe.MatchString(c.lower) || studyFieldRe.MatchString(c.lower) {
		return true
	}
	for _, re := range techKeywordRes {
		if re.MatchString(c.lower) {
			return true
		}
	}
	return false
}
