package contradiction

// Status terms. A response containing one term from each set is treating the
// same subject as both ongoing and ended.
var defaultOpenTerms = []string{
	"open", "active", "currently", "ongoing", "running", "operating",
}

var defaultClosedTerms = []string{
	"closed", "discontinued", "shut down", "defunct", "ceased",
}

// Verbs that anchor a year as a start date or a continuity date.
var (
	startVerbs      = `introduced|started|began|launched`
	continuityVerbs = `since|active|running|operating`
)
