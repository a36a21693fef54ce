package analyzer

// PartOfSpeech is the coarse word class assigned by the tokenizer.
type PartOfSpeech int

const (
	POSOther PartOfSpeech = iota
	POSNoun
	POSVerb
)

func (p PartOfSpeech) String() string {
	switch p {
	case POSNoun:
		return "noun"
	case POSVerb:
		return "verb"
	default:
		return "other"
	}
}

// Token is a single morphological unit.
type Token struct {
	Surface  string
	BaseForm string
	POS      PartOfSpeech
}

// TokenizedText is the per-call view of a comment after morphological analysis.
type TokenizedText struct {
	Nouns    []string
	Verbs    []string
	AllWords []string
	RawText  string
}

// Sentiment is the three-way polarity of a comment.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// ActionType describes what the author is reporting.
type ActionType string

const (
	ActionStart    ActionType = "start"
	ActionProgress ActionType = "progress"
	ActionComplete ActionType = "complete"
	ActionError    ActionType = "error"
	ActionWaiting  ActionType = "waiting"
	ActionInfo     ActionType = "info"
	// ActionOther is part of the stored schema but no rule produces it.
	ActionOther ActionType = "other"
)

// Severity grades a detected issue.
type Severity string

const (
	// SeverityCritical is reserved for manual escalation.
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityMinor    Severity = "minor"
	SeverityWaiting  Severity = "waiting"
)

// Bucket is an existing thematic group a comment may be filed under.
type Bucket struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	NameNormalized string `json:"name_normalized"`
}

// NewBucket builds a bucket with its comparison key filled in.
func NewBucket(id, name string) Bucket {
	return Bucket{ID: id, Name: name, NameNormalized: Normalize(name)}
}

// Issue is the problem record derived from a negative or error comment.
type Issue struct {
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// Result is the outcome of analyzing one comment.
type Result struct {
	BucketID      *string    `json:"bucket_id"`
	BucketName    *string    `json:"bucket_name"`
	IsNewBucket   bool       `json:"is_new_bucket"`
	Sentiment     Sentiment  `json:"sentiment"`
	ActionType    ActionType `json:"action_type"`
	Keywords      []string   `json:"keywords"`
	Nouns         []string   `json:"nouns"`
	Verbs         []string   `json:"verbs"`
	IssueDetected *Issue     `json:"issue_detected"`
}
