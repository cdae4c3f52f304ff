package charset

// Newline identifies the dominant line-ending convention of a sample.
type Newline string

// Constants representing the recognized line-ending conventions.
const (
	NewlineCRLF Newline = "CRLF"
	NewlineLF   Newline = "LF"
	NewlineCR   Newline = "CR"
)

// Result is the outcome of one analysis call.
type Result struct {
	// Encoding is the canonical (lowercase, underscore-separated) name of the
	// detected encoding, e.g. "utf_8", "cp1252", "cp949". It is always a
	// member of the normalizer's output space and never empty.
	Encoding string `json:"encoding" yaml:"encoding"`
	// Newlines is the dominant line-ending convention of the sample.
	Newlines Newline `json:"newlines" yaml:"newlines"`
}

// ScoredCandidate records the outcome of one trial decode during the
// candidate scan. Exposed for observability (verbose CLI output, hooks);
// callers must treat it as informational, not contractual.
type ScoredCandidate struct {
	// Candidate is the encoding label that was trial-decoded, in the exact
	// spelling it appeared in the candidate list (e.g. "windows-1251").
	Candidate string `json:"candidate" yaml:"candidate"`
	// Score is the heuristic confidence value; higher wins.
	Score float64 `json:"score" yaml:"score"`
	// ErrorRatio is substituted characters over total decoded characters,
	// in [0, 1].
	ErrorRatio float64 `json:"errorRatio" yaml:"errorRatio"`
}

// Match extends Result with the material the decision was made from.
// Returned by the file- and reader-based entry points.
type Match struct {
	Result
	// RawBytes is the exact byte sample the analysis consumed. For the
	// bounded-sample entry points this is the sample only, not the whole
	// source.
	RawBytes []byte `json:"-" yaml:"-"`
	// DecodedText is the winning trial's decoded text. It may contain
	// U+FFFD where the winning codec substituted invalid sequences.
	DecodedText string `json:"decodedText,omitempty" yaml:"decodedText,omitempty"`
	// Candidates lists every trial that was scored, in scan order. Empty
	// when a BOM fixed the encoding without a candidate scan.
	Candidates []ScoredCandidate `json:"candidates,omitempty" yaml:"candidates,omitempty"`
	// Winner is the trial the result was taken from. Its Candidate field
	// holds the pre-normalization label (e.g. "windows-949" for a "cp949"
	// result).
	Winner ScoredCandidate `json:"winner" yaml:"winner"`
}
