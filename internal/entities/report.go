package entities

// Scores are the per-axis results of a reflection analysis
type Scores struct {
	Logic   int `json:"logic"`
	Emotion int `json:"emotion"`
	Action  int `json:"action"`
}

// AnalysisResult is the server's reading of a reflection
type AnalysisResult struct {
	Type     string `json:"type"`
	TypeName string `json:"typeName"`
	Scores   Scores `json:"scores"`
	Feedback string `json:"feedback"`
}

// ReportSubmission is the body of POST /reports
type ReportSubmission struct {
	ISBN    string `json:"isbn"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ReportDetail is a submitted reflection with its analysis
type ReportDetail struct {
	ReportID       int64          `json:"reportId"`
	Book           Book           `json:"book"`
	UserContent    string         `json:"userContent"`
	AnalysisResult AnalysisResult `json:"analysisResult"`
	CreatedAt      string         `json:"createdAt"`
}

// ReportSummary is one row of the reader's library
type ReportSummary struct {
	ReportID      int64  `json:"reportId"`
	BookTitle     string `json:"bookTitle"`
	BookThumbnail string `json:"bookThumbnail"`
	ResultType    string `json:"resultType"`
	CreatedAt     string `json:"createdAt"`
}
