package models

// Field is a single HubSpot form field
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SubmissionContext represents the "context" object of a HubSpot form submission
type SubmissionContext struct {
	HUTK     string `json:"hutk"`
	PageURI  string `json:"pageUri"`
	PageName string `json:"pageName"`
}

// HubSpotSubmission is the request body of the Forms API submit endpoint
type HubSpotSubmission struct {
	Fields  []Field           `json:"fields"`
	Context SubmissionContext `json:"context"`
}
