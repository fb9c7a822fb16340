package model

type LabelsRequestBody struct {
	Root string `json:"root"`
}

type LabeledCell struct {
	Pos FretPosition `json:"pos"`
	CellLabel
}

type LabelsResponse struct {
	Root  string        `json:"root"`
	Cells []LabeledCell `json:"cells"`
}

type TriadRequestBody struct {
	String  int    `json:"string"`
	Fret    int    `json:"fret"`
	Quality string `json:"quality"`
}

type PlanResponse struct {
	Events []SoundEvent `json:"events"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
